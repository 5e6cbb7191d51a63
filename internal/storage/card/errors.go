package card

import (
	"errors"
	"fmt"

	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when no card has the requested number.
	ErrNotFound = errors.New("card not found")

	// ErrDuplicateKey is returned when inserting a number that already exists.
	ErrDuplicateKey = errors.New("card number already exists")

	// ErrBalanceOutOfRange is returned when a balance change would leave the int64 range.
	ErrBalanceOutOfRange = errors.New("balance out of range")
)

// StorageError wraps a persistence failure that is neither a miss nor a duplicate.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return ErrDuplicateKey
	}
	return &StorageError{Op: op, Err: err}
}

func isUniqueViolation(err error) bool {
	var sqliteErr *moderncsqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
