package service

import (
	"errors"
	"fmt"

	"github.com/mercerclayton/banking-system/internal/storage/card"
)

var (
	// ErrValidation marks malformed caller input. The console re-prompts on it.
	ErrValidation = errors.New("validation error")

	ErrNotFound     = card.ErrNotFound
	ErrDuplicateKey = card.ErrDuplicateKey

	// ErrBalanceOutOfRange arrives wrapped together with ErrValidation.
	ErrBalanceOutOfRange = card.ErrBalanceOutOfRange
)

// rejectOutOfRange marks a balance overflow as caller input that cannot be applied.
func rejectOutOfRange(err error) error {
	if errors.Is(err, ErrBalanceOutOfRange) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return err
}

// StorageError is the persistence failure kind surfaced by every operation.
type StorageError = card.StorageError

// IsStorageError reports whether err is, or wraps, a persistence failure.
func IsStorageError(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr) || errors.Is(err, ErrDuplicateKey)
}
