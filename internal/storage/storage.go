package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stephenafamo/bob"
	_ "modernc.org/sqlite"

	"github.com/mercerclayton/banking-system/internal/config"
)

const driverName = "sqlite"

type Storage struct {
	DB   *sql.DB
	exec bob.DB
}

func dataSourceName(env config.DatabaseConfig) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", env.Path, env.BusyTimeoutMs)
}

// NewStorage opens the card database. The pool holds a single connection, so a write
// transaction excludes every other statement until it commits or rolls back.
func NewStorage(env config.DatabaseConfig) (*Storage, error) {
	db, err := sql.Open(driverName, dataSourceName(env))
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", env.Path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: ping %s: %w", env.Path, err)
	}

	return &Storage{
		DB:   db,
		exec: bob.NewDB(db),
	}, nil
}

// Read returns a reader that runs each query on its own.
func (s *Storage) Read() *Reader {
	return NewReader(s.exec)
}

// Write begins a transaction. The caller must Commit or Rollback the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: begin: %w", err)
	}
	writer := NewWriter(tx)
	return &writer, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
