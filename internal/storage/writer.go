package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/mercerclayton/banking-system/internal/storage/card"
)

type Writer struct {
	tx   bob.Tx
	Card card.ICardWriter
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:   tx,
		Card: card.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
