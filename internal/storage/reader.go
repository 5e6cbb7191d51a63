package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/mercerclayton/banking-system/internal/storage/card"
)

type Reader struct {
	Cards *card.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Cards: card.NewReader(exec),
	}
}
