package actions

import (
	"context"

	"github.com/mercerclayton/banking-system/internal/storage"
)

type CreateCard struct {
	Number string
	Pin    string

	IAction
}

func (c *CreateCard) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Card.Insert(ctx, c.Number, c.Pin)
}
