package actions

import (
	"context"

	"github.com/mercerclayton/banking-system/internal/storage"
)

type CloseCard struct {
	Number string

	Existed bool

	IAction
}

func (c *CloseCard) Perform(ctx context.Context, writer *storage.Writer) error {
	existed, err := writer.Card.Delete(ctx, c.Number)
	if err != nil {
		return err
	}
	c.Existed = existed
	return nil
}
