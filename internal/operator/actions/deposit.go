package actions

import (
	"context"

	"github.com/mercerclayton/banking-system/internal/storage"
)

// Deposit adds Delta to the card's balance as is.
type Deposit struct {
	Number string
	Delta  int64

	IAction
}

func (d *Deposit) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Card.AddToBalance(ctx, d.Number, d.Delta)
}
