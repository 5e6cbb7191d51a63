package actions

import (
	"context"
	"fmt"

	"github.com/mercerclayton/banking-system/internal/storage"
)

// Transfer moves Amount from Sender to Receiver. When the sender is missing or cannot
// cover the amount, Perform succeeds without writing and sets Declined.
type Transfer struct {
	Sender   string
	Receiver string
	Amount   int64

	Declined bool

	IAction
}

func (t *Transfer) Perform(ctx context.Context, writer *storage.Writer) error {
	t.Declined = false

	covered, err := writer.Card.WithdrawIfCovered(ctx, t.Sender, t.Amount)
	if err != nil {
		return err
	}
	if !covered {
		t.Declined = true
		return nil
	}

	if err := writer.Card.AddToBalance(ctx, t.Receiver, t.Amount); err != nil {
		return fmt.Errorf("credit receiver: %w", err)
	}

	return nil
}
