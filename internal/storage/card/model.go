package card

import (
	"context"
)

// TableName is the table holding every card.
const TableName = "card"

// Card represents a card record.
type Card struct {
	ID      int64  `db:"id"`
	Number  string `db:"number"`
	Pin     string `db:"pin"`
	Balance int64  `db:"balance"`
}

// ICardReader defines the read operations on the card table.
type ICardReader interface {
	FindByNumber(ctx context.Context, number string) (*Card, error)
	FindPin(ctx context.Context, number string) (string, error)
	FindBalance(ctx context.Context, number string) (int64, error)
	Exists(ctx context.Context, number string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// ICardWriter defines the write operations on the card table. Implementations run inside
// a single transaction.
type ICardWriter interface {
	ICardReader
	Insert(ctx context.Context, number, pin string) error
	AddToBalance(ctx context.Context, number string, delta int64) error
	WithdrawIfCovered(ctx context.Context, number string, amount int64) (bool, error)
	Delete(ctx context.Context, number string) (bool, error)
}
