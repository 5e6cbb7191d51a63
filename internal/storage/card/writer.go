package card

import (
	"context"
	"errors"
	"math"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/um"
)

type Writer struct {
	tx bob.Tx
	Reader
}

var _ ICardWriter = (*Writer)(nil)

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert adds a card with a zero balance. A taken number yields ErrDuplicateKey.
func (w *Writer) Insert(ctx context.Context, number, pin string) error {
	q := sqlite.Insert(
		im.Into(TableName, "number", "pin"),
		im.Values(sqlite.Arg(number, pin)),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return wrapError("insert card", err)
}

// AddToBalance adds delta, which may be negative, to the balance. No sign check is made,
// but a sum outside the int64 range is refused with ErrBalanceOutOfRange and the row is
// left as it was.
func (w *Writer) AddToBalance(ctx context.Context, number string, delta int64) error {
	// sqlite falls back to REAL arithmetic on overflow, so the bound is checked up front.
	var headroom bob.Expression
	if delta >= 0 {
		headroom = sqlite.Quote("balance").LTE(sqlite.Arg(int64(math.MaxInt64) - delta))
	} else {
		headroom = sqlite.Quote("balance").GTE(sqlite.Arg(int64(math.MinInt64) - delta))
	}

	q := sqlite.Update(
		um.Table(TableName),
		um.SetCol("balance").To(sqlite.Raw("balance + ?", delta)),
		um.Where(sqlite.Quote("number").EQ(sqlite.Arg(number))),
		um.Where(headroom),
	)
	err := w.execOne(ctx, "add to balance", q)
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	exists, existsErr := w.Exists(ctx, number)
	if existsErr != nil {
		return existsErr
	}
	if exists {
		return ErrBalanceOutOfRange
	}
	return ErrNotFound
}

// WithdrawIfCovered subtracts amount only when the balance covers it. It reports false,
// with nothing changed, when the card is missing or short of funds.
func (w *Writer) WithdrawIfCovered(ctx context.Context, number string, amount int64) (bool, error) {
	q := sqlite.Update(
		um.Table(TableName),
		um.SetCol("balance").To(sqlite.Raw("balance - ?", amount)),
		um.Where(sqlite.Quote("number").EQ(sqlite.Arg(number))),
		um.Where(sqlite.Quote("balance").GTE(sqlite.Arg(amount))),
	)
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return false, wrapError("withdraw", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, wrapError("withdraw", err)
	}
	return n == 1, nil
}

// Delete removes the card and reports whether a row existed.
func (w *Writer) Delete(ctx context.Context, number string) (bool, error) {
	q := sqlite.Delete(
		dm.From(TableName),
		dm.Where(sqlite.Quote("number").EQ(sqlite.Arg(number))),
	)
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return false, wrapError("delete card", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, wrapError("delete card", err)
	}
	return n > 0, nil
}

func (w *Writer) execOne(ctx context.Context, op string, q bob.Query) error {
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return wrapError(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapError(op, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
