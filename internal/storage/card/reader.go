package card

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dialect"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

var _ ICardReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func byNumber(number string) bob.Mod[*dialect.SelectQuery] {
	return sm.Where(sqlite.Quote("number").EQ(sqlite.Arg(number)))
}

// FindByNumber returns the full card row, or ErrNotFound.
func (r *Reader) FindByNumber(ctx context.Context, number string) (*Card, error) {
	q := sqlite.Select(
		sm.Columns("id", "number", "pin", "balance"),
		sm.From(TableName),
		byNumber(number),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Card]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrapError("find card", err)
	}
	return &row, nil
}

// FindPin returns the stored PIN, or ErrNotFound.
func (r *Reader) FindPin(ctx context.Context, number string) (string, error) {
	q := sqlite.Select(
		sm.Columns("pin"),
		sm.From(TableName),
		byNumber(number),
	)
	pin, err := bob.One(ctx, r.exec, q, scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", wrapError("find pin", err)
	}
	return pin, nil
}

// FindBalance returns the current balance, or ErrNotFound.
func (r *Reader) FindBalance(ctx context.Context, number string) (int64, error) {
	q := sqlite.Select(
		sm.Columns("balance"),
		sm.From(TableName),
		byNumber(number),
	)
	balance, err := bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int64])
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, wrapError("find balance", err)
	}
	return balance, nil
}

func (r *Reader) Exists(ctx context.Context, number string) (bool, error) {
	q := sqlite.Select(
		sm.Columns("count(*)"),
		sm.From(TableName),
		byNumber(number),
	)
	n, err := bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, wrapError("card exists", err)
	}
	return n > 0, nil
}

func (r *Reader) Count(ctx context.Context) (int64, error) {
	q := sqlite.Select(
		sm.Columns("count(*)"),
		sm.From(TableName),
	)
	n, err := bob.One(ctx, r.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, wrapError("count cards", err)
	}
	return n, nil
}
