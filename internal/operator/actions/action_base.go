package actions

import (
	"context"

	"github.com/mercerclayton/banking-system/internal/storage"
)

// IAction is a unit of work run inside one write transaction. Returning an error rolls the
// whole transaction back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
