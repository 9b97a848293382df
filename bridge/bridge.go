package bridge

import (
	"context"

	"go.uber.org/zap"

	"github.com/localekit/resbridge/errors"
	"github.com/localekit/resbridge/handle"
)

// Bridge resolves localized string resources for contexts held in a handle
// table. It is stateless and safe for concurrent use.
type Bridge struct {
	table *handle.Table
}

// New creates a bridge resolving against the given handle table.
func New(table *handle.Table) *Bridge {
	return &Bridge{table: table}
}

// Table returns the handle table contexts are registered in.
func (b *Bridge) Table() *handle.Table {
	return b.table
}

// Resolve borrows the context named by h for the duration of the call and
// resolves id through its resource accessor. The returned text is exactly
// what the context's own resolution produces; on any failure the text is
// empty and the fault propagates unmodified.
func (b *Bridge) Resolve(_ context.Context, h handle.Handle, id uint32) (string, error) {
	Logger().Info("resolve string",
		zap.Uint32("res_id", id),
		zap.Uint32("context", uint32(h)))

	v, ok := b.table.Borrow(h)
	if !ok {
		return "", errors.InvalidHandle(errors.PhaseLookup, uint32(h))
	}
	defer b.table.Release(h)

	resolver, err := resolverOf(v)
	if err != nil {
		return "", err
	}

	return resolver.String(id)
}
