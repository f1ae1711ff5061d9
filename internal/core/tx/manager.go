// Package tx defines the transaction boundary used by domain services.
// The implementation lives in infrastructure/storage/postgres.
package tx

import (
	"context"
)

// Manager runs a unit of work atomically.
type Manager interface {
	// RunInTransaction executes fn within a database transaction.
	// An error from fn rolls back; nested calls reuse the transaction from ctx.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
