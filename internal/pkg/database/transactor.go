package database

import "context"

// Transactor runs fn with a transaction bound to ctx. Repositories pick the
// transaction up from ctx, so every call made inside fn commits or rolls back
// together.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
