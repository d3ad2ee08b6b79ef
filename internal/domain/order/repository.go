package order

import "context"

// Repository defines persistence operations for orders.
// Orders are append-only; there are no update or delete operations.
type Repository interface {
	// Insert durably persists a new order. A successful return guarantees the
	// order is retrievable by FindByID. Identifier collisions are surfaced as
	// an error, never silently ignored.
	Insert(ctx context.Context, o *Order) error

	// FindByID returns the order with the given identifier, or shared.ErrNotFound.
	FindByID(ctx context.Context, id string) (*Order, error)

	// CountAll returns the total number of persisted orders.
	CountAll(ctx context.Context) (int64, error)
}
