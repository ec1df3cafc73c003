package order

import "context"

// Repository records finalized orders for the audit trail.
type Repository interface {
	Save(ctx context.Context, sessionID string, o *Order) error
}
