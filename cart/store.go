package cart

import (
	"context"

	"github.com/google/uuid"
)

// Store is the persistence behind a Cart. Every call is scoped by the
// session id; rows of other sessions are never touched.
type Store interface {
	// Fetch returns the session's lines, products included, oldest first.
	Fetch(ctx context.Context, sessionID string) ([]Line, error)
	// Insert creates a new row for (sessionID, productID).
	Insert(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) error
	// UpdateQuantity rewrites the quantity of an existing row. Matching
	// zero rows is not an error.
	UpdateQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) error
	// Delete removes the row for (sessionID, productID), if any.
	Delete(ctx context.Context, sessionID string, productID uuid.UUID) error
	// Clear removes every row for the session.
	Clear(ctx context.Context, sessionID string) error
}
