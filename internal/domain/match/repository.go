package match

import "context"

// Repository describes match persistence needs from use cases.
// Delete cascades to roster entries, period assignments and saved plans.
type Repository interface {
	Create(ctx context.Context, item Match) error
	GetByID(ctx context.Context, ownerID, matchID string) (Match, bool, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Match, error)
	Update(ctx context.Context, item Match) error
	Delete(ctx context.Context, ownerID, matchID string) error
}
