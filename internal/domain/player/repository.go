package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Player) error
	GetByID(ctx context.Context, ownerID, playerID string) (Player, bool, error)
	GetByName(ctx context.Context, ownerID, name string) (Player, bool, error)
	GetByIDs(ctx context.Context, ownerID string, playerIDs []string) ([]Player, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Player, error)
	UpdatePosition(ctx context.Context, ownerID, playerID string, position Position) error
	Delete(ctx context.Context, ownerID, playerID string) error
}
