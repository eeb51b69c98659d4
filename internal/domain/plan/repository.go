package plan

import "context"

// Repository describes period-assignment persistence needs from use cases.
// BulkUpsert and ReplaceForMatch are atomic: either every row is written or
// none is. DeleteByPlayer removes the player's cells from every match and
// returns the ids of the matches that had any.
type Repository interface {
	Upsert(ctx context.Context, item Assignment) error
	BulkUpsert(ctx context.Context, items []Assignment) error
	ListByMatch(ctx context.Context, matchID string) ([]Assignment, error)
	DeleteByMatch(ctx context.Context, matchID string) error
	DeleteByPlayer(ctx context.Context, playerID string) ([]string, error)
	ReplaceForMatch(ctx context.Context, matchID string, items []Assignment) error
}
