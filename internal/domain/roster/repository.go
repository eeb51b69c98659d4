package roster

import "context"

// Repository describes roster persistence needs from use cases.
// Upsert is idempotent: writing the same inclusion state twice succeeds.
// DeleteByPlayer removes the player from every roster and returns the ids
// of the matches that had an entry.
type Repository interface {
	Upsert(ctx context.Context, entry Entry) error
	ListByMatch(ctx context.Context, matchID string) ([]Entry, error)
	DeleteByMatch(ctx context.Context, matchID string) error
	DeleteByPlayer(ctx context.Context, playerID string) ([]string, error)
}
