package savedplan

import (
	"context"
	"time"
)

// Repository describes saved-plan persistence needs from use cases.
// Save persists the plan and its cells atomically. ListByMatch orders by
// last-used time descending, newest first on ties.
type Repository interface {
	Save(ctx context.Context, item Plan, cells []Cell) error
	Get(ctx context.Context, planID string) (Plan, []Cell, bool, error)
	ListByMatch(ctx context.Context, matchID string) ([]Plan, error)
	TouchLastUsed(ctx context.Context, planID string, usedAt time.Time) error
	DeleteByMatch(ctx context.Context, matchID string) error
}
