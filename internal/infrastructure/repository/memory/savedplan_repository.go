package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/haakonrs/kampplan/internal/domain/savedplan"
)

type SavedPlanRepository struct {
	mu    sync.RWMutex
	items map[string]savedplan.Plan
	cells map[string][]savedplan.Cell
}

func NewSavedPlanRepository() *SavedPlanRepository {
	return &SavedPlanRepository{
		items: make(map[string]savedplan.Plan),
		cells: make(map[string][]savedplan.Cell),
	}
}

func (r *SavedPlanRepository) Save(_ context.Context, item savedplan.Plan, cells []savedplan.Cell) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	r.cells[item.ID] = append([]savedplan.Cell(nil), cells...)
	return nil
}

func (r *SavedPlanRepository) Get(_ context.Context, planID string) (savedplan.Plan, []savedplan.Cell, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[planID]
	if !ok {
		return savedplan.Plan{}, nil, false, nil
	}

	cells := append([]savedplan.Cell(nil), r.cells[planID]...)
	return item, cells, true, nil
}

// ListByMatch orders snapshots by last-used time descending, then created
// time descending, ids breaking ties.
func (r *SavedPlanRepository) ListByMatch(_ context.Context, matchID string) ([]savedplan.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]savedplan.Plan, 0, len(r.items))
	for _, item := range r.items {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].LastUsedAt.Equal(out[j].LastUsedAt) {
			return out[i].LastUsedAt.After(out[j].LastUsedAt)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *SavedPlanRepository) TouchLastUsed(_ context.Context, planID string, usedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[planID]
	if !ok {
		return nil
	}

	item.LastUsedAt = usedAt
	r.items[planID] = item
	return nil
}

func (r *SavedPlanRepository) DeleteByMatch(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.MatchID == matchID {
			delete(r.items, id)
			delete(r.cells, id)
		}
	}
	return nil
}
