package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/haakonrs/kampplan/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[string]match.Match, len(matches))
	for _, m := range matches {
		items[m.ID] = m
	}

	return &MatchRepository{items: items}
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *MatchRepository) GetByID(_ context.Context, ownerID, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	if !ok || m.OwnerID != ownerID {
		return match.Match{}, false, nil
	}

	return m, true, nil
}

// ListByOwner returns matches ordered by date descending, ids breaking ties.
func (r *MatchRepository) ListByOwner(_ context.Context, ownerID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		if m.OwnerID == ownerID {
			out = append(out, m)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return nil
	}

	r.items[item.ID] = item
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, ownerID, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[matchID]
	if !ok || m.OwnerID != ownerID {
		return nil
	}

	delete(r.items, matchID)
	return nil
}
