package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/haakonrs/kampplan/internal/domain/roster"
)

type RosterRepository struct {
	mu sync.RWMutex
	// entries by match id, then player id.
	entries map[string]map[string]roster.Entry
}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{
		entries: make(map[string]map[string]roster.Entry),
	}
}

func (r *RosterRepository) Upsert(_ context.Context, entry roster.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byPlayer, ok := r.entries[entry.MatchID]
	if !ok {
		byPlayer = make(map[string]roster.Entry)
		r.entries[entry.MatchID] = byPlayer
	}
	byPlayer[entry.PlayerID] = entry
	return nil
}

func (r *RosterRepository) ListByMatch(_ context.Context, matchID string) ([]roster.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byPlayer := r.entries[matchID]
	out := make([]roster.Entry, 0, len(byPlayer))
	for _, e := range byPlayer {
		out = append(out, e)
	}

	return out, nil
}

func (r *RosterRepository) DeleteByMatch(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, matchID)
	return nil
}

func (r *RosterRepository) DeleteByPlayer(_ context.Context, playerID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matchIDs []string
	for matchID, byPlayer := range r.entries {
		if _, ok := byPlayer[playerID]; !ok {
			continue
		}
		delete(byPlayer, playerID)
		matchIDs = append(matchIDs, matchID)
	}
	sort.Strings(matchIDs)

	return matchIDs, nil
}
