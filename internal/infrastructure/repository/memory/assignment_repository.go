package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/haakonrs/kampplan/internal/domain/plan"
)

type AssignmentRepository struct {
	mu sync.RWMutex
	// assignments by match id, then "playerID:period".
	assignments map[string]map[string]plan.Assignment
}

func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{
		assignments: make(map[string]map[string]plan.Assignment),
	}
}

func cellKey(playerID string, period int) string {
	return fmt.Sprintf("%s:%d", playerID, period)
}

func (r *AssignmentRepository) Upsert(_ context.Context, item plan.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.upsertLocked(item)
	return nil
}

func (r *AssignmentRepository) BulkUpsert(_ context.Context, items []plan.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.upsertLocked(item)
	}
	return nil
}

func (r *AssignmentRepository) upsertLocked(item plan.Assignment) {
	byCell, ok := r.assignments[item.MatchID]
	if !ok {
		byCell = make(map[string]plan.Assignment)
		r.assignments[item.MatchID] = byCell
	}
	byCell[cellKey(item.PlayerID, item.Period)] = item
}

func (r *AssignmentRepository) ListByMatch(_ context.Context, matchID string) ([]plan.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byCell := r.assignments[matchID]
	out := make([]plan.Assignment, 0, len(byCell))
	for _, a := range byCell {
		out = append(out, a)
	}

	return out, nil
}

func (r *AssignmentRepository) DeleteByMatch(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.assignments, matchID)
	return nil
}

func (r *AssignmentRepository) DeleteByPlayer(_ context.Context, playerID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matchIDs []string
	for matchID, byCell := range r.assignments {
		touched := false
		for key, a := range byCell {
			if a.PlayerID != playerID {
				continue
			}
			delete(byCell, key)
			touched = true
		}
		if touched {
			matchIDs = append(matchIDs, matchID)
		}
	}
	sort.Strings(matchIDs)

	return matchIDs, nil
}

func (r *AssignmentRepository) ReplaceForMatch(_ context.Context, matchID string, items []plan.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byCell := make(map[string]plan.Assignment, len(items))
	for _, item := range items {
		byCell[cellKey(item.PlayerID, item.Period)] = item
	}
	r.assignments[matchID] = byCell
	return nil
}
