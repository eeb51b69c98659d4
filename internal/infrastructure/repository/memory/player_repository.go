package memory

import (
	"context"
	"sync"

	"github.com/haakonrs/kampplan/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	for _, p := range players {
		items[p.ID] = p
	}

	return &PlayerRepository{items: items}
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, ownerID, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	if !ok || p.OwnerID != ownerID {
		return player.Player{}, false, nil
	}

	return p, true, nil
}

func (r *PlayerRepository) GetByName(_ context.Context, ownerID, name string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.OwnerID == ownerID && p.Name == name {
			return p, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, ownerID string, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := r.items[id]
		if !ok || p.OwnerID != ownerID {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *PlayerRepository) ListByOwner(_ context.Context, ownerID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.items))
	for _, p := range r.items {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PlayerRepository) UpdatePosition(_ context.Context, ownerID, playerID string, position player.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[playerID]
	if !ok || p.OwnerID != ownerID {
		return nil
	}

	p.Position = position
	r.items[playerID] = p
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, ownerID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[playerID]
	if !ok || p.OwnerID != ownerID {
		return nil
	}

	delete(r.items, playerID)
	return nil
}
