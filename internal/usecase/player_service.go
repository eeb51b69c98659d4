package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/haakonrs/kampplan/internal/domain/plan"
	"github.com/haakonrs/kampplan/internal/domain/player"
	"github.com/haakonrs/kampplan/internal/domain/roster"
	idgen "github.com/haakonrs/kampplan/internal/platform/id"
)

type CreatePlayerInput struct {
	OwnerID  string
	Name     string
	Position player.Position
}

// PlayerService manages an owner's player pool.
type PlayerService struct {
	playerRepo     player.Repository
	rosterRepo     roster.Repository
	assignmentRepo plan.Repository
	invalidator    summaryInvalidator
	ids            idgen.Generator
	now            func() time.Time
}

func NewPlayerService(
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	assignmentRepo plan.Repository,
	ids idgen.Generator,
) *PlayerService {
	return &PlayerService{
		playerRepo:     playerRepo,
		rosterRepo:     rosterRepo,
		assignmentRepo: assignmentRepo,
		ids:            ids,
		now:            time.Now,
	}
}

func (s *PlayerService) SetInvalidator(invalidator summaryInvalidator) {
	s.invalidator = invalidator
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	input.OwnerID = strings.TrimSpace(input.OwnerID)
	input.Name = strings.TrimSpace(input.Name)

	if input.OwnerID == "" {
		return player.Player{}, fmt.Errorf("%w: owner_id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if !input.Position.Valid() {
		return player.Player{}, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, input.Position)
	}

	_, exists, err := s.playerRepo.GetByName(ctx, input.OwnerID, input.Name)
	if err != nil {
		return player.Player{}, fmt.Errorf("check player name: %w", err)
	}
	if exists {
		return player.Player{}, fmt.Errorf("%w: player name %q is already in use", ErrInvalidInput, input.Name)
	}

	playerID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now().UTC()
	item := player.Player{
		ID:        playerID,
		OwnerID:   input.OwnerID,
		Name:      input.Name,
		Position:  input.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) Get(ctx context.Context, ownerID, playerID string) (player.Player, error) {
	item, exists, err := s.playerRepo.GetByID(ctx, ownerID, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

// List returns the owner's pool ordered by name, ids breaking ties.
func (s *PlayerService) List(ctx context.Context, ownerID string) ([]player.Player, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("%w: owner_id is required", ErrInvalidInput)
	}

	items, err := s.playerRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// UpdatePosition is the only player mutation after creation.
func (s *PlayerService) UpdatePosition(ctx context.Context, ownerID, playerID string, position player.Position) (player.Player, error) {
	if !position.Valid() {
		return player.Player{}, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, position)
	}

	item, err := s.Get(ctx, ownerID, playerID)
	if err != nil {
		return player.Player{}, err
	}

	if err := s.playerRepo.UpdatePosition(ctx, ownerID, playerID, position); err != nil {
		return player.Player{}, fmt.Errorf("update player position: %w", err)
	}

	item.Position = position
	item.UpdatedAt = s.now().UTC()
	return item, nil
}

// Delete removes the player together with every roster entry and period
// assignment that references them, so no match keeps counting a ghost.
// Saved plans keep their snapshot cells; applying one simply has fewer
// matching roster players.
func (s *PlayerService) Delete(ctx context.Context, ownerID, playerID string) error {
	if _, err := s.Get(ctx, ownerID, playerID); err != nil {
		return err
	}

	rosterMatches, err := s.rosterRepo.DeleteByPlayer(ctx, playerID)
	if err != nil {
		return fmt.Errorf("delete roster entries: %w", err)
	}

	assignedMatches, err := s.assignmentRepo.DeleteByPlayer(ctx, playerID)
	if err != nil {
		return fmt.Errorf("delete period assignments: %w", err)
	}

	if err := s.playerRepo.Delete(ctx, ownerID, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	if s.invalidator != nil {
		seen := make(map[string]struct{}, len(rosterMatches)+len(assignedMatches))
		for _, matchID := range append(rosterMatches, assignedMatches...) {
			if _, ok := seen[matchID]; ok {
				continue
			}
			seen[matchID] = struct{}{}
			s.invalidator.Invalidate(ctx, matchID)
		}
	}

	return nil
}
