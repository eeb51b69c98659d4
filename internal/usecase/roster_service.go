package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/haakonrs/kampplan/internal/domain/match"
	"github.com/haakonrs/kampplan/internal/domain/player"
	"github.com/haakonrs/kampplan/internal/domain/roster"
)

// RosterService manages which of an owner's players are in a match squad.
type RosterService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	rosterRepo roster.Repository
	now        func() time.Time
}

func NewRosterService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
) *RosterService {
	return &RosterService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		rosterRepo: rosterRepo,
		now:        time.Now,
	}
}

// SetIncluded toggles a player's roster membership. The operation is
// idempotent: including an already included player succeeds unchanged.
func (s *RosterService) SetIncluded(ctx context.Context, ownerID, matchID, playerID string, included bool) error {
	ownerID = strings.TrimSpace(ownerID)
	matchID = strings.TrimSpace(matchID)
	playerID = strings.TrimSpace(playerID)
	if ownerID == "" || matchID == "" || playerID == "" {
		return fmt.Errorf("%w: owner_id, match_id and player_id are required", ErrInvalidInput)
	}

	if _, exists, err := s.matchRepo.GetByID(ctx, ownerID, matchID); err != nil {
		return fmt.Errorf("get match: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	if _, exists, err := s.playerRepo.GetByID(ctx, ownerID, playerID); err != nil {
		return fmt.Errorf("get player: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	entry := roster.Entry{
		MatchID:   matchID,
		PlayerID:  playerID,
		Included:  included,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.rosterRepo.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("upsert roster entry: %w", err)
	}

	return nil
}

// List returns the whole player pool with inclusion flags, ordered by
// position group, name, id.
func (s *RosterService) List(ctx context.Context, ownerID, matchID string) ([]roster.Member, error) {
	if _, exists, err := s.matchRepo.GetByID(ctx, ownerID, matchID); err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	players, err := s.playerRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	entries, err := s.rosterRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list roster entries: %w", err)
	}

	includedByPlayer := make(map[string]bool, len(entries))
	for _, e := range entries {
		includedByPlayer[e.PlayerID] = e.Included
	}

	members := make([]roster.Member, 0, len(players))
	for _, p := range players {
		members = append(members, roster.Member{
			Player:   p,
			Included: includedByPlayer[p.ID],
		})
	}
	roster.SortMembers(members)
	return members, nil
}
