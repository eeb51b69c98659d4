package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/haakonrs/kampplan/internal/domain/match"
	"github.com/haakonrs/kampplan/internal/domain/plan"
	"github.com/haakonrs/kampplan/internal/domain/player"
	"github.com/haakonrs/kampplan/internal/domain/playtime"
	"github.com/haakonrs/kampplan/internal/domain/roster"
	"github.com/haakonrs/kampplan/internal/platform/cache"
)

// MatchPlaytime pairs the per-player summaries with the match they derive
// from.
type MatchPlaytime struct {
	Match     match.Match
	Summaries []playtime.Summary
}

// PlaytimeService recomputes playtime summaries from the live assignment
// set. With a cache configured, summaries are memoized per match until a
// mutation invalidates them; without one every call recomputes.
type PlaytimeService struct {
	matchRepo      match.Repository
	playerRepo     player.Repository
	rosterRepo     roster.Repository
	assignmentRepo plan.Repository
	summaries      *cache.Store
	now            func() time.Time
}

func NewPlaytimeService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	assignmentRepo plan.Repository,
	summaries *cache.Store,
) *PlaytimeService {
	return &PlaytimeService{
		matchRepo:      matchRepo,
		playerRepo:     playerRepo,
		rosterRepo:     rosterRepo,
		assignmentRepo: assignmentRepo,
		summaries:      summaries,
		now:            time.Now,
	}
}

// Summary returns the per-player playtime breakdown for the match's
// included roster players.
func (s *PlaytimeService) Summary(ctx context.Context, ownerID, matchID string) (MatchPlaytime, error) {
	ownerID = strings.TrimSpace(ownerID)
	matchID = strings.TrimSpace(matchID)
	if ownerID == "" || matchID == "" {
		return MatchPlaytime{}, fmt.Errorf("%w: owner_id and match_id are required", ErrInvalidInput)
	}

	if s.summaries == nil {
		return s.compute(ctx, ownerID, matchID)
	}

	value, err := s.summaries.GetOrLoad(ctx, summaryCacheKey(matchID), func(ctx context.Context) (any, error) {
		return s.compute(ctx, ownerID, matchID)
	})
	if err != nil {
		return MatchPlaytime{}, err
	}

	result, ok := value.(MatchPlaytime)
	if !ok {
		return MatchPlaytime{}, fmt.Errorf("unexpected cached summary type %T", value)
	}
	return result, nil
}

// Invalidate drops the cached summary for a match. Safe to call with no
// cache configured.
func (s *PlaytimeService) Invalidate(ctx context.Context, matchID string) {
	if s.summaries == nil {
		return
	}
	s.summaries.Delete(ctx, summaryCacheKey(matchID))
}

func (s *PlaytimeService) compute(ctx context.Context, ownerID, matchID string) (MatchPlaytime, error) {
	m, exists, err := s.matchRepo.GetByID(ctx, ownerID, matchID)
	if err != nil {
		return MatchPlaytime{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return MatchPlaytime{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	entries, err := s.rosterRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchPlaytime{}, fmt.Errorf("list roster entries: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Included {
			ids = append(ids, e.PlayerID)
		}
	}

	var rosterPlayers []player.Player
	if len(ids) > 0 {
		rosterPlayers, err = s.playerRepo.GetByIDs(ctx, ownerID, ids)
		if err != nil {
			return MatchPlaytime{}, fmt.Errorf("get roster players: %w", err)
		}
	}

	assignments, err := s.assignmentRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchPlaytime{}, fmt.Errorf("list period assignments: %w", err)
	}

	return MatchPlaytime{
		Match:     m,
		Summaries: playtime.Summarize(rosterPlayers, plan.NewSet(assignments), m.Periods()),
	}, nil
}

func summaryCacheKey(matchID string) string {
	return "playtime::" + matchID
}
