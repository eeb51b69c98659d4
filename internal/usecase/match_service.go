package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/haakonrs/kampplan/internal/domain/match"
	"github.com/haakonrs/kampplan/internal/domain/plan"
	"github.com/haakonrs/kampplan/internal/domain/roster"
	"github.com/haakonrs/kampplan/internal/domain/savedplan"
	idgen "github.com/haakonrs/kampplan/internal/platform/id"
)

type CreateMatchInput struct {
	OwnerID             string
	Opponent            string
	Date                time.Time
	Home                bool
	DurationMinutes     int
	PeriodLengthMinutes int
	Headcount           int
	Formation           match.Formation
}

type UpdateMatchInput struct {
	OwnerID             string
	MatchID             string
	Opponent            string
	Date                time.Time
	Home                bool
	DurationMinutes     int
	PeriodLengthMinutes int
	Headcount           int
	Formation           match.Formation
}

// summaryInvalidator drops cached playtime summaries when the underlying
// assignment set changes.
type summaryInvalidator interface {
	Invalidate(ctx context.Context, matchID string)
}

// MatchService manages match configuration. Changing a match's period
// layout or headcount invalidates its live assignment set wholesale: the
// periods are renumbered and stale flags would silently misreport playtime.
type MatchService struct {
	matchRepo      match.Repository
	rosterRepo     roster.Repository
	assignmentRepo plan.Repository
	savedPlanRepo  savedplan.Repository
	ids            idgen.Generator
	invalidator    summaryInvalidator
	now            func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	rosterRepo roster.Repository,
	assignmentRepo plan.Repository,
	savedPlanRepo savedplan.Repository,
	ids idgen.Generator,
) *MatchService {
	return &MatchService{
		matchRepo:      matchRepo,
		rosterRepo:     rosterRepo,
		assignmentRepo: assignmentRepo,
		savedPlanRepo:  savedPlanRepo,
		ids:            ids,
		now:            time.Now,
	}
}

func (s *MatchService) SetInvalidator(invalidator summaryInvalidator) {
	s.invalidator = invalidator
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	input.OwnerID = strings.TrimSpace(input.OwnerID)
	if input.OwnerID == "" {
		return match.Match{}, fmt.Errorf("%w: owner_id is required", ErrInvalidInput)
	}

	matchID, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now().UTC()
	item := match.Match{
		ID:                  matchID,
		OwnerID:             input.OwnerID,
		Opponent:            strings.TrimSpace(input.Opponent),
		Date:                input.Date,
		Home:                input.Home,
		DurationMinutes:     input.DurationMinutes,
		PeriodLengthMinutes: input.PeriodLengthMinutes,
		Headcount:           input.Headcount,
		Formation:           input.Formation,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return item, nil
}

func (s *MatchService) Get(ctx context.Context, ownerID, matchID string) (match.Match, error) {
	item, exists, err := s.matchRepo.GetByID(ctx, ownerID, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return item, nil
}

// List returns the owner's matches ordered by date descending.
func (s *MatchService) List(ctx context.Context, ownerID string) ([]match.Match, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("%w: owner_id is required", ErrInvalidInput)
	}

	items, err := s.matchRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return items, nil
}

// Update rewrites the match configuration. When the duration, period length
// or headcount changes, every live period assignment of the match is
// deleted; the roster and saved plans survive.
func (s *MatchService) Update(ctx context.Context, input UpdateMatchInput) (match.Match, error) {
	existing, err := s.Get(ctx, input.OwnerID, input.MatchID)
	if err != nil {
		return match.Match{}, err
	}

	updated := existing
	updated.Opponent = strings.TrimSpace(input.Opponent)
	updated.Date = input.Date
	updated.Home = input.Home
	updated.DurationMinutes = input.DurationMinutes
	updated.PeriodLengthMinutes = input.PeriodLengthMinutes
	updated.Headcount = input.Headcount
	updated.Formation = input.Formation
	updated.UpdatedAt = s.now().UTC()

	if err := updated.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Update(ctx, updated); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	if existing.ConfigChanged(updated) {
		if err := s.assignmentRepo.DeleteByMatch(ctx, updated.ID); err != nil {
			return match.Match{}, fmt.Errorf("invalidate period assignments: %w", err)
		}
		if s.invalidator != nil {
			s.invalidator.Invalidate(ctx, updated.ID)
		}
	}

	return updated, nil
}

// Delete removes the match and everything hanging off it.
func (s *MatchService) Delete(ctx context.Context, ownerID, matchID string) error {
	if _, err := s.Get(ctx, ownerID, matchID); err != nil {
		return err
	}

	if err := s.assignmentRepo.DeleteByMatch(ctx, matchID); err != nil {
		return fmt.Errorf("delete period assignments: %w", err)
	}
	if err := s.rosterRepo.DeleteByMatch(ctx, matchID); err != nil {
		return fmt.Errorf("delete roster entries: %w", err)
	}
	if err := s.savedPlanRepo.DeleteByMatch(ctx, matchID); err != nil {
		return fmt.Errorf("delete saved plans: %w", err)
	}
	if err := s.matchRepo.Delete(ctx, ownerID, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx, matchID)
	}
	return nil
}
