package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/haakonrs/kampplan/internal/domain/match"
	"github.com/haakonrs/kampplan/internal/domain/plan"
	"github.com/haakonrs/kampplan/internal/domain/savedplan"
	idgen "github.com/haakonrs/kampplan/internal/platform/id"
)

type SavePlanInput struct {
	OwnerID     string
	MatchID     string
	Name        string
	Description string
}

// SavedPlanService snapshots and restores substitution plans. A snapshot
// is immutable once written; applying one replaces the match's live
// assignments wholesale.
type SavedPlanService struct {
	matchRepo      match.Repository
	assignmentRepo plan.Repository
	savedPlanRepo  savedplan.Repository
	ids            idgen.Generator
	invalidator    summaryInvalidator
	now            func() time.Time
}

func NewSavedPlanService(
	matchRepo match.Repository,
	assignmentRepo plan.Repository,
	savedPlanRepo savedplan.Repository,
	ids idgen.Generator,
) *SavedPlanService {
	return &SavedPlanService{
		matchRepo:      matchRepo,
		assignmentRepo: assignmentRepo,
		savedPlanRepo:  savedPlanRepo,
		ids:            ids,
		now:            time.Now,
	}
}

func (s *SavedPlanService) SetInvalidator(invalidator summaryInvalidator) {
	s.invalidator = invalidator
}

// Save snapshots the match's current live assignments under a name. The
// live plan is untouched. Saving an empty plan is allowed; applying it
// later clears the grid.
func (s *SavedPlanService) Save(ctx context.Context, input SavePlanInput) (savedplan.Plan, error) {
	if _, err := s.requireMatch(ctx, input.OwnerID, input.MatchID); err != nil {
		return savedplan.Plan{}, err
	}

	assignments, err := s.assignmentRepo.ListByMatch(ctx, input.MatchID)
	if err != nil {
		return savedplan.Plan{}, fmt.Errorf("list period assignments: %w", err)
	}

	planID, err := s.ids.NewID()
	if err != nil {
		return savedplan.Plan{}, fmt.Errorf("generate plan id: %w", err)
	}

	now := s.now().UTC()
	item := savedplan.Plan{
		ID:          planID,
		MatchID:     input.MatchID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   now,
		LastUsedAt:  now,
	}
	if err := item.Validate(); err != nil {
		return savedplan.Plan{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	cells := make([]savedplan.Cell, 0, len(assignments))
	for _, a := range assignments {
		cells = append(cells, savedplan.Cell{
			PlayerID: a.PlayerID,
			Period:   a.Period,
			OnField:  a.OnField,
		})
	}

	if err := s.savedPlanRepo.Save(ctx, item, cells); err != nil {
		return savedplan.Plan{}, fmt.Errorf("save plan snapshot: %w", err)
	}

	return item, nil
}

// List returns the match's snapshots, most recently used first.
func (s *SavedPlanService) List(ctx context.Context, ownerID, matchID string) ([]savedplan.Plan, error) {
	if _, err := s.requireMatch(ctx, ownerID, matchID); err != nil {
		return nil, err
	}

	items, err := s.savedPlanRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list plan snapshots: %w", err)
	}

	return items, nil
}

// Apply replaces the match's live assignments with the snapshot's cells
// and bumps the snapshot's last-used time. The snapshot must belong to
// the match.
func (s *SavedPlanService) Apply(ctx context.Context, ownerID, matchID, planID string) error {
	if _, err := s.requireMatch(ctx, ownerID, matchID); err != nil {
		return err
	}

	item, cells, exists, err := s.savedPlanRepo.Get(ctx, planID)
	if err != nil {
		return fmt.Errorf("get plan snapshot: %w", err)
	}
	if !exists || item.MatchID != matchID {
		return fmt.Errorf("%w: plan=%s", ErrNotFound, planID)
	}

	now := s.now().UTC()
	assignments := make([]plan.Assignment, 0, len(cells))
	for _, c := range cells {
		assignments = append(assignments, plan.Assignment{
			MatchID:   matchID,
			PlayerID:  c.PlayerID,
			Period:    c.Period,
			OnField:   c.OnField,
			UpdatedAt: now,
		})
	}

	if err := s.assignmentRepo.ReplaceForMatch(ctx, matchID, assignments); err != nil {
		return fmt.Errorf("replace period assignments: %w", err)
	}
	if err := s.savedPlanRepo.TouchLastUsed(ctx, planID, now); err != nil {
		return fmt.Errorf("touch plan last used: %w", err)
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx, matchID)
	}
	return nil
}

func (s *SavedPlanService) requireMatch(ctx context.Context, ownerID, matchID string) (match.Match, error) {
	ownerID = strings.TrimSpace(ownerID)
	matchID = strings.TrimSpace(matchID)
	if ownerID == "" || matchID == "" {
		return match.Match{}, fmt.Errorf("%w: owner_id and match_id are required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, ownerID, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return m, nil
}
