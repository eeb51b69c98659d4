package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/haakonrs/kampplan/internal/domain/match"
	"github.com/haakonrs/kampplan/internal/domain/plan"
	"github.com/haakonrs/kampplan/internal/domain/player"
	"github.com/haakonrs/kampplan/internal/domain/roster"
)

// PlanGrid is the full editable view of a match's substitution plan.
type PlanGrid struct {
	Match        match.Match
	Periods      []match.Period
	Rows         []PlanRow
	PeriodStatus []plan.CellStatus
}

// PlanRow is one included roster player with effective per-period flags.
type PlanRow struct {
	Player player.Player
	Flags  []bool
}

// PlanService validates and mutates period assignments. Headcount checks
// are advisory throughout: a deviation is surfaced as data, never blocks a
// write, since real rosters are temporarily under- or overstaffed during
// live editing.
type PlanService struct {
	matchRepo      match.Repository
	playerRepo     player.Repository
	rosterRepo     roster.Repository
	assignmentRepo plan.Repository
	invalidator    summaryInvalidator
	now            func() time.Time
}

func NewPlanService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	assignmentRepo plan.Repository,
) *PlanService {
	return &PlanService{
		matchRepo:      matchRepo,
		playerRepo:     playerRepo,
		rosterRepo:     rosterRepo,
		assignmentRepo: assignmentRepo,
		now:            time.Now,
	}
}

func (s *PlanService) SetInvalidator(invalidator summaryInvalidator) {
	s.invalidator = invalidator
}

// SetOnField mutates exactly one cell and reports the period's advisory
// headcount status. It never auto-balances other players.
func (s *PlanService) SetOnField(ctx context.Context, ownerID, matchID string, period int, playerID string, onField bool) (plan.CellStatus, error) {
	m, err := s.requireMatch(ctx, ownerID, matchID)
	if err != nil {
		return plan.CellStatus{}, err
	}
	if period < 1 || period > m.PeriodCount() {
		return plan.CellStatus{}, fmt.Errorf("%w: period=%d of %d: %v", ErrInvalidInput, period, m.PeriodCount(), plan.ErrPeriodOutOfRange)
	}

	included, err := s.includedPlayers(ctx, ownerID, matchID)
	if err != nil {
		return plan.CellStatus{}, err
	}
	if !containsPlayer(included, playerID) {
		return plan.CellStatus{}, fmt.Errorf("%w: player=%s: %v", ErrInvalidInput, playerID, plan.ErrPlayerNotInRoster)
	}

	set, err := s.loadSet(ctx, matchID)
	if err != nil {
		return plan.CellStatus{}, err
	}
	set.SetOnField(playerID, period, onField)

	item := plan.Assignment{
		MatchID:   matchID,
		PlayerID:  playerID,
		Period:    period,
		OnField:   onField,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.assignmentRepo.Upsert(ctx, item); err != nil {
		return plan.CellStatus{}, fmt.Errorf("upsert period assignment: %w", err)
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx, matchID)
	}
	return plan.Status(set, period, m.Headcount), nil
}

// ValidatePeriod reports the on-field count, the deviation from the target
// headcount, and the on-field players grouped by position.
func (s *PlanService) ValidatePeriod(ctx context.Context, ownerID, matchID string, period int) (plan.PeriodReport, error) {
	m, err := s.requireMatch(ctx, ownerID, matchID)
	if err != nil {
		return plan.PeriodReport{}, err
	}
	if period < 1 || period > m.PeriodCount() {
		return plan.PeriodReport{}, fmt.Errorf("%w: period=%d of %d: %v", ErrInvalidInput, period, m.PeriodCount(), plan.ErrPeriodOutOfRange)
	}

	included, err := s.includedPlayers(ctx, ownerID, matchID)
	if err != nil {
		return plan.PeriodReport{}, err
	}

	set, err := s.loadSet(ctx, matchID)
	if err != nil {
		return plan.PeriodReport{}, err
	}

	var positionTargets map[player.Position]int
	if m.Formation != "" {
		positionTargets = m.Formation.PositionTargets(m.Headcount)
	}

	return plan.Report(set, included, period, m.Headcount, positionTargets), nil
}

// CarryForward copies period fromPeriod's flags into the next period,
// filling only cells without an explicit assignment. The fills are written
// atomically; the returned count is the number of cells filled.
func (s *PlanService) CarryForward(ctx context.Context, ownerID, matchID string, fromPeriod int) (int, error) {
	m, err := s.requireMatch(ctx, ownerID, matchID)
	if err != nil {
		return 0, err
	}
	if fromPeriod < 1 || fromPeriod >= m.PeriodCount() {
		return 0, fmt.Errorf("%w: carry-forward source period=%d of %d: %v", ErrInvalidInput, fromPeriod, m.PeriodCount(), plan.ErrPeriodOutOfRange)
	}

	set, err := s.loadSet(ctx, matchID)
	if err != nil {
		return 0, err
	}

	fills := set.CarryForward(fromPeriod)
	if len(fills) == 0 {
		return 0, nil
	}

	now := s.now().UTC()
	for i := range fills {
		fills[i].MatchID = matchID
		fills[i].UpdatedAt = now
	}
	if err := s.assignmentRepo.BulkUpsert(ctx, fills); err != nil {
		return 0, fmt.Errorf("carry forward assignments: %w", err)
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx, matchID)
	}
	return len(fills), nil
}

// Grid returns the full plan view for rendering and export.
func (s *PlanService) Grid(ctx context.Context, ownerID, matchID string) (PlanGrid, error) {
	m, err := s.requireMatch(ctx, ownerID, matchID)
	if err != nil {
		return PlanGrid{}, err
	}

	included, err := s.includedPlayers(ctx, ownerID, matchID)
	if err != nil {
		return PlanGrid{}, err
	}

	set, err := s.loadSet(ctx, matchID)
	if err != nil {
		return PlanGrid{}, err
	}

	periods := m.Periods()
	rows := make([]PlanRow, 0, len(included))
	for _, p := range included {
		rows = append(rows, PlanRow{
			Player: p,
			Flags:  set.Flags(p.ID, len(periods)),
		})
	}

	statuses := make([]plan.CellStatus, 0, len(periods))
	for _, p := range periods {
		statuses = append(statuses, plan.Status(set, p.Index, m.Headcount))
	}

	return PlanGrid{
		Match:        m,
		Periods:      periods,
		Rows:         rows,
		PeriodStatus: statuses,
	}, nil
}

func (s *PlanService) requireMatch(ctx context.Context, ownerID, matchID string) (match.Match, error) {
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

// includedPlayers returns the included roster players sorted canonically.
func (s *PlanService) includedPlayers(ctx context.Context, ownerID, matchID string) ([]player.Player, error) {
	entries, err := s.rosterRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list roster entries: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Included {
			ids = append(ids, e.PlayerID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	players, err := s.playerRepo.GetByIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("get roster players: %w", err)
	}

	members := make([]roster.Member, 0, len(players))
	for _, p := range players {
		members = append(members, roster.Member{Player: p, Included: true})
	}
	return roster.IncludedPlayers(members), nil
}

func (s *PlanService) loadSet(ctx context.Context, matchID string) (*plan.Set, error) {
	assignments, err := s.assignmentRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list period assignments: %w", err)
	}
	return plan.NewSet(assignments), nil
}

func containsPlayer(players []player.Player, playerID string) bool {
	for _, p := range players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
