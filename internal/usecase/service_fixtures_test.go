package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/haakonrs/kampplan/internal/domain/match"
	"github.com/haakonrs/kampplan/internal/domain/player"
	"github.com/haakonrs/kampplan/internal/infrastructure/repository/memory"
	"github.com/haakonrs/kampplan/internal/platform/cache"
)

const testOwnerID = "owner-1"

type seqIDGenerator struct {
	prefix string
	n      int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("%s-%03d", g.prefix, g.n), nil
}

// fixture wires every service against fresh memory repositories with a
// frozen clock.
type fixture struct {
	players     *PlayerService
	matches     *MatchService
	rosters     *RosterService
	plans       *PlanService
	playtimes   *PlaytimeService
	savedPlans  *SavedPlanService
	playerRepo  *memory.PlayerRepository
	matchRepo   *memory.MatchRepository
	rosterRepo  *memory.RosterRepository
	assignRepo  *memory.AssignmentRepository
	planRepo    *memory.SavedPlanRepository
	now         time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		playerRepo: memory.NewPlayerRepository(nil),
		matchRepo:  memory.NewMatchRepository(nil),
		rosterRepo: memory.NewRosterRepository(),
		assignRepo: memory.NewAssignmentRepository(),
		planRepo:   memory.NewSavedPlanRepository(),
		now:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return f.now }

	f.players = NewPlayerService(f.playerRepo, f.rosterRepo, f.assignRepo, &seqIDGenerator{prefix: "player"})
	f.players.now = clock

	f.matches = NewMatchService(f.matchRepo, f.rosterRepo, f.assignRepo, f.planRepo, &seqIDGenerator{prefix: "match"})
	f.matches.now = clock

	f.rosters = NewRosterService(f.matchRepo, f.playerRepo, f.rosterRepo)
	f.rosters.now = clock

	f.plans = NewPlanService(f.matchRepo, f.playerRepo, f.rosterRepo, f.assignRepo)
	f.plans.now = clock

	f.playtimes = NewPlaytimeService(f.matchRepo, f.playerRepo, f.rosterRepo, f.assignRepo, cache.NewStore(time.Minute))
	f.playtimes.now = clock

	f.savedPlans = NewSavedPlanService(f.matchRepo, f.assignRepo, f.planRepo, &seqIDGenerator{prefix: "plan"})
	f.savedPlans.now = clock

	f.players.SetInvalidator(f.playtimes)
	f.matches.SetInvalidator(f.playtimes)
	f.plans.SetInvalidator(f.playtimes)
	f.savedPlans.SetInvalidator(f.playtimes)

	return f
}

// seedMatch creates a 60 minute, 15 minute period, 7-a-side match.
func (f *fixture) seedMatch(t *testing.T) match.Match {
	t.Helper()
	return f.seedMatchOpponent(t, "Lyn IL")
}

func (f *fixture) seedMatchOpponent(t *testing.T, opponent string) match.Match {
	t.Helper()

	m, err := f.matches.Create(t.Context(), CreateMatchInput{
		OwnerID:             testOwnerID,
		Opponent:            opponent,
		Date:                time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC),
		Home:                true,
		DurationMinutes:     60,
		PeriodLengthMinutes: 15,
		Headcount:           7,
		Formation:           match.Formation433,
	})
	if err != nil {
		t.Fatalf("seed match: %v", err)
	}
	return m
}

// seedSquad creates count players and includes them all in the match roster.
func (f *fixture) seedSquad(t *testing.T, matchID string, count int) []player.Player {
	t.Helper()

	positions := []player.Position{
		player.PositionKeeper,
		player.PositionDefense,
		player.PositionDefense,
		player.PositionMidfield,
		player.PositionMidfield,
		player.PositionAttack,
		player.PositionAttack,
		player.PositionDefense,
		player.PositionMidfield,
		player.PositionAttack,
	}

	out := make([]player.Player, 0, count)
	for i := 0; i < count; i++ {
		p, err := f.players.Create(t.Context(), CreatePlayerInput{
			OwnerID:  testOwnerID,
			Name:     fmt.Sprintf("Player %02d", i+1),
			Position: positions[i%len(positions)],
		})
		if err != nil {
			t.Fatalf("seed player %d: %v", i+1, err)
		}
		if err := f.rosters.SetIncluded(t.Context(), testOwnerID, matchID, p.ID, true); err != nil {
			t.Fatalf("include player %d: %v", i+1, err)
		}
		out = append(out, p)
	}
	return out
}

func (f *fixture) setOnField(t *testing.T, matchID string, period int, playerIDs ...string) {
	t.Helper()

	for _, id := range playerIDs {
		if _, err := f.plans.SetOnField(t.Context(), testOwnerID, matchID, period, id, true); err != nil {
			t.Fatalf("set on field period=%d player=%s: %v", period, id, err)
		}
	}
}

func (f *fixture) assignmentCount(t *testing.T, matchID string) int {
	t.Helper()

	items, err := f.assignRepo.ListByMatch(context.Background(), matchID)
	if err != nil {
		t.Fatalf("list assignments: %v", err)
	}
	return len(items)
}
