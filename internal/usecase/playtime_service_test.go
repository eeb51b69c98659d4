package usecase

import (
	"testing"
)

func TestPlaytimeService_Summary_ComputesAndCaches(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)
	squad := f.seedSquad(t, m.ID, 3)

	// Player 1 plays all four periods, player 2 the first two, player 3 none.
	for period := 1; period <= 4; period++ {
		f.setOnField(t, m.ID, period, squad[0].ID)
	}
	f.setOnField(t, m.ID, 1, squad[1].ID)
	f.setOnField(t, m.ID, 2, squad[1].ID)

	result, err := f.playtimes.Summary(t.Context(), testOwnerID, m.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(result.Summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(result.Summaries))
	}

	first := result.Summaries[0]
	if first.PlayerID != squad[0].ID || first.TotalMinutes != 60 || first.PeriodsPlayed != 4 {
		t.Fatalf("expected full-match player first, got %+v", first)
	}
	second := result.Summaries[1]
	if second.PlayerID != squad[1].ID || second.TotalMinutes != 30 || second.Substitutions != 1 {
		t.Fatalf("expected half-match player second, got %+v", second)
	}
	third := result.Summaries[2]
	if third.TotalMinutes != 0 || third.AverageMinutesPerPeriod != 0 {
		t.Fatalf("expected zero summary for benched player, got %+v", third)
	}
}

func TestPlaytimeService_Summary_InvalidatedByMutation(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)
	squad := f.seedSquad(t, m.ID, 2)

	f.setOnField(t, m.ID, 1, squad[0].ID)

	before, err := f.playtimes.Summary(t.Context(), testOwnerID, m.ID)
	if err != nil {
		t.Fatalf("summary before: %v", err)
	}
	if before.Summaries[0].TotalMinutes != 15 {
		t.Fatalf("expected 15 minutes before mutation, got %d", before.Summaries[0].TotalMinutes)
	}

	// SetOnField invalidates the cached summary through the service wiring.
	f.setOnField(t, m.ID, 2, squad[0].ID)

	after, err := f.playtimes.Summary(t.Context(), testOwnerID, m.ID)
	if err != nil {
		t.Fatalf("summary after: %v", err)
	}
	if after.Summaries[0].TotalMinutes != 30 {
		t.Fatalf("expected cache invalidated after mutation, got %d minutes", after.Summaries[0].TotalMinutes)
	}
}
