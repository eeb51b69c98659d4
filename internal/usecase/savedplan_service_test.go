package usecase

import (
	"errors"
	"testing"
	"time"
)

func TestSavedPlanService_SaveDoesNotMutateLivePlan(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)
	squad := f.seedSquad(t, m.ID, 2)

	f.setOnField(t, m.ID, 1, squad[0].ID, squad[1].ID)
	liveBefore := f.assignmentCount(t, m.ID)

	saved, err := f.savedPlans.Save(t.Context(), SavePlanInput{
		OwnerID: testOwnerID,
		MatchID: m.ID,
		Name:    "First half press",
	})
	if err != nil {
		t.Fatalf("save plan: %v", err)
	}
	if saved.Name != "First half press" {
		t.Fatalf("unexpected plan name %q", saved.Name)
	}
	if !saved.CreatedAt.Equal(f.now) || !saved.LastUsedAt.Equal(f.now) {
		t.Fatalf("expected created and last-used stamped at save time, got %+v", saved)
	}

	if got := f.assignmentCount(t, m.ID); got != liveBefore {
		t.Fatalf("expected live plan untouched by save, got %d assignments", got)
	}
}

func TestSavedPlanService_ApplyReplacesWholesale(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)
	squad := f.seedSquad(t, m.ID, 3)

	f.setOnField(t, m.ID, 1, squad[0].ID)
	saved, err := f.savedPlans.Save(t.Context(), SavePlanInput{
		OwnerID: testOwnerID,
		MatchID: m.ID,
		Name:    "Opening lineup",
	})
	if err != nil {
		t.Fatalf("save plan: %v", err)
	}

	// Diverge the live plan after the snapshot.
	f.setOnField(t, m.ID, 2, squad[1].ID, squad[2].ID)
	if got := f.assignmentCount(t, m.ID); got != 3 {
		t.Fatalf("expected 3 live assignments before apply, got %d", got)
	}

	f.now = f.now.Add(time.Hour)
	if err := f.savedPlans.Apply(t.Context(), testOwnerID, m.ID, saved.ID); err != nil {
		t.Fatalf("apply plan: %v", err)
	}

	// Wholesale replace: later edits are gone, only the snapshot remains.
	if got := f.assignmentCount(t, m.ID); got != 1 {
		t.Fatalf("expected snapshot's single assignment after apply, got %d", got)
	}

	plans, err := f.savedPlans.List(t.Context(), testOwnerID, m.ID)
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	if len(plans) != 1 || !plans[0].LastUsedAt.Equal(f.now) {
		t.Fatalf("expected last-used bumped to apply time, got %+v", plans)
	}
}

func TestSavedPlanService_ListOrdersByLastUsed(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)
	f.seedSquad(t, m.ID, 1)

	a, err := f.savedPlans.Save(t.Context(), SavePlanInput{OwnerID: testOwnerID, MatchID: m.ID, Name: "A"})
	if err != nil {
		t.Fatalf("save plan A: %v", err)
	}
	f.now = f.now.Add(time.Minute)
	b, err := f.savedPlans.Save(t.Context(), SavePlanInput{OwnerID: testOwnerID, MatchID: m.ID, Name: "B"})
	if err != nil {
		t.Fatalf("save plan B: %v", err)
	}

	// Applying A makes it the most recently used.
	f.now = f.now.Add(time.Minute)
	if err := f.savedPlans.Apply(t.Context(), testOwnerID, m.ID, a.ID); err != nil {
		t.Fatalf("apply plan A: %v", err)
	}

	plans, err := f.savedPlans.List(t.Context(), testOwnerID, m.ID)
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	if len(plans) != 2 || plans[0].ID != a.ID || plans[1].ID != b.ID {
		t.Fatalf("expected order [A B], got %+v", plans)
	}
}

func TestSavedPlanService_Rejections(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)
	other := f.seedMatchOpponent(t, "Vardal IL")

	if _, err := f.savedPlans.Save(t.Context(), SavePlanInput{OwnerID: testOwnerID, MatchID: m.ID, Name: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}

	saved, err := f.savedPlans.Save(t.Context(), SavePlanInput{OwnerID: testOwnerID, MatchID: m.ID, Name: "A"})
	if err != nil {
		t.Fatalf("save plan: %v", err)
	}

	// A snapshot cannot be applied to a different match.
	if err := f.savedPlans.Apply(t.Context(), testOwnerID, other.ID, saved.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-match apply, got %v", err)
	}
	if err := f.savedPlans.Apply(t.Context(), testOwnerID, m.ID, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown plan, got %v", err)
	}
}
