package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/haakonrs/kampplan/internal/domain/match"
)

func TestMatchService_Create_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		input CreateMatchInput
	}{
		{
			name: "duration below minimum",
			input: CreateMatchInput{
				OwnerID: testOwnerID, Opponent: "X",
				DurationMinutes: 10, PeriodLengthMinutes: 5, Headcount: 7,
			},
		},
		{
			name: "period length not allowed",
			input: CreateMatchInput{
				OwnerID: testOwnerID, Opponent: "X",
				DurationMinutes: 60, PeriodLengthMinutes: 7, Headcount: 7,
			},
		},
		{
			name: "headcount out of range",
			input: CreateMatchInput{
				OwnerID: testOwnerID, Opponent: "X",
				DurationMinutes: 60, PeriodLengthMinutes: 15, Headcount: 12,
			},
		},
		{
			name: "missing owner",
			input: CreateMatchInput{
				Opponent:        "X",
				DurationMinutes: 60, PeriodLengthMinutes: 15, Headcount: 7,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.input.Date = time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)
			if _, err := f.matches.Create(t.Context(), tc.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestMatchService_Update_ConfigChangeInvalidatesPlan(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)
	squad := f.seedSquad(t, m.ID, 2)

	f.setOnField(t, m.ID, 1, squad[0].ID, squad[1].ID)
	if got := f.assignmentCount(t, m.ID); got != 2 {
		t.Fatalf("expected 2 assignments seeded, got %d", got)
	}

	base := UpdateMatchInput{
		OwnerID:             testOwnerID,
		MatchID:             m.ID,
		Opponent:            m.Opponent,
		Date:                m.Date,
		Home:                m.Home,
		DurationMinutes:     m.DurationMinutes,
		PeriodLengthMinutes: m.PeriodLengthMinutes,
		Headcount:           m.Headcount,
		Formation:           m.Formation,
	}

	// Renaming the opponent keeps the plan.
	renamed := base
	renamed.Opponent = "Vardal IL"
	if _, err := f.matches.Update(t.Context(), renamed); err != nil {
		t.Fatalf("rename update: %v", err)
	}
	if got := f.assignmentCount(t, m.ID); got != 2 {
		t.Fatalf("expected plan to survive a rename, got %d assignments", got)
	}

	// Changing the period layout deletes every assignment.
	reshaped := renamed
	reshaped.PeriodLengthMinutes = 10
	if _, err := f.matches.Update(t.Context(), reshaped); err != nil {
		t.Fatalf("reshape update: %v", err)
	}
	if got := f.assignmentCount(t, m.ID); got != 0 {
		t.Fatalf("expected plan wiped on config change, got %d assignments", got)
	}
}

func TestMatchService_Delete_Cascades(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)
	squad := f.seedSquad(t, m.ID, 2)
	f.setOnField(t, m.ID, 1, squad[0].ID)

	if _, err := f.savedPlans.Save(t.Context(), SavePlanInput{OwnerID: testOwnerID, MatchID: m.ID, Name: "A"}); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	if err := f.matches.Delete(t.Context(), testOwnerID, m.ID); err != nil {
		t.Fatalf("delete match: %v", err)
	}

	if _, err := f.matches.Get(t.Context(), testOwnerID, m.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected match gone, got %v", err)
	}
	if got := f.assignmentCount(t, m.ID); got != 0 {
		t.Fatalf("expected assignments gone, got %d", got)
	}
	entries, err := f.rosterRepo.ListByMatch(t.Context(), m.ID)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected roster entries gone, got %d", len(entries))
	}
	plans, err := f.planRepo.ListByMatch(t.Context(), m.ID)
	if err != nil {
		t.Fatalf("list saved plans: %v", err)
	}
	if len(plans) != 0 {
		t.Fatalf("expected saved plans gone, got %d", len(plans))
	}
}

func TestMatchService_List_OrdersByDateDescending(t *testing.T) {
	f := newFixture(t)

	mk := func(opponent string, date time.Time) match.Match {
		m, err := f.matches.Create(t.Context(), CreateMatchInput{
			OwnerID:             testOwnerID,
			Opponent:            opponent,
			Date:                date,
			DurationMinutes:     60,
			PeriodLengthMinutes: 15,
			Headcount:           7,
		})
		if err != nil {
			t.Fatalf("create match vs %s: %v", opponent, err)
		}
		return m
	}

	older := mk("Older", time.Date(2026, 3, 7, 13, 0, 0, 0, time.UTC))
	newer := mk("Newer", time.Date(2026, 3, 21, 13, 0, 0, 0, time.UTC))

	items, err := f.matches.List(t.Context(), testOwnerID)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(items) != 2 || items[0].ID != newer.ID || items[1].ID != older.ID {
		t.Fatalf("expected newest first, got %+v", items)
	}
}
