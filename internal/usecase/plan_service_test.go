package usecase

import (
	"errors"
	"testing"
)

func TestPlanService_SetOnField_AdvisoryHeadcount(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)
	squad := f.seedSquad(t, m.ID, 8)

	// Filling exactly the target headcount reports a clean status.
	for _, p := range squad[:6] {
		f.setOnField(t, m.ID, 1, p.ID)
	}
	status, err := f.plans.SetOnField(t.Context(), testOwnerID, m.ID, 1, squad[6].ID, true)
	if err != nil {
		t.Fatalf("set on field: %v", err)
	}
	if !status.IsValidCount || status.OnFieldCount != 7 || status.Deviation != 0 {
		t.Fatalf("expected valid count 7, got %+v", status)
	}

	// One over target still succeeds, the deviation is advisory.
	status, err = f.plans.SetOnField(t.Context(), testOwnerID, m.ID, 1, squad[7].ID, true)
	if err != nil {
		t.Fatalf("set on field over target: %v", err)
	}
	if status.IsValidCount || status.Deviation != 1 {
		t.Fatalf("expected deviation +1, got %+v", status)
	}

	// Benching back down restores a valid count.
	status, err = f.plans.SetOnField(t.Context(), testOwnerID, m.ID, 1, squad[7].ID, false)
	if err != nil {
		t.Fatalf("bench player: %v", err)
	}
	if !status.IsValidCount || status.OnFieldCount != 7 {
		t.Fatalf("expected valid count after benching, got %+v", status)
	}
}

func TestPlanService_SetOnField_Rejections(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)
	squad := f.seedSquad(t, m.ID, 2)

	outsider, err := f.players.Create(t.Context(), CreatePlayerInput{
		OwnerID:  testOwnerID,
		Name:     "Not In Squad",
		Position: "midfield",
	})
	if err != nil {
		t.Fatalf("create outsider: %v", err)
	}

	tests := []struct {
		name     string
		period   int
		playerID string
	}{
		{name: "period zero", period: 0, playerID: squad[0].ID},
		{name: "period beyond count", period: 5, playerID: squad[0].ID},
		{name: "player not in roster", period: 1, playerID: outsider.ID},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.plans.SetOnField(t.Context(), testOwnerID, m.ID, tc.period, tc.playerID, true)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	if _, err := f.plans.SetOnField(t.Context(), testOwnerID, "missing", 1, squad[0].ID, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown match, got %v", err)
	}
}

func TestPlanService_CarryForward_FillsOnlyUnassigned(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)
	squad := f.seedSquad(t, m.ID, 3)

	f.setOnField(t, m.ID, 1, squad[0].ID, squad[1].ID)
	// Player 3 already has an explicit bench decision in period 2.
	if _, err := f.plans.SetOnField(t.Context(), testOwnerID, m.ID, 2, squad[2].ID, false); err != nil {
		t.Fatalf("bench player in period 2: %v", err)
	}

	filled, err := f.plans.CarryForward(t.Context(), testOwnerID, m.ID, 1)
	if err != nil {
		t.Fatalf("carry forward: %v", err)
	}
	if filled != 2 {
		t.Fatalf("expected 2 cells filled, got %d", filled)
	}

	grid, err := f.plans.Grid(t.Context(), testOwnerID, m.ID)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	for _, row := range grid.Rows {
		switch row.Player.ID {
		case squad[0].ID, squad[1].ID:
			if !row.Flags[1] {
				t.Fatalf("expected player %s carried into period 2", row.Player.ID)
			}
		case squad[2].ID:
			if row.Flags[1] {
				t.Fatalf("expected explicit bench decision preserved for %s", row.Player.ID)
			}
		}
	}

	// Re-running is a no-op: every source cell already has a target.
	filled, err = f.plans.CarryForward(t.Context(), testOwnerID, m.ID, 1)
	if err != nil {
		t.Fatalf("repeat carry forward: %v", err)
	}
	if filled != 0 {
		t.Fatalf("expected idempotent repeat, got %d fills", filled)
	}

	// The last period has no successor.
	if _, err := f.plans.CarryForward(t.Context(), testOwnerID, m.ID, 4); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for last period, got %v", err)
	}
}

func TestPlanService_Grid_ShapeAndStatuses(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)
	squad := f.seedSquad(t, m.ID, 4)

	f.setOnField(t, m.ID, 2, squad[0].ID, squad[1].ID)

	grid, err := f.plans.Grid(t.Context(), testOwnerID, m.ID)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}

	if len(grid.Periods) != 4 {
		t.Fatalf("expected 4 periods for 60/15, got %d", len(grid.Periods))
	}
	if len(grid.Rows) != 4 {
		t.Fatalf("expected 4 roster rows, got %d", len(grid.Rows))
	}
	for _, row := range grid.Rows {
		if len(row.Flags) != 4 {
			t.Fatalf("expected 4 flags per row, got %d", len(row.Flags))
		}
	}
	if len(grid.PeriodStatus) != 4 {
		t.Fatalf("expected a status per period, got %d", len(grid.PeriodStatus))
	}
	if got := grid.PeriodStatus[1].OnFieldCount; got != 2 {
		t.Fatalf("expected 2 on field in period 2, got %d", got)
	}
	if grid.PeriodStatus[1].IsValidCount {
		t.Fatalf("expected advisory deviation below target headcount")
	}
}

func TestPlanService_ValidatePeriod_GroupsByPosition(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)
	squad := f.seedSquad(t, m.ID, 7)

	for _, p := range squad {
		f.setOnField(t, m.ID, 1, p.ID)
	}

	report, err := f.plans.ValidatePeriod(t.Context(), testOwnerID, m.ID, 1)
	if err != nil {
		t.Fatalf("validate period: %v", err)
	}
	if report.OnFieldCount != 7 || !report.IsValidCount {
		t.Fatalf("expected full valid period, got %+v", report)
	}

	total := 0
	for _, group := range report.OnFieldByPosition {
		total += len(group.PlayerIDs)
	}
	if total != 7 {
		t.Fatalf("expected 7 grouped players, got %d", total)
	}

	if _, err := f.plans.ValidatePeriod(t.Context(), testOwnerID, m.ID, 9); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for out of range period, got %v", err)
	}
}
