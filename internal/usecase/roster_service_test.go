package usecase

import (
	"errors"
	"testing"

	"github.com/haakonrs/kampplan/internal/domain/player"
)

func TestRosterService_SetIncluded_Idempotent(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)

	p, err := f.players.Create(t.Context(), CreatePlayerInput{
		OwnerID:  testOwnerID,
		Name:     "Aksel Berg",
		Position: player.PositionKeeper,
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := f.rosters.SetIncluded(t.Context(), testOwnerID, m.ID, p.ID, true); err != nil {
			t.Fatalf("include attempt %d: %v", i+1, err)
		}
	}

	members, err := f.rosters.List(t.Context(), testOwnerID, m.ID)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(members) != 1 || !members[0].Included {
		t.Fatalf("expected single included member, got %+v", members)
	}

	// Excluding keeps the player in the pool view but drops the flag.
	if err := f.rosters.SetIncluded(t.Context(), testOwnerID, m.ID, p.ID, false); err != nil {
		t.Fatalf("exclude: %v", err)
	}
	members, err = f.rosters.List(t.Context(), testOwnerID, m.ID)
	if err != nil {
		t.Fatalf("list roster after exclude: %v", err)
	}
	if len(members) != 1 || members[0].Included {
		t.Fatalf("expected excluded member still listed, got %+v", members)
	}
}

func TestRosterService_SetIncluded_Rejections(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)

	if err := f.rosters.SetIncluded(t.Context(), testOwnerID, m.ID, "missing", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}
	if err := f.rosters.SetIncluded(t.Context(), testOwnerID, "missing", "whatever", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown match, got %v", err)
	}
	if err := f.rosters.SetIncluded(t.Context(), testOwnerID, m.ID, " ", true); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank player id, got %v", err)
	}
}

func TestRosterService_List_OrdersByPositionGroup(t *testing.T) {
	f := newFixture(t)
	m := f.seedMatch(t)

	mk := func(name string, pos player.Position) player.Player {
		p, err := f.players.Create(t.Context(), CreatePlayerInput{OwnerID: testOwnerID, Name: name, Position: pos})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		return p
	}

	striker := mk("Anders", player.PositionAttack)
	keeper := mk("Zorro", player.PositionKeeper)
	backA := mk("Bjarne", player.PositionDefense)
	backB := mk("Arne", player.PositionDefense)

	members, err := f.rosters.List(t.Context(), testOwnerID, m.ID)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}

	got := make([]string, 0, len(members))
	for _, member := range members {
		got = append(got, member.Player.ID)
	}
	// Keeper first, then defense alphabetically, then attack.
	expected := []string{keeper.ID, backB.ID, backA.ID, striker.ID}
	if len(got) != len(expected) {
		t.Fatalf("expected %d members, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected order %v, got %v", expected, got)
		}
	}
}
