package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("players").
		Where(Eq("owner_id", "u1"), Eq("position", "keeper")).
		OrderBy("name", "id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT id, name FROM players WHERE owner_id = ? AND position = ? ORDER BY name, id LIMIT 10"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"u1", "keeper"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectBuilderRequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestInCondition(t *testing.T) {
	query, args, err := Select("id").
		From("players").
		Where(In("id", []any{"a", "b"})).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "SELECT id FROM players WHERE id IN (?, ?)"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInConditionEmptyMatchesNothing(t *testing.T) {
	query, args, err := Select("id").From("players").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertBuilderWithSuffix(t *testing.T) {
	query, args, err := InsertInto("roster_entries").
		Columns("match_id", "player_id", "included").
		Values("m1", "p1", true).
		Suffix("ON CONFLICT (match_id, player_id) DO UPDATE SET included = excluded.included").
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "INSERT INTO roster_entries (match_id, player_id, included) VALUES (?, ?, ?) ON CONFLICT (match_id, player_id) DO UPDATE SET included = excluded.included"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertBuilderRowLengthMismatch(t *testing.T) {
	_, _, err := InsertInto("t").Columns("a", "b").Values("only").ToSQL()
	if err == nil {
		t.Fatal("expected error for row length mismatch")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("position", "attack").
		SetExpr("updated_at", "CURRENT_TIMESTAMP").
		Where(Eq("id", "p1"), Eq("owner_id", "u1")).
		ToSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE players SET position = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND owner_id = ?"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"attack", "p1", "u1"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestDeleteBuilderRequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("players").ToSQL(); err == nil {
		t.Fatal("expected error for missing where clause")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID       string `db:"id"`
		Name     string `db:"name"`
		Ignored  string `db:"-"`
		internal string
	}
	_ = row{internal: ""}

	query, args, err := InsertModel("players", row{ID: "p1", Name: "Anna"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "INSERT INTO players (id, name) VALUES (?, ?)"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{"p1", "Anna"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}
