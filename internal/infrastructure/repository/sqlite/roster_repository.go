package sqlite

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/haakonrs/kampplan/internal/domain/roster"
	qb "github.com/haakonrs/kampplan/internal/platform/querybuilder"
)

type rosterTableModel struct {
	MatchID   string    `db:"match_id"`
	PlayerID  string    `db:"player_id"`
	Included  bool      `db:"included"`
	UpdatedAt time.Time `db:"updated_at"`
}

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) Upsert(ctx context.Context, entry roster.Entry) error {
	query, args, err := qb.InsertInto("roster_entries").
		Columns("match_id", "player_id", "included", "updated_at").
		Values(entry.MatchID, entry.PlayerID, entry.Included, entry.UpdatedAt).
		Suffix(`ON CONFLICT (match_id, player_id) DO UPDATE SET
    included = excluded.included,
    updated_at = excluded.updated_at`).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build upsert roster entry query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "upsert roster entry")
	}
	return nil
}

func (r *RosterRepository) ListByMatch(ctx context.Context, matchID string) ([]roster.Entry, error) {
	query, args, err := qb.Select("match_id", "player_id", "included", "updated_at").
		From("roster_entries").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list roster entries query")
	}

	var rows []rosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select roster entries")
	}

	out := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Entry{
			MatchID:   row.MatchID,
			PlayerID:  row.PlayerID,
			Included:  row.Included,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return out, nil
}

func (r *RosterRepository) DeleteByPlayer(ctx context.Context, playerID string) ([]string, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin tx for delete roster entries by player")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Select("DISTINCT match_id").
		From("roster_entries").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("match_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select rostered matches query")
	}

	var matchIDs []string
	if err := tx.SelectContext(ctx, &matchIDs, query, args...); err != nil {
		return nil, errors.Wrap(err, "select rostered matches")
	}

	query, args, err = qb.DeleteFrom("roster_entries").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build delete roster entries by player query")
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "delete roster entries by player")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit delete roster entries by player")
	}
	return matchIDs, nil
}

func (r *RosterRepository) DeleteByMatch(ctx context.Context, matchID string) error {
	query, args, err := qb.DeleteFrom("roster_entries").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete roster entries query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "delete roster entries")
	}
	return nil
}
