package sqlite

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/haakonrs/kampplan/internal/domain/plan"
	qb "github.com/haakonrs/kampplan/internal/platform/querybuilder"
)

type assignmentTableModel struct {
	MatchID   string    `db:"match_id"`
	PlayerID  string    `db:"player_id"`
	Period    int       `db:"period"`
	OnField   bool      `db:"on_field"`
	UpdatedAt time.Time `db:"updated_at"`
}

const assignmentUpsertSuffix = `ON CONFLICT (match_id, player_id, period) DO UPDATE SET
    on_field = excluded.on_field,
    updated_at = excluded.updated_at`

type AssignmentRepository struct {
	db *sqlx.DB
}

func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Upsert(ctx context.Context, item plan.Assignment) error {
	query, args, err := upsertAssignmentSQL([]plan.Assignment{item})
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "upsert period assignment")
	}
	return nil
}

func (r *AssignmentRepository) BulkUpsert(ctx context.Context, items []plan.Assignment) error {
	if len(items) == 0 {
		return nil
	}

	query, args, err := upsertAssignmentSQL(items)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx for bulk upsert")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "bulk upsert period assignments")
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit bulk upsert")
	}
	return nil
}

func upsertAssignmentSQL(items []plan.Assignment) (string, []any, error) {
	builder := qb.InsertInto("period_assignments").
		Columns("match_id", "player_id", "period", "on_field", "updated_at")
	for _, item := range items {
		builder.Values(item.MatchID, item.PlayerID, item.Period, item.OnField, item.UpdatedAt)
	}

	query, args, err := builder.Suffix(assignmentUpsertSuffix).ToSQL()
	if err != nil {
		return "", nil, errors.Wrap(err, "build upsert period assignment query")
	}
	return query, args, nil
}

func (r *AssignmentRepository) ListByMatch(ctx context.Context, matchID string) ([]plan.Assignment, error) {
	query, args, err := qb.Select("match_id", "player_id", "period", "on_field", "updated_at").
		From("period_assignments").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("period", "player_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list period assignments query")
	}

	var rows []assignmentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select period assignments")
	}

	out := make([]plan.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, plan.Assignment{
			MatchID:   row.MatchID,
			PlayerID:  row.PlayerID,
			Period:    row.Period,
			OnField:   row.OnField,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return out, nil
}

func (r *AssignmentRepository) DeleteByMatch(ctx context.Context, matchID string) error {
	query, args, err := qb.DeleteFrom("period_assignments").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete period assignments query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "delete period assignments")
	}
	return nil
}

func (r *AssignmentRepository) DeleteByPlayer(ctx context.Context, playerID string) ([]string, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin tx for delete period assignments by player")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Select("DISTINCT match_id").
		From("period_assignments").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("match_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select assigned matches query")
	}

	var matchIDs []string
	if err := tx.SelectContext(ctx, &matchIDs, query, args...); err != nil {
		return nil, errors.Wrap(err, "select assigned matches")
	}

	query, args, err = qb.DeleteFrom("period_assignments").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build delete period assignments by player query")
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "delete period assignments by player")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit delete period assignments by player")
	}
	return matchIDs, nil
}

// ReplaceForMatch deletes the match's assignment rows and writes the new
// set in one transaction.
func (r *AssignmentRepository) ReplaceForMatch(ctx context.Context, matchID string, items []plan.Assignment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx for replace")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("period_assignments").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete period assignments query")
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return errors.Wrap(err, "delete period assignments")
	}

	if len(items) > 0 {
		insertQuery, insertArgs, err := upsertAssignmentSQL(items)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return errors.Wrap(err, "insert period assignments")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit replace")
	}
	return nil
}
