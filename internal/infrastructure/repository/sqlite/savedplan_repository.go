package sqlite

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/haakonrs/kampplan/internal/domain/savedplan"
	qb "github.com/haakonrs/kampplan/internal/platform/querybuilder"
)

type savedPlanTableModel struct {
	ID          string    `db:"id"`
	MatchID     string    `db:"match_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	LastUsedAt  time.Time `db:"last_used_at"`
}

func (m savedPlanTableModel) toDomain() savedplan.Plan {
	return savedplan.Plan{
		ID:          m.ID,
		MatchID:     m.MatchID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		LastUsedAt:  m.LastUsedAt,
	}
}

type savedPlanDetailModel struct {
	PlanID   string `db:"plan_id"`
	PlayerID string `db:"player_id"`
	Period   int    `db:"period"`
	OnField  bool   `db:"on_field"`
}

const savedPlanColumns = "id, match_id, name, description, created_at, last_used_at"

type SavedPlanRepository struct {
	db *sqlx.DB
}

func NewSavedPlanRepository(db *sqlx.DB) *SavedPlanRepository {
	return &SavedPlanRepository{db: db}
}

func (r *SavedPlanRepository) Save(ctx context.Context, item savedplan.Plan, cells []savedplan.Cell) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx for plan save")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	planQuery, planArgs, err := qb.InsertInto("saved_plans").
		Columns("id", "match_id", "name", "description", "created_at", "last_used_at").
		Values(item.ID, item.MatchID, item.Name, item.Description, item.CreatedAt, item.LastUsedAt).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build insert saved plan query")
	}
	if _, err := tx.ExecContext(ctx, planQuery, planArgs...); err != nil {
		return errors.Wrap(err, "insert saved plan")
	}

	if len(cells) > 0 {
		builder := qb.InsertInto("saved_plan_details").
			Columns("plan_id", "player_id", "period", "on_field")
		for _, cell := range cells {
			builder.Values(item.ID, cell.PlayerID, cell.Period, cell.OnField)
		}
		detailQuery, detailArgs, err := builder.ToSQL()
		if err != nil {
			return errors.Wrap(err, "build insert saved plan details query")
		}
		if _, err := tx.ExecContext(ctx, detailQuery, detailArgs...); err != nil {
			return errors.Wrap(err, "insert saved plan details")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit plan save")
	}
	return nil
}

func (r *SavedPlanRepository) Get(ctx context.Context, planID string) (savedplan.Plan, []savedplan.Cell, bool, error) {
	planQuery, planArgs, err := qb.Select(savedPlanColumns).From("saved_plans").
		Where(qb.Eq("id", planID)).
		ToSQL()
	if err != nil {
		return savedplan.Plan{}, nil, false, errors.Wrap(err, "build get saved plan query")
	}

	var row savedPlanTableModel
	if err := r.db.GetContext(ctx, &row, planQuery, planArgs...); err != nil {
		if isNotFound(err) {
			return savedplan.Plan{}, nil, false, nil
		}
		return savedplan.Plan{}, nil, false, errors.Wrap(err, "get saved plan")
	}

	detailQuery, detailArgs, err := qb.Select("plan_id", "player_id", "period", "on_field").
		From("saved_plan_details").
		Where(qb.Eq("plan_id", planID)).
		OrderBy("period", "player_id").
		ToSQL()
	if err != nil {
		return savedplan.Plan{}, nil, false, errors.Wrap(err, "build get saved plan details query")
	}

	var detailRows []savedPlanDetailModel
	if err := r.db.SelectContext(ctx, &detailRows, detailQuery, detailArgs...); err != nil {
		return savedplan.Plan{}, nil, false, errors.Wrap(err, "select saved plan details")
	}

	cells := make([]savedplan.Cell, 0, len(detailRows))
	for _, d := range detailRows {
		cells = append(cells, savedplan.Cell{
			PlayerID: d.PlayerID,
			Period:   d.Period,
			OnField:  d.OnField,
		})
	}

	return row.toDomain(), cells, true, nil
}

func (r *SavedPlanRepository) ListByMatch(ctx context.Context, matchID string) ([]savedplan.Plan, error) {
	query, args, err := qb.Select(savedPlanColumns).From("saved_plans").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("last_used_at DESC", "created_at DESC", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list saved plans query")
	}

	var rows []savedPlanTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select saved plans")
	}

	out := make([]savedplan.Plan, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SavedPlanRepository) TouchLastUsed(ctx context.Context, planID string, usedAt time.Time) error {
	query, args, err := qb.Update("saved_plans").
		Set("last_used_at", usedAt).
		Where(qb.Eq("id", planID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build touch saved plan query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "touch saved plan")
	}
	return nil
}

func (r *SavedPlanRepository) DeleteByMatch(ctx context.Context, matchID string) error {
	// Details cascade via the plan_id foreign key.
	query, args, err := qb.DeleteFrom("saved_plans").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete saved plans query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "delete saved plans")
	}
	return nil
}
