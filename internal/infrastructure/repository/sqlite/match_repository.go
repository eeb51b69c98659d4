package sqlite

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/haakonrs/kampplan/internal/domain/match"
	qb "github.com/haakonrs/kampplan/internal/platform/querybuilder"
)

const matchColumns = "id, owner_id, opponent, match_date, home, duration_minutes, period_length_minutes, headcount, formation, created_at, updated_at"

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	query, args, err := qb.InsertInto("matches").
		Columns("id", "owner_id", "opponent", "match_date", "home", "duration_minutes", "period_length_minutes", "headcount", "formation", "created_at", "updated_at").
		Values(item.ID, item.OwnerID, item.Opponent, item.Date, item.Home, item.DurationMinutes, item.PeriodLengthMinutes, item.Headcount, string(item.Formation), item.CreatedAt, item.UpdatedAt).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build insert match query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert match")
	}
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, ownerID, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns).From("matches").
		Where(qb.Eq("owner_id", ownerID), qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, errors.Wrap(err, "build get match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, errors.Wrap(err, "get match")
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) ListByOwner(ctx context.Context, ownerID string) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns).From("matches").
		Where(qb.Eq("owner_id", ownerID)).
		OrderBy("match_date DESC", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list matches query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select matches")
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	query, args, err := qb.Update("matches").
		Set("opponent", item.Opponent).
		Set("match_date", item.Date).
		Set("home", item.Home).
		Set("duration_minutes", item.DurationMinutes).
		Set("period_length_minutes", item.PeriodLengthMinutes).
		Set("headcount", item.Headcount).
		Set("formation", string(item.Formation)).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("owner_id", item.OwnerID), qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update match query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "update match")
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, ownerID, matchID string) error {
	query, args, err := qb.DeleteFrom("matches").
		Where(qb.Eq("owner_id", ownerID), qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete match query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "delete match")
	}
	return nil
}
