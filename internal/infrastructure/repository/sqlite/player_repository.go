package sqlite

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/haakonrs/kampplan/internal/domain/player"
	qb "github.com/haakonrs/kampplan/internal/platform/querybuilder"
)

const playerColumns = "id, owner_id, name, position, created_at, updated_at"

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	query, args, err := qb.InsertInto("players").
		Columns("id", "owner_id", "name", "position", "created_at", "updated_at").
		Values(item.ID, item.OwnerID, item.Name, string(item.Position), item.CreatedAt, item.UpdatedAt).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build insert player query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert player")
	}
	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, ownerID, playerID string) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("owner_id", ownerID), qb.Eq("id", playerID))
}

func (r *PlayerRepository) GetByName(ctx context.Context, ownerID, name string) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("owner_id", ownerID), qb.Eq("name", name))
}

func (r *PlayerRepository) getOne(ctx context.Context, conditions ...qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns).From("players").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return player.Player{}, false, errors.Wrap(err, "build get player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, errors.Wrap(err, "get player")
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, ownerID string, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	ids := make([]any, 0, len(playerIDs))
	for _, id := range playerIDs {
		ids = append(ids, id)
	}

	query, args, err := qb.Select(playerColumns).From("players").
		Where(qb.Eq("owner_id", ownerID), qb.In("id", ids)).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build get players by ids query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select players by ids")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) ListByOwner(ctx context.Context, ownerID string) ([]player.Player, error) {
	query, args, err := qb.Select(playerColumns).From("players").
		Where(qb.Eq("owner_id", ownerID)).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list players query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) UpdatePosition(ctx context.Context, ownerID, playerID string, position player.Position) error {
	query, args, err := qb.Update("players").
		Set("position", string(position)).
		SetExpr("updated_at", "CURRENT_TIMESTAMP").
		Where(qb.Eq("owner_id", ownerID), qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build update player position query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "update player position")
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, ownerID, playerID string) error {
	query, args, err := qb.DeleteFrom("players").
		Where(qb.Eq("owner_id", ownerID), qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build delete player query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "delete player")
	}
	return nil
}
