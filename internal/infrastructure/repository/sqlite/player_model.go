package sqlite

import (
	"time"

	"github.com/haakonrs/kampplan/internal/domain/player"
)

type playerTableModel struct {
	ID        string    `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Name      string    `db:"name"`
	Position  string    `db:"position"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		Position:  player.Position(m.Position),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
