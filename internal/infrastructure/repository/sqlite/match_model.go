package sqlite

import (
	"time"

	"github.com/haakonrs/kampplan/internal/domain/match"
)

type matchTableModel struct {
	ID                  string    `db:"id"`
	OwnerID             string    `db:"owner_id"`
	Opponent            string    `db:"opponent"`
	MatchDate           time.Time `db:"match_date"`
	Home                bool      `db:"home"`
	DurationMinutes     int       `db:"duration_minutes"`
	PeriodLengthMinutes int       `db:"period_length_minutes"`
	Headcount           int       `db:"headcount"`
	Formation           string    `db:"formation"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:                  m.ID,
		OwnerID:             m.OwnerID,
		Opponent:            m.Opponent,
		Date:                m.MatchDate,
		Home:                m.Home,
		DurationMinutes:     m.DurationMinutes,
		PeriodLengthMinutes: m.PeriodLengthMinutes,
		Headcount:           m.Headcount,
		Formation:           match.Formation(m.Formation),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
