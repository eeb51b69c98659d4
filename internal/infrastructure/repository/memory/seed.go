package memory

import (
	"time"

	"github.com/haakonrs/kampplan/internal/domain/match"
	"github.com/haakonrs/kampplan/internal/domain/player"
)

// Demo data for running without a database. Names follow the Norwegian
// youth-football setting the app was built for.

const MatchIDDemoCup = "demo-cup-round-1"

func SeedPlayers(ownerID string) []player.Player {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	mk := func(id, name string, pos player.Position) player.Player {
		return player.Player{
			ID:        id,
			OwnerID:   ownerID,
			Name:      name,
			Position:  pos,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	return []player.Player{
		mk("demo-gk-01", "Aksel Berg", player.PositionKeeper),
		mk("demo-def-01", "Birk Dahl", player.PositionDefense),
		mk("demo-def-02", "Casper Eide", player.PositionDefense),
		mk("demo-def-03", "Didrik Foss", player.PositionDefense),
		mk("demo-mid-01", "Emil Grande", player.PositionMidfield),
		mk("demo-mid-02", "Filip Haug", player.PositionMidfield),
		mk("demo-mid-03", "Gustav Iversen", player.PositionMidfield),
		mk("demo-att-01", "Henrik Juul", player.PositionAttack),
		mk("demo-att-02", "Iver Krog", player.PositionAttack),
		mk("demo-att-03", "Jonas Lunde", player.PositionAttack),
	}
}

func SeedMatches(ownerID string) []match.Match {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	return []match.Match{
		{
			ID:                  MatchIDDemoCup,
			OwnerID:             ownerID,
			Opponent:            "Lyn IL",
			Date:                time.Date(2026, time.March, 14, 13, 0, 0, 0, time.UTC),
			Home:                true,
			DurationMinutes:     60,
			PeriodLengthMinutes: 15,
			Headcount:           7,
			Formation:           match.Formation433,
			CreatedAt:           now,
			UpdatedAt:           now,
		},
	}
}
