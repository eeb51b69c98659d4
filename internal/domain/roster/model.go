package roster

import (
	"sort"
	"time"

	"github.com/haakonrs/kampplan/internal/domain/player"
)

// Entry links a player to a match roster. Included players are eligible for
// period assignments in that match.
type Entry struct {
	MatchID   string
	PlayerID  string
	Included  bool
	UpdatedAt time.Time
}

// Member is a roster row joined with its player for presentation.
type Member struct {
	Player   player.Player
	Included bool
}

// SortMembers orders members by position group, then name, then id.
func SortMembers(members []Member) {
	sort.SliceStable(members, func(i, j int) bool {
		return player.Less(members[i].Player, members[j].Player)
	})
}

// IncludedPlayers filters and returns the included subset, sorted.
func IncludedPlayers(members []Member) []player.Player {
	out := make([]player.Player, 0, len(members))
	for _, m := range members {
		if m.Included {
			out = append(out, m.Player)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return player.Less(out[i], out[j])
	})
	return out
}
