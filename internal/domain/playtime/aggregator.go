// Package playtime derives playtime statistics from a substitution plan.
// Everything here is a pure function of its input; summaries are never a
// source of truth and can be recomputed at any time.
package playtime

import (
	"sort"

	"github.com/haakonrs/kampplan/internal/domain/match"
	"github.com/haakonrs/kampplan/internal/domain/plan"
	"github.com/haakonrs/kampplan/internal/domain/player"
)

// Summary is the derived playtime view of one player in one match.
type Summary struct {
	PlayerID                string
	Name                    string
	Position                player.Position
	TotalMinutes            int
	PeriodsPlayed           int
	Substitutions           int
	AverageMinutesPerPeriod float64
}

// Summarize computes per-player summaries for the given roster players over
// the match's period layout. Total minutes respect the possibly shorter
// final period. A substitution is any flag change between consecutive
// periods, counted in both directions. Output is ordered by descending
// total minutes, ties broken by ascending name, then id.
func Summarize(rosterPlayers []player.Player, set *plan.Set, periods []match.Period) []Summary {
	out := make([]Summary, 0, len(rosterPlayers))
	for _, p := range rosterPlayers {
		flags := set.Flags(p.ID, len(periods))

		s := Summary{
			PlayerID: p.ID,
			Name:     p.Name,
			Position: p.Position,
		}
		for i, onField := range flags {
			if onField {
				s.TotalMinutes += periods[i].LengthMinutes
				s.PeriodsPlayed++
			}
			if i > 0 && flags[i] != flags[i-1] {
				s.Substitutions++
			}
		}
		if s.PeriodsPlayed > 0 {
			s.AverageMinutesPerPeriod = float64(s.TotalMinutes) / float64(s.PeriodsPlayed)
		}

		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalMinutes != out[j].TotalMinutes {
			return out[i].TotalMinutes > out[j].TotalMinutes
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}
