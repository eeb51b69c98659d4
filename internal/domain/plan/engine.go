package plan

import (
	"sort"

	"github.com/haakonrs/kampplan/internal/domain/player"
)

// Set is the in-memory working state of one match's substitution plan.
// A cell is either explicitly assigned (on or off field) or absent; absent
// cells count as off-field but are distinguishable so carry-forward never
// overwrites an explicit edit.
type Set struct {
	cells map[string]map[int]bool
}

// NewSet builds a Set from persisted assignments. Later entries for the
// same cell win.
func NewSet(assignments []Assignment) *Set {
	s := &Set{cells: make(map[string]map[int]bool)}
	for _, a := range assignments {
		s.SetOnField(a.PlayerID, a.Period, a.OnField)
	}
	return s
}

// SetOnField mutates exactly one cell. It never touches other players'
// flags: headcount balancing is advisory, not enforced.
func (s *Set) SetOnField(playerID string, period int, onField bool) {
	periods, ok := s.cells[playerID]
	if !ok {
		periods = make(map[int]bool)
		s.cells[playerID] = periods
	}
	periods[period] = onField
}

// Has reports whether the cell has an explicit assignment.
func (s *Set) Has(playerID string, period int) bool {
	_, ok := s.cells[playerID][period]
	return ok
}

// OnField reports the effective flag for a cell; absent cells are off-field.
func (s *Set) OnField(playerID string, period int) bool {
	return s.cells[playerID][period]
}

// OnFieldCount counts players flagged on-field for a period.
func (s *Set) OnFieldCount(period int) int {
	count := 0
	for _, periods := range s.cells {
		if periods[period] {
			count++
		}
	}
	return count
}

// OnFieldPlayerIDs returns the ids flagged on-field for a period, ascending.
func (s *Set) OnFieldPlayerIDs(period int) []string {
	ids := make([]string, 0, len(s.cells))
	for playerID, periods := range s.cells {
		if periods[period] {
			ids = append(ids, playerID)
		}
	}
	sort.Strings(ids)
	return ids
}

// Flags returns a player's effective on-field flags for periods 1..periodCount.
func (s *Set) Flags(playerID string, periodCount int) []bool {
	flags := make([]bool, periodCount)
	for i := 1; i <= periodCount; i++ {
		flags[i-1] = s.OnField(playerID, i)
	}
	return flags
}

// Assignments flattens the set back to assignment rows for one match,
// ordered by period then player id.
func (s *Set) Assignments(matchID string) []Assignment {
	out := make([]Assignment, 0, len(s.cells))
	for playerID, periods := range s.cells {
		for period, onField := range periods {
			out = append(out, Assignment{
				MatchID:  matchID,
				PlayerID: playerID,
				Period:   period,
				OnField:  onField,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Period != out[j].Period {
			return out[i].Period < out[j].Period
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

// CarryForward computes the fills that copy period from's flags into period
// from+1. Cells with an explicit assignment in from+1 are left untouched, so
// re-running after a manual edit never overwrites it. The returned fills are
// ordered by player id; callers persist them atomically.
func (s *Set) CarryForward(from int) []Assignment {
	playerIDs := make([]string, 0, len(s.cells))
	for playerID, periods := range s.cells {
		if _, ok := periods[from]; !ok {
			continue
		}
		if s.Has(playerID, from+1) {
			continue
		}
		playerIDs = append(playerIDs, playerID)
	}
	sort.Strings(playerIDs)

	fills := make([]Assignment, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		fills = append(fills, Assignment{
			PlayerID: playerID,
			Period:   from + 1,
			OnField:  s.OnField(playerID, from),
		})
	}
	return fills
}

// Status computes the advisory headcount state for one period.
func Status(s *Set, period, target int) CellStatus {
	count := s.OnFieldCount(period)
	return CellStatus{
		Period:       period,
		OnFieldCount: count,
		Target:       target,
		Deviation:    count - target,
		IsValidCount: count == target,
	}
}

// Report computes the full validation view for one period, grouping the
// on-field players by position. Groups appear in canonical order; within a
// group players are ordered by name, then id. With positionTargets set,
// every group is emitted alongside its formation target, empty or not;
// without, only occupied groups appear.
func Report(s *Set, rosterPlayers []player.Player, period, target int, positionTargets map[player.Position]int) PeriodReport {
	sorted := append([]player.Player(nil), rosterPlayers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return player.Less(sorted[i], sorted[j])
	})

	byPosition := make(map[player.Position][]string)
	for _, p := range sorted {
		if s.OnField(p.ID, period) {
			byPosition[p.Position] = append(byPosition[p.Position], p.ID)
		}
	}

	groups := make([]PositionGroup, 0, len(byPosition))
	for _, pos := range []player.Position{player.PositionKeeper, player.PositionDefense, player.PositionMidfield, player.PositionAttack} {
		ids, occupied := byPosition[pos]
		if !occupied && positionTargets == nil {
			continue
		}
		groups = append(groups, PositionGroup{Position: pos, PlayerIDs: ids, Target: positionTargets[pos]})
	}

	status := Status(s, period, target)
	return PeriodReport{
		Period:            status.Period,
		OnFieldCount:      status.OnFieldCount,
		Target:            status.Target,
		Deviation:         status.Deviation,
		IsValidCount:      status.IsValidCount,
		OnFieldByPosition: groups,
	}
}
