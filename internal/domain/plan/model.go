package plan

import (
	"errors"
	"time"

	"github.com/haakonrs/kampplan/internal/domain/player"
)

var (
	ErrPeriodOutOfRange  = errors.New("period index out of range")
	ErrPlayerNotInRoster = errors.New("player is not in the match roster")
)

// Assignment is one cell of a substitution plan: a player's on-field flag
// for one period of a match.
type Assignment struct {
	MatchID   string
	PlayerID  string
	Period    int
	OnField   bool
	UpdatedAt time.Time
}

// CellStatus is the advisory headcount state of one period after a cell
// mutation. A deviation never blocks the write.
type CellStatus struct {
	Period       int
	OnFieldCount int
	Target       int
	Deviation    int
	IsValidCount bool
}

// PositionGroup lists the on-field players of one position group, in
// canonical order. Target carries the formation's suggested headcount for
// the group and stays zero when the match has no formation.
type PositionGroup struct {
	Position  player.Position
	PlayerIDs []string
	Target    int
}

// PeriodReport is the full validation view of one period.
type PeriodReport struct {
	Period            int
	OnFieldCount      int
	Target            int
	Deviation         int
	IsValidCount      bool
	OnFieldByPosition []PositionGroup
}
