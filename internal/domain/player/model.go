package player

import (
	"fmt"
	"strings"
	"time"
)

// Position represents the four position groups used for roster ordering
// and period validation.
type Position string

const (
	PositionKeeper   Position = "keeper"
	PositionDefense  Position = "defense"
	PositionMidfield Position = "midfield"
	PositionAttack   Position = "attack"
)

var AllPositions = map[Position]struct{}{
	PositionKeeper:   {},
	PositionDefense:  {},
	PositionMidfield: {},
	PositionAttack:   {},
}

// positionRank orders position groups Keeper first, Attack last.
var positionRank = map[Position]int{
	PositionKeeper:   1,
	PositionDefense:  2,
	PositionMidfield: 3,
	PositionAttack:   4,
}

func (p Position) Valid() bool {
	_, ok := AllPositions[p]
	return ok
}

// Rank returns the sort rank of the position group. Unknown positions
// sort after all known groups.
func (p Position) Rank() int {
	if rank, ok := positionRank[p]; ok {
		return rank
	}
	return len(positionRank) + 1
}

// Player is one athlete in an owner's pool. Name is unique per owner.
type Player struct {
	ID        string
	OwnerID   string
	Name      string
	Position  Position
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.OwnerID == "" {
		return fmt.Errorf("player owner id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if !p.Position.Valid() {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}

// Less is the canonical player ordering: position group, then name, then id.
// The id fallback keeps ordering total when two players share a name.
func Less(a, b Player) bool {
	if a.Position.Rank() != b.Position.Rank() {
		return a.Position.Rank() < b.Position.Rank()
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}
