package savedplan

import (
	"fmt"
	"strings"
	"time"
)

// Plan is the metadata of a named substitution-plan snapshot. Snapshots are
// distinct from a match's live plan: saving never mutates the live plan and
// applying one overwrites it wholesale.
type Plan struct {
	ID          string
	MatchID     string
	Name        string
	Description string
	CreatedAt   time.Time
	LastUsedAt  time.Time
}

func (p Plan) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("plan id is required")
	}
	if p.MatchID == "" {
		return fmt.Errorf("plan match id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("plan name is required")
	}

	return nil
}

// Cell is one snapshotted assignment.
type Cell struct {
	PlayerID string
	Period   int
	OnField  bool
}
