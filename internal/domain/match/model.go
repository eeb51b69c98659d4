package match

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinDurationMinutes = 20
	MaxDurationMinutes = 90
	MinHeadcount       = 7
	MaxHeadcount       = 11
)

// AllowedPeriodLengths are the substitution granularities supported by the
// planner, in minutes.
var AllowedPeriodLengths = map[int]struct{}{
	5:  {},
	10: {},
	15: {},
}

// Match is one game being planned, with the configuration that derives the
// period layout.
type Match struct {
	ID                  string
	OwnerID             string
	Opponent            string
	Date                time.Time
	Home                bool
	DurationMinutes     int
	PeriodLengthMinutes int
	Headcount           int
	Formation           Formation
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.OwnerID == "" {
		return fmt.Errorf("match owner id is required")
	}
	if strings.TrimSpace(m.Opponent) == "" {
		return fmt.Errorf("opponent is required")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if m.DurationMinutes < MinDurationMinutes || m.DurationMinutes > MaxDurationMinutes {
		return fmt.Errorf("duration must be between %d and %d minutes, got %d", MinDurationMinutes, MaxDurationMinutes, m.DurationMinutes)
	}
	if _, ok := AllowedPeriodLengths[m.PeriodLengthMinutes]; !ok {
		return fmt.Errorf("period length must be 5, 10 or 15 minutes, got %d", m.PeriodLengthMinutes)
	}
	if m.Headcount < MinHeadcount || m.Headcount > MaxHeadcount {
		return fmt.Errorf("on-field headcount must be between %d and %d, got %d", MinHeadcount, MaxHeadcount, m.Headcount)
	}
	if m.Formation != "" && !m.Formation.Valid() {
		return fmt.Errorf("invalid formation: %s", m.Formation)
	}

	return nil
}

// Period is one time slice of a match, 1-indexed. The last period may be
// shorter than the configured period length when the duration is not evenly
// divisible.
type Period struct {
	Index              int
	LengthMinutes      int
	StartOffsetMinutes int
	EndOffsetMinutes   int
}

// PeriodCount returns ceil(duration / periodLength).
func (m Match) PeriodCount() int {
	if m.PeriodLengthMinutes <= 0 {
		return 0
	}
	return (m.DurationMinutes + m.PeriodLengthMinutes - 1) / m.PeriodLengthMinutes
}

// Periods returns the full period layout. The lengths always sum to
// DurationMinutes exactly.
func (m Match) Periods() []Period {
	count := m.PeriodCount()
	periods := make([]Period, 0, count)
	offset := 0
	for i := 1; i <= count; i++ {
		length := m.PeriodLengthMinutes
		if remaining := m.DurationMinutes - offset; remaining < length {
			length = remaining
		}
		periods = append(periods, Period{
			Index:              i,
			LengthMinutes:      length,
			StartOffsetMinutes: offset,
			EndOffsetMinutes:   offset + length,
		})
		offset += length
	}
	return periods
}

// ConfigChanged reports whether the period layout or headcount differs, in
// which case any existing period assignments are stale.
func (m Match) ConfigChanged(updated Match) bool {
	return m.DurationMinutes != updated.DurationMinutes ||
		m.PeriodLengthMinutes != updated.PeriodLengthMinutes ||
		m.Headcount != updated.Headcount
}
