package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/haakonrs/kampplan/internal/domain/match"
)

const (
	onFieldMark = "X"
	benchMark   = "-"
)

// renderCSV writes one match as three sections: a configuration header,
// the period grid, and the playtime table.
func renderCSV(data MatchData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	m := data.Grid.Match
	records := [][]string{
		{"opponent", "date", "venue", "duration_min", "period_min", "headcount", "formation"},
		{
			m.Opponent,
			m.Date.Format("2006-01-02"),
			venue(m.Home),
			strconv.Itoa(m.DurationMinutes),
			strconv.Itoa(m.PeriodLengthMinutes),
			strconv.Itoa(m.Headcount),
			string(m.Formation),
		},
		{},
	}

	records = append(records, gridHeader(data.Grid.Periods))
	for _, row := range data.Grid.Rows {
		record := []string{row.Player.Name, string(row.Player.Position)}
		for _, onField := range row.Flags {
			record = append(record, mark(onField))
		}
		records = append(records, record)
	}
	records = append(records, []string{})

	records = append(records, []string{"player", "position", "total_min", "periods_played", "substitutions", "avg_min_per_period"})
	for _, s := range data.Playtime.Summaries {
		records = append(records, []string{
			s.Name,
			string(s.Position),
			strconv.Itoa(s.TotalMinutes),
			strconv.Itoa(s.PeriodsPlayed),
			strconv.Itoa(s.Substitutions),
			strconv.FormatFloat(s.AverageMinutesPerPeriod, 'f', 1, 64),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	return buf.Bytes(), nil
}

func gridHeader(periods []match.Period) []string {
	header := []string{"player", "position"}
	for _, p := range periods {
		header = append(header, periodLabel(p))
	}
	return header
}

func periodLabel(p match.Period) string {
	return fmt.Sprintf("P%d (%d-%d)", p.Index, p.StartOffsetMinutes, p.EndOffsetMinutes)
}

func venue(home bool) string {
	if home {
		return "home"
	}
	return "away"
}

func mark(onField bool) string {
	if onField {
		return onFieldMark
	}
	return benchMark
}
