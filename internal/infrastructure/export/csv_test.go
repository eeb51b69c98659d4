package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/haakonrs/kampplan/internal/domain/match"
	"github.com/haakonrs/kampplan/internal/domain/player"
	"github.com/haakonrs/kampplan/internal/domain/playtime"
	"github.com/haakonrs/kampplan/internal/usecase"
)

func exportFixture() MatchData {
	m := match.Match{
		ID:                  "m1",
		Opponent:            "Lyn IL",
		Date:                time.Date(2026, 4, 12, 13, 0, 0, 0, time.UTC),
		Home:                true,
		DurationMinutes:     50,
		PeriodLengthMinutes: 15,
		Headcount:           7,
		Formation:           match.Formation433,
	}

	keeper := player.Player{ID: "p1", Name: "Anna", Position: player.PositionKeeper}
	back := player.Player{ID: "p2", Name: "Berit", Position: player.PositionDefense}

	return MatchData{
		Grid: usecase.PlanGrid{
			Match:   m,
			Periods: m.Periods(),
			Rows: []usecase.PlanRow{
				{Player: keeper, Flags: []bool{true, true, true, true}},
				{Player: back, Flags: []bool{true, false, true, false}},
			},
		},
		Playtime: usecase.MatchPlaytime{
			Match: m,
			Summaries: []playtime.Summary{
				{PlayerID: "p1", Name: "Anna", Position: player.PositionKeeper, TotalMinutes: 50, PeriodsPlayed: 4, Substitutions: 0, AverageMinutesPerPeriod: 12.5},
				{PlayerID: "p2", Name: "Berit", Position: player.PositionDefense, TotalMinutes: 25, PeriodsPlayed: 2, Substitutions: 3, AverageMinutesPerPeriod: 12.5},
			},
		},
	}
}

func TestRenderCSV(t *testing.T) {
	out, err := renderCSV(exportFixture())
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(out))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	// The reader drops the blank separator lines between sections.
	require.Equal(t, []string{"Lyn IL", "2026-04-12", "home", "50", "15", "7", "4-3-3"}, records[1])

	// Grid header labels carry the minute offsets, with the short last period.
	require.Equal(t, []string{"player", "position", "P1 (0-15)", "P2 (15-30)", "P3 (30-45)", "P4 (45-50)"}, records[2])
	require.Equal(t, []string{"Anna", "keeper", "X", "X", "X", "X"}, records[3])
	require.Equal(t, []string{"Berit", "defense", "X", "-", "X", "-"}, records[4])

	require.Equal(t, []string{"Anna", "keeper", "50", "4", "0", "12.5"}, records[6])
	require.Equal(t, []string{"Berit", "defense", "25", "2", "3", "12.5"}, records[7])
}

func TestRenderWorkbook(t *testing.T) {
	out, err := renderWorkbook([]MatchData{exportFixture()})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	// XLSX files are zip archives.
	require.Equal(t, []byte{'P', 'K'}, out[:2])
}

func TestUniqueSheetName(t *testing.T) {
	seen := map[string]int{}
	first := uniqueSheetName(seen, "2026-04-12 Lyn IL")
	second := uniqueSheetName(seen, "2026-04-12 Lyn IL")

	require.Equal(t, "2026-04-12 Lyn IL", first)
	require.Equal(t, "2026-04-12 Lyn IL (2)", second)
}

func TestSheetNameSanitized(t *testing.T) {
	data := exportFixture()
	data.Grid.Match.Opponent = "Lyn/IL: B[lag]?"

	name := sheetName(data)
	require.LessOrEqual(t, utf8.RuneCountInString(name), maxSheetNameLen)
	require.NotContains(t, name, "/")
	require.NotContains(t, name, ":")
	require.NotContains(t, name, "[")
}

func TestSheetNameTruncatesOnRuneBoundary(t *testing.T) {
	data := exportFixture()
	data.Grid.Match.Opponent = "Bodø" + strings.Repeat("ø", 30)

	name := sheetName(data)
	require.True(t, utf8.ValidString(name))
	require.LessOrEqual(t, utf8.RuneCountInString(name), maxSheetNameLen)

	seen := map[string]int{name: 1}
	suffixed := uniqueSheetName(seen, name)
	require.True(t, utf8.ValidString(suffixed))
	require.LessOrEqual(t, utf8.RuneCountInString(suffixed), maxSheetNameLen)
	require.True(t, strings.HasSuffix(suffixed, " (2)"))
}

func TestDedupe(t *testing.T) {
	require.Equal(t, []string{"m1", "m2"}, dedupe([]string{"m1", " m2 ", "m1", ""}))
}
