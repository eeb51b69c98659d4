package export

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Excel caps sheet names at 31 chars and forbids a handful of characters.
const maxSheetNameLen = 31

var sheetNameSanitizer = strings.NewReplacer(
	":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ",
)

func renderWorkbook(data []MatchData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	names := make(map[string]int, len(data))
	for _, d := range data {
		name := uniqueSheetName(names, sheetName(d))
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}
		if err := writeSheet(f, name, d); err != nil {
			return nil, err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, data MatchData) error {
	m := data.Grid.Match

	rows := [][]any{
		{"Opponent", m.Opponent},
		{"Date", m.Date.Format("2006-01-02")},
		{"Venue", venue(m.Home)},
		{"Duration", fmt.Sprintf("%d min, %d x %d min", m.DurationMinutes, len(data.Grid.Periods), m.PeriodLengthMinutes)},
		{"Headcount", m.Headcount},
		{"Formation", string(m.Formation)},
		{},
	}

	gridHead := []any{"Player", "Position"}
	for _, p := range data.Grid.Periods {
		gridHead = append(gridHead, periodLabel(p))
	}
	rows = append(rows, gridHead)
	for _, row := range data.Grid.Rows {
		cells := []any{row.Player.Name, string(row.Player.Position)}
		for _, onField := range row.Flags {
			cells = append(cells, mark(onField))
		}
		rows = append(rows, cells)
	}
	rows = append(rows, []any{})

	rows = append(rows, []any{"Player", "Position", "Total min", "Periods", "Substitutions", "Avg min/period"})
	for _, s := range data.Playtime.Summaries {
		rows = append(rows, []any{
			s.Name,
			string(s.Position),
			s.TotalMinutes,
			s.PeriodsPlayed,
			s.Substitutions,
			s.AverageMinutesPerPeriod,
		})
	}

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	return nil
}

func sheetName(data MatchData) string {
	m := data.Grid.Match
	name := strings.TrimSpace(sheetNameSanitizer.Replace(m.Opponent))
	if name == "" {
		name = "Match"
	}
	name = fmt.Sprintf("%s %s", m.Date.Format("2006-01-02"), name)
	return truncateRunes(name, maxSheetNameLen)
}

// truncateRunes cuts on rune boundaries so opponent names with ø, æ or å
// never end in a split byte.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// uniqueSheetName suffixes duplicates so two matches against the same
// opponent on the same day both get a sheet.
func uniqueSheetName(seen map[string]int, name string) string {
	n := seen[name]
	seen[name] = n + 1
	if n == 0 {
		return name
	}

	suffix := fmt.Sprintf(" (%d)", n+1)
	name = truncateRunes(name, maxSheetNameLen-len(suffix))
	return name + suffix
}
