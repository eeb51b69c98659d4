package playtime

import (
	"testing"

	"github.com/haakonrs/kampplan/internal/domain/match"
	"github.com/haakonrs/kampplan/internal/domain/plan"
	"github.com/haakonrs/kampplan/internal/domain/player"
	"github.com/stretchr/testify/require"
)

func evenPeriods(count, length int) []match.Period {
	m := match.Match{DurationMinutes: count * length, PeriodLengthMinutes: length}
	return m.Periods()
}

func TestSummarizeTotalsAndAverages(t *testing.T) {
	rosterPlayers := []player.Player{
		{ID: "p1", Name: "Anna", Position: player.PositionKeeper},
		{ID: "p2", Name: "Berit", Position: player.PositionDefense},
		{ID: "p3", Name: "Cato", Position: player.PositionMidfield},
	}

	set := plan.NewSet(nil)
	// p1 plays every period, p2 plays half, p3 never assigned.
	for period := 1; period <= 4; period++ {
		set.SetOnField("p1", period, true)
	}
	set.SetOnField("p2", 1, true)
	set.SetOnField("p2", 2, true)
	set.SetOnField("p2", 3, false)
	set.SetOnField("p2", 4, false)

	summaries := Summarize(rosterPlayers, set, evenPeriods(4, 15))
	require.Len(t, summaries, 3)

	require.Equal(t, "p1", summaries[0].PlayerID)
	require.Equal(t, 60, summaries[0].TotalMinutes)
	require.Equal(t, 4, summaries[0].PeriodsPlayed)
	require.Equal(t, 0, summaries[0].Substitutions)
	require.InDelta(t, 15.0, summaries[0].AverageMinutesPerPeriod, 0.001)

	require.Equal(t, "p2", summaries[1].PlayerID)
	require.Equal(t, 30, summaries[1].TotalMinutes)
	require.Equal(t, 2, summaries[1].PeriodsPlayed)
	require.Equal(t, 1, summaries[1].Substitutions)

	require.Equal(t, "p3", summaries[2].PlayerID)
	require.Equal(t, 0, summaries[2].TotalMinutes)
	require.Equal(t, 0, summaries[2].PeriodsPlayed)
	require.Equal(t, 0.0, summaries[2].AverageMinutesPerPeriod)
}

func TestSummarizeSubstitutionPattern(t *testing.T) {
	rosterPlayers := []player.Player{{ID: "p1", Name: "Anna", Position: player.PositionAttack}}

	set := plan.NewSet(nil)
	set.SetOnField("p1", 1, true)
	set.SetOnField("p1", 2, false)
	set.SetOnField("p1", 3, true)

	summaries := Summarize(rosterPlayers, set, evenPeriods(3, 10))
	require.Equal(t, 2, summaries[0].Substitutions)
	require.Equal(t, 20, summaries[0].TotalMinutes)
}

func TestSummarizeShortLastPeriod(t *testing.T) {
	m := match.Match{DurationMinutes: 70, PeriodLengthMinutes: 15}
	periods := m.Periods()
	rosterPlayers := []player.Player{{ID: "p1", Name: "Anna", Position: player.PositionKeeper}}

	set := plan.NewSet(nil)
	for _, p := range periods {
		set.SetOnField("p1", p.Index, true)
	}

	summaries := Summarize(rosterPlayers, set, periods)
	require.Equal(t, 70, summaries[0].TotalMinutes)
	require.Equal(t, 5, summaries[0].PeriodsPlayed)
	require.InDelta(t, 14.0, summaries[0].AverageMinutesPerPeriod, 0.001)
}

func TestSummarizeNeverExceedsDuration(t *testing.T) {
	m := match.Match{DurationMinutes: 25, PeriodLengthMinutes: 10}
	periods := m.Periods()
	rosterPlayers := []player.Player{{ID: "p1", Name: "Anna", Position: player.PositionKeeper}}

	set := plan.NewSet(nil)
	for period := 1; period <= 10; period++ {
		set.SetOnField("p1", period, true)
	}

	summaries := Summarize(rosterPlayers, set, periods)
	require.Equal(t, 25, summaries[0].TotalMinutes)
}

func TestSummarizeOrdering(t *testing.T) {
	rosterPlayers := []player.Player{
		{ID: "p1", Name: "Zara", Position: player.PositionAttack},
		{ID: "p2", Name: "Anna", Position: player.PositionDefense},
		{ID: "p3", Name: "Berit", Position: player.PositionMidfield},
	}

	set := plan.NewSet(nil)
	set.SetOnField("p1", 1, true)
	set.SetOnField("p2", 1, true)
	set.SetOnField("p3", 1, true)
	set.SetOnField("p3", 2, true)

	summaries := Summarize(rosterPlayers, set, evenPeriods(2, 10))
	require.Equal(t, []string{"p3", "p2", "p1"}, []string{summaries[0].PlayerID, summaries[1].PlayerID, summaries[2].PlayerID})
}
