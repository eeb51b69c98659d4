package httpapi

import (
	"net/http"

	"github.com/haakonrs/kampplan/internal/domain/playtime"
)

type playtimeSummaryDTO struct {
	PlayerID                string  `json:"playerId"`
	Name                    string  `json:"name"`
	Position                string  `json:"position"`
	TotalMinutes            int     `json:"totalMinutes"`
	PeriodsPlayed           int     `json:"periodsPlayed"`
	Substitutions           int     `json:"substitutions"`
	AverageMinutesPerPeriod float64 `json:"averageMinutesPerPeriod"`
}

func playtimeSummaryToDTO(s playtime.Summary) playtimeSummaryDTO {
	return playtimeSummaryDTO{
		PlayerID:                s.PlayerID,
		Name:                    s.Name,
		Position:                string(s.Position),
		TotalMinutes:            s.TotalMinutes,
		PeriodsPlayed:           s.PeriodsPlayed,
		Substitutions:           s.Substitutions,
		AverageMinutesPerPeriod: s.AverageMinutesPerPeriod,
	}
}

type matchPlaytimeDTO struct {
	Match     matchDTO             `json:"match"`
	Summaries []playtimeSummaryDTO `json:"summaries"`
}

func (h *Handler) GetPlaytimeSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlaytimeSummary")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.playtimeService.Summary(ctx, ownerID, r.PathValue("matchID"))
	if err != nil {
		h.logger.WarnContext(ctx, "get playtime summary failed", "match_id", r.PathValue("matchID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playtimeSummaryDTO, 0, len(result.Summaries))
	for _, s := range result.Summaries {
		items = append(items, playtimeSummaryToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, matchPlaytimeDTO{
		Match:     matchToDTO(result.Match),
		Summaries: items,
	})
}
