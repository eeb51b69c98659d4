package httpapi

import (
	"net/http"

	"github.com/haakonrs/kampplan/internal/domain/match"
	"github.com/haakonrs/kampplan/internal/domain/plan"
	"github.com/haakonrs/kampplan/internal/usecase"
)

type periodDTO struct {
	Index              int `json:"index"`
	LengthMinutes      int `json:"lengthMinutes"`
	StartOffsetMinutes int `json:"startOffsetMinutes"`
	EndOffsetMinutes   int `json:"endOffsetMinutes"`
}

func periodToDTO(p match.Period) periodDTO {
	return periodDTO{
		Index:              p.Index,
		LengthMinutes:      p.LengthMinutes,
		StartOffsetMinutes: p.StartOffsetMinutes,
		EndOffsetMinutes:   p.EndOffsetMinutes,
	}
}

type cellStatusDTO struct {
	Period       int  `json:"period"`
	OnFieldCount int  `json:"onFieldCount"`
	Target       int  `json:"target"`
	Deviation    int  `json:"deviation"`
	IsValidCount bool `json:"isValidCount"`
}

func cellStatusToDTO(s plan.CellStatus) cellStatusDTO {
	return cellStatusDTO{
		Period:       s.Period,
		OnFieldCount: s.OnFieldCount,
		Target:       s.Target,
		Deviation:    s.Deviation,
		IsValidCount: s.IsValidCount,
	}
}

type planRowDTO struct {
	Player playerDTO `json:"player"`
	Flags  []bool    `json:"flags"`
}

type planGridDTO struct {
	Match        matchDTO        `json:"match"`
	Periods      []periodDTO     `json:"periods"`
	Rows         []planRowDTO    `json:"rows"`
	PeriodStatus []cellStatusDTO `json:"periodStatus"`
}

func planGridToDTO(grid usecase.PlanGrid) planGridDTO {
	periods := make([]periodDTO, 0, len(grid.Periods))
	for _, p := range grid.Periods {
		periods = append(periods, periodToDTO(p))
	}

	rows := make([]planRowDTO, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		rows = append(rows, planRowDTO{
			Player: playerToDTO(row.Player),
			Flags:  row.Flags,
		})
	}

	statuses := make([]cellStatusDTO, 0, len(grid.PeriodStatus))
	for _, s := range grid.PeriodStatus {
		statuses = append(statuses, cellStatusToDTO(s))
	}

	return planGridDTO{
		Match:        matchToDTO(grid.Match),
		Periods:      periods,
		Rows:         rows,
		PeriodStatus: statuses,
	}
}

type positionGroupDTO struct {
	Position  string   `json:"position"`
	PlayerIDs []string `json:"playerIds"`
	Target    int      `json:"target"`
}

type periodReportDTO struct {
	Period            int                `json:"period"`
	OnFieldCount      int                `json:"onFieldCount"`
	Target            int                `json:"target"`
	Deviation         int                `json:"deviation"`
	IsValidCount      bool               `json:"isValidCount"`
	OnFieldByPosition []positionGroupDTO `json:"onFieldByPosition"`
}

type setOnFieldRequest struct {
	OnField *bool `json:"onField" validate:"required"`
}

func (h *Handler) GetPlanGrid(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlanGrid")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	grid, err := h.planService.Grid(ctx, ownerID, r.PathValue("matchID"))
	if err != nil {
		h.logger.WarnContext(ctx, "get plan grid failed", "match_id", r.PathValue("matchID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, planGridToDTO(grid))
}

func (h *Handler) SetPlanOnField(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPlanOnField")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	period, err := pathInt(r, "period")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setOnFieldRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := r.PathValue("matchID")
	playerID := r.PathValue("playerID")
	status, err := h.planService.SetOnField(ctx, ownerID, matchID, period, playerID, *req.OnField)
	if err != nil {
		h.logger.WarnContext(ctx, "set on field failed",
			"match_id", matchID, "player_id", playerID, "period", period, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cellStatusToDTO(status))
}

func (h *Handler) ValidatePlanPeriod(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ValidatePlanPeriod")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	period, err := pathInt(r, "period")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.planService.ValidatePeriod(ctx, ownerID, r.PathValue("matchID"), period)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	groups := make([]positionGroupDTO, 0, len(report.OnFieldByPosition))
	for _, g := range report.OnFieldByPosition {
		groups = append(groups, positionGroupDTO{
			Position:  string(g.Position),
			PlayerIDs: g.PlayerIDs,
			Target:    g.Target,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, periodReportDTO{
		Period:            report.Period,
		OnFieldCount:      report.OnFieldCount,
		Target:            report.Target,
		Deviation:         report.Deviation,
		IsValidCount:      report.IsValidCount,
		OnFieldByPosition: groups,
	})
}

func (h *Handler) CarryForwardPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CarryForwardPlan")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	period, err := pathInt(r, "period")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filled, err := h.planService.CarryForward(ctx, ownerID, r.PathValue("matchID"), period)
	if err != nil {
		h.logger.WarnContext(ctx, "carry forward failed",
			"match_id", r.PathValue("matchID"), "period", period, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"filledCells": filled})
}
