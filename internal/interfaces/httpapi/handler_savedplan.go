package httpapi

import (
	"net/http"
	"time"

	"github.com/haakonrs/kampplan/internal/domain/savedplan"
	"github.com/haakonrs/kampplan/internal/usecase"
)

type savedPlanDTO struct {
	ID          string    `json:"id"`
	MatchID     string    `json:"matchId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	LastUsedAt  time.Time `json:"lastUsedAt"`
}

func savedPlanToDTO(p savedplan.Plan) savedPlanDTO {
	return savedPlanDTO{
		ID:          p.ID,
		MatchID:     p.MatchID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		LastUsedAt:  p.LastUsedAt,
	}
}

type savePlanRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (h *Handler) SavePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SavePlan")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req savePlanRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.savedPlanService.Save(ctx, usecase.SavePlanInput{
		OwnerID:     ownerID,
		MatchID:     r.PathValue("matchID"),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save plan failed", "match_id", r.PathValue("matchID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, savedPlanToDTO(saved))
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlans")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	plans, err := h.savedPlanService.List(ctx, ownerID, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]savedPlanDTO, 0, len(plans))
	for _, p := range plans {
		items = append(items, savedPlanToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ApplyPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyPlan")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := r.PathValue("matchID")
	planID := r.PathValue("planID")
	if err := h.savedPlanService.Apply(ctx, ownerID, matchID, planID); err != nil {
		h.logger.WarnContext(ctx, "apply plan failed", "match_id", matchID, "plan_id", planID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"applied": true})
}
