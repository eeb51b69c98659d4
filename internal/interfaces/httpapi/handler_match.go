package httpapi

import (
	"net/http"
	"time"

	"github.com/haakonrs/kampplan/internal/domain/match"
	"github.com/haakonrs/kampplan/internal/usecase"
)

type matchDTO struct {
	ID                  string    `json:"id"`
	Opponent            string    `json:"opponent"`
	Date                time.Time `json:"date"`
	Home                bool      `json:"home"`
	DurationMinutes     int       `json:"durationMinutes"`
	PeriodLengthMinutes int       `json:"periodLengthMinutes"`
	Headcount           int       `json:"headcount"`
	Formation           string    `json:"formation,omitempty"`
	PeriodCount         int       `json:"periodCount"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:                  m.ID,
		Opponent:            m.Opponent,
		Date:                m.Date,
		Home:                m.Home,
		DurationMinutes:     m.DurationMinutes,
		PeriodLengthMinutes: m.PeriodLengthMinutes,
		Headcount:           m.Headcount,
		Formation:           string(m.Formation),
		PeriodCount:         m.PeriodCount(),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

type matchConfigRequest struct {
	Opponent            string    `json:"opponent" validate:"required"`
	Date                time.Time `json:"date" validate:"required"`
	Home                bool      `json:"home"`
	DurationMinutes     int       `json:"durationMinutes" validate:"required"`
	PeriodLengthMinutes int       `json:"periodLengthMinutes" validate:"required"`
	Headcount           int       `json:"headcount" validate:"required"`
	Formation           string    `json:"formation"`
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchConfigRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.Create(ctx, usecase.CreateMatchInput{
		OwnerID:             ownerID,
		Opponent:            req.Opponent,
		Date:                req.Date,
		Home:                req.Home,
		DurationMinutes:     req.DurationMinutes,
		PeriodLengthMinutes: req.PeriodLengthMinutes,
		Headcount:           req.Headcount,
		Formation:           match.Formation(req.Formation),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.List(ctx, ownerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Get(ctx, ownerID, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchConfigRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.Update(ctx, usecase.UpdateMatchInput{
		OwnerID:             ownerID,
		MatchID:             r.PathValue("matchID"),
		Opponent:            req.Opponent,
		Date:                req.Date,
		Home:                req.Home,
		DurationMinutes:     req.DurationMinutes,
		PeriodLengthMinutes: req.PeriodLengthMinutes,
		Headcount:           req.Headcount,
		Formation:           match.Formation(req.Formation),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", r.PathValue("matchID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.Delete(ctx, ownerID, r.PathValue("matchID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}
