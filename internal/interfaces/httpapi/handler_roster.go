package httpapi

import (
	"net/http"

	"github.com/haakonrs/kampplan/internal/domain/roster"
)

type rosterMemberDTO struct {
	Player   playerDTO `json:"player"`
	Included bool      `json:"included"`
}

func rosterMemberToDTO(m roster.Member) rosterMemberDTO {
	return rosterMemberDTO{
		Player:   playerToDTO(m.Player),
		Included: m.Included,
	}
}

type setIncludedRequest struct {
	Included *bool `json:"included" validate:"required"`
}

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoster")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	members, err := h.rosterService.List(ctx, ownerID, r.PathValue("matchID"))
	if err != nil {
		h.logger.WarnContext(ctx, "get roster failed", "match_id", r.PathValue("matchID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rosterMemberDTO, 0, len(members))
	for _, m := range members {
		items = append(items, rosterMemberToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SetRosterIncluded(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetRosterIncluded")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setIncludedRequest
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
	if err := h.rosterService.SetIncluded(ctx, ownerID, matchID, playerID, *req.Included); err != nil {
		h.logger.WarnContext(ctx, "set roster inclusion failed", "match_id", matchID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"included": *req.Included})
}
