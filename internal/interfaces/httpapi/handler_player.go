package httpapi

import (
	"net/http"
	"time"

	"github.com/haakonrs/kampplan/internal/domain/player"
	"github.com/haakonrs/kampplan/internal/usecase"
)

type playerDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:        p.ID,
		Name:      p.Name,
		Position:  string(p.Position),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type createPlayerRequest struct {
	Name     string `json:"name" validate:"required"`
	Position string `json:"position" validate:"required"`
}

type updatePlayerPositionRequest struct {
	Position string `json:"position" validate:"required"`
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createPlayerRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, usecase.CreatePlayerInput{
		OwnerID:  ownerID,
		Name:     req.Name,
		Position: player.Position(req.Position),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.playerService.List(ctx, ownerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Get(ctx, ownerID, r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) UpdatePlayerPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayerPosition")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updatePlayerPositionRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.UpdatePosition(ctx, ownerID, r.PathValue("playerID"), player.Position(req.Position))
	if err != nil {
		h.logger.WarnContext(ctx, "update player position failed", "player_id", r.PathValue("playerID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.Delete(ctx, ownerID, r.PathValue("playerID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}
