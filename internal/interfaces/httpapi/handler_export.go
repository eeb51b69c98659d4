package httpapi

import (
	"fmt"
	"net/http"
)

type workbookExportRequest struct {
	MatchIDs []string `json:"matchIds" validate:"required,min=1"`
}

func (h *Handler) ExportMatchCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportMatchCSV")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := r.PathValue("matchID")
	payload, err := h.exportService.MatchCSV(ctx, ownerID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "csv export failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "match-"+matchID+".csv"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (h *Handler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportWorkbook")
	defer span.End()

	ownerID, err := h.requireOwner(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req workbookExportRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	payload, err := h.exportService.Workbook(ctx, ownerID, req.MatchIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "workbook export failed", "matches", len(req.MatchIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="matches.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
