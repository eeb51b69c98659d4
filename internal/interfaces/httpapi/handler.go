package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/haakonrs/kampplan/internal/infrastructure/export"
	"github.com/haakonrs/kampplan/internal/platform/logging"
	"github.com/haakonrs/kampplan/internal/usecase"
)

type Handler struct {
	playerService    *usecase.PlayerService
	matchService     *usecase.MatchService
	rosterService    *usecase.RosterService
	planService      *usecase.PlanService
	playtimeService  *usecase.PlaytimeService
	savedPlanService *usecase.SavedPlanService
	exportService    *export.Service
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	rosterService *usecase.RosterService,
	planService *usecase.PlanService,
	playtimeService *usecase.PlaytimeService,
	savedPlanService *usecase.SavedPlanService,
	exportService *export.Service,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		playerService:    playerService,
		matchService:     matchService,
		rosterService:    rosterService,
		planService:      planService,
		playtimeService:  playtimeService,
		savedPlanService: savedPlanService,
		exportService:    exportService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// requireOwner extracts the authenticated owner's user id from context.
func (h *Handler) requireOwner(ctx context.Context) (string, error) {
	principal, ok := principalFromContext(ctx)
	if !ok || principal.UserID == "" {
		return "", fmt.Errorf("%w: missing session principal", usecase.ErrUnauthorized)
	}
	return principal.UserID, nil
}

func (h *Handler) decodeRequest(r *http.Request, payload any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathInt(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}
