package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"promo-api/internal/service"
	"promo-api/pkg/logger"
)

type RedemptionHandler struct {
	redemptionService *service.RedemptionService
	logger            *logger.Logger
}

func NewRedemptionHandler(redemptionService *service.RedemptionService, log *logger.Logger) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionService: redemptionService,
		logger:            log,
	}
}

// Redeem handles POST /api/redemptions/{token}. Redemption is single
// use: an unknown token answers 404, a spent one answers 409.
func (h *RedemptionHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := chi.URLParam(r, "token")

	registrant, err := h.redemptionService.Redeem(ctx, token)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, registrant)
}
