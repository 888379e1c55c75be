package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"promo-api/internal/domain"
	"promo-api/internal/service"
	apperrors "promo-api/pkg/errors"
	"promo-api/pkg/logger"
)

type AdminHandler struct {
	campaignService *service.CampaignService
	logger          *logger.Logger
}

func NewAdminHandler(campaignService *service.CampaignService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		campaignService: campaignService,
		logger:          log,
	}
}

// GetConfig handles GET /api/admin/config
func (h *AdminHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	config, err := h.campaignService.GetConfig(r.Context())
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, config)
}

// UpdateConfig handles PATCH /api/admin/config with partial-update
// semantics: only supplied fields change
func (h *AdminHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req domain.ConfigUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondAppError(w, h.logger, apperrors.NewValidationError("invalid request body", nil))
		return
	}

	if req.RegistrantCap != nil && *req.RegistrantCap < 0 {
		respondAppError(w, h.logger, apperrors.NewValidationError("registrant cap must not be negative", nil))
		return
	}

	config, err := h.campaignService.UpdateConfig(r.Context(), &req)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, config)
}

// Login handles POST /api/admin/login. The password is checked against
// the stored hash; no session or token is issued.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondAppError(w, h.logger, apperrors.NewValidationError("invalid request body", nil))
		return
	}

	ok, err := h.campaignService.VerifyAdminPassword(r.Context(), req.Password)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	if !ok {
		respondAppError(w, h.logger, apperrors.NewAuthenticationError("invalid password"))
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// ListRegistrants handles GET /api/admin/registrants?offset&limit&search
func (h *AdminHandler) ListRegistrants(w http.ResponseWriter, r *http.Request) {
	offset := parseIntQuery(r, "offset", 0)
	limit := parseIntQuery(r, "limit", 100)
	search := r.URL.Query().Get("search")

	page, err := h.campaignService.ListRegistrants(r.Context(), offset, limit, search)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

// CountRegistrants handles GET /api/admin/registrants/count
func (h *AdminHandler) CountRegistrants(w http.ResponseWriter, r *http.Request) {
	count, err := h.campaignService.CountRegistrants(r.Context())
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"total": count})
}

// ResetUsage handles POST /api/admin/registrants/reset, clearing the
// redemption state of every registrant
func (h *AdminHandler) ResetUsage(w http.ResponseWriter, r *http.Request) {
	affected, err := h.campaignService.ResetAllUsage(r.Context())
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":              true,
		"registrants_affected": affected,
	})
}

// parseIntQuery reads an integer query parameter with a fallback
func parseIntQuery(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
