package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"promo-api/internal/domain"
	"promo-api/internal/service"
	apperrors "promo-api/pkg/errors"
	"promo-api/pkg/logger"
)

const qrImageSize = 256

type RegistrationHandler struct {
	registrationService *service.RegistrationService
	redemptionService   *service.RedemptionService
	logger              *logger.Logger
}

func NewRegistrationHandler(
	registrationService *service.RegistrationService,
	redemptionService *service.RedemptionService,
	log *logger.Logger,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		redemptionService:   redemptionService,
		logger:              log,
	}
}

// Register handles POST /api/registrations. A fresh enrollment answers
// 201; a duplicate answers 208 with the existing record so the client
// can show the original QR code again.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondAppError(w, h.logger, apperrors.NewValidationError("invalid request body", nil))
		return
	}

	if err := h.validateRegisterRequest(&req); err != nil {
		respondAppError(w, h.logger, apperrors.NewValidationError(err.Error(), nil))
		return
	}

	result, err := h.registrationService.Register(ctx, &req)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	status := http.StatusCreated
	if result.Status == domain.StatusAlreadyRegistered {
		status = http.StatusAlreadyReported
	}

	respondJSON(w, status, result)
}

// GetQRCode handles GET /api/qrcode/{token} and answers a scannable PNG
// for a known token
func (h *RegistrationHandler) GetQRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := chi.URLParam(r, "token")

	if _, err := h.redemptionService.Lookup(ctx, token); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	png, err := qrcode.Encode(token, qrcode.Medium, qrImageSize)
	if err != nil {
		respondAppError(w, h.logger, apperrors.NewInternalError("failed to render qr code", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// validateRegisterRequest checks request shape; domain rules (CPF
// checksum, age, eligibility) live in the service
func (h *RegistrationHandler) validateRegisterRequest(req *domain.RegisterRequest) error {
	req.Name = strings.TrimSpace(req.Name)

	if len(req.Name) < 2 {
		return fmt.Errorf("name must have at least 2 characters")
	}
	if len(req.Name) > 255 {
		return fmt.Errorf("name must not exceed 255 characters")
	}
	if strings.TrimSpace(req.NationalID) == "" {
		return fmt.Errorf("cpf is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("phone is required")
	}
	if strings.TrimSpace(req.BirthDate) == "" {
		return fmt.Errorf("birth date is required")
	}

	return nil
}
