package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"promo-api/internal/domain"
	apperrors "promo-api/pkg/errors"
	"promo-api/pkg/logger"
)

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondAppError writes a structured error response
func respondAppError(w http.ResponseWriter, log *logger.Logger, appErr *apperrors.AppError) {
	if appErr.StatusCode >= http.StatusInternalServerError {
		log.WithError(appErr).Error("Request failed")
	} else {
		log.WithError(appErr).Debug("Request rejected")
	}

	response := &apperrors.ErrorResponse{}
	response.Error.Type = appErr.Type
	response.Error.Message = appErr.Message
	response.Error.Details = appErr.Details
	response.Error.Timestamp = time.Now().UTC().Format(time.RFC3339)

	respondJSON(w, appErr.StatusCode, response)
}

// respondDomainError maps a domain error onto the HTTP surface
func respondDomainError(w http.ResponseWriter, log *logger.Logger, err error) {
	respondAppError(w, log, mapDomainError(err))
}

// mapDomainError translates domain conditions into application errors
func mapDomainError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, domain.ErrCPFInvalidFormat),
		errors.Is(err, domain.ErrCPFInvalidChecksum),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrInvalidBirthDate),
		errors.Is(err, domain.ErrUnderMinimumAge):
		return apperrors.NewValidationError(err.Error(), nil)
	case errors.Is(err, domain.ErrEnrollmentClosed):
		return apperrors.NewForbiddenError("enrollment is closed")
	case errors.Is(err, domain.ErrCapacityExceeded):
		return apperrors.NewConflictError("registrant cap has been reached")
	case errors.Is(err, domain.ErrTokenNotFound):
		return apperrors.NewNotFoundError("qr code not found")
	case errors.Is(err, domain.ErrAlreadyRedeemed):
		return apperrors.NewConflictError("qr code has already been used")
	case errors.Is(err, domain.ErrStorageUnavailable):
		return apperrors.NewUnavailableError("storage unavailable, try again shortly", err)
	default:
		return apperrors.NewInternalError("internal error", err)
	}
}
