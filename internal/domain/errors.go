package domain

import "errors"

// Domain error conditions. Handlers map these to HTTP responses with
// errors.Is; services never translate them into transport concerns.
var (
	ErrCPFInvalidFormat   = errors.New("cpf must contain exactly 11 digits")
	ErrCPFInvalidChecksum = errors.New("cpf checksum is invalid")
	ErrInvalidPhone       = errors.New("phone number is invalid")
	ErrInvalidBirthDate   = errors.New("birth date is invalid")
	ErrUnderMinimumAge    = errors.New("registrant is under the minimum age")
	ErrEnrollmentClosed   = errors.New("enrollment deadline has passed")
	ErrCapacityExceeded   = errors.New("registrant cap has been reached")
	ErrTokenNotFound      = errors.New("qr token not found")
	ErrAlreadyRedeemed    = errors.New("qr token has already been redeemed")
	ErrConfigMissing      = errors.New("campaign configuration not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
