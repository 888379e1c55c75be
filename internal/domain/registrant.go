package domain

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus distinguishes a fresh enrollment from an idempotent
// re-submission of an existing one.
type RegistrationStatus string

const (
	StatusCreated           RegistrationStatus = "created"
	StatusAlreadyRegistered RegistrationStatus = "already_registered"
)

// Registrant represents an enrolled customer and their QR token
type Registrant struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	NationalID string     `json:"national_id"`
	Phone      string     `json:"phone"`
	BirthDate  time.Time  `json:"birth_date"`
	QRToken    string     `json:"qr_token"`
	Used       bool       `json:"used"`
	CreatedAt  time.Time  `json:"created_at"`
	UsedAt     *time.Time `json:"used_at,omitempty"`
}

// RegisterRequest represents an enrollment submission
type RegisterRequest struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date"` // YYYY-MM-DD
}

// RegistrationResult carries the registrant together with the outcome of
// the attempt. A duplicate submission returns the existing record with
// StatusAlreadyRegistered so the caller can re-render the original QR token.
type RegistrationResult struct {
	Status     RegistrationStatus `json:"status"`
	Registrant *Registrant        `json:"registrant"`
}

// RegistrantList is a page of registrants for the admin listing
type RegistrantList struct {
	Registrants []Registrant `json:"registrants"`
	Offset      int          `json:"offset"`
	Limit       int          `json:"limit"`
	Total       int          `json:"total"`
}
