package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignConfig is the single campaign configuration row. The password
// hash never leaves the server.
type CampaignConfig struct {
	ID                 uuid.UUID  `json:"id"`
	Title              string     `json:"title"`
	RegistrantCap      int        `json:"registrant_cap"`
	AdminPasswordHash  string     `json:"-"`
	EnrollmentDeadline *time.Time `json:"enrollment_deadline,omitempty"`
	LastUpdatedAt      time.Time  `json:"last_updated_at"`
}

// ConfigUpdateRequest carries a partial configuration update. Nil fields
// are left untouched; AdminPassword is hashed before storage.
type ConfigUpdateRequest struct {
	Title              *string `json:"title,omitempty"`
	RegistrantCap      *int    `json:"registrant_cap,omitempty"`
	AdminPassword      *string `json:"admin_password,omitempty"`
	EnrollmentDeadline *string `json:"enrollment_deadline,omitempty"` // RFC3339, or local time without offset
}

// AdminLoginRequest carries the admin password for verification
type AdminLoginRequest struct {
	Password string `json:"password"`
}
