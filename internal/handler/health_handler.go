package handler

import (
	"net/http"
	"time"

	"promo-api/internal/container"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	container *container.Container
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(container *container.Container) *HealthHandler {
	return &HealthHandler{
		container: container,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Database  string    `json:"database"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   "promo-api",
		Database:  "up",
	}

	status := http.StatusOK
	if db := h.container.GetDB(); db != nil {
		if err := db.Health(r.Context()); err != nil {
			h.container.GetLogger().WithError(err).Warn("Database health check failed")
			response.Status = "degraded"
			response.Database = "down"
			status = http.StatusServiceUnavailable
		}
	}

	respondJSON(w, status, response)
}
