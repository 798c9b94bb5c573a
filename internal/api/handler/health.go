package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/renaldy/spaces-api/internal/api/response"
)

// Pinger reports backing store connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus is the health endpoint body
type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// HealthCheck returns a simple health check response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, HealthStatus{
		Status:    "ok",
		Message:   "service is healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ReadyCheck returns readiness status including database connectivity
func ReadyCheck(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "database not ready")
			return
		}

		response.OK(w, map[string]string{
			"status": "ready",
		})
	}
}
