package api

import (
	"net/http"

	"github.com/empowerhub/empowerhub-api/internal/api/shared"
)

// APIVersion is reported by the status banner.
const APIVersion = "1.0"

// StatusHandler serves the public liveness and version endpoints.
type StatusHandler struct{}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// Status handles GET /api/status.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		Status:  "online",
		Message: "EmpowerHub API is running",
		Version: APIVersion,
	})
}

// Healthz handles GET /healthz.
func (h *StatusHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		return
	}
}
