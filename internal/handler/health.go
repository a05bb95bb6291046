package handler

import (
	"net/http"

	"github.com/peekknuf/modelfit/internal/models"
)

const version = "1.0.0"

// Health handles GET /health. The quality core is stateless and has no
// dependencies to probe, so a live process is a healthy one.
func Health(w http.ResponseWriter, r *http.Request) {
	models.WriteJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Version: version,
	})
}
