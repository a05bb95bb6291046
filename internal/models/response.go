package models

import (
	"encoding/json"
	"net/http"

	"github.com/peekknuf/modelfit/internal/heuristics"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// VerdictResponse is returned by POST /api/v1/quality/flags: the basic
// verdict from aggregate features.
type VerdictResponse struct {
	Status    string             `json:"status"`
	Verdict   heuristics.Verdict `json:"verdict"`
	ElapsedMs float64            `json:"elapsed_ms"`
}

// CheckResponse is returned by POST /api/v1/quality/check: the full
// flags mapping with the numeric auxiliary fields folded in, plus the
// dataset shape. ElapsedMs is measured by the handler around the core
// call; the core itself never times anything.
type CheckResponse struct {
	Status     string           `json:"status"`
	OKForModel bool             `json:"ok_for_model"`
	Flags      map[string]any   `json:"flags"`
	Shape      heuristics.Shape `json:"dataset_shape"`
	ElapsedMs  float64          `json:"elapsed_ms"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, ErrorResponse{
		Status:  "error",
		Message: message,
		Code:    code,
	})
}
