package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/peekknuf/modelfit/internal/heuristics"
	"github.com/peekknuf/modelfit/internal/models"
	"github.com/peekknuf/modelfit/internal/parser"
	"github.com/peekknuf/modelfit/internal/profiler"
	"github.com/peekknuf/modelfit/internal/tabular"
)

// QualityHandler exposes the flag engine over HTTP. The handler owns
// all transport concerns: decoding, upload limits, timing, error
// mapping. The engine stays a pure function underneath.
type QualityHandler struct {
	engine         *heuristics.Engine
	maxUploadBytes int64
}

func NewQualityHandler(engine *heuristics.Engine, maxUploadBytes int64) *QualityHandler {
	return &QualityHandler{engine: engine, maxUploadBytes: maxUploadBytes}
}

// Flags handles POST /api/v1/quality/flags: aggregate features in,
// basic verdict out.
func (h *QualityHandler) Flags(w http.ResponseWriter, r *http.Request) {
	var features heuristics.AggregateFeatures
	if err := json.NewDecoder(r.Body).Decode(&features); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	start := time.Now()
	verdict, err := h.engine.FromAggregates(features)
	elapsed := time.Since(start)

	if err != nil {
		writeEngineError(w, err)
		return
	}

	models.WriteJSON(w, http.StatusOK, models.VerdictResponse{
		Status:    "ok",
		Verdict:   verdict,
		ElapsedMs: float64(elapsed.Microseconds()) / 1000.0,
	})
}

// Check handles POST /api/v1/quality/check: a multipart CSV upload in
// the "file" field, full flags mapping out.
func (h *QualityHandler) Check(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		models.WriteError(w, http.StatusBadRequest, "missing or unreadable file field: "+err.Error())
		return
	}
	defer file.Close()

	view, err := parser.ReadTable(file, parser.DefaultOptions())
	if err != nil {
		if tabular.IsInvalidInput(err) {
			models.WriteError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		models.WriteError(w, http.StatusBadRequest, "failed to parse file: "+err.Error())
		return
	}

	start := time.Now()
	summary := profiler.Summarize(view)
	verdict, err := h.engine.FromSummary(summary)
	elapsed := time.Since(start)

	if err != nil {
		writeEngineError(w, err)
		return
	}

	models.WriteJSON(w, http.StatusOK, models.CheckResponse{
		Status:     "ok",
		OKForModel: verdict.OKForModel,
		Flags:      verdict.FlagMap(),
		Shape:      verdict.Shape,
		ElapsedMs:  float64(elapsed.Microseconds()) / 1000.0,
	})
}

// writeEngineError maps core errors onto HTTP statuses: invalid input
// is the caller's fault (422), anything else is ours.
func writeEngineError(w http.ResponseWriter, err error) {
	if tabular.IsInvalidInput(err) {
		models.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	models.WriteError(w, http.StatusInternalServerError, err.Error())
}
