package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/interfaces"
)

type BenchmarkHandler struct {
	service interfaces.BenchmarkService
	logger  arbor.ILogger
}

func NewBenchmarkHandler(service interfaces.BenchmarkService, logger arbor.ILogger) *BenchmarkHandler {
	return &BenchmarkHandler{
		service: service,
		logger:  logger,
	}
}

// ListHandler returns the published benchmark table
func (h *BenchmarkHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	h.writeTable(w)
}

// RefreshHandler derives and publishes sector benchmarks, returning the new table
func (h *BenchmarkHandler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if err := h.service.Refresh(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("Benchmark refresh failed")
		WriteError(w, http.StatusInternalServerError, "Benchmark refresh failed")
		return
	}

	h.writeTable(w)
}

func (h *BenchmarkHandler) writeTable(w http.ResponseWriter) {
	all := h.service.All()
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"benchmarks": all,
		"count":      len(all),
	})
}
