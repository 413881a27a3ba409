package handlers

import (
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/interfaces"
	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/report"
)

type ReportHandler struct {
	service interfaces.ReportService
	logger  arbor.ILogger
}

func NewReportHandler(service interfaces.ReportService, logger arbor.ILogger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger,
	}
}

// ReportHandler generates a report for GET /api/companies/{code}/report?price=&pe=&pb=&years=
func (h *ReportHandler) ReportHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	code := CompanyCodeFromPath(r.URL.Path)
	if code == "" {
		WriteError(w, http.StatusBadRequest, "Company code is required")
		return
	}

	opts, ok := reportOptions(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "price, pe, pb and years must be non-negative numbers")
		return
	}

	rep, err := h.service.Generate(r.Context(), code, opts)
	if err != nil {
		h.writeServiceError(w, code, err)
		return
	}

	WriteJSON(w, http.StatusOK, rep)
}

// RatiosHandler returns the ratio series for GET /api/companies/{code}/ratios
func (h *ReportHandler) RatiosHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	code := CompanyCodeFromPath(r.URL.Path)
	if code == "" {
		WriteError(w, http.StatusBadRequest, "Company code is required")
		return
	}

	series, err := h.service.Ratios(r.Context(), code)
	if err != nil {
		h.writeServiceError(w, code, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"company_code": code,
		"ratios":       series,
	})
}

func (h *ReportHandler) writeServiceError(w http.ResponseWriter, code string, err error) {
	switch {
	case errors.Is(err, report.ErrCompanyNotFound):
		WriteError(w, http.StatusNotFound, "Company not found: "+code)
		return
	case errors.Is(err, report.ErrYearNotFound), errors.Is(err, report.ErrSectorNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, report.ErrInvalidComparison):
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Error().Err(err).Str("company", code).Msg("Failed to analyze company")
	WriteError(w, http.StatusInternalServerError, "Failed to analyze company")
}

func reportOptions(r *http.Request) (models.ReportOptions, bool) {
	var opts models.ReportOptions
	var ok bool
	if opts.Price, ok = floatParam(r, "price"); !ok {
		return opts, false
	}
	if opts.PE, ok = floatParam(r, "pe"); !ok {
		return opts, false
	}
	if opts.PB, ok = floatParam(r, "pb"); !ok {
		return opts, false
	}
	if opts.MaxYears, ok = intParam(r, "years"); !ok {
		return opts, false
	}
	return opts, true
}
