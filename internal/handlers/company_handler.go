package handlers

import (
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/interfaces"
	"github.com/ternarybob/finsight/internal/models"
)

type CompanyHandler struct {
	storage interfaces.StorageManager
	logger  arbor.ILogger
}

func NewCompanyHandler(storage interfaces.StorageManager, logger arbor.ILogger) *CompanyHandler {
	return &CompanyHandler{
		storage: storage,
		logger:  logger,
	}
}

// companyResponse is a company descriptor with its stored statement count
type companyResponse struct {
	models.Company
	Statements int `json:"statements"`
}

// ListHandler returns stored companies, optionally filtered by ?sector=
func (h *CompanyHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ctx := r.Context()
	var (
		companies []*models.Company
		err       error
	)
	if sector := r.URL.Query().Get("sector"); sector != "" {
		companies, err = h.storage.CompanyStorage().ListCompaniesBySector(ctx, sector)
	} else {
		companies, err = h.storage.CompanyStorage().ListCompanies(ctx)
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list companies")
		WriteError(w, http.StatusInternalServerError, "Failed to list companies")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"companies": companies,
		"count":     len(companies),
	})
}

// GetHandler returns one company. A company known only through its statements
// is returned with just its code.
func (h *CompanyHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	code := CompanyCodeFromPath(r.URL.Path)
	if code == "" {
		WriteError(w, http.StatusBadRequest, "Company code is required")
		return
	}

	ctx := r.Context()
	count, err := h.storage.StatementStorage().CountStatements(ctx, code)
	if err != nil {
		h.logger.Error().Err(err).Str("company", code).Msg("Failed to count statements")
		WriteError(w, http.StatusInternalServerError, "Failed to load company")
		return
	}

	company, err := h.storage.CompanyStorage().GetCompany(ctx, code)
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		if count == 0 {
			WriteError(w, http.StatusNotFound, "Company not found")
			return
		}
		company = &models.Company{Code: code}
	case err != nil:
		h.logger.Error().Err(err).Str("company", code).Msg("Failed to get company")
		WriteError(w, http.StatusInternalServerError, "Failed to load company")
		return
	}

	WriteJSON(w, http.StatusOK, companyResponse{Company: *company, Statements: count})
}
