package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/interfaces"
	"github.com/ternarybob/finsight/internal/services/importer"
)

type ImportHandler struct {
	service interfaces.ImportService
	logger  arbor.ILogger
}

func NewImportHandler(service interfaces.ImportService, logger arbor.ILogger) *ImportHandler {
	return &ImportHandler{
		service: service,
		logger:  logger,
	}
}

// ImportHandler imports a JSON statement bundle posted to /api/import
func (h *ImportHandler) ImportHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, http.StatusRequestEntityTooLarge, "Bundle too large")
			return
		}
		WriteError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	bundle, err := importer.ParseBundle(body, importer.FormatJSON)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.ImportBundle(r.Context(), bundle)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) || errors.Is(err, importer.ErrEmptyBundle) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("Failed to import bundle")
		WriteError(w, http.StatusInternalServerError, "Failed to import bundle")
		return
	}

	WriteJSON(w, http.StatusCreated, result)
}
