package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

const sectorsPrefix = "/api/sectors/"

// StatementsHandler returns one year of statements for GET /api/companies/{code}/statements?year=
func (h *ReportHandler) StatementsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	code := CompanyCodeFromPath(r.URL.Path)
	if code == "" {
		WriteError(w, http.StatusBadRequest, "Company code is required")
		return
	}

	raw := strings.TrimSpace(r.URL.Query().Get("year"))
	if raw == "" {
		WriteError(w, http.StatusBadRequest, "year is required")
		return
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		WriteError(w, http.StatusBadRequest, "year must be a positive integer")
		return
	}

	snapshot, err := h.service.Statements(r.Context(), code, year)
	if err != nil {
		h.writeServiceError(w, code, err)
		return
	}

	WriteJSON(w, http.StatusOK, snapshot)
}

// CompareHandler lines up companies and sectors for GET /api/compare?codes=A,B&sectors=Retail
func (h *ReportHandler) CompareHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	codes := listParam(r, "codes")
	sectors := listParam(r, "sectors")
	if len(codes) == 0 && len(sectors) == 0 {
		WriteError(w, http.StatusBadRequest, "codes or sectors is required")
		return
	}

	comparison, err := h.service.Compare(r.Context(), codes, sectors)
	if err != nil {
		h.writeServiceError(w, strings.Join(codes, ","), err)
		return
	}

	WriteJSON(w, http.StatusOK, comparison)
}

// SectorHandler returns the company count and ROE ranking for GET /api/sectors/{sector}
func (h *ReportHandler) SectorHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	sector := strings.Trim(strings.TrimPrefix(r.URL.Path, sectorsPrefix), "/")
	if sector == "" {
		WriteError(w, http.StatusBadRequest, "Sector is required")
		return
	}

	analysis, err := h.service.Sector(r.Context(), sector)
	if err != nil {
		h.writeServiceError(w, sector, err)
		return
	}

	WriteJSON(w, http.StatusOK, analysis)
}

// listParam collects a repeatable, comma separated query parameter
func listParam(r *http.Request, name string) []string {
	var out []string
	for _, raw := range r.URL.Query()[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
