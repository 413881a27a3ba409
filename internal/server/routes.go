package server

import (
	"net/http"
	"strings"

	"github.com/ternarybob/finsight/internal/handlers"
)

const companiesPrefix = "/api/companies/"

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - Companies and reports
	mux.HandleFunc("/api/companies", s.app.CompanyHandler.ListHandler) // GET ?sector=
	mux.HandleFunc(companiesPrefix, s.handleCompanyRoutes)             // GET /{code}, /{code}/report, /{code}/ratios, /{code}/statements?year=

	// API routes - Cross-company analysis
	mux.HandleFunc("/api/compare", s.app.ReportHandler.CompareHandler)  // GET ?codes=A,B&sectors=Retail
	mux.HandleFunc("/api/sectors/", s.app.ReportHandler.SectorHandler) // GET /{sector}

	// API routes - Import
	mux.HandleFunc("/api/import", s.app.ImportHandler.ImportHandler) // POST JSON bundle

	// API routes - Sector benchmarks
	mux.HandleFunc("/api/benchmarks", s.app.BenchmarkHandler.ListHandler)
	mux.HandleFunc("/api/benchmarks/refresh", s.app.BenchmarkHandler.RefreshHandler)

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}

// handleCompanyRoutes routes /api/companies/{code}[/report|/ratios|/statements]
func (s *Server) handleCompanyRoutes(w http.ResponseWriter, r *http.Request) {
	code, segment, ok := resourcePath(r.URL.Path, companiesPrefix)
	switch {
	case !ok && code == "" && strings.Trim(strings.TrimPrefix(r.URL.Path, companiesPrefix), "/") == "":
		handlers.WriteError(w, http.StatusBadRequest, "Company code is required")
		return
	case !ok:
		s.app.APIHandler.NotFoundHandler(w, r)
		return
	case segment == "":
		RouteByMethod(w, r, MethodRouter{
			http.MethodGet: s.app.CompanyHandler.GetHandler,
		})
		return
	}

	if !RouteSubresource(w, r, companiesPrefix, Subroutes{
		"report":     s.app.ReportHandler.ReportHandler,
		"ratios":     s.app.ReportHandler.RatiosHandler,
		"statements": s.app.ReportHandler.StatementsHandler,
	}) {
		s.app.APIHandler.NotFoundHandler(w, r)
	}
}
