package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/interfaces"
	"github.com/ternarybob/finsight/internal/interfaces/mocks"
	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/importer"
	"github.com/ternarybob/finsight/internal/services/report"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCompanyCodeFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/api/companies/abc", want: "ABC"},
		{path: "/api/companies/abc/report", want: "ABC"},
		{path: "/api/companies/", want: ""},
		{path: "/api/other/abc", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, CompanyCodeFromPath(tt.path))
		})
	}
}

func TestReportHandler(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		setup      func(m *mocks.ReportService)
		wantStatus int
	}{
		{
			name: "report with market inputs",
			url:  "/api/companies/abc/report?price=25.5&pe=9&years=3",
			setup: func(m *mocks.ReportService) {
				m.On("Generate", mock.Anything, "ABC", models.ReportOptions{Price: 25.5, PE: 9, MaxYears: 3}).
					Return(&models.Report{ID: "rpt_1", Company: models.Company{Code: "ABC"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown company",
			url:  "/api/companies/zzz/report",
			setup: func(m *mocks.ReportService) {
				m.On("Generate", mock.Anything, "ZZZ", models.ReportOptions{}).
					Return(nil, fmt.Errorf("ZZZ: %w", report.ErrCompanyNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid price",
			url:        "/api/companies/abc/report?price=-1",
			setup:      func(m *mocks.ReportService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service failure",
			url:  "/api/companies/abc/report",
			setup: func(m *mocks.ReportService) {
				m.On("Generate", mock.Anything, "ABC", models.ReportOptions{}).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.ReportService{}
			tt.setup(svc)
			handler := NewReportHandler(svc, arbor.NewLogger())

			rec := httptest.NewRecorder()
			handler.ReportHandler(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestReportHandler_MethodNotAllowed(t *testing.T) {
	handler := NewReportHandler(&mocks.ReportService{}, arbor.NewLogger())
	rec := httptest.NewRecorder()
	handler.ReportHandler(rec, httptest.NewRequest(http.MethodPost, "/api/companies/abc/report", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRatiosHandler(t *testing.T) {
	svc := &mocks.ReportService{}
	svc.On("Ratios", mock.Anything, "ABC").Return([]models.RatioSet{{Year: 2022}, {Year: 2023}}, nil)
	handler := NewReportHandler(svc, arbor.NewLogger())

	rec := httptest.NewRecorder()
	handler.RatiosHandler(rec, httptest.NewRequest(http.MethodGet, "/api/companies/abc/ratios", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "ABC", body["company_code"])
	assert.Len(t, body["ratios"], 2)
}

func TestImportHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *mocks.ImportService)
		wantStatus int
	}{
		{
			name: "imported",
			body: `{"company":{"code":"ABC"},"statements":[{"statement":"income_statement","year":2023,"items":{"revenue":100}}]}`,
			setup: func(m *mocks.ImportService) {
				m.On("ImportBundle", mock.Anything, mock.AnythingOfType("*models.ImportBundle")).
					Return(&models.ImportResult{ID: "imp_1", CompanyCode: "ABC", Statements: 1}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed json",
			body:       `{"company":`,
			setup:      func(m *mocks.ImportService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validation failure",
			body: `{"company":{"code":"ABC"},"statements":[{"statement":"notes","year":2023}]}`,
			setup: func(m *mocks.ImportService) {
				m.On("ImportBundle", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("invalid bundle: %w", validator.ValidationErrors{}))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "empty bundle",
			body: `{"company":{"code":"ABC"}}`,
			setup: func(m *mocks.ImportService) {
				m.On("ImportBundle", mock.Anything, mock.Anything).Return(nil, importer.ErrEmptyBundle)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: `{"company":{"code":"ABC"},"quote":{"price":1}}`,
			setup: func(m *mocks.ImportService) {
				m.On("ImportBundle", mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.ImportService{}
			tt.setup(svc)
			handler := NewImportHandler(svc, arbor.NewLogger())

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader(tt.body))
			handler.ImportHandler(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestBenchmarkHandler(t *testing.T) {
	svc := &mocks.BenchmarkService{}
	svc.On("All").Return([]models.SectorBenchmark{{Sector: "Retail"}})
	svc.On("Refresh", mock.Anything).Return(nil).Once()
	handler := NewBenchmarkHandler(svc, arbor.NewLogger())

	t.Run("list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ListHandler(rec, httptest.NewRequest(http.MethodGet, "/api/benchmarks", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), decode(t, rec)["count"])
	})

	t.Run("refresh", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.RefreshHandler(rec, httptest.NewRequest(http.MethodPost, "/api/benchmarks/refresh", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode(t, rec)["benchmarks"], 1)
	})

	t.Run("refresh failure", func(t *testing.T) {
		failing := &mocks.BenchmarkService{}
		failing.On("Refresh", mock.Anything).Return(errors.New("boom"))
		rec := httptest.NewRecorder()
		NewBenchmarkHandler(failing, arbor.NewLogger()).
			RefreshHandler(rec, httptest.NewRequest(http.MethodPost, "/api/benchmarks/refresh", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCompanyHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(s *mocks.StorageManager)
		wantStatus int
		wantName   string
	}{
		{
			name: "stored descriptor",
			setup: func(s *mocks.StorageManager) {
				s.Statements.On("CountStatements", mock.Anything, "ABC").Return(6, nil)
				s.Companies.On("GetCompany", mock.Anything, "ABC").Return(&models.Company{Code: "ABC", Name: "ABC Corp"}, nil)
			},
			wantStatus: http.StatusOK,
			wantName:   "ABC Corp",
		},
		{
			name: "statements only",
			setup: func(s *mocks.StorageManager) {
				s.Statements.On("CountStatements", mock.Anything, "ABC").Return(2, nil)
				s.Companies.On("GetCompany", mock.Anything, "ABC").Return(nil, interfaces.ErrNotFound)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown",
			setup: func(s *mocks.StorageManager) {
				s.Statements.On("CountStatements", mock.Anything, "ABC").Return(0, nil)
				s.Companies.On("GetCompany", mock.Anything, "ABC").Return(nil, interfaces.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := mocks.NewStorageManager()
			tt.setup(storage)
			handler := NewCompanyHandler(storage, arbor.NewLogger())

			rec := httptest.NewRecorder()
			handler.GetHandler(rec, httptest.NewRequest(http.MethodGet, "/api/companies/abc", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				body := decode(t, rec)
				assert.Equal(t, "ABC", body["code"])
				if tt.wantName != "" {
					assert.Equal(t, tt.wantName, body["name"])
				}
			}
		})
	}
}

func TestCompanyHandler_List(t *testing.T) {
	storage := mocks.NewStorageManager()
	storage.Companies.On("ListCompaniesBySector", mock.Anything, "Retail").
		Return([]*models.Company{{Code: "AAA"}, {Code: "BBB"}}, nil)
	handler := NewCompanyHandler(storage, arbor.NewLogger())

	rec := httptest.NewRecorder()
	handler.ListHandler(rec, httptest.NewRequest(http.MethodGet, "/api/companies?sector=Retail", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decode(t, rec)["count"])
	storage.Companies.AssertNotCalled(t, "ListCompanies", mock.Anything)
}

func TestAPIHandler(t *testing.T) {
	handler := NewAPIHandler(arbor.NewLogger())

	rec := httptest.NewRecorder()
	handler.HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])

	rec = httptest.NewRecorder()
	handler.VersionHandler(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode(t, rec), "version")
}
