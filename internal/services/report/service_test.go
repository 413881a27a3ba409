package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/interfaces"
	"github.com/ternarybob/finsight/internal/interfaces/mocks"
	"github.com/ternarybob/finsight/internal/models"
)

func newService(storage *mocks.StorageManager, bench *mocks.BenchmarkService) *Service {
	return NewService(newEngine(), storage, bench, arbor.NewLogger())
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewStorageManager()
	bench := &mocks.BenchmarkService{}

	storage.Statements.On("GetStatements", ctx, "ABC").Return(strongCompany(), nil)
	storage.Companies.On("GetCompany", ctx, "ABC").Return(&models.Company{Code: "ABC", Name: "ABC Corp", Sector: "Retail"}, nil)
	storage.Quotes.On("GetQuote", ctx, "ABC").Return(&models.MarketQuote{CompanyCode: "ABC", Price: 20, PE: 9}, nil)
	bench.On("Get", "Retail").Return(retailSector())

	report, err := newService(storage, bench).Generate(ctx, " abc ", models.ReportOptions{Price: 30})
	require.NoError(t, err)

	assert.Equal(t, "ABC Corp", report.Company.Name)
	require.NotNil(t, report.Sector)
	assert.Equal(t, "Retail", report.Sector.Sector)

	// Price from the request wins, P/E comes from the stored quote
	require.NotNil(t, report.Recommendation)
	assert.True(t, report.Recommendation.TargetPriceAvailable)
	assert.Equal(t, 1, report.Recommendation.SubScores.Valuation)

	storage.Statements.AssertExpectations(t)
	storage.Companies.AssertExpectations(t)
	storage.Quotes.AssertExpectations(t)
	bench.AssertExpectations(t)
}

func TestGenerate_UnknownCompanyDescriptor(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewStorageManager()
	bench := &mocks.BenchmarkService{}

	storage.Statements.On("GetStatements", ctx, "ABC").Return(strongCompany(), nil)
	storage.Companies.On("GetCompany", ctx, "ABC").Return(nil, interfaces.ErrNotFound)
	storage.Quotes.On("GetQuote", ctx, "ABC").Return(nil, interfaces.ErrNotFound)

	report, err := newService(storage, bench).Generate(ctx, "ABC", models.ReportOptions{})
	require.NoError(t, err)

	assert.Equal(t, "ABC", report.Company.Code)
	assert.Nil(t, report.Sector)
	assert.False(t, report.Recommendation.TargetPriceAvailable)
	bench.AssertNotCalled(t, "Get", mock.Anything)
}

func TestGenerate_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		code    string
		setup   func(s *mocks.StorageManager)
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty code",
			code:    "  ",
			setup:   func(s *mocks.StorageManager) {},
			wantErr: ErrCompanyNotFound,
		},
		{
			name: "no statement rows",
			code: "XYZ",
			setup: func(s *mocks.StorageManager) {
				s.Statements.On("GetStatements", ctx, "XYZ").Return([]models.StatementRecord{}, nil)
			},
			wantErr: ErrCompanyNotFound,
		},
		{
			name: "statement storage failure",
			code: "XYZ",
			setup: func(s *mocks.StorageManager) {
				s.Statements.On("GetStatements", ctx, "XYZ").Return(nil, errors.New("disk gone"))
			},
			wantMsg: "failed to load statements",
		},
		{
			name: "quote storage failure",
			code: "ABC",
			setup: func(s *mocks.StorageManager) {
				s.Statements.On("GetStatements", ctx, "ABC").Return(strongCompany(), nil)
				s.Companies.On("GetCompany", ctx, "ABC").Return(&models.Company{Code: "ABC"}, nil)
				s.Quotes.On("GetQuote", ctx, "ABC").Return(nil, errors.New("disk gone"))
			},
			wantMsg: "failed to load quote",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := mocks.NewStorageManager()
			tt.setup(storage)

			_, err := newService(storage, &mocks.BenchmarkService{}).Generate(ctx, tt.code, models.ReportOptions{})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRatios(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewStorageManager()
	storage.Statements.On("GetStatements", ctx, "ABC").Return(strongCompany(), nil)

	series, err := newService(storage, nil).Ratios(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, series, 5)
	assert.Equal(t, 2019, series[0].Year)
	assert.Equal(t, 2023, series[4].Year)
}
