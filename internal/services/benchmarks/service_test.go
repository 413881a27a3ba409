package benchmarks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/common"
	"github.com/ternarybob/finsight/internal/interfaces"
	"github.com/ternarybob/finsight/internal/interfaces/mocks"
	"github.com/ternarybob/finsight/internal/models"
)

func defaultBenchmarksConfig() common.BenchmarksConfig {
	return common.BenchmarksConfig{Enabled: true, Derive: true}
}

func statements(code string, netProfit, equity, assets float64) []models.StatementRecord {
	return []models.StatementRecord{
		{
			CompanyCode: code,
			Statement:   models.StatementBalanceSheet,
			Year:        2023,
			Items: map[string]float64{
				models.ItemTotalAssets: assets,
				models.ItemEquity:      equity,
			},
		},
		{
			CompanyCode: code,
			Statement:   models.StatementIncome,
			Year:        2023,
			Items: map[string]float64{
				models.ItemNetProfit: netProfit,
			},
		},
	}
}

func TestService_Load(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewStorageManager()
	storage.Benchmarks.On("ListBenchmarks", ctx).Return([]*models.SectorBenchmark{
		{Sector: "Retail", Averages: map[string]float64{"ROE": 10}},
	}, nil)

	svc := NewService(storage, defaultBenchmarksConfig(), arbor.NewLogger())
	require.NoError(t, svc.Load(ctx))

	got := svc.Get("Retail")
	require.NotNil(t, got)
	assert.Equal(t, 10.0, got.Averages["ROE"])
	storage.Benchmarks.AssertExpectations(t)
}

func TestService_LoadError(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewStorageManager()
	storage.Benchmarks.On("ListBenchmarks", ctx).Return(nil, errors.New("disk gone"))

	svc := NewService(storage, defaultBenchmarksConfig(), arbor.NewLogger())
	svc.Publish([]models.SectorBenchmark{bench("Retail", 7)})

	err := svc.Load(ctx)
	assert.Error(t, err)
	assert.Equal(t, 7.0, svc.Get("Retail").Averages["ROE"], "failed load keeps the previous table")
}

func TestService_RefreshDerives(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewStorageManager()

	storage.Companies.On("ListCompanies", ctx).Return([]*models.Company{
		{Code: "AAA", Sector: "Retail"},
		{Code: "BBB", ICBLevel3: "Retail"},
		{Code: "CCC"},
	}, nil)
	storage.Statements.On("GetStatements", ctx, "AAA").Return(statements("AAA", 100, 500, 1000), nil)
	storage.Statements.On("GetStatements", ctx, "BBB").Return(statements("BBB", 300, 1000, 2000), nil)

	stored := &models.SectorBenchmark{
		Sector:   "Retail",
		Averages: map[string]float64{models.BenchmarkPE: 14},
		Source:   models.BenchmarkSourceImported,
	}
	storage.Benchmarks.On("GetBenchmark", ctx, "Retail").Return(stored, nil)

	var saved *models.SectorBenchmark
	storage.Benchmarks.On("SaveBenchmark", ctx, mock.AnythingOfType("*models.SectorBenchmark")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.SectorBenchmark)
		}).
		Return(nil)
	storage.Benchmarks.On("ListBenchmarks", ctx).Return([]*models.SectorBenchmark{
		{Sector: "Retail", Averages: map[string]float64{"ROE": 25, "PE": 14}},
	}, nil)

	svc := NewService(storage, defaultBenchmarksConfig(), arbor.NewLogger())
	require.NoError(t, svc.Refresh(ctx))

	require.NotNil(t, saved)
	assert.Equal(t, 2, saved.CompanyCount)
	assert.InDelta(t, 25.0, saved.Averages["ROE"], 1e-9) // (20 + 30) / 2
	assert.InDelta(t, 12.5, saved.Averages["ROA"], 1e-9) // (10 + 15) / 2
	assert.Equal(t, 14.0, saved.Averages["PE"])
	assert.Equal(t, models.BenchmarkSourceDerived, saved.Source)

	require.NotNil(t, svc.Get("Retail"))
	assert.Equal(t, 25.0, svc.Get("Retail").Averages["ROE"])

	storage.Statements.AssertNotCalled(t, "GetStatements", ctx, "CCC")
	storage.Companies.AssertExpectations(t)
	storage.Statements.AssertExpectations(t)
}

func TestService_RefreshWithoutDerive(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewStorageManager()
	storage.Benchmarks.On("ListBenchmarks", ctx).Return([]*models.SectorBenchmark{}, nil)

	cfg := defaultBenchmarksConfig()
	cfg.Derive = false
	svc := NewService(storage, cfg, arbor.NewLogger())

	require.NoError(t, svc.Refresh(ctx))
	storage.Companies.AssertNotCalled(t, "ListCompanies", mock.Anything)
	storage.Benchmarks.AssertExpectations(t)
}

func TestService_RefreshStorageErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing stored benchmark is fine", func(t *testing.T) {
		storage := mocks.NewStorageManager()
		storage.Companies.On("ListCompanies", ctx).Return([]*models.Company{{Code: "AAA", Sector: "Retail"}}, nil)
		storage.Statements.On("GetStatements", ctx, "AAA").Return(statements("AAA", 100, 500, 1000), nil)
		storage.Benchmarks.On("GetBenchmark", ctx, "Retail").Return(nil, interfaces.ErrNotFound)
		storage.Benchmarks.On("SaveBenchmark", ctx, mock.Anything).Return(nil)
		storage.Benchmarks.On("ListBenchmarks", ctx).Return([]*models.SectorBenchmark{}, nil)

		svc := NewService(storage, defaultBenchmarksConfig(), arbor.NewLogger())
		assert.NoError(t, svc.Refresh(ctx))
		storage.Benchmarks.AssertExpectations(t)
	})

	t.Run("company listing fails", func(t *testing.T) {
		storage := mocks.NewStorageManager()
		storage.Companies.On("ListCompanies", ctx).Return(nil, errors.New("boom"))

		svc := NewService(storage, defaultBenchmarksConfig(), arbor.NewLogger())
		err := svc.Refresh(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list companies")
	})
}
