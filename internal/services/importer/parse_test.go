package importer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/finsight/internal/models"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		want   float64
		wantOK bool
	}{
		{name: "float", input: 12.5, want: 12.5, wantOK: true},
		{name: "int", input: 42, want: 42, wantOK: true},
		{name: "json number", input: json.Number("1000.25"), want: 1000.25, wantOK: true},
		{name: "plain string", input: "3.75", want: 3.75, wantOK: true},
		{name: "thousand separators", input: "1,234,567.5", want: 1234567.5, wantOK: true},
		{name: "spaces as separators", input: " 12 000 ", want: 12000, wantOK: true},
		{name: "negative", input: "-150", want: -150, wantOK: true},
		{name: "accounting negative", input: "(2,500)", want: -2500, wantOK: true},
		{name: "empty string", input: "", wantOK: false},
		{name: "dash placeholder", input: "-", wantOK: false},
		{name: "text", input: "n/a", wantOK: false},
		{name: "nil", input: nil, wantOK: false},
		{name: "bool", input: true, wantOK: false},
		{name: "NaN string", input: "NaN", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "data/abc.json", want: FormatJSON},
		{path: "data/abc.YAML", want: FormatYAML},
		{path: "abc.yml", want: FormatYAML},
		{path: "abc.csv", wantErr: true},
		{path: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

const jsonBundle = `{
  "company": {"code": "abc", "name": "ABC Corp", "sector": "Retail"},
  "statements": [
    {"statement": "income_statement", "year": 2023, "quarter": 4,
     "items": {"revenue": "1,200", "net_profit": 150, "note": "restated"}}
  ],
  "quote": {"price": 25.5}
}`

const yamlBundle = `
company:
  code: abc
  icb_level3: Retail
statements:
  - statement: balance_sheet
    year: 2023
    items:
      total_assets: 2000
      equity: "1,300"
benchmarks:
  - sector: Retail
    averages:
      ROE: 10
      PE: 12
`

func TestParseBundle(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		bundle, err := ParseBundle([]byte(jsonBundle), FormatJSON)
		require.NoError(t, err)

		assert.Equal(t, "abc", bundle.Company.Code)
		require.Len(t, bundle.Statements, 1)
		assert.Equal(t, models.StatementIncome, bundle.Statements[0].Statement)

		record, skipped := toRecord("ABC", bundle.Statements[0])
		assert.Equal(t, 1200.0, record.Items[models.ItemRevenue])
		assert.Equal(t, 150.0, record.Items[models.ItemNetProfit])
		assert.Equal(t, []string{"income_statement/2023/note"}, skipped)

		require.NotNil(t, bundle.Quote)
		assert.Equal(t, 25.5, bundle.Quote.Price)
	})

	t.Run("yaml", func(t *testing.T) {
		bundle, err := ParseBundle([]byte(yamlBundle), FormatYAML)
		require.NoError(t, err)

		assert.Equal(t, "Retail", bundle.Company.SectorName())
		require.Len(t, bundle.Statements, 1)

		record, skipped := toRecord("ABC", bundle.Statements[0])
		assert.Empty(t, skipped)
		assert.Equal(t, 2000.0, record.Items[models.ItemTotalAssets])
		assert.Equal(t, 1300.0, record.Items[models.ItemEquity])

		require.Len(t, bundle.Benchmarks, 1)
		assert.Equal(t, 12.0, bundle.Benchmarks[0].Averages["PE"])
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseBundle([]byte("{"), FormatJSON)
		assert.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := ParseBundle([]byte("{}"), "xml")
		assert.Error(t, err)
	})
}

func TestToRecord_AbsentItems(t *testing.T) {
	tests := []struct {
		name        string
		raw         interface{}
		wantPresent bool
		wantValue   float64
	}{
		{name: "null", raw: nil, wantPresent: false},
		{name: "text", raw: "n/a", wantPresent: false},
		{name: "blank string", raw: "  ", wantPresent: false},
		{name: "reported zero", raw: 0.0, wantPresent: true, wantValue: 0},
		{name: "zero string", raw: "0", wantPresent: true, wantValue: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, _ := toRecord("ABC", models.ImportStatement{
				Statement: models.StatementIncome,
				Year:      2023,
				Quarter:   4,
				Items:     map[string]interface{}{models.ItemRevenue: tt.raw},
			})

			v, ok := record.Value(models.ItemRevenue)
			assert.Equal(t, tt.wantPresent, ok)
			assert.Equal(t, tt.wantValue, v)
			_, stored := record.Items[models.ItemRevenue]
			assert.Equal(t, tt.wantPresent, stored)
		})
	}
}
