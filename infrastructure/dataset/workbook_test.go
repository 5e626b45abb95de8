package dataset

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook gera uma planilha no formato da base Online Retail
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Online Retail.xlsx")
	writeWorkbookAt(t, path, rows)
	return path
}

func writeWorkbookAt(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"InvoiceNo", "StockCode", "Description", "Quantity", "InvoiceDate", "UnitPrice", "CustomerID", "Country"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellRef, &row))
	}

	require.NoError(t, f.SaveAs(path))
}

func sampleRows() [][]interface{} {
	return [][]interface{}{
		{"536365", "85123A", "WHITE HANGING HEART", 6, "2010-12-01 08:26:00", 2.55, 17850, "United Kingdom"},
		{"536365", "71053", "WHITE METAL LANTERN", 6, "2010-12-01 08:26:00", 3.39, 17850, "United Kingdom"},
		{"536370", "22728", "ALARM CLOCK BAKELIKE", 24, "2010-12-01 08:45:00", 3.75, 12583, "France"},
		{"540001", "85123A", "WHITE HANGING HEART", 10, 40544.5, 2.5, 17850, "United Kingdom"},
		{"C540002", "22728", "ALARM CLOCK BAKELIKE", -2, "2011-01-03 10:00:00", 3.75, 12583, "France"},
		// sem preço: ignorada
		{"540003", "22086", "PAPER CHAIN KIT", 5, "2011-01-04 10:00:00", 0, "", "United Kingdom"},
		// sem cliente: conta na receita, não nos clientes
		{"540004", "21730", "GLASS STAR", 1, "2011-01-05 10:00:00", 10, "", "Germany"},
	}
}

func TestWorkbookSource_GetDashboardStats(t *testing.T) {
	source := NewWorkbookSource(writeWorkbook(t, sampleRows()))

	payload, err := source.GetDashboardStats(context.Background(), domain.DashboardFilter{})
	require.NoError(t, err)

	// 15.3 + 20.34 + 90 + 25 - 7.5 + 10
	assert.InDelta(t, 153.14, payload.KPI.TotalSales, 1e-9)
	assert.Equal(t, int64(5), payload.KPI.TotalOrders)
	assert.Equal(t, int64(2), payload.KPI.TotalCustomers)
	assert.Equal(t, int64(6), payload.RowCount)
	assert.Nil(t, payload.RegionalData)

	require.Len(t, payload.CountrySales, 3)
	assert.Equal(t, "France", payload.CountrySales[0].Country)
	assert.InDelta(t, 82.5, payload.CountrySales[0].Sales, 1e-9)
	assert.Equal(t, int64(2), payload.CountrySales[0].OrderCount)
	assert.InDelta(t, 41.25, payload.CountrySales[0].AOV, 1e-9)
	assert.Equal(t, "United Kingdom", payload.CountrySales[1].Country)
	assert.InDelta(t, 60.64, payload.CountrySales[1].Sales, 1e-9)

	require.Len(t, payload.Performance.TopPerformers, 4)
	assert.Equal(t, "ALARM CLOCK BAKELIKE", payload.Performance.TopPerformers[0].Product)
	assert.InDelta(t, 22.0, payload.Performance.TopPerformers[0].Quantity, 1e-9)
	assert.Nil(t, payload.Performance.TopPerformers[0].Price)
	assert.Equal(t, "GLASS STAR", payload.Performance.Underperformers[0].Product)

	require.Len(t, payload.ForecastData, 2)
	assert.Equal(t, domain.MonthlyBucket{Month: "2010-12-01", MonthlyRevenue: payload.ForecastData[0].MonthlyRevenue, OrderCount: 2}, payload.ForecastData[0])
	assert.InDelta(t, 125.64, payload.ForecastData[0].MonthlyRevenue, 1e-9)
	assert.Equal(t, "2011-01-01", payload.ForecastData[1].Month)
	assert.Equal(t, int64(3), payload.ForecastData[1].OrderCount)
}

func TestWorkbookSource_Filters(t *testing.T) {
	source := NewWorkbookSource(writeWorkbook(t, sampleRows()))

	start := time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2011, 1, 3, 0, 0, 0, 0, time.UTC)
	france := "france"

	tests := []struct {
		name      string
		filter    domain.DashboardFilter
		wantSales float64
		wantRows  int64
	}{
		{
			name:      "date range is inclusive of the end day",
			filter:    domain.DashboardFilter{StartDate: &start, EndDate: &end},
			wantSales: 25 - 7.5,
			wantRows:  2,
		},
		{
			name:      "country filter is case-insensitive",
			filter:    domain.DashboardFilter{Country: &france},
			wantSales: 90 - 7.5,
			wantRows:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := source.GetDashboardStats(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantSales, payload.KPI.TotalSales, 1e-9)
			assert.Equal(t, tt.wantRows, payload.RowCount)
		})
	}
}

func TestAggregate_DatasetSizeCapsRows(t *testing.T) {
	rows := make([]retailRow, 0, 10_050)
	for i := 0; i < 10_050; i++ {
		rows = append(rows, retailRow{
			InvoiceNo:   "1",
			Description: "MUG",
			Quantity:    1,
			UnitPrice:   1,
			InvoiceDate: time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC),
			Country:     "United Kingdom",
		})
	}

	small := aggregate(rows, domain.DashboardFilter{DatasetSize: domain.DatasetSmall})
	assert.Equal(t, int64(10_000), small.RowCount)

	large := aggregate(rows, domain.DashboardFilter{DatasetSize: domain.DatasetLarge})
	assert.Equal(t, int64(10_050), large.RowCount)
}

func TestAggregate_EmptyRows(t *testing.T) {
	payload := aggregate(nil, domain.DashboardFilter{})

	assert.Equal(t, domain.PayloadKPI{}, payload.KPI)
	assert.NotNil(t, payload.CountrySales)
	assert.NotNil(t, payload.Performance.TopPerformers)
	assert.NotNil(t, payload.Performance.Underperformers)
	assert.NotNil(t, payload.ForecastData)
}

func TestWorkbookSource_MissingFile(t *testing.T) {
	source := NewWorkbookSource(filepath.Join(t.TempDir(), "missing.xlsx"))

	_, err := source.GetDashboardStats(context.Background(), domain.DashboardFilter{})
	assert.ErrorContains(t, err, "opening workbook")
}

func TestWorkbookSource_RetriesAfterLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Online Retail.xlsx")
	source := NewWorkbookSource(path)

	_, err := source.GetDashboardStats(context.Background(), domain.DashboardFilter{})
	require.ErrorContains(t, err, "opening workbook")

	// a planilha aparece depois da primeira falha
	writeWorkbookAt(t, path, sampleRows())

	payload, err := source.GetDashboardStats(context.Background(), domain.DashboardFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(6), payload.RowCount)
}

func TestParseInvoiceDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{in: "40544.5", want: time.Date(2011, 1, 1, 12, 0, 0, 0, time.UTC), ok: true},
		{in: "2011-01-05 10:00:00", want: time.Date(2011, 1, 5, 10, 0, 0, 0, time.UTC), ok: true},
		{in: "12/1/10 8:26", want: time.Date(2010, 12, 1, 8, 26, 0, 0, time.UTC), ok: true},
		{in: "", ok: false},
		{in: "yesterday", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseInvoiceDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}
