package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDashboardStats(t *testing.T) {
	raw := []byte(`{
		"kpi": {"totalSales": 10000.5, "totalOrders": 120, "totalCustomers": 40},
		"countrySales": [{"country": "United Kingdom", "sales": 8000, "aov": 66.6, "orderCount": 120}],
		"performance": {
			"topPerformers": [{"product": "WHITE HANGING HEART", "sales": 300, "quantity": 100, "price": 2.95}],
			"underperformers": [{"product": "POSTAGE", "sales": 10, "quantity": 0}]
		},
		"forecastData": [{"month": "2011-01-01", "monthly_revenue": 1000, "order_count": 10}],
		"rowCount": 541909
	}`)

	payload, err := DecodeDashboardStats(raw)
	require.NoError(t, err)

	assert.Equal(t, 10000.5, payload.KPI.TotalSales)
	assert.Equal(t, int64(120), payload.KPI.TotalOrders)
	assert.Len(t, payload.CountrySales, 1)
	require.NotNil(t, payload.Performance.TopPerformers[0].Price)
	assert.Equal(t, 2.95, *payload.Performance.TopPerformers[0].Price)
	assert.Nil(t, payload.Performance.Underperformers[0].Price)
	assert.Equal(t, int64(10), payload.ForecastData[0].OrderCount)
	assert.Nil(t, payload.RegionalData)
	assert.Nil(t, payload.Error)
	assert.Equal(t, int64(541909), payload.RowCount)
}

func TestDecodeDashboardStats_Defaults(t *testing.T) {
	for _, raw := range []string{``, `null`, `{}`, `{"kpi": null}`} {
		payload, err := DecodeDashboardStats([]byte(raw))
		require.NoError(t, err, raw)

		assert.Zero(t, payload.KPI.TotalSales)
		assert.NotNil(t, payload.CountrySales)
		assert.NotNil(t, payload.Performance.TopPerformers)
		assert.NotNil(t, payload.Performance.Underperformers)
		assert.NotNil(t, payload.ForecastData)
	}
}

func TestDecodeDashboardStats_ErrorField(t *testing.T) {
	payload, err := DecodeDashboardStats([]byte(`{"error": "function get_dashboard_stats does not exist"}`))
	require.NoError(t, err)
	require.NotNil(t, payload.Error)
	assert.Equal(t, "function get_dashboard_stats does not exist", payload.Error.Error())

	payload, err = DecodeDashboardStats([]byte(`{"error": {"message": "timeout", "code": "57014"}}`))
	require.NoError(t, err)
	require.NotNil(t, payload.Error)
	assert.Equal(t, "timeout (code: 57014)", payload.Error.Error())
}

func TestDecodeDashboardStats_Malformed(t *testing.T) {
	_, err := DecodeDashboardStats([]byte(`{"kpi": [`))
	assert.Error(t, err)
}

func TestRegionalDistribution_IsZero(t *testing.T) {
	var nilDist *RegionalDistribution
	assert.True(t, nilDist.IsZero())
	assert.True(t, (&RegionalDistribution{}).IsZero())
	assert.False(t, (&RegionalDistribution{International: 1}).IsZero())
}
