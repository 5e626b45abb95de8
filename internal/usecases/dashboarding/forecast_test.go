package dashboarding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

func forecastValues(points []domain.ForecastPoint) []float64 {
	out := make([]float64, 0, len(points))
	for _, p := range points {
		out = append(out, *p.ForecastSales)
	}
	return out
}

func TestForecast(t *testing.T) {
	tests := []struct {
		name         string
		series       []SeriesPoint
		horizon      int
		wantForecast []float64
		wantDates    []string
	}{
		{
			name: "linear series projects the trend",
			series: []SeriesPoint{
				{Index: 0, Revenue: 100, Label: "Jan 2011"},
				{Index: 1, Revenue: 200, Label: "Feb 2011"},
				{Index: 2, Revenue: 300, Label: "Mar 2011"},
			},
			horizon:      3,
			wantForecast: []float64{100, 200, 300, 400, 500, 600},
			wantDates:    []string{"Jan 2011", "Feb 2011", "Mar 2011", "Forecast 1", "Forecast 2", "Forecast 3"},
		},
		{
			name:         "single point is a flat line at its value",
			series:       []SeriesPoint{{Index: 0, Revenue: 50, Label: "Dec 2010"}},
			horizon:      3,
			wantForecast: []float64{50, 50, 50, 50},
			wantDates:    []string{"Dec 2010", "Forecast 1", "Forecast 2", "Forecast 3"},
		},
		{
			name: "falling series is floored at zero",
			series: []SeriesPoint{
				{Index: 0, Revenue: 300, Label: "Jan 2011"},
				{Index: 1, Revenue: 100, Label: "Feb 2011"},
			},
			horizon:      3,
			wantForecast: []float64{300, 100, 0, 0, 0},
			wantDates:    []string{"Jan 2011", "Feb 2011", "Forecast 1", "Forecast 2", "Forecast 3"},
		},
		{
			name: "constant series",
			series: []SeriesPoint{
				{Index: 0, Revenue: 70},
				{Index: 1, Revenue: 70},
				{Index: 2, Revenue: 70},
			},
			horizon:      1,
			wantForecast: []float64{70, 70, 70, 70},
			wantDates:    []string{"", "", "", "Forecast 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := Forecast(tt.series, tt.horizon)
			require.Len(t, points, len(tt.series)+tt.horizon)

			assert.InDeltaSlice(t, tt.wantForecast, forecastValues(points), 1e-9)

			dates := make([]string, 0, len(points))
			for _, p := range points {
				dates = append(dates, p.Date)
			}
			assert.Equal(t, tt.wantDates, dates)
		})
	}
}

func TestForecast_ActualSalesOnlyOnHistoricalPoints(t *testing.T) {
	series := []SeriesPoint{
		{Index: 0, Revenue: 10},
		{Index: 1, Revenue: 20},
	}

	points := Forecast(series, 3)
	require.Len(t, points, 5)

	for i, p := range points {
		require.NotNil(t, p.ForecastSales, "point %d", i)
		assert.GreaterOrEqual(t, *p.ForecastSales, 0.0)

		if i < len(series) {
			require.NotNil(t, p.ActualSales)
			assert.Equal(t, series[i].Revenue, *p.ActualSales)
		} else {
			assert.Nil(t, p.ActualSales)
		}
	}
}

func TestForecast_EmptySeries(t *testing.T) {
	points := Forecast(nil, 3)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestFitLine_NonFiniteInputFallsBackToMean(t *testing.T) {
	slope, intercept := fitLine([]SeriesPoint{
		{Index: 0, Revenue: math.MaxFloat64},
		{Index: 1, Revenue: math.MaxFloat64},
	})

	assert.Equal(t, 0.0, slope)
	assert.False(t, math.IsNaN(intercept))
}

func TestProject_PanicsOnNonFinite(t *testing.T) {
	assert.PanicsWithError(t,
		"computation error in forecast: non-finite projection at index 1 (slope=NaN, intercept=0)",
		func() { project(math.NaN(), 0, 1) },
	)
}

func TestBuildSeries(t *testing.T) {
	series := buildSeries([]domain.MonthlyBucket{
		{Month: "2011-01-01", MonthlyRevenue: 10},
		{Month: "2011-02-01T00:00:00Z", MonthlyRevenue: 20},
		{Month: "2011-03", MonthlyRevenue: 30},
		{Month: "Q2", MonthlyRevenue: 40},
	})

	require.Len(t, series, 4)
	assert.Equal(t, []SeriesPoint{
		{Index: 0, Revenue: 10, Label: "Jan 2011"},
		{Index: 1, Revenue: 20, Label: "Feb 2011"},
		{Index: 2, Revenue: 30, Label: "Mar 2011"},
		{Index: 3, Revenue: 40, Label: "Q2"},
	}, series)
}
