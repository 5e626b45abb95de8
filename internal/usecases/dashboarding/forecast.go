package dashboarding

import (
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

// DefaultForecastHorizon é o número de meses projetados após o último bucket
const DefaultForecastHorizon = 3

// SeriesPoint é um bucket mensal já indexado (0, 1, 2, ...) em ordem cronológica
type SeriesPoint struct {
	Index   int
	Revenue float64
	Label   string
}

// Forecast ajusta uma reta por mínimos quadrados sobre a série e devolve um
// ponto por bucket histórico mais horizon pontos projetados. Valores ajustados
// nunca ficam abaixo de zero.
func Forecast(series []SeriesPoint, horizon int) []domain.ForecastPoint {
	if len(series) == 0 {
		return []domain.ForecastPoint{}
	}
	if horizon < 0 {
		horizon = 0
	}

	slope, intercept := fitLine(series)

	points := make([]domain.ForecastPoint, 0, len(series)+horizon)
	for _, p := range series {
		actual := p.Revenue
		fitted := project(slope, intercept, p.Index)

		points = append(points, domain.ForecastPoint{
			Date:          p.Label,
			ActualSales:   &actual,
			ForecastSales: &fitted,
		})
	}

	lastIndex := series[len(series)-1].Index
	for i := 1; i <= horizon; i++ {
		fitted := project(slope, intercept, lastIndex+i)

		points = append(points, domain.ForecastPoint{
			Date:          fmt.Sprintf("Forecast %d", i),
			ForecastSales: &fitted,
		})
	}

	return points
}

// fitLine retorna slope e intercept de y = slope*x + intercept.
// Com um único ponto ou denominador degenerado a reta é horizontal na média.
func fitLine(series []SeriesPoint) (slope, intercept float64) {
	n := float64(len(series))

	var sumX, sumY, sumXY, sumXX float64
	for _, p := range series {
		x := float64(p.Index)
		sumX += x
		sumY += p.Revenue
		sumXY += x * p.Revenue
		sumXX += x * x
	}

	mean := sumY / n
	if len(series) < 2 {
		return 0, mean
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 || !isFinite(denominator) {
		return 0, mean
	}

	slope = (n*sumXY - sumX*sumY) / denominator
	intercept = (sumY - slope*sumX) / n

	if !isFinite(slope) || !isFinite(intercept) {
		return 0, mean
	}

	return slope, intercept
}

func project(slope, intercept float64, index int) float64 {
	v := slope*float64(index) + intercept
	if !isFinite(v) {
		panic(&domain.ComputationError{
			Op:     "forecast",
			Detail: fmt.Sprintf("non-finite projection at index %d (slope=%v, intercept=%v)", index, slope, intercept),
		})
	}
	return math.Max(0, v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// buildSeries converte os buckets do payload em pontos indexados
func buildSeries(buckets []domain.MonthlyBucket) []SeriesPoint {
	series := make([]SeriesPoint, 0, len(buckets))
	for i, b := range buckets {
		series = append(series, SeriesPoint{
			Index:   i,
			Revenue: b.MonthlyRevenue,
			Label:   monthLabel(b.Month),
		})
	}
	return series
}

var monthLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"2006-01",
}

// monthLabel formata o mês do bucket como "Jan 2011"; se não for uma data
// reconhecível mantém o valor original.
func monthLabel(month string) string {
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, month); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return month
}
