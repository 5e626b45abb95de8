package dashboarding

import (
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

// DeriveOptions controla as etapas de forecast e distribuição regional
type DeriveOptions struct {
	ForecastHorizon int
	Regional        RegionalResolver
}

func (o DeriveOptions) horizon() int {
	if o.ForecastHorizon <= 0 {
		return DefaultForecastHorizon
	}
	return o.ForecastHorizon
}

// Derive converte o payload bruto da agregação no resultado tipado do dashboard.
// A ordem das listas é mantida como veio; ordenar é papel da apresentação.
func Derive(payload *domain.DashboardStatsPayload, filter domain.DashboardFilter, opts DeriveOptions) *domain.DashboardResult {
	if payload == nil {
		payload = &domain.DashboardStatsPayload{}
	}

	kpi := domain.KPI{
		TotalSales:     payload.KPI.TotalSales,
		TotalOrders:    payload.KPI.TotalOrders,
		TotalCustomers: payload.KPI.TotalCustomers,
	}
	kpi.SalesTrend, kpi.OrdersTrend = ComputeTrends(payload.ForecastData)

	countrySales := mapCountrySales(payload.CountrySales)
	topPerformers := mapProducts(payload.Performance.TopPerformers)
	underperformers := mapProducts(payload.Performance.Underperformers)

	productSales := make([]domain.ProductSales, 0, len(topPerformers))
	for _, p := range topPerformers {
		productSales = append(productSales, domain.ProductSales{Product: p.Product, Sales: p.Sales})
	}

	return &domain.DashboardResult{
		Filters:      filter,
		KPI:          kpi,
		CountrySales: countrySales,
		ProductSales: productSales,
		Performance: domain.Performance{
			TopPerformers:   topPerformers,
			Underperformers: underperformers,
		},
		ForecastData: Forecast(buildSeries(payload.ForecastData), opts.horizon()),
		RegionalData: opts.Regional.Resolve(payload.RegionalData, countrySales, kpi.TotalSales),
		RowCount:     payload.RowCount,
	}
}

// ComputeTrends calcula a variação percentual entre os dois últimos buckets
// mensais, para receita e para pedidos. Valor anterior zero ou menos de dois
// buckets resulta em 0.
func ComputeTrends(buckets []domain.MonthlyBucket) (salesTrend, ordersTrend float64) {
	if len(buckets) < 2 {
		return 0, 0
	}

	previous := buckets[len(buckets)-2]
	current := buckets[len(buckets)-1]

	salesTrend = percentChange(previous.MonthlyRevenue, current.MonthlyRevenue)
	ordersTrend = percentChange(float64(previous.OrderCount), float64(current.OrderCount))

	return salesTrend, ordersTrend
}

func percentChange(previous, current float64) float64 {
	if previous == 0 {
		return 0
	}

	change := (current - previous) / previous * 100
	if !isFinite(change) {
		return 0
	}
	return change
}

func mapCountrySales(rows []domain.PayloadCountrySales) []domain.CountrySales {
	out := make([]domain.CountrySales, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CountrySales{
			Country:    row.Country,
			Sales:      row.Sales,
			AOV:        row.AOV,
			OrderCount: row.OrderCount,
		})
	}
	return out
}

func mapProducts(rows []domain.PayloadProduct) []domain.ProductPerformance {
	out := make([]domain.ProductPerformance, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ProductPerformance{
			Product:  row.Product,
			Sales:    row.Sales,
			Quantity: row.Quantity,
			Price:    averagePrice(row),
		})
	}
	return out
}

// averagePrice usa o preço do upstream quando presente; senão recalcula
func averagePrice(row domain.PayloadProduct) float64 {
	if row.Price != nil {
		return *row.Price
	}
	if row.Quantity > 0 {
		return row.Sales / row.Quantity
	}
	return 0
}
