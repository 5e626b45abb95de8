package domain

// KPI são os totais exibidos nos cards do topo do dashboard.
// Os trends são percentuais período a período e ficam zerados quando não há
// histórico suficiente.
type KPI struct {
	TotalSales     float64 `json:"totalSales"`
	TotalOrders    int64   `json:"totalOrders"`
	TotalCustomers int64   `json:"totalCustomers"`
	SalesTrend     float64 `json:"salesTrend,omitempty"`
	OrdersTrend    float64 `json:"ordersTrend,omitempty"`
}

type CountrySales struct {
	Country    string  `json:"country"`
	Sales      float64 `json:"sales"`
	AOV        float64 `json:"aov,omitempty"`
	OrderCount int64   `json:"orderCount,omitempty"`
}

type ProductSales struct {
	Product string  `json:"product"`
	Sales   float64 `json:"sales"`
}

// ProductPerformance é uma linha das listas de melhores e piores produtos.
// Price é o preço médio realizado (sales / quantity).
type ProductPerformance struct {
	Product  string  `json:"product"`
	Sales    float64 `json:"sales"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

type Performance struct {
	TopPerformers   []ProductPerformance `json:"topPerformers"`
	Underperformers []ProductPerformance `json:"underperformers"`
}

// ForecastPoint é um ponto do gráfico de tendência. Pontos históricos têm
// ActualSales e ForecastSales; pontos futuros só têm ForecastSales.
type ForecastPoint struct {
	Date          string   `json:"date"`
	ActualSales   *float64 `json:"actualSales,omitempty"`
	ForecastSales *float64 `json:"forecastSales,omitempty"`
}

type RegionalDistribution struct {
	Domestic      float64 `json:"domestic"`
	International float64 `json:"international"`
}

// IsZero indica que nenhum dos lados da divisão tem valor.
func (r *RegionalDistribution) IsZero() bool {
	return r == nil || (r.Domestic == 0 && r.International == 0)
}

// DashboardResult é o único valor retornado pelo pipeline e o único valor
// armazenado no cache. Um resultado do cache é indistinguível de um recém
// calculado.
type DashboardResult struct {
	Filters      DashboardFilter       `json:"filters"`
	KPI          KPI                   `json:"kpi"`
	CountrySales []CountrySales        `json:"countrySales"`
	ProductSales []ProductSales        `json:"productSales"`
	Performance  Performance           `json:"performance"`
	ForecastData []ForecastPoint       `json:"forecastData"`
	RegionalData *RegionalDistribution `json:"regionalData"`
	RowCount     int64                 `json:"rowCount,omitempty"`
}
