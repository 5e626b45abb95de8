package domain

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DashboardStatsPayload é o JSON composto devolvido por get_dashboard_stats.
// Campos ausentes ficam com valor zero; nenhuma validação além disso.
type DashboardStatsPayload struct {
	KPI          PayloadKPI            `json:"kpi"`
	CountrySales []PayloadCountrySales `json:"countrySales"`
	Performance  PayloadPerformance    `json:"performance"`
	ForecastData []MonthlyBucket       `json:"forecastData"`
	RegionalData *RegionalDistribution `json:"regionalData,omitempty"`
	RowCount     int64                 `json:"rowCount,omitempty"`
	Error        *PayloadError         `json:"error,omitempty"`
}

type PayloadKPI struct {
	TotalSales     float64 `json:"totalSales"`
	TotalOrders    int64   `json:"totalOrders"`
	TotalCustomers int64   `json:"totalCustomers"`
}

type PayloadCountrySales struct {
	Country    string  `json:"country"`
	Sales      float64 `json:"sales"`
	AOV        float64 `json:"aov,omitempty"`
	OrderCount int64   `json:"orderCount,omitempty"`
}

type PayloadPerformance struct {
	TopPerformers   []PayloadProduct `json:"topPerformers"`
	Underperformers []PayloadProduct `json:"underperformers"`
}

// PayloadProduct guarda Price como ponteiro para distinguir preço ausente de
// zero real.
type PayloadProduct struct {
	Product  string   `json:"product"`
	Sales    float64  `json:"sales"`
	Quantity float64  `json:"quantity"`
	Price    *float64 `json:"price,omitempty"`
}

// MonthlyBucket é um mês da série de receita, em ordem cronológica.
type MonthlyBucket struct {
	Month          string  `json:"month"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	OrderCount     int64   `json:"order_count"`
}

// PayloadError aceita tanto `"error": "msg"` quanto `"error": {"message": "msg"}`.
type PayloadError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (e *PayloadError) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		return json.Unmarshal(data, &e.Message)
	}

	type plain PayloadError
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = PayloadError(p)
	if e.Message == "" {
		e.Message = trimmed
	}
	return nil
}

func (e *PayloadError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (code: %s)", e.Message, e.Code)
	}
	return e.Message
}

// DecodeDashboardStats decodifica o payload da agregação e preenche coleções
// ausentes, assim o restante do pipeline nunca recebe slice nil.
func DecodeDashboardStats(data []byte) (*DashboardStatsPayload, error) {
	payload := &DashboardStatsPayload{}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return payload.withDefaults(), nil
	}

	if err := json.Unmarshal(data, payload); err != nil {
		return nil, fmt.Errorf("decoding dashboard stats payload: %w", err)
	}

	return payload.withDefaults(), nil
}

func (p *DashboardStatsPayload) withDefaults() *DashboardStatsPayload {
	if p.CountrySales == nil {
		p.CountrySales = []PayloadCountrySales{}
	}
	if p.Performance.TopPerformers == nil {
		p.Performance.TopPerformers = []PayloadProduct{}
	}
	if p.Performance.Underperformers == nil {
		p.Performance.Underperformers = []PayloadProduct{}
	}
	if p.ForecastData == nil {
		p.ForecastData = []MonthlyBucket{}
	}
	return p
}
