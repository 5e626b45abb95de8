package dashboarding

import (
	"math"
	"strings"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

// DefaultDomesticCountry é o mercado doméstico da base Online Retail
const DefaultDomesticCountry = "United Kingdom"

// RegionalResolver fornece a divisão doméstico/internacional.
//
// Quando o payload não traz a divisão, usa uma heurística: as vendas do país
// DomesticCountry são domésticas e o restante do total do KPI é internacional.
// A heurística supõe um único mercado doméstico e pode ser desligada com Disabled.
type RegionalResolver struct {
	DomesticCountry string
	Disabled        bool
}

// Resolve devolve a divisão do upstream quando ela tem valor. Senão devolve a
// heurística, ou o valor do upstream intacto se o fallback estiver desligado.
func (r RegionalResolver) Resolve(
	upstream *domain.RegionalDistribution,
	countries []domain.CountrySales,
	totalSales float64,
) *domain.RegionalDistribution {
	if !upstream.IsZero() {
		split := *upstream
		return &split
	}

	if r.Disabled {
		return upstream
	}

	domesticCountry := r.DomesticCountry
	if domesticCountry == "" {
		domesticCountry = DefaultDomesticCountry
	}

	domestic := 0.0
	for _, c := range countries {
		if strings.EqualFold(strings.TrimSpace(c.Country), domesticCountry) {
			domestic = c.Sales
			break
		}
	}
	domestic = math.Max(0, domestic)

	return &domain.RegionalDistribution{
		Domestic:      domestic,
		International: math.Max(0, totalSales-domestic),
	}
}
