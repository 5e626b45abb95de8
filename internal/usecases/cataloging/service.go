package cataloging

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

const (
	DefaultLatestSalesLimit = 5
	MaxLatestSalesLimit     = 50

	DefaultSalesPageSize = 50
	MaxSalesPageSize     = 200

	DefaultProductPageSize = 10
	MaxProductPageSize     = 100
)

// Cataloger expõe as consultas auxiliares dos widgets do dashboard
type Cataloger interface {
	// ListCountries retorna os países distintos para o filtro do dashboard
	ListCountries(ctx context.Context) ([]string, error)

	// LatestSales retorna as vendas mais recentes, da mais nova para a mais antiga
	LatestSales(ctx context.Context, limit int) ([]*domain.Sale, error)

	// ListSales retorna uma página da tabela de vendas com o total de linhas
	ListSales(ctx context.Context, page, pageSize int) (*domain.SalesPage, error)

	// TopProductsByCountry retorna o produto mais vendido de cada país
	TopProductsByCountry(ctx context.Context) ([]*domain.CountryProduct, error)

	// ProductStats retorna uma página da listagem de desempenho de produtos
	ProductStats(ctx context.Context, query domain.ProductStatsQuery) (*domain.ProductStatsPage, error)
}

type Service struct {
	salesRepository repository.SalesRepository
}

func NewService(salesRepo repository.SalesRepository) Cataloger {
	return &Service{
		salesRepository: salesRepo,
	}
}

func (s *Service) ListCountries(ctx context.Context) ([]string, error) {
	countries, err := s.salesRepository.ListCountries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing countries")
	}

	out := make([]string, 0, len(countries))
	for _, c := range countries {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}

	return out, nil
}

func (s *Service) LatestSales(ctx context.Context, limit int) ([]*domain.Sale, error) {
	sales, err := s.salesRepository.LatestSales(ctx, ClampLatestSalesLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "fetching latest sales")
	}
	return sales, nil
}

func (s *Service) ListSales(ctx context.Context, page, pageSize int) (*domain.SalesPage, error) {
	page, pageSize = NormalizeSalesPage(page, pageSize)

	sales, total, err := s.salesRepository.ListSales(ctx, page, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "listing sales")
	}

	items := make([]domain.Sale, 0, len(sales))
	for _, sale := range sales {
		items = append(items, *sale)
	}

	return &domain.SalesPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	}, nil
}

func (s *Service) TopProductsByCountry(ctx context.Context) ([]*domain.CountryProduct, error) {
	products, err := s.salesRepository.TopProductsByCountry(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching top products by country")
	}
	return products, nil
}

func (s *Service) ProductStats(ctx context.Context, query domain.ProductStatsQuery) (*domain.ProductStatsPage, error) {
	query = NormalizeProductStatsQuery(query)

	stats, err := s.salesRepository.ProductStats(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "fetching product stats")
	}

	items := make([]domain.ProductStat, 0, len(stats))
	for _, st := range stats {
		items = append(items, *st)
	}

	// total_count vem repetido em todas as linhas da função
	var total int64
	if len(items) > 0 {
		total = items[0].TotalCount
	}

	return &domain.ProductStatsPage{
		Items:      items,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalCount: total,
	}, nil
}

// ClampLatestSalesLimit aplica o padrão de 5 e o máximo de 50
func ClampLatestSalesLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLatestSalesLimit
	case limit > MaxLatestSalesLimit:
		return MaxLatestSalesLimit
	default:
		return limit
	}
}

// NormalizeSalesPage garante página >= 1 e tamanho entre 1 e 200 (padrão 50)
func NormalizeSalesPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize <= 0:
		pageSize = DefaultSalesPageSize
	case pageSize > MaxSalesPageSize:
		pageSize = MaxSalesPageSize
	}
	return page, pageSize
}

// NormalizeProductStatsQuery garante página >= 1 e tamanho entre 1 e 100
func NormalizeProductStatsQuery(q domain.ProductStatsQuery) domain.ProductStatsQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	switch {
	case q.PageSize <= 0:
		q.PageSize = DefaultProductPageSize
	case q.PageSize > MaxProductPageSize:
		q.PageSize = MaxProductPageSize
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}
