package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

const (
	salesTable = "sales s"
)

type SalesRepository interface {
	ListCountries(ctx context.Context) ([]string, error)
	LatestSales(ctx context.Context, limit int) ([]*domain.Sale, error)
	ListSales(ctx context.Context, page, pageSize int) ([]*domain.Sale, int64, error)
	TopProductsByCountry(ctx context.Context) ([]*domain.CountryProduct, error)
	ProductStats(ctx context.Context, query domain.ProductStatsQuery) ([]*domain.ProductStat, error)
}

type salesRepository struct {
	conn postgres.Queryer
}

func NewSalesRepository(conn postgres.Queryer) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func (r *salesRepository) ListCountries(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select(`DISTINCT s."Country"`).
		From(salesTable).
		Where(squirrel.NotEq{`s."Country"`: nil}).
		OrderBy(`s."Country" ASC`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapPQError(err, "erro ao listar países")
	}
	defer rows.Close()

	countries := make([]string, 0)
	for rows.Next() {
		var country string
		if err := rows.Scan(&country); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear país")
		}
		countries = append(countries, country)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return countries, nil
}

func (r *salesRepository) LatestSales(ctx context.Context, limit int) ([]*domain.Sale, error) {
	query, args, err := latestSalesQuery(limit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapPQError(err, "erro ao buscar últimas vendas")
	}
	defer rows.Close()

	return scanSales(rows, limit)
}

// ListSales pagina a tabela sales por Id e devolve também o total de linhas
func (r *salesRepository) ListSales(ctx context.Context, page, pageSize int) ([]*domain.Sale, int64, error) {
	countQuery, countArgs, err := salesCountQuery()
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao construir a query de contagem")
	}

	var total int64
	if err := r.conn.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, wrapPQError(err, "erro ao contar vendas")
	}

	query, args, err := salesPageQuery(page, pageSize)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, wrapPQError(err, "erro ao listar vendas")
	}
	defer rows.Close()

	sales, err := scanSales(rows, pageSize)
	if err != nil {
		return nil, 0, err
	}

	return sales, total, nil
}

func scanSales(rows *sql.Rows, capacity int) ([]*domain.Sale, error) {
	sales := make([]*domain.Sale, 0, capacity)
	for rows.Next() {
		var (
			sale        domain.Sale
			description sql.NullString
			country     sql.NullString
		)
		if err := rows.Scan(&sale.ID, &description, &sale.Quantity, &sale.UnitPrice, &sale.InvoiceDate, &country); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}
		sale.Description = description.String
		sale.Country = country.String
		sale.Amount = sale.Quantity * sale.UnitPrice
		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sales, nil
}

func latestSalesQuery(limit int) (string, []interface{}, error) {
	return squirrel.
		Select(saleColumns...).
		From(salesTable).
		OrderBy(`s."InvoiceDate" DESC`).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

var saleColumns = []string{`s."Id"`, `s."Description"`, `s."Quantity"`, `s."UnitPrice"`, `s."InvoiceDate"`, `s."Country"`}

func salesCountQuery() (string, []interface{}, error) {
	return squirrel.
		Select("COUNT(*)").
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// salesPageQuery espera page >= 1 e pageSize > 0, já normalizados pelo caso de uso
func salesPageQuery(page, pageSize int) (string, []interface{}, error) {
	return squirrel.
		Select(saleColumns...).
		From(salesTable).
		OrderBy(`s."Id" ASC`).
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *salesRepository) TopProductsByCountry(ctx context.Context) ([]*domain.CountryProduct, error) {
	query, args, err := squirrel.
		Select("t.country", "t.product", "t.total_sales").
		From("get_top_products_by_country() t").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapPQError(err, "erro ao executar get_top_products_by_country")
	}
	defer rows.Close()

	products := make([]*domain.CountryProduct, 0)
	for rows.Next() {
		var p domain.CountryProduct
		if err := rows.Scan(&p.Country, &p.Product, &p.TotalSales); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear produto por país")
		}
		products = append(products, &p)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return products, nil
}

func (r *salesRepository) ProductStats(ctx context.Context, q domain.ProductStatsQuery) ([]*domain.ProductStat, error) {
	query, args, err := productStatsQuery(q)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapPQError(err, "erro ao executar get_product_stats")
	}
	defer rows.Close()

	stats := make([]*domain.ProductStat, 0, q.PageSize)
	for rows.Next() {
		var s domain.ProductStat
		if err := rows.Scan(&s.Product, &s.Sales, &s.Quantity, &s.Price, &s.TotalCount); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear estatística de produto")
		}
		stats = append(stats, &s)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return stats, nil
}

// productStatsQuery chama get_product_stats(p_page, p_page_size, p_search, p_sort_desc, p_exclude_negative)
func productStatsQuery(q domain.ProductStatsQuery) (string, []interface{}, error) {
	return squirrel.
		Select("p.product", "p.sales", "p.quantity", "p.price", "p.total_count").
		Suffix("FROM get_product_stats(?, ?, ?, ?, ?) p", q.Page, q.PageSize, q.Search, q.SortDesc, q.ExcludeNegative).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
