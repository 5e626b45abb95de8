// Package dataset calcula o payload do dashboard direto da planilha "Online Retail",
// sem depender do banco. Útil para rodar a API e o dashctl offline.
package dataset

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/pkg/log"
	"github.com/xuri/excelize/v2"
)

const performersLimit = 10

// rowCaps limita quantas linhas da planilha cada tamanho de dataset considera
var rowCaps = map[domain.DatasetSize]int{
	domain.DatasetSmall:  10_000,
	domain.DatasetMedium: 100_000,
	domain.DatasetLarge:  0, // sem limite
}

type retailRow struct {
	InvoiceNo   string
	Description string
	Quantity    float64
	InvoiceDate time.Time
	UnitPrice   float64
	CustomerID  string
	Country     string
}

// WorkbookSource implementa repository.DashboardStatsRepository sobre o xlsx
type WorkbookSource struct {
	path string

	mu     sync.Mutex
	loaded bool
	rows   []retailRow
}

func NewWorkbookSource(path string) *WorkbookSource {
	return &WorkbookSource{path: path}
}

// GetDashboardStats carrega a planilha no primeiro uso e agrega para o
// filtro. O formato é o mesmo de get_dashboard_stats, mas a divisão
// regional fica a cargo do resolvedor de fallback.
func (w *WorkbookSource) GetDashboardStats(ctx context.Context, filter domain.DashboardFilter) (*domain.DashboardStatsPayload, error) {
	rows, err := w.load()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return aggregate(rows, filter), nil
}

// load lê a planilha uma única vez; em caso de erro a próxima chamada tenta de novo
func (w *WorkbookSource) load() ([]retailRow, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.loaded {
		return w.rows, nil
	}

	rows, err := loadWorkbook(w.path)
	if err != nil {
		return nil, err
	}

	w.rows = rows
	w.loaded = true
	return w.rows, nil
}

func loadWorkbook(path string) ([]retailRow, error) {
	start := time.Now()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening workbook %s", path)
	}
	defer f.Close()

	rows, err := f.Rows(f.GetSheetName(0))
	if err != nil {
		return nil, errors.Wrap(err, "reading workbook rows")
	}
	defer rows.Close()

	var (
		out     []retailRow
		columns workbookColumns
		header  = true
		skipped int
	)

	for rows.Next() {
		cells, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, errors.Wrap(err, "reading workbook row")
		}

		if header {
			columns, err = detectColumns(cells)
			if err != nil {
				return nil, err
			}
			header = false
			continue
		}

		row, ok := columns.parse(cells)
		if !ok {
			skipped++
			continue
		}
		out = append(out, row)
	}

	if err := rows.Error(); err != nil {
		return nil, errors.Wrap(err, "iterating workbook rows")
	}
	if header {
		return nil, errors.Errorf("workbook %s has no header row", path)
	}

	log.L.WithFields(log.Fields{
		"path":     path,
		"rows":     len(out),
		"skipped":  skipped,
		"duration": time.Since(start).String(),
	}).Info("Planilha carregada")

	return out, nil
}

type workbookColumns struct {
	invoice, description, quantity, date, price, customer, country int
}

// detectColumns localiza as colunas pelo cabeçalho
func detectColumns(header []string) (workbookColumns, error) {
	cols := workbookColumns{
		invoice:     findIndex(header, "invoiceno", "invoice"),
		description: findIndex(header, "description", "product"),
		quantity:    findIndex(header, "quantity"),
		date:        findIndex(header, "invoicedate", "date"),
		price:       findIndex(header, "unitprice", "price"),
		customer:    findIndex(header, "customerid", "customer"),
		country:     findIndex(header, "country"),
	}

	if cols.quantity < 0 || cols.price < 0 || cols.date < 0 {
		return cols, errors.Errorf("workbook header must have Quantity, UnitPrice and InvoiceDate columns, got %v", header)
	}

	return cols, nil
}

func findIndex(header []string, names ...string) int {
	for i, h := range header {
		normalized := strings.ToLower(strings.TrimSpace(h))
		for _, name := range names {
			if normalized == name {
				return i
			}
		}
	}
	return -1
}

// parse retorna false para linhas sem quantidade, preço ou data válidos
func (c workbookColumns) parse(cells []string) (retailRow, bool) {
	quantity, err := strconv.ParseFloat(cell(cells, c.quantity), 64)
	if err != nil || quantity == 0 {
		return retailRow{}, false
	}

	price, err := strconv.ParseFloat(cell(cells, c.price), 64)
	if err != nil || price == 0 {
		return retailRow{}, false
	}

	date, ok := parseInvoiceDate(cell(cells, c.date))
	if !ok {
		return retailRow{}, false
	}

	return retailRow{
		InvoiceNo:   cell(cells, c.invoice),
		Description: cell(cells, c.description),
		Quantity:    quantity,
		InvoiceDate: date,
		UnitPrice:   price,
		CustomerID:  normalizeCustomerID(cell(cells, c.customer)),
		Country:     cell(cells, c.country),
	}, true
}

func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

var invoiceDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	time.DateOnly,
	"1/2/06 15:04",
	"1/2/2006 15:04",
}

// parseInvoiceDate aceita o serial do Excel ou datas em texto
func parseInvoiceDate(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		return t.UTC(), true
	}

	for _, layout := range invoiceDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// normalizeCustomerID remove o ".0" que o Excel deixa em IDs numéricos
func normalizeCustomerID(v string) string {
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return v
}

type productTotals struct {
	product  string
	sales    float64
	quantity float64
}

type countryTotals struct {
	sales    float64
	invoices map[string]struct{}
}

type monthTotals struct {
	revenue  float64
	invoices map[string]struct{}
}

// aggregate calcula o payload do dashboard para as linhas que passam no filtro.
// As datas são dias inclusivos; o dataset size limita quantas linhas da
// planilha entram antes do filtro.
func aggregate(rows []retailRow, filter domain.DashboardFilter) *domain.DashboardStatsPayload {
	filter = filter.Normalize()

	if limit := rowCaps[filter.DatasetSize]; limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	var (
		totalSales float64
		rowCount   int64
		invoices   = make(map[string]struct{})
		customers  = make(map[string]struct{})
		countries  = make(map[string]*countryTotals)
		products   = make(map[string]*productTotals)
		months     = make(map[string]*monthTotals)
	)

	for _, row := range rows {
		if !matches(row, filter) {
			continue
		}

		amount := row.Quantity * row.UnitPrice
		totalSales += amount
		rowCount++
		invoices[row.InvoiceNo] = struct{}{}
		if row.CustomerID != "" {
			customers[row.CustomerID] = struct{}{}
		}

		if row.Country != "" {
			c, ok := countries[row.Country]
			if !ok {
				c = &countryTotals{invoices: make(map[string]struct{})}
				countries[row.Country] = c
			}
			c.sales += amount
			c.invoices[row.InvoiceNo] = struct{}{}
		}

		if row.Description != "" {
			p, ok := products[row.Description]
			if !ok {
				p = &productTotals{product: row.Description}
				products[row.Description] = p
			}
			p.sales += amount
			p.quantity += row.Quantity
		}

		month := time.Date(row.InvoiceDate.Year(), row.InvoiceDate.Month(), 1, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
		m, ok := months[month]
		if !ok {
			m = &monthTotals{invoices: make(map[string]struct{})}
			months[month] = m
		}
		m.revenue += amount
		m.invoices[row.InvoiceNo] = struct{}{}
	}

	top, worst := rankProducts(products)

	return &domain.DashboardStatsPayload{
		KPI: domain.PayloadKPI{
			TotalSales:     totalSales,
			TotalOrders:    int64(len(invoices)),
			TotalCustomers: int64(len(customers)),
		},
		CountrySales: rankCountries(countries),
		Performance: domain.PayloadPerformance{
			TopPerformers:   top,
			Underperformers: worst,
		},
		ForecastData: monthlyBuckets(months),
		RowCount:     rowCount,
	}
}

func matches(row retailRow, filter domain.DashboardFilter) bool {
	if filter.StartDate != nil && row.InvoiceDate.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && !row.InvoiceDate.Before(filter.EndDate.AddDate(0, 0, 1)) {
		return false
	}
	if filter.Country != nil && !strings.EqualFold(row.Country, *filter.Country) {
		return false
	}
	return true
}

func rankCountries(countries map[string]*countryTotals) []domain.PayloadCountrySales {
	out := make([]domain.PayloadCountrySales, 0, len(countries))
	for name, c := range countries {
		orders := int64(len(c.invoices))
		var aov float64
		if orders > 0 {
			aov = c.sales / float64(orders)
		}
		out = append(out, domain.PayloadCountrySales{
			Country:    name,
			Sales:      c.sales,
			AOV:        aov,
			OrderCount: orders,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Sales != out[j].Sales {
			return out[i].Sales > out[j].Sales
		}
		return out[i].Country < out[j].Country
	})

	if len(out) > performersLimit {
		out = out[:performersLimit]
	}
	return out
}

// rankProducts devolve os 10 maiores (desc) e os 10 menores (asc) por vendas
func rankProducts(products map[string]*productTotals) (top, worst []domain.PayloadProduct) {
	all := make([]domain.PayloadProduct, 0, len(products))
	for _, p := range products {
		all = append(all, domain.PayloadProduct{Product: p.product, Sales: p.sales, Quantity: p.quantity})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Sales != all[j].Sales {
			return all[i].Sales > all[j].Sales
		}
		return all[i].Product < all[j].Product
	})

	n := min(performersLimit, len(all))
	top = append([]domain.PayloadProduct{}, all[:n]...)

	worst = make([]domain.PayloadProduct, 0, n)
	for i := len(all) - 1; i >= len(all)-n; i-- {
		worst = append(worst, all[i])
	}

	return top, worst
}

func monthlyBuckets(months map[string]*monthTotals) []domain.MonthlyBucket {
	out := make([]domain.MonthlyBucket, 0, len(months))
	for month, m := range months {
		out = append(out, domain.MonthlyBucket{
			Month:          month,
			MonthlyRevenue: m.revenue,
			OrderCount:     int64(len(m.invoices)),
		})
	}

	// YYYY-MM-DD ordena cronologicamente como texto
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
