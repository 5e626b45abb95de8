package domain

import "time"

// Sale é uma linha da tabela sales, como exibida no widget de últimas vendas
type Sale struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Amount      float64   `json:"amount"`
	InvoiceDate time.Time `json:"timestamp"`
	Country     string    `json:"country"`
}

// CountryProduct é o produto mais vendido de um país
type CountryProduct struct {
	Country    string  `json:"country"`
	Product    string  `json:"product"`
	TotalSales float64 `json:"total_sales"`
}

// ProductStat é uma linha da listagem paginada de desempenho de produtos
type ProductStat struct {
	Product    string  `json:"product"`
	Sales      float64 `json:"sales"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
	TotalCount int64   `json:"total_count"`
}

type ProductStatsQuery struct {
	Page            int
	PageSize        int
	Search          string
	SortDesc        bool
	ExcludeNegative bool
}

type ProductStatsPage struct {
	Items      []ProductStat `json:"items"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalCount int64         `json:"total_count"`
}

// SalesPage é uma página da tabela de vendas, ordenada por Id
type SalesPage struct {
	Items      []Sale `json:"items"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalCount int64  `json:"total_count"`
}
