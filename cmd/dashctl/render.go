package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

func printJSON(w io.Writer, v any) error {
	out, err := utils.PrettyJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func printSimpleTable(w io.Writer, headers []string, fill func(add func(...string))) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(headers)
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)

	fill(func(cols ...string) {
		tw.Append(cols)
	})
	tw.Render()
}

func renderDashboard(w io.Writer, result *domain.DashboardResult) {
	country := result.Filters.CountryName()
	if country == "" {
		country = domain.AllCountries
	}
	fmt.Fprintf(w, "Período: %s a %s | País: %s | Amostra: %s\n\n",
		orDash(domain.FormatDate(result.Filters.StartDate)),
		orDash(domain.FormatDate(result.Filters.EndDate)),
		country,
		result.Filters.DatasetSize,
	)

	kpi := result.KPI
	printSimpleTable(w, []string{"VENDAS", "TENDÊNCIA", "PEDIDOS", "TENDÊNCIA", "CLIENTES"}, func(add func(...string)) {
		add(
			utils.FormatMoney(kpi.TotalSales),
			utils.FormatPercent(kpi.SalesTrend),
			strconv.FormatInt(kpi.TotalOrders, 10),
			utils.FormatPercent(kpi.OrdersTrend),
			strconv.FormatInt(kpi.TotalCustomers, 10),
		)
	})

	if len(result.CountrySales) > 0 {
		fmt.Fprintln(w)
		printSimpleTable(w, []string{"PAÍS", "VENDAS", "TICKET MÉDIO", "PEDIDOS"}, func(add func(...string)) {
			for _, c := range result.CountrySales {
				add(c.Country, utils.FormatMoney(c.Sales), utils.FormatMoney(c.AOV), strconv.FormatInt(c.OrderCount, 10))
			}
		})
	}

	if len(result.Performance.TopPerformers) > 0 {
		fmt.Fprintln(w)
		printSimpleTable(w, []string{"PRODUTO", "VENDAS", "QTD", "PREÇO MÉDIO"}, func(add func(...string)) {
			for _, p := range result.Performance.TopPerformers {
				add(p.Product, utils.FormatMoney(p.Sales), strconv.FormatFloat(p.Quantity, 'f', 0, 64), utils.FormatMoney(p.Price))
			}
		})
	}

	if len(result.ForecastData) > 0 {
		fmt.Fprintln(w)
		printSimpleTable(w, []string{"MÊS", "REAL", "PREVISTO"}, func(add func(...string)) {
			for _, f := range result.ForecastData {
				add(f.Date, optionalMoney(f.ActualSales), optionalMoney(f.ForecastSales))
			}
		})
	}

	if r := result.RegionalData; r != nil {
		fmt.Fprintln(w)
		printSimpleTable(w, []string{"DOMÉSTICO", "INTERNACIONAL"}, func(add func(...string)) {
			add(utils.FormatMoney(r.Domestic), utils.FormatMoney(r.International))
		})
	}
}

func optionalMoney(v *float64) string {
	if v == nil {
		return "-"
	}
	return utils.FormatMoney(*v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
