package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/dashboarding"
)

var dashboardFlags struct {
	Start   string
	End     string
	Country string
	Size    string
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Calcula o dashboard para um período e país",
	Example: `  dashctl dashboard --start 2011-01-01 --end 2011-12-31
  dashctl dashboard --country "United Kingdom" --size large --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := domain.ParseDashboardFilter(
			dashboardFlags.Start,
			dashboardFlags.End,
			dashboardFlags.Country,
			dashboardFlags.Size,
		)
		if err != nil {
			// na linha de comando o erro de data é do próprio usuário, então falha
			return err
		}

		d, err := buildDeps(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer d.Close()

		service := dashboarding.NewService(d.cfg, d.source, d.cache, nil)

		result, err := service.GetDashboard(cmd.Context(), filter)
		if err != nil {
			return err
		}

		if globalFlags.JSON {
			return printJSON(cmd.OutOrStdout(), result)
		}

		renderDashboard(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	f := dashboardCmd.Flags()
	f.StringVar(&dashboardFlags.Start, "start", "", "data inicial (YYYY-MM-DD)")
	f.StringVar(&dashboardFlags.End, "end", "", "data final (YYYY-MM-DD), inclusiva")
	f.StringVar(&dashboardFlags.Country, "country", "", "país; vazio ou All para todos")
	f.StringVar(&dashboardFlags.Size, "size", string(domain.DefaultDatasetSize), "tamanho da amostra: small, medium ou large")
}
