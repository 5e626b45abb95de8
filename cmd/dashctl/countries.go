package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/cataloging"
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Lista os países disponíveis para filtro",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer d.Close()

		countries, err := cataloging.NewService(repository.NewSalesRepository(d.conn)).ListCountries(cmd.Context())
		if err != nil {
			return err
		}

		if globalFlags.JSON {
			return printJSON(cmd.OutOrStdout(), countries)
		}

		if len(countries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nenhum país encontrado.")
			return nil
		}

		printSimpleTable(cmd.OutOrStdout(), []string{"PAÍS"}, func(add func(...string)) {
			for _, c := range countries {
				add(c)
			}
		})
		return nil
	},
}
