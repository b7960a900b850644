package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/sys360/internal/infrastructure/sqlite"
)

// sys360ctl migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica as migrações pendentes",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()
		v, err := sqlite.SchemaVersion(cmd.Context(), c.DB)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Esquema na versão %d\n", v)
		return nil
	},
}

// sys360ctl seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Cria o usuário admin padrão e as categorias financeiras",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()
		if err := c.Seed(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Seed aplicado.")
		return nil
	},
}
