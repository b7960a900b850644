// sys360ctl opera el archivo SQLite sin levantar el servidor HTTP:
// migraciones, seed, usuarios, catálogo y comprobantes.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/sys360/internal/bootstrap"
	"github.com/jhoicas/sys360/pkg/config"
	"github.com/jhoicas/sys360/pkg/logger"
	"github.com/jhoicas/sys360/pkg/metrics"
)

var dbPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "sys360ctl",
	Short:         "Sys360 ERP: ferramentas de linha de comando",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "caminho do arquivo SQLite (padrão: DB_PATH)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(saleCmd)
}

// boot carga la configuración y arma el contenedor. El logger sólo escribe warnings.
func boot(ctx context.Context) (*bootstrap.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DB.Path = dbPath
	}
	log := logger.New(logger.Config{Env: "development", Level: "warn"})
	return bootstrap.New(ctx, cfg, metrics.New("sys360ctl"), log)
}
