package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Vendas",
}

// sys360ctl sale receipt <id>
var saleReceiptCmd = &cobra.Command{
	Use:   "receipt <id>",
	Short: "Gera novamente o comprovante PDF de uma venda",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("id de venda inválido: %s", args[0])
		}
		c, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()
		path, err := c.ReceiptUC.Generate(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Comprovante salvo em %s\n", path)
		return nil
	},
}

func init() {
	saleCmd.AddCommand(saleReceiptCmd)
}
