package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/pkg/money"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Catálogo de produtos",
}

// sys360ctl product list
var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista os produtos por nome",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()
		list, err := c.ProductUC.List(cmd.Context())
		if err != nil {
			return err
		}
		printProducts(cmd.OutOrStdout(), list)
		return nil
	},
}

// sys360ctl product search <termo>
var productSearchCmd = &cobra.Command{
	Use:   "search <termo>",
	Short: "Busca produtos por parte do nome",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()
		list, err := c.ProductUC.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printProducts(cmd.OutOrStdout(), list)
		return nil
	},
}

var importCharset string

// sys360ctl product import <arquivo.csv> [--charset latin1]
var productImportCmd = &cobra.Command{
	Use:   "import <arquivo.csv>",
	Short: "Importa produtos de um CSV (nome;quantidade;venda;custo;categoria;fornecedor)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		c, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer c.Close()
		res, err := c.ImportUC.Import(cmd.Context(), f, importCharset)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d produto(s) importado(s)\n", res.Imported)
		for _, e := range res.Errors {
			fmt.Fprintf(out, "  linha %d: %s\n", e.Line, e.Message)
		}
		return nil
	},
}

func init() {
	productImportCmd.Flags().StringVar(&importCharset, "charset", "", "utf-8, latin1 ou windows-1252 (padrão: detectar)")

	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productSearchCmd)
	productCmd.AddCommand(productImportCmd)
}

func printProducts(w io.Writer, list *dto.ProductListResponse) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOME\tQTD\tVENDA\tCATEGORIA\tFORNECEDOR\t")
	for _, p := range list.Items {
		flag := ""
		if p.LowStock {
			flag = " !"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d%s\t%s\t%s\t%s\t\n", p.ID, p.Name, p.Quantity, flag, money.Format(p.SellPrice), p.Category, p.Supplier)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d produto(s)\n", list.Total)
}
