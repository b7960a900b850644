// Package pdf genera el comprobante de venta en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + CNPJ       │  Venda Nº + Data            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Cliente + documento          │  Vendedor                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Item | Qtd | Unit (R$) | Total (R$)                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Frete / TOTAL / Pagamento / Pago / Troco           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: QR de conferência + agradecimento                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/sys360/internal/application/sales"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/pkg/money"
)

var _ sales.ReceiptRenderer = (*ReceiptGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const maxItemName = 35

var paymentLabels = map[string]string{
	entity.PaymentCash:   "Dinheiro",
	entity.PaymentPix:    "PIX",
	entity.PaymentCredit: "Cartão de Crédito",
	entity.PaymentDebit:  "Cartão de Débito",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// ReceiptGenerator implementa sales.ReceiptRenderer usando Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// Render genera el PDF del comprobante y devuelve sus bytes.
func (g *ReceiptGenerator) Render(detail *entity.SaleDetail, company entity.CompanySettings) ([]byte, error) {
	if detail == nil {
		return nil, fmt.Errorf("pdf: venda vazia")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Comprovante de Venda %d", detail.ID), true).
		WithAuthor(company.DisplayName(), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(detail, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(detail))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(detail.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(detail)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(detail, company))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + CNPJ (izq) y número + fecha (der).
func headerRow(d *entity.SaleDetail, company entity.CompanySettings) core.Row {
	left := col.New(7).Add(
		text.New(company.DisplayName()+" - Comprovante de Venda", props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
	)
	if company.Document != "" {
		left.Add(text.New("CNPJ: "+company.Document, props.Text{Size: 8, Top: 9, Color: colorGray}))
	}
	if company.Address != "" || company.Phone != "" {
		left.Add(text.New(nonEmpty(company.Address, "-")+"   |   Tel: "+nonEmpty(company.Phone, "-"), props.Text{
			Size: 8, Top: 13, Color: colorGray,
		}))
	}
	return row.New(20).Add(
		left,
		col.New(5).Add(
			text.New("Venda Nº "+strconv.FormatInt(d.ID, 10), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Data: "+d.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// partiesRow: cliente (o Consumidor Final) y vendedor.
func partiesRow(d *entity.SaleDetail) core.Row {
	client := col.New(7).Add(
		text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(nonEmpty(d.ClientName, "Consumidor Final"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
	)
	if d.ClientDoc != "" || d.ClientAddress != "" {
		client.Add(text.New(fmt.Sprintf("CPF/CNPJ: %s   |   %s", nonEmpty(d.ClientDoc, "-"), nonEmpty(d.ClientAddress, "-")), props.Text{
			Size: 8, Top: 12, Color: colorGray,
		}))
	}
	return row.New(18).Add(
		client,
		col.New(5).Add(
			text.New("VENDEDOR", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(d.SellerName, "-"), props.Text{Size: 10, Align: align.Right, Top: 6}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Item", 6, align.Left),
		h("Qtd", 1, align.Center),
		h("Unit (R$)", 2, align.Right),
		h("Total (R$)", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// itemRows: una fila por item vendido; el nombre se corta en 35 caracteres.
func itemRows(lines []entity.SaleLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(truncate(l.ProductName, maxItemName), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(l.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(l.UnitPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(l.Subtotal.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRows: flete, total y datos del pago alineados a la derecha.
func totalsRows(d *entity.SaleDetail) []core.Row {
	pair := func(label, value string, grand bool) core.Row {
		size := 9.0
		var color *props.Color
		if grand {
			size = 11
			color = colorPrimary
		}
		return row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: size, Align: align.Right, Color: color, Right: 2})),
			col.New(3).Add(text.New(value, props.Text{Style: fontstyle.Bold, Size: size, Align: align.Right, Color: color, Right: 1})),
		)
	}
	rows := make([]core.Row, 0, 5)
	if d.Freight.IsPositive() {
		rows = append(rows, pair("Frete:", money.Format(d.Freight), false))
	}
	rows = append(rows, pair("TOTAL:", money.Format(d.Total), true))
	if label, ok := paymentLabels[d.PaymentMethod]; ok {
		rows = append(rows, pair("Pagamento:", label, false))
	}
	if d.AmountPaid.IsPositive() {
		rows = append(rows,
			pair("Valor pago:", money.Format(d.AmountPaid), false),
			pair("Troco:", money.Format(d.ChangeDue), false),
		)
	}
	return rows
}

// footerRow: QR con la referencia de la venta + agradecimiento.
func footerRow(d *entity.SaleDetail, company entity.CompanySettings) core.Row {
	ref := fmt.Sprintf("%s|VENDA|%d|%s|%s", company.DisplayName(), d.ID, d.CreatedAt.Format("2006-01-02T15:04"), d.Total.StringFixed(2))
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Obrigado pela preferência", props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Left: 3, Color: colorPrimary}),
			text.New("Gerado por Sys360 ERP", props.Text{Style: fontstyle.Italic, Size: 8, Top: 14, Left: 3, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
