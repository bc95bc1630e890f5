// Package pdf genera el comprobante en PDF de una factura del dashboard.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor              │  INVOICE + N° + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: Nombre + Email del cliente                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Estado | Monto                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	│  FOOTER: QR con el id + leyenda                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoice-dashboard/internal/domain/invoice"
	"github.com/jhoicas/invoice-dashboard/pkg/currency"
)

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorPaid    = &props.Color{Red: 22, Green: 163, Blue: 74}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	issuer string
}

// NewMarotoPDFGenerator construye el generador. issuer es el nombre que aparece como emisor.
func NewMarotoPDFGenerator(issuer string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{issuer: nonEmpty(issuer, "Acme")}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	inv *entity.Invoice,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Invoice "+invoiceNumber(inv.ID), true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.issuer, inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow(), detailRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(inv))
	m.AddRows(line.NewRow(6))
	m.AddRows(footerRow(inv))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(issuer string, inv *entity.Invoice) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(issuer, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("#"+invoiceNumber(inv.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+inv.Date.Format(invoice.DateLayout), props.Text{
				Size: 9, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func billToRow(customer *entity.Customer) core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
			text.New(customer.Name, props.Text{Style: fontstyle.Bold, Size: 11, Top: 7}),
			text.New(nonEmpty(customer.Email, "—"), props.Text{Size: 9, Top: 13, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: colorGray, Top: 2,
		}))
	}
	return row.New(9).Add(
		h("Description", 6, align.Left),
		h("Status", 3, align.Center),
		h("Amount", 3, align.Right),
	)
}

func detailRow(inv *entity.Invoice) core.Row {
	return row.New(9).Add(
		col.New(6).Add(text.New("Invoice "+inv.ID, props.Text{Size: 8, Top: 2})),
		col.New(3).Add(text.New(statusLabel(inv.Status), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2, Color: statusColor(inv.Status),
		})),
		col.New(3).Add(text.New(currency.FormatCents(inv.Amount), props.Text{
			Size: 9, Align: align.Right, Top: 2,
		})),
	)
}

func totalRow(inv *entity.Invoice) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 3,
		})),
		col.New(3).Add(text.New(currency.FormatCents(inv.Amount), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 3,
		})),
	)
}

func footerRow(inv *entity.Invoice) core.Row {
	return row.New(35).Add(
		col.New(3).Add(code.NewQr(inv.ID, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Thank you for your business.", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6, Left: 3,
			}),
			text.New("Scan the code to look up this invoice in the dashboard.", props.Text{
				Size: 8, Top: 14, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// invoiceNumber número corto legible: primer bloque del UUID en mayúsculas.
func invoiceNumber(id string) string {
	short, _, _ := strings.Cut(id, "-")
	return strings.ToUpper(short)
}

func statusLabel(status string) string {
	switch status {
	case entity.InvoiceStatusPaid:
		return "Paid"
	case entity.InvoiceStatusPending:
		return "Pending"
	default:
		return status
	}
}

func statusColor(status string) *props.Color {
	if status == entity.InvoiceStatusPaid {
		return colorPaid
	}
	return colorGray
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
