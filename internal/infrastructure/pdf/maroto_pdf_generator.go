// Package pdf genera la factura imprimible y el recibo de pago.
//
// Layout de la factura (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor + NIF        │  N° Factura + Fechas + Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección / Tel / Email                             │
//	│  CLIENTE: Nombre + NIF + contacto                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | IVA | Importe          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA / TOTAL                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de verificación + notas                          │
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
	"github.com/shopspring/decimal"

	"github.com/Bilal2025D/Fatora/internal/domain/entity"
	"github.com/Bilal2025D/Fatora/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 98, Blue: 65}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "02/01/2006"

// Issuer datos de la empresa emisora.
type Issuer struct {
	Name    string
	Address string
	Phone   string
	Email   string
	TaxID   string
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	issuer Issuer
	fmt    *format.Formatter
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(issuer Issuer, formatter *format.Formatter) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{issuer: issuer, fmt: formatter}
}

// GenerateInvoicePDF genera el PDF de la factura. customer puede ser nil si el
// cliente fue eliminado; entonces se usa el nombre guardado en la factura.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	customer *entity.Customer,
) ([]byte, error) {
	m := g.newDocument("Factura " + invoice.Number)

	m.AddRows(g.invoiceHeaderRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.issuerRow())
	m.AddRows(customerRow(invoice, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableDetailRows(invoice.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(invoice))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.footerRows(invoice)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar factura: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateReceiptPDF genera el recibo de un pago. invoice puede ser nil si la
// factura fue eliminada.
func (g *MarotoPDFGenerator) GenerateReceiptPDF(
	_ context.Context,
	payment entity.PaymentView,
	invoice *entity.Invoice,
) ([]byte, error) {
	m := g.newDocument("Recibo " + payment.ID)

	m.AddRows(row.New(18).Add(
		col.New(7).Add(
			text.New(g.issuer.Name, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("NIF: "+nonEmpty(g.issuer.TaxID, "—"), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("RECIBO DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+payment.ID, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
			text.New("Fecha: "+payment.Date.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	detail := []struct{ label, value string }{
		{"Factura", payment.InvoiceNumber},
		{"Cliente", payment.CustomerName},
		{"Medio de pago", methodLabel(payment.Method)},
		{"Referencia", nonEmpty(payment.Reference, "—")},
	}
	if invoice != nil {
		detail = append(detail, struct{ label, value string }{"Total de la factura", g.fmt.Money(invoice.Total)})
	}
	for _, d := range detail {
		m.AddRows(row.New(7).Add(
			col.New(4).Add(text.New(d.label+":", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(8).Add(text.New(d.value, props.Text{Size: 9, Top: 1})),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("IMPORTE RECIBIDO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 3, Right: 2,
		})),
		col.New(3).Add(text.New(g.fmt.Money(payment.Amount), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 3, Right: 1,
		})),
	))
	if payment.Notes != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Notas: "+payment.Notes, props.Text{Size: 8, Top: 2, Color: colorGray}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoPDFGenerator) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.issuer.Name, true).
		Build()
	return maroto.New(cfg)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// invoiceHeaderRow: emisor + NIF (izq) y número, fechas y estado (der).
func (g *MarotoPDFGenerator) invoiceHeaderRow(invoice *entity.Invoice) core.Row {
	return row.New(22).Add(
		col.New(7).Add(
			text.New(g.issuer.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIF: "+nonEmpty(g.issuer.TaxID, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Fecha: "+invoice.Date.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Vencimiento: "+invoice.DueDate.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoPDFGenerator) issuerRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("EMISOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(g.issuer.Address, "—"),
				nonEmpty(g.issuer.Phone, "—"),
				nonEmpty(g.issuer.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// customerRow: datos del cliente; sin ficha se imprime solo el nombre guardado.
func customerRow(invoice *entity.Invoice, customer *entity.Customer) core.Row {
	name := invoice.CustomerName
	contact := "—"
	if customer != nil {
		name = customer.Name
		contact = fmt.Sprintf("NIF: %s   |   Email: %s   |   Tel: %s",
			nonEmpty(customer.TaxID, "—"),
			nonEmpty(customer.Email, "—"),
			nonEmpty(customer.Phone, "—"),
		)
		if customer.Address != "" {
			contact += "   |   " + customer.Address
		}
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("Precio unit.", 2, align.Right),
		h("IVA %", 1, align.Center),
		h("Importe", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea; la descripción va debajo del nombre.
func (g *MarotoPDFGenerator) tableDetailRows(items []entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		label := it.Name
		if it.Description != "" {
			label += " - " + it.Description
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprint(it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				label,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				g.fmt.Number(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.TaxRate.String()+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				g.fmt.Number(it.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func (g *MarotoPDFGenerator) totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(d decimal.Decimal, top float64) core.Component {
		return text.New(g.fmt.Money(d), props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 1, Top: 12,
	}

	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1),
			label("IVA:", 6),
			text.New("TOTAL:", grand),
		),
		col.New(3).Add(
			value(invoice.Subtotal, 1),
			value(invoice.TaxTotal, 6),
			text.New(g.fmt.Money(invoice.Total), grand),
		),
	)
}

// footerRows: QR de verificación + notas.
func (g *MarotoPDFGenerator) footerRows(invoice *entity.Invoice) []core.Row {
	rows := []core.Row{
		row.New(40).Add(
			col.New(3).Add(code.NewQr(VerificationPayload(invoice, g.fmt.Currency()), props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(9).Add(
				text.New("Escanee el código para verificar número, fecha e importe.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New(statusLabel(invoice.Status), props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 14, Left: 3, Color: colorPrimary,
				}),
			),
		),
	}
	if invoice.Notes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Notas: "+invoice.Notes, props.Text{Size: 8, Top: 2, Color: colorGray}),
		)))
	}
	return rows
}

// VerificationPayload texto codificado en el QR: número|fecha|subtotal|iva|total|moneda.
func VerificationPayload(invoice *entity.Invoice, currency string) string {
	return strings.Join([]string{
		invoice.Number,
		invoice.Date.Format("2006-01-02"),
		invoice.Subtotal.StringFixed(2),
		invoice.TaxTotal.StringFixed(2),
		invoice.Total.StringFixed(2),
		currency,
	}, "|")
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func statusLabel(status string) string {
	switch status {
	case entity.InvoiceStatusDraft:
		return "BORRADOR"
	case entity.InvoiceStatusSent:
		return "ENVIADA"
	case entity.InvoiceStatusPaid:
		return "PAGADA"
	case entity.InvoiceStatusOverdue:
		return "VENCIDA"
	case entity.InvoiceStatusCancelled:
		return "ANULADA"
	}
	return strings.ToUpper(status)
}

func methodLabel(method string) string {
	switch method {
	case entity.PaymentMethodCCP:
		return "CCP"
	case entity.PaymentMethodBaridiMob:
		return "BaridiMob"
	case entity.PaymentMethodCash:
		return "Efectivo"
	case entity.PaymentMethodOther:
		return "Otro"
	}
	return method
}
