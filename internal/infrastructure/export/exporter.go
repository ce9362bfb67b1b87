// Package export serializa listados de facturas, pagos y clientes a CSV y XLSX.
// Las columnas salen de las etiquetas csv de las filas; el XLSX reutiliza el CSV
// ya generado para no duplicar la definición de columnas.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"

	"github.com/Bilal2025D/Fatora/internal/application/billing"
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
)

const dateLayout = "2006-01-02"

type invoiceRow struct {
	Number   string `csv:"numero"`
	Customer string `csv:"cliente"`
	Date     string `csv:"fecha"`
	DueDate  string `csv:"vencimiento"`
	Status   string `csv:"estado"`
	Subtotal string `csv:"subtotal"`
	TaxTotal string `csv:"iva"`
	Total    string `csv:"total"`
}

type paymentRow struct {
	ID        string `csv:"id"`
	Invoice   string `csv:"factura"`
	Customer  string `csv:"cliente"`
	Date      string `csv:"fecha"`
	Method    string `csv:"medio"`
	Reference string `csv:"referencia"`
	Amount    string `csv:"importe"`
}

type customerRow struct {
	Name    string `csv:"nombre"`
	Email   string `csv:"email"`
	Phone   string `csv:"telefono"`
	Address string `csv:"direccion"`
	TaxID   string `csv:"nif"`
}

// Exporter implementa billing.SpreadsheetExporter.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportInvoices una fila por factura; los importes van con 2 decimales.
func (e *Exporter) ExportInvoices(format billing.ExportFormat, invoices []*entity.Invoice) ([]byte, error) {
	rows := make([]invoiceRow, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, invoiceRow{
			Number:   inv.Number,
			Customer: inv.CustomerName,
			Date:     inv.Date.Format(dateLayout),
			DueDate:  inv.DueDate.Format(dateLayout),
			Status:   inv.Status,
			Subtotal: inv.Subtotal.StringFixed(2),
			TaxTotal: inv.TaxTotal.StringFixed(2),
			Total:    inv.Total.StringFixed(2),
		})
	}
	return encode(format, "Facturas", &rows, 5, 6, 7)
}

// ExportPayments una fila por pago con el número de factura y cliente resueltos.
func (e *Exporter) ExportPayments(format billing.ExportFormat, payments []entity.PaymentView) ([]byte, error) {
	rows := make([]paymentRow, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, paymentRow{
			ID:        p.ID,
			Invoice:   p.InvoiceNumber,
			Customer:  p.CustomerName,
			Date:      p.Date.Format(dateLayout),
			Method:    p.Method,
			Reference: p.Reference,
			Amount:    p.Amount.StringFixed(2),
		})
	}
	return encode(format, "Pagos", &rows, 6)
}

// ExportCustomers una fila por cliente.
func (e *Exporter) ExportCustomers(format billing.ExportFormat, customers []*entity.Customer) ([]byte, error) {
	rows := make([]customerRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, customerRow{
			Name:    c.Name,
			Email:   c.Email,
			Phone:   c.Phone,
			Address: c.Address,
			TaxID:   c.TaxID,
		})
	}
	return encode(format, "Clientes", &rows)
}

// encode genera el CSV con gocsv y, si se pide XLSX, lo vuelca en una hoja.
// numeric son los índices de columna que se escriben como número en XLSX.
func encode(format billing.ExportFormat, sheet string, rows any, numeric ...int) ([]byte, error) {
	data, err := gocsv.MarshalBytes(rows)
	if err != nil {
		return nil, fmt.Errorf("export: csv: %w", err)
	}
	switch format {
	case billing.ExportCSV:
		return data, nil
	case billing.ExportXLSX:
		return toXLSX(sheet, data, numeric)
	}
	return nil, fmt.Errorf("export: formato no soportado %q", format)
}

func toXLSX(sheet string, data []byte, numeric []int) ([]byte, error) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("export: leer csv: %w", err)
	}
	isNumeric := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		isNumeric[c] = true
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)
	for r, record := range records {
		for c, value := range record {
			axis := excelize.ToAlphaString(c) + strconv.Itoa(r+1)
			if r > 0 && isNumeric[c] {
				if n, err := strconv.ParseFloat(value, 64); err == nil {
					f.SetCellValue(sheet, axis, n)
					continue
				}
			}
			f.SetCellValue(sheet, axis, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
