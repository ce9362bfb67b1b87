package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Bilal2025D/Fatora/internal/domain"
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
)

// InvoicePDFGenerator genera los documentos imprimibles (implementación en infrastructure/pdf).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
	GenerateReceiptPDF(ctx context.Context, payment entity.PaymentView, invoice *entity.Invoice) ([]byte, error)
}

// ExportFormat formato de hoja de cálculo.
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportCSV  ExportFormat = "csv"
)

// ParseExportFormat valida el formato pedido (sin distinguir mayúsculas).
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case ExportXLSX, ExportCSV:
		return f, nil
	}
	return "", fmt.Errorf("%w: formato de exportación no soportado %q (xlsx, csv)", domain.ErrValidation, s)
}

// ContentType tipo MIME del formato.
func (f ExportFormat) ContentType() string {
	if f == ExportXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// SpreadsheetExporter serializa listados a xlsx/csv (implementación en infrastructure/export).
type SpreadsheetExporter interface {
	ExportInvoices(format ExportFormat, invoices []*entity.Invoice) ([]byte, error)
	ExportPayments(format ExportFormat, payments []entity.PaymentView) ([]byte, error)
	ExportCustomers(format ExportFormat, customers []*entity.Customer) ([]byte, error)
}

// EventRecorder registra eventos de negocio (métricas). Implementación en infrastructure/metrics.
type EventRecorder interface {
	InvoiceCreated(status string)
	InvoiceStatusChanged(from, to string)
	PaymentRecorded(method string, amount decimal.Decimal)
}

// NopRecorder descarta los eventos.
type NopRecorder struct{}

func (NopRecorder) InvoiceCreated(string)                   {}
func (NopRecorder) InvoiceStatusChanged(string, string)     {}
func (NopRecorder) PaymentRecorded(string, decimal.Decimal) {}
