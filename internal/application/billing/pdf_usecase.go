package billing

import (
	"context"
	"fmt"

	"github.com/Bilal2025D/Fatora/internal/application/dto"
	"github.com/Bilal2025D/Fatora/internal/domain"
	"github.com/Bilal2025D/Fatora/internal/domain/repository"
)

// DocumentUseCase produce los documentos descargables: PDF de factura, recibo de
// pago y exportaciones de listados. Solo consume datos ya calculados.
type DocumentUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	payments     *PaymentUseCase
	generator    InvoicePDFGenerator
	exporter     SpreadsheetExporter
}

// NewDocumentUseCase construye el caso de uso inyectando todas sus dependencias.
func NewDocumentUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	payments *PaymentUseCase,
	generator InvoicePDFGenerator,
	exporter SpreadsheetExporter,
) *DocumentUseCase {
	return &DocumentUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		payments:     payments,
		generator:    generator,
		exporter:     exporter,
	}
}

// InvoicePDF genera el PDF de una factura.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
//
// Si el cliente fue eliminado se imprime con el nombre desnormalizado de la factura.
func (uc *DocumentUseCase) InvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", fmt.Errorf("%w: factura %s", domain.ErrNotFound, invoiceID)
	}
	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}

	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, inv, customer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", inv.Number), nil
}

// ReceiptPDF genera el recibo de un pago.
func (uc *DocumentUseCase) ReceiptPDF(ctx context.Context, paymentID string) ([]byte, string, error) {
	view, err := uc.payments.View(paymentID)
	if err != nil {
		return nil, "", err
	}
	inv, err := uc.invoiceRepo.GetByID(view.InvoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	pdfBytes, err := uc.generator.GenerateReceiptPDF(ctx, view, inv)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("recibo_%s.pdf", view.ID), nil
}

// ExportInvoices exporta todas las facturas en el formato pedido.
func (uc *DocumentUseCase) ExportInvoices(format ExportFormat) ([]byte, string, error) {
	list, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.ExportInvoices(format, list)
	if err != nil {
		return nil, "", fmt.Errorf("exportar facturas: %w", err)
	}
	return data, "facturas." + string(format), nil
}

// ExportPayments exporta los pagos que cumplen el filtro.
func (uc *DocumentUseCase) ExportPayments(format ExportFormat, q dto.ListQuery) ([]byte, string, error) {
	views, err := uc.payments.Views(q)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.ExportPayments(format, views)
	if err != nil {
		return nil, "", fmt.Errorf("exportar pagos: %w", err)
	}
	return data, "pagos." + string(format), nil
}

// ExportCustomers exporta todos los clientes.
func (uc *DocumentUseCase) ExportCustomers(format ExportFormat) ([]byte, string, error) {
	list, err := uc.customerRepo.List()
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.ExportCustomers(format, list)
	if err != nil {
		return nil, "", fmt.Errorf("exportar clientes: %w", err)
	}
	return data, "clientes." + string(format), nil
}
