package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemRequest línea de factura.
// Con ProductID, Name/Description/UnitPrice vacíos se toman del producto.
// TaxRate nil usa la tasa por defecto configurada. ID identifica una línea ya guardada al editar.
type InvoiceItemRequest struct {
	ID          string           `json:"id,omitempty"`
	ProductID   string           `json:"product_id,omitempty"`
	Name        string           `json:"name,omitempty" validate:"max=200"`
	Description string           `json:"description,omitempty"`
	Quantity    int              `json:"quantity" validate:"min=1"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	TaxRate     *decimal.Decimal `json:"tax_rate,omitempty"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// Number vacío = se genera (PREFIJO-AAAA-NNN). Date vacía = hoy; DueDate vacía = Date + días de plazo.
type CreateInvoiceRequest struct {
	Number     string               `json:"number,omitempty" validate:"omitempty,invoice_number"`
	CustomerID string               `json:"customer_id" validate:"required"`
	Date       string               `json:"date,omitempty"`
	DueDate    string               `json:"due_date,omitempty"`
	Status     string               `json:"status,omitempty" validate:"omitempty,oneof=draft sent paid overdue cancelled"`
	Notes      string               `json:"notes,omitempty" validate:"max=2000"`
	Items      []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id (reemplaza la factura completa).
type UpdateInvoiceRequest CreateInvoiceRequest

// UpdateInvoiceStatusRequest body para PATCH /api/invoices/:id/status.
// Cualquier estado de la enumeración es aceptado desde cualquier otro.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent paid overdue cancelled"`
}

// TotalsPreviewRequest body para POST /api/invoices/totals (cálculo sin guardar).
type TotalsPreviewRequest struct {
	Items []InvoiceItemRequest `json:"items" validate:"dive"`
}

// InvoiceItemResponse línea de factura en respuestas.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Total       decimal.Decimal `json:"total"`
	Tax         decimal.Decimal `json:"tax"`
}

// InvoiceResponse factura con líneas para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID           string                `json:"id"`
	Number       string                `json:"number"`
	CustomerID   string                `json:"customer_id"`
	CustomerName string                `json:"customer_name"`
	Date         time.Time             `json:"date"`
	DueDate      time.Time             `json:"due_date"`
	Items        []InvoiceItemResponse `json:"items"`
	Subtotal     decimal.Decimal       `json:"subtotal"`
	TaxTotal     decimal.Decimal       `json:"tax_total"`
	Total        decimal.Decimal       `json:"total"`
	Status       string                `json:"status"`
	Notes        string                `json:"notes,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// InvoiceListResponse listado filtrado de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}

// TotalsResponse resultado del motor de totales.
type TotalsResponse struct {
	Lines    []InvoiceItemResponse `json:"lines"`
	Subtotal decimal.Decimal       `json:"subtotal"`
	TaxTotal decimal.Decimal       `json:"tax_total"`
	Total    decimal.Decimal       `json:"total"`
}

// NextNumberResponse siguiente número de factura disponible.
type NextNumberResponse struct {
	Number string `json:"number"`
}
