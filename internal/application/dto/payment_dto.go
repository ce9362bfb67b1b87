package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest body para POST /api/payments.
type RecordPaymentRequest struct {
	InvoiceID string          `json:"invoice_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date,omitempty"`
	Method    string          `json:"method" validate:"required,oneof=ccp baridiMob cash other"`
	Reference string          `json:"reference,omitempty" validate:"max=100"`
	Notes     string          `json:"notes,omitempty" validate:"max=2000"`
}

// PaymentResponse pago con el número de factura y el cliente asociados.
type PaymentResponse struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoice_id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Method        string          `json:"method"`
	Reference     string          `json:"reference,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// PaymentListResponse listado filtrado de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}

// PaymentMethodResponse medio de pago del catálogo.
type PaymentMethodResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsDefault bool   `json:"is_default"`
}
