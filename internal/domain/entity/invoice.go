package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. Es una enumeración cerrada sin reglas de transición:
// el estado lo fija el usuario, no se deriva.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// InvoiceStatuses lista los estados válidos en orden de presentación.
var InvoiceStatuses = []string{
	InvoiceStatusDraft,
	InvoiceStatusSent,
	InvoiceStatusPaid,
	InvoiceStatusOverdue,
	InvoiceStatusCancelled,
}

// IsValidInvoiceStatus indica si s pertenece a la enumeración de estados.
func IsValidInvoiceStatus(s string) bool {
	for _, st := range InvoiceStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Invoice representa la cabecera de una factura con sus líneas.
// Subtotal, TaxTotal y Total se derivan siempre de Items (ver billing.ComputeInvoiceTotals).
type Invoice struct {
	ID           string          `yaml:"id"`
	Number       string          `yaml:"number"`
	CustomerID   string          `yaml:"customer_id"`
	CustomerName string          `yaml:"customer_name"` // desnormalizado al crear/editar
	Date         time.Time       `yaml:"date"`
	DueDate      time.Time       `yaml:"due_date"`
	Items        []InvoiceItem   `yaml:"items"`
	Subtotal     decimal.Decimal `yaml:"-"`
	TaxTotal     decimal.Decimal `yaml:"-"`
	Total        decimal.Decimal `yaml:"-"`
	Status       string          `yaml:"status"`
	Notes        string          `yaml:"notes"`
	CreatedAt    time.Time       `yaml:"created_at"`
	UpdatedAt    time.Time       `yaml:"updated_at"`
}

// Clone devuelve una copia con su propio slice de líneas.
func (inv *Invoice) Clone() *Invoice {
	if inv == nil {
		return nil
	}
	out := *inv
	out.Items = append([]InvoiceItem(nil), inv.Items...)
	return &out
}
