package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medios de pago aceptados.
const (
	PaymentMethodCCP       = "ccp"
	PaymentMethodBaridiMob = "baridiMob"
	PaymentMethodCash      = "cash"
	PaymentMethodOther     = "other"
)

// IsValidPaymentMethod indica si m es uno de los medios de pago aceptados.
func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCCP, PaymentMethodBaridiMob, PaymentMethodCash, PaymentMethodOther:
		return true
	}
	return false
}

// Payment registra un pago contra una factura. Se permiten pagos parciales;
// no se lleva saldo pendiente.
type Payment struct {
	ID        string          `yaml:"id"`
	InvoiceID string          `yaml:"invoice_id"`
	Amount    decimal.Decimal `yaml:"amount"`
	Date      time.Time       `yaml:"date"`
	Method    string          `yaml:"method"`
	Reference string          `yaml:"reference"`
	Notes     string          `yaml:"notes"`
}

// PaymentMethod describe un medio de pago configurable (catálogo).
type PaymentMethod struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	IsDefault bool   `yaml:"is_default"`
}

// PaymentView es un pago junto con los datos de su factura para listados.
// InvoiceNumber y CustomerName valen "desconocido" si la factura ya no existe.
type PaymentView struct {
	Payment
	InvoiceNumber string
	CustomerName  string
}
