package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea de factura. ProductID vacío = línea libre.
// Invariante: Total == Quantity * UnitPrice.
type InvoiceItem struct {
	ID          string          `yaml:"id"`
	ProductID   string          `yaml:"product_id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Quantity    int             `yaml:"quantity"`
	UnitPrice   decimal.Decimal `yaml:"unit_price"`
	TaxRate     decimal.Decimal `yaml:"tax_rate"` // porcentaje, 0–100
	Total       decimal.Decimal `yaml:"-"`
}
