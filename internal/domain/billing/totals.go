// Package billing contiene el motor de totales de factura (servicio de dominio puro).
//
// Todo el cálculo se hace con decimal exacto: los impuestos por línea se suman sin
// redondear y el redondeo a 2 decimales queda para la presentación.
package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Bilal2025D/Fatora/internal/domain"
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
)

var maxTaxRate = decimal.NewFromInt(100)

// Totals agrega los montos derivados de las líneas de una factura.
type Totals struct {
	Subtotal decimal.Decimal
	TaxTotal decimal.Decimal
	Total    decimal.Decimal
}

// ComputeLineTotal devuelve quantity * unitPrice.
// Rechaza cantidades < 1 y precios negativos con domain.ErrInvalidInput (no se ajustan en silencio).
func ComputeLineTotal(quantity int, unitPrice decimal.Decimal) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, fmt.Errorf("%w: la cantidad debe ser >= 1 (recibido %d)", domain.ErrInvalidInput, quantity)
	}
	if unitPrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: el precio unitario no puede ser negativo (recibido %s)", domain.ErrInvalidInput, unitPrice)
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// LineTax devuelve el impuesto de una línea: Total * TaxRate / 100, sin redondear.
func LineTax(item entity.InvoiceItem) decimal.Decimal {
	return item.Total.Mul(item.TaxRate).Shift(-2)
}

// ComputeInvoiceTotals suma las líneas:
//
//	Subtotal = Σ item.Total
//	TaxTotal = Σ item.Total * item.TaxRate / 100
//	Total    = Subtotal + TaxTotal
//
// Sin líneas, los tres montos son cero. El resultado no depende del orden de items.
func ComputeInvoiceTotals(items []entity.InvoiceItem) Totals {
	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
		taxTotal = taxTotal.Add(LineTax(item))
	}
	return Totals{
		Subtotal: subtotal,
		TaxTotal: taxTotal,
		Total:    subtotal.Add(taxTotal),
	}
}

// PriceItems devuelve una copia de items con cada Total recalculado vía ComputeLineTotal.
// Valida además que la tasa de impuesto esté entre 0 y 100.
func PriceItems(items []entity.InvoiceItem) ([]entity.InvoiceItem, error) {
	out := make([]entity.InvoiceItem, len(items))
	for i, item := range items {
		if item.TaxRate.IsNegative() || item.TaxRate.GreaterThan(maxTaxRate) {
			return nil, fmt.Errorf("%w: línea %d: tasa de impuesto fuera de rango (0–100): %s",
				domain.ErrInvalidInput, i+1, item.TaxRate)
		}
		total, err := ComputeLineTotal(item.Quantity, item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", i+1, err)
		}
		item.Total = total
		out[i] = item
	}
	return out, nil
}

// ApplyTotals recalcula las líneas de inv y sus totales en sitio.
func ApplyTotals(inv *entity.Invoice) error {
	items, err := PriceItems(inv.Items)
	if err != nil {
		return err
	}
	t := ComputeInvoiceTotals(items)
	inv.Items = items
	inv.Subtotal = t.Subtotal
	inv.TaxTotal = t.TaxTotal
	inv.Total = t.Total
	return nil
}
