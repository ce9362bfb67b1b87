package seed_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bilal2025D/Fatora/internal/domain"
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/memory"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/seed"
	"github.com/Bilal2025D/Fatora/pkg/validation"
)

func TestDemo_Contenido(t *testing.T) {
	f, err := seed.Demo()
	require.NoError(t, err)

	assert.Len(t, f.Products, 5)
	assert.Len(t, f.Customers, 4)
	assert.Len(t, f.Invoices, 4)
	assert.Len(t, f.Payments, 2)
	assert.Len(t, f.PaymentMethods, 4)

	assert.True(t, decimal.NewFromInt(85000).Equal(f.Products[0].Price))
	assert.True(t, time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC).Equal(f.Products[0].CreatedAt))
	assert.Empty(t, f.Customers[2].TaxID)
}

func TestDemo_TotalesRecalculados(t *testing.T) {
	f, err := seed.Demo()
	require.NoError(t, err)

	want := map[string][3]int64{
		"INV-2025-001": {90400, 17176, 107576},
		"INV-2025-002": {92000, 17480, 109480},
		"INV-2025-003": {58100, 11039, 69139},
		"INV-2025-004": {85000, 16150, 101150},
	}
	for _, inv := range f.Invoices {
		w := want[inv.Number]
		assert.True(t, decimal.NewFromInt(w[0]).Equal(inv.Subtotal), "%s subtotal %s", inv.Number, inv.Subtotal)
		assert.True(t, decimal.NewFromInt(w[1]).Equal(inv.TaxTotal), "%s impuestos %s", inv.Number, inv.TaxTotal)
		assert.True(t, decimal.NewFromInt(w[2]).Equal(inv.Total), "%s total %s", inv.Number, inv.Total)
		assert.True(t, entity.IsValidInvoiceStatus(inv.Status))
		assert.True(t, validation.IsValidInvoiceNumber(inv.Number))
		assert.False(t, inv.DueDate.Before(inv.Date))
	}
	assert.True(t, decimal.NewFromInt(25600).Equal(f.Invoices[2].Items[1].Total))
}

func TestDemo_ClientesValidos(t *testing.T) {
	f, err := seed.Demo()
	require.NoError(t, err)
	for _, c := range f.Customers {
		assert.True(t, validation.IsValidEmail(c.Email), c.Email)
		assert.True(t, validation.IsValidLocalPhone(c.Phone), c.Phone)
	}
}

func TestLoadDemo(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, seed.LoadDemo(store))

	inv, err := store.Invoices.GetByNumber("INV-2025-001")
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, "inv1", inv.ID)

	pays, err := store.Payments.ListByInvoice("inv2")
	require.NoError(t, err)
	require.Len(t, pays, 1)
	assert.Equal(t, entity.PaymentMethodCCP, pays[0].Method)

	// una segunda carga choca con los ids existentes
	assert.ErrorIs(t, seed.LoadDemo(store), domain.ErrDuplicate)
}

func TestParse_LineaInvalida(t *testing.T) {
	_, err := seed.Parse([]byte(`
invoices:
  - id: x
    number: INV-2025-009
    items:
      - quantity: 0
        unit_price: 10
        tax_rate: 19
`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
