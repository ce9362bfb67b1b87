package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bilal2025D/Fatora/internal/application/billing"
	"github.com/Bilal2025D/Fatora/internal/application/dto"
	"github.com/Bilal2025D/Fatora/internal/domain"
	"github.com/Bilal2025D/Fatora/internal/domain/entity"
)

func laptopAndKeyboard() []dto.InvoiceItemRequest {
	return []dto.InvoiceItemRequest{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p5", Quantity: 1},
	}
}

func TestInvoiceUseCase_Create_DesdeCatalogo(t *testing.T) {
	store := seededStore(t)
	spy := &spyRecorder{}
	uc := newInvoiceUseCase(store, spy)

	out, err := uc.Create(dto.CreateInvoiceRequest{CustomerID: "c1", Items: laptopAndKeyboard()})
	require.NoError(t, err)

	assert.Equal(t, "INV-2025-005", out.Number, "sigue al mayor consecutivo sembrado")
	assert.Equal(t, "Ahmed Benhadi", out.CustomerName)
	assert.Equal(t, entity.InvoiceStatusDraft, out.Status)
	assert.True(t, fixedNow.Equal(out.Date))
	assert.True(t, fixedNow.AddDate(0, 0, 15).Equal(out.DueDate))

	require.Len(t, out.Items, 2)
	assert.Equal(t, "Laptop Asus VivoBook", out.Items[0].Name)
	requireDecimal(t, "85000", out.Items[0].UnitPrice)
	requireDecimal(t, "19", out.Items[0].TaxRate)
	requireDecimal(t, "90400", out.Subtotal)
	requireDecimal(t, "17176", out.TaxTotal)
	requireDecimal(t, "107576", out.Total)

	assert.Equal(t, []string{entity.InvoiceStatusDraft}, spy.created)

	stored, err := store.Invoices.GetByNumber("INV-2025-005")
	require.NoError(t, err)
	require.NotNil(t, stored)
	requireDecimal(t, "107576", stored.Total)
}

func TestInvoiceUseCase_Create_LineaLibreYPrecioManual(t *testing.T) {
	uc := newInvoiceUseCase(seededStore(t), nil)

	out, err := uc.Create(dto.CreateInvoiceRequest{
		CustomerID: "c3",
		Number:     "INV-202506-001",
		Date:       "2025-06-01",
		DueDate:    "2025-06-01",
		Status:     entity.InvoiceStatusSent,
		Items: []dto.InvoiceItemRequest{
			{ProductID: "p4", Quantity: 2, UnitPrice: decPtr("12000")},
			{Name: "Installation", Quantity: 1, UnitPrice: decPtr("1500.50"), TaxRate: decPtr("9")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-202506-001", out.Number)
	assert.Equal(t, entity.InvoiceStatusSent, out.Status)
	requireDecimal(t, "24000", out.Items[0].Total)
	requireDecimal(t, "1500.50", out.Items[1].Total)
	requireDecimal(t, "25500.50", out.Subtotal)
	// 24000*19% + 1500.50*9% = 4560 + 135.045
	requireDecimal(t, "4695.045", out.TaxTotal)
	requireDecimal(t, "30195.545", out.Total)
}

func TestInvoiceUseCase_Create_Rechazos(t *testing.T) {
	uc := newInvoiceUseCase(seededStore(t), nil)

	cases := []struct {
		name string
		in   dto.CreateInvoiceRequest
		want error
	}{
		{"sin líneas", dto.CreateInvoiceRequest{CustomerID: "c1"}, domain.ErrValidation},
		{"cliente inexistente", dto.CreateInvoiceRequest{CustomerID: "zz", Items: laptopAndKeyboard()}, domain.ErrNotFound},
		{"producto inexistente", dto.CreateInvoiceRequest{CustomerID: "c1", Items: []dto.InvoiceItemRequest{{ProductID: "p9", Quantity: 1}}}, domain.ErrNotFound},
		{"cantidad cero", dto.CreateInvoiceRequest{CustomerID: "c1", Items: []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 0}}}, domain.ErrInvalidInput},
		{"precio negativo", dto.CreateInvoiceRequest{CustomerID: "c1", Items: []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 1, UnitPrice: decPtr("-1")}}}, domain.ErrInvalidInput},
		{"tasa fuera de rango", dto.CreateInvoiceRequest{CustomerID: "c1", Items: []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 1, TaxRate: decPtr("150")}}}, domain.ErrInvalidInput},
		{"línea libre sin precio", dto.CreateInvoiceRequest{CustomerID: "c1", Items: []dto.InvoiceItemRequest{{Name: "Servicio", Quantity: 1}}}, domain.ErrValidation},
		{"línea libre sin nombre", dto.CreateInvoiceRequest{CustomerID: "c1", Items: []dto.InvoiceItemRequest{{Quantity: 1, UnitPrice: decPtr("10")}}}, domain.ErrValidation},
		{"vencimiento anterior", dto.CreateInvoiceRequest{CustomerID: "c1", Date: "2025-06-10", DueDate: "2025-06-09", Items: laptopAndKeyboard()}, domain.ErrValidation},
		{"fecha ilegible", dto.CreateInvoiceRequest{CustomerID: "c1", Date: "ayer", Items: laptopAndKeyboard()}, domain.ErrValidation},
		{"estado desconocido", dto.CreateInvoiceRequest{CustomerID: "c1", Status: "archived", Items: laptopAndKeyboard()}, domain.ErrValidation},
		{"número mal formado", dto.CreateInvoiceRequest{CustomerID: "c1", Number: "factura 7", Items: laptopAndKeyboard()}, domain.ErrValidation},
		{"número duplicado", dto.CreateInvoiceRequest{CustomerID: "c1", Number: "INV-2025-001", Items: laptopAndKeyboard()}, domain.ErrDuplicate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestInvoiceUseCase_Update(t *testing.T) {
	store := seededStore(t)
	uc := newInvoiceUseCase(store, nil)
	before, err := uc.Get("inv3")
	require.NoError(t, err)

	out, err := uc.Update("inv3", dto.UpdateInvoiceRequest{
		CustomerID: "c2",
		Date:       "2025-04-18",
		DueDate:    "2025-05-03",
		Items:      []dto.InvoiceItemRequest{{ProductID: "p4", Quantity: 3}},
		Notes:      "  cambiado  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "inv3", out.ID)
	assert.Equal(t, "INV-2025-003", out.Number, "número vacío conserva el actual")
	assert.Equal(t, entity.InvoiceStatusDraft, out.Status)
	assert.Equal(t, "Meriem Belkacemi", out.CustomerName)
	assert.Equal(t, "cambiado", out.Notes)
	assert.Equal(t, before.CreatedAt, out.CreatedAt)
	assert.True(t, fixedNow.Equal(out.UpdatedAt))
	requireDecimal(t, "38400", out.Subtotal)
	requireDecimal(t, "7296", out.TaxTotal)
	requireDecimal(t, "45696", out.Total)

	_, err = uc.Update("inv3", dto.UpdateInvoiceRequest{CustomerID: "c2", Number: "INV-2025-001", Items: laptopAndKeyboard()})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Update("nope", dto.UpdateInvoiceRequest{CustomerID: "c2", Items: laptopAndKeyboard()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceUseCase_SetStatus_SinReglasDeTransicion(t *testing.T) {
	spy := &spyRecorder{}
	uc := newInvoiceUseCase(seededStore(t), spy)

	// pagada -> borrador -> anulada -> vencida: todo permitido
	for _, st := range []string{entity.InvoiceStatusDraft, entity.InvoiceStatusCancelled, entity.InvoiceStatusOverdue} {
		out, err := uc.SetStatus("inv1", st)
		require.NoError(t, err)
		assert.Equal(t, st, out.Status)
	}
	assert.Equal(t, [][2]string{{"paid", "draft"}, {"draft", "cancelled"}, {"cancelled", "overdue"}}, spy.changes)

	_, err := uc.SetStatus("inv1", "archived")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.SetStatus("nope", entity.InvoiceStatusPaid)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceUseCase_List(t *testing.T) {
	uc := newInvoiceUseCase(seededStore(t), nil)

	all, err := uc.List(dto.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 4, all.Meta.Total)
	assert.Equal(t, "INV-2025-001", all.Items[0].Number)

	same, err := uc.List(dto.ListQuery{Status: billing.StatusAll})
	require.NoError(t, err)
	assert.Equal(t, all.Items, same.Items)

	paid, err := uc.List(dto.ListQuery{Status: entity.InvoiceStatusPaid})
	require.NoError(t, err)
	require.Len(t, paid.Items, 1)
	assert.Equal(t, "inv1", paid.Items[0].ID)

	byCustomer, err := uc.List(dto.ListQuery{Query: "MERIEM"})
	require.NoError(t, err)
	require.Len(t, byCustomer.Items, 1)
	assert.Equal(t, "INV-2025-002", byCustomer.Items[0].Number)

	none, err := uc.List(dto.ListQuery{Query: "meriem", Status: entity.InvoiceStatusPaid})
	require.NoError(t, err)
	assert.Empty(t, none.Items)

	_, err = uc.List(dto.ListQuery{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvoiceUseCase_NextNumber(t *testing.T) {
	store := seededStore(t)
	uc := newInvoiceUseCase(store, nil)

	n, err := uc.NextNumber()
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-005", n)

	uc.SetClock(func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) })
	n, err = uc.NextNumber()
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-001", n)

	// borrar no reutiliza números intermedios
	uc.SetClock(clock)
	require.NoError(t, uc.Delete("inv2"))
	n, err = uc.NextNumber()
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-005", n)
}

func TestInvoiceUseCase_PreviewTotals(t *testing.T) {
	uc := newInvoiceUseCase(seededStore(t), nil)

	out, err := uc.PreviewTotals(dto.TotalsPreviewRequest{Items: []dto.InvoiceItemRequest{{ProductID: "p4", Quantity: 2}}})
	require.NoError(t, err)
	require.Len(t, out.Lines, 1)
	requireDecimal(t, "25600", out.Lines[0].Total)
	requireDecimal(t, "4864.0", out.Lines[0].Tax)
	requireDecimal(t, "30464", out.Total)

	empty, err := uc.PreviewTotals(dto.TotalsPreviewRequest{})
	require.NoError(t, err)
	assert.True(t, empty.Subtotal.IsZero())
	assert.True(t, empty.TaxTotal.IsZero())
	assert.True(t, empty.Total.IsZero())
}

func TestInvoiceUseCase_Delete(t *testing.T) {
	uc := newInvoiceUseCase(seededStore(t), nil)

	require.NoError(t, uc.Delete("inv4"))
	_, err := uc.Get("inv4")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete("inv4"), domain.ErrNotFound)
}

func TestNewInvoiceUseCase_PrefijoInvalido(t *testing.T) {
	store := seededStore(t)
	for _, prefix := range []string{"Fac", "FAC-DZ", "2025"} {
		cfg := defaultInvoiceConfig
		cfg.Prefix = prefix
		_, err := billing.NewInvoiceUseCase(store.Invoices, store.Customers, store.Products, cfg, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "prefijo %q", prefix)
	}
}

func TestInvoiceUseCase_PrefijoPropio_NumeroGeneradoEditable(t *testing.T) {
	store := seededStore(t)
	cfg := defaultInvoiceConfig
	cfg.Prefix = "FAC"
	uc, err := billing.NewInvoiceUseCase(store.Invoices, store.Customers, store.Products, cfg, nil)
	require.NoError(t, err)
	uc.SetClock(clock)

	created, err := uc.Create(dto.CreateInvoiceRequest{CustomerID: "c1", Items: laptopAndKeyboard()})
	require.NoError(t, err)
	assert.Equal(t, "FAC-2025-001", created.Number)

	updated, err := uc.Update(created.ID, dto.UpdateInvoiceRequest{
		CustomerID: "c1",
		Items:      []dto.InvoiceItemRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "FAC-2025-001", updated.Number)
	requireDecimal(t, "170000", updated.Subtotal)

	next, err := uc.NextNumber()
	require.NoError(t, err)
	assert.Equal(t, "FAC-2025-002", next)
}

func TestInvoiceUseCase_Update_ProductoEliminadoConservaLinea(t *testing.T) {
	store := seededStore(t)
	uc := newInvoiceUseCase(store, nil)
	require.NoError(t, store.Products.Delete("p3"))

	out, err := uc.Update("inv3", dto.UpdateInvoiceRequest{
		CustomerID: "c3",
		Items: []dto.InvoiceItemRequest{
			{ProductID: "p3", Quantity: 2},
			{ID: "item5", ProductID: "p4", Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	assert.Equal(t, "item4", out.Items[0].ID, "la línea del producto eliminado conserva su ID")
	assert.Equal(t, "p3", out.Items[0].ProductID)
	assert.Equal(t, "HP LaserJet Pro Printer", out.Items[0].Name)
	requireDecimal(t, "32500", out.Items[0].UnitPrice)
	assert.Equal(t, "item5", out.Items[1].ID)
	requireDecimal(t, "77800", out.Subtotal)

	// sin línea guardada que lo respalde, el producto eliminado sigue siendo un error
	_, err = uc.Create(dto.CreateInvoiceRequest{CustomerID: "c3", Items: []dto.InvoiceItemRequest{{ProductID: "p3", Quantity: 1}}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
