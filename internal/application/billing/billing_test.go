package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Bilal2025D/Fatora/internal/application/billing"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/memory"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/seed"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, seed.LoadDemo(store))
	return store
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, dec(want).Equal(got), "esperado %s, obtenido %s", want, got.String())
}

// spyRecorder cuenta los eventos de negocio emitidos.
type spyRecorder struct {
	created  []string
	changes  [][2]string
	payments []string
}

func (s *spyRecorder) InvoiceCreated(status string) { s.created = append(s.created, status) }
func (s *spyRecorder) InvoiceStatusChanged(from, to string) {
	s.changes = append(s.changes, [2]string{from, to})
}
func (s *spyRecorder) PaymentRecorded(method string, _ decimal.Decimal) {
	s.payments = append(s.payments, method)
}

var defaultInvoiceConfig = billing.InvoiceConfig{
	Prefix:         "INV",
	DueDays:        15,
	DefaultTaxRate: decimal.NewFromInt(19),
}

func newInvoiceUseCase(store *memory.Store, events billing.EventRecorder) *billing.InvoiceUseCase {
	uc, err := billing.NewInvoiceUseCase(store.Invoices, store.Customers, store.Products, defaultInvoiceConfig, events)
	if err != nil {
		panic(err)
	}
	uc.SetClock(clock)
	return uc
}

func newPaymentUseCase(store *memory.Store, events billing.EventRecorder) *billing.PaymentUseCase {
	uc := billing.NewPaymentUseCase(store.Payments, store.PaymentMethods, store.Invoices, events)
	uc.SetClock(clock)
	return uc
}
