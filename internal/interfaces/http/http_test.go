package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bilal2025D/Fatora/internal/application/analytics"
	"github.com/Bilal2025D/Fatora/internal/application/billing"
	"github.com/Bilal2025D/Fatora/internal/application/dto"
	"github.com/Bilal2025D/Fatora/internal/application/usecase"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/export"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/memory"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/metrics"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/pdf"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/seed"
	apphttp "github.com/Bilal2025D/Fatora/internal/interfaces/http"
	"github.com/Bilal2025D/Fatora/pkg/format"
	"github.com/Bilal2025D/Fatora/pkg/logger"
	"github.com/Bilal2025D/Fatora/pkg/validation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre un almacén en memoria con los datos de demostración.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return buildTestAppWithLogger(t, logger.Nop())
}

func buildTestAppWithLogger(t *testing.T, log *logger.Logger) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, seed.LoadDemo(store))

	reg := prometheus.NewRegistry()
	events := metrics.NewBillingMetrics("fatora", reg)
	formatter := format.New("fr-DZ", "DZD")

	paymentUC := billing.NewPaymentUseCase(store.Payments, store.PaymentMethods, store.Invoices, events)
	invoiceUC, err := billing.NewInvoiceUseCase(store.Invoices, store.Customers, store.Products, billing.InvoiceConfig{
		Prefix:         "INV",
		DueDays:        15,
		DefaultTaxRate: decimal.NewFromInt(19),
	}, events)
	require.NoError(t, err)
	deps := apphttp.RouterDeps{
		CustomerUC: billing.NewCustomerUseCase(store.Customers),
		ProductUC:  usecase.NewProductUseCase(store.Products),
		InvoiceUC:  invoiceUC,
		PaymentUC:  paymentUC,
		DocumentUC: billing.NewDocumentUseCase(store.Invoices, store.Customers, paymentUC,
			pdf.NewMarotoPDFGenerator(pdf.Issuer{Name: "Fatora"}, formatter), export.NewExporter()),
		DashboardUC: analytics.NewDashboardUseCase(store.Invoices, store.Customers, store.Products, formatter),
		ReportsUC:   analytics.NewReportsUseCase(store.Invoices, store.Customers, store.Products, formatter),
	}
	return apphttp.NewApp(apphttp.ServerConfig{
		Name:     "fatora",
		Metrics:  metrics.NewHTTPMetrics("fatora", nil, reg),
		Gatherer: reg,
	}, log, deps)
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got), "esperado %s, obtenido %s", want, got.String())
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	return body.Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Infraestructura
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRutaInexistente(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/nada", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

func TestMetrics_ExponeContadores(t *testing.T) {
	app := buildTestApp(t)
	doRequest(t, app, http.MethodGet, "/api/customers", nil)

	resp := doRequest(t, app, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "fatora_http_requests_total")
	assert.Contains(t, string(raw), `route="/api/customers`)
}

func TestNewValidator_RegistraReglasPropias(t *testing.T) {
	var v interface{ Var(field any, tag string) error }
	require.NotPanics(t, func() { v = apphttp.NewValidator() })

	assert.NoError(t, v.Var("0555123456", "local_phone"))
	assert.Error(t, v.Var("12345", "local_phone"))
	assert.NoError(t, v.Var("INV-2025-001", "invoice_number"))
	assert.Error(t, v.Var("a\u00a0b@c.de", "email_basic"))
}

func TestPanicoRegistradoEnLogYMetricas(t *testing.T) {
	var logs bytes.Buffer
	app := buildTestAppWithLogger(t, logger.NewWithWriter(&logs, "info"))
	app.Get("/api/fallo", func(c *fiber.Ctx) error {
		panic("fallo inesperado")
	})

	resp := doRequest(t, app, http.MethodGet, "/api/fallo", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", errorCode(t, resp))
	assert.Contains(t, logs.String(), `"path":"/api/fallo"`)
	assert.Contains(t, logs.String(), `"status":500`)

	resp = doRequest(t, app, http.MethodGet, "/metrics", nil)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `route="/api/fallo",status="500"`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomers_ListaFiltrada(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/customers?q=AHMED", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list dto.CustomerListResponse
	decodeBody(t, resp, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "c1", list.Items[0].ID)
	assert.Equal(t, 1, list.Meta.Total)
}

func TestCustomers_CrearValidaTelefono(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodPost, "/api/customers", dto.CreateCustomerRequest{
		Name:  "Nadia Cherif",
		Email: "nadia@example.com",
		Phone: "0455123456",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

func TestCustomers_CrearValidaEmail(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodPost, "/api/customers", dto.CreateCustomerRequest{
		Name:  "Nadia Cherif",
		Email: "nadia@example",
		Phone: "0555123456",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCustomers_CrearYNIFDuplicado(t *testing.T) {
	app := buildTestApp(t)
	in := dto.CreateCustomerRequest{
		Name:  "Nadia Cherif",
		Email: "nadia@example.com",
		Phone: "0661234567",
		TaxID: "99999999900001",
	}
	resp := doRequest(t, app, http.MethodPost, "/api/customers", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.CustomerResponse
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)

	resp = doRequest(t, app, http.MethodPost, "/api/customers", in)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", errorCode(t, resp))
}

func TestCustomers_CuerpoInvalido(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := buildTestApp(t).Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errorCode(t, resp))
}

func TestCustomers_ExportCSV(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/customers/export?format=csv", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "clientes.csv")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "nombre,email"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoices_CrearCalculaTotales(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/invoices", dto.CreateInvoiceRequest{
		CustomerID: "c1",
		Items:      []dto.InvoiceItemRequest{{ProductID: "p2", Quantity: 2}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var inv dto.InvoiceResponse
	decodeBody(t, resp, &inv)
	requireDecimal(t, "184000", inv.Subtotal)
	requireDecimal(t, "34960", inv.TaxTotal)
	requireDecimal(t, "218960", inv.Total)
	assert.Equal(t, "draft", inv.Status)
	assert.True(t, validation.IsValidInvoiceNumber(inv.Number), inv.Number)

	resp = doRequest(t, app, http.MethodGet, "/api/invoices/"+inv.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInvoices_CrearSinLineas(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodPost, "/api/invoices", dto.CreateInvoiceRequest{CustomerID: "c1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInvoices_NumeroMalFormado(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodPost, "/api/invoices", dto.CreateInvoiceRequest{
		Number:     "factura-1",
		CustomerID: "c1",
		Items:      []dto.InvoiceItemRequest{{ProductID: "p2", Quantity: 1}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInvoices_ClienteInexistente(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodPost, "/api/invoices", dto.CreateInvoiceRequest{
		CustomerID: "c99",
		Items:      []dto.InvoiceItemRequest{{ProductID: "p2", Quantity: 1}},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvoices_NoEncontrada(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/invoices/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

func TestInvoices_ListaPorEstado(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/invoices?status=paid", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.InvoiceListResponse
	decodeBody(t, resp, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "INV-2025-001", list.Items[0].Number)

	resp = doRequest(t, app, http.MethodGet, "/api/invoices?status=archivada", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInvoices_CambiarEstado(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPatch, "/api/invoices/inv3/status", dto.UpdateInvoiceStatusRequest{Status: "sent"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var inv dto.InvoiceResponse
	decodeBody(t, resp, &inv)
	assert.Equal(t, "sent", inv.Status)

	resp = doRequest(t, app, http.MethodPatch, "/api/invoices/inv3/status", dto.UpdateInvoiceStatusRequest{Status: "archivada"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInvoices_PreviewTotales(t *testing.T) {
	price := decimal.RequireFromString("0.10")
	resp := doRequest(t, buildTestApp(t), http.MethodPost, "/api/invoices/totals", dto.TotalsPreviewRequest{
		Items: []dto.InvoiceItemRequest{{Name: "Tornillo", Quantity: 3, UnitPrice: &price}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var totals dto.TotalsResponse
	decodeBody(t, resp, &totals)
	requireDecimal(t, "0.30", totals.Subtotal)
	requireDecimal(t, "0.057", totals.TaxTotal)
	requireDecimal(t, "0.357", totals.Total)
}

func TestInvoices_SiguienteNumero(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/invoices/next-number", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.NextNumberResponse
	decodeBody(t, resp, &out)
	assert.True(t, validation.IsValidInvoiceNumber(out.Number), out.Number)
	assert.True(t, strings.HasPrefix(out.Number, "INV-"))
}

func TestInvoices_PDF(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/invoices/inv1/pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "factura_INV-2025-001.pdf")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestInvoices_ExportFormatoInvalido(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/invoices/export?format=ods", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagos
// ──────────────────────────────────────────────────────────────────────────────

func TestPayments_Registrar(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/payments", dto.RecordPaymentRequest{
		InvoiceID: "inv2",
		Amount:    decimal.NewFromInt(59480),
		Method:    "cash",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var p dto.PaymentResponse
	decodeBody(t, resp, &p)
	assert.Equal(t, "INV-2025-002", p.InvoiceNumber)

	resp = doRequest(t, app, http.MethodGet, "/api/invoices/inv2/payments", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.PaymentListResponse
	decodeBody(t, resp, &list)
	assert.Len(t, list.Items, 2)
}

func TestInvoices_PagosDeFacturaInexistente(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/invoices/nope/payments", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

func TestPayments_Rechazos(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/payments", dto.RecordPaymentRequest{
		InvoiceID: "inv2", Amount: decimal.Zero, Method: "cash",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/payments", dto.RecordPaymentRequest{
		InvoiceID: "inv2", Amount: decimal.NewFromInt(10), Method: "cheque",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/payments", dto.RecordPaymentRequest{
		InvoiceID: "inv99", Amount: decimal.NewFromInt(10), Method: "cash",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPayments_Recibo(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/payments/pay1/receipt", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestPaymentMethods(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/payment-methods", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.PaymentMethodResponse
	decodeBody(t, resp, &list)
	assert.Len(t, list, 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.DashboardSummaryDTO
	decodeBody(t, resp, &out)
	requireDecimal(t, "107576", out.TotalRevenue)
	requireDecimal(t, "210630", out.PendingAmount)
	assert.Len(t, out.RecentInvoices, 4)
}

func TestReports(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), http.MethodGet, "/api/reports", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.ReportsDTO
	decodeBody(t, resp, &out)
	requireDecimal(t, "387345", out.Sales.TotalSales)
	require.NotEmpty(t, out.Categories)
	assert.Equal(t, "Electronics", out.Categories[0].Category)
}
