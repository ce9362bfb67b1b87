package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Bilal2025D/Fatora/internal/application/analytics"
	"github.com/Bilal2025D/Fatora/internal/application/billing"
	"github.com/Bilal2025D/Fatora/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC  *billing.CustomerUseCase
	ProductUC   *usecase.ProductUseCase
	InvoiceUC   *billing.InvoiceUseCase
	PaymentUC   *billing.PaymentUseCase
	DocumentUC  *billing.DocumentUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportsUC   *analytics.ReportsUseCase
	Validator   *validator.Validate
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	v := deps.Validator
	if v == nil {
		v = NewValidator()
	}
	api := app.Group("/api")

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.DocumentUC, v)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/export", customerHandler.Export)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, v)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Invoices (rutas fijas antes de /:id)
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PaymentUC, deps.DocumentUC, v)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/next-number", invoiceHandler.NextNumber)
	invoices.Post("/totals", invoiceHandler.PreviewTotals)
	invoices.Get("/export", invoiceHandler.Export)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Patch("/:id/status", invoiceHandler.SetStatus)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/payments", invoiceHandler.Payments)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	// Payments
	payments := api.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.DocumentUC, v)
	payments.Get("/", paymentHandler.List)
	payments.Post("/", paymentHandler.Record)
	payments.Get("/export", paymentHandler.Export)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Delete("/:id", paymentHandler.Delete)
	payments.Get("/:id/receipt", paymentHandler.Receipt)
	api.Get("/payment-methods", paymentHandler.Methods)

	// Dashboard y reportes
	reportHandler := NewReportHandler(deps.DashboardUC, deps.ReportsUC)
	api.Get("/dashboard/summary", reportHandler.Dashboard)
	reports := api.Group("/reports")
	reports.Get("/", reportHandler.All)
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/customers", reportHandler.Customers)
	reports.Get("/products", reportHandler.Products)
	reports.Get("/categories", reportHandler.Categories)
}
