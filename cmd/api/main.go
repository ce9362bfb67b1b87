package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Bilal2025D/Fatora/internal/application/analytics"
	"github.com/Bilal2025D/Fatora/internal/application/billing"
	"github.com/Bilal2025D/Fatora/internal/application/usecase"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/export"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/memory"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/metrics"
	infrapdf "github.com/Bilal2025D/Fatora/internal/infrastructure/pdf"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/seed"
	httpRouter "github.com/Bilal2025D/Fatora/internal/interfaces/http"
	"github.com/Bilal2025D/Fatora/pkg/config"
	"github.com/Bilal2025D/Fatora/pkg/format"
	"github.com/Bilal2025D/Fatora/pkg/logger"
)

const metricsNamespace = "fatora"

//go:generate swag init -d ../../ -g cmd/api/main.go -o ../../docs --outputTypes json

// @title			Fatora API
// @version		1.0
// @description	Consola de facturación: clientes, productos, facturas, pagos y reportes.
// @BasePath		/
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("locale", cfg.App.Locale).
		Msg("iniciando aplicación")

	// Almacén en memoria: los datos viven mientras vive el proceso.
	store := memory.NewStore()
	if cfg.App.SeedDemo {
		if err := seed.LoadDemo(store); err != nil {
			log.Fatal().Err(err).Msg("cargar datos de demostración")
		}
		log.Info().Msg("datos de demostración cargados")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := metrics.NewHTTPMetrics(metricsNamespace, nil, reg)
	billingMetrics := metrics.NewBillingMetrics(metricsNamespace, reg)

	formatter := format.New(cfg.App.Locale, cfg.App.Currency)

	customerUC := billing.NewCustomerUseCase(store.Customers)
	productUC := usecase.NewProductUseCase(store.Products)
	invoiceUC, err := billing.NewInvoiceUseCase(store.Invoices, store.Customers, store.Products, billing.InvoiceConfig{
		Prefix:         cfg.Billing.InvoicePrefix,
		DueDays:        cfg.Billing.DueDays,
		DefaultTaxRate: cfg.Billing.DefaultTaxRate,
	}, billingMetrics)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar facturación")
	}
	paymentUC := billing.NewPaymentUseCase(store.Payments, store.PaymentMethods, store.Invoices, billingMetrics)

	// PDF de facturas y recibos + exportación xlsx/csv
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(infrapdf.Issuer{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
		Email:   cfg.Company.Email,
		TaxID:   cfg.Company.TaxID,
	}, formatter)
	documentUC := billing.NewDocumentUseCase(store.Invoices, store.Customers, paymentUC, pdfGenerator, export.NewExporter())

	dashboardUC := analytics.NewDashboardUseCase(store.Invoices, store.Customers, store.Products, formatter)
	reportsUC := analytics.NewReportsUseCase(store.Invoices, store.Customers, store.Products, formatter)

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		Name:     cfg.App.Name,
		DocsPath: cfg.Docs.Path,
		Metrics:  httpMetrics,
		Gatherer: reg,
	}, log, httpRouter.RouterDeps{
		CustomerUC:  customerUC,
		ProductUC:   productUC,
		InvoiceUC:   invoiceUC,
		PaymentUC:   paymentUC,
		DocumentUC:  documentUC,
		DashboardUC: dashboardUC,
		ReportsUC:   reportsUC,
		Validator:   httpRouter.NewValidator(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
