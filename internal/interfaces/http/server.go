package http

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Bilal2025D/Fatora/internal/application/dto"
	"github.com/Bilal2025D/Fatora/internal/infrastructure/metrics"
	"github.com/Bilal2025D/Fatora/pkg/logger"
)

// ServerConfig opciones de la aplicación Fiber.
type ServerConfig struct {
	Name     string
	DocsPath string // swagger.json; si no existe no se monta /docs
	Metrics  *metrics.HTTPMetrics
	Gatherer prometheus.Gatherer // nil = sin /metrics
}

// NewApp construye la aplicación Fiber con middlewares, /health, /metrics, /docs y la API.
func NewApp(cfg ServerConfig, log *logger.Logger, deps RouterDeps) *fiber.App {
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	// recover va dentro de log y métricas: un pánico queda registrado como 500.
	app.Use(RequestLogger(log))
	app.Use(Metrics(cfg.Metrics))
	app.Use(recover.New())

	if cfg.DocsPath != "" {
		if _, err := os.Stat(cfg.DocsPath); err == nil {
			// Swagger UI en local: http://localhost:<port>/docs
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.DocsPath,
				Path:     "docs",
				Title:    cfg.Name + " API",
			}))
		} else {
			log.Warn().Str("path", cfg.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})
	if cfg.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	Router(app, deps)
	return app
}

// errorHandler responde errores no manejados (rutas inexistentes, pánicos) en el formato de la API.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "error interno del servidor"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	label := "INTERNAL"
	switch code {
	case fiber.StatusNotFound:
		label = "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		label = "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		label = "BAD_REQUEST"
	}
	return c.Status(code).JSON(dto.ErrorResponse{Code: label, Message: message})
}
