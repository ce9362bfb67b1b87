package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Bilal2025D/Fatora/internal/infrastructure/metrics"
	"github.com/Bilal2025D/Fatora/pkg/logger"
)

const (
	localsLogger    = "logger"
	headerRequestID = "X-Request-ID"
)

// RequestLogger asigna un X-Request-ID, deja un sublogger en Locals y registra
// cada petición al terminar.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(headerRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(headerRequestID, reqID)

		reqLog := log.With().Str("request_id", reqID).Logger()
		c.Locals(localsLogger, logger.FromZerolog(reqLog))

		start := time.Now()
		err := c.Next()
		if err != nil {
			// deja que el ErrorHandler escriba la respuesta antes de leer el estado
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return nil
	}
}

// requestLogger devuelve el logger de la petición o uno nulo.
func requestLogger(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(localsLogger).(*logger.Logger); ok {
		return l
	}
	return logger.Nop()
}

// Metrics registra conteo, latencia y peticiones en curso por ruta.
func Metrics(m *metrics.HTTPMetrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil {
			return c.Next()
		}
		m.InFlight.Inc()
		defer m.InFlight.Dec()

		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		if route == "" {
			route = "unknown"
		}
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.ReqTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.ReqDur.WithLabelValues(c.Method(), route).Observe(metrics.DurationMillis(time.Since(start)))
		return err
	}
}
