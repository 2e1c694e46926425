package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockboard/internal/infrastructure/metrics"
	"github.com/jhoicas/stockboard/pkg/logger"
)

// RequestLogger registra cada petición con su estado y latencia. Errores 5xx en nivel error.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := statusOf(c, err)

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}

// Metrics mide las peticiones por ruta registrada (evita una serie por cada id).
func Metrics(rec *metrics.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		rec.ObserveRequest(c.Method(), c.Route().Path, statusOf(c, err), time.Since(start))
		return err
	}
}

// statusOf estado final de la respuesta; un error devuelto por el handler aún no fue escrito.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
