package http

import (
	"time"

	"orderdesk/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger logs one line per handled request. Errors are passed to the
// echo error handler here so the logged status matches what went on the wire.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			logger.Info("http request",
				zap.String("method", ctx.Request().Method),
				zap.String("path", ctx.Path()),
				zap.Int("status", ctx.Response().Status),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		}
	}
}

// Observe feeds the per-route request counter and latency histogram.
// Must wrap RequestLogger so the response status is already final.
func Observe(serverMetrics *metrics.ServerMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)

			serverMetrics.Observe(ctx.Path(), ctx.Response().Status, time.Since(start))
			return err
		}
	}
}
