package api

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ougirez/elections/internal/metrics"
	"github.com/ougirez/elections/internal/pkg/logger"
)

// requestIDHandler makes the request id visible to every log line of the request.
func requestIDHandler(c echo.Context, id string) {
	ctx := logger.WithRequestID(c.Request().Context(), id)
	c.SetRequest(c.Request().WithContext(ctx))
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
			)
			return nil
		},
	})
}

// MetricsMiddleware records request count and latency by route template.
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status, _ = errorCode(err)
		}
		metrics.RecordAPIRequest(c.Request().Method, c.Path(), status, time.Since(start))

		return err
	}
}
