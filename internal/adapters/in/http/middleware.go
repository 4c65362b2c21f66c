package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// metricsMiddleware records request counts and latencies per route. The
// route template is used as the path label so IDs do not explode the
// cardinality.
func (s *Server) metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()

		err := next(ctx)

		path := ctx.Path()
		if path == "" {
			path = ctx.Request().URL.Path
		}
		method := ctx.Request().Method

		status := ctx.Response().Status
		if err != nil {
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			}
		}

		s.metrics.HTTPRequestsTotal.
			WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		s.metrics.HTTPRequestDuration.
			WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return err
	}
}
