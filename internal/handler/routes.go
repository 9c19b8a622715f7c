package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"c6-bridge-go/internal/config"
	"c6-bridge-go/internal/metrics"
	"c6-bridge-go/internal/middleware"
)

// RegisterRoutes wires the three terminal routes onto the Echo instance:
// unauthenticated liveness, the bearer-guarded relay, and (optionally) the
// metrics exposition. Everything else falls through to the 404 envelope.
func RegisterRoutes(e *echo.Echo, cfg *config.Config, proxy *ProxyHandler, health *HealthHandler, m *metrics.Metrics) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/health", health.Health)
	e.POST("/proxy", proxy.Handle, middleware.BearerAuth(cfg.Auth.Secret))

	if cfg.Metrics.Enabled {
		e.GET(cfg.Metrics.Path, echo.WrapHandler(
			promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}),
		))
	}
}

// ErrorHandler converts unhandled errors to the JSON error envelope. Any
// unmatched method/path pair, including a wrong method on a known path,
// yields the fixed 404 response.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	switch code {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		_ = c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	default:
		_ = c.JSON(code, map[string]string{"error": http.StatusText(code)})
	}
}
