package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ServiceName identifies this service in the liveness payload.
const ServiceName = "c6-bridge"

// HealthHandler serves the liveness endpoint. It bypasses authentication so
// orchestrators can probe the process without the caller secret.
type HealthHandler struct{}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health returns the fixed liveness payload.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"ok":      true,
		"service": ServiceName,
	})
}
