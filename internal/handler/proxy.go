package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"c6-bridge-go/internal/model"
	"c6-bridge-go/internal/service"
)

// ProxyHandler relays caller requests to the C6 Bank API.
type ProxyHandler struct {
	service *service.RelayService
	logger  *slog.Logger
}

// NewProxyHandler creates a ProxyHandler.
func NewProxyHandler(svc *service.RelayService, logger *slog.Logger) *ProxyHandler {
	return &ProxyHandler{
		service: svc,
		logger:  logger.With("component", "proxy_handler"),
	}
}

// Handle parses the JSON payload, relays it, and wraps the origin response
// in a 200 envelope. Parse failures are treated as upstream-facing errors
// (502); validation and allow-list failures map to 400.
func (h *ProxyHandler) Handle(c echo.Context) error {
	var pr model.ProxyRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&pr); err != nil {
		h.logger.Error("payload parse error", "err", err)
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "invalid JSON payload: " + err.Error(),
		})
	}

	resp, err := h.service.Relay(c.Request().Context(), &pr)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ProxyHandler) mapError(c echo.Context, err error) error {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": verr.Error(),
		})
	}

	if errors.Is(err, service.ErrDisallowedURL) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Only C6 Bank URLs allowed",
		})
	}

	h.logger.Error("relay error",
		"err", err,
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
	)

	if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "upstream request timed out",
		})
	}

	if errors.Is(err, context.Canceled) {
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "client disconnected",
		})
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "upstream host unreachable",
		})
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "upstream connection failed",
		})
	}

	return c.JSON(http.StatusBadGateway, map[string]string{
		"error": "upstream request failed",
	})
}

// isTimeout reports whether err carries a transport-level timeout. The HTTP
// client's overall timeout surfaces as a *url.Error whose Timeout() is true.
func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
