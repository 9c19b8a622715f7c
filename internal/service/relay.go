// Package service implements the core relay logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"c6-bridge-go/internal/client"
	"c6-bridge-go/internal/config"
	"c6-bridge-go/internal/model"
	"c6-bridge-go/internal/sanitize"
)

// ErrDisallowedURL is returned when the destination URL falls outside the
// allowed C6 Bank prefix. It is the sole authorization boundary for egress
// and is checked before any network I/O.
var ErrDisallowedURL = errors.New("Only C6 Bank URLs allowed")

// RelayService validates, sanitizes, and forwards proxy requests.
type RelayService struct {
	client *client.C6Client
	cfg    *config.Config
	logger *slog.Logger
}

// NewRelayService creates a RelayService.
func NewRelayService(c *client.C6Client, cfg *config.Config, logger *slog.Logger) *RelayService {
	return &RelayService{
		client: c,
		cfg:    cfg,
		logger: logger.With("component", "relay_service"),
	}
}

// Relay forwards one ProxyRequest to the origin and returns the buffered
// response envelope. The destination prefix check runs before any outbound
// connection is attempted; validation failures return a *ValidationError.
func (s *RelayService) Relay(ctx context.Context, pr *model.ProxyRequest) (*model.UpstreamResponse, error) {
	if err := pr.Validate(); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(pr.URL, s.cfg.Upstream.AllowedPrefix) {
		return nil, ErrDisallowedURL
	}

	header := sanitize.Outbound(pr.Headers, pr.Body)

	s.logger.Debug("relaying request",
		"method", pr.Method,
		"url", pr.URL,
	)

	resp, err := s.client.Do(ctx, pr.Method, pr.URL, header, pr.Body)
	if err != nil {
		return nil, fmt.Errorf("relay to origin: %w", err)
	}

	return resp, nil
}
