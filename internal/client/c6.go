// Package client provides the mutual-TLS HTTP client for the C6 Bank API.
package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"c6-bridge-go/internal/config"
	"c6-bridge-go/internal/credential"
	"c6-bridge-go/internal/metrics"
	"c6-bridge-go/internal/model"
)

// C6Client sends credentialed requests to the C6 Bank API over mutual TLS.
type C6Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewC6Client creates a C6Client presenting the loaded client certificate on
// every connection. Server certificate verification stays fully enabled; the
// overall request/response exchange is bounded by the configured relay
// timeout. The metrics parameter is optional; pass nil to disable upstream
// metrics recording.
func NewC6Client(cfg *config.Config, creds *credential.Material, logger *slog.Logger, m *metrics.Metrics) *C6Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			Certificates: []tls.Certificate{creds.Certificate()},
			MinVersion:   tls.VersionTLS12,
		},
		MaxIdleConns:        cfg.Upstream.IdleConnections,
		MaxIdleConnsPerHost: cfg.Upstream.IdleConnections,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}

	return &C6Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Upstream.Timeout(),
		},
		logger:  logger.With("component", "c6_client"),
		metrics: m,
	}
}

// Do sends one request to the origin and collects the entire response body
// before returning. There is no streaming and no retry: any transport
// failure (DNS, TLS handshake, reset, timeout) surfaces as an error.
func (c *C6Client) Do(ctx context.Context, method, rawURL string, header http.Header, body string) (*model.UpstreamResponse, error) {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, rd)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header = header

	c.logger.Debug("upstream request",
		"method", req.Method,
		"host", req.URL.Host,
		"path", req.URL.Path,
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start).Seconds()

	methodLabel := metrics.NormalizeMethod(method)

	if err != nil {
		if c.metrics != nil {
			c.metrics.UpstreamDuration.WithLabelValues(methodLabel).Observe(duration)
		}
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if c.metrics != nil {
		status := strconv.Itoa(resp.StatusCode)
		c.metrics.UpstreamDuration.WithLabelValues(methodLabel).Observe(duration)
		c.metrics.UpstreamResponses.WithLabelValues(methodLabel, status).Inc()
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	return &model.UpstreamResponse{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeader(resp.Header),
		Body:       string(respBody),
	}, nil
}

// flattenHeader folds a multi-valued header into the string→string mapping
// of the response envelope, joining repeated values with ", ".
func flattenHeader(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, vals := range h {
		out[name] = strings.Join(vals, ", ")
	}
	return out
}
