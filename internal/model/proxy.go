// Package model defines shared types for the bridge.
package model

import "fmt"

// ProxyRequest is the inbound JSON payload describing the request to relay
// to the C6 Bank API.
type ProxyRequest struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers"`
	Body    string            `json:"body"`
}

// Validate checks the required fields. It returns a *ValidationError so
// callers can map malformed payloads to a 400 response.
func (r *ProxyRequest) Validate() error {
	if r.Method == "" {
		return &ValidationError{Field: "method", Reason: "is required"}
	}
	if r.URL == "" {
		return &ValidationError{Field: "url", Reason: "is required"}
	}
	return nil
}

// UpstreamResponse is the fully buffered origin response returned to the
// caller inside the 200 envelope.
type UpstreamResponse struct {
	StatusCode int               `json:"status"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// ValidationError reports a missing or malformed ProxyRequest field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q %s", e.Field, e.Reason)
}
