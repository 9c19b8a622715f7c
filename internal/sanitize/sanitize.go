// Package sanitize builds origin-safe outbound headers from caller-supplied ones.
package sanitize

import (
	"net/http"
	"strconv"
	"strings"
)

// strippedHeaders lists headers that must never cross from the caller-facing
// connection to the origin-facing one: connection-identifying headers, the
// caller's bearer token, and any stale framing length. Hop-by-hop entries
// match the set stripped by the inbound middleware.
var strippedHeaders = map[string]struct{}{
	"host":                {},
	"authorization":       {},
	"content-length":      {},
	"connection":          {},
	"keep-alive":          {},
	"proxy-authenticate":  {},
	"proxy-authorization": {},
	"te":                  {},
	"trailer":             {},
	"transfer-encoding":   {},
	"upgrade":             {},
}

// Outbound returns the headers to send upstream. Stripped names are matched
// case-insensitively. When a body is present, Content-Length is set to its
// exact byte length so the retransmitted body is framed correctly.
func Outbound(headers map[string]string, body string) http.Header {
	out := make(http.Header, len(headers)+1)
	for name, value := range headers {
		if _, drop := strippedHeaders[strings.ToLower(name)]; drop {
			continue
		}
		out.Set(name, value)
	}
	if body != "" {
		out.Set("Content-Length", strconv.Itoa(len(body)))
	}
	return out
}
