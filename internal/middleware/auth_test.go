package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func authEcho(secret string, invoked *bool) *echo.Echo {
	e := echo.New()
	e.POST("/proxy", func(c echo.Context) error {
		*invoked = true
		return c.String(http.StatusOK, "ok")
	}, BearerAuth(secret))
	return e
}

func TestBearerAuth_ValidToken(t *testing.T) {
	var invoked bool
	e := authEcho("s3cret", &invoked)

	req := httptest.NewRequest(http.MethodPost, "/proxy", http.NoBody)
	req.Header.Set("Authorization", "Bearer s3cret")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !invoked {
		t.Error("handler was not invoked for a valid token")
	}
}

func TestBearerAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong token", "Bearer wrong"},
		{"token without prefix", "s3cret"},
		{"wrong scheme", "Basic s3cret"},
		{"near miss longer", "Bearer s3cretX"},
		{"near miss shorter", "Bearer s3cre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var invoked bool
			e := authEcho("s3cret", &invoked)

			req := httptest.NewRequest(http.MethodPost, "/proxy", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if invoked {
				t.Error("handler must not run for an unauthorized request")
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body["error"] != "Unauthorized" {
				t.Errorf("error = %q, want %q", body["error"], "Unauthorized")
			}
		})
	}
}

func TestBearerAuth_EmptySecretFailsClosed(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"bare Bearer", "Bearer "},
		{"any token", "Bearer anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var invoked bool
			e := authEcho("", &invoked)

			req := httptest.NewRequest(http.MethodPost, "/proxy", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if invoked {
				t.Error("handler must never run when no secret is configured")
			}
		})
	}
}
