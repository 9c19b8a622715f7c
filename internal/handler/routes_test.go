package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRegisterRoutes_Wiring(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer upstream.Close()

	e := newBridge(t, upstream.URL, 10)

	tests := []struct {
		name       string
		method     string
		path       string
		auth       bool
		wantStatus int
	}{
		{"GET /health", http.MethodGet, "/health", false, http.StatusOK},
		{"GET /health with auth header", http.MethodGet, "/health", true, http.StatusOK},
		{"POST /health is a routing miss", http.MethodPost, "/health", true, http.StatusNotFound},
		{"GET /proxy is a routing miss", http.MethodGet, "/proxy", true, http.StatusNotFound},
		{"DELETE /proxy is a routing miss", http.MethodDelete, "/proxy", true, http.StatusNotFound},
		{"GET /unknown", http.MethodGet, "/unknown", false, http.StatusNotFound},
		{"GET /unknown with auth", http.MethodGet, "/unknown", true, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.auth {
				req.Header.Set("Authorization", "Bearer "+testSecret)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusNotFound {
				var body map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if body["error"] != "Not found" {
					t.Errorf("error = %q, want %q", body["error"], "Not found")
				}
			}
		})
	}
}

func TestRegisterRoutes_HealthPayloadStable(t *testing.T) {
	e := newBridge(t, "https://baas-api", 10)

	// Liveness must ignore auth entirely: no header, a wrong header, and a
	// valid one all return the same payload.
	for _, auth := range []string{"", "Bearer wrong", "Bearer " + testSecret} {
		req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("auth %q: status = %d, want %d", auth, rec.Code, http.StatusOK)
		}

		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["ok"] != true || body["service"] != ServiceName {
			t.Errorf("auth %q: payload = %v, want ok=true service=%q", auth, body, ServiceName)
		}
	}
}

func TestRegisterRoutes_MetricsEndpoint(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	e := newBridgeWithMetrics(t, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty metrics exposition")
	}
}
