package model

import (
	"errors"
	"testing"
)

func TestProxyRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       ProxyRequest
		wantField string
	}{
		{"valid", ProxyRequest{Method: "GET", URL: "https://baas-api/v1"}, ""},
		{"valid with body", ProxyRequest{Method: "POST", URL: "https://baas-api/v1", Body: "{}"}, ""},
		{"missing method", ProxyRequest{URL: "https://baas-api/v1"}, "method"},
		{"missing url", ProxyRequest{Method: "GET"}, "url"},
		{"empty", ProxyRequest{}, "method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %T, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "url", Reason: "is required"}
	want := `field "url" is required`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
