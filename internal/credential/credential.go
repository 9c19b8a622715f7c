// Package credential loads the mTLS client certificate material at startup.
package credential

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"

	"c6-bridge-go/internal/config"
)

// Material holds the decoded client certificate and private key. It is
// constructed once at startup and never mutated; the relay client reads it
// for the lifetime of the process.
type Material struct {
	CertPEM []byte
	KeyPEM  []byte

	cert tls.Certificate
}

// Load decodes the two base64-encoded PEM blocks and parses them as an
// X.509 key pair. Missing, empty, or invalid material is a startup failure:
// the process must not serve traffic without a usable client identity.
func Load(certB64, keyB64 string) (*Material, error) {
	if certB64 == "" {
		return nil, fmt.Errorf("credential: client certificate is missing or empty (set C6_CERT_B64)")
	}
	if keyB64 == "" {
		return nil, fmt.Errorf("credential: client private key is missing or empty (set C6_KEY_B64)")
	}

	certPEM, err := base64.StdEncoding.DecodeString(certB64)
	if err != nil {
		return nil, fmt.Errorf("credential: decode certificate: %w", err)
	}
	keyPEM, err := base64.StdEncoding.DecodeString(keyB64)
	if err != nil {
		return nil, fmt.Errorf("credential: decode private key: %w", err)
	}

	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, fmt.Errorf("credential: parse key pair: %w", err)
	}

	return &Material{
		CertPEM: certPEM,
		KeyPEM:  keyPEM,
		cert:    cert,
	}, nil
}

// FromConfig loads the material from the resolved configuration.
func FromConfig(cfg *config.Config) (*Material, error) {
	return Load(cfg.Credentials.CertB64, cfg.Credentials.KeyB64)
}

// Certificate returns the parsed key pair for use in a tls.Config.
func (m *Material) Certificate() tls.Certificate {
	return m.cert
}
