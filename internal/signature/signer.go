// Package signature produces the detached document signature carried
// in the X-Signature header: an RSA PKCS#1 v1.5 signature over the
// SHA-256 hash of the canonical document bytes, base64-encoded.
package signature

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"os"
)

// Signer signs canonical document bytes for transmission.
type Signer interface {
	// Sign returns the base64-encoded signature over data.
	Sign(data []byte) (string, error)
}

// RSASigner signs with an RSA private key, matching the registrar's
// expected scheme.
type RSASigner struct {
	key *rsa.PrivateKey
}

// NewRSASigner wraps an already loaded private key.
func NewRSASigner(key *rsa.PrivateKey) *RSASigner {
	return &RSASigner{key: key}
}

// LoadRSASigner reads a PEM-encoded private key from path. Both PKCS#1
// and PKCS#8 encodings are accepted.
func LoadRSASigner(path string) (*RSASigner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrKeyNotFound(path, err)
	}
	return ParseRSASigner(data)
}

// ParseRSASigner parses a PEM-encoded private key body.
func ParseRSASigner(pemData []byte) (*RSASigner, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, ErrKeyInvalid("no PEM block found", nil)
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return &RSASigner{key: key}, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, ErrKeyInvalid("not a PKCS#1 or PKCS#8 private key", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrKeyInvalid("private key is not RSA", nil)
	}
	return &RSASigner{key: key}, nil
}

// Sign hashes data with SHA-256, signs the digest with PKCS#1 v1.5 and
// returns the signature base64-encoded.
func (s *RSASigner) Sign(data []byte) (string, error) {
	digest := sha256.Sum256(data)
	sig, err := rsa.SignPKCS1v15(rand.Reader, s.key, crypto.SHA256, digest[:])
	if err != nil {
		return "", ErrSignFailed(err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// Public returns the verification key matching the signer.
func (s *RSASigner) Public() *rsa.PublicKey {
	return &s.key.PublicKey
}
