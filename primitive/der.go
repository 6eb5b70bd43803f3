package primitive

import (
	"crypto/ed25519"
	"crypto/x509"
	"fmt"
)

// MarshalEd25519PKCS8 encodes an Ed25519 private key as a PKCS#8 DER
// document, the format the wire layer carries signing keys in.
func MarshalEd25519PKCS8(priv ed25519.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal pkcs8: %v", ErrKeyGeneration, err)
	}
	return der, nil
}

// ParseEd25519PKCS8 decodes a PKCS#8 DER document into an Ed25519 private key.
func ParseEd25519PKCS8(der []byte) (ed25519.PrivateKey, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse pkcs8: %v", ErrInvalidKeyLength, err)
	}
	priv, ok := key.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: pkcs8 payload is %T, not ed25519.PrivateKey", ErrInvalidKeyLength, key)
	}
	return priv, nil
}

// MarshalEd25519SPKI encodes an Ed25519 public key as an SPKI DER document,
// the format the wire layer carries verifying keys in.
func MarshalEd25519SPKI(pub ed25519.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal spki: %v", ErrKeyGeneration, err)
	}
	return der, nil
}

// ParseEd25519SPKI decodes an SPKI DER document into an Ed25519 public key.
func ParseEd25519SPKI(der []byte) (ed25519.PublicKey, error) {
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse spki: %v", ErrInvalidKeyLength, err)
	}
	pub, ok := key.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: spki payload is %T, not ed25519.PublicKey", ErrInvalidKeyLength, key)
	}
	return pub, nil
}
