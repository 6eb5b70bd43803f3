package primitive

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

// Ed25519KeyPair holds an Ed25519 signing key pair, used both for CA
// signatures over verifying keys and for per-packet ephemeral signatures.
type Ed25519KeyPair struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// GenerateEd25519KeyPair generates a fresh Ed25519 key pair.
func GenerateEd25519KeyPair() (*Ed25519KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}
	return &Ed25519KeyPair{priv: priv, pub: pub}, nil
}

// Ed25519KeyPairFromSeed rebuilds a key pair from a 32-byte seed, as recovered
// from an imported blob.
func Ed25519KeyPairFromSeed(seed []byte) (*Ed25519KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: ed25519 seed must be %d bytes, got %d", ErrInvalidKeyLength, ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &Ed25519KeyPair{priv: priv, pub: priv.Public().(ed25519.PublicKey)}, nil
}

// Seed returns the 32-byte seed this key pair was derived from.
func (kp *Ed25519KeyPair) Seed() []byte {
	return append([]byte(nil), kp.priv.Seed()...)
}

// PublicBytes returns the 32-byte public key.
func (kp *Ed25519KeyPair) PublicBytes() []byte {
	return append([]byte(nil), kp.pub...)
}

// Sign signs message with the private key.
func (kp *Ed25519KeyPair) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(kp.priv, message), nil
}

// Ed25519Verify verifies a signature produced over message by the holder of
// pubKey. It is a free function (not a method) so callers can verify
// signatures from peers without reconstructing a full key pair.
func Ed25519Verify(pubKey, message, sig []byte) error {
	if len(pubKey) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: ed25519 public key must be %d bytes, got %d", ErrInvalidKeyLength, ed25519.PublicKeySize, len(pubKey))
	}
	if !ed25519.Verify(pubKey, message, sig) {
		return ErrVerifyFailure
	}
	return nil
}
