package primitive

import (
	"crypto/ecdh"
	"crypto/rand"
	"fmt"
)

// X25519KeyPair holds a Curve25519 Diffie-Hellman key pair.
type X25519KeyPair struct {
	priv *ecdh.PrivateKey
	pub  *ecdh.PublicKey
}

// GenerateX25519KeyPair generates a fresh X25519 key pair.
func GenerateX25519KeyPair() (*X25519KeyPair, error) {
	priv, err := ecdh.X25519().GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}
	return &X25519KeyPair{priv: priv, pub: priv.PublicKey()}, nil
}

// PrivateBytes returns the raw 32-byte scalar. Callers that store this value
// outside of a *X25519KeyPair (e.g. an in-flight ephemeral table) are
// responsible for zeroing it once it is no longer needed.
func (kp *X25519KeyPair) PrivateBytes() []byte {
	return kp.priv.Bytes()
}

// PublicBytes returns the raw 32-byte public point.
func (kp *X25519KeyPair) PublicBytes() []byte {
	return kp.pub.Bytes()
}

// X25519DH computes the raw Diffie-Hellman shared secret between a local
// private scalar and a peer's public point. Unlike a generic ECDH helper,
// this does not hash the output: the raw 32-byte DH result is used directly
// as the downstream AEAD key, matching the protocol this engine implements.
func X25519DH(privBytes, peerPubBytes []byte) ([]byte, error) {
	curve := ecdh.X25519()
	priv, err := curve.NewPrivateKey(privBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed private scalar: %v", ErrDHFailure, err)
	}
	peerPub, err := curve.NewPublicKey(peerPubBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed peer public key: %v", ErrDHFailure, err)
	}
	shared, err := priv.ECDH(peerPub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDHFailure, err)
	}
	return shared, nil
}
