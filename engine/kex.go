package engine

import (
	"fmt"
	"sync"

	"github.com/cosmic-cipher/cryptocore/internal/logger"
	"github.com/cosmic-cipher/cryptocore/internal/zeroize"
	"github.com/cosmic-cipher/cryptocore/primitive"
	"github.com/cosmic-cipher/cryptocore/wire"
)

// Engine drives the key exchange and message channel for one identity. Its
// state — the in-flight ephemeral table and the completed shared-secret
// table — is intrinsically single-threaded per identity: the caller is
// expected to serialize operations against one Engine (the reference
// hosting layer does this with one mutex per username). Engine still guards
// its maps with its own mutex so a caller that gets this wrong fails safe
// rather than racing.
type Engine struct {
	identity *Identity
	argon2   primitive.Argon2Params
	log      logger.Logger

	mu            sync.Mutex
	ephemerals    map[string][]byte // label -> raw X25519 scalar, in flight
	sharedSecrets map[string][]byte // label -> raw 32-byte DH output
}

// New wraps identity in an Engine ready to drive key exchange and messaging.
// log may be nil, in which case logger.NewDefaultLogger is used: JSON to
// stdout, at the level named by CRYPTOCORE_LOG_LEVEL (Info when unset).
func New(identity *Identity, argon2 primitive.Argon2Params, log logger.Logger) *Engine {
	if log == nil {
		log = logger.NewDefaultLogger()
	}
	return &Engine{
		identity:      identity,
		argon2:        argon2,
		log:           log,
		ephemerals:    make(map[string][]byte),
		sharedSecrets: make(map[string][]byte),
	}
}

// Identity returns the identity this engine was built from.
func (e *Engine) Identity() *Identity {
	return e.identity
}

// InitKex draws a fresh X25519 ephemeral keypair for label, signs its public
// half with the identity's signing key, and self-verifies that signature
// before returning — a defensive check against a broken signer. Calling
// InitKex twice for the same label before CompleteKex overwrites the first
// scalar; the stale one is zeroed and irrecoverable.
func (e *Engine) InitKex(label string) (ephPub, ephSig []byte, err error) {
	kp, err := primitive.GenerateX25519KeyPair()
	if err != nil {
		return nil, nil, fmt.Errorf("init kex: %w", err)
	}
	ephPub = kp.PublicBytes()

	sig, err := e.identity.Signing.Sign(ephPub)
	if err != nil {
		return nil, nil, fmt.Errorf("sign ephemeral key: %w", err)
	}
	if err := primitive.Ed25519Verify(e.identity.Signing.PublicBytes(), ephPub, sig); err != nil {
		return nil, nil, fmt.Errorf("self-verify ephemeral signature: %w", err)
	}

	e.mu.Lock()
	if prev, ok := e.ephemerals[label]; ok {
		zeroize.Bytes(prev)
	}
	e.ephemerals[label] = kp.PrivateBytes()
	e.mu.Unlock()

	e.log.Debug("kex initiated", logger.Peer(label), logger.Op("init_kex"))
	return ephPub, sig, nil
}

// PackKex builds the wire KexPacket announcing this identity's self-signed
// ephemeral to a peer: the ephemeral public key and its signature, plus this
// identity's verifying key (SPKI DER) and the CA's certificate over it.
func (e *Engine) PackKex(ephPub, ephSig []byte) ([]byte, error) {
	vkSPKI, err := primitive.MarshalEd25519SPKI(e.identity.Signing.PublicBytes())
	if err != nil {
		return nil, fmt.Errorf("pack kex: %w", err)
	}
	packet := &wire.KexPacket{
		PublicKey:     ephPub,
		Sig:           ephSig,
		VerifyingKey:  vkSPKI,
		SigningKeySig: e.identity.Cert,
	}
	return packet.Marshal()
}

// UnpackKex is a pure decode of a peer's KexPacket: shape checks only, no
// cryptographic verification.
func UnpackKex(data []byte) (ephPub, ephSig, senderVK, senderVKCert []byte, err error) {
	p, err := wire.UnmarshalKexPacket(data)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	senderVK, err = primitive.ParseEd25519SPKI(p.VerifyingKey)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("unpack kex: %w", err)
	}
	return p.PublicKey, p.Sig, senderVK, p.SigningKeySig, nil
}

// CompleteKex finishes a key exchange for label: it verifies that the
// sender's verifying key is CA-signed by this identity's own CA, verifies
// that the sender signed their ephemeral public key, computes the raw X25519
// shared secret, and commits it as the single atomic step — no partial
// state is ever observed by a concurrent caller.
func (e *Engine) CompleteKex(label string, ephPubPeer, ephSigPeer, senderVK, senderVKCert []byte) ([]byte, error) {
	e.mu.Lock()
	scalar, ok := e.ephemerals[label]
	if ok {
		delete(e.ephemerals, label)
	}
	e.mu.Unlock()
	if !ok {
		return nil, ErrNoInFlight
	}
	defer zeroize.Bytes(scalar)

	if err := primitive.Ed25519Verify(e.identity.CA.VerifyingKey, senderVK, senderVKCert); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPeerNotCaSigned, err)
	}
	if err := primitive.Ed25519Verify(senderVK, ephPubPeer, ephSigPeer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEphemeralNotSignedBySender, err)
	}

	shared, err := primitive.X25519DH(scalar, ephPubPeer)
	if err != nil {
		return nil, fmt.Errorf("complete kex: %w", err)
	}

	e.mu.Lock()
	if prev, ok := e.sharedSecrets[label]; ok {
		zeroize.Bytes(prev)
	}
	e.sharedSecrets[label] = shared
	e.mu.Unlock()

	e.log.Info("kex completed", logger.Peer(label), logger.Op("complete_kex"))
	return append([]byte(nil), shared...), nil
}
