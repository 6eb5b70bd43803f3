package engine

import (
	"crypto/ed25519"
	"fmt"

	"github.com/cosmic-cipher/cryptocore/primitive"
	"github.com/cosmic-cipher/cryptocore/wire"
)

// CA is the trust anchor a signing identity is bound to: an Ed25519
// verifying key, plus the signing half when this identity owns the CA (a
// "user") rather than merely trusting it (an "instance").
type CA struct {
	VerifyingKey []byte // raw 32 bytes
	SigningKey   *primitive.Ed25519KeyPair
}

// Identity is a signing keypair plus a CA-issued certificate over its
// verifying key. A user identity carries the CA's signing half; an instance
// identity carries only the CA's verifying half.
type Identity struct {
	Signing *primitive.Ed25519KeyPair
	Cert    []byte // 64-byte Ed25519 signature by CA.VerifyingKey over Signing's raw public key
	CA      CA
}

// VerifyCert re-checks that Cert is a valid CA signature over the identity's
// own verifying key, per the self-consistency invariant that must hold for
// every identity at every point in its lifetime.
func (id *Identity) VerifyCert() error {
	if err := primitive.Ed25519Verify(id.CA.VerifyingKey, id.Signing.PublicBytes(), id.Cert); err != nil {
		return fmt.Errorf("%w: %v", ErrCertInvalid, err)
	}
	return nil
}

// NewUser mints a brand-new signing identity together with a fresh,
// self-owned CA, and self-signs the signing verifying key under that CA.
func NewUser() (*Identity, error) {
	signing, err := primitive.GenerateEd25519KeyPair()
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	ca, err := primitive.GenerateEd25519KeyPair()
	if err != nil {
		return nil, fmt.Errorf("generate CA key: %w", err)
	}
	cert, err := ca.Sign(signing.PublicBytes())
	if err != nil {
		return nil, fmt.Errorf("self-sign verifying key: %w", err)
	}

	id := &Identity{
		Signing: signing,
		Cert:    cert,
		CA:      CA{VerifyingKey: ca.PublicBytes(), SigningKey: ca},
	}
	if err := id.VerifyCert(); err != nil {
		return nil, err
	}
	return id, nil
}

// ExportUser wraps the identity's signing key and CA signing key under an
// Argon2id-derived key, sealing them with XChaCha20-Poly1305 using
// aad = salt || nonce. It fails with ErrMissingCaPrivate for an instance
// identity, which has no CA signing half to export.
func (id *Identity) ExportUser(password []byte, params primitive.Argon2Params) ([]byte, error) {
	if id.CA.SigningKey == nil {
		return nil, ErrMissingCaPrivate
	}

	signingDER, err := primitive.MarshalEd25519PKCS8(ed25519.NewKeyFromSeed(id.Signing.Seed()))
	if err != nil {
		return nil, fmt.Errorf("marshal signing key: %w", err)
	}
	caDER, err := primitive.MarshalEd25519PKCS8(ed25519.NewKeyFromSeed(id.CA.SigningKey.Seed()))
	if err != nil {
		return nil, fmt.Errorf("marshal CA key: %w", err)
	}

	blob := &wire.UserBlob{SigningKey: signingDER, CaKey: caDER}
	plaintext, err := blob.Marshal()
	if err != nil {
		return nil, fmt.Errorf("encode user blob: %w", err)
	}

	salt, err := primitive.RandomBytes(primitive.SaltSize)
	if err != nil {
		return nil, err
	}
	nonce, err := primitive.RandomBytes(primitive.NonceSize)
	if err != nil {
		return nil, err
	}
	key := primitive.DeriveKeyFromPassword(password, salt, params)

	aad := append(append([]byte(nil), salt...), nonce...)
	ciphertext, err := primitive.Seal(key, nonce, plaintext, aad)
	if err != nil {
		return nil, fmt.Errorf("seal user blob: %w", err)
	}

	e := &wire.EncryptedUserBlob{Ciphertext: ciphertext}
	copy(e.Salt[:], salt)
	copy(e.Nonce[:], nonce)
	return e.Bytes(), nil
}

// ImportUser recovers a user identity from an ExportUser blob. Per the
// reference implementation it re-signs the recovered verifying key under
// the recovered CA rather than trusting a persisted certificate; Ed25519
// signing is deterministic, so this is equivalent to preserving the
// original certificate in practice.
func ImportUser(password []byte, data []byte, params primitive.Argon2Params) (*Identity, error) {
	parsed, err := wire.ParseEncryptedUserBlob(data)
	if err != nil {
		return nil, err
	}
	key := primitive.DeriveKeyFromPassword(password, parsed.Salt[:], params)
	aad := append(append([]byte(nil), parsed.Salt[:]...), parsed.Nonce[:]...)

	plaintext, err := primitive.Open(key, parsed.Nonce[:], parsed.Ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPassword, err)
	}

	blob, err := wire.UnmarshalUserBlob(plaintext)
	if err != nil {
		return nil, err
	}

	signingPriv, err := primitive.ParseEd25519PKCS8(blob.SigningKey)
	if err != nil {
		return nil, fmt.Errorf("parse signing key: %w", err)
	}
	caPriv, err := primitive.ParseEd25519PKCS8(blob.CaKey)
	if err != nil {
		return nil, fmt.Errorf("parse CA key: %w", err)
	}

	signing, err := primitive.Ed25519KeyPairFromSeed(signingPriv.Seed())
	if err != nil {
		return nil, err
	}
	ca, err := primitive.Ed25519KeyPairFromSeed(caPriv.Seed())
	if err != nil {
		return nil, err
	}

	cert, err := ca.Sign(signing.PublicBytes())
	if err != nil {
		return nil, fmt.Errorf("re-sign verifying key: %w", err)
	}

	id := &Identity{
		Signing: signing,
		Cert:    cert,
		CA:      CA{VerifyingKey: ca.PublicBytes(), SigningKey: ca},
	}
	if err := id.VerifyCert(); err != nil {
		return nil, err
	}
	return id, nil
}

// GenerateInstance mints a fresh signing keypair bound to this identity's CA
// and encodes it as an importable InstanceBlob. Requires the CA signing
// half; fails with ErrMissingCaPrivate otherwise.
func (id *Identity) GenerateInstance() ([]byte, error) {
	if id.CA.SigningKey == nil {
		return nil, ErrMissingCaPrivate
	}

	instSigning, err := primitive.GenerateEd25519KeyPair()
	if err != nil {
		return nil, fmt.Errorf("generate instance signing key: %w", err)
	}
	cert, err := id.CA.SigningKey.Sign(instSigning.PublicBytes())
	if err != nil {
		return nil, fmt.Errorf("sign instance verifying key: %w", err)
	}

	signingDER, err := primitive.MarshalEd25519PKCS8(ed25519.NewKeyFromSeed(instSigning.Seed()))
	if err != nil {
		return nil, fmt.Errorf("marshal instance signing key: %w", err)
	}
	caVKSpki, err := primitive.MarshalEd25519SPKI(ed25519.PublicKey(id.CA.VerifyingKey))
	if err != nil {
		return nil, fmt.Errorf("marshal CA verifying key: %w", err)
	}

	blob := &wire.InstanceBlob{
		SigningKey:     signingDER,
		Sig:            cert,
		CaVerifyingKey: caVKSpki,
	}
	return blob.Marshal()
}

// ImportInstance decodes an InstanceBlob into an identity that trusts the CA
// verifying key but retains no CA signing half — it cannot mint further
// instances, only participate in key exchange under that CA.
func ImportInstance(data []byte) (*Identity, error) {
	blob, err := wire.UnmarshalInstanceBlob(data)
	if err != nil {
		return nil, err
	}

	signingPriv, err := primitive.ParseEd25519PKCS8(blob.SigningKey)
	if err != nil {
		return nil, fmt.Errorf("parse instance signing key: %w", err)
	}
	signing, err := primitive.Ed25519KeyPairFromSeed(signingPriv.Seed())
	if err != nil {
		return nil, err
	}
	caVK, err := primitive.ParseEd25519SPKI(blob.CaVerifyingKey)
	if err != nil {
		return nil, fmt.Errorf("parse CA verifying key: %w", err)
	}

	id := &Identity{
		Signing: signing,
		Cert:    blob.Sig,
		CA:      CA{VerifyingKey: caVK},
	}
	if err := id.VerifyCert(); err != nil {
		return nil, err
	}
	return id, nil
}
