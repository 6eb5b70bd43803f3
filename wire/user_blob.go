package wire

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// UserBlob is the plaintext payload wrapped by Argon2id + XChaCha20-Poly1305
// when a user identity is exported: the user's Ed25519 signing key and the
// CA's Ed25519 signing key, both PKCS#8 DER (variable length).
type UserBlob struct {
	SigningKey []byte `bson:"signing_key"`
	CaKey      []byte `bson:"ca_key"`
}

// Marshal encodes u as BSON.
func (u *UserBlob) Marshal() ([]byte, error) {
	return bson.Marshal(u)
}

// UnmarshalUserBlob decodes and validates a UserBlob from raw BSON bytes.
func UnmarshalUserBlob(data []byte) (*UserBlob, error) {
	if len(data) < 5 {
		return nil, ErrTooShort
	}
	var u UserBlob
	if err := bson.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedField, err)
	}
	if len(u.SigningKey) == 0 {
		return nil, fmt.Errorf("%w: signing_key", ErrUnexpectedField)
	}
	if len(u.CaKey) == 0 {
		return nil, fmt.Errorf("%w: ca_key", ErrUnexpectedField)
	}
	return &u, nil
}

// EncryptedUserBlob is the full exported-user wire layout:
// salt(16) || nonce(24) || AEAD(UserBlob), stored as separate fields so the
// salt and nonce are reachable without decrypting.
type EncryptedUserBlob struct {
	Salt       [16]byte
	Nonce      [24]byte
	Ciphertext []byte
}

// Bytes serializes e as salt || nonce || ciphertext.
func (e *EncryptedUserBlob) Bytes() []byte {
	out := make([]byte, 0, 16+24+len(e.Ciphertext))
	out = append(out, e.Salt[:]...)
	out = append(out, e.Nonce[:]...)
	out = append(out, e.Ciphertext...)
	return out
}

// ParseEncryptedUserBlob splits the salt || nonce || ciphertext wire layout.
func ParseEncryptedUserBlob(data []byte) (*EncryptedUserBlob, error) {
	if len(data) < 16+24 {
		return nil, ErrTooShort
	}
	e := &EncryptedUserBlob{}
	copy(e.Salt[:], data[:16])
	copy(e.Nonce[:], data[16:40])
	e.Ciphertext = append([]byte(nil), data[40:]...)
	return e, nil
}
