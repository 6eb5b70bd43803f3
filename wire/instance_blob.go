package wire

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// InstanceBlob is the exported form of a subordinate instance identity: its
// own Ed25519 signing key (PKCS#8 DER), the CA's 64-byte signature over its
// raw verifying key, and the CA's verifying key (SPKI DER) — but never the
// CA's signing key, since an instance can prove its own binding but cannot
// mint new instances.
type InstanceBlob struct {
	SigningKey     []byte `bson:"signing_key"`
	Sig            []byte `bson:"sig"`
	CaVerifyingKey []byte `bson:"ca_verifying_key"`
}

// Marshal encodes i as BSON.
func (i *InstanceBlob) Marshal() ([]byte, error) {
	return bson.Marshal(i)
}

// UnmarshalInstanceBlob decodes and validates an InstanceBlob from raw BSON bytes.
func UnmarshalInstanceBlob(data []byte) (*InstanceBlob, error) {
	if len(data) < 5 {
		return nil, ErrTooShort
	}
	var i InstanceBlob
	if err := bson.Unmarshal(data, &i); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedField, err)
	}
	if len(i.SigningKey) == 0 {
		return nil, fmt.Errorf("%w: signing_key", ErrUnexpectedField)
	}
	if len(i.Sig) != 64 {
		return nil, fmt.Errorf("%w: sig", ErrWrongLength)
	}
	if len(i.CaVerifyingKey) == 0 {
		return nil, fmt.Errorf("%w: ca_verifying_key", ErrUnexpectedField)
	}
	return &i, nil
}
