package wire

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// KexPacket is exchanged during a key-exchange round: an ephemeral X25519
// public key, self-signed by its sender's Ed25519 key, carried alongside the
// sender's verifying key (SPKI DER, variable length) and the CA's 64-byte
// signature that binds that verifying key to the sender's identity.
type KexPacket struct {
	PublicKey     []byte `bson:"public_key"`
	Sig           []byte `bson:"sig"`
	VerifyingKey  []byte `bson:"verifying_key"`
	SigningKeySig []byte `bson:"signing_key_sig"`
}

// Marshal encodes p as BSON.
func (p *KexPacket) Marshal() ([]byte, error) {
	return bson.Marshal(p)
}

// UnmarshalKexPacket decodes and validates a KexPacket from raw BSON bytes.
func UnmarshalKexPacket(data []byte) (*KexPacket, error) {
	if len(data) < 5 {
		return nil, ErrTooShort
	}
	var p KexPacket
	if err := bson.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedField, err)
	}
	if len(p.PublicKey) != 32 {
		return nil, fmt.Errorf("%w: public_key", ErrWrongLength)
	}
	if len(p.Sig) != 64 {
		return nil, fmt.Errorf("%w: sig", ErrWrongLength)
	}
	if len(p.VerifyingKey) == 0 {
		return nil, fmt.Errorf("%w: verifying_key", ErrUnexpectedField)
	}
	if len(p.SigningKeySig) != 64 {
		return nil, fmt.Errorf("%w: signing_key_sig", ErrWrongLength)
	}
	return &p, nil
}
