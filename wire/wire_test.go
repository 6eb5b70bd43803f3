package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func bytesOf(n int, fill byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = fill
	}
	return b
}

func TestKexPacketRoundTrip(t *testing.T) {
	p := &KexPacket{
		PublicKey:     bytesOf(32, 1),
		Sig:           bytesOf(64, 2),
		VerifyingKey:  bytesOf(44, 3), // SPKI DER is longer than the raw 32-byte key
		SigningKeySig: bytesOf(64, 4),
	}
	data, err := p.Marshal()
	require.NoError(t, err)

	got, err := UnmarshalKexPacket(data)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestKexPacketRejectsWrongLength(t *testing.T) {
	p := &KexPacket{
		PublicKey:     bytesOf(31, 1),
		Sig:           bytesOf(64, 2),
		VerifyingKey:  bytesOf(44, 3),
		SigningKeySig: bytesOf(64, 4),
	}
	data, err := p.Marshal()
	require.NoError(t, err)
	_, err = UnmarshalKexPacket(data)
	require.ErrorIs(t, err, ErrWrongLength)
}

func TestUserBlobRoundTrip(t *testing.T) {
	u := &UserBlob{SigningKey: bytesOf(32, 9), CaKey: bytesOf(32, 8)}
	data, err := u.Marshal()
	require.NoError(t, err)
	got, err := UnmarshalUserBlob(data)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestEncryptedUserBlobRoundTrip(t *testing.T) {
	e := &EncryptedUserBlob{Ciphertext: []byte("ciphertext-bytes")}
	copy(e.Salt[:], bytesOf(16, 5))
	copy(e.Nonce[:], bytesOf(24, 6))

	got, err := ParseEncryptedUserBlob(e.Bytes())
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestInstanceBlobRoundTrip(t *testing.T) {
	i := &InstanceBlob{
		SigningKey:     bytesOf(32, 1),
		Sig:            bytesOf(64, 2),
		CaVerifyingKey: bytesOf(32, 3),
	}
	data, err := i.Marshal()
	require.NoError(t, err)
	got, err := UnmarshalInstanceBlob(data)
	require.NoError(t, err)
	require.Equal(t, i, got)
}

func TestUnmarshalTooShort(t *testing.T) {
	_, err := UnmarshalKexPacket([]byte{1, 2})
	require.ErrorIs(t, err, ErrTooShort)
}
