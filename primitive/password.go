package primitive

import "golang.org/x/crypto/argon2"

// SaltSize is the length of the Argon2id salt used to wrap exported user blobs.
const SaltSize = 16

// Argon2Params mirrors the Argon2id cost parameters. The defaults match the
// RFC 9106 "recommended" profile used by the reference implementation's
// Argon2::default().
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params returns the RFC 9106 recommended Argon2id profile.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{Time: 2, Memory: 19 * 1024, Threads: 1, KeyLen: KeySize}
}

// DeriveKeyFromPassword runs Argon2id over password and salt, producing a key
// suitable for use directly as an XChaCha20-Poly1305 key.
func DeriveKeyFromPassword(password, salt []byte, p Argon2Params) []byte {
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}
