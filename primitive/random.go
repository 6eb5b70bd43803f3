package primitive

import (
	"crypto/rand"
	"fmt"
)

// RandomBytes returns n cryptographically random bytes read from the OS CSPRNG.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("primitive: read random bytes: %w", err)
	}
	return b, nil
}
