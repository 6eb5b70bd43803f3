// Package zeroize overwrites sensitive byte slices before they are dropped.
package zeroize

// Bytes overwrites b with zeros in place. It is a best-effort measure: Go's
// garbage collector may have already copied the backing array elsewhere, but
// it still closes the obvious window where a live reference lingers in a map
// or struct field after logical deletion.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
