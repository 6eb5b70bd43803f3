// Package wire implements the length-prefixed, self-describing binary
// (de)serialization of the protocol's on-the-wire structures, using a BSON
// encoding compatible with the reference implementation's wire format.
package wire

import "errors"

// Sentinel errors raised while decoding wire structures.
var (
	ErrTooShort         = errors.New("wire: buffer too short")
	ErrUnexpectedField  = errors.New("wire: unexpected or missing field")
	ErrWrongLength      = errors.New("wire: field has wrong length")
	ErrMalformedKey     = errors.New("wire: malformed key material")
)
