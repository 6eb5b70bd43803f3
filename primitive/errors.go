// SAGE - Secure Agent Guarantee Engine
// Copyright (C) 2025 SAGE-X-project
//
// This file is part of SAGE.
//
// SAGE is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SAGE is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with SAGE. If not, see <https://www.gnu.org/licenses/>.

// Package primitive wraps the low-level cryptographic algorithms used by the
// identity, key-exchange and message-channel layers: X25519, Ed25519,
// XChaCha20-Poly1305, Argon2id and LZ4.
package primitive

import "errors"

// Sentinel errors raised by the primitive layer.
var (
	ErrKeyGeneration    = errors.New("primitive: key generation failed")
	ErrInvalidKeyLength = errors.New("primitive: invalid key length")
	ErrDHFailure        = errors.New("primitive: diffie-hellman exchange failed")
	ErrSignFailure      = errors.New("primitive: signing failed")
	ErrVerifyFailure    = errors.New("primitive: signature verification failed")
	ErrSealFailure      = errors.New("primitive: AEAD seal failed")
	ErrOpenFailure      = errors.New("primitive: AEAD open failed")
	ErrCompressFailure  = errors.New("primitive: LZ4 compression failed")
	ErrDecompressFailure = errors.New("primitive: LZ4 decompression failed")
	ErrFrameTooShort    = errors.New("primitive: compressed frame too short")
)
