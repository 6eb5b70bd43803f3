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

// Package engine implements the identity, key-exchange and message-channel
// state machine: minting and recovering identities under a self-owned CA,
// the two-phase authenticated X25519 exchange, and the per-peer AEAD
// channel built on top of it.
package engine

import "errors"

// Sentinel errors raised by the engine. When one is raised because of a
// lower-level primitive error, the sentinel is wrapped with %w and the
// primitive error's text is appended with %v, so errors.Is matches the
// engine sentinel, not the underlying primitive error.
var (
	ErrMissingCaPrivate          = errors.New("engine: identity has no CA signing half")
	ErrBadPassword               = errors.New("engine: wrong password or corrupted export")
	ErrNoInFlight                = errors.New("engine: no in-flight key exchange for this label")
	ErrNoSession                 = errors.New("engine: no completed key exchange for this label")
	ErrPeerNotCaSigned           = errors.New("engine: sender's verifying key is not signed by this identity's CA")
	ErrEphemeralNotSignedBySender = errors.New("engine: ephemeral public key is not signed by the sender")
	ErrCertInvalid               = errors.New("engine: identity certificate failed CA verification")
	ErrCompression               = errors.New("engine: malformed compressed frame")
	ErrFrameTooShort             = errors.New("engine: message frame shorter than nonce+tag")
)
