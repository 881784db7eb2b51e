// Copyright 2022-2026 The lessvm-go Authors
// This file is part of the lessvm-go library.
//
// The lessvm-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The lessvm-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the lessvm-go library. If not, see <http://www.gnu.org/licenses/>.

// Package types holds the small fixed-size identifiers shared between
// the VM's host bridge and the host-driver package: public keys and
// the account owner/program identity they're used for interchangeably
// in a Solana-like account model (spec §1, §6).
package types

import "encoding/hex"

// PublicKey is a 32-byte account or authority identity.
type PublicKey [32]byte

// String renders the key as lowercase hex.
func (k PublicKey) String() string {
	return hex.EncodeToString(k[:])
}

// IsZero reports whether every byte is zero.
func (k PublicKey) IsZero() bool {
	return k == PublicKey{}
}
