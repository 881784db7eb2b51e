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

package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeOpCodeKnownBytes(t *testing.T) {
	cases := []struct {
		b    byte
		want OpCode
	}{
		{0x01, Push1}, {0x10, Add}, {0x40, Transfer}, {0x50, BTreeCreate}, {0xFF, Halt},
	}
	for _, c := range cases {
		op, err := DecodeOpCode(c.b)
		require.NoError(t, err)
		require.Equal(t, c.want, op)
	}
}

func TestDecodeOpCodeRejectsGaps(t *testing.T) {
	// 0x06, 0x27 and 0x70 fall in the unassigned gaps between the
	// defined ranges and must be rejected outright (spec §3).
	for _, b := range []byte{0x06, 0x27, 0x48, 0x70, 0xA1} {
		_, err := DecodeOpCode(b)
		require.ErrorIs(t, err, ErrInvalidInstruction, "byte 0x%02X should be invalid", b)
	}
}

func TestOpCodeStringRoundTrips(t *testing.T) {
	require.Equal(t, "ADD", Add.String())
	require.Equal(t, "HALT", Halt.String())
	require.Contains(t, OpCode(0x06).String(), "UNKNOWN")
}

func TestBaseGasCostCoversEveryDecodableOpcode(t *testing.T) {
	for b := 0; b < 256; b++ {
		op, err := DecodeOpCode(byte(b))
		if err != nil {
			continue
		}
		// Every decodable opcode other than the explicit zero-cost
		// terminators carries a positive base cost.
		switch op {
		case Return, Revert, Halt:
			continue
		}
		require.Positive(t, BaseGasCost(op), "opcode %s has no base cost", op)
	}
}
