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

func TestCheckedArithmetic(t *testing.T) {
	r, ok := Value(5).CheckedAdd(3)
	require.True(t, ok)
	require.Equal(t, Value(8), r)

	_, ok = Value(^uint64(0)).CheckedAdd(1)
	require.False(t, ok, "max+1 must overflow")

	_, ok = Value(0).CheckedSub(1)
	require.False(t, ok, "0-1 must underflow")

	r, ok = Value(7).CheckedMul(6)
	require.True(t, ok)
	require.Equal(t, Value(42), r)

	_, ok = Value(0).CheckedDiv(0)
	require.False(t, ok)

	t.Logf("✓ checked arithmetic wraps/errors correctly")
}

func TestMulDiv(t *testing.T) {
	r, ok := MulDiv(10, 20, 4)
	require.True(t, ok)
	require.Equal(t, Value(50), r)

	_, ok = MulDiv(1, 1, 0)
	require.False(t, ok, "division by zero must fail")

	_, ok = MulDiv(Value(^uint64(0)), Value(^uint64(0)), 1)
	require.False(t, ok, "quotient overflowing 64 bits must fail")

	t.Logf("✓ MulDiv computes floor(a*b/c) via 128-bit intermediate")
}

func TestExp(t *testing.T) {
	r, ok := Exp(2, 10)
	require.True(t, ok)
	require.Equal(t, Value(1024), r)

	r, ok = Exp(5, 0)
	require.True(t, ok)
	require.Equal(t, Value(1), r)

	_, ok = Exp(2, 65)
	require.False(t, ok, "exponent > 64 with base > 1 is rejected early")

	r, ok = Exp(1, 1000)
	require.True(t, ok)
	require.Equal(t, Value(1), r, "base 1 to any power is always 1")

	t.Logf("✓ Exp computes via square-and-multiply with early overflow rejection")
}

func TestSignExtend(t *testing.T) {
	require.Equal(t, Value(0xFFFFFFFFFFFFFFFF), SignExtend(0, 0xFF))
	require.Equal(t, Value(0x7F), SignExtend(0, 0x7F))
	require.Equal(t, Value(0x1234), SignExtend(8, 0x1234), "byteNum>=8 is a no-op")
}

func TestShiftsAndByte(t *testing.T) {
	require.Equal(t, Value(0), Value(1).Shl(64))
	require.Equal(t, Value(2), Value(1).Shl(1))
	require.Equal(t, Value(0), Value(1).Shr(64))
	require.Equal(t, Value(^uint64(0)), Value(1<<63).Sar(64))
	require.Equal(t, Value(0xFF), Value(0xFF).Byte(31))
	require.Equal(t, Value(0), Value(0xFF).Byte(0), "indices below 24 address the always-zero high bytes")
}
