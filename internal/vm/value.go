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

import "github.com/holiman/uint256"

// Value is the universal 64-bit word: every stack slot and arithmetic
// operand is one. Default is zero.
type Value uint64

// CheckedAdd returns a+b and true, or 0 and false on overflow.
func (a Value) CheckedAdd(b Value) (Value, bool) {
	r := a + b
	if r < a {
		return 0, false
	}
	return r, true
}

// CheckedSub returns a-b and true, or 0 and false on underflow.
func (a Value) CheckedSub(b Value) (Value, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

// CheckedMul returns a*b and true, or 0 and false on overflow.
func (a Value) CheckedMul(b Value) (Value, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/a != b {
		return 0, false
	}
	return r, true
}

// CheckedDiv returns a/b and true, or 0 and false if b is zero.
func (a Value) CheckedDiv(b Value) (Value, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// CheckedMod returns a%b and true, or 0 and false if b is zero.
func (a Value) CheckedMod(b Value) (Value, bool) {
	if b == 0 {
		return 0, false
	}
	return a % b, true
}

// MulDiv computes floor(a*b/c) using a 128-bit intermediate, erroring if
// c is zero or the quotient does not fit in 64 bits (spec §4.6).
func MulDiv(a, b, c Value) (Value, bool) {
	if c == 0 {
		return 0, false
	}
	var wide uint256.Int
	wide.Mul(uint256.NewInt(uint64(a)), uint256.NewInt(uint64(b)))
	wide.Div(&wide, uint256.NewInt(uint64(c)))
	if !wide.IsUint64() {
		return 0, false
	}
	return Value(wide.Uint64()), true
}

// Exp computes base**exp via square-and-multiply with checked
// multiplications. Per spec §4.6, an exponent greater than 64 combined
// with a base greater than 1 is rejected early since the result could
// never fit in 64 bits.
func Exp(base, exp Value) (Value, bool) {
	if exp > 64 && base > 1 {
		return 0, false
	}
	result := Value(1)
	b := base
	e := exp
	for e > 0 {
		if e&1 == 1 {
			var ok bool
			result, ok = result.CheckedMul(b)
			if !ok {
				return 0, false
			}
		}
		e >>= 1
		if e > 0 {
			var ok bool
			b, ok = b.CheckedMul(b)
			if !ok {
				return 0, false
			}
		}
	}
	return result, true
}

// SignExtend interprets v as a (byteNum+1)-byte signed quantity and
// sign-fills the upper bits. byteNum >= 8 is a no-op (spec §4.6).
func SignExtend(byteNum, v Value) Value {
	if byteNum >= 8 {
		return v
	}
	bit := uint(byteNum)*8 + 7
	mask := Value(1) << bit
	if v&mask != 0 {
		// negative: set all bits above the sign bit
		return v | (^Value(0) << (bit + 1))
	}
	// positive: clear all bits above the sign bit
	return v & (mask<<1 - 1)
}

// Byte extracts the i-th byte (big-endian index, i.e. Byte(31) is the
// least-significant byte of a 256-bit word); since Value is only 64
// bits, any index addressing a byte beyond the word is zero (spec §4.6).
func (v Value) Byte(i Value) Value {
	if i >= 32 {
		return 0
	}
	// Treat v as the low 8 bytes of a big-endian 32-byte word: only
	// indices 24..31 address real bytes, 0..23 are always zero.
	if i < 24 {
		return 0
	}
	shift := uint(31-i) * 8
	return Value(byte(v >> shift))
}

// Shl, Shr: logical shifts; amounts >= 64 yield 0 (spec §4.6).
func (v Value) Shl(n Value) Value {
	if n >= 64 {
		return 0
	}
	return v << uint(n)
}

func (v Value) Shr(n Value) Value {
	if n >= 64 {
		return 0
	}
	return v >> uint(n)
}

// Sar is arithmetic right shift: amounts >= 64 yield all-ones if the MSB
// is set, else 0 (spec §4.6).
func (v Value) Sar(n Value) Value {
	signed := int64(v)
	if n >= 64 {
		if signed < 0 {
			return Value(^uint64(0))
		}
		return 0
	}
	return Value(signed >> uint(n))
}
