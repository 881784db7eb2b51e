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

// execStack handles the 0x0* stack opcodes (spec §4.1).
func (vm *VM) execStack(op OpCode, code []byte) error {
	switch op {
	case Push1:
		b, err := vm.fetchU8(code)
		if err != nil {
			return err
		}
		return vm.stack.Push(Value(b))

	case Push8:
		v, err := vm.fetchU64(code)
		if err != nil {
			return err
		}
		return vm.stack.Push(Value(v))

	case Pop:
		_, err := vm.stack.Pop()
		return err

	case Dup:
		n, err := vm.fetchU8(code)
		if err != nil {
			return err
		}
		return vm.stack.Dup(int(n))

	case Swap:
		n, err := vm.fetchU8(code)
		if err != nil {
			return err
		}
		return vm.stack.Swap(int(n))
	}
	return ErrInvalidInstruction
}

// execArith handles the 0x1* arithmetic and bitwise opcodes (spec
// §4.6). Every binary op pops its right-hand operand first, then its
// left-hand operand, matching stack-machine push order (left pushed
// first, so it ends up one slot below the right operand).
func (vm *VM) execArith(op OpCode) error {
	switch op {
	case Add, Sub, Mul, Div, Mod, And, Or, Xor, Shl, Shr, Sar, Byte:
		b, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		a, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		return vm.binaryOp(op, a, b)

	case MulDivOp:
		c, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		b, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		a, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		r, ok := MulDiv(a, b, c)
		if !ok {
			return ErrArithmeticOverflow
		}
		return vm.stack.Push(r)

	case ExpOp:
		exp, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		base, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		r, ok := Exp(base, exp)
		if !ok {
			return ErrArithmeticOverflow
		}
		return vm.stack.Push(r)

	case SignExtend:
		v, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		byteNum, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		return vm.stack.Push(SignExtend(byteNum, v))

	case Not:
		a, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		return vm.stack.Push(^a)
	}
	return ErrInvalidInstruction
}

func (vm *VM) binaryOp(op OpCode, a, b Value) error {
	var result Value
	switch op {
	case Add:
		r, ok := a.CheckedAdd(b)
		if !ok {
			return ErrArithmeticOverflow
		}
		result = r
	case Sub:
		r, ok := a.CheckedSub(b)
		if !ok {
			return ErrArithmeticOverflow
		}
		result = r
	case Mul:
		r, ok := a.CheckedMul(b)
		if !ok {
			return ErrArithmeticOverflow
		}
		result = r
	case Div:
		r, ok := a.CheckedDiv(b)
		if !ok {
			return ErrDivisionByZero
		}
		result = r
	case Mod:
		r, ok := a.CheckedMod(b)
		if !ok {
			return ErrDivisionByZero
		}
		result = r
	case And:
		result = a & b
	case Or:
		result = a | b
	case Xor:
		result = a ^ b
	case Shl:
		result = a.Shl(b)
	case Shr:
		result = a.Shr(b)
	case Sar:
		result = a.Sar(b)
	case Byte:
		result = a.Byte(b)
	default:
		return ErrInvalidInstruction
	}
	return vm.stack.Push(result)
}
