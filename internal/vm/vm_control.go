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

// execJump handles Jump, JumpI and Call (spec §4.8). All three share
// the same target-bounds check: a target at or past the end of the
// bytecode is an invalid instruction rather than a silent halt.
func (vm *VM) execJump(op OpCode, code []byte) error {
	switch op {
	case Jump:
		target, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		return vm.jumpTo(target, code)

	case JumpI:
		target, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		cond, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		if cond == 0 {
			return nil
		}
		return vm.jumpTo(target, code)

	case Call:
		target, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		if err := vm.stack.PushFrame(); err != nil {
			return err
		}
		return vm.jumpTo(target, code)
	}
	return ErrInvalidInstruction
}

func (vm *VM) jumpTo(target Value, code []byte) error {
	t := int(target)
	if t < 0 || t >= len(code) {
		return ErrInvalidInstruction
	}
	vm.pc = t
	return nil
}

// execReturn pops the single return value and unwinds one call frame
// (spec §4.8). Returning past the outermost frame is tolerated: a
// program with no explicit Call is allowed to Return its result too.
func (vm *VM) execReturn() (Value, error) {
	v, err := vm.stack.Pop()
	if err != nil {
		return 0, err
	}
	_ = vm.stack.PopFrame() // absent frame is fine: Return with no prior Call is allowed
	return v, nil
}

// execRevert pops a u32 error code and unwinds execution with
// RevertError (spec §4.8, §7 item 10).
func (vm *VM) execRevert() error {
	code, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	return &RevertError{Code: uint32(code)}
}
