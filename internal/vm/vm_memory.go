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

// maxExplicitLength bounds LoadN/StoreN: the spec's own encoding only
// has 8 value bytes per word, so a length beyond that can never be
// satisfied and is rejected rather than silently truncated (spec §4.7
// REDESIGN FLAG).
const maxExplicitLength = 8

// execMemory handles the 0x2* memory opcodes (spec §4.2, §4.7). Gas for
// any logical growth a write causes is charged on top of the opcode's
// flat base cost, computed from the size before versus after the write.
func (vm *VM) execMemory(op OpCode) error {
	switch op {
	case Load:
		offset, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		bytes, err := vm.memory.Load(int(offset), 8)
		if err != nil {
			return err
		}
		return vm.stack.Push(Value(leToU64(bytes)))

	case Store:
		offset, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		value, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		return vm.memoryStore(int(offset), u64ToLE(uint64(value), 8))

	case LoadN:
		length, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		offset, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		if length > maxExplicitLength {
			return ErrInvalidMemoryAccess
		}
		bytes, err := vm.memory.Load(int(offset), int(length))
		if err != nil {
			return err
		}
		return vm.stack.Push(Value(leToU64(bytes)))

	case StoreN:
		length, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		offset, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		value, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		if length > maxExplicitLength {
			return ErrInvalidMemoryAccess
		}
		return vm.memoryStore(int(offset), u64ToLE(uint64(value), int(length)))

	case Msize:
		return vm.stack.Push(Value(vm.memory.Size()))

	case Mload8:
		offset, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		b, err := vm.memory.Load8(int(offset))
		if err != nil {
			return err
		}
		return vm.stack.Push(Value(b))

	case Mstore8:
		offset, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		value, err := vm.stack.Pop()
		if err != nil {
			return err
		}
		return vm.memoryStore(int(offset), []byte{byte(value)})
	}
	return ErrInvalidInstruction
}

// memoryStore charges the expansion gas a write to [offset,
// offset+len(data)) would cause, then performs it.
func (vm *VM) memoryStore(offset int, data []byte) error {
	newSize := offset + len(data)
	if err := vm.gas.Consume(ExpansionCost(vm.memory.Size(), newSize)); err != nil {
		return err
	}
	return vm.memory.Store(offset, data)
}

func leToU64(b []byte) uint64 {
	var v uint64
	for i, c := range b {
		v |= uint64(c) << (8 * i)
	}
	return v
}

func u64ToLE(v uint64, length int) []byte {
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return out
}
