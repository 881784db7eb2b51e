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

// vectorAddLanes treats the top 8 stack slots as two adjacent four-lane
// vectors, a (the lower four) and b (the upper four), and sets
// a[i] = a[i] + b[i] in place, wrapping on overflow (spec §4.11). The
// reference host runs this as a single SIMD instruction; Go has no
// portable equivalent, so this is four ordinary adds over the same
// window Top8 exposes. It is not reachable from any opcode today —
// nothing in the closed enumeration triggers it — and exists so a
// future batched-arithmetic opcode has a correct, tested implementation
// to dispatch to.
func vectorAddLanes(lanes []Value) {
	for i := 0; i < 4; i++ {
		lanes[i] += lanes[i+4]
	}
}

// VectorAdd applies vectorAddLanes to the stack's top 8 slots and then
// pops the four b slots, leaving the four sums on top. Requires a depth
// of at least 8 (spec §4.11).
func (vm *VM) VectorAdd() error {
	lanes, err := vm.stack.Top8()
	if err != nil {
		return err
	}
	vectorAddLanes(lanes)
	for i := 0; i < 4; i++ {
		if _, err := vm.stack.Pop(); err != nil {
			return err
		}
	}
	return nil
}
