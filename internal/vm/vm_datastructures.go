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

import "github.com/lessvm/lessvm-go/internal/vm/datastore"

// maxHandle bounds the handle value an opcode may address: handles are
// small-integer vector indices (spec §9), and an unbounded handle would
// let a single instruction force an arbitrarily large slice allocation
// in Store.
const maxHandle = 255

// execDataStructure handles the 0x5*-0x6* aggregate data-structure
// opcodes (spec §4.5). Every op pops its arguments in the order listed
// in the spec, which — since the spec always lists arguments
// left-to-right in push order — means the rightmost-listed argument is
// popped first.
func (vm *VM) execDataStructure(op OpCode) error {
	switch op {
	case BTreeCreate:
		h, err := vm.popHandle()
		if err != nil {
			return err
		}
		vm.store.Map(h)
		return nil

	case BTreeInsert:
		v, k, h, err := vm.pop3()
		if err != nil {
			return err
		}
		return vm.stack.Push(Value(vm.store.Map(h).Insert(uint64(k), uint64(v))))

	case BTreeGet:
		k, h, err := vm.pop2()
		if err != nil {
			return err
		}
		val, _ := vm.store.Map(h).Get(uint64(k))
		return vm.stack.Push(Value(val))

	case BTreeRemove:
		k, h, err := vm.pop2()
		if err != nil {
			return err
		}
		val, _ := vm.store.Map(h).Remove(uint64(k))
		return vm.stack.Push(Value(val))

	case BTreeContains:
		k, h, err := vm.pop2()
		if err != nil {
			return err
		}
		return vm.stack.Push(boolValue(vm.store.Map(h).Contains(uint64(k))))

	case BTreeLen:
		h, err := vm.popHandle()
		if err != nil {
			return err
		}
		return vm.stack.Push(Value(vm.store.Map(h).Len()))

	case BTreeFirstKey:
		h, err := vm.popHandle()
		if err != nil {
			return err
		}
		key, _ := vm.store.Map(h).FirstKey()
		return vm.stack.Push(Value(key))

	case BTreeLastKey:
		h, err := vm.popHandle()
		if err != nil {
			return err
		}
		key, _ := vm.store.Map(h).LastKey()
		return vm.stack.Push(Value(key))

	case BTreeClear:
		h, err := vm.popHandle()
		if err != nil {
			return err
		}
		vm.store.Map(h).Clear()
		return nil

	case TrieCreate:
		h, err := vm.popHandle()
		if err != nil {
			return err
		}
		vm.store.Trie(h)
		return nil

	case TrieInsert:
		v, key, h, err := vm.popKeyed3()
		if err != nil {
			return err
		}
		return vm.store.Trie(h).Insert(key, uint64(v))

	case TrieGet:
		key, h, err := vm.popKeyed2()
		if err != nil {
			return err
		}
		val, _ := vm.store.Trie(h).Get(key)
		return vm.stack.Push(Value(val))

	case TrieContains:
		key, h, err := vm.popKeyed2()
		if err != nil {
			return err
		}
		return vm.stack.Push(boolValue(vm.store.Trie(h).Contains(key)))

	case TrieClear:
		h, err := vm.popHandle()
		if err != nil {
			return err
		}
		vm.store.Trie(h).Clear()
		return nil

	case GraphCreate:
		h, err := vm.popHandle()
		if err != nil {
			return err
		}
		vm.store.Graph(h)
		return nil

	case GraphAddNode:
		v, id, h, err := vm.pop3()
		if err != nil {
			return err
		}
		return vm.store.Graph(h).AddNode(uint64(id), uint64(v))

	case GraphAddEdge:
		weight, to, from, h, err := vm.pop4()
		if err != nil {
			return err
		}
		return vm.store.Graph(h).AddEdge(uint64(from), uint64(to), uint64(weight))

	case GraphGetNode:
		id, h, err := vm.pop2()
		if err != nil {
			return err
		}
		val, _ := vm.store.Graph(h).GetNode(uint64(id))
		return vm.stack.Push(Value(val))

	case GraphSetNode:
		v, id, h, err := vm.pop3()
		if err != nil {
			return err
		}
		return vm.store.Graph(h).SetNode(uint64(id), uint64(v))

	case GraphGetNeighbors:
		id, h, err := vm.pop2()
		if err != nil {
			return err
		}
		edges := vm.store.Graph(h).GetNeighbors(uint64(id))
		for i := len(edges) - 1; i >= 0; i-- {
			if err := vm.stack.Push(Value(edges[i].To)); err != nil {
				return err
			}
			if err := vm.stack.Push(Value(edges[i].Weight)); err != nil {
				return err
			}
		}
		return vm.stack.Push(Value(len(edges)))

	case GraphBFS:
		start, h, err := vm.pop2()
		if err != nil {
			return err
		}
		order := vm.store.Graph(h).BFS(uint64(start))
		for i := len(order) - 1; i >= 0; i-- {
			if err := vm.stack.Push(Value(order[i])); err != nil {
				return err
			}
		}
		return vm.stack.Push(Value(len(order)))

	case GraphClear:
		h, err := vm.popHandle()
		if err != nil {
			return err
		}
		vm.store.Graph(h).Clear()
		return nil

	case OhlcvCreate:
		h, err := vm.popHandle()
		if err != nil {
			return err
		}
		vm.store.Series(h)
		return nil

	case OhlcvAddBar:
		return vm.execAddBar()

	case OhlcvGetBar:
		idx, h, err := vm.pop2()
		if err != nil {
			return err
		}
		bar, _ := vm.store.Series(h).GetBar(int(idx))
		for _, v := range []uint64{bar.Volume, bar.Close, bar.Low, bar.High, bar.Open, bar.Timestamp} {
			if err := vm.stack.Push(Value(v)); err != nil {
				return err
			}
		}
		return nil

	case OhlcvSMA:
		period, h, err := vm.pop2()
		if err != nil {
			return err
		}
		points := vm.store.Series(h).SMA(int(period))
		for i := len(points) - 1; i >= 0; i-- {
			if err := vm.stack.Push(Value(points[i].Mean)); err != nil {
				return err
			}
			if err := vm.stack.Push(Value(points[i].Timestamp)); err != nil {
				return err
			}
		}
		return vm.stack.Push(Value(len(points)))

	case HyperCreate:
		h, err := vm.popHandle()
		if err != nil {
			return err
		}
		vm.store.Hyper(h)
		return nil

	case HyperAddNode:
		v, id, h, err := vm.pop3()
		if err != nil {
			return err
		}
		vm.store.Hyper(h).AddNode(uint64(id), uint64(v))
		return nil

	case HyperCreateEdge:
		weight, id, h, err := vm.pop3()
		if err != nil {
			return err
		}
		vm.store.Hyper(h).CreateHyperedge(uint64(id), uint64(weight))
		return nil

	case HyperAddNodeToEdge:
		nodeID, edgeID, h, err := vm.pop3()
		if err != nil {
			return err
		}
		vm.store.Hyper(h).AddNodeToEdge(uint64(edgeID), uint64(nodeID))
		return nil
	}
	return ErrInvalidInstruction
}

func (vm *VM) execAddBar() error {
	volume, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	closeV, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	low, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	high, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	open, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	ts, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	h, err := vm.popHandle()
	if err != nil {
		return err
	}
	vm.store.Series(h).AddBar(datastore.Bar{
		Timestamp: uint64(ts), Open: uint64(open), High: uint64(high),
		Low: uint64(low), Close: uint64(closeV), Volume: uint64(volume),
	})
	return nil
}

// popHandle pops one value off the stack and resolves it to a bounded
// handle index.
func (vm *VM) popHandle() (int, error) {
	v, err := vm.stack.Pop()
	if err != nil {
		return 0, err
	}
	return toHandle(v)
}

func toHandle(v Value) (int, error) {
	if v > maxHandle {
		return 0, ErrInvalidDataStructure
	}
	return int(v), nil
}

// pop2 pops (top) value then handle, returning them in that order.
func (vm *VM) pop2() (Value, int, error) {
	v, err := vm.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	h, err := vm.popHandle()
	if err != nil {
		return 0, 0, err
	}
	return v, h, nil
}

// pop3 pops two values then a handle, returning them top-to-bottom.
func (vm *VM) pop3() (a, b Value, h int, err error) {
	a, err = vm.stack.Pop()
	if err != nil {
		return
	}
	b, err = vm.stack.Pop()
	if err != nil {
		return
	}
	h, err = vm.popHandle()
	return
}

// pop4 pops three values then a handle, for the 4-argument ops.
func (vm *VM) pop4() (a, b, c Value, h int, err error) {
	a, err = vm.stack.Pop()
	if err != nil {
		return
	}
	b, err = vm.stack.Pop()
	if err != nil {
		return
	}
	c, err = vm.stack.Pop()
	if err != nil {
		return
	}
	h, err = vm.popHandle()
	return
}

// popKeyed2 pops len, ptr, then a handle, and reads the resulting
// [ptr,ptr+len) memory range as a trie key.
func (vm *VM) popKeyed2() ([]byte, int, error) {
	length, err := vm.stack.Pop()
	if err != nil {
		return nil, 0, err
	}
	ptr, err := vm.stack.Pop()
	if err != nil {
		return nil, 0, err
	}
	h, err := vm.popHandle()
	if err != nil {
		return nil, 0, err
	}
	if length == 0 {
		return nil, 0, ErrInvalidDataStructure
	}
	key, err := vm.memory.Load(int(ptr), int(length))
	if err != nil {
		return nil, 0, err
	}
	return key, h, nil
}

// popKeyed3 pops value, len, ptr, then a handle, for TrieInsert.
func (vm *VM) popKeyed3() (Value, []byte, int, error) {
	v, err := vm.stack.Pop()
	if err != nil {
		return 0, nil, 0, err
	}
	key, h, err := vm.popKeyed2()
	if err != nil {
		return 0, nil, 0, err
	}
	return v, key, h, nil
}
