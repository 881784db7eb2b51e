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
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"

	"github.com/lessvm/lessvm-go/internal/vm/datastore"
)

// VM is a single execution engine bound to a program identity, an
// account view, and an instruction-data buffer (spec §1, §5). All
// VM-owned state — stack, memory, gas meter, data-structure store — is
// created in New and dropped with the VM; host account balances are the
// only thing mutated in place through the borrowed AccountView.
type VM struct {
	pc int

	gas    *Gas
	stack  *Stack
	memory *Memory
	store  *datastore.Store

	accounts        AccountView
	programID       [32]byte
	instructionData []byte

	access *accessList

	reentered bool

	tracer  Tracer
	logSink LogSink

	limits Limits
	runID  uuid.UUID
}

// New constructs a VM bound to programID, accounts, and
// instructionData, with the given resource limits and ambient
// configuration (tracer, log sink). Limits being construction
// parameters is the REDESIGN FLAG resolution called out in spec §9.
func New(programID [32]byte, accounts AccountView, instructionData []byte, limits Limits, cfg Config) *VM {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = NoopTracer{}
	}
	return &VM{
		gas:             NewGas(limits.GasLimit, limits.GasCheckpointCap),
		stack:           NewStack(limits.StackCapacity, limits.FrameCapacity),
		memory:          NewMemory(limits.InitialMemory),
		store:           datastore.NewStore(),
		accounts:        accounts,
		programID:       programID,
		instructionData: instructionData,
		access:          newAccessList(),
		tracer:          tracer,
		logSink:         cfg.LogSink,
		limits:          limits,
		runID:           uuid.New(),
	}
}

// GasUsed returns the gas consumed across the most recent (or current)
// execute call: initial_limit - remaining.
func (vm *VM) GasUsed() uint64 {
	return vm.limits.GasLimit - vm.gas.Remaining()
}

// RunID returns the correlation id assigned at construction, used to
// tag trace/log lines emitted by this VM instance.
func (vm *VM) RunID() uuid.UUID { return vm.runID }

// DebugString dumps the VM's internal state for diagnostics; it is
// never part of the opcode contract.
func (vm *VM) DebugString() string {
	return spew.Sdump(struct {
		PC           int
		GasRemaining uint64
		GasUsed      uint64
		StackDepth   int
		MemorySize   int
	}{vm.pc, vm.gas.Remaining(), vm.GasUsed(), vm.stack.Depth(), vm.memory.Size()})
}

func (vm *VM) fetchU8(code []byte) (byte, error) {
	if vm.pc >= len(code) {
		return 0, ErrInvalidInstruction
	}
	b := code[vm.pc]
	vm.pc++
	return b, nil
}

func (vm *VM) fetchU64(code []byte) (uint64, error) {
	if vm.pc+8 > len(code) {
		return 0, ErrInvalidInstruction
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(code[vm.pc+i]) << (8 * i)
	}
	vm.pc += 8
	return v, nil
}

// Execute runs bytecode to completion: halt, return, revert,
// end-of-bytecode, or a fatal error (spec §4.10, §6). Entry sets the
// reentrancy flag; a nested call on the same VM instance fails
// immediately and leaves all other state untouched. Exit — by any path
// — clears the flag.
func (vm *VM) Execute(code []byte) (*Value, error) {
	if vm.reentered {
		return nil, ErrReentrancyDetected
	}
	vm.reentered = true
	defer func() { vm.reentered = false }()

	vm.pc = 0
	vm.access.reset()

	for vm.pc < len(code) {
		stepPC := vm.pc
		op, err := DecodeOpCode(code[vm.pc])
		if err != nil {
			return nil, newVMError(stepPC, OpCode(code[stepPC]), err)
		}

		cost := BaseGasCost(op)
		if err := vm.gas.Consume(cost); err != nil {
			return nil, newVMError(stepPC, op, err)
		}

		vm.tracer.TraceExecution(ExecutionTrace{
			PC:           stepPC,
			Op:           op,
			GasUsed:      cost,
			GasRemaining: vm.gas.Remaining(),
			StackDepth:   vm.stack.Depth(),
			MemorySize:   vm.memory.Size(),
		})

		vm.pc++

		terminated, result, err := vm.dispatch(op, code)
		if err != nil {
			if rv, ok := err.(*RevertError); ok {
				return nil, rv
			}
			return nil, newVMError(stepPC, op, err)
		}
		if terminated {
			return result, nil
		}
	}
	return nil, nil
}

// dispatch executes the handler for op, consuming any immediates from
// code (advancing pc) and any operands from the stack. Returns
// terminated=true with the optional result when Halt/Return/Revert
// ends execution.
func (vm *VM) dispatch(op OpCode, code []byte) (terminated bool, result *Value, err error) {
	switch op {
	case Nop:
		return false, nil, nil

	case Push1, Push8, Pop, Dup, Swap:
		err = vm.execStack(op, code)
		return false, nil, err

	case Add, Sub, Mul, Div, MulDivOp, Mod, ExpOp, SignExtend,
		And, Or, Xor, Not, Byte, Shl, Shr, Sar:
		err = vm.execArith(op)
		return false, nil, err

	case Load, Store, LoadN, StoreN, Msize, Mload8, Mstore8:
		err = vm.execMemory(op)
		return false, nil, err

	case Jump, JumpI, Call:
		err = vm.execJump(op, code)
		return false, nil, err

	case Return:
		v, rerr := vm.execReturn()
		if rerr != nil {
			return false, nil, rerr
		}
		return true, &v, nil

	case Revert:
		rerr := vm.execRevert()
		return false, nil, rerr

	case Halt:
		return true, nil, nil

	case Transfer, SPLTransfer, CPI, Log, GetBalance, GetOwner, IsWritable, IsSigner:
		err = vm.execHost(op)
		return false, nil, err

	case BTreeCreate, BTreeInsert, BTreeGet, BTreeRemove, BTreeContains,
		BTreeLen, BTreeFirstKey, BTreeLastKey, BTreeClear,
		TrieCreate, TrieInsert, TrieGet, TrieContains, TrieClear,
		GraphCreate, GraphAddNode, GraphAddEdge, GraphGetNode, GraphSetNode,
		GraphGetNeighbors, GraphBFS, GraphClear,
		OhlcvCreate, OhlcvAddBar, OhlcvGetBar, OhlcvSMA,
		HyperCreate, HyperAddNode, HyperCreateEdge, HyperAddNodeToEdge:
		err = vm.execDataStructure(op)
		return false, nil, err
	}
	return false, nil, fmt.Errorf("%w: unhandled opcode %s", ErrInvalidInstruction, op)
}
