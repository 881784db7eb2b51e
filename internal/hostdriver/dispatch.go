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

package hostdriver

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/lessvm/lessvm-go/internal/vm"
	"github.com/lessvm/lessvm-go/log"
)

// InstructionTag is the one-byte discriminant of the host instruction
// wire format (spec §6).
type InstructionTag byte

const (
	TagInitialize     InstructionTag = 0
	TagExecute        InstructionTag = 1
	TagTokenOperation InstructionTag = 2
)

// TokenOpKind is the TokenOperation sub-discriminant (spec §6).
type TokenOpKind byte

const (
	TokenTransfer TokenOpKind = 0
	TokenMint     TokenOpKind = 1
	TokenBurn     TokenOpKind = 2
)

var (
	// ErrEmptyInstruction is returned for a zero-length instruction buffer.
	ErrEmptyInstruction = errors.New("empty instruction buffer")
	// ErrUnknownTag is returned for a tag byte outside {0,1,2}.
	ErrUnknownTag = errors.New("unknown instruction tag")
	// ErrTruncatedPayload is returned when a tag's payload is shorter
	// than its declared or required length.
	ErrTruncatedPayload = errors.New("truncated instruction payload")
	// ErrNotInitialized is returned by Dispatch for Execute/TokenOperation
	// against a program account whose state record has never been
	// initialized.
	ErrNotInitialized = errors.New("program account not initialized")
)

// Instruction is the decoded form of one of the three tagged-union
// variants in spec §6.
type Instruction interface{ isInstruction() }

// InitializeInstruction carries no payload.
type InitializeInstruction struct{}

func (InitializeInstruction) isInstruction() {}

// ExecuteInstruction carries a length-prefixed bytecode buffer.
type ExecuteInstruction struct{ Bytecode []byte }

func (ExecuteInstruction) isInstruction() {}

// TokenOperationInstruction carries an SPL-style operation kind and an
// amount.
type TokenOperationInstruction struct {
	Kind   TokenOpKind
	Amount uint64
}

func (TokenOperationInstruction) isInstruction() {}

// DecodeInstruction parses the tagged-union wire format: one tag byte,
// then a variant-specific payload. Execute's bytecode is prefixed with
// a little-endian u32 length.
func DecodeInstruction(data []byte) (Instruction, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInstruction
	}
	switch InstructionTag(data[0]) {
	case TagInitialize:
		return InitializeInstruction{}, nil

	case TagExecute:
		rest := data[1:]
		if len(rest) < 4 {
			return nil, ErrTruncatedPayload
		}
		n := binary.LittleEndian.Uint32(rest[:4])
		rest = rest[4:]
		if uint32(len(rest)) < n {
			return nil, ErrTruncatedPayload
		}
		bytecode := make([]byte, n)
		copy(bytecode, rest[:n])
		return ExecuteInstruction{Bytecode: bytecode}, nil

	case TagTokenOperation:
		rest := data[1:]
		if len(rest) < 9 {
			return nil, ErrTruncatedPayload
		}
		return TokenOperationInstruction{
			Kind:   TokenOpKind(rest[0]),
			Amount: binary.LittleEndian.Uint64(rest[1:9]),
		}, nil
	}
	return nil, ErrUnknownTag
}

// Dispatcher binds a fixed set of VM resource limits and ambient
// configuration to repeated Dispatch calls, following the teacher's
// pattern of a small stateless-per-call driver struct wrapping
// construction parameters.
type Dispatcher struct {
	Limits vm.Limits
	Config vm.Config
}

// NewDispatcher builds a Dispatcher with default limits and a no-op
// tracer/log sink.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{Limits: vm.DefaultLimits()}
}

// Dispatch decodes one instruction and executes it against programID,
// accounts and state, mutating state per spec §6's accounting rule for
// Execute. now is the caller-supplied clock value stamped into
// LastExecutionTimestamp.
func (d *Dispatcher) Dispatch(data []byte, programID [32]byte, accounts vm.AccountView, state *ProgramState, now int64) (*vm.Value, error) {
	instr, err := DecodeInstruction(data)
	if err != nil {
		return nil, err
	}
	switch ins := instr.(type) {
	case InitializeInstruction:
		state.IsInitialized = true
		return nil, nil

	case ExecuteInstruction:
		if !state.IsInitialized {
			return nil, ErrNotInitialized
		}
		machine := vm.New(programID, accounts, nil, d.Limits, d.Config)
		result, err := machine.Execute(ins.Bytecode)
		state.RecordExecution(machine.GasUsed(), now)
		if err != nil {
			log.Debug("execute failed", "run_id", machine.RunID(), "err", err)
			return nil, err
		}
		return result, nil

	case TokenOperationInstruction:
		if !state.IsInitialized {
			return nil, ErrNotInitialized
		}
		// A token operation is recorded as one execution that used no
		// gas; the dispatch layer itself performs no balance mutation
		// beyond what the host account view already exposes to a
		// program's own bytecode.
		state.RecordExecution(0, now)
		return nil, nil
	}
	return nil, ErrUnknownTag
}
