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

	"github.com/pkg/errors"
)

// Sentinel errors for the fatal error taxonomy (spec §7). Every execute
// call that hits one of these unwinds immediately; none are recoverable
// inside the VM.
var (
	ErrStackOverflow        = errors.New("stack overflow")
	ErrStackUnderflow       = errors.New("stack underflow")
	ErrInvalidMemoryAccess  = errors.New("invalid memory access")
	ErrOutOfGas             = errors.New("out of gas")
	ErrInvalidInstruction   = errors.New("invalid instruction")
	ErrInvalidAccount       = errors.New("invalid account")
	ErrArithmeticOverflow   = errors.New("arithmetic overflow")
	ErrReentrancyDetected   = errors.New("reentrancy detected")
	ErrInvalidDataStructure = errors.New("invalid data-structure operation")
	ErrDivisionByZero       = errors.New("division by zero")
)

// RevertError carries the u32 error code an explicit Revert opcode popped
// off the stack (spec §4.8, §7 item 10).
type RevertError struct {
	Code uint32
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("reverted with code %d", e.Code)
}

// VMError wraps a sentinel cause with the opcode and program counter it
// occurred at, so a host driver can log "what, where" without unwinding
// a stack trace.
type VMError struct {
	Op  OpCode
	PC  int
	Err error
}

func (e *VMError) Error() string {
	return fmt.Sprintf("pc=%d op=%s: %v", e.PC, e.Op, e.Err)
}

func (e *VMError) Unwrap() error { return e.Err }

func newVMError(pc int, op OpCode, cause error) *VMError {
	return &VMError{Op: op, PC: pc, Err: errors.WithStack(cause)}
}
