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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lessvm/lessvm-go/internal/vm"
)

func TestDecodeInstructionInitialize(t *testing.T) {
	instr, err := DecodeInstruction([]byte{byte(TagInitialize)})
	require.NoError(t, err)
	require.Equal(t, InitializeInstruction{}, instr)
}

func TestDecodeInstructionExecute(t *testing.T) {
	bytecode := []byte{1, 2, 3}
	payload := make([]byte, 0, 5+len(bytecode))
	payload = append(payload, byte(TagExecute))
	lenBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(lenBuf, uint32(len(bytecode)))
	payload = append(payload, lenBuf...)
	payload = append(payload, bytecode...)

	instr, err := DecodeInstruction(payload)
	require.NoError(t, err)
	exec, ok := instr.(ExecuteInstruction)
	require.True(t, ok)
	require.Equal(t, bytecode, exec.Bytecode)
}

func TestDecodeInstructionExecuteTruncated(t *testing.T) {
	_, err := DecodeInstruction([]byte{byte(TagExecute), 0, 0})
	require.ErrorIs(t, err, ErrTruncatedPayload)

	payload := append([]byte{byte(TagExecute)}, 10, 0, 0, 0) // declares 10 bytes, provides 0
	_, err = DecodeInstruction(payload)
	require.ErrorIs(t, err, ErrTruncatedPayload)
}

func TestDecodeInstructionTokenOperation(t *testing.T) {
	payload := []byte{byte(TagTokenOperation), byte(TokenMint)}
	amountBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(amountBuf, 500)
	payload = append(payload, amountBuf...)

	instr, err := DecodeInstruction(payload)
	require.NoError(t, err)
	tok, ok := instr.(TokenOperationInstruction)
	require.True(t, ok)
	require.Equal(t, TokenMint, tok.Kind)
	require.Equal(t, uint64(500), tok.Amount)
}

func TestDecodeInstructionEmptyAndUnknownTag(t *testing.T) {
	_, err := DecodeInstruction(nil)
	require.ErrorIs(t, err, ErrEmptyInstruction)

	_, err = DecodeInstruction([]byte{99})
	require.ErrorIs(t, err, ErrUnknownTag)
}

func TestDispatchInitializeThenExecute(t *testing.T) {
	d := NewDispatcher()
	state := &ProgramState{}

	_, err := d.Dispatch([]byte{byte(TagInitialize)}, [32]byte{}, vm.SliceAccountView{}, state, 1000)
	require.NoError(t, err)
	require.True(t, state.IsInitialized)

	// push1 5, push1 3, add, return
	bytecode := []byte{1, 5, 1, 3, 0x10, 0x33}
	payload := make([]byte, 0, 5+len(bytecode))
	payload = append(payload, byte(TagExecute))
	lenBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(lenBuf, uint32(len(bytecode)))
	payload = append(payload, lenBuf...)
	payload = append(payload, bytecode...)

	result, err := d.Dispatch(payload, [32]byte{}, vm.SliceAccountView{}, state, 2000)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, vm.Value(8), *result)
	require.Equal(t, uint64(1), state.TotalExecutions)
	require.Positive(t, state.TotalGasUsed)
	require.Equal(t, int64(2000), state.LastExecutionTimestamp)
}

func TestDispatchExecuteBeforeInitializeFails(t *testing.T) {
	d := NewDispatcher()
	state := &ProgramState{}
	payload := append([]byte{byte(TagExecute)}, 0, 0, 0, 0)
	_, err := d.Dispatch(payload, [32]byte{}, vm.SliceAccountView{}, state, 1)
	require.ErrorIs(t, err, ErrNotInitialized)
}
