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

// Package hostdriver implements the host-facing wrapper around a VM
// execution: the fixed-layout program-state record and the tagged-union
// instruction dispatch described in spec §6.
package hostdriver

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/lessvm/lessvm-go/common/types"
)

// ProgramStateSize is the fixed encoded length of ProgramState (spec §6).
const ProgramStateSize = 57

// ErrShortRecord is returned by DecodeProgramState for a buffer shorter
// than ProgramStateSize.
var ErrShortRecord = errors.New("program-state record shorter than 57 bytes")

// ProgramState is the per-program bookkeeping record the host driver
// persists to the program account (spec §6):
//
//	offset  size  field
//	0       1     is_initialized
//	1       32    authority public key
//	33      8     total_executions
//	41      8     total_gas_used
//	49      8     last_execution_timestamp (signed)
type ProgramState struct {
	IsInitialized          bool
	Authority              types.PublicKey
	TotalExecutions        uint64
	TotalGasUsed           uint64
	LastExecutionTimestamp int64
}

// DecodeProgramState parses a ProgramStateSize-byte little-endian
// record.
func DecodeProgramState(data []byte) (*ProgramState, error) {
	if len(data) < ProgramStateSize {
		return nil, ErrShortRecord
	}
	s := &ProgramState{
		IsInitialized:          data[0] != 0,
		TotalExecutions:        binary.LittleEndian.Uint64(data[33:41]),
		TotalGasUsed:           binary.LittleEndian.Uint64(data[41:49]),
		LastExecutionTimestamp: int64(binary.LittleEndian.Uint64(data[49:57])),
	}
	copy(s.Authority[:], data[1:33])
	return s, nil
}

// Encode serializes s to its fixed 57-byte little-endian layout.
func (s *ProgramState) Encode() []byte {
	out := make([]byte, ProgramStateSize)
	if s.IsInitialized {
		out[0] = 1
	}
	copy(out[1:33], s.Authority[:])
	binary.LittleEndian.PutUint64(out[33:41], s.TotalExecutions)
	binary.LittleEndian.PutUint64(out[41:49], s.TotalGasUsed)
	binary.LittleEndian.PutUint64(out[49:57], uint64(s.LastExecutionTimestamp))
	return out
}

// RecordExecution applies one execution's accounting per spec §6: the
// host driver increments total_executions, adds the reported gas_used,
// and stamps the current clock.
func (s *ProgramState) RecordExecution(gasUsed uint64, now int64) {
	s.TotalExecutions++
	s.TotalGasUsed += gasUsed
	s.LastExecutionTimestamp = now
}
