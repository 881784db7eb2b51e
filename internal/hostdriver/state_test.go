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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lessvm/lessvm-go/common/types"
)

func TestProgramStateEncodeDecodeRoundTrip(t *testing.T) {
	var authority types.PublicKey
	copy(authority[:], []byte("01234567890123456789012345678901"))

	s := &ProgramState{
		IsInitialized:          true,
		Authority:              authority,
		TotalExecutions:        7,
		TotalGasUsed:           123456,
		LastExecutionTimestamp: -42,
	}

	encoded := s.Encode()
	require.Len(t, encoded, ProgramStateSize)

	decoded, err := DecodeProgramState(encoded)
	require.NoError(t, err)
	require.Equal(t, s, decoded)
	t.Logf("✓ program-state record round-trips through Encode/DecodeProgramState")
}

func TestDecodeProgramStateShortBuffer(t *testing.T) {
	_, err := DecodeProgramState(make([]byte, ProgramStateSize-1))
	require.ErrorIs(t, err, ErrShortRecord)
}

func TestRecordExecutionAccumulates(t *testing.T) {
	s := &ProgramState{}
	s.RecordExecution(100, 1000)
	s.RecordExecution(50, 2000)

	require.Equal(t, uint64(2), s.TotalExecutions)
	require.Equal(t, uint64(150), s.TotalGasUsed)
	require.Equal(t, int64(2000), s.LastExecutionTimestamp)
}
