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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLoadRoundTrip(t *testing.T) {
	m := NewMemory(16)
	require.NoError(t, m.Store(0, []byte{1, 2, 3, 4}))
	got, err := m.Load(0, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, got)
	require.Equal(t, 4, m.Size())
}

func TestMemoryGrowsOnDemand(t *testing.T) {
	m := NewMemory(16)
	require.NoError(t, m.Store(2000, []byte{9}))
	require.GreaterOrEqual(t, m.Capacity(), 2001)
	require.Equal(t, 2001, m.Size())
	t.Logf("✓ memory doubles capacity to cover an out-of-range write")
}

func TestMemoryReadPastSizeFails(t *testing.T) {
	m := NewMemory(16)
	require.NoError(t, m.Store(0, []byte{1}))
	_, err := m.Load(0, 8)
	require.ErrorIs(t, err, ErrInvalidMemoryAccess, "reads past the logical size fail even within capacity")
}

func TestMemoryCopyOverlapping(t *testing.T) {
	m := NewMemory(16)
	require.NoError(t, m.Store(0, []byte{1, 2, 3, 4, 5}))
	require.NoError(t, m.Copy(2, 0, 3))
	got, err := m.Load(0, 5)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 1, 2, 3}, got)
}

func TestMemoryClear(t *testing.T) {
	m := NewMemory(16)
	require.NoError(t, m.Store(0, []byte{1, 2, 3}))
	m.Clear()
	require.Equal(t, 0, m.Size())
	_, err := m.Load(0, 1)
	require.Error(t, err, "nothing is readable once size drops to zero")
}

func TestExpansionCostMonotonic(t *testing.T) {
	require.Equal(t, uint64(0), ExpansionCost(100, 50), "shrinking never charges")
	first := ExpansionCost(0, 32)
	require.Positive(t, first)
	second := ExpansionCost(32, 64)
	require.Positive(t, second)
	require.Equal(t, ExpansionCost(0, 64), first+second, "cost charged incrementally equals the cost charged in one step")
}
