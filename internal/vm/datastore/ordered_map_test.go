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

package datastore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedMapInsertGetRemoveRoundTrip(t *testing.T) {
	m := NewOrderedMap()

	prev := m.Insert(100, 42)
	require.Equal(t, uint64(0), prev, "inserting a fresh key returns 0")

	v, ok := m.Get(100)
	require.True(t, ok)
	require.Equal(t, uint64(42), v)
	require.True(t, m.Contains(100))

	prev = m.Insert(100, 99)
	require.Equal(t, uint64(42), prev, "re-inserting an existing key returns the old value")

	removed, ok := m.Remove(100)
	require.True(t, ok)
	require.Equal(t, uint64(99), removed)
	require.False(t, m.Contains(100))

	_, ok = m.Remove(100)
	require.False(t, ok, "removing an absent key reports false")

	t.Logf("✓ ordered map insert/get/remove/contains round-trips correctly")
}

func TestOrderedMapFirstLastKey(t *testing.T) {
	m := NewOrderedMap()
	_, ok := m.FirstKey()
	require.False(t, ok, "empty map has no first key")

	m.Insert(30, 1)
	m.Insert(10, 2)
	m.Insert(20, 3)

	first, ok := m.FirstKey()
	require.True(t, ok)
	require.Equal(t, uint64(10), first)

	last, ok := m.LastKey()
	require.True(t, ok)
	require.Equal(t, uint64(30), last)
	require.Equal(t, 3, m.Len())
}

func TestOrderedMapClear(t *testing.T) {
	m := NewOrderedMap()
	m.Insert(1, 1)
	m.Insert(2, 2)
	m.Clear()
	require.Equal(t, 0, m.Len())
	require.False(t, m.Contains(1))
}
