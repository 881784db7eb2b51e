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

import "github.com/google/btree"

const mapDegree = 32

type mapEntry struct {
	Key   uint64
	Value uint64
}

func mapLess(a, b mapEntry) bool { return a.Key < b.Key }

// OrderedMap is a u64-key, u64-value map that also supports first/last
// key queries, backed by a B-tree so those queries stay O(log n) even
// for large maps (spec §3, §4.5).
type OrderedMap struct {
	tree *btree.BTreeG[mapEntry]
}

// NewOrderedMap builds an empty ordered map.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{tree: btree.NewG(mapDegree, mapLess)}
}

// Insert sets key to value, returning the previous value (or 0 if
// absent).
func (m *OrderedMap) Insert(key, value uint64) uint64 {
	old, existed := m.tree.ReplaceOrInsert(mapEntry{Key: key, Value: value})
	if existed {
		return old.Value
	}
	return 0
}

// Get returns the value at key (or 0 if absent) and whether it was
// present.
func (m *OrderedMap) Get(key uint64) (uint64, bool) {
	item, ok := m.tree.Get(mapEntry{Key: key})
	return item.Value, ok
}

// Remove deletes key, returning the removed value (or 0) and whether it
// was present.
func (m *OrderedMap) Remove(key uint64) (uint64, bool) {
	item, ok := m.tree.Delete(mapEntry{Key: key})
	return item.Value, ok
}

// Contains reports whether key is present.
func (m *OrderedMap) Contains(key uint64) bool {
	_, ok := m.tree.Get(mapEntry{Key: key})
	return ok
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int { return m.tree.Len() }

// FirstKey returns the smallest key (or 0 if empty) and whether the map
// is non-empty.
func (m *OrderedMap) FirstKey() (uint64, bool) {
	item, ok := m.tree.Min()
	return item.Key, ok
}

// LastKey returns the largest key (or 0 if empty) and whether the map is
// non-empty.
func (m *OrderedMap) LastKey() (uint64, bool) {
	item, ok := m.tree.Max()
	return item.Key, ok
}

// Clear empties the map.
func (m *OrderedMap) Clear() {
	m.tree = btree.NewG(mapDegree, mapLess)
}
