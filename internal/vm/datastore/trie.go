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

import "errors"

// ErrEmptyKey is returned by Trie.Insert for a zero-length key (spec
// §4.5: "Key length zero is an error").
var ErrEmptyKey = errors.New("prefix tree key must not be empty")

type trieNode struct {
	children map[byte]int
	hasValue bool
	value    uint64
}

// Trie is a byte-keyed prefix tree mapping byte-string keys to u64
// values (spec §3, §4.5). Its membership test, Contains, matches whole
// inserted keys only; a key that is merely a prefix of inserted keys is
// reported absent.
type Trie struct {
	nodes []trieNode
}

// NewTrie builds an empty trie (a single root node).
func NewTrie() *Trie {
	return &Trie{nodes: []trieNode{{children: map[byte]int{}}}}
}

// Insert sets key to value. Inserting a key that is a prefix of an
// existing longer key never shadows the longer key's value, since each
// node stores its own independent value slot.
func (t *Trie) Insert(key []byte, value uint64) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	cur := 0
	for _, b := range key {
		next, ok := t.nodes[cur].children[b]
		if !ok {
			next = len(t.nodes)
			t.nodes = append(t.nodes, trieNode{children: map[byte]int{}})
			t.nodes[cur].children[b] = next
		}
		cur = next
	}
	t.nodes[cur].hasValue = true
	t.nodes[cur].value = value
	return nil
}

// Get returns the value stored at key (or 0) and whether key was
// inserted.
func (t *Trie) Get(key []byte) (uint64, bool) {
	if len(key) == 0 {
		return 0, false
	}
	cur := 0
	for _, b := range key {
		next, ok := t.nodes[cur].children[b]
		if !ok {
			return 0, false
		}
		cur = next
	}
	if !t.nodes[cur].hasValue {
		return 0, false
	}
	return t.nodes[cur].value, true
}

// Contains reports whether key was inserted.
func (t *Trie) Contains(key []byte) bool {
	_, ok := t.Get(key)
	return ok
}

// Clear resets the trie to a single empty root.
func (t *Trie) Clear() {
	t.nodes = []trieNode{{children: map[byte]int{}}}
}
