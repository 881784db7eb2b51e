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

// Package datastore implements the five aggregate data structures
// exposed directly as VM opcodes (spec §3, §4.5): an ordered map, a
// byte-keyed prefix tree, a directed weighted graph, a time-ordered
// OHLCV series, and a hypergraph. Each lives in its own parallel vector
// of optional instances addressed by a small-integer handle — per
// spec §9, this deliberately avoids a single tagged-union vector.
package datastore

// Store owns the five per-type handle vectors. Handles are process-
// lifetime small integers, never recycled, never pointers (spec §9).
type Store struct {
	maps   []*OrderedMap
	tries  []*Trie
	graphs []*Graph
	series []*Series
	hyper  []*Hypergraph
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{}
}

// Map returns the ordered map at handle h, growing the vector and
// lazily creating the instance if absent.
func (s *Store) Map(h int) *OrderedMap {
	for len(s.maps) <= h {
		s.maps = append(s.maps, nil)
	}
	if s.maps[h] == nil {
		s.maps[h] = NewOrderedMap()
	}
	return s.maps[h]
}

// Trie returns the prefix tree at handle h.
func (s *Store) Trie(h int) *Trie {
	for len(s.tries) <= h {
		s.tries = append(s.tries, nil)
	}
	if s.tries[h] == nil {
		s.tries[h] = NewTrie()
	}
	return s.tries[h]
}

// Graph returns the directed weighted graph at handle h.
func (s *Store) Graph(h int) *Graph {
	for len(s.graphs) <= h {
		s.graphs = append(s.graphs, nil)
	}
	if s.graphs[h] == nil {
		s.graphs[h] = NewGraph()
	}
	return s.graphs[h]
}

// Series returns the OHLCV series at handle h.
func (s *Store) Series(h int) *Series {
	for len(s.series) <= h {
		s.series = append(s.series, nil)
	}
	if s.series[h] == nil {
		s.series[h] = NewSeries()
	}
	return s.series[h]
}

// Hyper returns the hypergraph at handle h.
func (s *Store) Hyper(h int) *Hypergraph {
	for len(s.hyper) <= h {
		s.hyper = append(s.hyper, nil)
	}
	if s.hyper[h] == nil {
		s.hyper[h] = NewHypergraph()
	}
	return s.hyper[h]
}
