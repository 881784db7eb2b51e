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
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring"
	"github.com/emicklei/dot"
)

// MaxGraphNodes is the admission limit on distinct node ids per graph
// (spec §3, §4.5).
const MaxGraphNodes = 1024

// ErrGraphFull is returned by AddNode (directly or via edge
// auto-creation) once a graph already holds MaxGraphNodes nodes.
var ErrGraphFull = errors.New("graph node-count admission limit exceeded")

// ErrNodeAbsent is returned by SetNode for a node id that was never
// added.
var ErrNodeAbsent = errors.New("graph node does not exist")

// Edge is one directed, weighted edge.
type Edge struct {
	To     uint64
	Weight uint64
}

// Graph is a directed weighted graph of u64 node ids to u64 values,
// with u64-weighted directed edges (spec §3, §4.5). Edge insertion
// auto-creates both endpoints at value 0. Node ids may be sparse and
// arbitrary; a dense slot index (assigned in creation order) is kept
// alongside them so BFS's visited-set can use a compact Roaring bitmap
// instead of a generic hash set.
type Graph struct {
	values map[uint64]uint64
	slot   map[uint64]uint32
	order  []uint64
	edges  map[uint64][]Edge // insertion order preserved per node
}

// NewGraph builds an empty graph.
func NewGraph() *Graph {
	return &Graph{
		values: map[uint64]uint64{},
		slot:   map[uint64]uint32{},
		edges:  map[uint64][]Edge{},
	}
}

// AddNode inserts or updates node id with value. Fails with ErrGraphFull
// if the node is new and the graph already holds MaxGraphNodes nodes.
func (g *Graph) AddNode(id, value uint64) error {
	if _, exists := g.values[id]; !exists {
		if len(g.values) >= MaxGraphNodes {
			return ErrGraphFull
		}
		g.slot[id] = uint32(len(g.order))
		g.order = append(g.order, id)
	}
	g.values[id] = value
	if _, ok := g.edges[id]; !ok {
		g.edges[id] = nil
	}
	return nil
}

// AddEdge adds a from->to edge of the given weight, auto-creating
// either endpoint at value 0 if missing.
func (g *Graph) AddEdge(from, to, weight uint64) error {
	if _, ok := g.values[from]; !ok {
		if err := g.AddNode(from, 0); err != nil {
			return err
		}
	}
	if _, ok := g.values[to]; !ok {
		if err := g.AddNode(to, 0); err != nil {
			return err
		}
	}
	g.edges[from] = append(g.edges[from], Edge{To: to, Weight: weight})
	return nil
}

// GetNode returns the value of node id (or 0) and whether it exists.
func (g *Graph) GetNode(id uint64) (uint64, bool) {
	v, ok := g.values[id]
	return v, ok
}

// SetNode updates an existing node's value. Fails with ErrNodeAbsent if
// the node was never added.
func (g *Graph) SetNode(id, value uint64) error {
	if _, ok := g.values[id]; !ok {
		return ErrNodeAbsent
	}
	g.values[id] = value
	return nil
}

// GetNeighbors returns node id's outgoing edges in the order they were
// added.
func (g *Graph) GetNeighbors(id uint64) []Edge {
	return g.edges[id]
}

// BFS performs a breadth-first traversal from start using a FIFO queue,
// breaking ties by edge-insertion order, and returns the visited nodes
// in traversal order (start first). Returns nil if start does not
// exist.
func (g *Graph) BFS(start uint64) []uint64 {
	if _, ok := g.values[start]; !ok {
		return nil
	}
	visited := roaring.New()
	visited.Add(g.slot[start])

	queue := []uint64{start}
	var result []uint64
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		result = append(result, n)
		for _, e := range g.edges[n] {
			s := g.slot[e.To]
			if !visited.Contains(s) {
				visited.Add(s)
				queue = append(queue, e.To)
			}
		}
	}
	return result
}

// Clear empties the graph.
func (g *Graph) Clear() {
	g.values = map[uint64]uint64{}
	g.slot = map[uint64]uint32{}
	g.order = nil
	g.edges = map[uint64][]Edge{}
}

// DOT renders the graph in Graphviz dot format for debugging/tracing;
// it is not part of any opcode contract.
func (g *Graph) DOT() string {
	d := dot.NewGraph(dot.Directed)
	nodes := make(map[uint64]dot.Node, len(g.order))
	for _, id := range g.order {
		nodes[id] = d.Node(fmt.Sprintf("%d", id)).Label(fmt.Sprintf("%d (%d)", id, g.values[id]))
	}
	for from, es := range g.edges {
		for _, e := range es {
			d.Edge(nodes[from], nodes[e.To]).Label(fmt.Sprintf("%d", e.Weight))
		}
	}
	return d.String()
}
