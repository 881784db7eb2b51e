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
	"fmt"
	"sort"

	"github.com/emicklei/dot"
	mapset "github.com/deckarep/golang-set/v2"
)

// Hypergraph is a set of nodes and a set of hyperedges, each hyperedge a
// set of node ids with an associated weight (spec §3, §4.5). Both the
// per-edge node membership and the per-node reverse index are kept as
// sets so NodesInEdge/EdgesContainingNode stay O(1) amortized instead
// of scanning every edge.
type Hypergraph struct {
	nodeValues  map[uint64]uint64
	edgeWeights map[uint64]uint64
	edgeNodes   map[uint64]mapset.Set[uint64]
	nodeEdges   map[uint64]mapset.Set[uint64]
}

// NewHypergraph builds an empty hypergraph.
func NewHypergraph() *Hypergraph {
	return &Hypergraph{
		nodeValues:  map[uint64]uint64{},
		edgeWeights: map[uint64]uint64{},
		edgeNodes:   map[uint64]mapset.Set[uint64]{},
		nodeEdges:   map[uint64]mapset.Set[uint64]{},
	}
}

// AddNode inserts or updates node id with value.
func (h *Hypergraph) AddNode(id, value uint64) {
	h.nodeValues[id] = value
	if _, ok := h.nodeEdges[id]; !ok {
		h.nodeEdges[id] = mapset.NewSet[uint64]()
	}
}

// CreateHyperedge creates (or replaces) hyperedge id with weight,
// starting empty.
func (h *Hypergraph) CreateHyperedge(id, weight uint64) {
	h.edgeNodes[id] = mapset.NewSet[uint64]()
	h.edgeWeights[id] = weight
}

// AddNodeToEdge adds nodeID to hyperedge edgeID, auto-creating either
// missing side: a missing node gets value 0, a missing edge gets weight
// 1 (spec §4.5).
func (h *Hypergraph) AddNodeToEdge(edgeID, nodeID uint64) {
	if _, ok := h.nodeValues[nodeID]; !ok {
		h.AddNode(nodeID, 0)
	}
	if _, ok := h.edgeNodes[edgeID]; !ok {
		h.CreateHyperedge(edgeID, 1)
	}
	h.edgeNodes[edgeID].Add(nodeID)
	h.nodeEdges[nodeID].Add(edgeID)
}

// NodesInEdge returns the node ids in hyperedge edgeID, sorted
// ascending for determinism, and whether the edge exists.
func (h *Hypergraph) NodesInEdge(edgeID uint64) ([]uint64, bool) {
	set, ok := h.edgeNodes[edgeID]
	if !ok {
		return nil, false
	}
	nodes := set.ToSlice()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	return nodes, true
}

// EdgesContainingNode returns, sorted ascending, every hyperedge id that
// contains nodeID.
func (h *Hypergraph) EdgesContainingNode(nodeID uint64) []uint64 {
	set, ok := h.nodeEdges[nodeID]
	if !ok {
		return nil
	}
	edges := set.ToSlice()
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	return edges
}

// Clear empties the hypergraph.
func (h *Hypergraph) Clear() {
	h.nodeValues = map[uint64]uint64{}
	h.edgeWeights = map[uint64]uint64{}
	h.edgeNodes = map[uint64]mapset.Set[uint64]{}
	h.nodeEdges = map[uint64]mapset.Set[uint64]{}
}

// DOT renders the hypergraph as a bipartite node/edge graph in Graphviz
// dot format for debugging; not part of any opcode contract.
func (h *Hypergraph) DOT() string {
	d := dot.NewGraph(dot.Undirected)
	nodes := make(map[uint64]dot.Node, len(h.nodeValues))
	for id, v := range h.nodeValues {
		nodes[id] = d.Node(fmt.Sprintf("n%d", id)).Label(fmt.Sprintf("%d (%d)", id, v))
	}
	for edgeID, members := range h.edgeNodes {
		edgeNode := d.Node(fmt.Sprintf("e%d", edgeID)).
			Attr("shape", "diamond").
			Label(fmt.Sprintf("e%d w=%d", edgeID, h.edgeWeights[edgeID]))
		for _, nodeID := range members.ToSlice() {
			d.Edge(edgeNode, nodes[nodeID])
		}
	}
	return d.String()
}
