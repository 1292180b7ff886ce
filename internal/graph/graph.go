// Package graph holds the directed dependency graph used to find bindings
// that are only referenced from within their own cycle.
package graph

import (
	"iter"
	"slices"
)

// Direction represents the direction of an edge.
type Direction int

const (
	Incoming Direction = iota
	Outgoing
)

type edge[N comparable] struct {
	to        N
	direction Direction
}

type edgeKey[N comparable] struct {
	from N
	to   N
}

// Directed is a directed graph whose edges carry a weight. Nodes are kept in
// insertion order so that every traversal is deterministic.
type Directed[N comparable, E any] struct {
	order []N
	nodes map[N][]edge[N]
	edges map[edgeKey[N]]E
}

func NewDirected[N comparable, E any]() *Directed[N, E] {
	return &Directed[N, E]{
		nodes: make(map[N][]edge[N]),
		edges: make(map[edgeKey[N]]E),
	}
}

// AddNode adds a node to the graph.
func (g *Directed[N, E]) AddNode(node N) {
	if _, exists := g.nodes[node]; !exists {
		g.nodes[node] = nil
		g.order = append(g.order, node)
	}
}

// AddEdge adds an edge connecting two nodes, or replaces the weight of an
// existing one.
func (g *Directed[N, E]) AddEdge(from, to N, weight E) {
	g.AddNode(from)
	g.AddNode(to)
	key := edgeKey[N]{from: from, to: to}
	if _, exists := g.edges[key]; !exists {
		g.nodes[from] = append(g.nodes[from], edge[N]{to: to, direction: Outgoing})
		if from != to {
			g.nodes[to] = append(g.nodes[to], edge[N]{to: from, direction: Incoming})
		}
	}
	g.edges[key] = weight
}

// Nodes returns an iterator over the nodes in insertion order.
func (g *Directed[N, E]) Nodes() iter.Seq[N] {
	return slices.Values(g.order)
}

// Len returns the number of nodes.
func (g *Directed[N, E]) Len() int {
	return len(g.order)
}

// Neighbors returns an iterator over the neighbors of a node in the given
// direction. A self loop is reported in both directions.
func (g *Directed[N, E]) Neighbors(node N, direction Direction) iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, e := range g.nodes[node] {
			if e.direction == direction || e.to == node {
				if !yield(e.to) {
					return
				}
			}
		}
	}
}

// EdgeWeight returns the weight of the edge between two nodes.
func (g *Directed[N, E]) EdgeWeight(from, to N) (E, bool) {
	weight, exists := g.edges[edgeKey[N]{from: from, to: to}]
	return weight, exists
}
