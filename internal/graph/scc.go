package graph

import "slices"

// tarjan holds the state of Tarjan's strongly connected components
// algorithm.
type tarjan[N comparable, E any] struct {
	graph   *Directed[N, E]
	index   int
	stack   []N
	onStack map[N]bool
	indices map[N]int
	lowLink map[N]int
	sccs    [][]N
}

// StronglyConnectedComponents returns the strongly connected components of
// g in reverse topological order. Nodes within a component are listed in
// insertion order.
func StronglyConnectedComponents[N comparable, E any](g *Directed[N, E]) [][]N {
	t := &tarjan[N, E]{
		graph:   g,
		onStack: make(map[N]bool),
		indices: make(map[N]int),
		lowLink: make(map[N]int),
	}
	for node := range g.Nodes() {
		if _, visited := t.indices[node]; !visited {
			t.strongConnect(node)
		}
	}

	position := make(map[N]int, len(g.order))
	for i, node := range g.order {
		position[node] = i
	}
	for _, scc := range t.sccs {
		slices.SortFunc(scc, func(a, b N) int { return position[a] - position[b] })
	}
	return t.sccs
}

func (t *tarjan[N, E]) strongConnect(node N) {
	t.indices[node] = t.index
	t.lowLink[node] = t.index
	t.index++
	t.stack = append(t.stack, node)
	t.onStack[node] = true

	for next := range t.graph.Neighbors(node, Outgoing) {
		if _, visited := t.indices[next]; !visited {
			t.strongConnect(next)
			t.lowLink[node] = min(t.lowLink[node], t.lowLink[next])
		} else if t.onStack[next] {
			t.lowLink[node] = min(t.lowLink[node], t.indices[next])
		}
	}

	// node is the root of a component: pop it off the stack.
	if t.lowLink[node] == t.indices[node] {
		var scc []N
		for {
			top := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[top] = false
			scc = append(scc, top)
			if top == node {
				break
			}
		}
		t.sccs = append(t.sccs, scc)
	}
}

// Isolated returns the components of more than one node that nothing
// outside the component points to and that contain no root.
func Isolated[N comparable, E any](g *Directed[N, E], roots map[N]struct{}) [][]N {
	var out [][]N
outer:
	for _, scc := range StronglyConnectedComponents(g) {
		if len(scc) < 2 {
			continue
		}
		for _, node := range scc {
			if _, ok := roots[node]; ok {
				continue outer
			}
			for from := range g.Neighbors(node, Incoming) {
				if !slices.Contains(scc, from) {
					continue outer
				}
			}
		}
		out = append(out, scc)
	}
	return out
}
