package graph

import (
	"slices"
	"testing"
)

func TestNeighbors(t *testing.T) {
	g := NewDirected[string, int]()
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "c", 2)
	g.AddEdge("c", "c", 3)
	g.AddEdge("a", "b", 4)

	if got := slices.Collect(g.Neighbors("a", Outgoing)); !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("outgoing(a) = %v", got)
	}
	if got := slices.Collect(g.Neighbors("b", Incoming)); !slices.Equal(got, []string{"a"}) {
		t.Errorf("incoming(b) = %v", got)
	}
	if got := slices.Collect(g.Neighbors("c", Incoming)); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("incoming(c) = %v", got)
	}
	if w, ok := g.EdgeWeight("a", "b"); !ok || w != 4 {
		t.Errorf("weight(a, b) = %d, %v", w, ok)
	}
	if _, ok := g.EdgeWeight("b", "a"); ok {
		t.Error("unexpected edge b -> a")
	}
	if g.Len() != 3 {
		t.Errorf("len = %d", g.Len())
	}
}

func TestStronglyConnectedComponents(t *testing.T) {
	g := NewDirected[int, struct{}]()
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 4}, {4, 5}, {5, 4}, {6, 6}} {
		g.AddEdge(e[0], e[1], struct{}{})
	}

	got := StronglyConnectedComponents(g)
	want := [][]int{{4, 5}, {1, 2, 3}, {6}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("component %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIsolated(t *testing.T) {
	g := NewDirected[string, struct{}]()
	edges := [][2]string{
		{"a", "b"}, {"b", "a"}, // dead cycle
		{"c", "d"}, {"d", "c"}, {"e", "c"}, // referenced from e
		{"f", "g"}, {"g", "f"}, // f is a root
	}
	for _, e := range edges {
		g.AddEdge(e[0], e[1], struct{}{})
	}

	got := Isolated(g, map[string]struct{}{"f": {}})
	if len(got) != 1 || !slices.Equal(got[0], []string{"a", "b"}) {
		t.Errorf("isolated = %v", got)
	}
}
