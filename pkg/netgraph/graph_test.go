package netgraph

import (
	"fmt"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestAddEdge(t *testing.T) {
	tests := []struct {
		name      string
		edges     [][2]Node
		wantNodes []Node
		wantEdges int
	}{
		{
			name:      "Empty",
			wantNodes: []Node{},
		},
		{
			name:      "Single",
			edges:     [][2]Node{{"kh", "tc"}},
			wantNodes: []Node{"kh", "tc"},
			wantEdges: 1,
		},
		{
			name:      "DuplicateBothDirections",
			edges:     [][2]Node{{"kh", "tc"}, {"tc", "kh"}, {"kh", "tc"}},
			wantNodes: []Node{"kh", "tc"},
			wantEdges: 1,
		},
		{
			name:      "SelfLoopIgnored",
			edges:     [][2]Node{{"aa", "aa"}, {"aa", "bb"}},
			wantNodes: []Node{"aa", "bb"},
			wantEdges: 1,
		},
		{
			name:      "EmptyIDIgnored",
			edges:     [][2]Node{{"", "aa"}},
			wantNodes: []Node{},
		},
		{
			name:      "Path",
			edges:     [][2]Node{{"a", "b"}, {"b", "c"}, {"c", "d"}},
			wantNodes: []Node{"a", "b", "c", "d"},
			wantEdges: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			for _, e := range tt.edges {
				g.AddEdge(e[0], e[1])
			}
			if got := g.Nodes(); !slices.Equal(got, tt.wantNodes) {
				t.Errorf("Nodes() = %v, want %v", got, tt.wantNodes)
			}
			if got := g.EdgeCount(); got != tt.wantEdges {
				t.Errorf("EdgeCount() = %d, want %d", got, tt.wantEdges)
			}
			if got := len(g.Edges()); got != tt.wantEdges {
				t.Errorf("len(Edges()) = %d, want %d", got, tt.wantEdges)
			}
		})
	}
}

func TestAddEdgeReportsNewEdges(t *testing.T) {
	g := New()
	if !g.AddEdge("a", "b") {
		t.Error("first AddEdge should report a new edge")
	}
	if g.AddEdge("b", "a") {
		t.Error("reverse AddEdge should report an existing edge")
	}
	if g.AddEdge("a", "a") {
		t.Error("self-loop should not be inserted")
	}
	if g.Neighbors("a").Has("a") {
		t.Error("node must not be its own neighbor")
	}
}

func TestNeighborsUnknownNode(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")

	n := g.Neighbors("zz")
	if n == nil {
		t.Fatal("Neighbors of unknown node should be empty, not nil")
	}
	if n.Len() != 0 {
		t.Errorf("Neighbors(zz) = %v, want empty", n)
	}
	if g.AreConnected("zz", "a") || g.AreConnected("a", "zz") {
		t.Error("unknown node should not be connected")
	}
	if g.Degree("zz") != 0 {
		t.Error("unknown node should have degree 0")
	}
}

func TestEdgesSorted(t *testing.T) {
	g := New()
	g.AddEdge("tc", "kh")
	g.AddEdge("qp", "kh")
	g.AddEdge("de", "cg")

	want := [][2]Node{{"cg", "de"}, {"kh", "qp"}, {"kh", "tc"}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
}

func TestSetOperations(t *testing.T) {
	a := NewSet("a", "b", "c")
	b := NewSet("b", "c", "d")

	if got := a.Intersect(b).String(); got != "b,c" {
		t.Errorf("Intersect = %q, want b,c", got)
	}

	clone := a.Clone()
	clone.Remove("a")
	if !a.Has("a") {
		t.Error("Clone should not share storage with the original")
	}

	var nilSet Set
	if nilSet.Has("a") || nilSet.Len() != 0 {
		t.Error("nil set should behave as empty")
	}
	if got := nilSet.Clone(); got == nil {
		t.Error("Clone of nil set should be non-nil")
	}
}

// edgesFromInts pairs consecutive values into edges over a small alphabet so
// generated graphs are dense enough to contain cycles and triangles.
func edgesFromInts(xs []int) [][2]Node {
	var out [][2]Node
	for i := 0; i+1 < len(xs); i += 2 {
		out = append(out, [2]Node{fmt.Sprintf("n%d", xs[i]), fmt.Sprintf("n%d", xs[i+1])})
	}
	return out
}

func TestGraphInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	build := func(xs []int) *Graph {
		g := New()
		for _, e := range edgesFromInts(xs) {
			g.AddEdge(e[0], e[1])
		}
		return g
	}

	properties.Property("adjacency is symmetric", prop.ForAll(
		func(xs []int) bool {
			g := build(xs)
			for _, u := range g.Nodes() {
				for _, v := range g.Nodes() {
					if g.AreConnected(u, v) != g.AreConnected(v, u) {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 7)),
	))

	properties.Property("no self-loops", prop.ForAll(
		func(xs []int) bool {
			g := build(xs)
			for _, u := range g.Nodes() {
				if g.AreConnected(u, u) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 7)),
	))

	properties.Property("every edge endpoint is a node", prop.ForAll(
		func(xs []int) bool {
			g := build(xs)
			for _, e := range edgesFromInts(xs) {
				if e[0] == e[1] {
					continue
				}
				if !g.HasNode(e[0]) || !g.HasNode(e[1]) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 7)),
	))

	properties.Property("degree sum is twice the edge count", prop.ForAll(
		func(xs []int) bool {
			g := build(xs)
			sum := 0
			for _, u := range g.Nodes() {
				sum += g.Degree(u)
			}
			return sum == 2*g.EdgeCount()
		},
		gen.SliceOf(gen.IntRange(0, 7)),
	))

	properties.TestingRun(t)
}
