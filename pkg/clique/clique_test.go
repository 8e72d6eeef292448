package clique

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/nbourre/lanparty/pkg/netgraph"
)

const exampleEdges = `kh-tc qp-kh de-cg ka-co yn-aq qp-ub cg-tb vc-aq tb-ka wh-tc yn-cg kh-ub ta-co de-co tc-td tb-wq
wh-td ta-ka td-qp aq-cg wq-ub ub-vc de-ta wq-aq wq-vc wh-yn ka-de kh-ta co-tc wh-qp tb-vc td-yn`

func buildGraph(t testing.TB, edges string) *netgraph.Graph {
	t.Helper()
	g := netgraph.New()
	for _, f := range strings.Fields(edges) {
		u, v, ok := strings.Cut(f, "-")
		if !ok {
			g.AddNode(f)
			continue
		}
		g.AddEdge(u, v)
	}
	return g
}

func cliqueStrings(cs []Clique) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

func triangleStrings(ts []Triangle) []string {
	out := make([]string, len(ts))
	for i, tr := range ts {
		out[i] = tr.String()
	}
	return out
}

func TestExampleNetwork(t *testing.T) {
	g := buildGraph(t, exampleEdges)

	for _, driver := range []Driver{DriverPerNode, DriverSingle} {
		t.Run(string(driver), func(t *testing.T) {
			a := NewAnalyzer(g, WithDriver(driver))

			if got := a.CountTriangles(AnyHasPrefix("t")); got != 7 {
				t.Errorf("CountTriangles(t) = %d, want 7", got)
			}

			pw, err := a.Password(context.Background())
			if err != nil {
				t.Fatalf("Password: %v", err)
			}
			if pw != "co,de,ka,ta" {
				t.Errorf("Password = %q, want co,de,ka,ta", pw)
			}
		})
	}
}

func TestExampleTriangles(t *testing.T) {
	a := NewAnalyzer(buildGraph(t, exampleEdges))

	tests := []struct {
		name string
		pred Predicate
		want []string
	}{
		{
			name: "All",
			pred: All(),
			want: []string{
				"aq,cg,yn", "aq,vc,wq", "co,de,ka", "co,de,ta", "co,ka,ta", "de,ka,ta",
				"kh,qp,ub", "qp,td,wh", "tb,vc,wq", "tc,td,wh", "td,wh,yn", "ub,vc,wq",
			},
		},
		{
			name: "NilPredicate",
			pred: nil,
			want: []string{
				"aq,cg,yn", "aq,vc,wq", "co,de,ka", "co,de,ta", "co,ka,ta", "de,ka,ta",
				"kh,qp,ub", "qp,td,wh", "tb,vc,wq", "tc,td,wh", "td,wh,yn", "ub,vc,wq",
			},
		},
		{
			name: "PrefixT",
			pred: AnyHasPrefix("t"),
			want: []string{
				"co,de,ta", "co,ka,ta", "de,ka,ta", "qp,td,wh", "tb,vc,wq", "tc,td,wh", "td,wh,yn",
			},
		},
		{
			name: "PrefixNone",
			pred: AnyHasPrefix("z"),
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := triangleStrings(a.Triangles(tt.pred))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Triangles = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriangleDedup(t *testing.T) {
	g := buildGraph(t, "a-b b-c c-a")
	a := NewAnalyzer(g)

	calls := 0
	counting := func(x, y, z netgraph.Node) bool {
		calls++
		return true
	}

	got := triangleStrings(a.Triangles(counting))
	if !slices.Equal(got, []string{"a,b,c"}) {
		t.Errorf("Triangles = %v, want [a,b,c]", got)
	}
	// One triangle is reached once per ordered traversal.
	if calls != 6 {
		t.Errorf("predicate called %d times, want 6", calls)
	}
}

func TestMaximalCliquesReference(t *testing.T) {
	tests := []struct {
		name  string
		graph string
		want  []string
	}{
		{
			name:  "Empty",
			graph: "",
			want:  []string{},
		},
		{
			name:  "SingleEdge",
			graph: "a-b",
			want:  []string{"a,b"},
		},
		{
			name:  "IsolatedNodes",
			graph: "x y z",
			want:  []string{"x", "y", "z"},
		},
		{
			name:  "TriangleWithTail",
			graph: "a-b a-c b-c c-d d-e f",
			want:  []string{"a,b,c", "c,d", "d,e", "f"},
		},
		{
			name:  "K4WithTriangle",
			graph: "a-b a-c a-d b-c b-d c-d d-e e-f f-d",
			want:  []string{"a,b,c,d", "d,e,f"},
		},
		{
			name:  "Square",
			graph: "a-b b-c c-d d-a",
			want:  []string{"a,b", "a,d", "b,c", "c,d"},
		},
		{
			name:  "Bowtie",
			graph: "a-b b-c c-a c-d d-e e-c",
			want:  []string{"a,b,c", "c,d,e"},
		},
	}

	for _, tt := range tests {
		for _, driver := range []Driver{DriverPerNode, DriverSingle} {
			t.Run(tt.name+"/"+string(driver), func(t *testing.T) {
				a := NewAnalyzer(buildGraph(t, tt.graph), WithDriver(driver), WithWorkers(2))
				cs, err := a.MaximalCliques(context.Background())
				if err != nil {
					t.Fatalf("MaximalCliques: %v", err)
				}
				got := cliqueStrings(cs)
				if !slices.Equal(got, tt.want) {
					t.Errorf("MaximalCliques = %v, want %v", got, tt.want)
				}
			})
		}
	}
}

func TestLargestEmptyGraph(t *testing.T) {
	a := NewAnalyzer(netgraph.New())

	c, err := a.Largest(context.Background())
	if err != nil {
		t.Fatalf("Largest: %v", err)
	}
	if c.Len() != 0 || c.String() != "" {
		t.Errorf("Largest = %q, want empty", c)
	}
	if n := a.CountTriangles(All()); n != 0 {
		t.Errorf("CountTriangles = %d, want 0", n)
	}
}

func TestLargestTieBreak(t *testing.T) {
	g := buildGraph(t, "x-y y-z z-x a-b b-c c-a m-n")
	a := NewAnalyzer(g)

	pw, err := a.Password(context.Background())
	if err != nil {
		t.Fatalf("Password: %v", err)
	}
	if pw != "a,b,c" {
		t.Errorf("Password = %q, want a,b,c", pw)
	}
}

func TestIdempotent(t *testing.T) {
	a := NewAnalyzer(buildGraph(t, exampleEdges), WithWorkers(4))
	ctx := context.Background()

	first, err := a.MaximalCliques(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for range 5 {
		again, err := a.MaximalCliques(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(cliqueStrings(first), cliqueStrings(again)) {
			t.Fatalf("repeated run differs: %v vs %v", cliqueStrings(first), cliqueStrings(again))
		}
	}
}

func TestMaximalCliquesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, driver := range []Driver{DriverPerNode, DriverSingle} {
		a := NewAnalyzer(buildGraph(t, exampleEdges), WithDriver(driver))
		if _, err := a.MaximalCliques(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("%s: err = %v, want context.Canceled", driver, err)
		}
	}
}

func TestAnalyze(t *testing.T) {
	a := NewAnalyzer(buildGraph(t, exampleEdges), WithDriver(DriverSingle))

	r, err := a.Analyze(context.Background(), "t")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if r.TriangleCount != 7 || len(r.Triangles) != 7 {
		t.Errorf("TriangleCount = %d (%d listed), want 7", r.TriangleCount, len(r.Triangles))
	}
	if r.LargestClique != "co,de,ka,ta" || r.LargestCliqueSize != 4 {
		t.Errorf("LargestClique = %q (%d), want co,de,ka,ta (4)", r.LargestClique, r.LargestCliqueSize)
	}
	if r.Nodes != 16 || r.Edges != 32 {
		t.Errorf("graph size = %d nodes / %d edges, want 16 / 32", r.Nodes, r.Edges)
	}
	if r.Driver != string(DriverSingle) {
		t.Errorf("Driver = %q, want %q", r.Driver, DriverSingle)
	}
}

func TestParseDriver(t *testing.T) {
	tests := []struct {
		in      string
		want    Driver
		wantErr bool
	}{
		{in: "", want: DriverPerNode},
		{in: "per-node", want: DriverPerNode},
		{in: "single", want: DriverSingle},
		{in: "pivot", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDriver(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownDriver) {
				t.Errorf("ParseDriver(%q) err = %v, want ErrUnknownDriver", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseDriver(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestIsMaximal(t *testing.T) {
	g := buildGraph(t, "a-b a-c b-c c-d")

	tests := []struct {
		clique Clique
		want   bool
	}{
		{NewClique("a", "b", "c"), true},
		{NewClique("c", "d"), true},
		{NewClique("a", "b"), false},
		{NewClique("a", "d"), false},
		{Clique{}, false},
	}
	for _, tt := range tests {
		if got := IsMaximal(g, tt.clique); got != tt.want {
			t.Errorf("IsMaximal(%q) = %v, want %v", tt.clique, got, tt.want)
		}
	}
}

// bruteForceMaximal enumerates every subset of the graph's nodes and keeps
// the cliques that cannot be extended. Only usable for tiny graphs.
func bruteForceMaximal(g *netgraph.Graph) []string {
	nodes := g.Nodes()
	var out []string
	for mask := 1; mask < 1<<len(nodes); mask++ {
		var members []netgraph.Node
		for i, n := range nodes {
			if mask&(1<<i) != 0 {
				members = append(members, n)
			}
		}
		if c := NewClique(members...); IsMaximal(g, c) {
			out = append(out, c.String())
		}
	}
	slices.Sort(out)
	return out
}

func graphFromInts(xs []int) *netgraph.Graph {
	g := netgraph.New()
	for i := 0; i+1 < len(xs); i += 2 {
		g.AddEdge(fmt.Sprintf("n%d", xs[i]), fmt.Sprintf("n%d", xs[i+1]))
	}
	return g
}

func TestCliqueProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)
	ctx := context.Background()

	edges := gen.SliceOfN(24, gen.IntRange(0, 7))

	properties.Property("drivers agree", prop.ForAll(
		func(xs []int) bool {
			g := graphFromInts(xs)
			single, err1 := NewAnalyzer(g, WithDriver(DriverSingle)).MaximalCliques(ctx)
			perNode, err2 := NewAnalyzer(g, WithDriver(DriverPerNode), WithWorkers(3)).MaximalCliques(ctx)
			if err1 != nil || err2 != nil {
				return false
			}
			return slices.Equal(cliqueStrings(single), cliqueStrings(perNode))
		},
		edges,
	))

	properties.Property("parallel equals sequential", prop.ForAll(
		func(xs []int) bool {
			g := graphFromInts(xs)
			seq, err1 := NewAnalyzer(g, WithWorkers(1)).MaximalCliques(ctx)
			par, err2 := NewAnalyzer(g, WithWorkers(8)).MaximalCliques(ctx)
			if err1 != nil || err2 != nil {
				return false
			}
			return slices.Equal(cliqueStrings(seq), cliqueStrings(par))
		},
		edges,
	))

	properties.Property("every reported clique is maximal", prop.ForAll(
		func(xs []int) bool {
			g := graphFromInts(xs)
			cs, err := NewAnalyzer(g).MaximalCliques(ctx)
			if err != nil {
				return false
			}
			for _, c := range cs {
				if !IsMaximal(g, c) {
					return false
				}
			}
			return true
		},
		edges,
	))

	properties.Property("matches brute force enumeration", prop.ForAll(
		func(xs []int) bool {
			g := graphFromInts(xs)
			cs, err := NewAnalyzer(g).MaximalCliques(ctx)
			if err != nil {
				return false
			}
			got := cliqueStrings(cs)
			slices.Sort(got)
			want := bruteForceMaximal(g)
			return slices.Equal(got, want)
		},
		edges,
	))

	properties.Property("triangles are cliques and counted once", prop.ForAll(
		func(xs []int) bool {
			g := graphFromInts(xs)
			ts := NewAnalyzer(g).Triangles(nil)

			// Independent count: pairs of neighbors that are themselves
			// connected, summed over nodes, counts each triangle three times.
			perNode := 0
			for _, u := range g.Nodes() {
				nbrs := g.Neighbors(u).Sorted()
				for i := range nbrs {
					for j := i + 1; j < len(nbrs); j++ {
						if g.AreConnected(nbrs[i], nbrs[j]) {
							perNode++
						}
					}
				}
			}
			if perNode != 3*len(ts) {
				return false
			}
			for _, tr := range ts {
				if !IsClique(g, tr[:]) {
					return false
				}
			}
			return true
		},
		edges,
	))

	properties.TestingRun(t)
}
