package domain_test

import (
	"fmt"
	"math/rand"
	"testing"

	"go.trai.ch/sift/internal/core/domain"
)

func names(ss ...string) []domain.ClassName {
	out := make([]domain.ClassName, len(ss))
	for i, s := range ss {
		out[i] = domain.NewClassName(s)
	}
	return out
}

func universeOf(g *domain.DependencyGraph, extra ...string) domain.ClassSet {
	u := domain.NewClassSet()
	u.AddAll(g.Nodes())
	for _, s := range extra {
		u.Add(domain.NewClassName(s))
	}
	delete(u, domain.StarNode())
	return u
}

func assertClosure(t *testing.T, got domain.ClassSet, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected closure %v, got %v", want, got.Sorted())
	}
	for _, w := range want {
		if !got.Contains(domain.NewClassName(w)) {
			t.Fatalf("expected closure %v, got %v", want, got.Sorted())
		}
	}
}

func TestComputeClosures_Chain(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddEdge(domain.NewEdge("a", "b"))
	g.AddEdge(domain.NewEdge("b", "c"))

	closures := domain.ComputeClosures(g, names("a", "b", "c"), universeOf(g))

	assertClosure(t, closures[domain.NewClassName("a")], "b", "c")
	assertClosure(t, closures[domain.NewClassName("b")], "c")
	assertClosure(t, closures[domain.NewClassName("c")])
}

func TestComputeClosures_Diamond(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddEdge(domain.NewEdge("a", "b"))
	g.AddEdge(domain.NewEdge("a", "c"))
	g.AddEdge(domain.NewEdge("b", "d"))
	g.AddEdge(domain.NewEdge("c", "d"))

	closures := domain.ComputeClosures(g, names("a"), universeOf(g))

	assertClosure(t, closures[domain.NewClassName("a")], "b", "c", "d")
}

func TestComputeClosures_Cycle(t *testing.T) {
	// a <-> b, both reach c. All cycle members share one closure that
	// includes the cycle itself.
	g := domain.NewDependencyGraph()
	g.AddEdge(domain.NewEdge("a", "b"))
	g.AddEdge(domain.NewEdge("b", "a"))
	g.AddEdge(domain.NewEdge("b", "c"))

	closures := domain.ComputeClosures(g, names("a", "b", "c"), universeOf(g))

	assertClosure(t, closures[domain.NewClassName("a")], "a", "b", "c")
	assertClosure(t, closures[domain.NewClassName("b")], "a", "b", "c")
	assertClosure(t, closures[domain.NewClassName("c")])
}

func TestComputeClosures_SelfLoop(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddEdge(domain.NewEdge("a", "a"))

	closures := domain.ComputeClosures(g, names("a"), universeOf(g))

	assertClosure(t, closures[domain.NewClassName("a")], "a")
}

func TestComputeClosures_RootAbsentFromGraph(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddEdge(domain.NewEdge("a", "b"))

	closures := domain.ComputeClosures(g, names("a", "orphan"), universeOf(g, "orphan"))

	if len(closures) != 2 {
		t.Fatalf("expected an entry per root, got %d", len(closures))
	}
	assertClosure(t, closures[domain.NewClassName("orphan")])
}

func TestComputeClosures_UnresolvableTarget(t *testing.T) {
	// c is outside the classpath universe: it poisons the closures of all
	// its ancestors with StarNode, but not the closure of its sibling.
	g := domain.NewDependencyGraph()
	g.AddEdge(domain.NewEdge("a", "b"))
	g.AddEdge(domain.NewEdge("b", "c"))
	g.AddEdge(domain.NewEdge("d", "b"))
	g.AddEdge(domain.NewEdge("e", "f"))

	universe := domain.NewClassSet(names("a", "b", "d", "e", "f")...)
	closures := domain.ComputeClosures(g, names("a", "d", "e"), universe)

	assertClosure(t, closures[domain.NewClassName("a")], "b", "c", "*")
	assertClosure(t, closures[domain.NewClassName("d")], "b", "c", "*")
	assertClosure(t, closures[domain.NewClassName("e")], "f")
}

func TestComputeClosures_ExplicitStarEdge(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddEdge(domain.NewEdge("a", "*"))
	g.AddEdge(domain.NewEdge("b", "a"))

	closures := domain.ComputeClosures(g, names("a", "b"), universeOf(g))

	if !closures[domain.NewClassName("a")].Contains(domain.StarNode()) {
		t.Error("expected StarNode in closure of a")
	}
	if !closures[domain.NewClassName("b")].Contains(domain.StarNode()) {
		t.Error("expected StarNode propagated to closure of b")
	}
}

func TestComputeClosures_SharedSuffix(t *testing.T) {
	// Two roots converge on the same suffix. The suffix closure may be a
	// shared set, so both must see identical contents.
	g := domain.NewDependencyGraph()
	g.AddEdge(domain.NewEdge("r1", "shared"))
	g.AddEdge(domain.NewEdge("r2", "shared"))
	g.AddEdge(domain.NewEdge("shared", "leaf"))

	closures := domain.ComputeClosures(g, names("r1", "r2"), universeOf(g))

	assertClosure(t, closures[domain.NewClassName("r1")], "shared", "leaf")
	assertClosure(t, closures[domain.NewClassName("r2")], "shared", "leaf")
}

// bruteReachable is a straightforward DFS reference implementation.
func bruteReachable(g *domain.DependencyGraph, root domain.ClassName, universe domain.ClassSet) domain.ClassSet {
	out := make(domain.ClassSet)
	var walk func(n domain.ClassName)
	walk = func(n domain.ClassName) {
		for _, t := range g.Successors(n) {
			if t.IsStar() || !universe.Contains(t) {
				out.Add(domain.StarNode())
			}
			if out.Contains(t) {
				continue
			}
			out.Add(t)
			walk(t)
		}
	}
	walk(root)
	return out
}

func TestComputeClosures_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := range 20 {
		g := domain.NewDependencyGraph()
		const nodes = 30
		all := make([]domain.ClassName, nodes)
		for i := range all {
			all[i] = domain.NewClassName(fmt.Sprintf("n%02d", i))
			g.AddNode(all[i])
		}
		for range 60 {
			from := all[rng.Intn(nodes)]
			to := all[rng.Intn(nodes)]
			g.AddEdge(domain.Edge{From: from, To: to})
		}

		// Drop a few nodes from the universe to exercise star poisoning.
		universe := domain.NewClassSet(all...)
		for range 3 {
			delete(universe, all[rng.Intn(nodes)])
		}

		closures := domain.ComputeClosures(g, all, universe)
		for _, root := range all {
			want := bruteReachable(g, root, universe)
			got := closures[root]
			if len(got) != len(want) {
				t.Fatalf("trial %d root %v: expected %v, got %v",
					trial, root, want.Sorted(), got.Sorted())
			}
			for n := range want {
				if !got.Contains(n) {
					t.Fatalf("trial %d root %v: expected %v, got %v",
						trial, root, want.Sorted(), got.Sorted())
				}
			}
		}
	}
}

func TestUnreached(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddEdge(domain.NewEdge("a", "b"))
	g.AddEdge(domain.NewEdge("b", "c"))

	universe := domain.NewClassSet(names("a", "b", "c", "d")...)
	unreached := domain.Unreached(g, universe)

	assertClosure(t, unreached, "a", "d")
}
