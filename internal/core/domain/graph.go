package domain

import (
	"bufio"
	"io"
	"sort"

	"go.trai.ch/zerr"
)

// Edge is an ordered pair meaning From statically depends on To.
type Edge struct {
	From ClassName
	To   ClassName
}

// NewEdge creates an edge between two class names given as strings.
func NewEdge(from, to string) Edge {
	return Edge{From: NewClassName(from), To: NewClassName(to)}
}

// DependencyGraph is a directed graph over class names. Edges may form
// cycles; the graph is not guaranteed acyclic. The graph is rebuilt from raw
// edges every cycle and persisted only for inspection.
type DependencyGraph struct {
	nodes ClassSet
	succ  map[ClassName][]ClassName
	edges int
}

// NewDependencyGraph creates a new empty DependencyGraph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		nodes: make(ClassSet),
		succ:  make(map[ClassName][]ClassName),
	}
}

// AddNode adds an isolated node. Adding an existing node is a no-op.
func (g *DependencyGraph) AddNode(n ClassName) {
	g.nodes.Add(n)
}

// AddEdge inserts a directed edge, adding both endpoints as nodes.
// Duplicate edges are ignored.
func (g *DependencyGraph) AddEdge(e Edge) {
	g.nodes.Add(e.From)
	g.nodes.Add(e.To)
	for _, t := range g.succ[e.From] {
		if t == e.To {
			return
		}
	}
	g.succ[e.From] = append(g.succ[e.From], e.To)
	g.edges++
}

// HasNode reports whether the node is present in the graph.
func (g *DependencyGraph) HasNode(n ClassName) bool {
	return g.nodes.Contains(n)
}

// Successors returns the direct dependency targets of a node.
func (g *DependencyGraph) Successors(n ClassName) []ClassName {
	return g.succ[n]
}

// Nodes returns every node in the graph, in no particular order.
func (g *DependencyGraph) Nodes() ClassSet {
	return g.nodes
}

// NodeCount returns the number of nodes.
func (g *DependencyGraph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct edges.
func (g *DependencyGraph) EdgeCount() int {
	return g.edges
}

// Targets returns the set of nodes that appear as the target of at least one
// edge. Classes never targeted by any edge are "unreached" diagnostics.
func (g *DependencyGraph) Targets() ClassSet {
	targets := make(ClassSet)
	for _, succ := range g.succ {
		for _, t := range succ {
			targets.Add(t)
		}
	}
	return targets
}

// Write serializes the graph as sorted "from -> to" lines for debugging.
// The output is deterministic for identical edge input and is never read back.
func (g *DependencyGraph) Write(w io.Writer) error {
	lines := make([]string, 0, g.edges)
	for from, succ := range g.succ {
		for _, to := range succ {
			lines = append(lines, from.String()+" -> "+to.String())
		}
	}
	sort.Strings(lines)

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return zerr.Wrap(err, "failed to write graph")
		}
	}
	if err := bw.Flush(); err != nil {
		return zerr.Wrap(err, "failed to flush graph")
	}
	return nil
}
