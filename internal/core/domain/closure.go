package domain

// ComputeClosures computes, for every root, the transitive closure: the set
// of nodes reachable from it by directed edges. The result always contains an
// entry for every supplied root, even when the closure is empty.
//
// resolvable is the universe of classes known to the classpath. Any reached
// node outside that universe has an unknown dependency set of its own, so it
// contributes StarNode to the closures of all its ancestors. StarNode itself
// is never resolvable.
//
// The computation condenses strongly connected components first, so all
// members of a cycle share one identical, unioned closure, and a suffix
// shared by several roots is only traversed once. Closed over identical edge
// input the result is deterministic. Returned sets may be shared between
// roots of the same component and must be treated as read-only.
func ComputeClosures(g *DependencyGraph, roots []ClassName, resolvable ClassSet) map[ClassName]ClassSet {
	cond := condense(g)

	// Bottom-up closure per component over the condensation DAG.
	memo := make([]ClassSet, len(cond.members))
	var closureOf func(c int) ClassSet
	closureOf = func(c int) ClassSet {
		if memo[c] != nil {
			return memo[c]
		}
		out := make(ClassSet)
		// A cyclic component reaches all of its own members, including the
		// node the traversal started from.
		if cond.cyclic[c] {
			addMembers(out, cond.members[c], resolvable)
		}
		for d := range cond.succ[c] {
			addMembers(out, cond.members[d], resolvable)
			out.AddAll(closureOf(d))
		}
		memo[c] = out
		return out
	}

	empty := make(ClassSet)
	result := make(map[ClassName]ClassSet, len(roots))
	for _, root := range roots {
		c, ok := cond.comp[root]
		if !ok {
			// Root never appeared in any edge: empty closure.
			result[root] = empty
			continue
		}
		result[root] = closureOf(c)
	}
	return result
}

// addMembers inserts component members into a closure, adding StarNode for
// any member whose dependencies are not statically determinable.
func addMembers(out ClassSet, members []ClassName, resolvable ClassSet) {
	for _, m := range members {
		out.Add(m)
		if m.IsStar() || !resolvable.Contains(m) {
			out.Add(StarNode())
		}
	}
}

// condensation is the DAG of strongly connected components of a graph.
type condensation struct {
	comp    map[ClassName]int   // node -> component index
	members [][]ClassName       // component index -> member nodes
	cyclic  []bool              // component has >1 member or a self-loop
	succ    []map[int]struct{}  // condensation edges
}

// condense runs an iterative Tarjan SCC pass. Recursion is avoided because
// dependency chains in real projects can be deep enough to overflow the
// goroutine stack.
func condense(g *DependencyGraph) *condensation {
	c := &condensation{
		comp: make(map[ClassName]int, g.NodeCount()),
	}

	index := make(map[ClassName]int, g.NodeCount())
	lowlink := make(map[ClassName]int, g.NodeCount())
	onStack := make(map[ClassName]bool, g.NodeCount())
	var stack []ClassName
	next := 0

	type frame struct {
		node ClassName
		succ int
	}

	visit := func(start ClassName) {
		work := []frame{{node: start}}
		index[start] = next
		lowlink[start] = next
		next++
		stack = append(stack, start)
		onStack[start] = true

		for len(work) > 0 {
			f := &work[len(work)-1]
			succ := g.Successors(f.node)

			if f.succ < len(succ) {
				t := succ[f.succ]
				f.succ++
				if _, seen := index[t]; !seen {
					index[t] = next
					lowlink[t] = next
					next++
					stack = append(stack, t)
					onStack[t] = true
					work = append(work, frame{node: t})
				} else if onStack[t] {
					if index[t] < lowlink[f.node] {
						lowlink[f.node] = index[t]
					}
				}
				continue
			}

			// All successors handled: pop the frame.
			n := f.node
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := work[len(work)-1].node
				if lowlink[n] < lowlink[parent] {
					lowlink[parent] = lowlink[n]
				}
			}
			if lowlink[n] == index[n] {
				id := len(c.members)
				var members []ClassName
				for {
					m := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[m] = false
					c.comp[m] = id
					members = append(members, m)
					if m == n {
						break
					}
				}
				c.members = append(c.members, members)
			}
		}
	}

	// Deterministic visit order keeps component numbering stable, though the
	// resulting closures are order independent either way.
	for _, name := range g.Nodes().Sorted() {
		n := NewClassName(name)
		if _, seen := index[n]; !seen {
			visit(n)
		}
	}

	// Condensation edges and cyclicity.
	c.cyclic = make([]bool, len(c.members))
	c.succ = make([]map[int]struct{}, len(c.members))
	for i := range c.succ {
		c.succ[i] = make(map[int]struct{})
		c.cyclic[i] = len(c.members[i]) > 1
	}
	for n, id := range c.comp {
		for _, t := range g.Successors(n) {
			tid := c.comp[t]
			if tid == id {
				if t == n {
					c.cyclic[id] = true // self-loop
				}
				continue
			}
			c.succ[id][tid] = struct{}{}
		}
	}
	return c
}

// Unreached returns the classes in the universe that are never the target of
// any edge in the graph. This is a diagnostic aid only; selection never uses
// it.
func Unreached(g *DependencyGraph, universe ClassSet) ClassSet {
	targets := g.Targets()
	out := make(ClassSet)
	for n := range universe {
		if !targets.Contains(n) {
			out.Add(n)
		}
	}
	return out
}
