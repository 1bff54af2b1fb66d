// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

// markrec marks all the interior nodes reachable from n that were not already
// marked and appends them to visited. Constants are never marked.
func (b *nodetable) markrec(n int, visited []int) []int {
	if n < 2 || b.ismarked(n) {
		return visited
	}
	b.marknode(n)
	visited = append(visited, n)
	visited = b.markrec(b.nodes[n].high, visited)
	return b.markrec(b.nodes[n].low, visited)
}

// unmarkall clears the marks set by a previous call to markrec.
func (b *nodetable) unmarkall(visited []int) {
	for _, n := range visited {
		b.unmarknode(n)
	}
}

// reachable returns the list of interior nodes reachable from one of the roots,
// in depth-first order (then branch first), with each node listed once.
func (b *nodetable) reachable(roots ...int) []int {
	visited := []int{}
	for _, n := range roots {
		visited = b.markrec(n, visited)
	}
	b.unmarkall(visited)
	return visited
}

// nodecount returns the number of distinct nodes, interior and terminal,
// reachable from n.
func (b *nodetable) nodecount(n int) int {
	if n < 2 {
		return 1
	}
	visited := b.reachable(n)
	// every path of a non-constant node ends in the one terminal; the zero
	// terminal is reached only through an empty else branch.
	res := len(visited) + 1
	for _, v := range visited {
		if b.nodes[v].low == zddzero {
			return res + 1
		}
	}
	return res
}

// support returns the sorted list of variables occurring in the nodes
// reachable from the roots.
func (b *nodetable) support(roots ...int) []int {
	used := make([]bool, b.varnum)
	for _, v := range b.reachable(roots...) {
		used[b.nodes[v].level] = true
	}
	res := []int{}
	for k, v := range used {
		if v {
			res = append(res, k)
		}
	}
	return res
}
