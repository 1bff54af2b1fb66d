// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

// zddnode is a vertex in the node table. For the two terminals, level is equal
// to the number of variables in the ring, so that terminals always sit below
// every variable.
type zddnode struct {
	level int32 // Index of the variable, possibly with the _MARK bit set
	high  int   // Reference to the then branch (monomials with the variable)
	low   int   // Reference to the else branch (monomials without it)
}

// triple is the key of the unique table.
type triple struct {
	level int32
	high  int
	low   int
}

// The empty set of monomials (the zero polynomial) is always at index 0, and
// the set containing only the empty monomial (the constant one) at index 1.
const (
	zddzero = 0
	zddone  = 1
)

func (b *nodetable) ismarked(n int) bool {
	return (b.nodes[n].level & _MARK) != 0
}

func (b *nodetable) marknode(n int) {
	b.nodes[n].level |= _MARK
}

func (b *nodetable) unmarknode(n int) {
	b.nodes[n].level &= _MAXVAR
}
