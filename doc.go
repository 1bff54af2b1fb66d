// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package boolpoly computes with Boolean polynomials, that is multilinear
polynomials with coefficients in GF(2), where x*x = x and x + x = 0.

Basics

Each polynomial belongs to a Ring, created with a fixed number of variables,
Varnum, using the function New. Variables are identified by an (integer) index
in the interval [0..Varnum). A polynomial is identified with its set of
monomials, and this set is encoded as a node in a zero-suppressed decision
diagram owned by the ring. Nodes are shared and kept in a canonical form, which
means that two equal polynomials are always represented by the same node.
Hence comparing polynomials costs a single integer comparison.

Operations such as Add, Multiply, Divide, Deg and Lead work recursively on the
structure of the diagram. They store every intermediate result in operation
caches owned by the ring, keyed by the identity of the operands, so that a node
shared by several parts of a diagram is processed only once. The cost of an
operation depends on the size of the diagrams, not on the number of monomials.

Term orders

Leading terms are computed for the active ordering of a ring: Lex (lp), DegLex
(dlex) or DegRevLexAsc (dp_asc). All of them use the same algorithm, that picks
the then or the else branch of each node by comparing their degrees with a
DegreeComparator. Each ordering uses its own cache, so it is possible to switch
between orderings with ChangeOrdering without losing previous results.

Use of build tags

To check preconditions that are not verified otherwise, such as the validity
of a degree bound or the use of polynomials from different rings, you can
compile your executable with the build tag `debug`. Failing checks panic.

Memory management

Nodes are never reclaimed during the lifetime of a ring, which means that all
cached results stay valid. A ring and its caches are collected by the Go
runtime when they are no longer referenced. A Ring is not safe for concurrent
use; computations are recursive and their depth is bounded by the number of
variables.
*/
package boolpoly
