// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

// _MAXVAR is the maximal number of variables in a ring. We use only the first
// 21 bits of a level for encoding variable indices and keep bit 22 for
// marking nodes during traversals.
const _MAXVAR int32 = 0x1FFFFF

// _MARK is the bit used to mark nodes during a traversal.
const _MARK int32 = 0x200000

// _DEFAULTNODESIZE is the default initial capacity of the node table, on top of
// the nodes needed for the constants and the variables.
const _DEFAULTNODESIZE int = 1 << 10

// Unbounded is the value of ReducibleUntil meaning that every variable can be
// reduced.
const Unbounded = -1
