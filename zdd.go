// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

import (
	log "github.com/sirupsen/logrus"
)

// nodetable is the node substrate of a ring: a zero-suppressed decision diagram
// stored in a slice, together with a unique table implemented with the runtime
// hashmap. Nodes are never moved nor freed, so an index stays valid for the
// whole lifetime of the ring.
type nodetable struct {
	varnum       int32          // Number of variables; also the level of the two terminals
	nodes        []zddnode      // List of all the nodes. Constants are always kept at index 0 and 1
	unique       map[triple]int // Unicity table, used to associate each triple to a single node
	produced     int            // Total number of new nodes ever produced
	uniqueAccess int            // accesses to the unique node table
	uniqueHit    int            // entries actually found in the unique node table
	uniqueMiss   int            // entries not found in the unique node table
}

func makenodetable(varnum int32, nodesize int) nodetable {
	b := nodetable{varnum: varnum}
	b.nodes = make([]zddnode, 2, nodesize)
	b.unique = make(map[triple]int, nodesize)
	// The terminals are not added to the unique table.
	b.nodes[zddzero] = zddnode{level: varnum, high: zddzero, low: zddzero}
	b.nodes[zddone] = zddnode{level: varnum, high: zddone, low: zddone}
	return b
}

// makenode returns the unique node for the triple (level, high, low). Following
// the zero-suppression rule, we return low when the then branch is empty.
func (b *nodetable) makenode(level int32, high, low int) int {
	if high == zddzero {
		return low
	}
	if _DEBUG {
		if level >= b.level(high) || level >= b.level(low) {
			log.Panicf("makenode(%d, %d, %d): unordered children", level, high, low)
		}
	}
	b.uniqueAccess++
	key := triple{level: level, high: high, low: low}
	if res, ok := b.unique[key]; ok {
		b.uniqueHit++
		return res
	}
	b.uniqueMiss++
	if len(b.nodes) == cap(b.nodes) {
		log.Debugf("node table full at %d nodes, resizing", len(b.nodes))
	}
	b.nodes = append(b.nodes, zddnode{level: level, high: high, low: low})
	b.produced++
	res := len(b.nodes) - 1
	b.unique[key] = res
	return res
}

func (b *nodetable) size() int {
	return len(b.nodes)
}

func (b *nodetable) level(n int) int32 {
	return b.nodes[n].level
}

func (b *nodetable) high(n int) int {
	return b.nodes[n].high
}

func (b *nodetable) low(n int) int {
	return b.nodes[n].low
}

// split returns the else and then branches of n with respect to the variable
// at level index, where index is lower or equal to the level of n.
func (b *nodetable) split(n int, index int32) (int, int) {
	if b.nodes[n].level == index {
		return b.nodes[n].low, b.nodes[n].high
	}
	return n, zddzero
}
