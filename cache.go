// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	log "github.com/sirupsen/logrus"
)

// table is the storage behind an operation cache. The default implementation
// is an unbounded runtime hashmap, so that entries are never lost during the
// lifetime of a ring. When a cache size is given in the ring configuration, we
// use an LRU table instead and old entries may be evicted.
type table[K comparable, V any] interface {
	find(key K) (V, bool)
	insert(key K, val V)
	len() int
}

type maptable[K comparable, V any] map[K]V

func (t maptable[K, V]) find(key K) (V, bool) {
	v, ok := t[key]
	return v, ok
}

func (t maptable[K, V]) insert(key K, val V) {
	t[key] = val
}

func (t maptable[K, V]) len() int {
	return len(t)
}

type lrutable[K comparable, V any] struct {
	*lru.Cache
}

func (t lrutable[K, V]) find(key K) (V, bool) {
	if v, ok := t.Get(key); ok {
		return v.(V), true
	}
	var zero V
	return zero, false
}

func (t lrutable[K, V]) insert(key K, val V) {
	t.Add(key, val)
}

func (t lrutable[K, V]) len() int {
	return t.Len()
}

func maketable[K comparable, V any](size int) table[K, V] {
	if size > 0 {
		c, err := lru.New(size)
		if err == nil {
			return lrutable[K, V]{c}
		}
		log.Debugf("cannot allocate LRU cache of size %d: %v", size, err)
	}
	return maptable[K, V]{}
}

// ************************************************************

// opcache is the cache for one family of operations. It records hit and miss
// counts for statistics.
type opcache[K comparable, V any] struct {
	name   string
	table  table[K, V]
	opHit  int // entries found in the cache
	opMiss int // entries not found in the cache
}

func newopcache[K comparable, V any](name string, size int) *opcache[K, V] {
	return &opcache[K, V]{name: name, table: maketable[K, V](size)}
}

func (c *opcache[K, V]) find(key K) (V, bool) {
	v, ok := c.table.find(key)
	if ok {
		c.opHit++
	} else {
		c.opMiss++
	}
	return v, ok
}

func (c *opcache[K, V]) insert(key K, val V) {
	c.table.insert(key, val)
}

func (c *opcache[K, V]) stat() CacheStat {
	return CacheStat{Name: c.name, Entries: c.table.len(), Hits: c.opHit, Misses: c.opMiss}
}

// unarycache maps a node to a value.
type unarycache[V any] struct {
	*opcache[int, V]
}

// binarycache maps a pair of nodes to a node. When the operation is
// commutative, operands are sorted before any lookup or insertion, so that
// computing (q, p) after (p, q) is always a hit.
type binarycache struct {
	*opcache[[2]int, int]
	commutative bool
}

func (c binarycache) key(a, b int) [2]int {
	if c.commutative && a > b {
		return [2]int{b, a}
	}
	return [2]int{a, b}
}

func (c binarycache) lookup(a, b int) (int, bool) {
	return c.find(c.key(a, b))
}

func (c binarycache) store(a, b, res int) int {
	c.insert(c.key(a, b), res)
	return res
}

// ************************************************************

// Hash value modifiers to distinguish between the families of binary
// operations.
const (
	cacheidADD int = iota
	cacheidMULTIPLY
	cacheidFASTMULTIPLY
	cacheidDIVIDE
	cacheidSUBSET0
	cacheidSUBSET1
	cacheidBINARY // number of binary caches
)

var cachenames = [cacheidBINARY]string{
	cacheidADD:          "add",
	cacheidMULTIPLY:     "multiply",
	cacheidFASTMULTIPLY: "multiply-fast",
	cacheidDIVIDE:       "divide",
	cacheidSUBSET0:      "subset0",
	cacheidSUBSET1:      "subset1",
}

// caches gathers all the operation caches of a ring. Lead caches are created
// on demand, one for each term order, so that changing the ordering of a ring
// never invalidates a previous result.
type caches struct {
	cachesize  int
	binary     [cacheidBINARY]binarycache
	degcache   unarycache[int]
	leadtab    map[Order]unarycache[int]
	leadexptab map[Order]unarycache[Exponent]
	ordering   []Order // orders in the sequence they were first used
}

func (c *caches) cacheinit(size int) {
	c.cachesize = size
	for k := range c.binary {
		c.binary[k] = binarycache{
			opcache:     newopcache[[2]int, int](cachenames[k], size),
			commutative: k != cacheidDIVIDE && k != cacheidSUBSET0 && k != cacheidSUBSET1,
		}
	}
	c.degcache = unarycache[int]{newopcache[int, int]("degree", size)}
	c.leadtab = make(map[Order]unarycache[int])
	c.leadexptab = make(map[Order]unarycache[Exponent])
}

func (c *caches) leadcache(o Order) unarycache[int] {
	res, ok := c.leadtab[o]
	if !ok {
		res = unarycache[int]{newopcache[int, int]("lead-"+o.String(), c.cachesize)}
		c.leadtab[o] = res
		c.leadexptab[o] = unarycache[Exponent]{newopcache[int, Exponent]("leadexp-"+o.String(), c.cachesize)}
		c.ordering = append(c.ordering, o)
	}
	return res
}

func (c *caches) leadexpcache(o Order) unarycache[Exponent] {
	c.leadcache(o)
	return c.leadexptab[o]
}

func (c *caches) stats() []CacheStat {
	res := make([]CacheStat, 0, cacheidBINARY+1+2*len(c.ordering))
	for _, v := range c.binary {
		res = append(res, v.stat())
	}
	res = append(res, c.degcache.stat())
	for _, o := range c.ordering {
		res = append(res, c.leadtab[o].stat(), c.leadexptab[o].stat())
	}
	return res
}

// ************************************************************

// CacheStat stores status information about the usage of one operation cache.
type CacheStat struct {
	Name    string // family of operations, such as "multiply" or "lead-dlex"
	Entries int    // number of entries currently stored
	Hits    int    // entries found in the cache
	Misses  int    // entries not found in the cache
}

func (c CacheStat) String() string {
	return fmt.Sprintf("%-16s entries: %-8d hits: %-8d miss: %d", c.Name, c.Entries, c.Hits, c.Misses)
}
