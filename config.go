// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

// configs is used to store the values of different parameters of a ring
type configs struct {
	varnum    int              // number of variables
	nodesize  int              // initial capacity of the node table
	cachesize int              // maximal number of entries in each operation cache (0 if no limit)
	fastmul   bool             // use the dense multiplication when both operands share their top variable
	order     Order            // term order used for leading terms
	names     []string         // names of the variables
	reduction ReductionOptions // options read by reduction strategies
}

// Option is the type of the configuration options accepted by New.
type Option = func(*configs)

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	c.nodesize = varnum + 2 + _DEFAULTNODESIZE
	c.order = Lex
	c.reduction = DefaultReductionOptions()
	return c
}

// Nodesize is a configuration option (function). Used as a parameter in New it
// sets a preferred initial capacity for the node table. The table grows
// whenever needed, so this value only saves a few allocations.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size >= c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New it
// sets a limit on the number of entries in each operation cache, in which case
// we evict the least recently used entries. The default value (0) means that
// caches are never limited and that results are kept during the whole
// lifetime of the ring.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		c.cachesize = size
	}
}

// FastMultiplication is a configuration option (function). When enabled, the
// product of two polynomials with the same top variable uses one less recursive
// product (see Ring.Multiply). Both modes compute the same results and use
// separate caches.
func FastMultiplication(enable bool) func(*configs) {
	return func(c *configs) {
		c.fastmul = enable
	}
}

// Ordering is a configuration option (function) that sets the term order of
// the ring. The default is Lex.
func Ordering(o Order) func(*configs) {
	return func(c *configs) {
		c.order = o
	}
}

// Names is a configuration option (function) that sets the names of the first
// variables of the ring. Other variables keep their default name, x0, x1, ...
func Names(names ...string) func(*configs) {
	return func(c *configs) {
		c.names = names
	}
}

// Reduction is a configuration option (function) that sets the reduction
// options stored in the ring.
func Reduction(opts ReductionOptions) func(*configs) {
	return func(c *configs) {
		c.reduction = opts
	}
}
