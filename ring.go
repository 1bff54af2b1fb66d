// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Ring is a ring of Boolean polynomials over a fixed number of variables. It
// owns the node table where all its polynomials are stored, together with the
// operation caches used by the algebra. Cached results remain valid as long as
// the ring exists. A Ring is not safe for concurrent use.
type Ring struct {
	nodetable                  // Node substrate
	caches                     // Operation caches
	names     []string         // Variable names
	index     map[string]int   // Reverse map from names to variable indices
	varset    []int            // Nodes for the variables, created with the ring
	order     Order            // Active term order
	fastmul   bool             // Dense multiplication when both operands share their top variable
	options   ReductionOptions // Options for reduction strategies
}

// New returns a new ring with varnum variables, indexed from 0 to varnum-1. We
// return an error if varnum is not in the range [1.._MAXVAR] or if more names
// than variables are given. The ring uses the Lex ordering unless a different
// one is set with the Ordering option.
func New(varnum int, options ...func(*configs)) (*Ring, error) {
	if (varnum < 1) || (varnum > int(_MAXVAR)) {
		return nil, errors.Errorf("bad number of variables (%d)", varnum)
	}
	c := makeconfigs(varnum)
	for _, f := range options {
		f(c)
	}
	if len(c.names) > varnum {
		return nil, errors.Errorf("too many variable names (%d) for %d variables", len(c.names), varnum)
	}
	if c.order.String() == "unknown" {
		return nil, errors.Errorf("unknown ordering (%d)", c.order)
	}
	r := &Ring{
		nodetable: makenodetable(int32(varnum), c.nodesize),
		order:     c.order,
		fastmul:   c.fastmul,
		options:   c.reduction,
	}
	r.cacheinit(c.cachesize)
	r.names = make([]string, varnum)
	for k := range r.names {
		r.names[k] = fmt.Sprintf("x%d", k)
	}
	copy(r.names, c.names)
	r.reindex()
	r.varset = make([]int, varnum)
	for k := range r.varset {
		r.varset[k] = r.makenode(int32(k), zddone, zddzero)
	}
	log.Debugf("new ring with %d variables, ordering %s", varnum, r.order)
	return r, nil
}

func (r *Ring) reindex() {
	r.index = make(map[string]int, len(r.names))
	for k, v := range r.names {
		if _, ok := r.index[v]; !ok {
			r.index[v] = k
		}
	}
}

// Varnum returns the number of variables in the ring.
func (r *Ring) Varnum() int {
	return int(r.varnum)
}

// SetVariableName changes the name of variable i.
func (r *Ring) SetVariableName(i int, name string) error {
	if err := r.checkindex(i); err != nil {
		return err
	}
	r.names[i] = name
	r.reindex()
	return nil
}

// VariableName returns the name of variable i, or an empty string if i is not
// a variable of the ring.
func (r *Ring) VariableName(i int) string {
	if i < 0 || i >= len(r.names) {
		return ""
	}
	return r.names[i]
}

// Ordering returns the active term order of the ring.
func (r *Ring) Ordering() Order {
	return r.order
}

// ChangeOrdering sets the active term order. Leading terms computed with other
// orders stay in their own caches.
func (r *Ring) ChangeOrdering(o Order) error {
	if o.String() == "unknown" {
		return errors.Errorf("unknown ordering (%d)", o)
	}
	log.Debugf("change ordering from %s to %s", r.order, o)
	r.order = o
	return nil
}

// SetFastMultiplication selects the algorithm used for products.
func (r *Ring) SetFastMultiplication(enable bool) {
	r.fastmul = enable
}

// Options returns a copy of the reduction options of the ring.
func (r *Ring) Options() ReductionOptions {
	return r.options
}

// SetOptions replaces the reduction options of the ring.
func (r *Ring) SetOptions(opts ReductionOptions) {
	r.options = opts
}

// ************************************************************

// Zero returns the zero polynomial (the empty set of monomials).
func (r *Ring) Zero() Poly {
	return Poly{r, zddzero}
}

// One returns the constant polynomial one (the set with only the empty
// monomial).
func (r *Ring) One() Poly {
	return Poly{r, zddone}
}

// Constant returns One for true and Zero for false.
func (r *Ring) Constant(v bool) Poly {
	if v {
		return r.One()
	}
	return r.Zero()
}

// FromInt returns the polynomial for integer n, that is n modulo 2.
func (r *Ring) FromInt(n int) Poly {
	return r.Constant(n%2 != 0)
}

// Variable returns the polynomial for the i'th variable. The requested
// variable must be in the range [0..Varnum).
func (r *Ring) Variable(i int) (Poly, error) {
	if err := r.checkindex(i); err != nil {
		return r.Zero(), err
	}
	return Poly{r, r.varset[i]}, nil
}

// Exponent returns the exponent with variables idx, checking that they are all
// in the range of the ring.
func (r *Ring) Exponent(idx ...int) (Exponent, error) {
	for _, v := range idx {
		if err := r.checkindex(v); err != nil {
			return nil, err
		}
	}
	return NewExponent(idx...), nil
}

// Monomial returns the monomial with exponent e. We check every index before
// creating any node and return an InvalidIndexError if one of them is not a
// variable of the ring.
func (r *Ring) Monomial(e Exponent) (Poly, error) {
	for _, v := range e {
		if err := r.checkindex(v); err != nil {
			return r.Zero(), err
		}
	}
	e = NewExponent(e...)
	return Poly{r, r.monomial(e)}, nil
}

// monomial builds the node of an exponent in normal form.
func (r *Ring) monomial(e Exponent) int {
	res := zddone
	for k := len(e) - 1; k >= 0; k-- {
		res = r.makenode(int32(e[k]), res, zddzero)
	}
	return res
}

// MakeNode returns the polynomial index*then + els, where neither then nor els
// may use a variable smaller or equal to index. This is the canonical
// constructor of the node table: it returns els when then is zero and an
// existing node whenever possible.
func (r *Ring) MakeNode(index int, then, els Poly) (Poly, error) {
	if err := r.checkindex(index); err != nil {
		return r.Zero(), err
	}
	r.samering(then)
	r.samering(els)
	if int32(index) >= r.level(then.n) || int32(index) >= r.level(els.n) {
		return r.Zero(), errors.Errorf("variable %d must be smaller than the top variables of its branches", index)
	}
	return Poly{r, r.makenode(int32(index), then.n, els.n)}, nil
}

// samering checks, in debug mode, that p belongs to ring r.
func (r *Ring) samering(p Poly) {
	if _DEBUG && p.r != r && p.r != nil {
		log.Panicf("polynomial from a different ring")
	}
}
