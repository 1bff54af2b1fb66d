// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

import (
	log "github.com/sirupsen/logrus"
)

// Lead returns the leading monomial of p for the active ordering of the ring.
// The leading monomial of zero is zero.
//
// We follow a single path from the root of p: at each node, the comparator of
// the ordering decides, from the degrees of the two branches, whether the
// leading monomial is in the else branch or in the then branch, in which case
// the variable of the node belongs to the result. Results are cached for each
// node and each ordering.
func (r *Ring) Lead(p Poly) Poly {
	r.samering(p)
	return Poly{r, r.lead(r.leadcache(r.order), r.order.Comparator(), p.n)}
}

// LeadBound returns the same result as Lead when bound is an upper bound on the
// degree of p, but can prune the computation of degrees.
func (r *Ring) LeadBound(p Poly, bound int) Poly {
	r.samering(p)
	r.checkbound(p, bound)
	return Poly{r, r.leadbound(r.leadcache(r.order), r.order.Comparator(), p.n, bound)}
}

// LeadExp returns the exponent of the leading monomial of p. The result is
// empty when p is zero or one.
func (r *Ring) LeadExp(p Poly) Exponent {
	r.samering(p)
	res := r.leadexp(r.leadexpcache(r.order), r.order.Comparator(), p.n)
	return append(Exponent{}, res...)
}

// LeadExpBound returns the same result as LeadExp when bound is an upper bound
// on the degree of p.
func (r *Ring) LeadExpBound(p Poly, bound int) Exponent {
	r.samering(p)
	r.checkbound(p, bound)
	res := r.leadexpbound(r.leadexpcache(r.order), r.order.Comparator(), p.n, bound)
	return append(Exponent{}, res...)
}

// LmDeg returns the degree of the leading monomial of p.
func (r *Ring) LmDeg(p Poly) int {
	if r.order.IsDegreeOrder() {
		return r.Deg(p)
	}
	return len(r.LeadExp(p))
}

// LmTotalDeg returns the total degree of the leading monomial of p, which is
// equal to LmDeg.
func (r *Ring) LmTotalDeg(p Poly) int {
	return r.LmDeg(p)
}

// LmHash returns a hash value for the leading monomial of p.
func (r *Ring) LmHash(p Poly) int {
	return r.LeadExp(p).Hash()
}

// LmDivisors returns the set of all the monomials dividing the leading
// monomial of p, including one and the leading monomial itself. The result is
// zero when p is zero.
func (r *Ring) LmDivisors(p Poly) Poly {
	if p.n == zddzero {
		return r.Zero()
	}
	lm := r.LeadExp(p)
	res := zddone
	for k := len(lm) - 1; k >= 0; k-- {
		res = r.makenode(int32(lm[k]), res, res)
	}
	return Poly{r, res}
}

func (r *Ring) checkbound(p Poly, bound int) {
	if _DEBUG && bound < r.degree(p.n) {
		log.Panicf("invalid degree bound %d for a polynomial of degree %d", bound, r.degree(p.n))
	}
}

// ************************************************************

func (r *Ring) lead(c unarycache[int], comp DegreeComparator, n int) int {
	if n < 2 {
		return n
	}
	if res, ok := c.find(n); ok {
		return res
	}
	high, low := r.high(n), r.low(n)
	var res int
	if comp(r.degree(high)+1, r.degree(low)) {
		res = r.lead(c, comp, low)
	} else {
		res = r.makenode(r.level(n), r.lead(c, comp, high), zddzero)
	}
	c.insert(n, res)
	return res
}

func (r *Ring) leadbound(c unarycache[int], comp DegreeComparator, n int, bound int) int {
	if n < 2 {
		return n
	}
	if res, ok := c.find(n); ok {
		return res
	}
	high := r.high(n)
	deg := r.degreebound(high, bound-1) + 1
	var res int
	if !comp(deg, bound) {
		// the then branch reaches the bound and wins
		res = r.makenode(r.level(n), r.leadbound(c, comp, high, bound-1), zddzero)
	} else {
		low := r.low(n)
		if comp(deg, r.degreebound(low, bound)) {
			res = r.lead(c, comp, low)
		} else {
			res = r.makenode(r.level(n), r.lead(c, comp, high), zddzero)
		}
	}
	c.insert(n, res)
	return res
}

// leadexp returns a slice shared with the cache, that callers must not modify.
func (r *Ring) leadexp(c unarycache[Exponent], comp DegreeComparator, n int) Exponent {
	if n < 2 {
		return nil
	}
	if res, ok := c.find(n); ok {
		return res
	}
	high, low := r.high(n), r.low(n)
	var res Exponent
	if comp(r.degree(high)+1, r.degree(low)) {
		res = r.leadexp(c, comp, low)
	} else {
		res = prepend(int(r.level(n)), r.leadexp(c, comp, high))
	}
	c.insert(n, res)
	return res
}

func (r *Ring) leadexpbound(c unarycache[Exponent], comp DegreeComparator, n int, bound int) Exponent {
	if n < 2 {
		return nil
	}
	if res, ok := c.find(n); ok {
		return res
	}
	high, low := r.high(n), r.low(n)
	deg := r.degreebound(high, bound-1) + 1
	var res Exponent
	if !comp(deg, bound) || !comp(deg, r.degreebound(low, bound)) {
		res = prepend(int(r.level(n)), r.leadexpbound(c, comp, high, bound-1))
	} else {
		res = r.leadexpbound(c, comp, low, bound)
	}
	c.insert(n, res)
	return res
}

func prepend(i int, e Exponent) Exponent {
	res := make(Exponent, 0, len(e)+1)
	res = append(res, i)
	return append(res, e...)
}
