// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

import (
	log "github.com/sirupsen/logrus"
)

// Deg returns the degree of p, that is the maximal degree of its monomials. The
// degree of a constant is 0.
func (r *Ring) Deg(p Poly) int {
	r.samering(p)
	return r.degree(p.n)
}

// TotalDeg returns the total degree of p. Since variables have no weight, it
// is always equal to Deg.
func (r *Ring) TotalDeg(p Poly) int {
	return r.Deg(p)
}

// DegreeBound returns the degree of p, knowing that it is at most bound. The
// result is equal to Deg(p) as long as bound is a valid upper bound, which is
// a precondition of the function and is only checked in debug mode.
func (r *Ring) DegreeBound(p Poly, bound int) int {
	r.samering(p)
	res := r.degreebound(p.n, bound)
	if _DEBUG && res != r.degree(p.n) {
		log.Panicf("invalid degree bound %d for a polynomial of degree %d", bound, r.degree(p.n))
	}
	return res
}

func (r *Ring) degree(n int) int {
	if n < 2 {
		return 0
	}
	if res, ok := r.degcache.find(n); ok {
		return res
	}
	// the then branch has at least one monomial
	deg := r.degree(r.high(n)) + 1
	if d := r.degree(r.low(n)); d > deg {
		deg = d
	}
	r.degcache.insert(n, deg)
	return deg
}

// degreebound shares its cache with degree, since both give the same results
// for a valid bound.
func (r *Ring) degreebound(n int, bound int) int {
	if n < 2 || bound <= 0 {
		return 0
	}
	if res, ok := r.degcache.find(n); ok {
		return res
	}
	deg := r.degreebound(r.high(n), bound-1) + 1
	// when deg reaches bound, the else branch cannot do better
	if bound > deg {
		if d := r.degreebound(r.low(n), bound); d > deg {
			deg = d
		}
	}
	r.degcache.insert(n, deg)
	return deg
}
