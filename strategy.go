// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

// Algebra lists the operations on polynomials that a reduction strategy, for
// instance in a Gröbner basis computation, consumes from a ring.
type Algebra interface {
	Add(p, q Poly) Poly
	Multiply(p, m Poly) Poly
	Divide(p, m Poly) Poly
	Lead(p Poly) Poly
	LmDivisors(p Poly) Poly
	Deg(p Poly) int
	LmDeg(p Poly) int
	TotalDeg(p Poly) int
	LmTotalDeg(p Poly) int
	NNodes(p Poly) int
	NUsedVariables(p Poly) int
	UsedVariables(p Poly) Poly
	Spoly(p, q Poly) Poly
	Options() ReductionOptions
}

var _ Algebra = (*Ring)(nil)

// Spoly returns the S-polynomial of p and q, that is p*(l/lm(p)) +
// q*(l/lm(q)) where l is the least common multiple of the leading monomials of
// p and q. The result is zero if p or q is zero.
func (r *Ring) Spoly(p, q Poly) Poly {
	r.samering(p)
	r.samering(q)
	if p.n == zddzero || q.n == zddzero {
		return r.Zero()
	}
	lp, lq := r.Lead(p), r.Lead(q)
	lcm := r.multiply(lp.n, lq.n)
	return Poly{r, r.add(r.multiply(p.n, r.divide(lcm, lp.n)), r.multiply(q.n, r.divide(lcm, lq.n)))}
}

// NNodes returns the number of distinct nodes, including terminals, in the
// diagram of p. The result is not cached.
func (r *Ring) NNodes(p Poly) int {
	r.samering(p)
	return r.nodecount(p.n)
}

// NUsedVariables returns the number of variables occurring in p.
func (r *Ring) NUsedVariables(p Poly) int {
	r.samering(p)
	return len(r.support(p.n))
}

// UsedVariables returns the product of the variables occurring in p.
func (r *Ring) UsedVariables(p Poly) Poly {
	r.samering(p)
	return Poly{r, r.monomial(r.support(p.n))}
}

// UsedVariablesExp returns the sorted list of variables occurring in p.
func (r *Ring) UsedVariablesExp(p Poly) Exponent {
	r.samering(p)
	return Exponent(r.support(p.n))
}

// UsedVars returns the product of the variables occurring in at least one of
// the polynomials in l. When bound is positive, we stop as soon as more than
// bound variables have been found, in which case the result is only a part of
// the support. The result is one when l is empty.
func (r *Ring) UsedVars(l []Poly, bound int) Poly {
	used := make([]bool, r.varnum)
	count := 0
	for _, p := range l {
		r.samering(p)
		for _, v := range r.support(p.n) {
			if !used[v] {
				used[v] = true
				count++
			}
		}
		if bound > 0 && count > bound {
			break
		}
	}
	res := make(Exponent, 0, count)
	for k, v := range used {
		if v {
			res = append(res, k)
		}
	}
	return Poly{r, r.monomial(res)}
}

// Length returns the number of monomials in p. The count is computed using a
// temporary memo table, local to the call.
func (r *Ring) Length(p Poly) int {
	r.samering(p)
	memo := make(map[int]int)
	var count func(n int) int
	count = func(n int) int {
		if n < 2 {
			return n
		}
		if res, ok := memo[n]; ok {
			return res
		}
		res := count(r.high(n)) + count(r.low(n))
		memo[n] = res
		return res
	}
	return count(p.n)
}

// Monomials returns the list of the monomials of p, sorted in decreasing
// order for the active ordering of the ring.
func (r *Ring) Monomials(p Poly) []Exponent {
	r.samering(p)
	res := []Exponent{}
	r.allmonomials(p.n, Exponent{}, func(e Exponent) {
		res = append(res, append(Exponent{}, e...))
	})
	if r.order != Lex {
		// monomials are enumerated in decreasing lexicographic order
		order := r.order
		sortExponents(res, func(a, b Exponent) bool { return order.Compare(a, b) > 0 })
	}
	return res
}

// allmonomials calls f on every monomial of n, in decreasing lexicographic
// order. The exponent passed to f is only valid during the call.
func (r *Ring) allmonomials(n int, prefix Exponent, f func(Exponent)) {
	if n == zddzero {
		return
	}
	if n == zddone {
		f(prefix)
		return
	}
	r.allmonomials(r.high(n), append(prefix, int(r.level(n))), f)
	r.allmonomials(r.low(n), prefix, f)
}
