// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

// Add returns the sum of p and q, that is the symmetric difference of their
// sets of monomials.
func (r *Ring) Add(p, q Poly) Poly {
	r.samering(p)
	r.samering(q)
	return Poly{r, r.add(p.n, q.n)}
}

func (r *Ring) add(p, q int) int {
	switch {
	case p == zddzero:
		return q
	case q == zddzero:
		return p
	case p == q:
		return zddzero
	}
	c := r.binary[cacheidADD]
	if res, ok := c.lookup(p, q); ok {
		return res
	}
	lp, lq := r.level(p), r.level(q)
	var res int
	switch {
	case lp == lq:
		res = r.makenode(lp, r.add(r.high(p), r.high(q)), r.add(r.low(p), r.low(q)))
	case lp < lq:
		res = r.makenode(lp, r.high(p), r.add(r.low(p), q))
	default:
		res = r.makenode(lq, r.high(q), r.add(p, r.low(q)))
	}
	return c.store(p, q, res)
}

// Multiply returns the product of p and q. Since x*x = x in a Boolean ring,
// the product of a polynomial with itself is the polynomial itself.
//
// We split both operands on their smallest top variable x, such that p = x*p1 +
// p0 and q = x*q1 + q0. Then the product is x*(p0*q1 + p1*q1 + p1*q0) + p0*q0.
// With fast multiplication enabled, and when x is the top variable of both
// operands, we compute the then branch as (p0+p1)*(q0+q1) - p0*q0 instead,
// which needs one less recursive product.
func (r *Ring) Multiply(p, q Poly) Poly {
	r.samering(p)
	r.samering(q)
	return Poly{r, r.multiply(p.n, q.n)}
}

func (r *Ring) multiply(p, q int) int {
	switch {
	case p == zddzero || q == zddzero:
		return zddzero
	case p == zddone:
		return q
	case q == zddone:
		return p
	case p == q:
		return p
	}
	c := r.binary[cacheidMULTIPLY]
	if r.fastmul {
		c = r.binary[cacheidFASTMULTIPLY]
	}
	if res, ok := c.lookup(p, q); ok {
		return res
	}
	lp, lq := r.level(p), r.level(q)
	index := lp
	if lq < index {
		index = lq
	}
	p0, p1 := r.split(p, index)
	q0, q1 := r.split(q, index)
	var res int
	if r.fastmul && lp == lq {
		r00 := r.multiply(p0, q0)
		r11 := r.add(r.multiply(r.add(p0, p1), r.add(q0, q1)), r00)
		res = r.makenode(index, r11, r00)
	} else {
		// When p = (x+1)*p0, the two products involving q1 cancel each
		// other, and symmetrically for q.
		if p0 == p1 {
			q1 = zddzero
		} else if q0 == q1 {
			p1 = zddzero
		}
		high := r.add(r.add(r.multiply(p0, q1), r.multiply(p1, q1)), r.multiply(p1, q0))
		res = r.makenode(index, high, r.multiply(p0, q0))
	}
	return c.store(p, q, res)
}

// Divide returns the quotient of p by the monomial m, ignoring the remainder.
// The result is made of the monomials of p that are multiples of m, with the
// variables of m removed.
func (r *Ring) Divide(p, m Poly) Poly {
	r.samering(p)
	r.samering(m)
	return Poly{r, r.divide(p.n, m.n)}
}

func (r *Ring) divide(p, m int) int {
	switch {
	case m == zddone:
		return p
	case p < 2 || m == zddzero:
		return zddzero
	}
	c := r.binary[cacheidDIVIDE]
	if res, ok := c.lookup(p, m); ok {
		return res
	}
	lp, lm := r.level(p), r.level(m)
	var res int
	switch {
	case lp < lm:
		res = r.makenode(lp, r.divide(r.high(p), m), r.divide(r.low(p), m))
	case lp == lm:
		res = r.divide(r.high(p), r.high(m))
	default:
		res = zddzero
	}
	return c.store(p, m, res)
}

// Subset1 returns the monomials of p containing variable i, with i removed.
func (r *Ring) Subset1(p Poly, i int) (Poly, error) {
	r.samering(p)
	if err := r.checkindex(i); err != nil {
		return r.Zero(), err
	}
	return Poly{r, r.subset(cacheidSUBSET1, p.n, int32(i))}, nil
}

// Subset0 returns the monomials of p that do not contain variable i.
func (r *Ring) Subset0(p Poly, i int) (Poly, error) {
	r.samering(p)
	if err := r.checkindex(i); err != nil {
		return r.Zero(), err
	}
	return Poly{r, r.subset(cacheidSUBSET0, p.n, int32(i))}, nil
}

func (r *Ring) subset(id int, p int, i int32) int {
	lp := r.level(p)
	if lp > i {
		// p does not use variable i
		if id == cacheidSUBSET1 {
			return zddzero
		}
		return p
	}
	if lp == i {
		if id == cacheidSUBSET1 {
			return r.high(p)
		}
		return r.low(p)
	}
	c := r.binary[id]
	if res, ok := c.lookup(p, int(i)); ok {
		return res
	}
	res := r.makenode(lp, r.subset(id, r.high(p), i), r.subset(id, r.low(p), i))
	return c.store(p, int(i), res)
}
