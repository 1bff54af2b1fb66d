// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

// Poly is a Boolean polynomial, seen as the set of its monomials and
// represented by a node in the decision diagram of its ring. Since the diagram
// is canonical, two polynomials built by the same ring are equal if and only if
// they are equal as Go values, and comparing them with == is valid.
//
// Monomials use the same type: a monomial is simply a polynomial with exactly
// one term. Functions expecting a monomial, like Divide, do not check this
// property.
//
// The zero value of Poly is a zero polynomial that is not attached to any ring.
// Use Equal to compare it with the zero of a ring.
type Poly struct {
	r *Ring
	n int
}

// Ring returns the ring of p.
func (p Poly) Ring() *Ring {
	return p.r
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return p.n == zddzero
}

// IsOne reports whether p is the constant one.
func (p Poly) IsOne() bool {
	return p.n == zddone
}

// IsConstant reports whether p is zero or one.
func (p Poly) IsConstant() bool {
	return p.n < 2
}

// Equal reports whether p and q are the same polynomial.
func (p Poly) Equal(q Poly) bool {
	if p.n < 2 || q.n < 2 {
		return p.n == q.n
	}
	return p == q
}

// EqualBool reports whether p is the constant v.
func (p Poly) EqualBool(v bool) bool {
	if v {
		return p.IsOne()
	}
	return p.IsZero()
}

// TopIndex returns the index of the smallest variable of p, or the number of
// variables of the ring when p is a constant.
func (p Poly) TopIndex() int {
	if p.r == nil {
		return 0
	}
	return int(p.r.level(p.n))
}

// Then returns the monomials of p that contain its top variable, with this
// variable removed. It returns p when p is a constant.
func (p Poly) Then() Poly {
	if p.n < 2 {
		return p
	}
	return Poly{p.r, p.r.high(p.n)}
}

// Else returns the monomials of p that do not contain its top variable. It
// returns p when p is a constant.
func (p Poly) Else() Poly {
	if p.n < 2 {
		return p
	}
	return Poly{p.r, p.r.low(p.n)}
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	r := p.ring(q)
	if r == nil {
		return Poly{}
	}
	return r.Add(p, q)
}

// Mul returns p * q.
func (p Poly) Mul(q Poly) Poly {
	r := p.ring(q)
	if r == nil {
		return Poly{}
	}
	return r.Multiply(p, q)
}

// Div returns the quotient of p by monomial m.
func (p Poly) Div(m Poly) Poly {
	r := p.ring(m)
	if r == nil {
		return Poly{}
	}
	return r.Divide(p, m)
}

// Lead returns the leading monomial of p.
func (p Poly) Lead() Poly {
	if p.r == nil {
		return p
	}
	return p.r.Lead(p)
}

// LeadExp returns the exponent of the leading monomial of p.
func (p Poly) LeadExp() Exponent {
	if p.r == nil {
		return Exponent{}
	}
	return p.r.LeadExp(p)
}

// LmDivisors returns the set of the divisors of the leading monomial of p.
func (p Poly) LmDivisors() Poly {
	if p.r == nil {
		return p
	}
	return p.r.LmDivisors(p)
}

// Deg returns the degree of p.
func (p Poly) Deg() int {
	if p.r == nil {
		return 0
	}
	return p.r.Deg(p)
}

// LmDeg returns the degree of the leading monomial of p.
func (p Poly) LmDeg() int {
	if p.r == nil {
		return 0
	}
	return p.r.LmDeg(p)
}

// NNodes returns the number of nodes in the diagram of p.
func (p Poly) NNodes() int {
	if p.r == nil {
		return 1
	}
	return p.r.NNodes(p)
}

// NUsedVariables returns the number of variables occurring in p.
func (p Poly) NUsedVariables() int {
	if p.r == nil {
		return 0
	}
	return p.r.NUsedVariables(p)
}

// UsedVariables returns the product of the variables occurring in p.
func (p Poly) UsedVariables() Poly {
	if p.r == nil {
		return p
	}
	return p.r.UsedVariables(p)
}

// Length returns the number of monomials in p.
func (p Poly) Length() int {
	if p.r == nil {
		return 0
	}
	return p.r.Length(p)
}

func (p Poly) String() string {
	if p.r == nil {
		return "0"
	}
	return p.r.Sprint(p)
}

// ring returns the ring shared by p and q, knowing that one of them may be a
// detached zero.
func (p Poly) ring(q Poly) *Ring {
	if p.r == nil {
		return q.r
	}
	return p.r
}
