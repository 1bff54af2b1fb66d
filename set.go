// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

// Sum returns the sum of a sequence of polynomials.
func (r *Ring) Sum(p ...Poly) Poly {
	if len(p) == 1 {
		return p[0]
	}
	if len(p) == 0 {
		return r.Zero()
	}
	return r.Add(p[0], r.Sum(p[1:]...))
}

// Product returns the product of a sequence of polynomials.
func (r *Ring) Product(p ...Poly) Poly {
	if len(p) == 1 {
		return p[0]
	}
	if len(p) == 0 {
		return r.One()
	}
	return r.Multiply(p[0], r.Product(p[1:]...))
}

// Vars returns the polynomials for the variables in idx.
func (r *Ring) Vars(idx ...int) ([]Poly, error) {
	res := make([]Poly, len(idx))
	for k, i := range idx {
		v, err := r.Variable(i)
		if err != nil {
			return nil, err
		}
		res[k] = v
	}
	return res, nil
}

// Polynomial returns the sum of the monomials with the given exponents.
// Exponents occurring twice cancel each other.
func (r *Ring) Polynomial(exps ...Exponent) (Poly, error) {
	res := r.Zero()
	for _, e := range exps {
		m, err := r.Monomial(e)
		if err != nil {
			return r.Zero(), err
		}
		res = r.Add(res, m)
	}
	return res, nil
}
