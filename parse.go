// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

import (
	"strings"

	"github.com/pkg/errors"
)

// Parse returns the polynomial described by s, a sum of terms separated by
// '+', where each term is a product of factors separated by '*'. A factor is
// either the name of a variable of the ring or one of the constants 0 and 1.
// Spaces are ignored. Since we compute in a Boolean ring, "x*x" is equal to x
// and "x + x" to 0.
func (r *Ring) Parse(s string) (Poly, error) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return r.Zero(), errors.New("empty polynomial")
	}
	res := r.Zero()
	for _, term := range strings.Split(s, "+") {
		if term == "" {
			return r.Zero(), errors.Errorf("missing term in %q", s)
		}
		m := r.One()
		for _, factor := range strings.Split(term, "*") {
			f, err := r.parsefactor(factor)
			if err != nil {
				return r.Zero(), errors.Wrapf(err, "in term %q", term)
			}
			m = r.Multiply(m, f)
		}
		res = r.Add(res, m)
	}
	return res, nil
}

func (r *Ring) parsefactor(s string) (Poly, error) {
	switch s {
	case "":
		return r.Zero(), errors.New("missing factor")
	case "0":
		return r.Zero(), nil
	case "1":
		return r.One(), nil
	}
	i, ok := r.index[s]
	if !ok {
		return r.Zero(), errors.Errorf("unknown variable %q", s)
	}
	return r.Variable(i)
}
