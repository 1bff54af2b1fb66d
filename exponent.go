// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

import (
	"sort"
	"strconv"
	"strings"
)

// Exponent is an explicit representation of a monomial as the sorted list of
// the indices of its variables. The empty exponent stands for the constant
// monomial 1. Exponents are not attached to a ring; indices are checked when
// the exponent is turned into a polynomial (see Ring.Monomial).
type Exponent []int

// NewExponent returns the exponent with variables idx, in normal form (sorted
// and without duplicates).
func NewExponent(idx ...int) Exponent {
	res := make(Exponent, 0, len(idx))
	for _, v := range idx {
		res = res.Insert(v)
	}
	return res
}

// Insert returns an exponent with variable i added to e. It may reuse the
// storage of e.
func (e Exponent) Insert(i int) Exponent {
	k := sort.SearchInts(e, i)
	if k < len(e) && e[k] == i {
		return e
	}
	e = append(e, 0)
	copy(e[k+1:], e[k:])
	e[k] = i
	return e
}

// Contains reports whether variable i occurs in e.
func (e Exponent) Contains(i int) bool {
	k := sort.SearchInts(e, i)
	return k < len(e) && e[k] == i
}

// Deg returns the degree of the monomial, that is its number of variables.
func (e Exponent) Deg() int {
	return len(e)
}

// Equal reports whether e and f denote the same monomial.
func (e Exponent) Equal(f Exponent) bool {
	if len(e) != len(f) {
		return false
	}
	for k := range e {
		if e[k] != f[k] {
			return false
		}
	}
	return true
}

// Hash returns the hash value of the monomial used for leading terms:
// the sum of the (i+1)^2 for every index i, multiplied by the degree.
func (e Exponent) Hash() int {
	sum := 0
	for _, v := range e {
		sum += (v + 1) * (v + 1)
	}
	return sum * len(e)
}

func (e Exponent) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for k, v := range e {
		if k > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('}')
	return sb.String()
}
