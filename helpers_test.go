// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// monoset is a reference representation of a polynomial, as the set of its
// monomials, where each monomial is the bitmask of its variables.
type monoset map[uint32]bool

func (s monoset) toggle(m uint32) {
	if s[m] {
		delete(s, m)
		return
	}
	s[m] = true
}

func maskof(e Exponent) uint32 {
	var m uint32
	for _, v := range e {
		m |= 1 << uint(v)
	}
	return m
}

func expof(m uint32) Exponent {
	res := Exponent{}
	for m != 0 {
		i := bits.TrailingZeros32(m)
		res = append(res, i)
		m &= m - 1
	}
	return res
}

func refset(r *Ring, p Poly) monoset {
	res := monoset{}
	for _, e := range r.Monomials(p) {
		res[maskof(e)] = true
	}
	return res
}

func refmul(a, b monoset) monoset {
	res := monoset{}
	for m1 := range a {
		for m2 := range b {
			res.toggle(m1 | m2)
		}
	}
	return res
}

func refadd(a, b monoset) monoset {
	res := monoset{}
	for m := range a {
		res.toggle(m)
	}
	for m := range b {
		res.toggle(m)
	}
	return res
}

// frommonoset builds the polynomial with monomials s.
func frommonoset(t *testing.T, r *Ring, s monoset) Poly {
	res := r.Zero()
	for m := range s {
		mono, err := r.Monomial(expof(m))
		require.NoError(t, err)
		res = r.Add(res, mono)
	}
	return res
}

// randset returns a random set of at most nterms monomials over nvars
// variables.
func randset(rng *rand.Rand, nvars, nterms int) monoset {
	res := monoset{}
	for k := 0; k < nterms; k++ {
		res[uint32(rng.Intn(1<<uint(nvars)))] = true
	}
	return res
}

func newring(t *testing.T, varnum int, options ...func(*configs)) *Ring {
	r, err := New(varnum, options...)
	require.NoError(t, err)
	return r
}

// xyzvw returns a ring with 5 variables named x, y, z, v and w.
func xyzvw(t *testing.T, options ...func(*configs)) (*Ring, []Poly) {
	r := newring(t, 5, append(options, Names("x", "y", "z", "v", "w"))...)
	vars, err := r.Vars(0, 1, 2, 3, 4)
	require.NoError(t, err)
	return r, vars
}
