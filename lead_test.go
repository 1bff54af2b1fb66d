// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allorders = []Order{Lex, DegLex, DegRevLexAsc}

func TestLeadReference(t *testing.T) {
	for _, o := range allorders {
		t.Run(o.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(20))
			r := newring(t, 7, Ordering(o))
			for i := 0; i < 200; i++ {
				s := randset(rng, 7, 1+rng.Intn(16))
				p := frommonoset(t, r, s)
				lm := r.LeadExp(p)
				require.True(t, s[maskof(lm)], "%s is not a monomial of %s", lm, p)
				for m := range s {
					assert.GreaterOrEqual(t, o.Compare(lm, expof(m)), 0, "%s < %s in %s", lm, expof(m), p)
				}
				lead := r.Lead(p)
				assert.Equal(t, 1, lead.Length())
				assert.Equal(t, []Exponent{lm}, r.Monomials(lead))
				assert.Equal(t, lm.Hash(), r.LmHash(p))
				assert.Equal(t, len(lm), r.LmDeg(p))
				assert.Equal(t, r.LmDeg(p), r.LmTotalDeg(p))
			}
		})
	}
}

func TestLeadBound(t *testing.T) {
	for _, o := range allorders {
		t.Run(o.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(21))
			r := newring(t, 7, Ordering(o))
			for i := 0; i < 100; i++ {
				s := randset(rng, 7, 1+rng.Intn(16))
				expected := r.LeadExp(frommonoset(t, r, s))
				for _, extra := range []int{0, 2} {
					// a fresh ring, so that bounded results do not come from the
					// cache filled by LeadExp
					rb := newring(t, 7, Ordering(o))
					p := frommonoset(t, rb, s)
					bound := rb.Deg(p) + extra
					assert.Equal(t, expected, rb.LeadExpBound(p, bound))
					rb = newring(t, 7, Ordering(o))
					p = frommonoset(t, rb, s)
					assert.Equal(t, []Exponent{expected}, rb.Monomials(rb.LeadBound(p, bound)))
				}
			}
		})
	}
}

func TestLeadConstants(t *testing.T) {
	for _, o := range allorders {
		r := newring(t, 3, Ordering(o))
		assert.True(t, r.Lead(r.Zero()).IsZero())
		assert.True(t, r.Lead(r.One()).IsOne())
		assert.Empty(t, r.LeadExp(r.Zero()))
		assert.Empty(t, r.LeadExp(r.One()))
		assert.True(t, r.LmDivisors(r.Zero()).IsZero())
		assert.True(t, r.LmDivisors(r.One()).IsOne())
	}
}

func TestLeadScenario(t *testing.T) {
	r, _ := xyzvw(t, Ordering(DegLex))
	p, err := r.Parse("x*y + z + 1")
	require.NoError(t, err)
	assert.Equal(t, "x*y", r.Lead(p).String())
	assert.Equal(t, Exponent{0, 1}, r.LeadExp(p))
	assert.Equal(t, 2, r.LmDeg(p))
}

func TestLeadOrders(t *testing.T) {
	r, _ := xyzvw(t)
	p, err := r.Parse("x + y*z + v*w")
	require.NoError(t, err)
	expected := map[Order]string{
		Lex:          "x",
		DegLex:       "y*z",
		DegRevLexAsc: "v*w",
	}
	for _, o := range allorders {
		require.NoError(t, r.ChangeOrdering(o))
		assert.Equal(t, o, r.Ordering())
		assert.Equal(t, expected[o], r.Lead(p).String(), "ordering %s", o)
	}
	// back to lex, results come from the lead cache of lex
	require.NoError(t, r.ChangeOrdering(Lex))
	assert.Equal(t, "x", r.Lead(p).String())
	assert.Error(t, r.ChangeOrdering(Order(7)))
	names := []string{}
	for _, c := range r.Stats().Caches {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "lead-dlex")
	assert.Contains(t, names, "leadexp-dp_asc")
}

func TestLmDivisors(t *testing.T) {
	for _, o := range allorders {
		rng := rand.New(rand.NewSource(22))
		r := newring(t, 6, Ordering(o))
		for i := 0; i < 50; i++ {
			p := frommonoset(t, r, randset(rng, 6, 1+rng.Intn(10)))
			if p.IsZero() {
				continue
			}
			divs := r.LmDivisors(p)
			lm := maskof(r.LeadExp(p))
			assert.Equal(t, 1<<uint(r.LmDeg(p)), divs.Length())
			for m := range refset(r, divs) {
				assert.Equal(t, m, m&lm)
			}
		}
	}
}

func TestSpoly(t *testing.T) {
	r, _ := xyzvw(t)
	p, err := r.Parse("x*y + z")
	require.NoError(t, err)
	q, err := r.Parse("y*z + 1")
	require.NoError(t, err)
	// lcm is x*y*z: z*(x*y + z) + x*(y*z + 1)
	assert.Equal(t, "x + z", r.Spoly(p, q).String())
	assert.True(t, r.Spoly(p, r.Zero()).IsZero())
}
