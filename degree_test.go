// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func refdeg(s monoset) int {
	res := 0
	for m := range s {
		if d := bits.OnesCount32(m); d > res {
			res = d
		}
	}
	return res
}

func TestDegree(t *testing.T) {
	r, v := xyzvw(t)
	assert.Equal(t, 0, r.Deg(r.Zero()))
	assert.Equal(t, 0, r.Deg(r.One()))
	assert.Equal(t, 1, r.Deg(v[3]))
	p := r.Sum(r.Product(v[0], v[1], v[4]), v[2], r.One())
	assert.Equal(t, 3, r.Deg(p))
	assert.Equal(t, 3, p.Deg())
	assert.Equal(t, 3, r.TotalDeg(p))
}

func TestDegreeReference(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	r := newring(t, 8)
	for i := 0; i < 200; i++ {
		s := randset(rng, 8, 1+rng.Intn(20))
		p := frommonoset(t, r, s)
		assert.Equal(t, refdeg(s), r.Deg(p), "%s", p)
	}
}

func TestDegreeBound(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		s := randset(rng, 8, 1+rng.Intn(20))
		expected := refdeg(s)
		for _, extra := range []int{0, 1, 3} {
			// a fresh ring each time, so that nothing is shared with Deg
			r := newring(t, 8)
			p := frommonoset(t, r, s)
			assert.Equal(t, expected, r.DegreeBound(p, expected+extra))
			assert.Equal(t, expected, r.Deg(p))
		}
	}
}
