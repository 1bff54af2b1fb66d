// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

import "fmt"

// ReductionOptions are the flags read by a reduction strategy working with the
// polynomials of a ring. The algebra itself never looks at them.
type ReductionOptions struct {
	BrutalReductions        bool `toml:"brutalReductions" yaml:"brutalReductions"`               // exhaustive reduction passes
	LinearLeadOptimization  bool `toml:"linearLeadOptimization" yaml:"linearLeadOptimization"`   // fast path for leading terms of degree one
	TailReduction           bool `toml:"tailReduction" yaml:"tailReduction"`                     // also reduce the terms after the leading one
	TailDegreeGrowthAllowed bool `toml:"tailDegreeGrowthAllowed" yaml:"tailDegreeGrowthAllowed"` // tail reduction may increase the degree
	ReducibleUntil          int  `toml:"reducibleUntil" yaml:"reducibleUntil"`                   // only variables below this index are reduced, or Unbounded
}

// DefaultReductionOptions returns the default reduction options.
func DefaultReductionOptions() ReductionOptions {
	return ReductionOptions{
		BrutalReductions:        true,
		LinearLeadOptimization:  false,
		TailReduction:           true,
		TailDegreeGrowthAllowed: true,
		ReducibleUntil:          Unbounded,
	}
}

// Reducible reports whether variable i is in the scope of reductions.
func (o ReductionOptions) Reducible(i int) bool {
	return o.ReducibleUntil < 0 || i < o.ReducibleUntil
}

func (o ReductionOptions) String() string {
	until := "unbounded"
	if o.ReducibleUntil >= 0 {
		until = fmt.Sprint(o.ReducibleUntil)
	}
	return fmt.Sprintf("brutal: %t, ll: %t, redtail: %t, redtail deg growth: %t, reducible until: %s",
		o.BrutalReductions, o.LinearLeadOptimization, o.TailReduction, o.TailDegreeGrowthAllowed, until)
}
