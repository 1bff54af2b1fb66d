// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidIndexError is returned when building a variable, an exponent or a
// monomial that references a variable outside the range of a ring.
type InvalidIndexError struct {
	Index  int // the offending index
	Varnum int // number of variables in the ring
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("invalid variable index %d (ring has %d variables)", e.Index, e.Varnum)
}

// checkindex returns an InvalidIndexError if i is not a variable of the ring.
func (r *Ring) checkindex(i int) error {
	if i < 0 || i >= int(r.varnum) {
		return errors.WithStack(&InvalidIndexError{Index: i, Varnum: int(r.varnum)})
	}
	return nil
}

// IsInvalidIndex reports whether err was caused by an invalid variable index.
func IsInvalidIndex(err error) bool {
	_, ok := errors.Cause(err).(*InvalidIndexError)
	return ok
}
