// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

import (
	"github.com/pkg/errors"
)

// Order is a term order over monomials, where variable x0 is always considered
// greater than x1, which is greater than x2, etc.
type Order int

// Term orders that can be used to compute leading terms. All of them share the
// same recursive algorithm and differ only by the DegreeComparator used to
// choose between the two branches of a node.
const (
	Lex          Order = iota // Lexicographic order
	DegLex                    // Degree order with lexicographic tie-break
	DegRevLexAsc              // Degree order with reverse lexicographic tie-break
)

var ordernames = [...]string{
	Lex:          "lp",
	DegLex:       "dlex",
	DegRevLexAsc: "dp_asc",
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(ordernames) {
		return "unknown"
	}
	return ordernames[o]
}

// ParseOrder returns the order with the given name (one of lp, dlex or dp_asc).
func ParseOrder(name string) (Order, error) {
	for k, v := range ordernames {
		if v == name {
			return Order(k), nil
		}
	}
	return Lex, errors.Errorf("unknown ordering %q", name)
}

// DegreeComparator is used at each node during the computation of a leading
// term. It is called with the degree of the then branch (counting the variable
// of the node) and the degree of the else branch, and it returns true when the
// leading term must be looked for in the else branch.
type DegreeComparator func(thendeg, elsedeg int) bool

func never(thendeg, elsedeg int) bool {
	return false
}

func less(thendeg, elsedeg int) bool {
	return thendeg < elsedeg
}

func lessEqual(thendeg, elsedeg int) bool {
	return thendeg <= elsedeg
}

var ordercomps = [...]DegreeComparator{
	Lex:          never,
	DegLex:       less,
	DegRevLexAsc: lessEqual,
}

// Comparator returns the comparator realizing order o.
func (o Order) Comparator() DegreeComparator {
	return ordercomps[o]
}

// IsDegreeOrder returns true if the order compares monomials by their degree
// first.
func (o Order) IsDegreeOrder() bool {
	return o != Lex
}

// Compare returns 1 if a is greater than b for order o, -1 if it is smaller,
// and 0 if they are equal. Both exponents must be in normal form.
func (o Order) Compare(a, b Exponent) int {
	if o.IsDegreeOrder() {
		switch {
		case len(a) > len(b):
			return 1
		case len(a) < len(b):
			return -1
		}
	}
	res := lexcompare(a, b)
	if o == DegRevLexAsc {
		return -res
	}
	return res
}

// lexcompare looks for the first variable that occurs in only one of the
// exponents; the one containing this variable is the greatest.
func lexcompare(a, b Exponent) int {
	for k := 0; ; k++ {
		switch {
		case k == len(a) && k == len(b):
			return 0
		case k == len(a):
			return -1
		case k == len(b):
			return 1
		case a[k] < b[k]:
			return 1
		case a[k] > b[k]:
			return -1
		}
	}
}
