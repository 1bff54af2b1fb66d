// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolpoly

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Stats stores status information about a ring.
type Stats struct {
	Varnum       int         // number of variables
	Allocated    int         // number of nodes in the node table, including terminals
	Produced     int         // total number of nodes ever produced
	UniqueAccess int         // accesses to the unique node table
	UniqueHit    int         // entries found in the unique node table
	UniqueMiss   int         // entries not found in the unique node table
	Caches       []CacheStat // one entry for each operation cache
}

// Stats returns information about the node table and the caches of r.
func (r *Ring) Stats() Stats {
	return Stats{
		Varnum:       int(r.varnum),
		Allocated:    r.size(),
		Produced:     r.produced,
		UniqueAccess: r.uniqueAccess,
		UniqueHit:    r.uniqueHit,
		UniqueMiss:   r.uniqueMiss,
		Caches:       r.stats(),
	}
}

func (s Stats) String() string {
	res := fmt.Sprintf("Varnum:     %d\n", s.Varnum)
	res += fmt.Sprintf("Allocated:  %d\n", s.Allocated)
	res += fmt.Sprintf("Produced:   %d\n", s.Produced)
	res += "==============\n"
	res += fmt.Sprintf("Unique Access:  %d\n", s.UniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", s.UniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d", s.UniqueMiss)
	for _, c := range s.Caches {
		res += "\n" + c.String()
	}
	return res
}

// PrintStats outputs a textual representation of the ring statistics.
func (r *Ring) PrintStats(w io.Writer) {
	fmt.Fprintln(w, "==============")
	fmt.Fprintln(w, r.Stats())
	fmt.Fprintln(w, "==============")
	if _DEBUG {
		r.logTable()
	}
}

// ************************************************************

// PrintTerms writes the monomials of p, in decreasing order for the active
// ordering, using name to get the name of each variable. Monomials are
// separated by sep and variables inside a monomial by innersep. The constant
// monomial is written as empty. Nothing is written when p is zero.
func (r *Ring) PrintTerms(w io.Writer, p Poly, name func(int) string, sep, innersep, empty string) error {
	bw := bufio.NewWriter(w)
	for k, e := range r.Monomials(p) {
		if k > 0 {
			bw.WriteString(sep)
		}
		printterm(bw, e, name, innersep, empty)
	}
	return bw.Flush()
}

func printterm(w io.StringWriter, e Exponent, name func(int) string, innersep, empty string) {
	if len(e) == 0 {
		w.WriteString(empty)
		return
	}
	for k, v := range e {
		if k > 0 {
			w.WriteString(innersep)
		}
		w.WriteString(name(v))
	}
}

// Sprint returns the polynomial p using the variable names of the ring, such
// as "x*y + z + 1". The zero polynomial is printed as "0".
func (r *Ring) Sprint(p Poly) string {
	if p.n == zddzero {
		return "0"
	}
	var sb strings.Builder
	r.PrintTerms(&sb, p, r.VariableName, " + ", "*", "1")
	return sb.String()
}

func sortExponents(l []Exponent, greater func(a, b Exponent) bool) {
	sort.SliceStable(l, func(i, j int) bool { return greater(l[i], l[j]) })
}

// ************************************************************

// Allnodes applies function f over all the nodes reachable from the
// polynomials in p, listing each node once. Function f takes the id, the
// variable index, and the id's of the then and else branches of each interior
// node. The two constants are not listed.
func (r *Ring) Allnodes(f func(id, index, high, low int) error, p ...Poly) error {
	roots := make([]int, len(p))
	for k, v := range p {
		r.samering(v)
		roots[k] = v.n
	}
	for _, n := range r.reachable(roots...) {
		if err := f(n, int(r.level(n)), r.high(n), r.low(n)); err != nil {
			return err
		}
	}
	return nil
}

// PrintDot writes a graph-like description of the diagrams of the polynomials
// in p using the Graphviz DOT format. Then branches are drawn with plain
// lines and else branches with dotted lines. We do not draw arcs that go to
// the constant zero.
func (r *Ring) PrintDot(w io.Writer, p ...Poly) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "1 [shape=box, label=\"1\", style=filled, shape=box, height=0.3, width=0.3];")
	for _, v := range p {
		if v.n == zddzero {
			fmt.Fprintln(bw, "0 [shape=box, label=\"0\", style=filled, shape=box, height=0.3, width=0.3];")
			break
		}
	}
	err := r.Allnodes(func(id, index, high, low int) error {
		fmt.Fprintf(bw, "%d %s\n", id, dotlabel(id, r.VariableName(index)))
		fmt.Fprintf(bw, "%d -> %d [style=filled];\n", id, high)
		if low != zddzero {
			fmt.Fprintf(bw, "%d -> %d [style=dotted];\n", id, low)
		}
		return nil
	}, p...)
	if err != nil {
		return err
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotlabel(a int, name string) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%s</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, name, a)
}
