// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"github.com/dalzilio/boolpoly"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// polyCmd returns a command applying f to the polynomials given as arguments.
func (a *app) polyCmd(use, short string, args cobra.PositionalArgs, f func(cmd *cobra.Command, p []boolpoly.Poly) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parse(args)
			if err != nil {
				return err
			}
			return f(cmd, p)
		},
	}
}

func (a *app) evalCmd() *cobra.Command {
	return a.polyCmd("eval POLY", "Print a polynomial in normal form", cobra.ExactArgs(1),
		func(cmd *cobra.Command, p []boolpoly.Poly) error {
			a.println(cmd, p[0])
			return nil
		})
}

func (a *app) addCmd() *cobra.Command {
	return a.polyCmd("add POLY...", "Print the sum of polynomials", cobra.MinimumNArgs(1),
		func(cmd *cobra.Command, p []boolpoly.Poly) error {
			a.println(cmd, a.ring.Sum(p...))
			return nil
		})
}

func (a *app) mulCmd() *cobra.Command {
	return a.polyCmd("mul POLY...", "Print the product of polynomials", cobra.MinimumNArgs(1),
		func(cmd *cobra.Command, p []boolpoly.Poly) error {
			a.println(cmd, a.ring.Product(p...))
			return nil
		})
}

func (a *app) divCmd() *cobra.Command {
	return a.polyCmd("div POLY MONOMIAL", "Print the quotient of a polynomial by a monomial", cobra.ExactArgs(2),
		func(cmd *cobra.Command, p []boolpoly.Poly) error {
			if p[1].Length() != 1 {
				return errors.Errorf("divisor %s is not a monomial", p[1])
			}
			a.println(cmd, a.ring.Divide(p[0], p[1]))
			return nil
		})
}

func (a *app) leadCmd() *cobra.Command {
	return a.polyCmd("lead POLY", "Print the leading monomial of a polynomial", cobra.ExactArgs(1),
		func(cmd *cobra.Command, p []boolpoly.Poly) error {
			a.println(cmd, a.ring.Lead(p[0]), a.ring.LeadExp(p[0]), a.ring.LmDeg(p[0]))
			return nil
		})
}

func (a *app) degCmd() *cobra.Command {
	return a.polyCmd("deg POLY", "Print the degree of a polynomial", cobra.ExactArgs(1),
		func(cmd *cobra.Command, p []boolpoly.Poly) error {
			a.println(cmd, a.ring.Deg(p[0]))
			return nil
		})
}

func (a *app) divisorsCmd() *cobra.Command {
	return a.polyCmd("divisors POLY", "Print the divisors of the leading monomial of a polynomial", cobra.ExactArgs(1),
		func(cmd *cobra.Command, p []boolpoly.Poly) error {
			a.println(cmd, a.ring.LmDivisors(p[0]))
			return nil
		})
}

func (a *app) spolyCmd() *cobra.Command {
	return a.polyCmd("spoly POLY POLY", "Print the S-polynomial of two polynomials", cobra.ExactArgs(2),
		func(cmd *cobra.Command, p []boolpoly.Poly) error {
			a.println(cmd, a.ring.Spoly(p[0], p[1]))
			return nil
		})
}

func (a *app) varsCmd() *cobra.Command {
	return a.polyCmd("vars POLY...", "Print the product of the variables used in polynomials", cobra.MinimumNArgs(1),
		func(cmd *cobra.Command, p []boolpoly.Poly) error {
			a.println(cmd, a.ring.UsedVars(p, boolpoly.Unbounded))
			return nil
		})
}

func (a *app) nodesCmd() *cobra.Command {
	return a.polyCmd("nodes POLY", "Print the number of nodes and of monomials of a polynomial", cobra.ExactArgs(1),
		func(cmd *cobra.Command, p []boolpoly.Poly) error {
			a.println(cmd, a.ring.NNodes(p[0]), a.ring.Length(p[0]))
			return nil
		})
}

func (a *app) dotCmd() *cobra.Command {
	return a.polyCmd("dot POLY...", "Print the diagrams of polynomials in DOT format", cobra.MinimumNArgs(1),
		func(cmd *cobra.Command, p []boolpoly.Poly) error {
			return a.ring.PrintDot(cmd.OutOrStdout(), p...)
		})
}

func (a *app) optionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the reduction options of the ring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.println(cmd, a.ring.Options())
			return nil
		},
	}
}
