// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"

	"github.com/dalzilio/boolpoly"
	"github.com/dalzilio/boolpoly/metrics"
	"github.com/dalzilio/boolpoly/settings"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// app is the state shared by all the commands: the settings, after flags are
// applied, and the ring built from them.
type app struct {
	configPath string
	varnum     int
	names      []string
	order      string
	fast       bool
	loglevel   string
	stats      bool
	metrics    bool

	settings *settings.Settings
	ring     *boolpoly.Ring
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "boolpoly",
		Short:         "Compute with Boolean polynomials",
		Long:          "boolpoly computes sums, products, leading terms and degrees of polynomials over GF(2) with x*x = x.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.report(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "configuration file (TOML, or YAML with extension .yaml or .yml)")
	flags.IntVarP(&a.varnum, "vars", "n", settings.DefaultVarnum, "number of variables")
	flags.StringSliceVar(&a.names, "names", nil, "comma separated list of variable names")
	flags.StringVarP(&a.order, "order", "o", settings.DefaultOrdering, "term order (lp, dlex or dp_asc)")
	flags.BoolVar(&a.fast, "fast", false, "use fast multiplication")
	flags.StringVar(&a.loglevel, "loglevel", settings.DefaultLogLevel, "log level")
	flags.BoolVar(&a.stats, "stats", false, "print the statistics of the ring after the command")
	flags.BoolVar(&a.metrics, "metrics", false, "print the statistics of the ring as Prometheus metrics after the command")

	root.AddCommand(
		a.evalCmd(),
		a.addCmd(),
		a.mulCmd(),
		a.divCmd(),
		a.leadCmd(),
		a.degCmd(),
		a.divisorsCmd(),
		a.spolyCmd(),
		a.varsCmd(),
		a.nodesCmd(),
		a.dotCmd(),
		a.optionsCmd(),
	)
	return root
}

// setup reads the configuration file, if any, and overrides its values with
// the flags set on the command line.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		s, err := settings.Load(a.configPath)
		if err != nil {
			return err
		}
		a.settings = s
	} else {
		s := settings.DefaultSettings()
		a.settings = &s
	}
	flags := cmd.Flags()
	if flags.Changed("vars") || a.configPath == "" {
		a.settings.Ring.Varnum = a.varnum
	}
	if flags.Changed("names") {
		a.settings.Ring.Names = a.names
		if !flags.Changed("vars") && a.configPath == "" {
			a.settings.Ring.Varnum = len(a.names)
		}
	}
	if flags.Changed("order") {
		a.settings.Ring.Ordering = a.order
	}
	if flags.Changed("fast") {
		a.settings.Ring.FastMultiplication = a.fast
	}
	if flags.Changed("loglevel") || a.configPath == "" {
		a.settings.LogLevel = a.loglevel
	}
	if err := a.settings.Validate(); err != nil {
		return err
	}
	if err := a.settings.InitLog(); err != nil {
		return err
	}
	r, err := a.settings.NewRing()
	if err != nil {
		return err
	}
	a.ring = r
	return nil
}

func (a *app) report(cmd *cobra.Command) error {
	if a.stats {
		a.ring.PrintStats(cmd.OutOrStdout())
	}
	if a.metrics {
		m := metrics.NewMetrics()
		m.Record("boolpoly", a.ring.Stats())
		return m.WriteText(cmd.OutOrStdout())
	}
	return nil
}

// parse returns the polynomials in args.
func (a *app) parse(args []string) ([]boolpoly.Poly, error) {
	res := make([]boolpoly.Poly, len(args))
	for k, s := range args {
		p, err := a.ring.Parse(s)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot parse %q", s)
		}
		res[k] = p
	}
	return res, nil
}

func (a *app) println(cmd *cobra.Command, v ...interface{}) {
	fmt.Fprintln(cmd.OutOrStdout(), v...)
}
