// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package settings reads the configuration of a ring, and of the reduction
// options attached to it, from a TOML or YAML document.
package settings

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dalzilio/boolpoly"
	"github.com/dalzilio/boolpoly/metrics"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// RingSettings are the parameters used to create a ring.
type RingSettings struct {
	Varnum             int      `toml:"varnum" yaml:"varnum"`
	Names              []string `toml:"names" yaml:"names"`
	Ordering           string   `toml:"ordering" yaml:"ordering"`
	FastMultiplication bool     `toml:"fastMultiplication" yaml:"fastMultiplication"`
	Nodesize           int      `toml:"nodesize" yaml:"nodesize"`
	Cachesize          int      `toml:"cachesize" yaml:"cachesize"`
}

// Settings is the content of the [boolpoly] section of a configuration file.
type Settings struct {
	Ring      RingSettings              `toml:"ring" yaml:"ring"`
	Reduction boolpoly.ReductionOptions `toml:"reduction" yaml:"reduction"`
	Metrics   *metrics.Settings         `toml:"metrics" yaml:"metrics"`
	LogFile   string                    `toml:"logfile" yaml:"logfile"`
	LogLevel  string                    `toml:"loglevel" yaml:"loglevel"`
}

const (
	DefaultVarnum   = 8
	DefaultOrdering = "lp"
	DefaultLogLevel = "INFO"
)

// DefaultSettings returns the settings used for every field missing from a
// configuration file.
func DefaultSettings() Settings {
	return Settings{
		Ring: RingSettings{
			Varnum:   DefaultVarnum,
			Ordering: DefaultOrdering,
		},
		Reduction: boolpoly.DefaultReductionOptions(),
		Metrics:   metrics.DefaultSettings(),
		LogLevel:  DefaultLogLevel,
	}
}

// ParseSettings reads settings from a TOML document.
func ParseSettings(data string) (*Settings, error) {
	var doc struct {
		Boolpoly Settings `toml:"boolpoly"`
	}
	doc.Boolpoly = DefaultSettings()
	if _, err := toml.Decode(data, &doc); err != nil {
		return nil, errors.Wrap(err, "cannot decode TOML settings")
	}
	if err := doc.Boolpoly.Validate(); err != nil {
		return nil, err
	}
	return &doc.Boolpoly, nil
}

// ParseYAML reads settings from a YAML document, with the same structure as
// the TOML one.
func ParseYAML(data []byte) (*Settings, error) {
	var doc struct {
		Boolpoly Settings `yaml:"boolpoly"`
	}
	doc.Boolpoly = DefaultSettings()
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "cannot decode YAML settings")
	}
	if err := doc.Boolpoly.Validate(); err != nil {
		return nil, err
	}
	return &doc.Boolpoly, nil
}

// Load reads the settings in file path. Files with extension .yaml or .yml are
// read as YAML, all others as TOML.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseSettings(string(data))
	}
}

// Validate checks that the settings can be used to build a ring.
func (s *Settings) Validate() error {
	if s.Ring.Varnum < 1 {
		return errors.Errorf("invalid number of variables (%d)", s.Ring.Varnum)
	}
	if len(s.Ring.Names) > s.Ring.Varnum {
		return errors.Errorf("too many variable names (%d) for %d variables", len(s.Ring.Names), s.Ring.Varnum)
	}
	if _, err := boolpoly.ParseOrder(s.Ring.Ordering); err != nil {
		return err
	}
	return nil
}

// NewRing returns a new ring configured with s.
func (s *Settings) NewRing() (*boolpoly.Ring, error) {
	order, err := boolpoly.ParseOrder(s.Ring.Ordering)
	if err != nil {
		return nil, err
	}
	opts := []boolpoly.Option{
		boolpoly.Ordering(order),
		boolpoly.FastMultiplication(s.Ring.FastMultiplication),
		boolpoly.Reduction(s.Reduction),
	}
	if len(s.Ring.Names) > 0 {
		opts = append(opts, boolpoly.Names(s.Ring.Names...))
	}
	if s.Ring.Nodesize > 0 {
		opts = append(opts, boolpoly.Nodesize(s.Ring.Nodesize))
	}
	if s.Ring.Cachesize > 0 {
		opts = append(opts, boolpoly.Cachesize(s.Ring.Cachesize))
	}
	return boolpoly.New(s.Ring.Varnum, opts...)
}

// InitLog sets the output and the level of the logger. Logs go to the standard
// error when no log file is given.
func (s *Settings) InitLog() error {
	if s.LogFile == "" {
		log.SetOutput(os.Stderr)
	} else {
		f, err := os.OpenFile(s.LogFile, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			return errors.Wrap(err, "failed to open log file")
		}
		log.SetOutput(f)
	}
	level, err := log.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		log.Warningf("invalid log level %q: %v", s.LogLevel, err)
		return errors.WithStack(err)
	}
	log.SetLevel(level)
	return nil
}
