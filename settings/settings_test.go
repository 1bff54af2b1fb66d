// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dalzilio/boolpoly"
	"github.com/dalzilio/boolpoly/metrics"
	log "github.com/sirupsen/logrus"
	gc "gopkg.in/check.v1"
)

func Test(t *testing.T) { gc.TestingT(t) }

type SettingsSuite struct{}

var _ = gc.Suite(&SettingsSuite{})

func withReduction(f func(*boolpoly.ReductionOptions)) boolpoly.ReductionOptions {
	res := boolpoly.DefaultReductionOptions()
	f(&res)
	return res
}

func (s *SettingsSuite) TestParse(c *gc.C) {
	defaults := DefaultSettings()
	testCases := []struct {
		desc     string
		toml     string
		settings *Settings
		err      string
	}{{
		"empty string",
		``,
		&defaults,
		"",
	}, {
		"ring and reduction settings",
		`
[boolpoly]
loglevel="debug"

[boolpoly.ring]
varnum=3
names=["x","y","z"]
ordering="dlex"
fastMultiplication=true

[boolpoly.reduction]
tailReduction=false
reducibleUntil=2
`,
		&Settings{
			Ring: RingSettings{
				Varnum:             3,
				Names:              []string{"x", "y", "z"},
				Ordering:           "dlex",
				FastMultiplication: true,
			},
			Reduction: withReduction(func(o *boolpoly.ReductionOptions) {
				o.TailReduction = false
				o.ReducibleUntil = 2
			}),
			Metrics:  metrics.DefaultSettings(),
			LogLevel: "debug",
		},
		"",
	}, {
		"unknown ordering",
		`
[boolpoly.ring]
ordering="grevlex"
`,
		nil,
		`unknown ordering "grevlex"`,
	}, {
		"too many names",
		`
[boolpoly.ring]
varnum=1
names=["x","y"]
`,
		nil,
		`too many variable names \(2\) for 1 variables`,
	}, {
		"bad syntax",
		`[boolpoly`,
		nil,
		`(?s)cannot decode TOML settings.*`,
	}}
	for i, testCase := range testCases {
		c.Logf("test#%d: %s", i, testCase.desc)
		settings, err := ParseSettings(testCase.toml)
		if testCase.err != "" {
			c.Check(err, gc.ErrorMatches, testCase.err)
		} else {
			c.Assert(err, gc.IsNil)
			c.Check(settings, gc.DeepEquals, testCase.settings)
		}
	}
}

func (s *SettingsSuite) TestParseYAML(c *gc.C) {
	settings, err := ParseYAML([]byte(`
boolpoly:
  ring:
    varnum: 5
    ordering: dp_asc
    cachesize: 1000
  reduction:
    brutalReductions: false
`))
	c.Assert(err, gc.IsNil)
	c.Check(settings.Ring.Varnum, gc.Equals, 5)
	c.Check(settings.Ring.Ordering, gc.Equals, "dp_asc")
	c.Check(settings.Ring.Cachesize, gc.Equals, 1000)
	c.Check(settings.Reduction.BrutalReductions, gc.Equals, false)
	c.Check(settings.Reduction.TailReduction, gc.Equals, true)
	c.Check(settings.LogLevel, gc.Equals, DefaultLogLevel)
	c.Check(settings.Metrics.MetricsPath, gc.Equals, "/metrics")

	_, err = ParseYAML([]byte("boolpoly:\n  ring:\n    varnum: 0\n"))
	c.Check(err, gc.ErrorMatches, `invalid number of variables \(0\)`)
}

func (s *SettingsSuite) TestLoad(c *gc.C) {
	dir := c.MkDir()
	tomlPath := filepath.Join(dir, "ring.toml")
	c.Assert(os.WriteFile(tomlPath, []byte("[boolpoly.ring]\nvarnum=4\n"), 0644), gc.IsNil)
	settings, err := Load(tomlPath)
	c.Assert(err, gc.IsNil)
	c.Check(settings.Ring.Varnum, gc.Equals, 4)

	yamlPath := filepath.Join(dir, "ring.yml")
	c.Assert(os.WriteFile(yamlPath, []byte("boolpoly:\n  ring:\n    varnum: 6\n"), 0644), gc.IsNil)
	settings, err = Load(yamlPath)
	c.Assert(err, gc.IsNil)
	c.Check(settings.Ring.Varnum, gc.Equals, 6)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	c.Check(err, gc.NotNil)
}

func (s *SettingsSuite) TestNewRing(c *gc.C) {
	settings, err := ParseSettings(`
[boolpoly.ring]
varnum=3
names=["a","b","c"]
ordering="dlex"
cachesize=64

[boolpoly.reduction]
reducibleUntil=1
`)
	c.Assert(err, gc.IsNil)
	r, err := settings.NewRing()
	c.Assert(err, gc.IsNil)
	c.Check(r.Varnum(), gc.Equals, 3)
	c.Check(r.Ordering(), gc.Equals, boolpoly.DegLex)
	c.Check(r.VariableName(2), gc.Equals, "c")
	c.Check(r.Options().ReducibleUntil, gc.Equals, 1)
	p, err := r.Parse("a + b*c")
	c.Assert(err, gc.IsNil)
	c.Check(r.Lead(p).String(), gc.Equals, "b*c")
}

func (s *SettingsSuite) TestInitLog(c *gc.C) {
	defer log.SetOutput(os.Stderr)
	defer log.SetLevel(log.GetLevel())
	settings := DefaultSettings()
	settings.LogFile = filepath.Join(c.MkDir(), "boolpoly.log")
	settings.LogLevel = "WARN"
	c.Assert(settings.InitLog(), gc.IsNil)
	c.Check(log.GetLevel(), gc.Equals, log.WarnLevel)
	log.Warn("hello")
	data, err := os.ReadFile(settings.LogFile)
	c.Assert(err, gc.IsNil)
	c.Check(string(data), gc.Matches, `(?s).*hello.*`)

	settings.LogFile = ""
	settings.LogLevel = "verbose"
	c.Check(settings.InitLog(), gc.NotNil)
}
