// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package metrics

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalzilio/boolpoly"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func computeSome(t *testing.T) *boolpoly.Ring {
	r, err := boolpoly.New(4, boolpoly.Names("a", "b", "c", "d"))
	require.NoError(t, err)
	p, err := r.Parse("a*b + c + 1")
	require.NoError(t, err)
	q, err := r.Parse("b + d")
	require.NoError(t, err)
	r.Multiply(p, q)
	r.Multiply(q, p)
	r.Lead(p)
	return r
}

func TestRecord(t *testing.T) {
	r := computeSome(t)
	stats := r.Stats()
	m := NewMetrics()
	m.Record("test", stats)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.varnum.WithLabelValues("test")))
	assert.Equal(t, float64(stats.Allocated), testutil.ToFloat64(m.nodes.WithLabelValues("test", "allocated")))
	assert.Equal(t, float64(stats.UniqueHit), testutil.ToFloat64(m.unique.WithLabelValues("test", "hit")))
	for _, c := range stats.Caches {
		assert.Equal(t, float64(c.Hits), testutil.ToFloat64(m.cacheHits.WithLabelValues("test", c.Name)), c.Name)
		assert.Equal(t, float64(c.Misses), testutil.ToFloat64(m.cacheMisses.WithLabelValues("test", c.Name)), c.Name)
	}
	// the second product is found in the cache
	assert.LessOrEqual(t, 1.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("test", "multiply")))
	assert.Equal(t, len(stats.Caches), testutil.CollectAndCount(m.cacheEntries))

	// recording again only updates the gauges
	m.Record("test", r.Stats())
	assert.Equal(t, len(stats.Caches), testutil.CollectAndCount(m.cacheEntries))
}

func TestWriteText(t *testing.T) {
	m := NewMetrics()
	m.Record("test", computeSome(t).Stats())
	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	assert.Contains(t, buf.String(), "# TYPE boolpoly_cache_hits gauge")
	assert.Contains(t, buf.String(), `boolpoly_ring_variables{ring="test"} 4`)
	assert.Contains(t, buf.String(), `cache="lead-lp"`)
}

func TestHandler(t *testing.T) {
	m := NewMetrics()
	m.Record("test", computeSome(t).Stats())
	s := DefaultSettings()
	srv := httptest.NewServer(s.Mux(m))
	defer srv.Close()

	resp, err := http.Get(srv.URL + s.MetricsPath)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "boolpoly_ring_nodes")
}
