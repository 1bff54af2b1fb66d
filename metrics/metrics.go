// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package metrics exports the statistics of a ring, such as the size of the
// node table or the hit rate of the operation caches, as Prometheus metrics.
package metrics

import (
	"io"
	"net/http"

	"github.com/dalzilio/boolpoly"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
	log "github.com/sirupsen/logrus"
)

const namespace = "boolpoly"

// Metrics holds the gauges describing one or more rings. Rings are not safe
// for concurrent use, so values are only updated when Record is called, never
// while a scrape is in progress.
type Metrics struct {
	registry     *prometheus.Registry
	varnum       *prometheus.GaugeVec
	nodes        *prometheus.GaugeVec
	unique       *prometheus.GaugeVec
	cacheEntries *prometheus.GaugeVec
	cacheHits    *prometheus.GaugeVec
	cacheMisses  *prometheus.GaugeVec
}

// NewMetrics returns a new set of metrics, registered in their own registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		varnum: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "ring_variables",
				Help:      "Number of variables of the ring",
			},
			[]string{"ring"},
		),
		nodes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "ring_nodes",
				Help:      "Number of nodes in the node table (allocated) or ever created (produced)",
			},
			[]string{"ring", "kind"},
		),
		unique: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "ring_unique_lookups",
				Help:      "Lookups in the unique node table, by result",
			},
			[]string{"ring", "result"},
		),
		cacheEntries: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "cache_entries",
				Help:      "Number of entries stored in an operation cache",
			},
			[]string{"ring", "cache"},
		),
		cacheHits: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "cache_hits",
				Help:      "Number of lookups found in an operation cache",
			},
			[]string{"ring", "cache"},
		),
		cacheMisses: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "cache_misses",
				Help:      "Number of lookups not found in an operation cache",
			},
			[]string{"ring", "cache"},
		),
	}
	m.registry.MustRegister(m.varnum, m.nodes, m.unique, m.cacheEntries, m.cacheHits, m.cacheMisses)
	return m
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Record updates the metrics of the ring with the given name from a snapshot
// of its statistics.
func (m *Metrics) Record(ring string, s boolpoly.Stats) {
	m.varnum.WithLabelValues(ring).Set(float64(s.Varnum))
	m.nodes.WithLabelValues(ring, "allocated").Set(float64(s.Allocated))
	m.nodes.WithLabelValues(ring, "produced").Set(float64(s.Produced))
	m.unique.WithLabelValues(ring, "hit").Set(float64(s.UniqueHit))
	m.unique.WithLabelValues(ring, "miss").Set(float64(s.UniqueMiss))
	for _, c := range s.Caches {
		m.cacheEntries.WithLabelValues(ring, c.Name).Set(float64(c.Entries))
		m.cacheHits.WithLabelValues(ring, c.Name).Set(float64(c.Hits))
		m.cacheMisses.WithLabelValues(ring, c.Name).Set(float64(c.Misses))
	}
	log.Debugf("metrics: recorded %d caches for ring %q", len(s.Caches), ring)
}

// Handler returns an HTTP handler serving the metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// WriteText writes the current value of the metrics using the Prometheus text
// exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "cannot gather metrics")
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, f := range families {
		if err := enc.Encode(f); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
