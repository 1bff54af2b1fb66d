// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package metrics

import "net/http"

// Settings are the address and path where metrics are served.
type Settings struct {
	MetricsAddr string `toml:"metricsAddr" yaml:"metricsAddr"`
	MetricsPath string `toml:"metricsPath" yaml:"metricsPath"`
}

// DefaultSettings returns the default address and path of the metrics
// endpoint.
func DefaultSettings() *Settings {
	return &Settings{
		MetricsAddr: ":9626",
		MetricsPath: "/metrics",
	}
}

// Mux returns a request multiplexer serving m on the path given in s.
func (s *Settings) Mux(m *Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(s.MetricsPath, m.Handler())
	return mux
}
