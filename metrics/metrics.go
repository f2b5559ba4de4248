// SPDX-License-Identifier: MIT

// Package metrics records sketch runs in a private Prometheus registry and
// dumps them in the text exposition format for the node_exporter textfile
// collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Registry holds the lvsketch collectors.
type Registry struct {
	reg *prometheus.Registry

	ComputeSeconds *prometheus.HistogramVec
	InputRows      prometheus.Gauge
	InputCols      prometheus.Gauge
	OutputRows     *prometheus.GaugeVec
	OutputCols     *prometheus.GaugeVec
	Correlation    *prometheus.GaugeVec
	Runs           *prometheus.CounterVec
}

// NewRegistry creates and registers every collector.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		ComputeSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvsketch_compute_seconds",
				Help:    "Wall time of the sketch computation in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
			},
			[]string{"kind"},
		),
		InputRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lvsketch_input_rows",
			Help: "Rows of the input matrix",
		}),
		InputCols: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lvsketch_input_cols",
			Help: "Columns of the input matrix",
		}),
		OutputRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lvsketch_output_rows",
			Help: "Rows kept by the sketch",
		}, []string{"kind"}),
		OutputCols: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lvsketch_output_cols",
			Help: "Columns kept by the sketch",
		}, []string{"kind"}),
		Correlation: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lvsketch_correlation",
			Help: "Row-distance correlation between the sketch and the input (1 is perfect)",
		}, []string{"kind"}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lvsketch_runs_total",
			Help: "Sketch runs by kind and status",
		}, []string{"kind", "status"}),
	}
	r.reg.MustRegister(
		r.ComputeSeconds, r.InputRows, r.InputCols,
		r.OutputRows, r.OutputCols, r.Correlation, r.Runs,
	)

	return r
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// Observe records one successful run.
func (r *Registry) Observe(kind string, elapsed time.Duration, inRows, inCols, outRows, outCols int, correlation float64) {
	r.ComputeSeconds.WithLabelValues(kind).Observe(elapsed.Seconds())
	r.InputRows.Set(float64(inRows))
	r.InputCols.Set(float64(inCols))
	r.OutputRows.WithLabelValues(kind).Set(float64(outRows))
	r.OutputCols.WithLabelValues(kind).Set(float64(outCols))
	r.Correlation.WithLabelValues(kind).Set(correlation)
	r.Runs.WithLabelValues(kind, StatusOK).Inc()
}

// Fail records one failed run.
func (r *Registry) Fail(kind string) {
	r.Runs.WithLabelValues(kind, StatusError).Inc()
}

// WriteTextfile writes every metric to path atomically.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
