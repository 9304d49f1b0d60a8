// Package metrics records simulation runs as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder tracks run counts, generated samples and run latency.
type Recorder struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	samples  *prometheus.CounterVec
	steps    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a Recorder backed by its own registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stocksim_runs_total",
				Help: "Total number of simulation runs by scheme and outcome",
			},
			[]string{"scheme", "mode", "status"},
		),
		samples: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stocksim_samples_total",
				Help: "Total number of sample paths generated",
			},
			[]string{"scheme"},
		),
		steps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stocksim_steps_total",
				Help: "Total number of time steps integrated across all paths",
			},
			[]string{"scheme"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stocksim_run_duration_seconds",
				Help:    "Wall-clock duration of simulation runs",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"scheme"},
		),
	}
}

// ObserveRun records one finished run. Failed runs only bump the run counter.
func (r *Recorder) ObserveRun(scheme, mode string, samples, steps int, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.runs.WithLabelValues(scheme, mode, status).Inc()
	if err != nil {
		return
	}

	r.samples.WithLabelValues(scheme).Add(float64(samples))
	if steps > 1 {
		r.steps.WithLabelValues(scheme).Add(float64(samples * (steps - 1)))
	}
	r.duration.WithLabelValues(scheme).Observe(elapsed.Seconds())
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteFile dumps the current metrics in the text exposition format.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
