package scan

import (
	"asset-registry/core/reconcile"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "asset_registry"

// Metrics exposes scan outcomes to Prometheus.
type Metrics struct {
	runs        *prometheus.CounterVec
	duration    prometheus.Histogram
	files       *prometheus.GaugeVec
	differences *prometheus.GaugeVec
	warning     prometheus.Gauge
	lastSuccess prometheus.Gauge
}

// NewMetrics creates the scan metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "runs_total",
			Help:      "Completed scan runs by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "duration_seconds",
			Help:      "Wall time of successful scan runs.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		files: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "files",
			Help:      "Workbooks seen by the last scan by outcome.",
		}, []string{"outcome"}),
		differences: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "differences",
			Help:      "Rows reported by the last scan by kind, summed over files.",
		}, []string{"kind"}),
		warning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "warning",
			Help:      "1 when the last scan found differences.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful scan.",
		}),
	}

	reg.MustRegister(m.runs, m.duration, m.files, m.differences, m.warning, m.lastSuccess)
	return m
}

// ObserveResult records a successful run.
func (m *Metrics) ObserveResult(r *reconcile.ScanResult) {
	m.runs.WithLabelValues("success").Inc()
	m.duration.Observe(r.Duration.Seconds())

	m.files.WithLabelValues("scanned").Set(float64(r.FilesScanned))
	m.files.WithLabelValues("skipped").Set(float64(r.FilesSkipped))
	m.files.WithLabelValues("failed").Set(float64(len(r.FileErrors)))

	var added, changed, missing int
	for _, f := range r.Files {
		added += len(f.NewRows)
		changed += len(f.ChangedRows)
		missing += len(f.MissingRows)
	}
	m.differences.WithLabelValues("new").Set(float64(added))
	m.differences.WithLabelValues("changed").Set(float64(changed))
	m.differences.WithLabelValues("missing").Set(float64(missing))

	if r.Status == reconcile.StatusWarning {
		m.warning.Set(1)
	} else {
		m.warning.Set(0)
	}
	m.lastSuccess.Set(float64(r.LastScan.Unix()))
}

// ObserveFailure records a run that did not publish.
func (m *Metrics) ObserveFailure() {
	m.runs.WithLabelValues("failure").Inc()
}
