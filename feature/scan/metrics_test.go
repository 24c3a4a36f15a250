package scan

import (
	"testing"

	"asset-registry/core/reconcile"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gathered returns the value of the series of name whose label matches, or -1.
func gathered(t *testing.T, reg *prometheus.Registry, name, label, value string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			match := label == ""
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					match = true
				}
			}
			if !match {
				continue
			}
			switch {
			case m.GetCounter() != nil:
				return m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				return m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				return float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return -1
}

func TestMetrics_ObserveResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := warningResult()
	r.FilesSkipped = 1
	r.FileErrors = []reconcile.FileError{{File: "bad.xlsx", Error: "zip"}}
	m.ObserveResult(r)

	assert.Equal(t, 1.0, gathered(t, reg, "asset_registry_scan_runs_total", "result", "success"))
	assert.Equal(t, 1.0, gathered(t, reg, "asset_registry_scan_duration_seconds", "", ""))
	assert.Equal(t, 2.0, gathered(t, reg, "asset_registry_scan_files", "outcome", "scanned"))
	assert.Equal(t, 1.0, gathered(t, reg, "asset_registry_scan_files", "outcome", "skipped"))
	assert.Equal(t, 1.0, gathered(t, reg, "asset_registry_scan_files", "outcome", "failed"))
	assert.Equal(t, 1.0, gathered(t, reg, "asset_registry_scan_differences", "kind", "new"))
	assert.Equal(t, 2.0, gathered(t, reg, "asset_registry_scan_differences", "kind", "changed"))
	assert.Equal(t, 0.0, gathered(t, reg, "asset_registry_scan_differences", "kind", "missing"))
	assert.Equal(t, 1.0, gathered(t, reg, "asset_registry_scan_warning", "", ""))
	assert.Equal(t, float64(r.LastScan.Unix()), gathered(t, reg, "asset_registry_scan_last_success_timestamp_seconds", "", ""))

	r.Status = reconcile.StatusOK
	m.ObserveResult(r)
	assert.Equal(t, 0.0, gathered(t, reg, "asset_registry_scan_warning", "", ""))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}
