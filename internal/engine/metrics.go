package engine

import (
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// Frame counter names.
const (
	MetricFrames  = "energyflow.frames"
	MetricErrors  = "energyflow.frame.errors"
	MetricSkipped = "energyflow.frame.skipped"
)

// CounterTotals sums every int64 counter in a collected batch by name.
func CounterTotals(rm metricdata.ResourceMetrics) map[string]int64 {
	out := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				out[m.Name] += dp.Value
			}
		}
	}
	return out
}
