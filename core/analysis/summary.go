// Package analysis derives scalar summary metrics and the economic picture
// from the hourly series. Every function is a pure reduction: calling it
// twice on the same input yields bit-identical output.
package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/gridcost/core/model"
)

// DemandStats are the scalar reductions over the desired-demand series.
type DemandStats struct {
	TotalKWh   float64
	PeakKW     float64
	AverageKW  float64
	LoadFactor float64 // average / peak, in (0,1] whenever peak > 0
}

// Summarize reduces the demand series. An all-zero series has no defined load
// factor and is reported as an UndefinedMetricError rather than a NaN.
func Summarize(demand model.Series) (DemandStats, error) {
	for h, v := range demand {
		if v < 0 {
			return DemandStats{}, &model.ValidationError{
				Field:  "demand",
				Reason: fmt.Sprintf("hour %d: negative value %g", h, v),
			}
		}
	}
	total := floats.Sum(demand[:])
	peak := floats.Max(demand[:])
	if peak == 0 {
		return DemandStats{}, &model.UndefinedMetricError{Metric: "load_factor"}
	}
	avg := total / model.HoursPerDay
	return DemandStats{
		TotalKWh:   total,
		PeakKW:     peak,
		AverageKW:  avg,
		LoadFactor: avg / peak,
	}, nil
}
