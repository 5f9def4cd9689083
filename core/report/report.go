// Package report assembles the hourly ledger and summary produced by one
// analysis run, and defines the sink boundary the export and metrics layers
// implement.
package report

import (
	"fmt"
	"time"

	"github.com/kilianp07/gridcost/core/analysis"
	"github.com/kilianp07/gridcost/core/genset"
	"github.com/kilianp07/gridcost/core/model"
)

// Row is one hour of the ledger.
type Row struct {
	Hour         int     `json:"hour"`
	Label        string  `json:"label"`
	DemandKWh    float64 `json:"demand_kwh"`
	GridKWh      float64 `json:"grid_kwh"`
	GeneratorKWh float64 `json:"generator_kwh"`
	LoadFraction float64 `json:"load_fraction"`
	Efficiency   float64 `json:"efficiency"`
	FuelLitres   float64 `json:"fuel_litres"`
	FuelCostNGN  float64 `json:"fuel_cost_ngn"`
	CumFuelL     float64 `json:"cum_fuel_litres"`
	CumCostNGN   float64 `json:"cum_cost_ngn"`
	Overloaded   bool    `json:"overloaded"`
}

// Report is the complete artifact of one run.
type Report struct {
	RunID       string                 `json:"run_id"`
	GeneratedAt time.Time              `json:"generated_at"`
	Scenario    string                 `json:"scenario"`
	Rows        [model.HoursPerDay]Row `json:"rows"`
	Summary     analysis.Economics     `json:"summary"`
	Overloads   []string               `json:"overloads,omitempty"`
}

// Build assembles the ledger from the pipeline outputs. Cumulative columns
// are running sums of the hourly columns.
func Build(runID, scenario string, at time.Time, demand, met, unmet model.Series, usage genset.Usage, econ analysis.Economics) Report {
	r := Report{RunID: runID, GeneratedAt: at, Scenario: scenario, Summary: econ}
	var cumFuel, cumCost float64
	for h := 0; h < model.HoursPerDay; h++ {
		hu := usage.Hours[h]
		cumFuel += hu.FuelLitres
		cumCost += hu.CostNGN
		r.Rows[h] = Row{
			Hour:         h,
			Label:        fmt.Sprintf("%02d:00", h),
			DemandKWh:    demand[h],
			GridKWh:      met[h],
			GeneratorKWh: unmet[h],
			LoadFraction: hu.LoadFraction,
			Efficiency:   hu.Efficiency,
			FuelLitres:   hu.FuelLitres,
			FuelCostNGN:  hu.CostNGN,
			CumFuelL:     cumFuel,
			CumCostNGN:   cumCost,
			Overloaded:   hu.Overloaded,
		}
	}
	for _, o := range usage.Overloads {
		r.Overloads = append(r.Overloads, o.Error())
	}
	return r
}

// Sink receives a finished report. Implementations must not mutate it.
type Sink interface {
	Record(Report) error
}

// NopSink discards reports.
type NopSink struct{}

// Record implements Sink.
func (NopSink) Record(Report) error { return nil }

// MultiSink fans a report out to several sinks, returning the first error
// encountered.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// Record implements Sink.
func (m *MultiSink) Record(r Report) error {
	for _, s := range m.Sinks {
		if err := s.Record(r); err != nil {
			return err
		}
	}
	return nil
}
