// Package export writes the hourly ledger and the cost summary as CSV files,
// the tabular artifacts consumed downstream of a run.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/kilianp07/gridcost/core/report"
)

// CSVSink writes both tables when a report is recorded.
type CSVSink struct {
	HourlyPath  string
	SummaryPath string
}

// Record implements report.Sink.
func (s CSVSink) Record(r report.Report) error {
	if err := WriteHourlyCSV(s.HourlyPath, r); err != nil {
		return fmt.Errorf("hourly ledger: %w", err)
	}
	if err := WriteSummaryCSV(s.SummaryPath, r); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	return nil
}

// WriteHourlyCSV writes the 24-row ledger.
func WriteHourlyCSV(path string, r report.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"hour",
		"time",
		"demand_kwh",
		"grid_kwh",
		"generator_kwh",
		"load_fraction",
		"efficiency",
		"fuel_litres",
		"fuel_cost_ngn",
		"cum_fuel_litres",
		"cum_cost_ngn",
		"overloaded",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range r.Rows {
		rec := []string{
			strconv.Itoa(row.Hour),
			row.Label,
			fmtFloat(row.DemandKWh),
			fmtFloat(row.GridKWh),
			fmtFloat(row.GeneratorKWh),
			fmtFloat(row.LoadFraction),
			fmtFloat(row.Efficiency),
			fmtFloat(row.FuelLitres),
			fmtFloat(row.FuelCostNGN),
			fmtFloat(row.CumFuelL),
			fmtFloat(row.CumCostNGN),
			strconv.FormatBool(row.Overloaded),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteSummaryCSV writes the scalar metrics as a two-column table.
func WriteSummaryCSV(path string, r report.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	s := r.Summary
	rows := [][]string{
		{"metric", "value"},
		{"run_id", r.RunID},
		{"scenario", r.Scenario},
		{"daily_energy_kwh", fmtFloat(s.Demand.TotalKWh)},
		{"peak_demand_kw", fmtFloat(s.Demand.PeakKW)},
		{"average_demand_kw", fmtFloat(s.Demand.AverageKW)},
		{"load_factor", fmtFloat(s.Demand.LoadFactor)},
		{"grid_energy_kwh", fmtFloat(s.GridKWh)},
		{"generator_energy_kwh", fmtFloat(s.GeneratorKWh)},
		{"grid_cost_ngn", fmtFloat(s.GridCostNGN)},
		{"fuel_litres", fmtFloat(s.FuelLitres)},
		{"fuel_cost_ngn", fmtFloat(s.FuelCostNGN)},
		{"maintained_cost_ngn", fmtFloat(s.MaintainedCostNGN)},
		{"daily_capital_ngn", fmtFloat(s.DailyCapitalNGN)},
		{"total_cost_ngn", fmtFloat(s.TotalCostNGN)},
		{"cost_per_kwh_fuel_ngn", fmtFloat(s.CostPerKWhFuel)},
		{"cost_per_kwh_maint_ngn", fmtFloat(s.CostPerKWhMaint)},
		{"cost_per_kwh_capital_ngn", fmtFloat(s.CostPerKWhCapital)},
		{"cost_per_kwh_blended_ngn", fmtFloat(s.CostPerKWh)},
		{"grid_premium", fmtFloat(s.GridPremium)},
		{"capacity_factor", fmtFloat(s.CapacityFactor)},
		{"overall_efficiency", fmtFloat(s.OverallEfficiency)},
		{"co2_kg", fmtFloat(s.CO2Kg)},
		{"monthly_fuel_litres", fmtFloat(s.Monthly.FuelLitres)},
		{"monthly_total_cost_ngn", fmtFloat(s.Monthly.WithCapitalNGN)},
		{"annual_fuel_litres", fmtFloat(s.Annual.FuelLitres)},
		{"annual_total_cost_ngn", fmtFloat(s.Annual.WithCapitalNGN)},
	}
	for _, rec := range rows {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
