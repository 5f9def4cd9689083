// Package metrics exposes run results to observability backends: Prometheus
// gauges on a scrape endpoint and point writes to InfluxDB.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/gridcost/core/report"
)

// PromSink exposes the latest run's summary metrics as Prometheus gauges.
type PromSink struct {
	dailyEnergy   prometheus.Gauge
	peakDemand    prometheus.Gauge
	loadFactor    prometheus.Gauge
	generatorKWh  prometheus.Gauge
	fuelLitres    prometheus.Gauge
	dailyCost     prometheus.Gauge
	costPerKWh    prometheus.Gauge
	overloadHours prometheus.Gauge
}

// NewPromSink registers the gauges on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers the gauges on the provided registerer.
// A nil registerer defaults to the global one.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		dailyEnergy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gridcost_daily_energy_kwh",
			Help: "Total household energy demand over the modeled day",
		}),
		peakDemand: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gridcost_peak_demand_kw",
			Help: "Peak hourly demand",
		}),
		loadFactor: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gridcost_load_factor",
			Help: "Average demand over peak demand",
		}),
		generatorKWh: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gridcost_generator_energy_kwh",
			Help: "Energy covered by the backup generator",
		}),
		fuelLitres: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gridcost_fuel_litres",
			Help: "Daily generator fuel consumption",
		}),
		dailyCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gridcost_daily_cost_ngn",
			Help: "Daily generator cost including maintenance and capital",
		}),
		costPerKWh: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gridcost_cost_per_kwh_ngn",
			Help: "Blended household cost per kWh",
		}),
		overloadHours: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gridcost_overload_hours",
			Help: "Hours where unmet demand exceeded generator capacity",
		}),
	}
	gauges := []prometheus.Gauge{
		s.dailyEnergy, s.peakDemand, s.loadFactor, s.generatorKWh,
		s.fuelLitres, s.dailyCost, s.costPerKWh, s.overloadHours,
	}
	for i, g := range gauges {
		if err := reg.Register(g); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				gauges[i] = are.ExistingCollector.(prometheus.Gauge)
				continue
			}
			return nil, err
		}
	}
	s.dailyEnergy, s.peakDemand, s.loadFactor, s.generatorKWh = gauges[0], gauges[1], gauges[2], gauges[3]
	s.fuelLitres, s.dailyCost, s.costPerKWh, s.overloadHours = gauges[4], gauges[5], gauges[6], gauges[7]
	return s, nil
}

// Record implements report.Sink.
func (s *PromSink) Record(r report.Report) error {
	sum := r.Summary
	s.dailyEnergy.Set(sum.Demand.TotalKWh)
	s.peakDemand.Set(sum.Demand.PeakKW)
	s.loadFactor.Set(sum.Demand.LoadFactor)
	s.generatorKWh.Set(sum.GeneratorKWh)
	s.fuelLitres.Set(sum.FuelLitres)
	s.dailyCost.Set(sum.TotalCostNGN)
	s.costPerKWh.Set(sum.CostPerKWh)
	s.overloadHours.Set(float64(len(r.Overloads)))
	return nil
}
