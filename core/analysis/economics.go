package analysis

import (
	"fmt"

	"github.com/kilianp07/gridcost/core/genset"
	"github.com/kilianp07/gridcost/core/model"
)

// Monthly and annual projections are stated linear extrapolations of the
// daily figures, not forecasts.
const (
	DaysPerMonth = 30
	DaysPerYear  = 365
)

// EconomicsConfig holds the financial constants of the scenario.
type EconomicsConfig struct {
	GridTariffNGN     float64 `json:"grid_tariff_ngn"`
	MaintenanceFactor float64 `json:"maintenance_factor"` // multiplier on fuel cost, >= 1
	PurchasePriceNGN  float64 `json:"purchase_price_ngn"`
	LifespanYears     float64 `json:"lifespan_years"`
	ResaleFraction    float64 `json:"resale_fraction"` // residual value after lifespan, 0..1
	EmissionKgPerL    float64 `json:"emission_kg_per_l"`
}

// Validate checks the economic constants.
func (c EconomicsConfig) Validate() error {
	if c.GridTariffNGN < 0 {
		return &model.ValidationError{Field: "economics.grid_tariff_ngn", Reason: fmt.Sprintf("%g is negative", c.GridTariffNGN)}
	}
	if c.MaintenanceFactor < 1 {
		return &model.ValidationError{Field: "economics.maintenance_factor", Reason: fmt.Sprintf("%g must be at least 1", c.MaintenanceFactor)}
	}
	if c.PurchasePriceNGN < 0 {
		return &model.ValidationError{Field: "economics.purchase_price_ngn", Reason: fmt.Sprintf("%g is negative", c.PurchasePriceNGN)}
	}
	if c.LifespanYears <= 0 {
		return &model.ValidationError{Field: "economics.lifespan_years", Reason: fmt.Sprintf("%g must be positive", c.LifespanYears)}
	}
	if c.ResaleFraction < 0 || c.ResaleFraction > 1 {
		return &model.ValidationError{Field: "economics.resale_fraction", Reason: fmt.Sprintf("%g out of range 0..1", c.ResaleFraction)}
	}
	if c.EmissionKgPerL < 0 {
		return &model.ValidationError{Field: "economics.emission_kg_per_l", Reason: fmt.Sprintf("%g is negative", c.EmissionKgPerL)}
	}
	return nil
}

// Projection extends the daily figures over a fixed number of days.
type Projection struct {
	Days            int
	FuelLitres      float64
	FuelCostNGN     float64
	TotalCostNGN    float64 // fuel + maintenance uplift
	WithCapitalNGN  float64 // plus amortized capital
	GridCostNGN     float64
	CombinedCostNGN float64 // grid + generator with capital
	CO2Kg           float64
}

// Economics is the full financial and efficiency picture of one day.
type Economics struct {
	Demand DemandStats

	GridKWh      float64
	GeneratorKWh float64
	GridCostNGN  float64

	FuelLitres        float64
	FuelCostNGN       float64
	MaintainedCostNGN float64 // fuel cost with maintenance uplift
	DailyCapitalNGN   float64
	TotalCostNGN      float64 // maintained + capital

	// Cost per generator-supplied kWh at the three tiers. Zero when the
	// generator supplied nothing.
	CostPerKWhFuel    float64
	CostPerKWhMaint   float64
	CostPerKWhCapital float64

	// CostPerKWh is the blended household figure: all supply costs over all
	// energy consumed.
	CostPerKWh float64

	GridPremium       float64 // generator cost per kWh over the grid tariff
	CapacityFactor    float64 // average generator load over rated capacity
	OverallEfficiency float64 // electrical energy out over fuel energy in
	CO2Kg             float64

	Monthly Projection
	Annual  Projection
}

// Evaluate combines the demand statistics, the grid split and the generator
// usage into the daily economics. Total energy of zero has no defined cost
// per kWh and yields an UndefinedMetricError.
func Evaluate(stats DemandStats, met, unmet model.Series, usage genset.Usage, gen model.Generator, cfg EconomicsConfig) (Economics, error) {
	if err := cfg.Validate(); err != nil {
		return Economics{}, err
	}
	if stats.TotalKWh == 0 {
		return Economics{}, &model.UndefinedMetricError{Metric: "cost_per_kwh"}
	}

	e := Economics{
		Demand:       stats,
		GridKWh:      met.Total(),
		GeneratorKWh: unmet.Total(),
		FuelLitres:   usage.FuelLitres,
		FuelCostNGN:  usage.CostNGN,
	}
	e.GridCostNGN = e.GridKWh * cfg.GridTariffNGN
	e.MaintainedCostNGN = e.FuelCostNGN * cfg.MaintenanceFactor

	annualCapital := cfg.PurchasePriceNGN * (1 - cfg.ResaleFraction) / cfg.LifespanYears
	e.DailyCapitalNGN = annualCapital / DaysPerYear
	e.TotalCostNGN = e.MaintainedCostNGN + e.DailyCapitalNGN

	if e.GeneratorKWh > 0 {
		e.CostPerKWhFuel = e.FuelCostNGN / e.GeneratorKWh
		e.CostPerKWhMaint = e.MaintainedCostNGN / e.GeneratorKWh
		e.CostPerKWhCapital = e.TotalCostNGN / e.GeneratorKWh
		if cfg.GridTariffNGN > 0 {
			e.GridPremium = e.CostPerKWhCapital / cfg.GridTariffNGN
		}
	}
	e.CostPerKWh = (e.GridCostNGN + e.TotalCostNGN) / stats.TotalKWh

	e.CapacityFactor = (e.GeneratorKWh / model.HoursPerDay) / gen.RatedKW
	if e.FuelLitres > 0 {
		e.OverallEfficiency = e.GeneratorKWh / (e.FuelLitres * gen.EnergyDensity)
	}
	e.CO2Kg = e.FuelLitres * cfg.EmissionKgPerL

	e.Monthly = e.project(DaysPerMonth)
	e.Annual = e.project(DaysPerYear)
	return e, nil
}

func (e Economics) project(days int) Projection {
	d := float64(days)
	return Projection{
		Days:            days,
		FuelLitres:      e.FuelLitres * d,
		FuelCostNGN:     e.FuelCostNGN * d,
		TotalCostNGN:    e.MaintainedCostNGN * d,
		WithCapitalNGN:  e.TotalCostNGN * d,
		GridCostNGN:     e.GridCostNGN * d,
		CombinedCostNGN: (e.GridCostNGN + e.TotalCostNGN) * d,
		CO2Kg:           e.CO2Kg * d,
	}
}
