package config

import (
	"fmt"

	"github.com/kilianp07/gridcost/core/analysis"
	"github.com/kilianp07/gridcost/core/grid"
	"github.com/kilianp07/gridcost/core/model"
)

// WindowConfig is one daily on-interval of an appliance.
type WindowConfig struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Duty  float64 `json:"duty"`
}

// ApplianceConfig describes one household load.
type ApplianceConfig struct {
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Quantity int            `json:"quantity"`
	PowerW   float64        `json:"power_w"`
	Windows  []WindowConfig `json:"windows"`
}

// HouseholdConfig holds the appliance inventory.
type HouseholdConfig struct {
	Appliances []ApplianceConfig `json:"appliances"`
}

// SetDefaults installs the built-in appliance table when none is configured.
func (c *HouseholdConfig) SetDefaults() {
	if len(c.Appliances) == 0 {
		c.Appliances = defaultAppliances()
	}
}

// Model converts the section into model types.
func (c HouseholdConfig) Model() []model.Appliance {
	out := make([]model.Appliance, len(c.Appliances))
	for i, a := range c.Appliances {
		windows := make([]model.Window, len(a.Windows))
		for j, w := range a.Windows {
			windows[j] = model.Window{Start: w.Start, End: w.End, Duty: w.Duty}
		}
		out[i] = model.Appliance{
			Name:     a.Name,
			Category: a.Category,
			Quantity: a.Quantity,
			PowerW:   a.PowerW,
			Windows:  windows,
		}
	}
	return out
}

// Validate checks the appliance table.
func (c HouseholdConfig) Validate() error {
	for _, a := range c.Model() {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// OutageConfig is one grid outage interval, hours [Start,End).
type OutageConfig struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// GridConfig models grid availability. Either a full 24-entry availability
// table or a list of outage windows; outages apply on top of full
// availability when the table is omitted.
type GridConfig struct {
	Availability []float64      `json:"availability"`
	Outages      []OutageConfig `json:"outages"`
}

// SetDefaults installs the built-in outage schedule.
func (c *GridConfig) SetDefaults() {
	if len(c.Availability) == 0 && len(c.Outages) == 0 {
		c.Outages = []OutageConfig{{Start: 19, End: 23}}
	}
}

// Model builds the hourly availability factors.
func (c GridConfig) Model() grid.Availability {
	var a grid.Availability
	if len(c.Availability) == model.HoursPerDay {
		copy(a[:], c.Availability)
		return a
	}
	for h := range a {
		a[h] = 1
	}
	for _, o := range c.Outages {
		for h := o.Start; h < o.End && h < model.HoursPerDay; h++ {
			if h >= 0 {
				a[h] = 0
			}
		}
	}
	return a
}

// Validate checks the availability factors and the outage windows.
func (c GridConfig) Validate() error {
	if n := len(c.Availability); n != 0 && n != model.HoursPerDay {
		return &model.ValidationError{Field: "grid.availability", Reason: "must have exactly 24 entries"}
	}
	for i, o := range c.Outages {
		if o.Start < 0 || o.End > model.HoursPerDay || o.Start >= o.End {
			return &model.ValidationError{
				Field:  "grid.outages",
				Reason: fmt.Sprintf("window %d: hours %d..%d must satisfy 0 <= start < end <= 24", i, o.Start, o.End),
			}
		}
	}
	return c.Model().Validate()
}

// OperatingPointConfig is one fuel-curve calibration pair.
type OperatingPointConfig struct {
	LoadFraction float64 `json:"load_fraction"`
	Efficiency   float64 `json:"efficiency"`
	FuelLPerKWh  float64 `json:"fuel_l_per_kwh"`
}

// GeneratorConfig holds the backup generator parameters.
type GeneratorConfig struct {
	Name            string                 `json:"name"`
	RatedKW         float64                `json:"rated_kw"`
	FuelPriceNGN    float64                `json:"fuel_price_ngn"`
	EnergyDensity   float64                `json:"energy_density_kwh_per_l"`
	OperatingPoints []OperatingPointConfig `json:"operating_points"`
}

// SetDefaults installs the built-in 11 kVA petrol generator.
func (c *GeneratorConfig) SetDefaults() {
	if c.RatedKW == 0 && len(c.OperatingPoints) == 0 {
		*c = defaultGenerator()
		return
	}
	if c.EnergyDensity == 0 {
		c.EnergyDensity = 9.7
	}
}

// Model converts the section into the model type.
func (c GeneratorConfig) Model() model.Generator {
	points := make([]model.OperatingPoint, len(c.OperatingPoints))
	for i, p := range c.OperatingPoints {
		points[i] = model.OperatingPoint{LoadFraction: p.LoadFraction, Efficiency: p.Efficiency, FuelLPerKWh: p.FuelLPerKWh}
	}
	return model.Generator{
		Name:            c.Name,
		RatedKW:         c.RatedKW,
		FuelPriceNGN:    c.FuelPriceNGN,
		EnergyDensity:   c.EnergyDensity,
		OperatingPoints: points,
	}
}

// Validate checks the generator parameters.
func (c GeneratorConfig) Validate() error { return c.Model().Validate() }

// EconomicsConfig mirrors analysis.EconomicsConfig with config defaults.
// Fields are pointers so an explicit zero in the file (free grid power, no
// resale value) is distinct from an omitted key.
type EconomicsConfig struct {
	GridTariffNGN     *float64 `json:"grid_tariff_ngn"`
	MaintenanceFactor *float64 `json:"maintenance_factor"`
	PurchasePriceNGN  *float64 `json:"purchase_price_ngn"`
	LifespanYears     *float64 `json:"lifespan_years"`
	ResaleFraction    *float64 `json:"resale_fraction"`
	EmissionKgPerL    *float64 `json:"emission_kg_per_l"`
}

func f64(v float64) *float64 { return &v }

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// SetDefaults installs current market constants for omitted keys.
func (c *EconomicsConfig) SetDefaults() {
	if c.GridTariffNGN == nil {
		c.GridTariffNGN = f64(110)
	}
	if c.MaintenanceFactor == nil {
		c.MaintenanceFactor = f64(1.2)
	}
	if c.PurchasePriceNGN == nil {
		c.PurchasePriceNGN = f64(850000)
	}
	if c.LifespanYears == nil {
		c.LifespanYears = f64(3)
	}
	if c.ResaleFraction == nil {
		c.ResaleFraction = f64(0.3)
	}
	if c.EmissionKgPerL == nil {
		c.EmissionKgPerL = f64(2.3)
	}
}

// Model converts the section into the analysis type.
func (c EconomicsConfig) Model() analysis.EconomicsConfig {
	return analysis.EconomicsConfig{
		GridTariffNGN:     deref(c.GridTariffNGN),
		MaintenanceFactor: deref(c.MaintenanceFactor),
		PurchasePriceNGN:  deref(c.PurchasePriceNGN),
		LifespanYears:     deref(c.LifespanYears),
		ResaleFraction:    deref(c.ResaleFraction),
		EmissionKgPerL:    deref(c.EmissionKgPerL),
	}
}

// SensitivityConfig mirrors analysis.SweepConfig.
type SensitivityConfig struct {
	MinPriceNGN       float64 `json:"min_price_ngn"`
	MaxPriceNGN       float64 `json:"max_price_ngn"`
	Steps             int     `json:"steps"`
	MaintenanceFactor float64 `json:"maintenance_factor"`
}

// SetDefaults installs the built-in sweep range.
func (c *SensitivityConfig) SetDefaults() {
	if c.MinPriceNGN == 0 {
		c.MinPriceNGN = 500
	}
	if c.MaxPriceNGN == 0 {
		c.MaxPriceNGN = 1200
	}
	if c.Steps == 0 {
		c.Steps = 15
	}
	if c.MaintenanceFactor == 0 {
		c.MaintenanceFactor = 1.2
	}
}

// Model converts the section into the analysis type.
func (c SensitivityConfig) Model() analysis.SweepConfig {
	return analysis.SweepConfig{
		MinPriceNGN:       c.MinPriceNGN,
		MaxPriceNGN:       c.MaxPriceNGN,
		Steps:             c.Steps,
		MaintenanceFactor: c.MaintenanceFactor,
	}
}
