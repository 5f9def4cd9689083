package model

import "fmt"

// OperatingPoint is one calibration pair on the generator's fuel-efficiency
// curve: at LoadFraction of rated capacity the set runs at Efficiency and
// burns FuelLPerKWh litres per kWh produced.
type OperatingPoint struct {
	LoadFraction float64 // fraction of rated capacity, 0..1
	Efficiency   float64 // relative efficiency fraction, 0..1
	FuelLPerKWh  float64 // fuel consumption rate at this point
}

// Generator holds the static parameters of the backup generator set.
type Generator struct {
	Name            string
	RatedKW         float64 // usable electrical capacity
	FuelPriceNGN    float64 // price per litre
	EnergyDensity   float64 // fuel energy content in kWh per litre
	OperatingPoints []OperatingPoint
}

// Validate checks the generator parameters and the calibration table. Points
// must be strictly increasing in load fraction so the interpolation is well
// defined.
func (g Generator) Validate() error {
	if g.RatedKW <= 0 {
		return &ValidationError{Field: "generator.rated_kw", Reason: fmt.Sprintf("capacity %g must be positive", g.RatedKW)}
	}
	if g.FuelPriceNGN < 0 {
		return &ValidationError{Field: "generator.fuel_price_ngn", Reason: fmt.Sprintf("price %g is negative", g.FuelPriceNGN)}
	}
	if g.EnergyDensity <= 0 {
		return &ValidationError{Field: "generator.energy_density", Reason: fmt.Sprintf("density %g must be positive", g.EnergyDensity)}
	}
	if len(g.OperatingPoints) < 2 {
		return &ValidationError{Field: "generator.operating_points", Reason: "at least two calibration points required"}
	}
	prev := -1.0
	for i, p := range g.OperatingPoints {
		if p.LoadFraction < 0 || p.LoadFraction > 1 {
			return &ValidationError{Field: "generator.operating_points", Reason: fmt.Sprintf("point %d: load fraction %g out of range 0..1", i, p.LoadFraction)}
		}
		if p.LoadFraction <= prev {
			return &ValidationError{Field: "generator.operating_points", Reason: fmt.Sprintf("point %d: load fractions must be strictly increasing", i)}
		}
		if p.Efficiency <= 0 || p.Efficiency > 1 {
			return &ValidationError{Field: "generator.operating_points", Reason: fmt.Sprintf("point %d: efficiency %g out of range (0,1]", i, p.Efficiency)}
		}
		if p.FuelLPerKWh < 0 {
			return &ValidationError{Field: "generator.operating_points", Reason: fmt.Sprintf("point %d: fuel rate %g is negative", i, p.FuelLPerKWh)}
		}
		prev = p.LoadFraction
	}
	return nil
}
