package genset

import (
	"fmt"

	"github.com/kilianp07/gridcost/core/model"
)

// HourUsage is the generator's state for one hour slot.
type HourUsage struct {
	Hour         int
	EnergyKWh    float64 // unmet demand served by the generator
	LoadFraction float64 // energy / rated capacity, before clamping
	Efficiency   float64
	FuelLitres   float64
	CostNGN      float64
	Overloaded   bool
}

// Usage aggregates a full day of generator operation.
type Usage struct {
	Hours      [model.HoursPerDay]HourUsage
	FuelLitres float64
	CostNGN    float64

	// Overloads lists every hour whose load fraction exceeded 1. The fuel
	// figures for those hours are computed at the clamped fraction, so the
	// caller must surface these rather than trust the totals blindly.
	Overloads []*model.CapacityExceededError
}

// Overloaded reports whether any hour exceeded the rated capacity.
func (u Usage) Overloaded() bool { return len(u.Overloads) > 0 }

// Run computes the generator's hourly fuel burn and cost for the unmet demand
// series. Hours with zero unmet demand consume nothing: the set is assumed
// off rather than idling.
func Run(unmet model.Series, gen model.Generator) (Usage, error) {
	if err := gen.Validate(); err != nil {
		return Usage{}, err
	}
	curve, err := NewCurve(gen.OperatingPoints)
	if err != nil {
		return Usage{}, err
	}
	var u Usage
	for h := 0; h < model.HoursPerDay; h++ {
		energy := unmet[h]
		if energy < 0 {
			return Usage{}, &model.ValidationError{
				Field:  "unmet_demand",
				Reason: fmt.Sprintf("hour %d: %g is negative", h, energy),
			}
		}
		hu := HourUsage{Hour: h, EnergyKWh: energy}
		if energy > 0 {
			hu.LoadFraction = energy / gen.RatedKW
			if hu.LoadFraction > 1 {
				hu.Overloaded = true
				u.Overloads = append(u.Overloads, &model.CapacityExceededError{Hour: h, LoadFraction: hu.LoadFraction})
			}
			hu.Efficiency = curve.EfficiencyAt(hu.LoadFraction)
			hu.FuelLitres = energy * curve.FuelRateAt(hu.LoadFraction)
			hu.CostNGN = hu.FuelLitres * gen.FuelPriceNGN
		}
		u.Hours[h] = hu
		u.FuelLitres += hu.FuelLitres
		u.CostNGN += hu.CostNGN
	}
	return u, nil
}
