package analysis

import (
	"fmt"

	"github.com/kilianp07/gridcost/core/model"
)

// SweepConfig describes a fuel-price sensitivity sweep.
type SweepConfig struct {
	MinPriceNGN       float64 `json:"min_price_ngn"`
	MaxPriceNGN       float64 `json:"max_price_ngn"`
	Steps             int     `json:"steps"`
	MaintenanceFactor float64 `json:"maintenance_factor"`
}

// Validate checks the sweep bounds.
func (c SweepConfig) Validate() error {
	if c.MinPriceNGN < 0 {
		return &model.ValidationError{Field: "sensitivity.min_price_ngn", Reason: fmt.Sprintf("%g is negative", c.MinPriceNGN)}
	}
	if c.MaxPriceNGN <= c.MinPriceNGN {
		return &model.ValidationError{Field: "sensitivity.max_price_ngn", Reason: fmt.Sprintf("%g must exceed min %g", c.MaxPriceNGN, c.MinPriceNGN)}
	}
	if c.Steps < 2 {
		return &model.ValidationError{Field: "sensitivity.steps", Reason: fmt.Sprintf("%d must be at least 2", c.Steps)}
	}
	if c.MaintenanceFactor < 1 {
		return &model.ValidationError{Field: "sensitivity.maintenance_factor", Reason: fmt.Sprintf("%g must be at least 1", c.MaintenanceFactor)}
	}
	return nil
}

// PricePoint is one sample of the sweep: the daily operating cost (with
// maintenance uplift) at a hypothetical fuel price.
type PricePoint struct {
	FuelPriceNGN float64
	DailyCostNGN float64
}

// FuelPriceSweep evaluates the daily operating cost over an evenly spaced
// range of fuel prices, holding the fuel volume fixed. The result is strictly
// increasing in price whenever any fuel is burned.
func FuelPriceSweep(fuelLitres float64, cfg SweepConfig) ([]PricePoint, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fuelLitres < 0 {
		return nil, &model.ValidationError{Field: "fuel_litres", Reason: fmt.Sprintf("%g is negative", fuelLitres)}
	}
	points := make([]PricePoint, cfg.Steps)
	step := (cfg.MaxPriceNGN - cfg.MinPriceNGN) / float64(cfg.Steps-1)
	for i := range points {
		price := cfg.MinPriceNGN + float64(i)*step
		points[i] = PricePoint{
			FuelPriceNGN: price,
			DailyCostNGN: fuelLitres * price * cfg.MaintenanceFactor,
		}
	}
	return points, nil
}
