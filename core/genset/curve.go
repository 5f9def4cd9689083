// Package genset models the backup generator: the calibrated fuel-efficiency
// curve and the hourly fuel and cost computation for generator-covered
// demand.
package genset

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"github.com/kilianp07/gridcost/core/model"
)

// Curve interpolates the generator's calibration table. Between points both
// efficiency and fuel rate are linear; outside the calibrated range the
// nearest point's value is used. Clamping is the explicit out-of-range
// policy: the calibration data does not support extrapolation.
type Curve struct {
	minLoad float64
	maxLoad float64
	eff     interp.PiecewiseLinear
	fuel    interp.PiecewiseLinear
}

// NewCurve validates the operating points and fits the interpolators.
func NewCurve(points []model.OperatingPoint) (*Curve, error) {
	g := model.Generator{RatedKW: 1, EnergyDensity: 1, OperatingPoints: points}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	loads := make([]float64, len(points))
	effs := make([]float64, len(points))
	rates := make([]float64, len(points))
	for i, p := range points {
		loads[i] = p.LoadFraction
		effs[i] = p.Efficiency
		rates[i] = p.FuelLPerKWh
	}
	c := &Curve{minLoad: loads[0], maxLoad: loads[len(loads)-1]}
	if err := c.eff.Fit(loads, effs); err != nil {
		return nil, fmt.Errorf("fit efficiency curve: %w", err)
	}
	if err := c.fuel.Fit(loads, rates); err != nil {
		return nil, fmt.Errorf("fit fuel curve: %w", err)
	}
	return c, nil
}

func (c *Curve) clamp(loadFraction float64) float64 {
	if loadFraction < c.minLoad {
		return c.minLoad
	}
	if loadFraction > c.maxLoad {
		return c.maxLoad
	}
	return loadFraction
}

// EfficiencyAt returns the interpolated efficiency at the given load
// fraction, clamped to the calibrated range.
func (c *Curve) EfficiencyAt(loadFraction float64) float64 {
	return c.eff.Predict(c.clamp(loadFraction))
}

// FuelRateAt returns the interpolated fuel consumption in litres per kWh at
// the given load fraction, clamped to the calibrated range.
func (c *Curve) FuelRateAt(loadFraction float64) float64 {
	return c.fuel.Predict(c.clamp(loadFraction))
}
