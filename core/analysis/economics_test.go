package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/gridcost/core/genset"
	"github.com/kilianp07/gridcost/core/grid"
	"github.com/kilianp07/gridcost/core/model"
)

func testGenerator() model.Generator {
	return model.Generator{
		Name:          "11 kVA petrol",
		RatedKW:       8.8,
		FuelPriceNGN:  900,
		EnergyDensity: 9.7,
		OperatingPoints: []model.OperatingPoint{
			{LoadFraction: 0.25, Efficiency: 0.60, FuelLPerKWh: 0.727},
			{LoadFraction: 0.50, Efficiency: 0.70, FuelLPerKWh: 0.636},
			{LoadFraction: 0.75, Efficiency: 0.75, FuelLPerKWh: 0.606},
			{LoadFraction: 1.00, Efficiency: 0.78, FuelLPerKWh: 0.591},
		},
	}
}

func testEconomicsConfig() EconomicsConfig {
	return EconomicsConfig{
		GridTariffNGN:     110,
		MaintenanceFactor: 1.2,
		PurchasePriceNGN:  850000,
		LifespanYears:     3,
		ResaleFraction:    0.3,
		EmissionKgPerL:    2.3,
	}
}

func evaluateScenario(t *testing.T) Economics {
	t.Helper()
	demand := model.Series{0.45, 0.45, 0.45, 0.45, 0.45, 0.45, 2.2, 3.5, 1.8, 0.8, 0.65, 0.65,
		0.65, 1.8, 1.4, 0.9, 0.8, 1.6, 1.4, 2.8, 3.2, 2.4, 2.1, 1.5}
	var avail grid.Availability
	for h := range avail {
		avail[h] = 1
	}
	avail[19], avail[20], avail[21], avail[22] = 0, 0, 0, 0

	met, unmet, err := grid.Split(demand, avail)
	require.NoError(t, err)
	usage, err := genset.Run(unmet, testGenerator())
	require.NoError(t, err)
	stats, err := Summarize(demand)
	require.NoError(t, err)
	econ, err := Evaluate(stats, met, unmet, usage, testGenerator(), testEconomicsConfig())
	require.NoError(t, err)
	return econ
}

func TestEvaluateTiersMonotone(t *testing.T) {
	e := evaluateScenario(t)
	assert.Greater(t, e.CostPerKWhFuel, 0.0)
	assert.LessOrEqual(t, e.CostPerKWhFuel, e.CostPerKWhMaint)
	assert.LessOrEqual(t, e.CostPerKWhMaint, e.CostPerKWhCapital)
}

func TestEvaluateEnergyConservation(t *testing.T) {
	e := evaluateScenario(t)
	assert.InDelta(t, e.Demand.TotalKWh, e.GridKWh+e.GeneratorKWh, 1e-9)
}

func TestEvaluateProjectionsAreLinear(t *testing.T) {
	e := evaluateScenario(t)
	assert.Equal(t, e.FuelLitres*30, e.Monthly.FuelLitres)
	assert.Equal(t, e.FuelLitres*365, e.Annual.FuelLitres)
	assert.Equal(t, e.TotalCostNGN*30, e.Monthly.WithCapitalNGN)
	assert.Equal(t, (e.GridCostNGN+e.TotalCostNGN)*365, e.Annual.CombinedCostNGN)
	assert.Equal(t, e.CO2Kg*30, e.Monthly.CO2Kg)
}

func TestEvaluateCapitalAmortization(t *testing.T) {
	e := evaluateScenario(t)
	// 850000 * 0.7 over 3 years, straight line.
	assert.InDelta(t, 850000*0.7/3/365, e.DailyCapitalNGN, 1e-9)
}

func TestEvaluateGridPremium(t *testing.T) {
	e := evaluateScenario(t)
	assert.InDelta(t, e.CostPerKWhCapital/110, e.GridPremium, 1e-12)
	assert.Greater(t, e.GridPremium, 1.0, "generator power should cost more than grid")
}

func TestEvaluateEmissions(t *testing.T) {
	e := evaluateScenario(t)
	assert.InDelta(t, e.FuelLitres*2.3, e.CO2Kg, 1e-9)
}

func TestEvaluateZeroEnergyUndefined(t *testing.T) {
	_, err := Evaluate(DemandStats{}, model.Series{}, model.Series{}, genset.Usage{}, testGenerator(), testEconomicsConfig())
	var uerr *model.UndefinedMetricError
	require.True(t, errors.As(err, &uerr), "expected UndefinedMetricError, got %v", err)
}

func TestEvaluateRejectsBadConfig(t *testing.T) {
	cfg := testEconomicsConfig()
	cfg.MaintenanceFactor = 0.5
	_, err := Evaluate(DemandStats{TotalKWh: 1}, model.Series{}, model.Series{}, genset.Usage{}, testGenerator(), cfg)
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
}

func TestEvaluateDeterministic(t *testing.T) {
	a := evaluateScenario(t)
	b := evaluateScenario(t)
	assert.Equal(t, a, b)
}

func TestFuelPriceSweepMonotone(t *testing.T) {
	points, err := FuelPriceSweep(32.5, SweepConfig{MinPriceNGN: 500, MaxPriceNGN: 1200, Steps: 15, MaintenanceFactor: 1.2})
	require.NoError(t, err)
	require.Len(t, points, 15)
	assert.Equal(t, 500.0, points[0].FuelPriceNGN)
	assert.Equal(t, 1200.0, points[14].FuelPriceNGN)
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].DailyCostNGN, points[i-1].DailyCostNGN)
	}
}

func TestFuelPriceSweepValidation(t *testing.T) {
	_, err := FuelPriceSweep(10, SweepConfig{MinPriceNGN: 900, MaxPriceNGN: 500, Steps: 5, MaintenanceFactor: 1.2})
	require.Error(t, err)
	_, err = FuelPriceSweep(-1, SweepConfig{MinPriceNGN: 500, MaxPriceNGN: 900, Steps: 5, MaintenanceFactor: 1.2})
	require.Error(t, err)
}
