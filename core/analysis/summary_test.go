package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/gridcost/core/model"
)

func TestSummarizeLoadFactorScenario(t *testing.T) {
	// Total daily demand 8.5 kWh with a 1.2 kWh peak hour.
	var demand model.Series
	for h := 0; h < 22; h++ {
		demand[h] = 0.3
	}
	demand[22] = 0.7
	demand[23] = 1.2

	stats, err := Summarize(demand)
	require.NoError(t, err)
	assert.InDelta(t, 8.5, stats.TotalKWh, 1e-9)
	assert.Equal(t, 1.2, stats.PeakKW)
	assert.InDelta(t, 8.5/(24*1.2), stats.LoadFactor, 1e-9)
	assert.Greater(t, stats.LoadFactor, 0.0)
	assert.LessOrEqual(t, stats.LoadFactor, 1.0)
}

func TestSummarizeDeterministic(t *testing.T) {
	demand := model.Series{0.45, 0.45, 0.45, 0.45, 0.45, 0.45, 2.2, 3.5, 1.8, 0.8, 0.65, 0.65,
		0.65, 1.8, 1.4, 0.9, 0.8, 1.6, 1.4, 2.8, 3.2, 2.4, 2.1, 1.5}
	a, err := Summarize(demand)
	require.NoError(t, err)
	b, err := Summarize(demand)
	require.NoError(t, err)
	// Bit-identical output on identical input.
	assert.Equal(t, a, b)
}

func TestSummarizeFlatProfileLoadFactorOne(t *testing.T) {
	var demand model.Series
	for h := range demand {
		demand[h] = 0.5
	}
	stats, err := Summarize(demand)
	require.NoError(t, err)
	assert.Equal(t, 1.0, stats.LoadFactor)
}

func TestSummarizeAllZeroUndefined(t *testing.T) {
	_, err := Summarize(model.Series{})
	var uerr *model.UndefinedMetricError
	require.True(t, errors.As(err, &uerr), "expected UndefinedMetricError, got %v", err)
	assert.Equal(t, "load_factor", uerr.Metric)
}

func TestSummarizeRejectsNegative(t *testing.T) {
	var demand model.Series
	demand[4] = -0.1
	_, err := Summarize(demand)
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
}
