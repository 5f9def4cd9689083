package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/gridcost/core/model"
)

func fullAvailability() Availability {
	var a Availability
	for h := range a {
		a[h] = 1
	}
	return a
}

func TestSplitConservation(t *testing.T) {
	demand := model.Series{0.45, 0.45, 0.45, 0.45, 0.45, 0.45, 2.2, 3.5, 1.8, 0.8, 0.65, 0.65,
		0.65, 1.8, 1.4, 0.9, 0.8, 1.6, 1.4, 2.8, 3.2, 2.4, 2.1, 1.5}
	avail := fullAvailability()
	avail[19], avail[20], avail[21], avail[22] = 0, 0, 0, 0.5

	met, unmet, err := Split(demand, avail)
	require.NoError(t, err)
	for h := 0; h < model.HoursPerDay; h++ {
		// Exact equality required: unmet is defined by subtraction.
		assert.Equal(t, demand[h], met[h]+unmet[h], "hour %d", h)
	}
	assert.Equal(t, demand[19], unmet[19])
	assert.Equal(t, demand[22]*0.5, unmet[22])
	assert.Zero(t, unmet[0])
}

func TestSplitRejectsBadFactor(t *testing.T) {
	avail := fullAvailability()
	avail[3] = 1.5
	_, _, err := Split(model.Series{}, avail)
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
}

func TestOutageHours(t *testing.T) {
	avail := fullAvailability()
	avail[19], avail[20], avail[21] = 0, 0, 0
	assert.Equal(t, 3, avail.OutageHours())
}
