// Package grid splits the household's desired demand between grid supply and
// the backup generator according to an hourly availability schedule.
package grid

import (
	"fmt"

	"github.com/kilianp07/gridcost/core/model"
)

// Availability is the per-hour grid availability factor. 1 means full grid
// supply, 0 a complete outage; fractional values model partial (brown-out)
// supply.
type Availability [model.HoursPerDay]float64

// Validate checks that every factor lies in [0,1].
func (a Availability) Validate() error {
	for h, f := range a {
		if f < 0 || f > 1 {
			return &model.ValidationError{
				Field:  "grid.availability",
				Reason: fmt.Sprintf("hour %d: factor %g out of range 0..1", h, f),
			}
		}
	}
	return nil
}

// OutageHours returns the number of hours with no grid supply at all.
func (a Availability) OutageHours() int {
	var n int
	for _, f := range a {
		if f == 0 {
			n++
		}
	}
	return n
}

// Split divides the desired demand into demand met by the grid and unmet
// demand covered by the generator. Unmet is computed by subtraction so that
// met + unmet reproduces the original demand exactly, hour by hour.
func Split(demand model.Series, avail Availability) (met, unmet model.Series, err error) {
	if err := avail.Validate(); err != nil {
		return model.Series{}, model.Series{}, err
	}
	for h := 0; h < model.HoursPerDay; h++ {
		met[h] = demand[h] * avail[h]
		unmet[h] = demand[h] - met[h]
	}
	return met, unmet, nil
}
