// Package profile builds the household's 24-hour demand profile from the
// static appliance table. The computation is fully deterministic: each hour's
// demand is the sum of every scheduled-on appliance's rated draw scaled by
// its duty factor.
package profile

import (
	"fmt"

	"github.com/kilianp07/gridcost/core/model"
)

// Build produces the hourly demand series for the given appliance table. The
// whole table is validated before any arithmetic so an invalid entry never
// yields a partial profile.
func Build(appliances []model.Appliance) (model.Series, error) {
	var series model.Series
	for _, a := range appliances {
		if err := a.Validate(); err != nil {
			return model.Series{}, fmt.Errorf("appliance table: %w", err)
		}
	}
	for _, a := range appliances {
		unit := float64(a.Quantity) * a.PowerW / 1000
		for h := 0; h < model.HoursPerDay; h++ {
			for _, w := range a.Windows {
				if w.Covers(h) {
					series[h] += unit * w.Duty
				}
			}
		}
	}
	return series, nil
}

// Slots pairs the demand series with the grid availability factors, producing
// the ordered 24-slot sequence consumed by the reporting layer.
func Slots(series model.Series, availability [model.HoursPerDay]float64) []model.HourlySlot {
	slots := make([]model.HourlySlot, model.HoursPerDay)
	for h := range slots {
		slots[h] = model.HourlySlot{Hour: h, DemandKWh: series[h], GridAvailable: availability[h]}
	}
	return slots
}
