package model

// HoursPerDay is the length of every hourly series in the model. The day is
// cyclic: hour 23 is conceptually followed by hour 0, but no multi-day
// chaining exists.
const HoursPerDay = 24

// Series is an ordered sequence of per-hour energy values in kWh, one entry
// per hour slot 0..23. The fixed length enforces the 24-slot invariant at the
// type level.
type Series [HoursPerDay]float64

// Total returns the sum over all hours.
func (s Series) Total() float64 {
	var t float64
	for _, v := range s {
		t += v
	}
	return t
}

// Peak returns the maximum hourly value.
func (s Series) Peak() float64 {
	max := s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Average returns the mean hourly value.
func (s Series) Average() float64 {
	return s.Total() / HoursPerDay
}

// HourlySlot pairs one hour's aggregate demand with the grid availability
// factor applied to it.
type HourlySlot struct {
	Hour          int
	DemandKWh     float64
	GridAvailable float64 // availability factor in [0,1]; 1 = full grid supply
}
