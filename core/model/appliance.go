package model

import "fmt"

// Window is a daily schedule interval during which an appliance draws power.
// Start is inclusive and End exclusive, both on a 0..24 hour scale; a window
// spanning midnight is expressed as two windows.
type Window struct {
	Start int     // first hour the appliance is on, 0..23
	End   int     // hour the appliance switches off, 1..24
	Duty  float64 // fraction of rated power drawn while on, 0..1
}

// Covers reports whether the window is active during the given hour slot.
func (w Window) Covers(hour int) bool {
	return hour >= w.Start && hour < w.End
}

// Validate checks the window boundaries and duty factor.
func (w Window) Validate() error {
	if w.Start < 0 || w.Start > 23 {
		return &ValidationError{Field: "window.start", Reason: fmt.Sprintf("hour %d out of range 0..23", w.Start)}
	}
	if w.End < 1 || w.End > 24 {
		return &ValidationError{Field: "window.end", Reason: fmt.Sprintf("hour %d out of range 1..24", w.End)}
	}
	if w.Start >= w.End {
		return &ValidationError{Field: "window", Reason: fmt.Sprintf("start %d not before end %d", w.Start, w.End)}
	}
	if w.Duty < 0 || w.Duty > 1 {
		return &ValidationError{Field: "window.duty", Reason: fmt.Sprintf("duty %g out of range 0..1", w.Duty)}
	}
	return nil
}

// Appliance describes one household load. The table is assembled once at
// startup and never mutated afterwards.
type Appliance struct {
	Name     string
	Category string
	Quantity int
	PowerW   float64  // rated power per unit in watts
	Windows  []Window // daily usage schedule; empty means always off
}

// Validate checks that the appliance parameters are physically sound.
func (a Appliance) Validate() error {
	if a.Name == "" {
		return &ValidationError{Field: "appliance.name", Reason: "empty"}
	}
	if a.Quantity < 1 {
		return &ValidationError{Field: "appliance.quantity", Reason: fmt.Sprintf("%s: quantity %d must be at least 1", a.Name, a.Quantity)}
	}
	if a.PowerW < 0 {
		return &ValidationError{Field: "appliance.power_w", Reason: fmt.Sprintf("%s: rated power %g is negative", a.Name, a.PowerW)}
	}
	for _, w := range a.Windows {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("%s: %w", a.Name, err)
		}
	}
	return nil
}

// ScheduledHours returns the total on-hours per day weighted by duty factor.
func (a Appliance) ScheduledHours() float64 {
	var h float64
	for _, w := range a.Windows {
		h += float64(w.End-w.Start) * w.Duty
	}
	return h
}

// DailyEnergyKWh is the appliance's contribution to daily demand.
func (a Appliance) DailyEnergyKWh() float64 {
	return float64(a.Quantity) * a.PowerW * a.ScheduledHours() / 1000
}
