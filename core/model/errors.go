package model

import "fmt"

// ValidationError reports a negative or out-of-range static input. All inputs
// are scenario constants, so a validation failure aborts the run rather than
// producing a partial result.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UndefinedMetricError reports a metric that has no defined value for the
// given series, such as cost per kWh over zero total energy.
type UndefinedMetricError struct {
	Metric string
}

func (e *UndefinedMetricError) Error() string {
	return fmt.Sprintf("metric %s undefined for this series", e.Metric)
}

// CapacityExceededError flags an hour whose unmet demand exceeds the
// generator's rated capacity. The fuel model clamps the load fraction for the
// curve lookup but reports the overload instead of truncating it silently.
type CapacityExceededError struct {
	Hour         int
	LoadFraction float64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("hour %d: load fraction %.3f exceeds generator capacity", e.Hour, e.LoadFraction)
}
