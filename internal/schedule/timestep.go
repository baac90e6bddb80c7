package schedule

import (
	"errors"
	"fmt"
)

// TimestepMode selects how raw sampler units map onto normalized [0,1] time.
type TimestepMode string

const (
	StepBased TimestepMode = "step_based" // value / total steps
	TimeBased TimestepMode = "time_based" // value / max time
	Percent   TimestepMode = "percent"    // value is already normalized
)

// ErrBadTimestepMode is returned for unsupported conversion modes.
var ErrBadTimestepMode = errors.New("unsupported timestep mode")

// Timeline converts between raw sampler units (diffusion steps, seconds)
// and the normalized positions schedules are defined over.
type Timeline struct {
	Mode       TimestepMode
	TotalSteps int     // required for StepBased
	MaxTime    float64 // required for TimeBased
}

// Normalize converts a raw sampler value into [0,1].
func (tl Timeline) Normalize(value float64) (float64, error) {
	switch tl.Mode {
	case StepBased:
		if tl.TotalSteps <= 0 {
			return 0, fmt.Errorf("step_based conversion requires a positive total step count, got %d", tl.TotalSteps)
		}
		return value / float64(tl.TotalSteps), nil
	case TimeBased:
		if tl.MaxTime <= 0 {
			return 0, fmt.Errorf("time_based conversion requires a positive max time, got %g", tl.MaxTime)
		}
		return value / tl.MaxTime, nil
	case Percent:
		return value, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadTimestepMode, tl.Mode)
}

// Denormalize converts a normalized position back into sampler units.
func (tl Timeline) Denormalize(value float64) (float64, error) {
	switch tl.Mode {
	case StepBased:
		if tl.TotalSteps <= 0 {
			return 0, fmt.Errorf("step_based conversion requires a positive total step count, got %d", tl.TotalSteps)
		}
		return value * float64(tl.TotalSteps), nil
	case TimeBased:
		if tl.MaxTime <= 0 {
			return 0, fmt.Errorf("time_based conversion requires a positive max time, got %g", tl.MaxTime)
		}
		return value * tl.MaxTime, nil
	case Percent:
		return value, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadTimestepMode, tl.Mode)
}
