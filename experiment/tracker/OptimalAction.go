package tracker

import (
	ts "github.com/samuelfneumann/gobandit/timestep"
)

// OptimalAction tracks whether the arm pulled on each timestep had the
// highest true action value, recording 1 if it did and 0 otherwise
type OptimalAction struct {
	series
}

// NewOptimalAction creates and returns a new *OptimalAction Tracker with
// capacity for steps timesteps
func NewOptimalAction(steps int) *OptimalAction {
	return &OptimalAction{newSeries(steps)}
}

// Track caches whether the action taken on the timestep was optimal
func (o *OptimalAction) Track(step ts.TimeStep) {
	var value float64
	if step.Optimal {
		value = 1.0
	}
	o.add(step, value)
}
