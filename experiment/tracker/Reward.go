package tracker

import (
	ts "github.com/samuelfneumann/gobandit/timestep"
)

// Reward tracks the reward received on each timestep of a trial
type Reward struct {
	series
}

// NewReward creates and returns a new *Reward Tracker with capacity for
// steps timesteps
func NewReward(steps int) *Reward {
	return &Reward{newSeries(steps)}
}

// Track caches the reward of the timestep
func (r *Reward) Track(step ts.TimeStep) {
	r.add(step, step.Reward)
}
