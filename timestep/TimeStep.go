// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either the
// first step in a trial, a middle step, or the last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single action taken by an agent in a
// bandit environment: which arm was pulled, the reward it returned, and
// whether that arm had the highest true action value at the time.
type TimeStep struct {
	StepType StepType
	Number   int
	Arm      int
	Reward   float64
	Optimal  bool
}

// New returns a new TimeStep. The StepType is determined by the step
// number n and the total number of steps in the trial.
func New(n, steps, arm int, reward float64, optimal bool) TimeStep {
	var t StepType
	switch {
	case n == 0:
		t = First
	case n == steps-1:
		t = Last
	default:
		t = Mid
	}
	return TimeStep{t, n, arm, reward, optimal}
}

// First returns whether a TimeStep is the first in a trial
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in a trial
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in a trial
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Arm: %v  |  Reward:  %.2f  |  " +
		"Optimal: %v  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Arm, t.Reward, t.Optimal, t.Number)
}
