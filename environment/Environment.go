// Package environment outlines the interfaces that bandit environments
// implement and that agents act on
package environment

// Environment implements a set of arms which can be pulled by index.
//
// Agents depend only on this interface so that any set of pullable arms
// can be acted on, including stubs that return fixed rewards.
type Environment interface {
	// NumArms returns the number of arms in the environment. The number
	// of arms never changes over the lifetime of an Environment.
	NumArms() int

	// Pull pulls the arm at the argument index and returns the reward
	Pull(index int) (float64, error)
}

// Drifter implements an Environment whose true action values may change
// between timesteps
type Drifter interface {
	Environment

	// Increment applies a single step of drift to every arm
	Increment()

	// Stationary returns whether the environment's true action values
	// stay fixed, in which case Increment should not be called
	Stationary() bool
}
