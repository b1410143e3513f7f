// Package agent defines the interfaces implemented by bandit agents and
// the action loop that they share
package agent

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and
// an action loop which uses a Policy over those action values to select
// arms of its environment. The Learner is updated with the reward of
// every arm pulled.
type Agent interface {
	Learner

	// Action performs one decision-update cycle: an arm is selected and
	// pulled, the Learner is updated with the reward, and the reward is
	// returned
	Action() (float64, error)

	// LastAction returns the arm pulled on the most recent call to
	// Action, or -1 if Action has not been called
	LastAction() int

	// Epsilon returns the exploration probability of the agent
	Epsilon() float64
}

// Learner implements a learning algorithm that defines how action
// value estimates are updated.
type Learner interface {
	// Update updates the estimate of arm's value using reward
	Update(arm int, reward float64)

	// Estimates returns a copy of the current action value estimates
	Estimates() []float64
}

// Policy selects an arm given a table of action values
type Policy interface {
	SelectAction(values []float64) int
}
