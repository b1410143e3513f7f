// Package policy implements action selection policies over tables of
// action values
package policy

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gobandit/spec"
	"gonum.org/v1/gonum/floats"
)

// EGreedy implements an ε-greedy policy over a table of action values.
// With probability 1 - ε the greedy action is selected, otherwise an
// action is selected uniformly at random from the non-greedy actions.
//
// The greedy action is the first action with the highest value. Ties
// between action values are not handled specially, so other actions
// tied with the greedy action can still be selected when exploring.
type EGreedy struct {
	epsilon float64
	rng     *rand.Rand
}

// NewEGreedy constructs a new EGreedy policy, where e=epsilon is the
// probability with which a non-greedy action is selected
func NewEGreedy(e float64, seed uint64) (*EGreedy, error) {
	if err := spec.Probability("epsilon", e); err != nil {
		return nil, err
	}

	source := rand.NewSource(seed)
	return &EGreedy{epsilon: e, rng: rand.New(source)}, nil
}

// Epsilon returns the exploration probability of the policy
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SelectAction selects an action from an ε-greedy policy over values
func (p *EGreedy) SelectAction(values []float64) int {
	greedyAction := Greedy(values)

	// x is in [0, 1) so ε = 0 never explores and ε = 1 always does
	if x := p.rng.Float64(); x >= p.epsilon {
		return greedyAction
	}
	return p.Explore(greedyAction, len(values))
}

// Explore returns an action selected uniformly at random from the n
// actions, excluding the greedy action. If there is only a single
// action, then that action is returned.
func (p *EGreedy) Explore(greedy, n int) int {
	if n <= 1 {
		return greedy
	}

	action := p.rng.Intn(n - 1)
	if action >= greedy {
		action++
	}
	return action
}

// Greedy returns the greedy action with respect to values, which is the
// first action with maximal value
func Greedy(values []float64) int {
	return floats.MaxIdx(values)
}
