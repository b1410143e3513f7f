// Package bandit implements a k-armed bandit environment with Gaussian
// rewards whose true action values can drift by a random walk
package bandit

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gobandit/environment"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrIndexOutOfRange is returned when pulling an arm that does not exist
var ErrIndexOutOfRange = errors.New("arm index out of range")

var _ environment.Drifter = (*Bandit)(nil)

// Bandit is a k-armed bandit. Each arm returns normally distributed
// rewards with the same standard deviation.
//
// If the Bandit is stationary, each arm's true action value is drawn
// independently from a standard normal distribution on construction.
// Otherwise, every arm starts at the same true action value and the
// values scatter over time as Increment is called, each arm taking an
// independent random walk step of Normal(walkMean, walkSD).
type Bandit struct {
	arms       []*Arm
	walk       distuv.Normal
	stationary bool
}

// New creates and returns a new Bandit with numArms arms. If stationary
// is false, all arms begin with true action value meanStart. The walkMean
// and walkSD parameters define the random walk taken by the arms' true
// action values when Increment is called. All randomness in the Bandit
// is drawn from a single source seeded with seed.
func New(numArms int, meanStart, sd, walkMean, walkSD float64,
	stationary bool, seed uint64) (*Bandit, error) {
	c := Config{
		NumArms:    numArms,
		MeanStart:  meanStart,
		SD:         sd,
		WalkMean:   walkMean,
		WalkSD:     walkSD,
		Stationary: stationary,
	}
	return c.Create(seed)
}

// newBandit constructs a Bandit from a validated Config
func newBandit(c Config, seed uint64) *Bandit {
	src := rand.NewSource(seed)
	init := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	arms := make([]*Arm, c.NumArms)
	for i := range arms {
		var mean float64
		switch {
		case len(c.Means) > 0:
			mean = c.Means[i]
		case c.Stationary:
			mean = init.Rand()
		default:
			mean = c.MeanStart
		}
		arms[i] = NewArm(mean, c.SD, src)
	}

	return &Bandit{
		arms:       arms,
		walk:       distuv.Normal{Mu: c.WalkMean, Sigma: c.WalkSD, Src: src},
		stationary: c.Stationary,
	}
}

// NumArms returns the number of arms of the Bandit
func (b *Bandit) NumArms() int {
	return len(b.arms)
}

// Stationary returns whether the Bandit's true action values are fixed
func (b *Bandit) Stationary() bool {
	return b.stationary
}

// Pull pulls the arm at index and returns the sampled reward
func (b *Bandit) Pull(index int) (float64, error) {
	if index < 0 || index >= len(b.arms) {
		return 0, fmt.Errorf("pull: index %v with %v arms: %w", index,
			len(b.arms), ErrIndexOutOfRange)
	}
	return b.arms[index].Pull(), nil
}

// Increment takes one step of the random walk on each arm's true
// action value. Each arm's step is sampled independently.
func (b *Bandit) Increment() {
	for _, arm := range b.arms {
		arm.Increment(b.walk.Rand())
	}
}

// Means returns a copy of the current true action values of the arms
func (b *Bandit) Means() []float64 {
	means := make([]float64, len(b.arms))
	for i, arm := range b.arms {
		means[i] = arm.Mean()
	}
	return means
}

// OptimalArm returns the index of the arm with the highest true action
// value. Ties are broken in favour of the lowest index.
func (b *Bandit) OptimalArm() int {
	return floats.MaxIdx(b.Means())
}

// IsOptimal returns whether the arm at index has the highest true
// action value of all arms, including when it is tied with other arms
func (b *Bandit) IsOptimal(index int) bool {
	if index < 0 || index >= len(b.arms) {
		return false
	}

	mean := b.arms[index].Mean()
	for _, arm := range b.arms {
		if arm.Mean() > mean {
			return false
		}
	}
	return true
}
