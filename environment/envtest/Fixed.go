// Package envtest implements environments for testing agents
package envtest

import (
	"fmt"
)

// Fixed is an environment whose arms always return the same reward.
// Fixed records the index of every arm pulled.
type Fixed struct {
	Rewards []float64
	Pulls   []int
}

// NewFixed returns a new Fixed environment with one arm per reward
func NewFixed(rewards ...float64) *Fixed {
	return &Fixed{Rewards: rewards}
}

// NumArms returns the number of arms in the environment
func (f *Fixed) NumArms() int {
	return len(f.Rewards)
}

// Pull records the pull and returns the fixed reward of the arm at
// index
func (f *Fixed) Pull(index int) (float64, error) {
	if index < 0 || index >= len(f.Rewards) {
		return 0, fmt.Errorf("pull: index %v out of range", index)
	}
	f.Pulls = append(f.Pulls, index)
	return f.Rewards[index], nil
}

// Counts returns the number of times each arm was pulled
func (f *Fixed) Counts() []int {
	counts := make([]int, len(f.Rewards))
	for _, index := range f.Pulls {
		counts[index]++
	}
	return counts
}

// Sequence is an environment whose single rewarding arm returns the
// next reward in a fixed sequence each time it is pulled. All other
// arms return the Other reward.
type Sequence struct {
	Arms    int
	Arm     int
	Rewards []float64
	Other   float64
	next    int
}

// NumArms returns the number of arms in the environment
func (s *Sequence) NumArms() int {
	return s.Arms
}

// Pull returns the next reward in the sequence if index is the
// rewarding arm
func (s *Sequence) Pull(index int) (float64, error) {
	if index < 0 || index >= s.Arms {
		return 0, fmt.Errorf("pull: index %v out of range", index)
	}
	if index != s.Arm {
		return s.Other, nil
	}

	r := s.Rewards[s.next%len(s.Rewards)]
	s.next++
	return r, nil
}
