package bandit

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/stretchr/testify/require"
)

func TestArm(t *testing.T) {
	a := NewArm(-2, 0, rand.NewSource(1))
	require.Equal(t, -2.0, a.Mean())
	require.Equal(t, 0.0, a.SD())
	require.Equal(t, -2.0, a.Pull())

	a.Increment(0.5)
	a.Increment(0.25)
	require.Equal(t, -1.25, a.Mean())
	require.Equal(t, -1.25, a.Pull())
}
