package intvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystemRejectsBadBounds(t *testing.T) {
	_, err := NewSystem([]Declaration{{Name: "id", Size: 1, Min: 3, Max: 1, Initial: 1}})
	require.Error(t, err)
}

func TestNewSystemRejectsOutOfRangeInitial(t *testing.T) {
	_, err := NewSystem([]Declaration{{Name: "id", Size: 1, Min: 0, Max: 3, Initial: 9}})
	require.Error(t, err)
}

func TestInitialAndWith(t *testing.T) {
	sys, err := NewSystem([]Declaration{
		{Name: "id", Size: 1, Min: 0, Max: 3, Initial: 0},
		{Name: "arr", Size: 2, Min: -1, Max: 1, Initial: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, sys.Slots())

	init := sys.Initial()
	assert.True(t, Equal(init, IntVal{0, 0, 0}))

	next, err := init.With(sys, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, next.At(0))
	assert.EqualValues(t, 0, init.At(0), "With must not mutate the receiver")

	_, err = init.With(sys, 1, 5)
	require.ErrorIs(t, err, ErrOutOfRange)
}
