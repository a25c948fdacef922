package gc

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/arena"
)

func TestCollectorSweepsEnrolledPool(t *testing.T) {
	var destroyed atomic.Int32
	p := arena.NewPool[int](2, func(v *int) { destroyed.Add(1) })
	h := p.Alloc(func(v *int) { *v = 1 })
	require.NoError(t, h.Release())
	assert.Equal(t, 0, p.Len())

	c := New(5 * time.Millisecond)
	c.Enroll(p)
	c.Start()
	defer func() { require.NoError(t, c.Stop()) }()

	require.Eventually(t, func() bool {
		return destroyed.Load() == 1
	}, 200*time.Millisecond, 5*time.Millisecond)
}

func TestStopIsIdempotentBeforeStart(t *testing.T) {
	c := New(time.Millisecond)
	require.NoError(t, c.Stop())
}
