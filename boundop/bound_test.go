package boundop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Run("finite plus finite", func(t *testing.T) {
		sum, ok := Add(Bound{Cmp: Le, K: 3}, Bound{Cmp: Lt, K: 2})
		require.True(t, ok)
		assert.Equal(t, Bound{Cmp: Lt, K: 5}, sum)
	})

	t.Run("infinity absorbs", func(t *testing.T) {
		sum, ok := Add(LTInfinity, Bound{Cmp: Le, K: -100})
		require.True(t, ok)
		assert.True(t, sum.IsInfinity())
	})

	t.Run("both non-strict stays non-strict", func(t *testing.T) {
		sum, ok := Add(Bound{Cmp: Le, K: 1}, Bound{Cmp: Le, K: 1})
		require.True(t, ok)
		assert.Equal(t, Bound{Cmp: Le, K: 2}, sum)
	})

	t.Run("overflow detected", func(t *testing.T) {
		_, ok := Add(Bound{Cmp: Le, K: math.MaxInt32 - 1}, Bound{Cmp: Le, K: math.MaxInt32 - 1})
		assert.False(t, ok)
	})
}

func TestNegate(t *testing.T) {
	got := Negate(Bound{Cmp: Le, K: 5})
	assert.Equal(t, Bound{Cmp: Lt, K: -5}, got)
}

func TestOrder(t *testing.T) {
	// (<,k) < (<=,k) < (<,k+1)
	lt3 := Bound{Cmp: Lt, K: 3}
	le3 := Bound{Cmp: Le, K: 3}
	lt4 := Bound{Cmp: Lt, K: 4}

	assert.True(t, Less(lt3, le3))
	assert.True(t, Less(le3, lt4))
	assert.True(t, LessEqual(lt3, lt3))
	assert.False(t, Less(lt3, lt3))
}

func TestMin(t *testing.T) {
	a := Bound{Cmp: Le, K: 2}
	b := Bound{Cmp: Lt, K: 2}
	assert.Equal(t, b, Min(a, b))
}
