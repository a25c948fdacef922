package dbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/boundop"
)

func TestUniversalAndZero(t *testing.T) {
	u := Universal(3)
	assert.True(t, u.IsUniversal())
	assert.False(t, u.IsPositive())

	up := UniversalPositive(3)
	assert.True(t, up.IsUniversalPositive())
	assert.True(t, up.IsPositive())

	z := Zero(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.True(t, boundop.Equal(z.At(i, j), boundop.LEZero))
		}
	}
}

func TestEmptySentinel(t *testing.T) {
	e := Empty(3)
	assert.True(t, e.IsEmpty())
	assert.False(t, e.IsTight())
}

// TestableProperty2: tighten(universal) == universal; tighten(zero) == zero.
func TestTightenIdempotentOnCanonicalForms(t *testing.T) {
	u := Universal(4)
	tu, err := Tighten(u)
	require.NoError(t, err)
	assert.True(t, IsEqual(u, tu))

	z := Zero(4)
	tz, err := Tighten(z)
	require.NoError(t, err)
	assert.True(t, IsEqual(z, tz))
}

// TestableProperty3: constrain is idempotent.
func TestConstrainIdempotent(t *testing.T) {
	d := UniversalPositive(3)
	c := Constraint{I: 1, J: 0, Cmp: boundop.Le, K: 5}
	once, err := Constrain(d, c)
	require.NoError(t, err)
	twice, err := Constrain(once, c)
	require.NoError(t, err)
	assert.True(t, IsEqual(once, twice))
}

// TestableProperty4: is_le(a,b) iff tighten(intersect(a,b)) == a.
func TestIsLeMatchesIntersectionFixpoint(t *testing.T) {
	a := UniversalPositive(3)
	a, _ = Constrain(a, Constraint{I: 1, J: 0, Cmp: boundop.Le, K: 3})
	b := UniversalPositive(3)

	assert.True(t, IsLe(a, b))

	intersected, err := ConstrainAll(b, a.ToConstraints())
	require.NoError(t, err)
	assert.True(t, IsEqual(intersected, a))
}

// TestableProperty5: reset(reset(d,x,0,k),x,0,k) == reset(d,x,0,k).
func TestResetIdempotent(t *testing.T) {
	d := UniversalPositive(3)
	once := ApplyReset(d, Reset{X: 1, Y: 0, K: 0})
	twice := ApplyReset(once, Reset{X: 1, Y: 0, K: 0})
	assert.True(t, IsEqual(once, twice))
}

// TestableProperty6: open_up ∘ open_up == open_up.
func TestOpenUpIdempotent(t *testing.T) {
	d := UniversalPositive(3)
	d, _ = Constrain(d, Constraint{I: 1, J: 0, Cmp: boundop.Le, K: 5})
	once := OpenUp(d)
	twice := OpenUp(once)
	assert.True(t, IsEqual(once, twice))
}

// TestableProperty7: extra_lu(d) superset-includes d and is idempotent.
func TestExtraLUSupersetAndIdempotent(t *testing.T) {
	d := UniversalPositive(3)
	d, _ = Constrain(d, Constraint{I: 1, J: 0, Cmp: boundop.Le, K: 10})
	L := Bounds{0, 5, 5}
	U := Bounds{0, 5, 5}

	once, err := ExtraLU(d, L, U)
	require.NoError(t, err)
	assert.True(t, IsLe(d, once), "extra_lu must enlarge or preserve the zone")

	twice, err := ExtraLU(once, L, U)
	require.NoError(t, err)
	assert.True(t, IsEqual(once, twice))
}

// S3: DBM tighten empty detection.
func TestScenarioS3EmptyDetection(t *testing.T) {
	d := Universal(3)
	d, err := Constrain(d, Constraint{I: 1, J: 2, Cmp: boundop.Le, K: -3})
	require.NoError(t, err)
	require.False(t, d.IsEmpty())

	d, err = Constrain(d, Constraint{I: 2, J: 1, Cmp: boundop.Le, K: 1})
	require.NoError(t, err)
	assert.True(t, d.IsEmpty())
}

// S5: extrapolation coarsening widens DBM[x1][0] to LTInfinity.
func TestScenarioS5ExtrapolationCoarsening(t *testing.T) {
	d := UniversalPositive(3)
	var err error
	d, err = Constrain(d, Constraint{I: 1, J: 0, Cmp: boundop.Le, K: 10})
	require.NoError(t, err)

	L := Bounds{0, 5, 5}
	U := Bounds{0, 5, 5}
	out, err := ExtraLUPlus(d, L, U)
	require.NoError(t, err)

	assert.True(t, out.At(1, 0).IsInfinity())
	assert.True(t, IsLe(d, out))
}

func TestIsTightRejectsViolation(t *testing.T) {
	d := New(2)
	d.set(0, 0, boundop.LEZero)
	d.set(1, 1, boundop.LEZero)
	d.set(0, 1, boundop.Bound{Cmp: boundop.Le, K: 1})
	d.set(1, 0, boundop.Bound{Cmp: boundop.Le, K: -5}) // violates triangle ineq with itself
	assert.False(t, d.IsTight())
}

func TestToConstraintsRoundTrip(t *testing.T) {
	d := UniversalPositive(3)
	d, _ = Constrain(d, Constraint{I: 1, J: 0, Cmp: boundop.Le, K: 4})
	cs := d.ToConstraints()
	rebuilt, err := ConstrainAll(UniversalPositive(3), cs)
	require.NoError(t, err)
	assert.True(t, IsEqual(d, rebuilt))
}

func TestStringEmpty(t *testing.T) {
	assert.Equal(t, "false", Empty(3).String())
}
