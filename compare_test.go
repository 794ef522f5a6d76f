package rational

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func orderingSamples() []Rational {
	return []Rational{
		NewFromInt(math.MinInt64),
		New(-math.MaxInt64, 2),
		New(-7, 9),
		New(-1, 2),
		New(-1, math.MaxInt64),
		{},
		New(1, math.MaxInt64),
		New(1, 2),
		New(2, 3),
		New(7, 9),
		New(math.MaxInt64, math.MaxInt64-1),
		New(math.MaxInt64-1, math.MaxInt64-2),
		NewFromInt(math.MaxInt64),
	}
}

func TestRational_Equal(t *testing.T) {
	assert.True(t, New(1, 2).Equal(New(2, 4)))
	assert.True(t, New(1, 2) == New(2, 4))
	assert.False(t, New(1, 2).Equal(New(-1, 2)))
	assert.True(t, Rational{}.Equal(New(0, -9)))
}

func TestRational_Less(t *testing.T) {
	r5, r6, r7 := New(1, 2), New(2, 3), New(7, 9)
	assert.True(t, r5.Less(r6) && r6.Less(r7))
	assert.False(t, r6.Less(r5))
	assert.False(t, r5.Less(New(2, 4)))

	assert.True(t, New(-1, 2).Less(New(1, 3)))
	assert.True(t, New(-2, 3).Less(New(-1, 2)))
	assert.True(t, New(-1, 2).Less(Rational{}))
}

func TestRational_Less_Wide(t *testing.T) {
	a := New(math.MaxInt64, math.MaxInt64-1)
	b := New(math.MaxInt64-1, math.MaxInt64-2)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, b.Neg().Less(a.Neg()))
}

func TestRational_TotalOrder(t *testing.T) {
	samples := orderingSamples()
	for i, a := range samples {
		for j, b := range samples {
			count := 0
			if a.Less(b) {
				count++
			}
			if a.Equal(b) {
				count++
			}
			if b.Less(a) {
				count++
			}
			assert.Equal(t, 1, count, "%s vs %s", a, b)

			// samples are sorted ascending
			assert.Equal(t, i < j, a.Less(b), "%s < %s", a, b)
		}
	}
}

func TestRational_Relations(t *testing.T) {
	a, b := New(1, 3), New(1, 2)

	assert.True(t, a.LessOrEqual(b))
	assert.True(t, a.LessOrEqual(New(2, 6)))
	assert.False(t, b.LessOrEqual(a))

	assert.True(t, b.Greater(a))
	assert.False(t, a.Greater(a))

	assert.True(t, b.GreaterOrEqual(a))
	assert.True(t, a.GreaterOrEqual(a))
	assert.False(t, a.GreaterOrEqual(b))
}

func TestRational_Cmp(t *testing.T) {
	assert.Equal(t, -1, New(1, 3).Cmp(New(1, 2)))
	assert.Equal(t, 0, New(1, 2).Cmp(New(3, 6)))
	assert.Equal(t, 1, New(1, 2).Cmp(New(-1, 2)))
}
