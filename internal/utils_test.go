package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointStack(t *testing.T) {
	var ps PointStack
	assert.True(t, ps.Empty())
	ps.Push(&Point{1, 2})
	assert.False(t, ps.Empty())
	assert.Equal(t, &Point{1, 2}, ps.Peek())
	assert.Nil(t, ps.PeekUnder())
	assert.Equal(t, &Point{1, 2}, ps.Pop())
	assert.True(t, ps.Empty())
	ps.Push(&Point{1, 2})
	ps.Push(&Point{3, 4})
	assert.Equal(t, 2, ps.Len())
	assert.Equal(t, &Point{3, 4}, ps.Peek())
	assert.Equal(t, &Point{1, 2}, ps.PeekUnder())
	assert.Equal(t, &Point{3, 4}, ps.Pop())
	assert.Equal(t, &Point{1, 2}, ps.Pop())
	assert.True(t, ps.Empty())
	assert.Nil(t, ps.Pop())
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestBelow(t *testing.T) {
	t.Run("by y", func(t *testing.T) {
		assert.True(t, (&Point{5, 1}).Below(&Point{0, 2}))
		assert.False(t, (&Point{0, 2}).Below(&Point{5, 1}))
	})

	t.Run("equal y falls back to x", func(t *testing.T) {
		assert.True(t, (&Point{1, 3}).Below(&Point{2, 3}))
		assert.False(t, (&Point{2, 3}).Below(&Point{1, 3}))
	})

	t.Run("exact, no tolerance", func(t *testing.T) {
		// A tolerance-based comparison would call these equal ys and compare
		// x; the exact comparison must not.
		lower := &Point{100, 1}
		upper := &Point{0, 1 + 1e-12}
		assert.True(t, lower.Below(upper))
		assert.False(t, upper.Below(lower))
	})
}

func TestDistSq(t *testing.T) {
	a := &Point{0, 0}
	b := &Point{3, 4}
	assert.Equal(t, 25.0, a.DistSq(b))
	assert.Equal(t, 25.0, b.DistSq(a))
	assert.Equal(t, 0.0, a.DistSq(&Point{0, 0}))
}
