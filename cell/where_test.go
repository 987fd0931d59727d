package cell_test

import (
	"testing"

	"github.com/cellpipe/cellpipe/cell"
	"github.com/stretchr/testify/assert"
)

func isEven(v int) bool {
	return v%2 == 0
}

// the seed is the source's value even when the selector rejects it
func TestWhereSeedIgnoresSelector(t *testing.T) {
	src := cell.NewSource(3)
	evens := cell.Where(src, isEven)
	assert.Equal(t, 3, evens.Value())
}

func TestWherePublishesAcceptedOnly(t *testing.T) {
	src := cell.NewSource(0)
	evens := cell.Where(src, isEven)

	var published []int
	cell.Listen[int](evens, func(v int, _ *cell.Subscription[int]) {
		published = append(published, v)
	})

	for _, v := range []int{1, 2, 3, 4, 5, 6} {
		src.SetValue(v)
	}
	assert.Equal(t, []int{2, 4, 6}, published)
	assert.Equal(t, 6, evens.Value())
}

// rejected updates do not reach downstream cells either
func TestWhereRejectionsInvisibleDownstream(t *testing.T) {
	src := cell.NewSource(0)
	evens := cell.Where(src, isEven)
	labels := cell.Map[int, int](evens, doubleCount)

	var published []int
	cell.Listen[int](labels, func(v int, _ *cell.Subscription[int]) {
		published = append(published, v)
	})

	src.SetValue(7)
	assert.Empty(t, published)
	src.SetValue(8)
	assert.Equal(t, []int{16}, published)
}

// the selector is re-evaluated on every change, so it may be stateful
func TestWhereStatefulSelector(t *testing.T) {
	src := cell.NewSource(0)
	n := 0
	everyOther := cell.Where(src, func(int) bool {
		n++
		return n%2 == 0
	})

	var published []int
	cell.Listen[int](everyOther, func(v int, _ *cell.Subscription[int]) {
		published = append(published, v)
	})

	for _, v := range []int{10, 20, 30, 40} {
		src.SetValue(v)
	}
	assert.Equal(t, []int{20, 40}, published)
	assert.Equal(t, 4, n)
}
