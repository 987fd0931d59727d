package cell_test

import (
	"testing"

	"github.com/cellpipe/cellpipe/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity[T any](v T) T {
	return v
}

func doubleCount(c int) int {
	return c * 2
}

func TestSourceNotifiesOnChangeOnly(t *testing.T) {
	src := cell.NewSource(1)

	callCount := 0
	src.AddListener(func() {
		callCount++
	})

	src.SetValue(1)
	assert.Equal(t, 0, callCount)

	src.SetValue(2)
	assert.Equal(t, 1, callCount)
	assert.Equal(t, 2, src.Value())

	src.SetValue(2)
	assert.Equal(t, 1, callCount)
}

func TestSourceRemoveByToken(t *testing.T) {
	src := cell.NewSource(0)

	aCount, bCount := 0, 0
	tokA := src.AddListener(func() { aCount++ })
	tokB := src.AddListener(func() { bCount++ })
	require.NotEqual(t, tokA, tokB)

	src.SetValue(1)
	assert.Equal(t, 1, aCount)
	assert.Equal(t, 1, bCount)

	src.RemoveListener(tokA)
	src.SetValue(2)
	assert.Equal(t, 1, aCount)
	assert.Equal(t, 2, bCount)

	// unknown and already-removed tokens are no-ops
	src.RemoveListener(tokA)
	src.RemoveListener(cell.Token(999))
	src.SetValue(3)
	assert.Equal(t, 3, bCount)
}

// a listener removed by an earlier listener of the same pass must not run
func TestSourceRemovalDuringNotification(t *testing.T) {
	src := cell.NewSource(0)

	var tokC cell.Token
	bCount, cCount := 0, 0
	src.AddListener(func() {
		src.RemoveListener(tokC)
	})
	src.AddListener(func() { bCount++ })
	tokC = src.AddListener(func() { cCount++ })

	src.SetValue(1)
	assert.Equal(t, 1, bCount)
	assert.Equal(t, 0, cCount)
}

// a listener removing itself mid-pass must not skip its siblings
func TestSourceSelfRemovalKeepsSiblings(t *testing.T) {
	src := cell.NewSource(0)

	var tokA cell.Token
	aCount, bCount := 0, 0
	tokA = src.AddListener(func() {
		aCount++
		src.RemoveListener(tokA)
	})
	src.AddListener(func() { bCount++ })

	src.SetValue(1)
	src.SetValue(2)
	assert.Equal(t, 1, aCount)
	assert.Equal(t, 2, bCount)
}

// a listener added during a pass first sees the next change
func TestSourceAdditionDuringNotification(t *testing.T) {
	src := cell.NewSource(0)

	lateCount := 0
	added := false
	src.AddListener(func() {
		if !added {
			added = true
			src.AddListener(func() { lateCount++ })
		}
	})

	src.SetValue(1)
	assert.Equal(t, 0, lateCount)
	src.SetValue(2)
	assert.Equal(t, 1, lateCount)
}
