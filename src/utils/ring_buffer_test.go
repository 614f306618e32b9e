package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func TestRingBufferAppendAndSum(t *testing.T) {
	rb := NewRingBuffer(3)

	rb.Append(1)
	rb.Append(2)
	assert.Equal(t, 2, rb.Size())
	assert.False(t, rb.IsFull())
	assert.InDelta(t, 3.0, rb.Sum(), 1e-12)
	assert.InDelta(t, 1.5, rb.Mean(), 1e-12)

	rb.Append(4)
	assert.True(t, rb.IsFull())
	assert.InDelta(t, 7.0, rb.Sum(), 1e-12)
	assert.Equal(t, []float64{1, 2, 4}, rb.Values())
}

// -----------------------------------------------------------------------------

func TestRingBufferPopOldest(t *testing.T) {
	rb := NewRingBuffer(3)
	rb.Append(5)
	rb.Append(6)
	rb.Append(7)

	v := rb.PopOldest()
	assert.InDelta(t, 5.0, v, 1e-12)
	assert.Equal(t, 2, rb.Size())
	assert.InDelta(t, 13.0, rb.Sum(), 1e-12)
	assert.Equal(t, []float64{6, 7}, rb.Values())

	// Push-evaluate-evict cycle: append brings it back to full
	rb.Append(8)
	assert.True(t, rb.IsFull())
	assert.InDelta(t, 21.0, rb.Sum(), 1e-12)
	assert.Equal(t, []float64{6, 7, 8}, rb.Values())
}

// -----------------------------------------------------------------------------

func TestRingBufferWrapAround(t *testing.T) {
	rb := NewRingBuffer(4)

	// Long push/pop sequence crossing the wrap boundary several times
	for i := 1; i <= 20; i++ {
		rb.Append(float64(i))
		if rb.IsFull() {
			rb.PopOldest()
		}
	}

	require.Equal(t, 3, rb.Size())
	assert.Equal(t, []float64{18, 19, 20}, rb.Values())
	assert.InDelta(t, 57.0, rb.Sum(), 1e-12)
}

// -----------------------------------------------------------------------------

func TestRingBufferOverwriteWhenFull(t *testing.T) {
	rb := NewRingBuffer(2)
	rb.Append(1)
	rb.Append(2)
	rb.Append(3) // overwrites 1, sum must follow

	assert.Equal(t, 2, rb.Size())
	assert.InDelta(t, 5.0, rb.Sum(), 1e-12)
	assert.Equal(t, []float64{2, 3}, rb.Values())
}

// -----------------------------------------------------------------------------

func TestRingBufferEmptyAndClear(t *testing.T) {
	rb := NewRingBuffer(2)
	assert.Equal(t, 0.0, rb.PopOldest())
	assert.Equal(t, 0.0, rb.Mean())

	rb.Append(9)
	rb.Clear()
	assert.Equal(t, 0, rb.Size())
	assert.InDelta(t, 0.0, rb.Sum(), 1e-12)
}

// -----------------------------------------------------------------------------

func TestWindowConstants(t *testing.T) {
	assert.Equal(t, 24, WindowCapacity(1))
	assert.Equal(t, 168, WindowCapacity(7))
	assert.Equal(t, "24h", WindowLabel(1))
	assert.Equal(t, "3d", WindowLabel(3))
}
