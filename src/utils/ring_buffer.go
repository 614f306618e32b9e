package utils

// -----------------------------------------------------------------------------
// RingBuffer is a fixed-size circular buffer of metric values with an
// incrementally maintained sum. True ring buffer - no resizing allowed!
// -----------------------------------------------------------------------------

type RingBuffer struct {
	data     []float64
	capacity int
	index    int     // Next write position
	size     int     // Current number of elements
	sum      float64 // Running sum of resident values
}

// -----------------------------------------------------------------------------

// NewRingBuffer creates a new buffer with fixed capacity
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 1
	}

	return &RingBuffer{
		data:     make([]float64, capacity),
		capacity: capacity,
		index:    0,
		size:     0,
	}
}

// -----------------------------------------------------------------------------

// Append adds a value and folds it into the running sum.
// If the buffer is already full, the oldest value is overwritten and
// subtracted from the sum, so Sum always reflects resident values only.
func (rb *RingBuffer) Append(v float64) {
	if rb.size == rb.capacity {
		rb.sum -= rb.data[rb.index]
	} else {
		rb.size++
	}

	rb.data[rb.index] = v
	rb.sum += v
	rb.index = (rb.index + 1) % rb.capacity
}

// -----------------------------------------------------------------------------

// PopOldest removes the oldest resident value, subtracts it from the running
// sum and returns it. Returns 0 on an empty buffer.
func (rb *RingBuffer) PopOldest() float64 {
	if rb.size == 0 {
		return 0
	}

	// Oldest element sits size slots behind the write position
	oldestIdx := (rb.index - rb.size + rb.capacity*2) % rb.capacity
	v := rb.data[oldestIdx]

	rb.sum -= v
	rb.size--
	return v
}

// -----------------------------------------------------------------------------

// Sum returns the running sum of resident values.
func (rb *RingBuffer) Sum() float64 {
	return rb.sum
}

// -----------------------------------------------------------------------------

// Mean returns the average of resident values (0 when empty).
func (rb *RingBuffer) Mean() float64 {
	if rb.size == 0 {
		return 0
	}
	return rb.sum / float64(rb.size)
}

// -----------------------------------------------------------------------------

// Values returns resident values in insertion order (oldest to newest)
func (rb *RingBuffer) Values() []float64 {
	result := make([]float64, rb.size)

	startIdx := (rb.index - rb.size + rb.capacity*2) % rb.capacity
	for i := 0; i < rb.size; i++ {
		result[i] = rb.data[(startIdx+i)%rb.capacity]
	}

	return result
}

// -----------------------------------------------------------------------------

// Size returns current number of elements
func (rb *RingBuffer) Size() int {
	return rb.size
}

// -----------------------------------------------------------------------------

// Capacity returns buffer capacity (fixed)
func (rb *RingBuffer) Capacity() int {
	return rb.capacity
}

// -----------------------------------------------------------------------------

// IsFull returns whether buffer is full
func (rb *RingBuffer) IsFull() bool {
	return rb.size == rb.capacity
}

// -----------------------------------------------------------------------------

// Clear resets the buffer
func (rb *RingBuffer) Clear() {
	rb.index = 0
	rb.size = 0
	rb.sum = 0
}
