package offsets

import (
	"iter"
	"math"

	"github.com/gogpu/chartlayout"
)

// rawTolerance absorbs float noise in v*precision before rounding up, so
// that 1.1 at precision 1000 is stored as 1100 rather than 1101. Large
// values use rawRelTolerance instead, a few ULPs of the product.
const (
	rawTolerance    = 1e-6
	rawRelTolerance = 1e-15
)

// Storage is a cumulative offset index over count non-negative weights.
//
// Layout: storage holds the fixed-point weights in a backing array of size
// entries, where size is a power of two and size > count; entries past
// count are zero padding. aggregate is a binary sum tree in heap order:
// aggregate[1] is the root, node i has children 2i and 2i+1, and node
// size+j stands for storage[j]. aggregate[0] is unused.
//
// Storage is not safe for concurrent use.
type Storage struct {
	storage    []int64
	aggregate  []int64
	hasValue   []bool
	size       int
	count      int
	valueCount int
	precision  int64
}

// NewStorage creates a Storage with capacity entries, each set to
// defaultValue. A negative capacity is treated as zero.
func NewStorage(capacity int, defaultValue float64, opts ...Option) *Storage {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if capacity < 0 {
		capacity = 0
	}

	size := 2
	for size <= capacity || size < o.minSize {
		size <<= 1
	}

	s := &Storage{
		storage:   make([]int64, size),
		aggregate: make([]int64, size),
		hasValue:  make([]bool, size),
		size:      size,
		count:     capacity,
		precision: o.precision,
	}

	debugAssert(defaultValue >= 0, "negative default value")
	raw := s.toRaw(defaultValue)
	for i := 0; i < capacity; i++ {
		s.storage[i] = raw
	}
	s.refreshAggregate()
	return s
}

// Count returns the number of stored weights.
func (s *Storage) Count() int { return s.count }

// Size returns the length of the backing array, always a power of two
// greater than Count.
func (s *Storage) Size() int { return s.size }

// Precision returns the fixed-point multiplier.
func (s *Storage) Precision() int64 { return s.precision }

// ValueCount returns how many indices hold a measured value set by Update.
func (s *Storage) ValueCount() int { return s.valueCount }

// At returns the weight at index.
func (s *Storage) At(index int) float64 {
	debugAssert(index >= 0 && index < s.count, "index out of range")
	return s.toValue(s.storage[index])
}

// HasValue reports whether index holds a measured value set by Update, as
// opposed to a default or estimated one.
func (s *Storage) HasValue(index int) bool {
	debugAssert(index >= 0 && index < s.count, "index out of range")
	return s.hasValue[index]
}

// Total returns the sum of all weights.
func (s *Storage) Total() float64 {
	return s.toValue(s.aggregate[1])
}

// Average returns the mean of the measured values, or 0 when none are
// measured. An infinite measured value makes the average infinite.
func (s *Storage) Average() float64 {
	if s.valueCount == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < s.count; i++ {
		if s.hasValue[i] {
			sum += s.toValue(s.storage[i])
		}
	}
	return sum / float64(s.valueCount)
}

// All iterates over index/weight pairs in index order.
func (s *Storage) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(i, s.toValue(s.storage[i])) {
				return
			}
		}
	}
}

// OffsetFromIndex returns the sum of the weights at indices 0 through
// endIndex inclusive. endIndex is clamped into [0, Count()-1]; an empty
// storage returns 0.
func (s *Storage) OffsetFromIndex(endIndex int) float64 {
	if s.count == 0 {
		return 0
	}
	endIndex = max(0, min(endIndex, s.count-1))

	node := s.size + endIndex
	sum := s.storage[endIndex]
	for node > 1 {
		if node&1 == 1 {
			sum = addSaturating(sum, s.node(node-1))
		}
		node >>= 1
	}
	return s.toValue(sum)
}

// IndexFromOffset returns the smallest index whose cumulative offset
// reaches offset. Offsets past the total map to Count()-1, and an empty
// storage returns -1. The offset is resolved at the storage precision.
func (s *Storage) IndexFromOffset(offset float64) int {
	if s.count == 0 {
		return -1
	}
	rem := s.toRaw(offset)
	if rem <= 0 {
		return 0
	}
	if rem > s.aggregate[1] {
		return s.count - 1
	}

	// Descend to the lowest aggregate level, then scan its two leaves.
	node := 1
	for node < s.size/2 {
		left := node << 1
		if s.aggregate[left] >= rem {
			node = left
		} else {
			rem -= s.aggregate[left]
			node = left + 1
		}
	}

	index := node<<1 - s.size
	if s.storage[index] < rem {
		index++
	}
	return min(index, s.count-1)
}

// Set replaces the weight at index and propagates the change up the sum
// tree in O(log n). It does not mark the index as measured.
func (s *Storage) Set(index int, value float64) {
	debugAssert(index >= 0 && index < s.count, "index out of range")
	debugAssert(value >= 0, "negative value")

	raw := s.toRaw(value)
	if s.storage[index] == raw {
		return
	}
	s.storage[index] = raw
	s.propagate(index)
}

// Update sets the weight at index like Set and marks it as measured.
func (s *Storage) Update(index int, value float64) {
	s.Set(index, value)
	if !s.hasValue[index] {
		s.hasValue[index] = true
		s.valueCount++
	}
}

// Add appends a weight.
func (s *Storage) Add(value float64) {
	s.InsertRange(s.count, value, 1)
}

// Insert inserts a weight before index, shifting later entries up.
func (s *Storage) Insert(index int, value float64) {
	s.InsertRange(index, value, 1)
}

// InsertRange inserts length copies of value before index. Inserted
// entries are unmeasured until Update is called on them.
func (s *Storage) InsertRange(index int, value float64, length int) {
	debugAssert(index >= 0 && index <= s.count, "insert index out of range")
	debugAssert(value >= 0, "negative value")
	if length <= 0 {
		return
	}

	for s.count+length >= s.size {
		s.extendCapacity()
	}

	raw := s.toRaw(value)
	copy(s.storage[index+length:s.count+length], s.storage[index:s.count])
	copy(s.hasValue[index+length:s.count+length], s.hasValue[index:s.count])
	for i := index; i < index+length; i++ {
		s.storage[i] = raw
		s.hasValue[i] = false
	}
	s.count += length
	s.refreshAggregate()
}

// RemoveAt removes the weight at index.
func (s *Storage) RemoveAt(index int) {
	s.RemoveRange(index, 1)
}

// RemoveRange removes length weights starting at index, shifting later
// entries down. Capacity is kept.
func (s *Storage) RemoveRange(index, length int) {
	debugAssert(index >= 0 && length >= 0 && index+length <= s.count, "remove range out of range")
	if length <= 0 {
		return
	}

	for i := index; i < index+length; i++ {
		if s.hasValue[i] {
			s.valueCount--
		}
	}

	copy(s.storage[index:], s.storage[index+length:s.count])
	copy(s.hasValue[index:], s.hasValue[index+length:s.count])
	for i := s.count - length; i < s.count; i++ {
		s.storage[i] = 0
		s.hasValue[i] = false
	}
	s.count -= length
	s.refreshAggregate()
}

// Clear removes all weights. Capacity is kept.
func (s *Storage) Clear() {
	clear(s.storage)
	clear(s.hasValue)
	clear(s.aggregate)
	s.count = 0
	s.valueCount = 0
}

// extendCapacity doubles the backing arrays.
func (s *Storage) extendCapacity() {
	size := s.size << 1

	storage := make([]int64, size)
	copy(storage, s.storage[:s.count])
	hasValue := make([]bool, size)
	copy(hasValue, s.hasValue[:s.count])

	chartlayout.Logger().Debug("offsets: storage capacity extended",
		"from", s.size, "to", size, "count", s.count)

	s.storage = storage
	s.hasValue = hasValue
	s.aggregate = make([]int64, size)
	s.size = size
}

// refreshAggregate rebuilds the whole sum tree bottom-up in O(n).
func (s *Storage) refreshAggregate() {
	for i := s.size - 1; i >= 1; i-- {
		s.aggregate[i] = addSaturating(s.node(i<<1), s.node(i<<1+1))
	}
}

// propagate recomputes the ancestors of the leaf at index.
func (s *Storage) propagate(index int) {
	for node := (s.size + index) >> 1; node >= 1; node >>= 1 {
		s.aggregate[node] = addSaturating(s.node(node<<1), s.node(node<<1+1))
	}
}

// node returns the sum held by tree node i, which is a leaf when i >= size.
func (s *Storage) node(i int) int64 {
	if i >= s.size {
		return s.storage[i-s.size]
	}
	return s.aggregate[i]
}

func (s *Storage) toRaw(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxInt64
	}
	x := v * float64(s.precision)
	f := math.Ceil(x - max(rawTolerance, math.Abs(x)*rawRelTolerance))
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func (s *Storage) toValue(raw int64) float64 {
	if raw == math.MaxInt64 {
		return math.Inf(1)
	}
	return float64(raw) / float64(s.precision)
}

func addSaturating(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
