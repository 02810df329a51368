// Package virtual provides the row and column bookkeeping for a virtualized
// grid: item lengths along one axis, their pixel offsets, and the range of
// items a viewport shows.
//
// Unlike the underlying offsets.Storage, every method validates its
// arguments and reports misuse as an error.
package virtual

import (
	"fmt"
	"math"

	"github.com/gogpu/chartlayout"
	"github.com/gogpu/chartlayout/offsets"
)

// Axis lays out items (rows or columns) end to end along one dimension.
// Unmeasured items use an estimated length: the average of the measured
// ones, or the default length before anything is measured.
type Axis struct {
	lengths       *offsets.Storage
	defaultLength float64
}

// NewAxis creates an axis of count items of defaultLength each.
func NewAxis(count int, defaultLength float64, opts ...offsets.Option) (*Axis, error) {
	if count < 0 {
		return nil, fmt.Errorf("new axis: count %d: %w", count, ErrNegativeLength)
	}
	if !validLength(defaultLength) {
		return nil, fmt.Errorf("new axis: default length %v: %w", defaultLength, ErrNegativeLength)
	}
	return &Axis{
		lengths:       offsets.NewStorage(count, defaultLength, opts...),
		defaultLength: defaultLength,
	}, nil
}

// Count returns the number of items.
func (a *Axis) Count() int { return a.lengths.Count() }

// TotalLength returns the extent of all items.
func (a *Axis) TotalLength() float64 { return a.lengths.Total() }

// EstimatedLength returns the length assumed for unmeasured items.
func (a *Axis) EstimatedLength() float64 {
	if a.lengths.ValueCount() == 0 {
		return a.defaultLength
	}
	return a.lengths.Average()
}

// Measured reports whether item i has a measured length.
func (a *Axis) Measured(i int) (bool, error) {
	if err := a.checkIndex(i); err != nil {
		return false, err
	}
	return a.lengths.HasValue(i), nil
}

// Length returns the length of item i.
func (a *Axis) Length(i int) (float64, error) {
	if err := a.checkIndex(i); err != nil {
		return 0, err
	}
	return a.lengths.At(i), nil
}

// SetLength records the measured length of item i.
func (a *Axis) SetLength(i int, length float64) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	if !validLength(length) {
		return fmt.Errorf("set length %v at %d: %w", length, i, ErrNegativeLength)
	}
	a.lengths.Update(i, length)
	return nil
}

// Insert adds n unmeasured items before index i.
func (a *Axis) Insert(i, n int) error {
	if i < 0 || i > a.Count() {
		return fmt.Errorf("insert at %d of %d: %w", i, a.Count(), ErrIndexOutOfRange)
	}
	if n < 0 {
		return fmt.Errorf("insert %d items: %w", n, ErrNegativeLength)
	}
	est := a.EstimatedLength()
	a.lengths.InsertRange(i, est, n)
	chartlayout.Logger().Debug("virtual: items inserted", "index", i, "n", n, "estimate", est)
	return nil
}

// Remove removes n items starting at index i.
func (a *Axis) Remove(i, n int) error {
	if n < 0 {
		return fmt.Errorf("remove %d items: %w", n, ErrNegativeLength)
	}
	if i < 0 || i+n > a.Count() {
		return fmt.Errorf("remove [%d, %d) of %d: %w", i, i+n, a.Count(), ErrIndexOutOfRange)
	}
	a.lengths.RemoveRange(i, n)
	return nil
}

// Start returns the offset of the leading edge of item i.
func (a *Axis) Start(i int) (float64, error) {
	if err := a.checkIndex(i); err != nil {
		return 0, err
	}
	if i == 0 {
		return 0, nil
	}
	return a.lengths.OffsetFromIndex(i - 1), nil
}

// End returns the offset of the trailing edge of item i.
func (a *Axis) End(i int) (float64, error) {
	if err := a.checkIndex(i); err != nil {
		return 0, err
	}
	return a.lengths.OffsetFromIndex(i), nil
}

// ItemAt returns the first item whose trailing edge reaches offset.
// An offset on a boundary belongs to the item ending there; offsets past
// the end map to the last item.
func (a *Axis) ItemAt(offset float64) (int, error) {
	if a.Count() == 0 {
		return 0, ErrEmptyAxis
	}
	if math.IsNaN(offset) {
		return 0, fmt.Errorf("item at NaN: %w", ErrNegativeLength)
	}
	return a.lengths.IndexFromOffset(offset), nil
}

// VisibleRange returns the inclusive range of items that intersect the
// window [offset, offset+extent]. Items that only touch the leading edge
// are excluded.
func (a *Axis) VisibleRange(offset, extent float64) (first, last int, err error) {
	if a.Count() == 0 {
		return 0, 0, ErrEmptyAxis
	}
	if !validLength(extent) || math.IsNaN(offset) {
		return 0, 0, fmt.Errorf("visible range at %v+%v: %w", offset, extent, ErrNegativeLength)
	}

	first = a.lengths.IndexFromOffset(offset)
	for first < a.Count()-1 && a.lengths.OffsetFromIndex(first) <= offset {
		first++
	}
	last = max(first, a.lengths.IndexFromOffset(offset+extent))
	return first, last, nil
}

func (a *Axis) checkIndex(i int) error {
	if i < 0 || i >= a.Count() {
		return fmt.Errorf("index %d of %d: %w", i, a.Count(), ErrIndexOutOfRange)
	}
	return nil
}

func validLength(v float64) bool {
	return v >= 0 && !math.IsNaN(v)
}
