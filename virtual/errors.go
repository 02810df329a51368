package virtual

import "errors"

var (
	// ErrIndexOutOfRange indicates an item index outside the axis.
	ErrIndexOutOfRange = errors.New("virtual: index out of range")
	// ErrNegativeLength indicates a negative or NaN length, count or extent.
	ErrNegativeLength = errors.New("virtual: length must be non-negative")
	// ErrEmptyAxis indicates a lookup on an axis with no items.
	ErrEmptyAxis = errors.New("virtual: axis has no items")
)
