package annotation

import "errors"

var (
	// ErrInvalidDashArray indicates a dash array entry that is not a finite
	// non-negative number.
	ErrInvalidDashArray = errors.New("annotation: invalid dash array")
	// ErrNilAnnotation indicates a nil annotation passed to a Layer.
	ErrNilAnnotation = errors.New("annotation: nil annotation")
	// ErrUnknownAnnotation indicates an ID that is not registered in the Layer.
	ErrUnknownAnnotation = errors.New("annotation: unknown annotation id")
)
