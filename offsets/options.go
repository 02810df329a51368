package offsets

// DefaultPrecision is the fixed-point multiplier used when no WithPrecision
// option is given: three decimal digits.
const DefaultPrecision int64 = 1000

// Option configures a Storage during creation.
//
// Example:
//
//	// Column widths at 1/100 px precision with room for 1024 columns.
//	s := offsets.NewStorage(0, 0, offsets.WithPrecision(100), offsets.WithMinSize(1024))
type Option func(*storageOptions)

type storageOptions struct {
	precision int64
	minSize   int
}

func defaultOptions() storageOptions {
	return storageOptions{
		precision: DefaultPrecision,
		minSize:   2,
	}
}

// WithPrecision sets the fixed-point multiplier. Values are stored as
// ceil(v * precision). Non-positive precisions are ignored.
func WithPrecision(precision int64) Option {
	return func(o *storageOptions) {
		if precision > 0 {
			o.precision = precision
		}
	}
}

// WithMinSize pre-sizes the backing array so that at least n entries fit
// before the first capacity extension.
func WithMinSize(n int) Option {
	return func(o *storageOptions) {
		if n+1 > o.minSize {
			o.minSize = n + 1
		}
	}
}
