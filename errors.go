package svgcurve

import "errors"

// Only ErrMalformedDocument aborts a conversion. The other conditions are
// absorbed with a best-effort partial result unless Strict is set.
var (
	ErrMalformedDocument    = errors.New("malformed document")
	ErrUnsupportedTransform = errors.New("unsupported transform")
	ErrTruncatedPathData    = errors.New("truncated path data")
	ErrUnknownToken         = errors.New("unknown token")
)

type options struct {
	strict      bool
	centerDepth bool
}

// Option configures parsing and normalization.
type Option func(*options)

// Strict escalates unsupported transforms, truncated path data and unknown
// tokens to hard failures instead of silently degrading.
func Strict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// CenterDepth makes Normalize center the depth axis in addition to the
// horizontal axis. By default the depth axis is left untouched.
func CenterDepth() Option {
	return func(o *options) {
		o.centerDepth = true
	}
}

func makeOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
