package currencyfmt

import "errors"

// ErrMalformedPattern marks a plural override pattern that failed to parse.
// It indicates corrupt locale or override data, never a runtime condition.
var ErrMalformedPattern = errors.New("currencyfmt: malformed currency pattern")

// ErrNoDataPaths is returned by loaders configured without any source.
var ErrNoDataPaths = errors.New("currencyfmt: no data paths configured")

// ErrUnsupportedFormat marks data files with an unknown extension
var ErrUnsupportedFormat = errors.New("currencyfmt: unsupported data format")
