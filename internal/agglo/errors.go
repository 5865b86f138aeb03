package agglo

import "errors"

var (
	// ErrNegativeCapacity is returned by Cluster.Reserve for a negative request.
	ErrNegativeCapacity = errors.New("agglo: negative capacity request")

	// ErrTargetOutOfRange is returned when the requested final cluster count
	// is below 1 or above the current cluster count.
	ErrTargetOutOfRange = errors.New("agglo: target cluster count out of range")

	// ErrUnknownMethod is returned when a linkage method name cannot be parsed.
	ErrUnknownMethod = errors.New("agglo: unknown linkage method")

	// ErrBadHeader is returned when a point file does not start with a
	// "count=<n>" header line with n >= 1.
	ErrBadHeader = errors.New("agglo: invalid or missing count header")

	// ErrBadRecord is returned for a malformed or out-of-range point line.
	ErrBadRecord = errors.New("agglo: invalid point record")

	// ErrCountMismatch is returned when the number of point lines does not
	// match the declared count.
	ErrCountMismatch = errors.New("agglo: point count does not match header")
)
