package sketch

import (
	"errors"
	"strconv"
)

// Sentinel errors for the sketch package.
var (
	// ErrEmptyContour is returned when a contour with no primitives is
	// transferred onto a surface.
	ErrEmptyContour = errors.New("sketch: contour has no primitives")

	// ErrNonFinite is returned when a computed vertex or radius is NaN or infinite.
	ErrNonFinite = errors.New("sketch: non-finite geometry")

	// ErrCoincident is returned when a primitive collapses to a single vertex.
	ErrCoincident = errors.New("sketch: coincident points")

	// ErrOutOfDomain is returned when an inverse solver is asked for a value
	// outside the domain of its equation.
	ErrOutOfDomain = errors.New("sketch: input outside solver domain")
)

// DegenerateGeometryError reports geometry that cannot be handed to a solid
// modeler: zero radii, coincident points or non-finite coordinates.
// PrimitiveID is empty when the failure is not tied to one primitive.
type DegenerateGeometryError struct {
	PrimitiveID string
	Reason      string
	Err         error
}

// Error implements the error interface.
func (e *DegenerateGeometryError) Error() string {
	msg := "sketch: degenerate geometry"
	if e.PrimitiveID != "" {
		msg += " in " + e.PrimitiveID
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns the underlying sentinel, if any.
func (e *DegenerateGeometryError) Unwrap() error {
	return e.Err
}

// InvalidAngleRangeError reports a primitive whose sweep could not be
// sampled into at least one edge.
type InvalidAngleRangeError struct {
	PrimitiveID string
	Samples     int
}

// Error implements the error interface.
func (e *InvalidAngleRangeError) Error() string {
	return "sketch: primitive " + e.PrimitiveID + " produced " +
		strconv.Itoa(e.Samples) + " samples, need at least 2"
}
