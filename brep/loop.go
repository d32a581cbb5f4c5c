package brep

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrEmptyLoop is returned by CheckLoop for an empty edge list.
var ErrEmptyLoop = errors.New("brep: loop has no edges")

// GapError reports a discontinuity between edge Index and the edge after it
// (wrapping to the first edge for the last index).
type GapError struct {
	Index int
	Gap   float64
}

// Error implements the error interface.
func (e *GapError) Error() string {
	return fmt.Sprintf("brep: gap of %g after edge %d", e.Gap, e.Index)
}

// NonFiniteVertexError reports an edge with a NaN or infinite endpoint.
type NonFiniteVertexError struct {
	Index  int
	Vertex r3.Vec
}

// Error implements the error interface.
func (e *NonFiniteVertexError) Error() string {
	return fmt.Sprintf("brep: edge %d has non-finite vertex %v", e.Index, e.Vertex)
}

// CheckLoop verifies that edges form one closed chain: each edge ends
// within tol of where the next one starts, and the last edge ends on the
// first edge's start. A tol of 0 demands exact equality.
func CheckLoop(edges []Edge, tol float64) error {
	if len(edges) == 0 {
		return ErrEmptyLoop
	}
	for i, e := range edges {
		if !IsFinite(e.Start) {
			return &NonFiniteVertexError{Index: i, Vertex: e.Start}
		}
		if !IsFinite(e.End) {
			return &NonFiniteVertexError{Index: i, Vertex: e.End}
		}
	}
	for i, e := range edges {
		next := edges[(i+1)%len(edges)]
		if gap := r3.Norm(r3.Sub(next.Start, e.End)); gap > tol {
			return &GapError{Index: i, Gap: gap}
		}
	}
	return nil
}

// Vertices returns the start vertex of every edge in order.
func Vertices(edges []Edge) []r3.Vec {
	out := make([]r3.Vec, len(edges))
	for i, e := range edges {
		out[i] = e.Start
	}
	return out
}
