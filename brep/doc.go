// Package brep holds the boundary-representation edges produced when a
// sketch contour is projected onto a surface.
//
// An Edge is a trimmed curve: two 3D vertices bounding an underlying
// Curve. Straight pieces are backed by Line; sampled arcs are backed by
// ApproxCurve, which keeps the whole projected polyline. Edges remember
// the sketch primitive they came from through Provenance so a solid
// modeler can trace faces back to sketch elements.
//
// Vertices are gonum r3.Vec values. Closure is exact by construction:
// the last edge of a loop ends on the very value the first edge starts
// from, and CheckLoop verifies that within a tolerance.
package brep
