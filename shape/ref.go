package shape

import "github.com/gogpu/sketch"

// PointHandle indexes a point owned by a PointStore.
type PointHandle int

// PointStore resolves point handles. The store owns the points; shapes
// only read through it, so edits made by the store's owner are seen on
// the next query.
type PointStore interface {
	Point(h PointHandle) sketch.Point
}

// Points is a slice-backed PointStore.
type Points struct {
	pts []sketch.Point
}

// Add stores p and returns its handle.
func (s *Points) Add(p sketch.Point) PointHandle {
	s.pts = append(s.pts, p)
	return PointHandle(len(s.pts) - 1)
}

// Point returns the point for h.
func (s *Points) Point(h PointHandle) sketch.Point {
	return s.pts[h]
}

// Set replaces the point for h.
func (s *Points) Set(h PointHandle, p sketch.Point) {
	s.pts[h] = p
}

// Len returns the number of stored points.
func (s *Points) Len() int {
	return len(s.pts)
}

// Ref is a shared, externally mutable scalar such as a solver variable.
// Readers must call Get on every use instead of caching the value.
type Ref interface {
	Get() float64
	Set(v float64)
}

// Param is a plain Ref holding its value directly.
// It is not synchronized; hosts that mutate it from several goroutines
// must guard it themselves.
type Param struct {
	Value float64
}

// NewParam returns a Param holding v.
func NewParam(v float64) *Param {
	return &Param{Value: v}
}

// Get returns the current value.
func (p *Param) Get() float64 { return p.Value }

// Set stores v.
func (p *Param) Set(v float64) { p.Value = v }
