// Package lut caches cubic Bernstein weight tables.
//
// Sampling a cubic Bézier at n evenly spaced parameters needs the four
// Bernstein basis values for every t = i/(n-1). The tables depend only on
// n, so one table per sample count is shared by every curve.
//
//	w := lut.Cubic(10)
//	for _, b := range w {
//	    x := b[0]*p0.X + b[1]*p1.X + b[2]*p2.X + b[3]*p3.X
//	}
//
// Tables are read-only once returned; callers must not modify them.
package lut

import "sync"

// DefaultSoftLimit bounds the number of distinct sample counts kept.
const DefaultSoftLimit = 64

// Weights holds the cubic Bernstein basis values for one parameter t:
// (1-t)^3, 3(1-t)^2 t, 3(1-t) t^2, t^3.
type Weights [4]float64

// Table is a soft-limit cache of weight tables keyed by sample count.
// Table is safe for concurrent use and must not be copied after creation.
type Table struct {
	mu        sync.Mutex
	entries   map[int]*entry
	softLimit int
	tick      int64
}

type entry struct {
	weights []Weights
	atime   int64
}

// New creates a table cache with the given soft limit.
// A softLimit of 0 means unlimited.
func New(softLimit int) *Table {
	return &Table{
		entries:   make(map[int]*entry),
		softLimit: softLimit,
	}
}

var shared = New(DefaultSoftLimit)

// Cubic returns the shared weight table for n samples.
func Cubic(n int) []Weights {
	return shared.Cubic(n)
}

// Cubic returns the weight table for n samples, building it on first use.
// n < 2 yields a single sample at t=0.
func (c *Table) Cubic(n int) []Weights {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[n]; ok {
		e.atime = c.tick
		return e.weights
	}

	w := build(n)
	c.entries[n] = &entry{weights: w, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return w
}

// Len returns the number of cached tables.
func (c *Table) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func build(n int) []Weights {
	if n < 2 {
		return []Weights{{1, 0, 0, 0}}
	}
	w := make([]Weights, n)
	last := float64(n - 1)
	for i := range w {
		t := float64(i) / last
		mt := 1 - t
		w[i] = Weights{mt * mt * mt, 3 * mt * mt * t, 3 * mt * t * t, t * t * t}
	}
	// Pin the ends so sampled endpoints are bit-exact.
	w[0] = Weights{1, 0, 0, 0}
	w[n-1] = Weights{0, 0, 0, 1}
	return w
}

// evictOldest drops the least recently used quarter of the tables.
// Caller must hold c.mu.
func (c *Table) evictOldest() {
	target := c.softLimit * 3 / 4
	if target < 1 {
		target = 1
	}
	for len(c.entries) > target {
		oldestKey, oldest := 0, int64(-1)
		for k, e := range c.entries {
			if oldest < 0 || e.atime < oldest {
				oldestKey, oldest = k, e.atime
			}
		}
		delete(c.entries, oldestKey)
	}
}
