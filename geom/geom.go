// Package geom provides utilities for manipulating rectangular geometry.
//
// It is patterned heavily after image.Rectangle and image.Point, but
// vastly extends their capabilities. Unlike image.Rectangle, a Rect
// is allowed to be inverted, with Max to the left of or above Min, so
// that an in-progress drag can be represented without losing track
// of which edge is which. Call [Rect.Canon] to get the normalized
// form.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Float | constraints.Integer
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether all of the edges in e2 are set in e.
func (e Edges) Has(e2 Edges) bool {
	return e&e2 == e2
}

// Opposite returns the edges on the other side of the rectangle from
// each edge in e.
func (e Edges) Opposite() Edges {
	var o Edges
	if e.Has(EdgeTop) {
		o |= EdgeBottom
	}
	if e.Has(EdgeBottom) {
		o |= EdgeTop
	}
	if e.Has(EdgeLeft) {
		o |= EdgeRight
	}
	if e.Has(EdgeRight) {
		o |= EdgeLeft
	}
	return o
}

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var buf []byte
	for _, n := range [...]struct {
		e    Edges
		name string
	}{
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
		{EdgeLeft, "left"},
		{EdgeRight, "right"},
	} {
		if !e.Has(n.e) {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '|')
		}
		buf = append(buf, n.name...)
	}
	return string(buf)
}
