package geom

import (
	"fmt"
	"image"
	"math"
)

// Rect is a rectangle described by two corners. A canonical Rect has
// Min.X <= Max.X and Min.Y <= Max.Y, but this is not enforced. An
// inverted Rect reports negative widths or heights from Dx and Dy.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}.
// Unlike image.Rect, the result is not canonicalized.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

// XYWH returns the rectangle with its Min corner at (x, y) and the
// given width and height. Negative sizes produce an inverted Rect.
func XYWH[T Scalar](x, y, w, h T) Rect[T] {
	return Rect[T]{Min: Pt(x, y), Max: Pt(x+w, y+h)}
}

// FromImage converts an image.Rectangle.
func FromImage[T Scalar](r image.Rectangle) Rect[T] {
	return Rt(T(r.Min.X), T(r.Min.Y), T(r.Max.X), T(r.Max.Y))
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

// X returns the X coordinate of r's Min corner.
func (r Rect[T]) X() T { return r.Min.X }

// Y returns the Y coordinate of r's Min corner.
func (r Rect[T]) Y() T { return r.Min.Y }

// Dx returns r's width. It is negative if r is inverted horizontally.
func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

// Dy returns r's height. It is negative if r is inverted vertically.
func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

// Size returns r's width and height.
func (r Rect[T]) Size() Point[T] {
	return Pt(r.Dx(), r.Dy())
}

// Empty reports whether r contains no points.
func (r Rect[T]) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Canon returns the canonical version of r. If r is inverted along
// an axis, Min and Max are swapped along that axis so that the
// result covers the same area with Min at the top-left. Canon is
// idempotent.
//
//	                          ----------
//	                          |        |
//	                          |        | <- Dy() == -3
//	                          |        |
//	r.Min is down here ---->  O---------
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Sub returns r translated by -p.
func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Sub(p), Max: r.Max.Sub(p)}
}

// Resize returns r with its Min corner unchanged and its size set to
// size.
func (r Rect[T]) Resize(size Point[T]) Rect[T] {
	r.Max = r.Min.Add(size)
	return r
}

// Center returns the point in the middle of r.
func (r Rect[T]) Center() Point[T] {
	return r.Min.Add(r.Max).Div(2)
}

// CenterAt returns r translated so that its center is at p.
func (r Rect[T]) CenterAt(p Point[T]) Rect[T] {
	return r.Add(p.Sub(r.Center()))
}

// Contains reports whether p is inside of r. r is treated as
// half-open, so points along its bottom and right edges are not
// contained.
func (r Rect[T]) Contains(p Point[T]) bool {
	return p.In(r)
}

// Union returns the smallest rectangle that contains both r and s.
// Both are canonicalized first.
func (r Rect[T]) Union(s Rect[T]) Rect[T] {
	r, s = r.Canon(), s.Canon()
	r.Min.X = min(r.Min.X, s.Min.X)
	r.Min.Y = min(r.Min.Y, s.Min.Y)
	r.Max.X = max(r.Max.X, s.Max.X)
	r.Max.Y = max(r.Max.Y, s.Max.Y)
	return r
}

// Intersect returns the largest rectangle contained by both r and s.
// If they do not overlap, the zero Rect is returned.
func (r Rect[T]) Intersect(s Rect[T]) Rect[T] {
	r, s = r.Canon(), s.Canon()
	r.Min.X = max(r.Min.X, s.Min.X)
	r.Min.Y = max(r.Min.Y, s.Min.Y)
	r.Max.X = min(r.Max.X, s.Max.X)
	r.Max.Y = min(r.Max.Y, s.Max.Y)
	if r.Empty() {
		return Rect[T]{}
	}
	return r
}

// Clamp returns r translated so that as much of it as possible lies
// inside of bounds. If r is larger than bounds along an axis, it is
// aligned to the Min edge of bounds along that axis.
func (r Rect[T]) Clamp(bounds Rect[T]) Rect[T] {
	r, bounds = r.Canon(), bounds.Canon()
	var shift Point[T]
	switch {
	case r.Min.X < bounds.Min.X || r.Dx() > bounds.Dx():
		shift.X = bounds.Min.X - r.Min.X
	case r.Max.X > bounds.Max.X:
		shift.X = bounds.Max.X - r.Max.X
	}
	switch {
	case r.Min.Y < bounds.Min.Y || r.Dy() > bounds.Dy():
		shift.Y = bounds.Min.Y - r.Min.Y
	case r.Max.Y > bounds.Max.Y:
		shift.Y = bounds.Max.Y - r.Max.Y
	}
	return r.Add(shift)
}

// MoveEdges returns r with each of the specified edges moved by the
// component of d along that edge's axis. Top and bottom move by d.Y,
// left and right by d.X. Edges not in edges do not move at all, so
// a resize by a corner's two edges leaves the opposite corner exactly
// where it was.
//
// The result is not canonicalized. Moving an edge past its opposite
// produces an inverted Rect.
func (r Rect[T]) MoveEdges(edges Edges, d Point[T]) Rect[T] {
	if edges.Has(EdgeTop) {
		r.Min.Y += d.Y
	}
	if edges.Has(EdgeBottom) {
		r.Max.Y += d.Y
	}
	if edges.Has(EdgeLeft) {
		r.Min.X += d.X
	}
	if edges.Has(EdgeRight) {
		r.Max.X += d.X
	}
	return r
}

// WithPos returns r moved so that its Min corner is at f(r.Min). Its
// size is unchanged.
func (r Rect[T]) WithPos(f func(Point[T]) Point[T]) Rect[T] {
	return r.Add(f(r.Min).Sub(r.Min))
}

// WithSize returns r with its size replaced by f(r.Size()). Its Min
// corner is unchanged.
func (r Rect[T]) WithSize(f func(Point[T]) Point[T]) Rect[T] {
	return r.Resize(f(r.Size()))
}

// WithX returns r moved horizontally so that Min.X is f(Min.X).
func (r Rect[T]) WithX(f func(T) T) Rect[T] {
	return r.WithPos(func(p Point[T]) Point[T] { return p.WithX(f) })
}

// WithY returns r moved vertically so that Min.Y is f(Min.Y).
func (r Rect[T]) WithY(f func(T) T) Rect[T] {
	return r.WithPos(func(p Point[T]) Point[T] { return p.WithY(f) })
}

// WithWidth returns r with its width replaced by f(r.Dx()).
func (r Rect[T]) WithWidth(f func(T) T) Rect[T] {
	r.Max.X = r.Min.X + f(r.Dx())
	return r
}

// WithHeight returns r with its height replaced by f(r.Dy()).
func (r Rect[T]) WithHeight(f func(T) T) Rect[T] {
	r.Max.Y = r.Min.Y + f(r.Dy())
	return r
}

// Image returns the smallest image.Rectangle containing the canonical
// form of r.
func (r Rect[T]) Image() image.Rectangle {
	r = r.Canon()
	return image.Rect(
		int(math.Floor(float64(r.Min.X))),
		int(math.Floor(float64(r.Min.Y))),
		int(math.Ceil(float64(r.Max.X))),
		int(math.Ceil(float64(r.Max.Y))),
	)
}
