package geom

import (
	"fmt"
	"math"
)

// Point is an X, Y coordinate pair. The axes increase right and down.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Add returns the vector p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the vector p*k.
func (p Point[T]) Mul(k T) Point[T] {
	return Point[T]{X: p.X * k, Y: p.Y * k}
}

// Div returns the vector p/k.
func (p Point[T]) Div(k T) Point[T] {
	return Point[T]{X: p.X / k, Y: p.Y / k}
}

// In reports whether p is in r.
func (p Point[T]) In(r Rect[T]) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Dist returns the Euclidean distance between p and q.
func (p Point[T]) Dist(q Point[T]) float64 {
	d := p.Sub(q)
	return math.Hypot(float64(d.X), float64(d.Y))
}

// WithX returns a copy of p with X replaced by f(p.X).
func (p Point[T]) WithX(f func(T) T) Point[T] {
	p.X = f(p.X)
	return p
}

// WithY returns a copy of p with Y replaced by f(p.Y).
func (p Point[T]) WithY(f func(T) T) Point[T] {
	p.Y = f(p.Y)
	return p
}

// Rect returns a rectangle with p and q as opposite corners. The
// result is canonical.
func (p Point[T]) Rect(q Point[T]) Rect[T] {
	return Rect[T]{Min: p, Max: q}.Canon()
}

// Conv converts a Point[T] to a Point[To].
func Conv[To, T Scalar](p Point[T]) Point[To] {
	return Point[To]{X: To(p.X), Y: To(p.Y)}
}
