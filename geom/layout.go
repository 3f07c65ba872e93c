package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally.
func hsplit[T Scalar](r Rect[T], w T) (left, right Rect[T]) {
	left = r.Resize(Pt(w, r.Dy()))
	right = r.Resize(Pt(r.Dx()-w, r.Dy())).Add(Pt(w, 0))
	return left, right
}

// vsplit splits a rectangle into two rectangles arranged vertically.
func vsplit[T Scalar](r Rect[T], h T) (top, bottom Rect[T]) {
	top = r.Resize(Pt(r.Dx(), h))
	bottom = r.Resize(Pt(r.Dx(), r.Dy()-h)).Add(Pt(0, h))
	return top, bottom
}

// TiledEvenVertically yields numtiles rectangles of equal height that
// together cover r, from top to bottom.
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TiledEvenVertically[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		r := r.Canon()
		size := Pt(0, r.Dy()/T(numtiles))
		c, _ := vsplit(r, size.Y)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(size)
		}
	}
}

// TiledEvenHorizontally yields numtiles rectangles of equal width
// that together cover r, from left to right.
//
//	----------
//	|  |  |  |
//	----------
func TiledEvenHorizontally[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		r := r.Canon()
		size := Pt(r.Dx()/T(numtiles), 0)
		c, _ := hsplit(r, size.X)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(size)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
func TileRows[T Scalar](tiles []Rect[T], r Rect[T], cols int) {
	for i, t := range xiter.Enumerate(TiledRows(len(tiles), r, cols)) {
		tiles[i] = t
	}
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 || cols <= 0 {
			return
		}

		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}

		for row := range TiledEvenVertically(numrows, r) {
			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified. Along an axis with
// neither edge specified, inner is centered in outer. Align with
// EdgeNone centers inner in outer.
func Align[T Scalar](outer, inner Rect[T], edges Edges) Rect[T] {
	outer = outer.Canon()
	inner = inner.Canon().CenterAt(outer.Center())
	switch {
	case edges.Has(EdgeTop):
		inner.Min.Y, inner.Max.Y = outer.Min.Y, outer.Min.Y+inner.Dy()
		if edges.Has(EdgeBottom) {
			inner.Max.Y = outer.Max.Y
		}
	case edges.Has(EdgeBottom):
		inner.Min.Y, inner.Max.Y = outer.Max.Y-inner.Dy(), outer.Max.Y
	}
	switch {
	case edges.Has(EdgeLeft):
		inner.Min.X, inner.Max.X = outer.Min.X, outer.Min.X+inner.Dx()
		if edges.Has(EdgeRight) {
			inner.Max.X = outer.Max.X
		}
	case edges.Has(EdgeRight):
		inner.Min.X, inner.Max.X = outer.Max.X-inner.Dx(), outer.Max.X
	}

	return inner
}
