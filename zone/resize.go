package zone

import "deedles.dev/xsel/geom"

// ResizeRect returns initial resized by dragging corner c by (dx, dy).
// initial should be the rectangle as it was when the drag started and
// (dx, dy) the total displacement since then. The corner opposite to
// c stays exactly where it was in initial:
//
//	TopLeft:     x += dx, y += dy, w -= dx, h -= dy
//	TopRight:    y += dy, w += dx, h -= dy
//	BottomLeft:  x += dx, w -= dx, h += dy
//	BottomRight: w += dx, h += dy
//
// The result is not canonicalized. Dragging c past the opposite
// corner yields a negative width or height.
func ResizeRect(c Corner, initial Rect, dx, dy float64) Rect {
	return Resize(c, initial, dx, dy)
}

// Resize is like [ResizeRect] but accepts any Zone. Resizing by a
// Side moves only that side, so the opposite side stays fixed and
// the component of the displacement along the side is ignored.
func Resize(z Zone, initial Rect, dx, dy float64) Rect {
	return initial.MoveEdges(z.Edges(), geom.Pt(dx, dy))
}

// MoveCornerTo returns r, canonicalized, resized so that the given
// corner lies at p. The opposite corner does not move.
func MoveCornerTo(c Corner, r Rect, p Point) Rect {
	r = r.Canon()
	d := p.Sub(CornersOf(r).Point(c))
	return ResizeRect(c, r, d.X, d.Y)
}
