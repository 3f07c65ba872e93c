package zone

import "deedles.dev/xsel/geom"

// DefaultSize is the default edge length of corner hot-zones and the
// thickness of side hot-zones.
const DefaultSize = 35.0

// Corners holds the four corners of a canonical rectangle. It is a
// snapshot derived from a Rect and should be recomputed whenever the
// rectangle changes.
type Corners struct {
	TopLeft     Point
	TopRight    Point
	BottomLeft  Point
	BottomRight Point
}

// CornersOf canonicalizes r and returns its corners.
func CornersOf(r Rect) Corners {
	r = r.Canon()
	return Corners{
		TopLeft:     r.Min,
		TopRight:    geom.Pt(r.Max.X, r.Min.Y),
		BottomLeft:  geom.Pt(r.Min.X, r.Max.Y),
		BottomRight: r.Max,
	}
}

// Point returns the location of the given corner.
func (c Corners) Point(corner Corner) Point {
	switch corner {
	case TopLeft:
		return c.TopLeft
	case TopRight:
		return c.TopRight
	case BottomLeft:
		return c.BottomLeft
	default:
		return c.BottomRight
	}
}

// Rect returns the rectangle that c are the corners of.
func (c Corners) Rect() Rect {
	return Rect{Min: c.TopLeft, Max: c.BottomRight}
}

// HotZone is an area that a pointer can grab to resize a selection.
type HotZone struct {
	Zone Zone
	Rect Rect
}

// HotZones returns the eight hot-zones around c in the order in which
// they are hit-tested. Corner zones are size by size squares
// centered on each corner. Side zones span the full length of each
// side and are size thick, centered on the side.
//
// Corner zones come first because they overlap the ends of the side
// zones, and a point near a vertex must resolve to the corner.
func (c Corners) HotZones(size float64) [8]HotZone {
	half := size / 2
	square := func(p Point) Rect {
		return geom.XYWH(p.X-half, p.Y-half, size, size)
	}

	return [...]HotZone{
		{TopLeft, square(c.TopLeft)},
		{TopRight, square(c.TopRight)},
		{BottomLeft, square(c.BottomLeft)},
		{BottomRight, square(c.BottomRight)},
		{SideTop, geom.XYWH(c.TopLeft.X, c.TopLeft.Y-half, c.TopRight.X-c.TopLeft.X, size)},
		{SideRight, geom.XYWH(c.TopRight.X-half, c.TopRight.Y, size, c.BottomRight.Y-c.TopRight.Y)},
		{SideLeft, geom.XYWH(c.TopLeft.X-half, c.TopLeft.Y, size, c.BottomLeft.Y-c.TopLeft.Y)},
		{SideBottom, geom.XYWH(c.BottomLeft.X, c.BottomLeft.Y-half, c.BottomRight.X-c.BottomLeft.X, size)},
	}
}

// ZoneAt returns the zone under p using [DefaultSize], or nil if p is
// not in any zone.
func (c Corners) ZoneAt(p Point) Zone {
	return c.ZoneAtSize(p, DefaultSize)
}

// ZoneAtSize returns the first of c's hot-zones of the given size
// that contains p, or nil if there are none.
func (c Corners) ZoneAtSize(p Point, size float64) Zone {
	for _, hz := range c.HotZones(size) {
		if hz.Rect.Contains(p) {
			return hz.Zone
		}
	}
	return nil
}

// Nearest returns the corner closest to p and its location. Ties go to
// the corner that comes first in [CornerList]. NaN distances never
// compare as smaller, so a NaN input yields the top-left corner.
func (c Corners) Nearest(p Point) (Point, Corner) {
	best, bestCorner := c.TopLeft, TopLeft
	bestDist := p.Dist(best)
	for _, corner := range CornerList[1:] {
		cp := c.Point(corner)
		if d := p.Dist(cp); d < bestDist {
			best, bestCorner, bestDist = cp, corner, d
		}
	}
	return best, bestCorner
}
