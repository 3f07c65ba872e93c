// Package zone identifies the parts of a selection rectangle that a
// pointer can grab: its four sides and four corners. It provides the
// hit-testing that maps a cursor position to one of those parts, the
// resize transforms that drag them, and the textual tokens used to
// name them in configuration.
//
// Everything in this package is a pure function of its inputs and is
// safe to call concurrently.
package zone

import (
	"fmt"

	"deedles.dev/xsel/geom"
)

type (
	// Point is the coordinate type used for selections.
	Point = geom.Point[float64]

	// Rect is the rectangle type used for selections.
	Rect = geom.Rect[float64]
)

// Zone is either a Side or a Corner. It is the result of hit-testing
// a point against a selection and identifies the active resize
// handle. No other types implement Zone.
type Zone interface {
	fmt.Stringer

	// Edges returns the edges of the rectangle that move when this
	// zone is dragged.
	Edges() geom.Edges

	// Cursor returns the cursor affordance to show while hovering
	// over or dragging this zone.
	Cursor() CursorKind

	zone()
}

// Side is one of the four sides of a rectangle.
type Side uint8

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// Sides lists every Side.
var Sides = [...]Side{SideTop, SideRight, SideBottom, SideLeft}

func (Side) zone() {}

// Edges returns the single edge that s refers to.
func (s Side) Edges() geom.Edges {
	switch s {
	case SideTop:
		return geom.EdgeTop
	case SideRight:
		return geom.EdgeRight
	case SideBottom:
		return geom.EdgeBottom
	case SideLeft:
		return geom.EdgeLeft
	default:
		return geom.EdgeNone
	}
}

// Opposite returns the side across the rectangle from s.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Corner is one of the four corners of a rectangle. The order of the
// constants is the order in which corners are considered when
// resolving ties.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// CornerList lists every Corner in tie-breaking order.
var CornerList = [...]Corner{TopLeft, TopRight, BottomLeft, BottomRight}

func (Corner) zone() {}

// Edges returns the two edges that meet at c.
func (c Corner) Edges() geom.Edges {
	switch c {
	case TopLeft:
		return geom.EdgeTop | geom.EdgeLeft
	case TopRight:
		return geom.EdgeTop | geom.EdgeRight
	case BottomLeft:
		return geom.EdgeBottom | geom.EdgeLeft
	case BottomRight:
		return geom.EdgeBottom | geom.EdgeRight
	default:
		return geom.EdgeNone
	}
}

// Opposite returns the corner diagonally across the rectangle from c.
func (c Corner) Opposite() Corner {
	return 3 - c
}

// CornerOf returns the corner where the given edges meet. It returns
// false if edges does not name exactly one horizontal and one
// vertical edge.
func CornerOf(edges geom.Edges) (Corner, bool) {
	for _, c := range CornerList {
		if c.Edges() == edges {
			return c, true
		}
	}
	return 0, false
}

// Direction is a direction in which a selection can be moved,
// extended, or shrunk.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every Direction.
var Directions = [...]Direction{Up, Down, Left, Right}

// Vector returns the unit vector pointing in d.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return geom.Pt(0.0, -1)
	case Down:
		return geom.Pt(0.0, 1)
	case Left:
		return geom.Pt(-1.0, 0)
	case Right:
		return geom.Pt(1.0, 0)
	default:
		return Point{}
	}
}

// Side returns the side of a rectangle that faces d.
func (d Direction) Side() Side {
	switch d {
	case Up:
		return SideTop
	case Down:
		return SideBottom
	case Left:
		return SideLeft
	default:
		return SideRight
	}
}
