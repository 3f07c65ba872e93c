package zone

// CursorKind is a category of pointer cursor that indicates which way
// a zone resizes.
type CursorKind uint8

const (
	CursorResizeVertical CursorKind = iota
	CursorResizeHorizontal
	CursorResizeDiagUp
	CursorResizeDiagDown
)

// CursorKinds lists every CursorKind.
var CursorKinds = [...]CursorKind{
	CursorResizeVertical,
	CursorResizeHorizontal,
	CursorResizeDiagUp,
	CursorResizeDiagDown,
}

var cursorTokens = [...]string{
	CursorResizeVertical:   "resize-vertical",
	CursorResizeHorizontal: "resize-horizontal",
	CursorResizeDiagUp:     "resize-diag-up",
	CursorResizeDiagDown:   "resize-diag-down",
}

func (k CursorKind) String() string { return token(cursorTokens[:], k, "cursor") }

// Cursor returns [CursorResizeVertical] for the top and bottom sides
// and [CursorResizeHorizontal] for the left and right.
func (s Side) Cursor() CursorKind {
	switch s {
	case SideTop, SideBottom:
		return CursorResizeVertical
	default:
		return CursorResizeHorizontal
	}
}

// Cursor returns [CursorResizeDiagDown] for the top-left and
// bottom-right corners, which resize along a line running down and to
// the right, and [CursorResizeDiagUp] for the other two.
func (c Corner) Cursor() CursorKind {
	switch c {
	case TopLeft, BottomRight:
		return CursorResizeDiagDown
	default:
		return CursorResizeDiagUp
	}
}
