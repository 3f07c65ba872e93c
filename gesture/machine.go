// Package gesture turns a stream of pointer events into changes to a
// rectangular selection.
//
// A Machine owns the selection. The host application feeds it events
// one at a time with [Machine.Handle] and redraws using the returned
// [Update]. Pressing the left button on one of the selection's
// hot-zones resizes it by that zone, pressing inside of it moves it,
// and pressing anywhere else drags out a new selection. Pressing the
// right button drags whichever corner of the selection is nearest to
// the pointer. Releasing the button that started a gesture commits
// it.
//
// While a gesture is active, every step is computed from the
// rectangle and pointer position at the moment the gesture started,
// not from the previous step, so the result does not drift. The zone
// that a resize is bound to does not change during the gesture, even
// if it is dragged past the opposite side. The stored selection is
// canonicalized after every step, so such a drag appears to flip the
// selection over the fixed side.
package gesture

import "deedles.dev/xsel/zone"

// Mode is the gesture that a Machine is performing.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeMove
	ModeResize
	ModeExtend
	ModeResizeToCursor
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeMove:
		return "move"
	case ModeResize:
		return "resize"
	case ModeExtend:
		return "extend"
	case ModeResizeToCursor:
		return "resize-to-cursor"
	default:
		return "unknown"
	}
}

// Selection is a selected region and the gesture being performed on
// it.
type Selection struct {
	// Rect is always canonical.
	Rect zone.Rect
	Mode Mode
}

// Update describes the result of handling an event.
type Update struct {
	// Selection is the selection after the event. It is nil if there
	// is no selection.
	Selection *Selection

	// Changed is true if the selection's rectangle was created,
	// removed, or modified by the event.
	Changed bool

	// Committed is true if the event ended a gesture.
	Committed bool
}

// Rect returns the selected rectangle, or false if there is no
// selection.
func (u Update) Rect() (zone.Rect, bool) {
	if u.Selection == nil {
		return zone.Rect{}, false
	}
	return u.Selection.Rect, true
}

type active struct {
	button      Button
	zone        zone.Zone
	initialRect zone.Rect
	initialPos  zone.Point
}

// Machine is the interaction state machine for a single selection.
// It is not safe for concurrent use.
type Machine struct {
	config Config
	sel    *Selection
	active active
	pick   *zone.Point
}

// New returns a Machine with no selection.
func New(config Config) *Machine {
	return &Machine{config: config}
}

// Config returns m's configuration.
func (m *Machine) Config() Config {
	return m.config
}

// Selection returns a copy of the current selection, or nil if there
// is none.
func (m *Machine) Selection() *Selection {
	if m.sel == nil {
		return nil
	}
	sel := *m.sel
	return &sel
}

// Mode returns the gesture currently in progress.
func (m *Machine) Mode() Mode {
	if m.sel == nil {
		return ModeIdle
	}
	return m.sel.Mode
}

// SetRect replaces the selection with r, abandoning any gesture in
// progress.
func (m *Machine) SetRect(r zone.Rect) Update {
	m.sel = &Selection{Rect: r.Canon()}
	m.active = active{}
	return m.update(true, false)
}

// Cancel removes the selection, abandoning any gesture in progress.
func (m *Machine) Cancel() Update {
	changed := m.sel != nil
	m.sel = nil
	m.active = active{}
	m.pick = nil
	return m.update(changed, false)
}

func (m *Machine) update(changed, committed bool) Update {
	return Update{
		Selection: m.Selection(),
		Changed:   changed,
		Committed: committed,
	}
}

// Handle processes a single pointer event. A gesture that ends with
// an empty rectangle, such as a click without a drag, removes the
// selection.
func (m *Machine) Handle(ev Event) Update {
	switch ev.Kind {
	case KindPress:
		return m.press(ev)
	case KindRelease:
		return m.release(ev)
	case KindMove:
		return m.move(ev)
	default:
		return m.update(false, false)
	}
}

func (m *Machine) press(ev Event) Update {
	if m.Mode() != ModeIdle {
		return m.update(false, false)
	}

	switch ev.Button {
	case ButtonLeft:
		return m.pressLeft(ev)
	case ButtonRight:
		return m.pressRight(ev)
	default:
		return m.update(false, false)
	}
}

func (m *Machine) begin(ev Event, mode Mode, z zone.Zone) {
	m.pick = nil
	m.sel.Mode = mode
	m.active = active{
		button:      ev.Button,
		zone:        z,
		initialRect: m.sel.Rect,
		initialPos:  ev.Pos,
	}
}

func (m *Machine) pressLeft(ev Event) Update {
	if m.sel != nil {
		corners := zone.CornersOf(m.sel.Rect)
		if z := corners.ZoneAtSize(ev.Pos, m.config.ZoneSize); z != nil {
			m.begin(ev, ModeResize, z)
			return m.update(false, false)
		}
		if m.sel.Rect.Contains(ev.Pos) {
			m.begin(ev, ModeMove, nil)
			return m.update(false, false)
		}
	}

	m.sel = &Selection{Rect: zone.Rect{Min: ev.Pos, Max: ev.Pos}}
	m.begin(ev, ModeExtend, nil)
	return m.update(true, false)
}

func (m *Machine) pressRight(ev Event) Update {
	if m.sel == nil {
		return m.update(false, false)
	}

	m.begin(ev, ModeResizeToCursor, nil)
	return m.resizeToCursor(ev.Pos)
}

func (m *Machine) move(ev Event) Update {
	if m.Mode() == ModeIdle {
		return m.update(false, false)
	}

	prev := m.sel.Rect
	a := &m.active
	delta := ev.Pos.Sub(a.initialPos).Mul(m.config.Speed(ev.Modifiers))

	switch m.sel.Mode {
	case ModeMove:
		m.sel.Rect = a.initialRect.Add(delta)
	case ModeResize:
		m.sel.Rect = zone.Resize(a.zone, a.initialRect, delta.X, delta.Y).Canon()
	case ModeExtend:
		m.sel.Rect = a.initialPos.Rect(ev.Pos)
	case ModeResizeToCursor:
		return m.resizeToCursor(ev.Pos)
	}

	return m.update(m.sel.Rect != prev, false)
}

func (m *Machine) resizeToCursor(p zone.Point) Update {
	prev := m.sel.Rect
	_, c := zone.CornersOf(prev).Nearest(p)
	m.sel.Rect = zone.MoveCornerTo(c, prev, p).Canon()
	return m.update(m.sel.Rect != prev, false)
}

func (m *Machine) release(ev Event) Update {
	if m.Mode() == ModeIdle || ev.Button != m.active.button {
		return m.update(false, false)
	}

	m.sel.Mode = ModeIdle
	m.active = active{}
	if m.sel.Rect.Empty() {
		m.sel = nil
		return m.update(true, true)
	}
	return m.update(false, true)
}

// HoverCursor returns the cursor that should be shown with the
// pointer at p. It returns false if the default cursor should be
// used.
func (m *Machine) HoverCursor(p zone.Point) (zone.CursorKind, bool) {
	switch m.Mode() {
	case ModeIdle:
		if m.sel == nil {
			return 0, false
		}
		z := zone.CornersOf(m.sel.Rect).ZoneAtSize(p, m.config.ZoneSize)
		if z == nil {
			return 0, false
		}
		return z.Cursor(), true

	case ModeResize:
		return m.active.zone.Cursor(), true

	case ModeResizeToCursor:
		_, c := zone.CornersOf(m.sel.Rect).Nearest(p)
		return c.Cursor(), true

	default:
		return 0, false
	}
}

// Pick records p as one corner of a new selection. The first call
// remembers p. The second creates a selection spanning both points
// and commits it. Picking does nothing while a gesture is active.
func (m *Machine) Pick(p zone.Point) Update {
	if m.Mode() != ModeIdle {
		return m.update(false, false)
	}

	if m.pick == nil {
		m.pick = &p
		return m.update(false, false)
	}

	r := m.pick.Rect(p)
	m.pick = nil
	if r.Empty() {
		return m.update(false, false)
	}
	m.sel = &Selection{Rect: r}
	return m.update(true, true)
}

// Pending returns the point recorded by the first of a pair of calls
// to Pick, if any.
func (m *Machine) Pending() (zone.Point, bool) {
	if m.pick == nil {
		return zone.Point{}, false
	}
	return *m.pick, true
}
