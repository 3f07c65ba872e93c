package gesture

import (
	"fmt"
	"slices"
	"strings"

	"deedles.dev/xsel/geom"
	"deedles.dev/xsel/zone"
)

// Op is a keyboard-driven operation on the selection.
type Op uint8

const (
	// OpMove moves the selection in Dir.
	OpMove Op = iota

	// OpExtend moves the side facing Dir outwards, stopping at the
	// configured bounds.
	OpExtend

	// OpShrink moves the side facing Dir inwards, stopping when it
	// reaches the opposite side.
	OpShrink

	// OpSetWidth sets the selection's width to Value, keeping the
	// configured resize anchor in place.
	OpSetWidth

	// OpSetHeight sets the selection's height to Value, keeping the
	// configured resize anchor in place.
	OpSetHeight

	// OpAlign aligns the selection with Edges of the configured
	// bounds. With no edges, it centers the selection.
	OpAlign

	// OpSelectAll selects the configured bounds.
	OpSelectAll
)

var opTokens = [...]string{
	OpMove:      "move",
	OpExtend:    "extend",
	OpShrink:    "shrink",
	OpSetWidth:  "set-width",
	OpSetHeight: "set-height",
	OpAlign:     "align",
	OpSelectAll: "select-all",
}

func (op Op) String() string {
	if int(op) >= len(opTokens) {
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
	return opTokens[op]
}

// ParseOp parses an op token, such as "set-width", ignoring case.
func ParseOp(text string) (Op, error) {
	text = strings.TrimSpace(text)
	for i, tok := range opTokens {
		if strings.EqualFold(text, tok) {
			return Op(i), nil
		}
	}
	return 0, &zone.InvalidTokenError{Kind: "op", Token: text, Valid: slices.Clone(opTokens[:])}
}

// Command is a keyboard-driven change to the selection.
type Command struct {
	Op    Op
	Dir   zone.Direction
	Edges geom.Edges

	// Value is the new size for OpSetWidth and OpSetHeight.
	Value float64
}

func (cmd Command) String() string {
	switch cmd.Op {
	case OpMove, OpExtend, OpShrink:
		return fmt.Sprintf("%v %v", cmd.Op, cmd.Dir)
	case OpSetWidth, OpSetHeight:
		return fmt.Sprintf("%v %v", cmd.Op, cmd.Value)
	case OpAlign:
		return fmt.Sprintf("%v %v", cmd.Op, cmd.Edges)
	default:
		return cmd.Op.String()
	}
}

// Apply performs cmd count times. Moves, extensions, and shrinks go
// count times the configured step. A count less than 1 is treated as
// 1. Commands are ignored while a pointer gesture is active, and all
// but OpSelectAll are ignored if there is no selection.
func (m *Machine) Apply(cmd Command, count int) Update {
	if m.Mode() != ModeIdle {
		return m.update(false, false)
	}
	if m.sel == nil && cmd.Op != OpSelectAll {
		return m.update(false, false)
	}

	r, ok := m.command(cmd, max(count, 1))
	if !ok {
		return m.update(false, false)
	}
	r = r.Canon()

	changed := m.sel == nil || m.sel.Rect != r
	m.sel = &Selection{Rect: r}
	return m.update(changed, changed)
}

func (m *Machine) command(cmd Command, count int) (zone.Rect, bool) {
	bounds := m.config.Bounds.Canon()
	step := m.config.Step * float64(count)

	switch cmd.Op {
	case OpMove:
		r := m.sel.Rect.Add(cmd.Dir.Vector().Mul(step))
		if !bounds.Empty() {
			r = r.Clamp(bounds)
		}
		return r, true

	case OpExtend:
		d := cmd.Dir.Vector().Mul(step)
		r := zone.Resize(cmd.Dir.Side(), m.sel.Rect, d.X, d.Y)
		if !bounds.Empty() {
			if in := r.Intersect(bounds); !in.Empty() {
				r = in
			}
		}
		return r, true

	case OpShrink:
		r := m.sel.Rect
		extent := r.Dx()
		if cmd.Dir == zone.Up || cmd.Dir == zone.Down {
			extent = r.Dy()
		}
		d := cmd.Dir.Vector().Mul(-min(step, extent))
		return zone.Resize(cmd.Dir.Side(), r, d.X, d.Y), true

	case OpSetWidth:
		side := zone.SideRight
		if m.config.ResizeAnchor.Edges().Has(geom.EdgeRight) {
			side = zone.SideLeft
		}
		return m.setSize(side, cmd.Value-m.sel.Rect.Dx()), true

	case OpSetHeight:
		side := zone.SideBottom
		if m.config.ResizeAnchor.Edges().Has(geom.EdgeBottom) {
			side = zone.SideTop
		}
		return m.setSize(side, cmd.Value-m.sel.Rect.Dy()), true

	case OpAlign:
		if bounds.Empty() {
			return zone.Rect{}, false
		}
		return geom.Align(bounds, m.sel.Rect, cmd.Edges), true

	case OpSelectAll:
		if bounds.Empty() {
			return zone.Rect{}, false
		}
		return bounds, true

	default:
		return zone.Rect{}, false
	}
}

// setSize grows the selection by delta by moving side outwards.
func (m *Machine) setSize(side zone.Side, delta float64) zone.Rect {
	d := side.Edges()
	switch {
	case d.Has(geom.EdgeLeft), d.Has(geom.EdgeTop):
		delta = -delta
	}
	return zone.Resize(side, m.sel.Rect, delta, delta)
}
