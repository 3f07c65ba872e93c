package gesture

import (
	"strings"
	"time"

	"deedles.dev/xsel/zone"
)

// Button is a pointer button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Kind is the kind of a pointer event.
type Kind uint8

const (
	// KindMove reports a new pointer position, with or without a
	// button held.
	KindMove Kind = iota
	KindPress
	KindRelease
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindPress:
		return "press"
	case KindRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Modifiers is a bitmask of keyboard modifiers held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper

	ModNone Modifiers = 0
)

// Has reports whether every modifier in m2 is held in m. It is false
// for ModNone.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m2 != ModNone && m&m2 == m2
}

func (m Modifiers) String() string {
	if m == ModNone {
		return "none"
	}

	var names []string
	for _, mod := range [...]struct {
		m    Modifiers
		name string
	}{
		{ModShift, "shift"},
		{ModCtrl, "ctrl"},
		{ModAlt, "alt"},
		{ModSuper, "super"},
	} {
		if m.Has(mod.m) {
			names = append(names, mod.name)
		}
	}
	return strings.Join(names, "+")
}

// Event is a pointer event delivered by the host application. Events
// must be delivered one at a time in the order in which they
// occurred.
type Event struct {
	Pos       zone.Point
	Kind      Kind
	Button    Button
	Modifiers Modifiers

	// Time is when the event occurred. It is informational and may be
	// zero.
	Time time.Time
}
