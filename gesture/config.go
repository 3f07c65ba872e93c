package gesture

import "deedles.dev/xsel/zone"

// Config configures a Machine.
type Config struct {
	// ZoneSize is the size of the hot-zones around the selection's
	// corners and sides.
	ZoneSize float64

	// SlowModifier, while held, scales pointer movement by SlowFactor
	// during moves and resizes.
	SlowModifier Modifiers
	SlowFactor   float64

	// FastModifier, while held, scales pointer movement by FastFactor
	// during moves and resizes. SlowModifier wins if both are held.
	FastModifier Modifiers
	FastFactor   float64

	// Step is the distance that one keyboard command moves, extends,
	// or shrinks the selection by.
	Step float64

	// ResizeAnchor is the corner that stays fixed when a keyboard
	// command sets the selection's width or height. It defaults to
	// the bottom-right corner.
	ResizeAnchor zone.Corner

	// Bounds is the area that the selection lives in, usually the
	// screen. If it is empty, commands that depend on it do nothing
	// and keyboard moves and extensions are not clamped.
	Bounds zone.Rect
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ZoneSize:     zone.DefaultSize,
		SlowModifier: ModShift,
		SlowFactor:   0.25,
		FastModifier: ModCtrl,
		FastFactor:   4,
		Step:         1,
		ResizeAnchor: zone.BottomRight,
	}
}

// Speed returns the factor that pointer movement is scaled by while
// mods are held.
func (c Config) Speed(mods Modifiers) float64 {
	switch {
	case mods.Has(c.SlowModifier):
		return c.SlowFactor
	case mods.Has(c.FastModifier):
		return c.FastFactor
	default:
		return 1
	}
}
