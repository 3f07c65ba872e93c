// Package config loads xsel's settings from an optional .env file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"deedles.dev/xsel/geom"
	"deedles.dev/xsel/gesture"
	"deedles.dev/xsel/zone"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvZoneSize     = "XSEL_ZONE_SIZE"
	EnvSlowFactor   = "XSEL_SLOW_FACTOR"
	EnvFastFactor   = "XSEL_FAST_FACTOR"
	EnvStep         = "XSEL_STEP"
	EnvResizeAnchor = "XSEL_RESIZE_ANCHOR"
	EnvAlign        = "XSEL_ALIGN"
	EnvCursorTheme  = "XSEL_CURSOR_THEME"
)

// Config holds the loaded settings.
type Config struct {
	ZoneSize     float64
	SlowFactor   float64
	FastFactor   float64
	Step         float64
	ResizeAnchor zone.Corner

	// Align is the edges that an align command without explicit edges
	// aligns the selection to. EdgeNone centers it.
	Align geom.Edges

	// CursorTheme is the Xcursor theme to take resize cursors from.
	// Empty means the default theme.
	CursorTheme string
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	gc := gesture.DefaultConfig()
	return &Config{
		ZoneSize:     gc.ZoneSize,
		SlowFactor:   gc.SlowFactor,
		FastFactor:   gc.FastFactor,
		Step:         gc.Step,
		ResizeAnchor: gc.ResizeAnchor,
	}
}

// Load returns the default settings overridden first by the .env file
// at path, if path is not empty, and then by the process environment.
func Load(path string) (*Config, error) {
	dotenv := map[string]string{}
	if path != "" {
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", path, err)
		}
		dotenv = values
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	cfg := Default()
	err := errors.Join(
		parseFloat(lookup, EnvZoneSize, &cfg.ZoneSize),
		parseFloat(lookup, EnvSlowFactor, &cfg.SlowFactor),
		parseFloat(lookup, EnvFastFactor, &cfg.FastFactor),
		parseFloat(lookup, EnvStep, &cfg.Step),
		parseAnchor(lookup, &cfg.ResizeAnchor),
		parseAlign(lookup, &cfg.Align),
	)
	if err != nil {
		return nil, err
	}

	if v, ok := lookup(EnvCursorTheme); ok {
		cfg.CursorTheme = strings.TrimSpace(v)
	}

	return cfg, nil
}

type lookupFunc func(string) (string, bool)

func parseFloat(lookup lookupFunc, key string, dst *float64) error {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fmt.Errorf("%v: %w", key, err)
	}
	if f <= 0 {
		return fmt.Errorf("%v: must be positive, got %v", key, f)
	}

	*dst = f
	return nil
}

func parseAnchor(lookup lookupFunc, dst *zone.Corner) error {
	v, ok := lookup(EnvResizeAnchor)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}

	c, err := zone.ParseCorner(v)
	if err != nil {
		return fmt.Errorf("%v: %w", EnvResizeAnchor, err)
	}

	*dst = c
	return nil
}

func parseAlign(lookup lookupFunc, dst *geom.Edges) error {
	v, ok := lookup(EnvAlign)
	if !ok {
		return nil
	}

	edges, err := ParseEdges(v)
	if err != nil {
		return fmt.Errorf("%v: %w", EnvAlign, err)
	}

	*dst = edges
	return nil
}

// ParseEdges parses a comma-separated list of side tokens, such as
// "top,left", into the union of their edges. An empty list is
// EdgeNone.
func ParseEdges(v string) (geom.Edges, error) {
	var edges geom.Edges
	for _, tok := range strings.Split(v, ",") {
		if strings.TrimSpace(tok) == "" {
			continue
		}

		s, err := zone.ParseSide(tok)
		if err != nil {
			return 0, err
		}
		edges |= s.Edges()
	}
	return edges, nil
}

// Gesture returns a gesture configuration using cfg's settings, with
// the default modifiers and the given bounds.
func (cfg *Config) Gesture(bounds zone.Rect) gesture.Config {
	gc := gesture.DefaultConfig()
	gc.ZoneSize = cfg.ZoneSize
	gc.SlowFactor = cfg.SlowFactor
	gc.FastFactor = cfg.FastFactor
	gc.Step = cfg.Step
	gc.ResizeAnchor = cfg.ResizeAnchor
	gc.Bounds = bounds
	return gc
}
