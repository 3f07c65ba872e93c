// Package letters implements keyboard-driven point picking. A region
// of the screen is split into a grid of cells, each labelled with a
// letter. Typing a label narrows the region down to that cell and
// splits it again, and after a fixed number of levels the center of
// the final cell is the picked point.
package letters

import (
	"errors"
	"iter"
	"unicode"

	"deedles.dev/xiter"
	"deedles.dev/xsel/geom"
	"deedles.dev/xsel/zone"
)

const (
	// DefaultAlphabet labels a 5 by 5 grid.
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxy"
	DefaultColumns  = 5
	DefaultLevels   = 3
)

// ErrUnknownLabel is returned by Pick when a label does not name a
// cell in the current grid.
var ErrUnknownLabel = errors.New("unknown label")

// Grid is the state of an in-progress pick.
type Grid struct {
	labels  []rune
	columns int
	levels  int

	root   zone.Rect
	region zone.Rect
	level  int
}

// New returns a Grid covering region with the default alphabet,
// columns, and levels.
func New(region zone.Rect) *Grid {
	return NewWithAlphabet(region, DefaultAlphabet, DefaultColumns, DefaultLevels)
}

// NewWithAlphabet returns a Grid covering region with one cell per
// rune in alphabet, arranged into rows of the given number of
// columns. Picking completes after levels picks.
func NewWithAlphabet(region zone.Rect, alphabet string, columns, levels int) *Grid {
	region = region.Canon()
	return &Grid{
		labels:  []rune(alphabet),
		columns: max(columns, 1),
		levels:  max(levels, 1),
		root:    region,
		region:  region,
	}
}

// Region returns the area that is currently being split.
func (g *Grid) Region() zone.Rect { return g.region }

// Level returns the number of picks made so far.
func (g *Grid) Level() int { return g.level }

// Reset returns g to its initial region.
func (g *Grid) Reset() {
	g.region = g.root
	g.level = 0
}

// Cells yields the label and bounds of each cell of the current
// level.
func (g *Grid) Cells() iter.Seq2[rune, zone.Rect] {
	return func(yield func(rune, zone.Rect) bool) {
		cells := geom.TiledRows(len(g.labels), g.region, g.columns)
		for i, cell := range xiter.Enumerate(cells) {
			if !yield(g.labels[i], cell) {
				return
			}
		}
	}
}

func (g *Grid) cell(label rune) (zone.Rect, bool) {
	label = unicode.ToLower(label)
	for l, cell := range g.Cells() {
		if unicode.ToLower(l) == label {
			return cell, true
		}
	}
	return zone.Rect{}, false
}

// Pick narrows the grid to the cell with the given label, ignoring
// case. When the final level is picked, it returns the center of the
// chosen cell and true, and the grid resets.
func (g *Grid) Pick(label rune) (zone.Point, bool, error) {
	cell, ok := g.cell(label)
	if !ok {
		return zone.Point{}, false, ErrUnknownLabel
	}

	g.level++
	if g.level < g.levels {
		g.region = cell
		return zone.Point{}, false, nil
	}

	g.Reset()
	return cell.Center(), true, nil
}
