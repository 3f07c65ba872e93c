package geom_test

import (
	"slices"
	"testing"

	"deedles.dev/xsel/geom"
	"github.com/stretchr/testify/require"
)

func TestTileRows(t *testing.T) {
	tiles := make([]geom.Rect[int], 5)
	geom.TileRows(tiles, geom.Rt(0, 0, 30, 20), 3)
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 10, 10),
		geom.Rt(10, 0, 20, 10),
		geom.Rt(20, 0, 30, 10),
		geom.Rt(0, 10, 15, 20),
		geom.Rt(15, 10, 30, 20),
	}, tiles)
}

func TestTiledRowsInverted(t *testing.T) {
	tiles := slices.Collect(geom.TiledRows(4, geom.Rt(20, 20, 0, 0), 2))
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 10, 10),
		geom.Rt(10, 0, 20, 10),
		geom.Rt(0, 10, 10, 20),
		geom.Rt(10, 10, 20, 20),
	}, tiles)
}

func TestTiledRowsEmpty(t *testing.T) {
	require.Empty(t, slices.Collect(geom.TiledRows(0, geom.Rt(0, 0, 10, 10), 3)))
	require.Empty(t, slices.Collect(geom.TiledRows(3, geom.Rt(0, 0, 10, 10), 0)))
}

func TestAlign(t *testing.T) {
	outer := geom.Rt(0, 0, 100, 100)
	inner := geom.XYWH(3, 7, 20, 10)

	tests := []struct {
		name  string
		edges geom.Edges
		out   geom.Rect[int]
	}{
		{"Center", geom.EdgeNone, geom.Rt(40, 45, 60, 55)},
		{"Top", geom.EdgeTop, geom.Rt(40, 0, 60, 10)},
		{"BottomRight", geom.EdgeBottom | geom.EdgeRight, geom.Rt(80, 90, 100, 100)},
		{"Stretch", geom.EdgeLeft | geom.EdgeRight, geom.Rt(0, 45, 100, 55)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.out, geom.Align(outer, inner, test.edges))
		})
	}
}
