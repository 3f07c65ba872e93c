package gesture_test

import (
	"testing"

	"deedles.dev/xsel/geom"
	"deedles.dev/xsel/gesture"
	"deedles.dev/xsel/zone"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	config := gesture.DefaultConfig()
	config.Step = 10
	config.Bounds = geom.Rt(0.0, 0, 1000, 500)

	tests := []struct {
		name  string
		cmd   gesture.Command
		count int
		out   zone.Rect
	}{
		{"MoveRight", gesture.Command{Op: gesture.OpMove, Dir: zone.Right}, 3, geom.Rt(130.0, 100, 330, 200)},
		{"MoveUpClamped", gesture.Command{Op: gesture.OpMove, Dir: zone.Up}, 50, geom.Rt(100.0, 0, 300, 100)},
		{"MoveZeroCount", gesture.Command{Op: gesture.OpMove, Dir: zone.Down}, 0, geom.Rt(100.0, 110, 300, 210)},
		{"ExtendLeft", gesture.Command{Op: gesture.OpExtend, Dir: zone.Left}, 2, geom.Rt(80.0, 100, 300, 200)},
		{"ExtendDown", gesture.Command{Op: gesture.OpExtend, Dir: zone.Down}, 1, geom.Rt(100.0, 100, 300, 210)},
		{"ExtendLeftClamped", gesture.Command{Op: gesture.OpExtend, Dir: zone.Left}, 50, geom.Rt(0.0, 100, 300, 200)},
		{"ExtendDownClamped", gesture.Command{Op: gesture.OpExtend, Dir: zone.Down}, 100, geom.Rt(100.0, 100, 300, 500)},
		{"ShrinkUp", gesture.Command{Op: gesture.OpShrink, Dir: zone.Up}, 2, geom.Rt(100.0, 120, 300, 200)},
		{"ShrinkRightLimited", gesture.Command{Op: gesture.OpShrink, Dir: zone.Right}, 100, geom.Rt(100.0, 100, 100, 200)},
		{"SetWidth", gesture.Command{Op: gesture.OpSetWidth, Value: 50}, 1, geom.Rt(250.0, 100, 300, 200)},
		{"SetHeight", gesture.Command{Op: gesture.OpSetHeight, Value: 30}, 1, geom.Rt(100.0, 170, 300, 200)},
		{"Center", gesture.Command{Op: gesture.OpAlign}, 1, geom.Rt(400.0, 200, 600, 300)},
		{"AlignBottomRight", gesture.Command{Op: gesture.OpAlign, Edges: geom.EdgeBottom | geom.EdgeRight}, 1, geom.Rt(800.0, 400, 1000, 500)},
		{"SelectAll", gesture.Command{Op: gesture.OpSelectAll}, 1, geom.Rt(0.0, 0, 1000, 500)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := gesture.New(config)
			m.SetRect(geom.XYWH(100.0, 100, 200, 100))

			u := m.Apply(test.cmd, test.count)
			require.True(t, u.Changed)
			require.True(t, u.Committed)
			requireRect(t, test.out, u)
		})
	}
}

func TestApplyDefaultAnchor(t *testing.T) {
	m := gesture.New(gesture.DefaultConfig())
	m.SetRect(geom.XYWH(100.0, 100, 200, 100))
	anchor := geom.Pt(300.0, 200)

	u := m.Apply(gesture.Command{Op: gesture.OpSetWidth, Value: 50}, 1)
	requireRect(t, geom.Rt(250.0, 100, 300, 200), u)
	require.Equal(t, anchor, u.Selection.Rect.Max)

	u = m.Apply(gesture.Command{Op: gesture.OpSetHeight, Value: 150}, 1)
	requireRect(t, geom.Rt(250.0, 50, 300, 200), u)
	require.Equal(t, anchor, u.Selection.Rect.Max)
}

func TestApplyAnchor(t *testing.T) {
	config := gesture.DefaultConfig()
	config.ResizeAnchor = zone.TopLeft

	m := gesture.New(config)
	m.SetRect(geom.XYWH(100.0, 100, 200, 100))

	u := m.Apply(gesture.Command{Op: gesture.OpSetWidth, Value: 50}, 1)
	requireRect(t, geom.Rt(100.0, 100, 150, 200), u)

	u = m.Apply(gesture.Command{Op: gesture.OpSetHeight, Value: 300}, 1)
	requireRect(t, geom.Rt(100.0, 100, 150, 400), u)
}

func TestExtendOutsideBounds(t *testing.T) {
	config := gesture.DefaultConfig()
	config.Bounds = geom.Rt(0.0, 0, 100, 100)

	m := gesture.New(config)
	m.SetRect(geom.Rt(200.0, 200, 250, 250))

	u := m.Apply(gesture.Command{Op: gesture.OpExtend, Dir: zone.Right}, 5)
	requireRect(t, geom.Rt(200.0, 200, 255, 250), u)
}

func TestApplyIgnored(t *testing.T) {
	m := gesture.New(gesture.DefaultConfig())

	u := m.Apply(gesture.Command{Op: gesture.OpMove, Dir: zone.Left}, 1)
	require.False(t, u.Changed)
	require.Nil(t, u.Selection)

	u = m.Apply(gesture.Command{Op: gesture.OpSelectAll}, 1)
	require.False(t, u.Changed, "no bounds configured")

	m.SetRect(geom.XYWH(100.0, 100, 200, 100))
	u = m.Apply(gesture.Command{Op: gesture.OpAlign}, 1)
	require.False(t, u.Changed, "no bounds configured")

	m.Handle(press(200, 150, gesture.ButtonLeft))
	u = m.Apply(gesture.Command{Op: gesture.OpMove, Dir: zone.Left}, 1)
	require.False(t, u.Changed)
	require.Equal(t, gesture.ModeMove, m.Mode())
}

func TestSelectAllWithoutSelection(t *testing.T) {
	config := gesture.DefaultConfig()
	config.Bounds = geom.Rt(0.0, 0, 640, 480)

	m := gesture.New(config)
	u := m.Apply(gesture.Command{Op: gesture.OpSelectAll}, 1)
	require.True(t, u.Changed)
	requireRect(t, config.Bounds, u)

	u = m.Apply(gesture.Command{Op: gesture.OpSelectAll}, 1)
	require.False(t, u.Changed)
}

func TestParseOp(t *testing.T) {
	op, err := gesture.ParseOp(" Set-Width ")
	require.NoError(t, err)
	require.Equal(t, gesture.OpSetWidth, op)

	for _, op := range []gesture.Op{gesture.OpMove, gesture.OpAlign, gesture.OpSelectAll} {
		parsed, err := gesture.ParseOp(op.String())
		require.NoError(t, err)
		require.Equal(t, op, parsed)
	}

	_, err = gesture.ParseOp("jump")
	var terr *zone.InvalidTokenError
	require.ErrorAs(t, err, &terr)
	require.Equal(t, "op", terr.Kind)
	require.Len(t, terr.Valid, 7)
}

func TestCommandString(t *testing.T) {
	require.Equal(t, "move left", gesture.Command{Op: gesture.OpMove, Dir: zone.Left}.String())
	require.Equal(t, "set-width 50", gesture.Command{Op: gesture.OpSetWidth, Value: 50}.String())
	require.Equal(t, "align top|left", gesture.Command{Op: gesture.OpAlign, Edges: geom.EdgeTop | geom.EdgeLeft}.String())
	require.Equal(t, "select-all", gesture.Command{Op: gesture.OpSelectAll}.String())
}
