package xcursor_test

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"deedles.dev/xsel/xcursor"
	"deedles.dev/xsel/zone"
	"github.com/stretchr/testify/require"
)

type testImage struct {
	size, w, h, xhot, yhot, delay uint32
	pix                           color.RGBA

	// noPixels omits the pixel data, leaving the chunk truncated.
	noPixels bool
}

// encode writes a cursor file with a comment followed by imgs. The
// table of contents lists the chunks in reverse order.
func encode(comment string, imgs ...testImage) []byte {
	const (
		headerSize = 16
		tocSize    = 12
		chunkSize  = 16
	)

	type chunk struct {
		typ, sub uint32
		data     []byte
	}

	var chunks []chunk
	if comment != "" {
		var buf bytes.Buffer
		binary.Write(&buf, binary.LittleEndian, uint32(len(comment)))
		buf.WriteString(comment)
		chunks = append(chunks, chunk{0xfffe0001, 1, buf.Bytes()})
	}
	for _, img := range imgs {
		var buf bytes.Buffer
		binary.Write(&buf, binary.LittleEndian, []uint32{img.w, img.h, img.xhot, img.yhot, img.delay})
		if !img.noPixels {
			for range img.w * img.h {
				buf.Write([]byte{img.pix.B, img.pix.G, img.pix.R, img.pix.A})
			}
		}
		chunks = append(chunks, chunk{0xfffd0002, img.size, buf.Bytes()})
	}

	var out bytes.Buffer
	le := func(v ...uint32) { binary.Write(&out, binary.LittleEndian, v) }

	le(0x72756358, headerSize, 0x10000, uint32(len(chunks)))
	pos := uint32(headerSize + tocSize*len(chunks))
	positions := make([]uint32, len(chunks))
	for i, c := range chunks {
		positions[i] = pos
		pos += chunkSize + uint32(len(c.data))
	}
	for i := len(chunks) - 1; i >= 0; i-- {
		le(chunks[i].typ, chunks[i].sub, positions[i])
	}
	for _, c := range chunks {
		le(chunkSize, c.typ, c.sub, 1)
		out.Write(c.data)
	}

	return out.Bytes()
}

func TestDecode(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	data := encode("public domain",
		testImage{size: 24, w: 2, h: 3, xhot: 1, yhot: 2, delay: 50, pix: red},
		testImage{size: 32, w: 4, h: 4, pix: red},
		testImage{size: 24, w: 2, h: 3, pix: red},
	)

	c, err := xcursor.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, c.Comments, 1)
	require.Equal(t, "public domain", c.Comments[0].Comment)
	require.Equal(t, xcursor.CommentSubtypeCopyright, c.Comments[0].Subtype)
	require.Len(t, c.Images, 3)

	img := c.Images[0]
	require.Equal(t, 24, img.NominalSize)
	require.Equal(t, 50*time.Millisecond, img.Delay)
	require.Equal(t, image.Pt(1, 2), img.Hot)
	require.Equal(t, image.Rect(0, 0, 2, 3), img.Image.Bounds())
	require.Equal(t, red, img.Image.RGBAAt(1, 2))

	require.Equal(t, 24, c.BestSize(20))
	require.Equal(t, 32, c.BestSize(40))
	require.Len(t, c.Frames(24), 2)
	require.Len(t, c.Frames(32), 1)
}

func TestDecodeBadMagic(t *testing.T) {
	_, err := xcursor.Decode(bytes.NewReader([]byte("not a cursor file")))
	require.ErrorIs(t, err, xcursor.ErrBadMagic)
}

func TestDecodeTruncated(t *testing.T) {
	data := encode("", testImage{size: 16, w: 8, h: 8})
	_, err := xcursor.Decode(bytes.NewReader(data[:len(data)-10]))
	require.Error(t, err)
}

func TestDecodeOversizedTruncated(t *testing.T) {
	data := encode("", testImage{size: 32, w: 0x7fff, h: 0x7fff, noPixels: true})

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err := xcursor.Decode(bytes.NewReader(data))
	runtime.ReadMemStats(&after)

	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(16<<20))
}

func TestDecodeTooLarge(t *testing.T) {
	data := encode("", testImage{size: 32, w: 0x8000, h: 1, noPixels: true})
	_, err := xcursor.Decode(bytes.NewReader(data))
	require.ErrorContains(t, err, "image too large")
}

func TestImageDecode(t *testing.T) {
	blue := color.RGBA{B: 0x80, A: 0x80}
	data := encode("", testImage{size: 16, w: 3, h: 2, pix: blue})

	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "xcursor", format)
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	require.Equal(t, blue, img.At(2, 1))

	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 3, config.Width)
	require.Equal(t, 2, config.Height)
}

func TestEmptyBestSize(t *testing.T) {
	var c xcursor.Cursor
	require.Zero(t, c.BestSize(24))
	require.Empty(t, c.Frames(24))
}

func writeTheme(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	data := encode("", testImage{size: 24, w: 1, h: 1, pix: color.RGBA{A: 0xff}})
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("text"), 0o644))
	return dir
}

func TestLoadThemeFromDir(t *testing.T) {
	dir := writeTheme(t, "left_ptr", "size_ver")

	theme, err := xcursor.LoadThemeFromDir(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Base(dir), theme.Name)
	require.Len(t, theme.Cursors, 2)

	c, ok := theme.Lookup("ns-resize", "size_ver")
	require.True(t, ok)
	require.Same(t, theme.Cursors["size_ver"], c)

	_, ok = theme.Lookup("ew-resize")
	require.False(t, ok)
}

func TestLoadThemeInherits(t *testing.T) {
	root := t.TempDir()
	for _, theme := range []string{"child", "parent"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, theme, "cursors"), 0o755))
	}
	cursor := encode("", testImage{size: 24, w: 1, h: 1})
	require.NoError(t, os.WriteFile(filepath.Join(root, "child", "cursors", "ns-resize"), cursor, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "parent", "cursors", "ew-resize"), cursor, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "child", "index.theme"), []byte("[Icon Theme]\nInherits=parent\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "parent", "index.theme"), []byte("[Icon Theme]\nInherits = child, parent\n"), 0o644))
	t.Setenv("XCURSOR_PATH", root)

	theme, err := xcursor.LoadTheme("child")
	require.NoError(t, err)
	require.Contains(t, theme.Cursors, "ns-resize")
	require.Contains(t, theme.Cursors, "ew-resize")
}

func TestIcons(t *testing.T) {
	icons := xcursor.Icons{Dir: writeTheme(t, "size_ver", "h_double_arrow", "nwse-resize")}

	c, err := icons.ForZone(zone.SideTop)
	require.NoError(t, err)
	require.NotNil(t, c)

	c, err = icons.ForZone(zone.TopLeft)
	require.NoError(t, err)
	require.NotNil(t, c)

	_, err = icons.Cursor(zone.CursorResizeHorizontal)
	require.NoError(t, err)

	_, err = icons.ForZone(zone.TopRight)
	require.ErrorIs(t, err, xcursor.ErrNoCursor)

	c, err = icons.ForZone(nil)
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestIconsMissingTheme(t *testing.T) {
	icons := xcursor.Icons{Dir: filepath.Join(t.TempDir(), "missing")}
	_, err := icons.Cursor(zone.CursorResizeVertical)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func BenchmarkDecode(b *testing.B) {
	data := encode("", testImage{size: 32, w: 32, h: 32, pix: color.RGBA{G: 0xff, A: 0xff}})
	for b.Loop() {
		xcursor.Decode(bytes.NewReader(data))
	}
}
