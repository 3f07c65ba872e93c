package xcursor

import (
	"bufio"
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"slices"
	"strings"
	"time"
)

func init() {
	image.RegisterFormat("xcursor", "Xcur", decodeImage, decodeConfig)
}

func decodeImage(r io.Reader) (image.Image, error) {
	cur, err := Decode(r)
	if err != nil {
		return nil, err
	}
	if len(cur.Images) == 0 {
		return nil, ErrNoImages
	}
	return cur.Images[0].Image, nil
}

func decodeConfig(r io.Reader) (image.Config, error) {
	cur, err := Decode(r)
	if err != nil {
		return image.Config{}, err
	}
	if len(cur.Images) == 0 {
		return image.Config{}, ErrNoImages
	}

	img := cur.Images[0].Image
	return image.Config{
		ColorModel: img.ColorModel(),
		Width:      img.Rect.Dx(),
		Height:     img.Rect.Dy(),
	}, nil
}

var (
	// ErrBadMagic indicates an unrecognized magic number when
	// attempting to load a cursor.
	ErrBadMagic = errors.New("bad magic")

	// ErrNoImages is returned when decoding a cursor file with no
	// images as an image.Image.
	ErrNoImages = errors.New("no images in cursor")
)

const (
	fileMagic = 0x72756358 // ASCII "Xcur"

	chunkComment = 0xfffe0001
	chunkImage   = 0xfffd0002

	// maxDimension is the largest width or height allowed by the
	// Xcursor format.
	maxDimension = 0x7fff
)

// Cursor is a decoded Xcursor file.
type Cursor struct {
	Comments []*Comment
	Images   []*Image
}

// Comment is a text chunk embedded in a cursor file.
type Comment struct {
	Subtype CommentSubtype
	Comment string
}

// CommentSubtype says what a comment's text is about.
type CommentSubtype uint32

const (
	CommentSubtypeCopyright CommentSubtype = 1 + iota
	CommentSubtypeLicense
	CommentSubtypeOther
)

// Image is a single frame of a cursor at one nominal size.
type Image struct {
	NominalSize int
	Delay       time.Duration
	Hot         image.Point
	Image       *image.RGBA
}

// BestSize returns the nominal size available in c that is closest
// to size, or 0 if c has no images.
func (c *Cursor) BestSize(size int) int {
	best := 0
	for _, img := range c.Images {
		if best == 0 || abs(img.NominalSize-size) < abs(best-size) {
			best = img.NominalSize
		}
	}
	return best
}

// Frames returns the animation frames of c at the nominal size
// closest to size, in file order.
func (c *Cursor) Frames(size int) []*Image {
	best := c.BestSize(size)
	var frames []*Image
	for _, img := range c.Images {
		if img.NominalSize == best {
			frames = append(frames, img)
		}
	}
	return frames
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type toc struct {
	Type     uint32
	Subtype  uint32
	Position uint32
}

type decoder struct {
	br  *bufio.Reader
	off int
}

// DecodeFile decodes the Xcursor file at path.
func DecodeFile(path string) (*Cursor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode decodes an Xcursor file from r.
func Decode(r io.Reader) (c *Cursor, err error) {
	d := decoder{br: bufio.NewReader(r)}
	defer d.catch(&err)

	var cursor Cursor
	for _, t := range d.header() {
		d.skipTo(int(t.Position))
		d.chunkHeader(t)
		switch t.Type {
		case chunkComment:
			cursor.Comments = append(cursor.Comments, d.comment(t))
		case chunkImage:
			cursor.Images = append(cursor.Images, d.image(t))
		default:
			d.throw(fmt.Errorf("unknown chunk type: %x", t.Type))
		}
	}

	return &cursor, nil
}

// header reads the file header and table of contents. The entries are
// returned sorted by position so that chunks can be read without
// seeking backwards.
func (d *decoder) header() []toc {
	if d.uint32() != fileMagic {
		d.throw(ErrBadMagic)
	}
	hsize := d.uint32()
	d.uint32() // Version.
	ntoc := d.uint32()
	d.skipTo(int(hsize))

	tocs := make([]toc, 0, min(ntoc, 1024))
	for range ntoc {
		tocs = append(tocs, toc{
			Type:     d.uint32(),
			Subtype:  d.uint32(),
			Position: d.uint32(),
		})
	}

	slices.SortStableFunc(tocs, func(t1, t2 toc) int {
		return cmp.Compare(t1.Position, t2.Position)
	})
	return tocs
}

func (d *decoder) chunkHeader(t toc) {
	d.uint32() // Header size.
	if typ := d.uint32(); typ != t.Type {
		d.throw(fmt.Errorf("chunk type mismatch: expected: %x, got: %x", t.Type, typ))
	}
	if sub := d.uint32(); sub != t.Subtype {
		d.throw(fmt.Errorf("chunk subtype mismatch: expected: %v, got: %v", t.Subtype, sub))
	}
	d.uint32() // Version.
}

func (d *decoder) comment(t toc) *Comment {
	length := d.uint32()

	var buf strings.Builder
	_, err := io.CopyN(&buf, d, int64(length))
	if err != nil {
		d.throw(fmt.Errorf("read comment: %w", err))
	}

	return &Comment{
		Subtype: CommentSubtype(t.Subtype),
		Comment: buf.String(),
	}
}

func (d *decoder) image(t toc) *Image {
	w, h := d.uint32(), d.uint32()
	if w > maxDimension || h > maxDimension {
		d.throw(fmt.Errorf("image too large: %vx%v", w, h))
	}
	xhot, yhot := d.uint32(), d.uint32()
	delay := d.uint32()

	// Only as many pixel bytes are allocated as the file holds.
	size := int64(w) * int64(h) * 4
	pix, err := io.ReadAll(io.LimitReader(d, size))
	if err != nil {
		d.throw(fmt.Errorf("read pixels: %w", err))
	}
	if int64(len(pix)) < size {
		d.throw(fmt.Errorf("read pixels: %w", io.ErrUnexpectedEOF))
	}

	img := &image.RGBA{
		Pix:    pix,
		Stride: 4 * int(w),
		Rect:   image.Rect(0, 0, int(w), int(h)),
	}

	// Pixels are stored as little-endian premultiplied ARGB, so each
	// one is B, G, R, A in memory.
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+2] = img.Pix[i+2], img.Pix[i]
	}

	return &Image{
		NominalSize: int(t.Subtype),
		Delay:       time.Duration(delay) * time.Millisecond,
		Hot:         image.Pt(int(xhot), int(yhot)),
		Image:       img,
	}
}

func (d *decoder) uint32() (v uint32) {
	d.throw(binary.Read(d, binary.LittleEndian, &v))
	return v
}

func (d *decoder) Read(buf []byte) (int, error) {
	n, err := d.br.Read(buf)
	d.off += n
	return n, err
}

func (d *decoder) skipTo(off int) {
	if off < d.off {
		d.throw(fmt.Errorf("chunk at %v overlaps previous data ending at %v", off, d.off))
	}
	n, err := d.br.Discard(off - d.off)
	d.off += n
	d.throw(err)
}

type decoderError struct {
	err error
}

func (d *decoder) throw(err error) {
	if err != nil {
		panic(decoderError{err: err})
	}
}

func (d *decoder) catch(err *error) {
	switch r := recover().(type) {
	case nil:
	case decoderError:
		*err = r.err
	default:
		panic(r)
	}
}
