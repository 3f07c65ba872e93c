package xcursor

import (
	"errors"
	"fmt"
	"sync"

	"deedles.dev/xsel/zone"
)

// ErrNoCursor is returned when a theme has none of the cursors that
// can depict a [zone.CursorKind].
var ErrNoCursor = errors.New("no cursor for kind")

// Names lists, for each cursor kind, the cursor names that themes
// commonly use for it, most preferred first.
var Names = [...][]string{
	zone.CursorResizeVertical:   {"ns-resize", "size_ver", "sb_v_double_arrow", "v_double_arrow", "row-resize"},
	zone.CursorResizeHorizontal: {"ew-resize", "size_hor", "sb_h_double_arrow", "h_double_arrow", "col-resize"},
	zone.CursorResizeDiagUp:     {"nesw-resize", "size_bdiag", "fd_double_arrow", "top_right_corner"},
	zone.CursorResizeDiagDown:   {"nwse-resize", "size_fdiag", "bd_double_arrow", "top_left_corner"},
}

// Icons resolves cursor kinds to cursors from a theme. The theme is
// loaded the first time that a cursor is requested and the result,
// including any error, is reused after that. The zero value loads the
// default theme from the system search path.
type Icons struct {
	// Theme is the name of the theme to load from [LibraryPaths].
	Theme string

	// Dir, if not empty, is a directory to load the theme's cursors
	// from directly. Theme is ignored if it is set.
	Dir string

	once    sync.Once
	cursors [len(Names)]*Cursor
	err     error
}

func (icons *Icons) load() {
	var theme *Theme
	if icons.Dir != "" {
		theme, icons.err = LoadThemeFromDir(icons.Dir)
	} else {
		theme, icons.err = LoadTheme(icons.Theme)
	}
	if icons.err != nil {
		icons.err = fmt.Errorf("load theme: %w", icons.err)
		return
	}

	for kind, names := range Names {
		icons.cursors[kind], _ = theme.Lookup(names...)
	}
}

// Cursor returns the cursor that depicts kind.
func (icons *Icons) Cursor(kind zone.CursorKind) (*Cursor, error) {
	icons.once.Do(icons.load)
	if icons.err != nil {
		return nil, icons.err
	}

	if int(kind) >= len(icons.cursors) || icons.cursors[kind] == nil {
		return nil, fmt.Errorf("%v: %w", kind, ErrNoCursor)
	}
	return icons.cursors[kind], nil
}

// ForZone returns the cursor that depicts z. It returns nil and no
// error if z is nil.
func (icons *Icons) ForZone(z zone.Zone) (*Cursor, error) {
	if z == nil {
		return nil, nil
	}
	return icons.Cursor(z.Cursor())
}
