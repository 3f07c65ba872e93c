// Package xcursor loads Xcursor themes and the cursors in them, and
// maps selection resize zones to the theme cursors that depict them.
package xcursor

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var defaultLibraryPaths = []string{
	"~/.icons",
	"/usr/share/icons",
	"/usr/share/pixmaps",
	"~/.cursors",
	"/usr/share/cursors/xorg-x11",
	"/usr/X11R6/lib/X11/icons",
}

// LibraryPaths returns the directories searched for themes, in
// order. It respects $XCURSOR_PATH and $XDG_DATA_HOME.
func LibraryPaths() []string {
	if v, ok := os.LookupEnv("XCURSOR_PATH"); ok {
		return expandAll(filepath.SplitList(v))
	}

	v, ok := os.LookupEnv("XDG_DATA_HOME")
	if !ok || !filepath.IsAbs(v) {
		v = "~/.local/share"
	}
	return expandAll(append([]string{filepath.Join(v, "icons")}, defaultLibraryPaths...))
}

func expandAll(paths []string) []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return paths
	}

	for i, p := range paths {
		if rest, ok := strings.CutPrefix(p, "~/"); ok {
			paths[i] = filepath.Join(home, rest)
		}
	}
	return paths
}

// Theme is an Xcursor theme.
type Theme struct {
	Name    string
	Cursors map[string]*Cursor
}

// LoadTheme loads the named theme from [LibraryPaths]. If the theme
// has an index.theme file that lists other themes to inherit from,
// those themes are also loaded and any cursors that the theme itself
// does not provide are taken from them.
func LoadTheme(name string) (*Theme, error) {
	if name == "" {
		name = "default"
	}

	t := Theme{
		Name:    name,
		Cursors: make(map[string]*Cursor),
	}
	return &t, t.load(name, make(map[string]struct{}))
}

// LoadThemeFromDir loads a theme from the directory at path, ignoring
// the system search path completely. The returned theme's name is the
// basename of the given path.
func LoadThemeFromDir(path string) (*Theme, error) {
	t := Theme{
		Name:    filepath.Base(path),
		Cursors: make(map[string]*Cursor),
	}
	return &t, t.loadDir(path)
}

// Lookup returns the first of the named cursors that t has.
func (t *Theme) Lookup(names ...string) (*Cursor, bool) {
	for _, name := range names {
		if c, ok := t.Cursors[name]; ok {
			return c, true
		}
	}
	return nil, false
}

func (t *Theme) load(theme string, seen map[string]struct{}) error {
	if _, ok := seen[theme]; ok {
		return nil
	}
	seen[theme] = struct{}{}

	for _, path := range LibraryPaths() {
		dir := filepath.Join(path, theme, "cursors")
		err := t.loadDir(dir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load dir %q: %w", dir, err)
		}

		inherits, ierr := loadInherits(filepath.Join(path, theme, "index.theme"))
		if ierr != nil && !errors.Is(ierr, fs.ErrNotExist) {
			return fmt.Errorf("load inherited themes: %w", ierr)
		}
		if err != nil && ierr != nil {
			continue
		}

		for _, parent := range inherits {
			err := t.load(parent, seen)
			if err != nil {
				return fmt.Errorf("load inherited theme %q: %w", parent, err)
			}
		}

		break
	}

	return nil
}

func (t *Theme) loadDir(path string) error {
	dir, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("read dir: %w", err)
	}

	for _, ent := range dir {
		if _, ok := t.Cursors[ent.Name()]; ok {
			continue
		}
		if typ := ent.Type(); !typ.IsRegular() && (typ&fs.ModeSymlink == 0) {
			continue
		}

		entpath := filepath.Join(path, ent.Name())
		cur, err := DecodeFile(entpath)
		if err != nil {
			if errors.Is(err, ErrBadMagic) {
				continue
			}
			return fmt.Errorf("load %q: %w", entpath, err)
		}

		t.Cursors[ent.Name()] = cur
	}

	return nil
}

func loadInherits(index string) (inherits []string, err error) {
	file, err := os.Open(index)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s := bufio.NewScanner(file)
	for s.Scan() {
		key, val, ok := strings.Cut(s.Text(), "=")
		if !ok || strings.TrimSpace(key) != "Inherits" {
			continue
		}

		for _, v := range strings.FieldsFunc(val, func(c rune) bool {
			return (c == ':') || (c == ',') || (c == ';')
		}) {
			if v = strings.TrimSpace(v); v != "" {
				inherits = append(inherits, v)
			}
		}
		break
	}
	if err := s.Err(); err != nil {
		return inherits, fmt.Errorf("scan: %w", err)
	}

	return inherits, nil
}
