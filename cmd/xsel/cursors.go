package main

import (
	"errors"
	"fmt"

	"deedles.dev/xsel/xcursor"
	"deedles.dev/xsel/zone"
	"github.com/spf13/cobra"
)

func newCursorsCmd(root *rootOptions) *cobra.Command {
	var (
		theme string
		dir   string
		size  int
	)
	cmd := &cobra.Command{
		Use:   "cursors",
		Short: "List the theme cursors used for each resize zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("theme") {
				theme = root.cfg.CursorTheme
			}

			icons := xcursor.Icons{Theme: theme, Dir: dir}
			out := cmd.OutOrStdout()
			for _, kind := range zone.CursorKinds {
				c, err := icons.Cursor(kind)
				switch {
				case errors.Is(err, xcursor.ErrNoCursor):
					fmt.Fprintf(out, "%v: missing\n", kind)
					continue
				case err != nil:
					return err
				}

				frames := c.Frames(size)
				if len(frames) == 0 {
					fmt.Fprintf(out, "%v: empty\n", kind)
					continue
				}
				img := frames[0]
				fmt.Fprintf(out, "%v: size %v, %vx%v, hotspot %v,%v, %v frames\n",
					kind,
					img.NominalSize,
					img.Image.Rect.Dx(),
					img.Image.Rect.Dy(),
					img.Hot.X,
					img.Hot.Y,
					len(frames),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Xcursor theme name (default from XSEL_CURSOR_THEME)")
	cmd.Flags().StringVar(&dir, "dir", "", "Load cursors from this directory instead of a named theme")
	cmd.Flags().IntVar(&size, "size", 24, "Preferred nominal cursor size")

	return cmd
}
