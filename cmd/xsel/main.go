// Command xsel drives the selection engine from the command line. It
// replays scripted pointer and keyboard input against a selection,
// probes the hot-zones of a rectangle, resolves resize cursors from
// an Xcursor theme, and performs letter-grid point picks.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"deedles.dev/xsel/config"
	"deedles.dev/xsel/geom"
	"deedles.dev/xsel/zone"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool

	cfg *config.Config
}

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		args = []string{"xsel"}
	}

	cmd := newRootCmd(&rootOptions{})
	cmd.SetArgs(args[1:])
	cmd.SetOut(out)
	return cmd.Execute()
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "xsel",
		Short:         "Interactive rectangular selection engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.verbose {
				log.SetOutput(io.Discard)
			} else {
				log.SetOutput(cmd.ErrOrStderr())
			}

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			log.Printf("config loaded: zone size %v, step %v, anchor %v", cfg.ZoneSize, cfg.Step, cfg.ResizeAnchor)

			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a .env file with XSEL_* settings")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")

	cmd.AddCommand(
		newReplayCmd(opts),
		newZonesCmd(opts),
		newCursorsCmd(opts),
		newLettersCmd(opts),
	)

	return cmd
}

// parseRect parses a rectangle given as "x,y,width,height".
func parseRect(v string) (zone.Rect, error) {
	f, err := parseFloats(v, 4)
	if err != nil {
		return zone.Rect{}, fmt.Errorf("rectangle %q: %w", v, err)
	}
	return geom.XYWH(f[0], f[1], f[2], f[3]), nil
}

// parsePoint parses a point given as "x,y".
func parsePoint(v string) (zone.Point, error) {
	f, err := parseFloats(v, 2)
	if err != nil {
		return zone.Point{}, fmt.Errorf("point %q: %w", v, err)
	}
	return geom.Pt(f[0], f[1]), nil
}

func parseFloats(v string, n int) ([]float64, error) {
	parts := strings.Split(v, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %v comma-separated numbers", n)
	}

	f := make([]float64, n)
	for i, part := range parts {
		var err error
		f[i], err = strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}

func formatRect(r zone.Rect) string {
	return fmt.Sprintf("%v,%v,%v,%v", r.X(), r.Y(), r.Dx(), r.Dy())
}
