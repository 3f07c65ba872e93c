package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"deedles.dev/xsel/config"
	"deedles.dev/xsel/gesture"
	"deedles.dev/xsel/zone"
	"github.com/spf13/cobra"
)

type replayOptions struct {
	bounds     string
	jsonOutput bool
}

func newReplayCmd(root *rootOptions) *cobra.Command {
	opts := &replayOptions{}
	cmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "Replay a script of pointer and keyboard input",
		Long: `Replay reads one input per line from the script, or from stdin if
the script is "-" or missing, and prints the selection after each
input that changes or commits it.

  rect X,Y,W,H             replace the selection
  press X,Y BUTTON [MODS]  press left, middle, or right
  move X,Y [MODS]          move the pointer
  release X,Y BUTTON [MODS]
  key OP [ARG] [COUNT]     e.g. "key move left 10", "key set-width 200",
                           "key align top,left", "key select-all"
  pick X,Y                 pick one corner of a new selection
  hover X,Y                print the cursor shown at a point
  cancel                   clear the selection

MODS is a list such as "shift+ctrl". Lines starting with # are
ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}
			return runReplay(cmd, root.cfg, *opts, path)
		},
	}

	cmd.Flags().StringVar(&opts.bounds, "bounds", "0,0,1920,1080", "Screen bounds as x,y,width,height")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output one JSON object per update")

	return cmd
}

func runReplay(cmd *cobra.Command, cfg *config.Config, opts replayOptions, path string) error {
	bounds, err := parseRect(opts.bounds)
	if err != nil {
		return fmt.Errorf("bounds: %w", err)
	}

	in := cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer file.Close()
		in = file
	}

	r := replayer{
		cfg:  cfg,
		m:    gesture.New(cfg.Gesture(bounds)),
		out:  cmd.OutOrStdout(),
		json: opts.jsonOutput,
	}
	return r.run(in)
}

type replayer struct {
	cfg  *config.Config
	m    *gesture.Machine
	out  io.Writer
	json bool
}

type replayResult struct {
	Line      int       `json:"line"`
	Input     string    `json:"input"`
	Rect      *jsonRect `json:"rect"`
	Mode      string    `json:"mode"`
	Committed bool      `json:"committed"`
	Cursor    string    `json:"cursor,omitempty"`
}

type jsonRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r *replayer) run(in io.Reader) error {
	s := bufio.NewScanner(in)
	var line int
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		err := r.step(line, text)
		if err != nil {
			return fmt.Errorf("line %v: %w", line, err)
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	return nil
}

func (r *replayer) step(line int, text string) error {
	fields := strings.Fields(text)
	verb, args := fields[0], fields[1:]

	var u gesture.Update
	switch strings.ToLower(verb) {
	case "rect":
		if len(args) != 1 {
			return fmt.Errorf("usage: rect X,Y,W,H")
		}
		rect, err := parseRect(args[0])
		if err != nil {
			return err
		}
		u = r.m.SetRect(rect)

	case "press", "release":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("usage: %v X,Y BUTTON [MODS]", verb)
		}
		ev, err := parseEvent(args[0], args[2:])
		if err != nil {
			return err
		}
		ev.Button, err = parseButton(args[1])
		if err != nil {
			return err
		}
		ev.Kind = gesture.KindPress
		if strings.EqualFold(verb, "release") {
			ev.Kind = gesture.KindRelease
		}
		u = r.m.Handle(ev)

	case "move":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("usage: move X,Y [MODS]")
		}
		ev, err := parseEvent(args[0], args[1:])
		if err != nil {
			return err
		}
		ev.Kind = gesture.KindMove
		u = r.m.Handle(ev)

	case "key":
		cmd, count, err := r.parseCommand(args)
		if err != nil {
			return err
		}
		log.Printf("apply %v x%v", cmd, count)
		u = r.m.Apply(cmd, count)

	case "pick":
		if len(args) != 1 {
			return fmt.Errorf("usage: pick X,Y")
		}
		p, err := parsePoint(args[0])
		if err != nil {
			return err
		}
		u = r.m.Pick(p)

	case "hover":
		if len(args) != 1 {
			return fmt.Errorf("usage: hover X,Y")
		}
		p, err := parsePoint(args[0])
		if err != nil {
			return err
		}
		cursor := "default"
		if kind, ok := r.m.HoverCursor(p); ok {
			cursor = kind.String()
		}
		return r.print(line, text, gesture.Update{Selection: r.m.Selection()}, cursor)

	case "cancel":
		u = r.m.Cancel()

	default:
		return fmt.Errorf("unknown input %q", verb)
	}

	if !u.Changed && !u.Committed {
		return nil
	}
	return r.print(line, text, u, "")
}

func (r *replayer) print(line int, text string, u gesture.Update, cursor string) error {
	result := replayResult{
		Line:      line,
		Input:     text,
		Mode:      r.m.Mode().String(),
		Committed: u.Committed,
		Cursor:    cursor,
	}
	if rect, ok := u.Rect(); ok {
		result.Rect = &jsonRect{X: rect.X(), Y: rect.Y(), Width: rect.Dx(), Height: rect.Dy()}
	}

	if r.json {
		return json.NewEncoder(r.out).Encode(result)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%v: %v", line, result.Mode)
	if rect, ok := u.Rect(); ok {
		fmt.Fprintf(&sb, " %v", formatRect(rect))
	} else {
		sb.WriteString(" none")
	}
	if u.Committed {
		sb.WriteString(" committed")
	}
	if cursor != "" {
		fmt.Fprintf(&sb, " cursor=%v", cursor)
	}
	_, err := fmt.Fprintln(r.out, sb.String())
	return err
}

func parseEvent(pos string, mods []string) (gesture.Event, error) {
	p, err := parsePoint(pos)
	if err != nil {
		return gesture.Event{}, err
	}

	ev := gesture.Event{Pos: p}
	if len(mods) > 0 {
		ev.Modifiers, err = parseModifiers(mods[0])
		if err != nil {
			return gesture.Event{}, err
		}
	}
	return ev, nil
}

func parseButton(v string) (gesture.Button, error) {
	for _, b := range []gesture.Button{gesture.ButtonLeft, gesture.ButtonMiddle, gesture.ButtonRight} {
		if strings.EqualFold(v, b.String()) {
			return b, nil
		}
	}
	return gesture.ButtonNone, fmt.Errorf("unknown button %q", v)
}

func parseModifiers(v string) (gesture.Modifiers, error) {
	var mods gesture.Modifiers
	for _, name := range strings.Split(v, "+") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "shift":
			mods |= gesture.ModShift
		case "ctrl":
			mods |= gesture.ModCtrl
		case "alt":
			mods |= gesture.ModAlt
		case "super":
			mods |= gesture.ModSuper
		case "none":
		default:
			return 0, fmt.Errorf("unknown modifier %q", name)
		}
	}
	return mods, nil
}

func (r *replayer) parseCommand(args []string) (cmd gesture.Command, count int, err error) {
	if len(args) == 0 {
		return cmd, 0, fmt.Errorf("usage: key OP [ARG] [COUNT]")
	}

	cmd.Op, err = gesture.ParseOp(args[0])
	if err != nil {
		return cmd, 0, err
	}
	args = args[1:]

	switch cmd.Op {
	case gesture.OpMove, gesture.OpExtend, gesture.OpShrink:
		if len(args) == 0 {
			return cmd, 0, fmt.Errorf("%v requires a direction", cmd.Op)
		}
		cmd.Dir, err = zone.ParseDirection(args[0])
		if err != nil {
			return cmd, 0, err
		}
		args = args[1:]

	case gesture.OpSetWidth, gesture.OpSetHeight:
		if len(args) == 0 {
			return cmd, 0, fmt.Errorf("%v requires a size", cmd.Op)
		}
		cmd.Value, err = strconv.ParseFloat(args[0], 64)
		if err != nil {
			return cmd, 0, fmt.Errorf("%v: %w", cmd.Op, err)
		}
		args = args[1:]

	case gesture.OpAlign:
		cmd.Edges = r.cfg.Align
		if len(args) > 0 {
			if _, err := strconv.Atoi(args[0]); err != nil {
				cmd.Edges, err = config.ParseEdges(args[0])
				if err != nil {
					return cmd, 0, err
				}
				args = args[1:]
			}
		}
	}

	count = 1
	switch len(args) {
	case 0:
	case 1:
		count, err = strconv.Atoi(args[0])
		if err != nil {
			return cmd, 0, fmt.Errorf("count: %w", err)
		}
	default:
		return cmd, 0, fmt.Errorf("unexpected arguments: %v", strings.Join(args, " "))
	}

	return cmd, count, nil
}
