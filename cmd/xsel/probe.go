package main

import (
	"fmt"
	"log"

	"deedles.dev/xsel/letters"
	"deedles.dev/xsel/zone"
	"github.com/spf13/cobra"
)

func newZonesCmd(root *rootOptions) *cobra.Command {
	var size float64
	cmd := &cobra.Command{
		Use:   "zones X,Y,W,H PX,PY",
		Short: "Show the hot-zone and nearest corner of a rectangle at a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRect(args[0])
			if err != nil {
				return err
			}
			p, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				size = root.cfg.ZoneSize
			}

			corners := zone.CornersOf(r)
			out := cmd.OutOrStdout()

			z := corners.ZoneAtSize(p, size)
			if z == nil {
				fmt.Fprintln(out, "zone: none")
			} else {
				fmt.Fprintf(out, "zone: %v\n", z)
				fmt.Fprintf(out, "cursor: %v\n", z.Cursor())
			}

			np, c := corners.Nearest(p)
			fmt.Fprintf(out, "nearest: %v %v\n", c, np)
			return nil
		},
	}

	cmd.Flags().Float64Var(&size, "size", zone.DefaultSize, "Hot-zone size")

	return cmd
}

func newLettersCmd(root *rootOptions) *cobra.Command {
	var (
		alphabet string
		columns  int
		levels   int
	)
	cmd := &cobra.Command{
		Use:   "letters X,Y,W,H LABELS",
		Short: "Pick a point in a region by typing grid labels",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRect(args[0])
			if err != nil {
				return err
			}

			g := letters.NewWithAlphabet(r, alphabet, columns, levels)
			out := cmd.OutOrStdout()
			for _, label := range args[1] {
				p, done, err := g.Pick(label)
				if err != nil {
					return fmt.Errorf("label %q: %w", label, err)
				}
				if done {
					fmt.Fprintf(out, "%v,%v\n", p.X, p.Y)
					return nil
				}
				log.Printf("narrowed to %v", g.Region())
			}

			fmt.Fprintf(out, "incomplete: %v\n", formatRect(g.Region()))
			return nil
		},
	}

	cmd.Flags().StringVar(&alphabet, "alphabet", letters.DefaultAlphabet, "Cell labels")
	cmd.Flags().IntVar(&columns, "columns", letters.DefaultColumns, "Cells per row")
	cmd.Flags().IntVar(&levels, "levels", letters.DefaultLevels, "Picks needed to choose a point")

	return cmd
}
