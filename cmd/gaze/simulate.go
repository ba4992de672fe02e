package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gaze/content"
	"github.com/lixenwraith/gaze/engine"
	"github.com/lixenwraith/gaze/metrics"
)

func newSimulateCmd(opts *options) *cobra.Command {
	var (
		frames int
		width  float64
		height float64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the field headless and print the final node state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 0 {
				return fmt.Errorf("frames must not be negative, got %d", frames)
			}

			store, err := opts.openArchive()
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}
			items, err := opts.loadItems(cmd.Context(), store)
			if err != nil {
				return err
			}

			collector := metrics.NewCollector("gaze")
			g := engine.New(engine.Options{
				EdgeThreshold:  opts.cfg.Graph.EdgeThreshold,
				ClickThreshold: opts.cfg.Physics.ClickThreshold,
				Rand:           opts.rng(),
				Logger:         opts.logger,
				Listener:       collector,
			})

			vp := engine.Viewport{Width: width, Height: height}
			if err := g.Seed(items, vp); err != nil {
				return err
			}
			for i := 0; i < frames; i++ {
				g.Frame(vp)
			}

			out := cmd.OutOrStdout()
			brand.Fprintf(out, "gaze simulate")
			fmt.Fprintf(out, "  %d frames, %.0fx%.0f, %d skipped\n\n", g.FrameCount(), width, height, g.SkippedFrames())

			rows := make([][]string, 0, len(g.Nodes()))
			for _, n := range g.Nodes() {
				item, _ := n.Payload.(content.Item)
				rows = append(rows, []string{
					n.ID,
					item.Type.Label(),
					truncate(item.Title, 28),
					fmt.Sprintf("%.1f", n.Radius),
					fmt.Sprintf("%.1f,%.1f", n.Pos.X, n.Pos.Y),
					fmt.Sprintf("%.2f,%.2f", n.Vel.X, n.Vel.Y),
				})
			}
			printTable(out, []string{"ID", "TYPE", "TITLE", "RADIUS", "POS", "VEL"}, rows)

			fmt.Fprintf(out, "\n  edges: %d\n", len(g.Edges()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&frames, "frames", "n", 600, "number of frames to step")
	cmd.Flags().Float64Var(&width, "width", 800, "viewport width in world units")
	cmd.Flags().Float64Var(&height, "height", 600, "viewport height in world units")
	return cmd
}
