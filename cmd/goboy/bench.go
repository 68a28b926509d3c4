package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/thelolagemann/gomeboy-core/internal/gameboy"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func newBenchCmd() *cobra.Command {
	var (
		frames  int
		plotOut string
		lenient bool
	)

	cmd := &cobra.Command{
		Use:   "bench <rom>",
		Short: "Run a ROM uncapped and report the frame rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := utils.LoadFile(args[0])
			if err != nil {
				return err
			}

			var opts []gameboy.Opt
			if lenient {
				opts = append(opts, gameboy.Lenient())
			}

			times, err := bench(gameboy.NewGameBoy(rom, opts...), frames)
			report(cmd.OutOrStdout(), times)
			if err != nil {
				return err
			}

			if plotOut != "" {
				if err := plotFrameTimes(times, plotOut); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Written to %s\n", plotOut)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 600, "Number of frames to run")
	cmd.Flags().StringVar(&plotOut, "plot", "", "Plot the frame times to this file (.png, .svg, .pdf)")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "Skip undefined opcodes instead of stopping")

	return cmd
}

// bench runs up to n frames and returns the time each one took. It
// stops early if the CPU stops on an error.
func bench(gb *gameboy.GameBoy, n int) ([]time.Duration, error) {
	times := make([]time.Duration, 0, n)
	for i := 0; i < n; i++ {
		start := time.Now()
		if err := gb.Frame(); err != nil {
			return times, err
		}
		times = append(times, time.Since(start))
	}
	return times, nil
}

func report(w io.Writer, times []time.Duration) {
	if len(times) == 0 {
		fmt.Fprintln(w, "No frames completed")
		return
	}

	var total, worst time.Duration
	for _, t := range times {
		total += t
		if t > worst {
			worst = t
		}
	}
	avg := total / time.Duration(len(times))

	fmt.Fprintf(w, "Frames:     %d\n", len(times))
	fmt.Fprintf(w, "Total:      %s\n", total.Round(time.Millisecond))
	fmt.Fprintf(w, "Average:    %s\n", avg.Round(time.Microsecond))
	fmt.Fprintf(w, "Worst:      %s\n", worst.Round(time.Microsecond))
	fmt.Fprintf(w, "FPS:        %.1f\n", float64(len(times))/total.Seconds())
	fmt.Fprintf(w, "Speed:      %.1fx\n", float64(len(times))/total.Seconds()/gameboy.FrameRate)
}

// plotFrameTimes draws the frame times, in milliseconds, as a line.
func plotFrameTimes(times []time.Duration, path string) error {
	p := plot.New()
	p.Title.Text = "Frame time"
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "ms"

	points := make(plotter.XYs, len(times))
	for i, t := range times {
		points[i].X = float64(i)
		points[i].Y = float64(t.Microseconds()) / 1000
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
