package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/janekbaraniewski/calheat"
	"github.com/janekbaraniewski/calheat/internal/config"
	"github.com/janekbaraniewski/calheat/render"
	"github.com/janekbaraniewski/calheat/render/term"
)

func newDemoCommand(cfg config.Config) *cobra.Command {
	var (
		out  string
		days int
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a synthetic year of data to a file and the terminal.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rng := rand.New(rand.NewSource(seed))
			dates, values := demoSeries(time.Now(), days, rng)

			g, err := calheat.BuildNumericGrid(dates, values, cfg.Render.Flip)
			if err != nil {
				return err
			}

			opts := render.Options{
				ColorScale:    cfg.Render.ColorScale,
				Colorbar:      true,
				WeekdayLabels: true,
				MonthLabels:   true,
				YearLabels:    true,
				CellSize:      vg.Length(cfg.Render.CellSize),
				Title:         "calheat demo",
			}
			p, err := render.Heatmap(g, dates, opts, nil)
			if err != nil {
				return err
			}
			if err := render.Save(p, g, opts, out); err != nil {
				return err
			}

			txt, err := term.Render(g, dates, term.Options{
				ColorScale:    cfg.Render.ColorScale,
				WeekdayLabels: true,
				MonthLabels:   true,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), txt)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "calheat-demo.png", "output file (.png or .svg)")
	cmd.Flags().IntVar(&days, "days", 365, "number of days to generate")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

// demoSeries fakes a daily activity count: a monthly swell, quieter
// weekends, and noise, with occasional gaps left missing.
func demoSeries(end time.Time, days int, rng *rand.Rand) ([]time.Time, []float64) {
	var dates []time.Time
	var values []float64
	start := end.AddDate(0, 0, -days+1)
	for i := 0; i < days; i++ {
		if rng.Float64() < 0.08 {
			continue
		}
		d := start.AddDate(0, 0, i)
		v := 5 + 4*math.Sin(2*math.Pi*float64(i)/30)
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			v *= 0.4
		}
		v += rng.Float64() * 3
		if v < 0 {
			v = 0
		}
		dates = append(dates, d)
		values = append(values, math.Round(v))
	}
	return dates, values
}
