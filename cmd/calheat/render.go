package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/janekbaraniewski/calheat"
	"github.com/janekbaraniewski/calheat/internal/config"
	"github.com/janekbaraniewski/calheat/internal/series"
	"github.com/janekbaraniewski/calheat/render"
	"github.com/janekbaraniewski/calheat/render/term"
)

type renderFlags struct {
	input  string
	sqlite string
	query  string
	out    string
	title  string

	scale    string
	cellSize int
	flip     bool

	colorbar      bool
	dateLabels    bool
	weekdayLabels bool
	monthLabels   bool
	yearLabels    bool
}

func (f *renderFlags) register(cmd *cobra.Command, cfg config.RenderConfig) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "CSV file with date,value rows")
	cmd.Flags().StringVar(&f.sqlite, "sqlite", "", "SQLite database to query instead of a CSV file")
	cmd.Flags().StringVar(&f.query, "query", "", "SQL returning date and value columns (with --sqlite)")

	cmd.Flags().StringVar(&f.scale, "scale", cfg.ColorScale, "color scale name")
	cmd.Flags().IntVar(&f.cellSize, "cell-size", cfg.CellSize, "cell side length in points")
	cmd.Flags().BoolVar(&f.flip, "flip", cfg.Flip, "weeks run horizontally")

	cmd.Flags().BoolVar(&f.colorbar, "colorbar", cfg.Colorbar, "attach a color scale legend")
	cmd.Flags().BoolVar(&f.dateLabels, "date-labels", cfg.DateLabels, "write day numbers into cells")
	cmd.Flags().BoolVar(&f.weekdayLabels, "weekday-labels", cfg.WeekdayLabels, "label the weekday axis")
	cmd.Flags().BoolVar(&f.monthLabels, "month-labels", cfg.MonthLabels, "label months along the weeks axis")
	cmd.Flags().BoolVar(&f.yearLabels, "year-labels", cfg.YearLabels, "annotate years outside the plot")
}

func (f *renderFlags) options() render.Options {
	return render.Options{
		ColorScale:    f.scale,
		Colorbar:      f.colorbar,
		DateLabels:    f.dateLabels,
		WeekdayLabels: f.weekdayLabels,
		MonthLabels:   f.monthLabels,
		YearLabels:    f.yearLabels,
		CellSize:      vg.Length(f.cellSize),
		Title:         f.title,
	}
}

func (f *renderFlags) load() ([]series.Point, error) {
	switch {
	case f.input != "" && f.sqlite != "":
		return nil, fmt.Errorf("--input and --sqlite are mutually exclusive")
	case f.input != "":
		return series.ReadCSV(f.input)
	case f.sqlite != "":
		if f.query == "" {
			return nil, fmt.Errorf("--sqlite requires --query")
		}
		return series.ReadSQLite(f.sqlite, f.query)
	default:
		return nil, fmt.Errorf("one of --input or --sqlite is required")
	}
}

func (f *renderFlags) buildGrid() (*calheat.Grid, []time.Time, error) {
	points, err := f.load()
	if err != nil {
		return nil, nil, err
	}
	dates, values := series.Split(points)
	g, err := calheat.BuildNumericGrid(dates, values, f.flip)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("loaded %d points across %d ISO weeks", len(points), len(g.Weeks()))
	return g, dates, nil
}

func newRenderCommand(cfg config.Config) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a heatmap image (png or svg) from a daily series.",
		RunE: func(_ *cobra.Command, _ []string) error {
			g, dates, err := f.buildGrid()
			if err != nil {
				return err
			}
			opts := f.options()
			p, err := render.Heatmap(g, dates, opts, nil)
			if err != nil {
				return err
			}
			if err := render.Save(p, g, opts, f.out); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", f.out)
			return nil
		},
	}
	f.register(cmd, cfg.Render)
	cmd.Flags().StringVarP(&f.out, "out", "o", "heatmap.png", "output file (.png or .svg)")
	cmd.Flags().StringVar(&f.title, "title", "", "plot title")
	return cmd
}

func newShowCommand(cfg config.Config) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render a heatmap straight into the terminal.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, dates, err := f.buildGrid()
			if err != nil {
				return err
			}
			out, err := term.Render(g, dates, term.Options{
				ColorScale:    f.scale,
				DateLabels:    f.dateLabels,
				WeekdayLabels: f.weekdayLabels,
				MonthLabels:   f.monthLabels,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	f.register(cmd, cfg.Render)
	return cmd
}
