package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/dmfb-tools/reconfig-placement/pkg/multiobjective/framework"
)

// Series is a named group of points drawn with the same symbol.
type Series struct {
	Name   string
	Symbol string
	Points []framework.ObjectiveSpacePoint
}

// PlotResults renders a 2D scatter plot of the given series as HTML.
func PlotResults(w io.Writer, title, xName, yName string, series ...Series) error {
	total := 0
	for _, s := range series {
		for _, p := range s.Points {
			if len(p) != 2 {
				return fmt.Errorf("can only plot 2D points, series %q has a %dD point", s.Name, len(p))
			}
		}
		total += len(s.Points)
	}
	if total == 0 {
		return fmt.Errorf("nothing to plot for %s", title)
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: xName,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yName,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	for _, s := range series {
		symbol := s.Symbol
		if symbol == "" {
			symbol = "circle"
		}
		data := make([]opts.ScatterData, len(s.Points))
		for i, p := range s.Points {
			data[i] = opts.ScatterData{
				Value:      []float64{p[0], p[1]},
				Symbol:     symbol,
				SymbolSize: 10,
			}
		}
		scatter.AddSeries(s.Name, data)
	}
	scatter.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(false),
		}),
		charts.WithEmphasisOpts(opts.Emphasis{}),
	)

	return scatter.Render(w)
}
