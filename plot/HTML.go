package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// HTML renders one line per series against timesteps as an interactive
// chart and writes the HTML page to w
func HTML(w io.Writer, title, xLabel, yLabel string, series ...Series) error {
	steps, err := validate(series)
	if err != nil {
		return fmt.Errorf("html: %w", err)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: xLabel,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yLabel,
		}),
	)

	x := make([]string, steps)
	for i := range x {
		x[i] = fmt.Sprintf("%d", i+1)
	}
	line.SetXAxis(x)

	for _, s := range series {
		items := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			items[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Label, items)
	}

	page := components.NewPage()
	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("html: could not render: %w", err)
	}
	return nil
}
