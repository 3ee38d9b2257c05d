// Package samples builds a small, drawable example chart for every chart
// family. They back the preview server's sample endpoint and chartgen.
package samples

import (
	"fmt"

	"github.com/angas/chartjs-go/chartjs"
	"github.com/angas/chartjs-go/maybe"
)

// Chart is what every chart family has in common once built.
type Chart interface {
	chartjs.Node
	Type() chartjs.ChartType
	IsDrawable() bool
	Diagnostics() []chartjs.Diagnostic
	JSON() (string, error)
}

type Options struct {
	// RandomColors draws every color at random instead of from a palette.
	RandomColors bool
}

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// Build returns the sample chart of type t.
func Build(t chartjs.ChartType, opts Options) (Chart, error) {
	switch t {
	case chartjs.TypeBar:
		return bar(chartjs.NewBarChart(), opts), nil
	case chartjs.TypeHorizontalBar:
		return bar(chartjs.NewHorizontalBarChart(), opts), nil
	case chartjs.TypeLine:
		return line(opts), nil
	case chartjs.TypeScatter:
		return scatter(opts), nil
	case chartjs.TypeRadar:
		return radar(opts), nil
	case chartjs.TypeBubble:
		return bubble(opts), nil
	case chartjs.TypePolarArea:
		return polarArea(opts), nil
	case chartjs.TypePie:
		return pie(chartjs.NewPieChart(), opts), nil
	case chartjs.TypeDoughnut:
		return pie(chartjs.NewDoughnutChart(), opts), nil
	}
	return nil, fmt.Errorf("%w: chart type %q", chartjs.ErrUnknownEnumValue, t)
}

func colors(n int, opts Options) []chartjs.Color {
	if !opts.RandomColors {
		return chartjs.Palette(n)
	}
	cs := make([]chartjs.Color, n)
	for i := range cs {
		cs[i] = chartjs.RandomColor()
	}
	return cs
}

func translucent(c chartjs.Color) chartjs.Color {
	t, err := c.WithAlpha(0.4)
	if err != nil {
		return c
	}
	return t
}

func title(text string) chartjs.Title {
	return chartjs.Title{Display: maybe.Some(true), Text: []string{text}}
}

func bar(chart *chartjs.BarChart, opts Options) *chartjs.BarChart {
	chart.Data.AddLabels(months...)
	cs := colors(2, opts)
	for i, ds := range []*chartjs.BarDataset{
		chartjs.NewBarDataset("2023", 12, 19, 3, 5, 2, 3),
		chartjs.NewBarDataset("2024", 7, 11, 5, 8, 3, 7),
	} {
		ds.BackgroundColor = chartjs.Uniform(translucent(cs[i]))
		ds.BorderColor = chartjs.Uniform(cs[i])
		ds.BorderWidth = chartjs.Uniform(1.0)
		chart.AddDataset(ds)
	}

	chart.Options.Title = title("Monthly sales")
	chart.Options.Legend.Position = chartjs.PositionBottom
	chart.Options.Scales.AddYAxis(chartjs.CartesianAxis{
		Ticks: chartjs.Ticks{BeginAtZero: maybe.Some(true)},
	})
	return chart
}

func line(opts Options) *chartjs.LineChart {
	chart := chartjs.NewLineChart()
	chart.Data.AddLabels(months...)
	cs := colors(2, opts)

	measured := chartjs.NewLineDataset("measured", 3.1, 4.4, 8.2).AddGap().AddData(16.9, 19.3)
	measured.BorderColor = cs[0]
	measured.Fill = chartjs.FillNone
	measured.PointStyle = chartjs.Uniform(chartjs.PointStyleRectRot)

	forecast := chartjs.NewLineDataset("forecast", 3, 5, 9, 13, 17, 20)
	forecast.BorderColor = cs[1]
	forecast.BackgroundColor = translucent(cs[1])
	forecast.Fill = chartjs.FillRelative(-1)
	forecast.BorderDash = []float64{5, 5}
	forecast.CubicInterpolationMode = chartjs.InterpolationMonotone

	chart.AddDataset(measured).AddDataset(forecast)
	chart.Options.Title = title("Temperature")
	chart.Options.SpanGaps = maybe.Some(false)
	chart.Options.Tooltips.Mode = chartjs.ModeIndex
	chart.Options.Tooltips.Intersect = maybe.Some(false)
	chart.Options.Scales.AddXAxis(chartjs.CartesianAxis{
		ScaleLabel: chartjs.ScaleLabel{Display: maybe.Some(true), LabelString: "Month"},
	})
	chart.Options.Scales.AddYAxis(chartjs.CartesianAxis{
		ScaleLabel: chartjs.ScaleLabel{Display: maybe.Some(true), LabelString: "°C"},
	})
	return chart
}

func scatter(opts Options) *chartjs.ScatterChart {
	chart := chartjs.NewScatterChart()
	ds := chartjs.NewScatterDataset("samples")
	for i := range 8 {
		x := float64(i)
		ds.AddPoint(x, chartjs.Fixed(x*x/4-x, 2))
	}
	c := colors(1, opts)[0]
	ds.BorderColor = c
	ds.BackgroundColor = translucent(c)
	ds.ShowLine = maybe.Some(false)

	chart.AddDataset(ds)
	chart.Options.Title = title("Scatter")
	chart.Options.Scales.AddXAxis(chartjs.CartesianAxis{
		Type:     chartjs.ScaleLinear,
		Position: chartjs.PositionBottom,
	})
	return chart
}

func radar(opts Options) *chartjs.RadarChart {
	chart := chartjs.NewRadarChart()
	chart.Data.AddLabels("Speed", "Range", "Comfort", "Price", "Safety")
	cs := colors(2, opts)
	for i, ds := range []*chartjs.RadarDataset{
		chartjs.NewRadarDataset("Model A", 4, 3, 5, 2, 4),
		chartjs.NewRadarDataset("Model B", 3, 5, 3, 4, 5),
	} {
		ds.BorderColor = cs[i]
		ds.BackgroundColor = translucent(cs[i])
		ds.PointBackgroundColor = chartjs.Uniform(cs[i])
		chart.AddDataset(ds)
	}

	chart.Options.Title = title("Comparison")
	chart.Options.Scale.Ticks = chartjs.Ticks{
		BeginAtZero:  maybe.Some(true),
		SuggestedMax: maybe.Some(5.0),
		StepSize:     maybe.Some(1.0),
	}
	return chart
}

func bubble(opts Options) *chartjs.BubbleChart {
	chart := chartjs.NewBubbleChart()
	ds := chartjs.NewBubbleDataset("bubbles")
	points := []chartjs.BubblePoint{{X: 20, Y: 30, R: 15}, {X: 40, Y: 10, R: 10}, {X: 25, Y: 22, R: 6}}
	cs := colors(len(points), opts)
	for i, p := range points {
		ds.AddPoint(p)
		ds.BackgroundColor.Append(translucent(cs[i]))
		ds.BorderColor.Append(cs[i])
		ds.HoverRadius.Append(float64(i + 2))
	}

	chart.AddDataset(ds)
	chart.Options.Title = title("Bubbles")
	return chart
}

func polarArea(opts Options) *chartjs.PolarAreaChart {
	chart := chartjs.NewPolarAreaChart()
	chart.Data.AddLabels("Red", "Green", "Yellow", "Grey", "Blue")
	ds := chartjs.NewPolarAreaDataset("votes", 11, 16, 7, 3, 14)
	ds.BackgroundColor = chartjs.PerPoint(colors(5, opts)...)
	ds.BorderAlign = chartjs.Uniform(chartjs.AlignInner)

	chart.AddDataset(ds)
	chart.Options.Title = title("Votes")
	chart.Options.Animation.AnimateRotate = maybe.Some(false)
	return chart
}

func pie(chart *chartjs.PieChart, opts Options) *chartjs.PieChart {
	chart.Data.AddLabels("Solar", "Wind", "Hydro")
	ds := chartjs.NewPieDataset("energy mix", 30, 45, 25)
	ds.BackgroundColor = chartjs.PerPoint(colors(3, opts)...)
	ds.BorderColor = chartjs.Uniform(chartjs.White)

	chart.AddDataset(ds)
	chart.Options.Title = title("Energy mix")
	if chart.Type() == chartjs.TypeDoughnut {
		chart.Options.CutoutPercentage = maybe.Some(50.0)
	}
	return chart
}
