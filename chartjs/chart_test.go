package chartjs

import (
	"encoding/json"
	"testing"

	"github.com/angas/chartjs-go/maybe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarChartJSON(t *testing.T) {
	ds := NewBarDataset("A", 1, 2, 3)
	ds.BorderWidth = Uniform(2.0)

	chart := NewBarChart().AddDataset(ds)

	b, err := Marshal(chart)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "bar",
		"data": {"datasets": [{"data": [1, 2, 3], "label": "A", "borderWidth": 2}]}
	}`, string(b))
	assert.NotContains(t, string(b), "options")
}

func TestEmptyChartJSON(t *testing.T) {
	b, err := Marshal(NewBarChart())
	require.NoError(t, err)
	assert.Equal(t, `{"type":"bar","data":{}}`, string(b))

	var nilData BarChart
	nilData.kind = TypeLine
	b, err = Marshal(&nilData)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"line","data":{}}`, string(b))
}

func TestBubbleChartPerPointColors(t *testing.T) {
	ds := NewBubbleDataset("bubbles")
	colors := []Color{Red, Green, Blue}
	for i, c := range colors {
		ds.AddPoint(BubblePoint{X: float64(i), Y: float64(i * 2), R: 5})
		ds.BackgroundColor.Append(c)
		ds.BorderWidth.Append(float64(i + 1))
	}

	chart := NewBubbleChart().AddDataset(ds)
	require.True(t, chart.IsDrawable())

	b, err := Marshal(chart)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "bubble",
		"data": {"datasets": [{
			"data": [{"x": 0, "y": 0, "r": 5}, {"x": 1, "y": 2, "r": 5}, {"x": 2, "y": 4, "r": 5}],
			"label": "bubbles",
			"backgroundColor": ["#f44336", "#4caf50", "#2196f3"],
			"borderWidth": [1, 2, 3]
		}]}
	}`, string(b))
	assert.Empty(t, chart.Diagnostics())
}

func TestLineChartWithOptions(t *testing.T) {
	ds := NewLineDataset("temp", 20.5, 21)
	ds.AddGap()
	ds.Fill = FillNone
	ds.SteppedLine = SteppedBefore
	ds.Hidden = maybe.Some(false)
	ds.Order = maybe.Some(0)
	ds.PointStyle = Uniform(PointStyleTriangle)

	chart := NewLineChart().AddDataset(ds)
	chart.Data.AddLabels("mon", "tue", "wed")
	chart.Options.Title = Title{Display: maybe.Some(true), Text: []string{"Weekly"}}
	chart.Options.Tooltips.TitleFont.FontSize = maybe.Some(14.0)
	chart.Options.Scales.AddYAxis(CartesianAxis{Ticks: Ticks{BeginAtZero: maybe.Some(true)}})
	chart.Options.SpanGaps = maybe.Some(true)

	b, err := Marshal(chart)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "line",
		"data": {
			"labels": ["mon", "tue", "wed"],
			"datasets": [{
				"data": [20.5, 21, null],
				"label": "temp",
				"hidden": false,
				"order": 0,
				"fill": false,
				"pointStyle": "triangle",
				"steppedLine": "before"
			}]
		},
		"options": {
			"title": {"display": true, "text": "Weekly"},
			"tooltips": {"titleFontSize": 14},
			"scales": {"yAxes": [{"ticks": {"beginAtZero": true}}]},
			"spanGaps": true
		}
	}`, string(b))
}

func TestPieChartPlugins(t *testing.T) {
	ds := NewPieDataset("share", 30, 70)
	ds.BackgroundColor = PerPoint(Palette(2)...)

	chart := NewDoughnutChart().AddDataset(ds)
	chart.Options.CutoutPercentage = maybe.Some(60.0)
	chart.Options.SetPlugin("labels", map[string]any{"render": "percentage", "precision": 1})
	chart.Options.SetPlugin("datalabels", false)

	b, err := Marshal(chart)
	require.NoError(t, err)

	var doc struct {
		Type    string `json:"type"`
		Options struct {
			CutoutPercentage float64        `json:"cutoutPercentage"`
			Plugins          map[string]any `json:"plugins"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "doughnut", doc.Type)
	assert.Equal(t, 60.0, doc.Options.CutoutPercentage)
	assert.Equal(t, false, doc.Options.Plugins["datalabels"])
	assert.Equal(t, map[string]any{"render": "percentage", "precision": 1.0}, doc.Options.Plugins["labels"])
}

func TestChartTypeIsFixed(t *testing.T) {
	tests := []struct {
		name string
		typ  ChartType
	}{
		{"bar", NewBarChart().Type()},
		{"horizontalBar", NewHorizontalBarChart().Type()},
		{"line", NewLineChart().Type()},
		{"scatter", NewScatterChart().Type()},
		{"radar", NewRadarChart().Type()},
		{"bubble", NewBubbleChart().Type()},
		{"polarArea", NewPolarAreaChart().Type()},
		{"pie", NewPieChart().Type()},
		{"doughnut", NewDoughnutChart().Type()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.typ) != tt.name {
				t.Errorf("Type() expected %q, got %q", tt.name, tt.typ)
			}
		})
	}
}

func TestIsDrawable(t *testing.T) {
	chart := NewLineChart()
	assert.False(t, chart.IsDrawable(), "no datasets")

	chart.AddDataset(NewLineDataset("a", 1))
	assert.True(t, chart.IsDrawable())

	chart.AddDataset(NewLineDataset("empty"))
	assert.False(t, chart.IsDrawable(), "one dataset without points")

	chart.Data = nil
	assert.False(t, chart.IsDrawable(), "no data container")

	var nilDataset *LineDataset
	chart.AddDataset(nilDataset)
	assert.False(t, chart.IsDrawable(), "nil dataset")
}

func TestChartJSONIsIndented(t *testing.T) {
	chart := NewRadarChart().AddDataset(NewRadarDataset("r", 1, 2, 3))
	chart.Options.Scale.Ticks.SuggestedMax = maybe.Some(5.0)

	s, err := chart.JSON()
	require.NoError(t, err)
	assert.Contains(t, s, "\n  \"data\": {")
	assert.Contains(t, s, `"suggestedMax": 5`)

	var viaStdlib map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &viaStdlib))

	b, err := json.Marshal(chart)
	require.NoError(t, err)
	assert.JSONEq(t, s, string(b))
}
