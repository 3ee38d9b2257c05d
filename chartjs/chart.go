package chartjs

import "slices"

// Chart binds a Data container and an Options tree under a type that is fixed
// when the chart is created. It is the root of the emitted document:
//
//	{"type": "...", "data": {...}, "options": {...}}
//
// "data" is always present, "options" only when at least one option is set.
// A Chart is not safe for concurrent mutation; encoding distinct charts
// concurrently is fine.
type Chart[D Dataset, O Node] struct {
	kind    ChartType
	Data    *Data[D]
	Options O
}

type (
	BarChart       = Chart[*BarDataset, BarOptions]
	LineChart      = Chart[*LineDataset, LineOptions]
	ScatterChart   = Chart[*ScatterDataset, ScatterOptions]
	RadarChart     = Chart[*RadarDataset, RadarOptions]
	BubbleChart    = Chart[*BubbleDataset, BubbleOptions]
	PolarAreaChart = Chart[*PolarAreaDataset, PolarAreaOptions]
	PieChart       = Chart[*PieDataset, PieOptions]
)

func newChart[D Dataset, O Node](kind ChartType) *Chart[D, O] {
	return &Chart[D, O]{kind: kind, Data: &Data[D]{}}
}

func NewBarChart() *BarChart { return newChart[*BarDataset, BarOptions](TypeBar) }

func NewHorizontalBarChart() *BarChart {
	return newChart[*BarDataset, BarOptions](TypeHorizontalBar)
}

func NewLineChart() *LineChart { return newChart[*LineDataset, LineOptions](TypeLine) }

func NewScatterChart() *ScatterChart {
	return newChart[*ScatterDataset, ScatterOptions](TypeScatter)
}

func NewRadarChart() *RadarChart { return newChart[*RadarDataset, RadarOptions](TypeRadar) }

func NewBubbleChart() *BubbleChart { return newChart[*BubbleDataset, BubbleOptions](TypeBubble) }

func NewPolarAreaChart() *PolarAreaChart {
	return newChart[*PolarAreaDataset, PolarAreaOptions](TypePolarArea)
}

func NewPieChart() *PieChart { return newChart[*PieDataset, PieOptions](TypePie) }

func NewDoughnutChart() *PieChart { return newChart[*PieDataset, PieOptions](TypeDoughnut) }

func (c *Chart[D, O]) Type() ChartType {
	return c.kind
}

// AddDataset appends to the chart's Data container, creating it if needed.
func (c *Chart[D, O]) AddDataset(ds D) *Chart[D, O] {
	if c.Data == nil {
		c.Data = &Data[D]{}
	}
	c.Data.AddDataset(ds)
	return c
}

// IsDrawable reports whether the chart has a Data container with at least
// one dataset and every dataset has at least one data point. Styling is not
// looked at.
func (c *Chart[D, O]) IsDrawable() bool {
	if c.Data == nil || len(c.Data.Datasets) == 0 {
		return false
	}
	return !slices.ContainsFunc(c.Data.Datasets, func(ds D) bool {
		return ds.Len() == 0
	})
}

func (c *Chart[D, O]) EncodeFields(e *ObjectEncoder) {
	e.Value("type", c.kind)
	e.objectAlways("data", c.Data)
	e.Object("options", c.Options)
}

func (c *Chart[D, O]) MarshalJSON() ([]byte, error) {
	return Marshal(c)
}

// JSON returns the pretty printed document, ready to hand to the library's
// chart constructor.
func (c *Chart[D, O]) JSON() (string, error) {
	b, err := MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
