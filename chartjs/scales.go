package chartjs

import "github.com/angas/chartjs-go/maybe"

// CartesianScales configures the x and y axes of bar, line, scatter and
// bubble charts.
type CartesianScales struct {
	XAxes []CartesianAxis
	YAxes []CartesianAxis
}

func (s CartesianScales) EncodeFields(e *ObjectEncoder) {
	seq(e, "xAxes", s.XAxes)
	seq(e, "yAxes", s.YAxes)
}

// AddXAxis appends an axis and returns it for further configuration.
func (s *CartesianScales) AddXAxis(a CartesianAxis) *CartesianAxis {
	s.XAxes = append(s.XAxes, a)
	return &s.XAxes[len(s.XAxes)-1]
}

func (s *CartesianScales) AddYAxis(a CartesianAxis) *CartesianAxis {
	s.YAxes = append(s.YAxes, a)
	return &s.YAxes[len(s.YAxes)-1]
}

type CartesianAxis struct {
	Type     ScaleType
	ID       string
	Display  maybe.Maybe[bool]
	Position Position
	Offset   maybe.Maybe[bool]
	Stacked  maybe.Maybe[bool]
	// BarPercentage and CategoryPercentage are read from the category axis
	// of a bar chart.
	BarPercentage      maybe.Maybe[float64]
	CategoryPercentage maybe.Maybe[float64]
	GridLines          GridLines
	ScaleLabel         ScaleLabel
	Ticks              Ticks
	Time               TimeOptions
}

func (a CartesianAxis) EncodeFields(e *ObjectEncoder) {
	e.Value("type", a.Type)
	e.Value("id", a.ID)
	opt(e, "display", a.Display)
	e.Value("position", a.Position)
	opt(e, "offset", a.Offset)
	opt(e, "stacked", a.Stacked)
	opt(e, "barPercentage", a.BarPercentage)
	opt(e, "categoryPercentage", a.CategoryPercentage)
	e.Object("gridLines", a.GridLines)
	e.Object("scaleLabel", a.ScaleLabel)
	e.Object("ticks", a.Ticks)
	e.Object("time", a.Time)
}

type GridLines struct {
	Display          maybe.Maybe[bool]
	Circular         maybe.Maybe[bool]
	Color            Attr[Color]
	BorderDash       []float64
	BorderDashOffset maybe.Maybe[float64]
	LineWidth        Attr[float64]
	DrawBorder       maybe.Maybe[bool]
	DrawOnChartArea  maybe.Maybe[bool]
	DrawTicks        maybe.Maybe[bool]
	TickMarkLength   maybe.Maybe[float64]
	ZeroLineWidth    maybe.Maybe[float64]
	ZeroLineColor    Color
	OffsetGridLines  maybe.Maybe[bool]
}

func (g GridLines) EncodeFields(e *ObjectEncoder) {
	opt(e, "display", g.Display)
	opt(e, "circular", g.Circular)
	each(e, "color", g.Color)
	seq(e, "borderDash", g.BorderDash)
	opt(e, "borderDashOffset", g.BorderDashOffset)
	each(e, "lineWidth", g.LineWidth)
	opt(e, "drawBorder", g.DrawBorder)
	opt(e, "drawOnChartArea", g.DrawOnChartArea)
	opt(e, "drawTicks", g.DrawTicks)
	opt(e, "tickMarkLength", g.TickMarkLength)
	opt(e, "zeroLineWidth", g.ZeroLineWidth)
	e.Value("zeroLineColor", g.ZeroLineColor)
	opt(e, "offsetGridLines", g.OffsetGridLines)
}

type ScaleLabel struct {
	Font
	Display     maybe.Maybe[bool]
	LabelString string
	LineHeight  maybe.Maybe[float64]
	Padding     Padding
}

func (s ScaleLabel) EncodeFields(e *ObjectEncoder) {
	opt(e, "display", s.Display)
	e.Value("labelString", s.LabelString)
	opt(e, "lineHeight", s.LineHeight)
	s.Font.encode(e, "")
	e.Object("padding", s.Padding)
}

// Ticks covers both linear and radial tick options. The backdrop fields only
// apply to the radial scale.
type Ticks struct {
	Font
	Display           maybe.Maybe[bool]
	BeginAtZero       maybe.Maybe[bool]
	Min               maybe.Maybe[float64]
	Max               maybe.Maybe[float64]
	SuggestedMin      maybe.Maybe[float64]
	SuggestedMax      maybe.Maybe[float64]
	StepSize          maybe.Maybe[float64]
	MaxTicksLimit     maybe.Maybe[int]
	Precision         maybe.Maybe[int]
	Reverse           maybe.Maybe[bool]
	AutoSkip          maybe.Maybe[bool]
	AutoSkipPadding   maybe.Maybe[float64]
	LabelOffset       maybe.Maybe[float64]
	MaxRotation       maybe.Maybe[float64]
	MinRotation       maybe.Maybe[float64]
	Mirror            maybe.Maybe[bool]
	Padding           maybe.Maybe[float64]
	BackdropColor     Color
	BackdropPaddingX  maybe.Maybe[float64]
	BackdropPaddingY  maybe.Maybe[float64]
	ShowLabelBackdrop maybe.Maybe[bool]
}

func (t Ticks) EncodeFields(e *ObjectEncoder) {
	opt(e, "display", t.Display)
	t.Font.encode(e, "")
	opt(e, "beginAtZero", t.BeginAtZero)
	opt(e, "min", t.Min)
	opt(e, "max", t.Max)
	opt(e, "suggestedMin", t.SuggestedMin)
	opt(e, "suggestedMax", t.SuggestedMax)
	opt(e, "stepSize", t.StepSize)
	opt(e, "maxTicksLimit", t.MaxTicksLimit)
	opt(e, "precision", t.Precision)
	opt(e, "reverse", t.Reverse)
	opt(e, "autoSkip", t.AutoSkip)
	opt(e, "autoSkipPadding", t.AutoSkipPadding)
	opt(e, "labelOffset", t.LabelOffset)
	opt(e, "maxRotation", t.MaxRotation)
	opt(e, "minRotation", t.MinRotation)
	opt(e, "mirror", t.Mirror)
	opt(e, "padding", t.Padding)
	e.Value("backdropColor", t.BackdropColor)
	opt(e, "backdropPaddingX", t.BackdropPaddingX)
	opt(e, "backdropPaddingY", t.BackdropPaddingY)
	opt(e, "showLabelBackdrop", t.ShowLabelBackdrop)
}

// TimeOptions is read when the axis type is ScaleTime.
type TimeOptions struct {
	Unit          TimeUnit
	MinUnit       TimeUnit
	StepSize      maybe.Maybe[float64]
	Round         TimeUnit
	TooltipFormat string
	Parser        string
	IsoWeekday    maybe.Maybe[bool]
	// DisplayFormats maps a TimeUnit literal to a moment.js format.
	DisplayFormats map[string]string
}

func (t TimeOptions) EncodeFields(e *ObjectEncoder) {
	e.Value("unit", t.Unit)
	e.Value("minUnit", t.MinUnit)
	opt(e, "stepSize", t.StepSize)
	e.Value("round", t.Round)
	e.Value("tooltipFormat", t.TooltipFormat)
	e.Value("parser", t.Parser)
	opt(e, "isoWeekday", t.IsoWeekday)
	e.Value("displayFormats", t.DisplayFormats)
}

// RadialScale is the single scale of radar and polar area charts.
type RadialScale struct {
	Type        ScaleType
	Display     maybe.Maybe[bool]
	AngleLines  AngleLines
	GridLines   GridLines
	PointLabels PointLabels
	Ticks       Ticks
}

func (r RadialScale) EncodeFields(e *ObjectEncoder) {
	e.Value("type", r.Type)
	opt(e, "display", r.Display)
	e.Object("angleLines", r.AngleLines)
	e.Object("gridLines", r.GridLines)
	e.Object("pointLabels", r.PointLabels)
	e.Object("ticks", r.Ticks)
}

type AngleLines struct {
	Display          maybe.Maybe[bool]
	Color            Color
	LineWidth        maybe.Maybe[float64]
	BorderDash       []float64
	BorderDashOffset maybe.Maybe[float64]
}

func (a AngleLines) EncodeFields(e *ObjectEncoder) {
	opt(e, "display", a.Display)
	e.Value("color", a.Color)
	opt(e, "lineWidth", a.LineWidth)
	seq(e, "borderDash", a.BorderDash)
	opt(e, "borderDashOffset", a.BorderDashOffset)
}

type PointLabels struct {
	Font
	Display    maybe.Maybe[bool]
	LineHeight maybe.Maybe[float64]
}

func (p PointLabels) EncodeFields(e *ObjectEncoder) {
	opt(e, "display", p.Display)
	p.Font.encode(e, "")
	opt(e, "lineHeight", p.LineHeight)
}
