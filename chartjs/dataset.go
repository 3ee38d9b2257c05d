package chartjs

import "github.com/angas/chartjs-go/maybe"

// Dataset is one chart family's series. Len must be safe on a nil receiver.
type Dataset interface {
	Node
	Len() int
}

// DatasetBase holds the fields every family shares.
type DatasetBase struct {
	Label  string
	Hidden maybe.Maybe[bool]
	Order  maybe.Maybe[int]
}

func (b DatasetBase) encode(e *ObjectEncoder) {
	e.Value("label", b.Label)
	opt(e, "hidden", b.Hidden)
	opt(e, "order", b.Order)
}

// SegmentStyle styles the filled shapes of bar, bubble, pie and polar area
// datasets. Each attribute may be uniform or per point.
type SegmentStyle struct {
	BackgroundColor      Attr[Color]
	BorderColor          Attr[Color]
	BorderWidth          Attr[float64]
	HoverBackgroundColor Attr[Color]
	HoverBorderColor     Attr[Color]
	HoverBorderWidth     Attr[float64]
}

func (s SegmentStyle) encode(e *ObjectEncoder) {
	each(e, "backgroundColor", s.BackgroundColor)
	each(e, "borderColor", s.BorderColor)
	each(e, "borderWidth", s.BorderWidth)
	each(e, "hoverBackgroundColor", s.HoverBackgroundColor)
	each(e, "hoverBorderColor", s.HoverBorderColor)
	each(e, "hoverBorderWidth", s.HoverBorderWidth)
}

// LineStyle styles the line of line, scatter and radar datasets and the area
// under it.
type LineStyle struct {
	Fill             Fill
	LineTension      maybe.Maybe[float64]
	BackgroundColor  Color
	BorderColor      Color
	BorderWidth      maybe.Maybe[float64]
	BorderCapStyle   BorderCapStyle
	BorderDash       []float64
	BorderDashOffset maybe.Maybe[float64]
	BorderJoinStyle  BorderJoinStyle
}

func (s LineStyle) encode(e *ObjectEncoder) {
	e.Value("fill", s.Fill)
	opt(e, "lineTension", s.LineTension)
	e.Value("backgroundColor", s.BackgroundColor)
	e.Value("borderColor", s.BorderColor)
	opt(e, "borderWidth", s.BorderWidth)
	e.Value("borderCapStyle", s.BorderCapStyle)
	seq(e, "borderDash", s.BorderDash)
	opt(e, "borderDashOffset", s.BorderDashOffset)
	e.Value("borderJoinStyle", s.BorderJoinStyle)
}

// PointAttrs styles the points drawn on a line or radar dataset.
type PointAttrs struct {
	PointBackgroundColor      Attr[Color]
	PointBorderColor          Attr[Color]
	PointBorderWidth          Attr[float64]
	PointRadius               Attr[float64]
	PointRotation             Attr[float64]
	PointHitRadius            Attr[float64]
	PointHoverBackgroundColor Attr[Color]
	PointHoverBorderColor     Attr[Color]
	PointHoverBorderWidth     Attr[float64]
	PointHoverRadius          Attr[float64]
	PointStyle                Attr[PointStyle]
}

func (p PointAttrs) encode(e *ObjectEncoder) {
	each(e, "pointBackgroundColor", p.PointBackgroundColor)
	each(e, "pointBorderColor", p.PointBorderColor)
	each(e, "pointBorderWidth", p.PointBorderWidth)
	each(e, "pointRadius", p.PointRadius)
	each(e, "pointRotation", p.PointRotation)
	each(e, "pointHitRadius", p.PointHitRadius)
	each(e, "pointHoverBackgroundColor", p.PointHoverBackgroundColor)
	each(e, "pointHoverBorderColor", p.PointHoverBorderColor)
	each(e, "pointHoverBorderWidth", p.PointHoverBorderWidth)
	each(e, "pointHoverRadius", p.PointHoverRadius)
	each(e, "pointStyle", p.PointStyle)
}

// CartesianLine holds what line and scatter datasets add on top of LineStyle.
type CartesianLine struct {
	XAxisID                string
	YAxisID                string
	CubicInterpolationMode CubicInterpolationMode
	SteppedLine            SteppedLine
	ShowLine               maybe.Maybe[bool]
	SpanGaps               maybe.Maybe[bool]
}

func (c CartesianLine) encode(e *ObjectEncoder) {
	e.Value("xAxisID", c.XAxisID)
	e.Value("yAxisID", c.YAxisID)
	e.Value("cubicInterpolationMode", c.CubicInterpolationMode)
	e.Value("steppedLine", c.SteppedLine)
	opt(e, "showLine", c.ShowLine)
	opt(e, "spanGaps", c.SpanGaps)
}
