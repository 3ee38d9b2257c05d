package chartjs

import "github.com/angas/chartjs-go/maybe"

// Elements sets chart wide defaults for the drawn elements; dataset fields
// override them.
type Elements struct {
	Point     PointElement
	Line      LineElement
	Rectangle RectangleElement
	Arc       ArcElement
}

func (el Elements) EncodeFields(e *ObjectEncoder) {
	e.Object("point", el.Point)
	e.Object("line", el.Line)
	e.Object("rectangle", el.Rectangle)
	e.Object("arc", el.Arc)
}

type PointElement struct {
	Radius           maybe.Maybe[float64]
	PointStyle       PointStyle
	Rotation         maybe.Maybe[float64]
	BackgroundColor  Color
	BorderWidth      maybe.Maybe[float64]
	BorderColor      Color
	HitRadius        maybe.Maybe[float64]
	HoverRadius      maybe.Maybe[float64]
	HoverBorderWidth maybe.Maybe[float64]
}

func (p PointElement) EncodeFields(e *ObjectEncoder) {
	opt(e, "radius", p.Radius)
	e.Value("pointStyle", p.PointStyle)
	opt(e, "rotation", p.Rotation)
	e.Value("backgroundColor", p.BackgroundColor)
	opt(e, "borderWidth", p.BorderWidth)
	e.Value("borderColor", p.BorderColor)
	opt(e, "hitRadius", p.HitRadius)
	opt(e, "hoverRadius", p.HoverRadius)
	opt(e, "hoverBorderWidth", p.HoverBorderWidth)
}

type LineElement struct {
	LineStyle
	CapBezierPoints maybe.Maybe[bool]
	Stepped         maybe.Maybe[bool]
}

func (l LineElement) EncodeFields(e *ObjectEncoder) {
	// the element calls lineTension "tension"
	s := l.LineStyle
	tension := s.LineTension
	s.LineTension = maybe.None[float64]()
	opt(e, "tension", tension)
	s.encode(e)
	opt(e, "capBezierPoints", l.CapBezierPoints)
	opt(e, "stepped", l.Stepped)
}

type RectangleElement struct {
	BackgroundColor Color
	BorderWidth     maybe.Maybe[float64]
	BorderColor     Color
	BorderSkipped   BorderSkipped
}

func (r RectangleElement) EncodeFields(e *ObjectEncoder) {
	e.Value("backgroundColor", r.BackgroundColor)
	opt(e, "borderWidth", r.BorderWidth)
	e.Value("borderColor", r.BorderColor)
	e.Value("borderSkipped", r.BorderSkipped)
}

type ArcElement struct {
	BackgroundColor Color
	BorderAlign     BorderAlign
	BorderColor     Color
	BorderWidth     maybe.Maybe[float64]
}

func (a ArcElement) EncodeFields(e *ObjectEncoder) {
	e.Value("backgroundColor", a.BackgroundColor)
	e.Value("borderAlign", a.BorderAlign)
	e.Value("borderColor", a.BorderColor)
	opt(e, "borderWidth", a.BorderWidth)
}
