package chartjs

import "github.com/angas/chartjs-go/maybe"

// BarOptions serves both bar and horizontalBar charts.
type BarOptions struct {
	BaseOptions
	Scales CartesianScales
}

func (o BarOptions) EncodeFields(e *ObjectEncoder) {
	o.BaseOptions.encode(e)
	e.Object("scales", o.Scales)
}

type LineOptions struct {
	BaseOptions
	Scales    CartesianScales
	ShowLines maybe.Maybe[bool]
	SpanGaps  maybe.Maybe[bool]
}

func (o LineOptions) EncodeFields(e *ObjectEncoder) {
	o.BaseOptions.encode(e)
	e.Object("scales", o.Scales)
	opt(e, "showLines", o.ShowLines)
	opt(e, "spanGaps", o.SpanGaps)
}

type ScatterOptions struct {
	BaseOptions
	Scales    CartesianScales
	ShowLines maybe.Maybe[bool]
}

func (o ScatterOptions) EncodeFields(e *ObjectEncoder) {
	o.BaseOptions.encode(e)
	e.Object("scales", o.Scales)
	opt(e, "showLines", o.ShowLines)
}

type BubbleOptions struct {
	BaseOptions
	Scales CartesianScales
}

func (o BubbleOptions) EncodeFields(e *ObjectEncoder) {
	o.BaseOptions.encode(e)
	e.Object("scales", o.Scales)
}

type RadarOptions struct {
	BaseOptions
	Scale    RadialScale
	SpanGaps maybe.Maybe[bool]
}

func (o RadarOptions) EncodeFields(e *ObjectEncoder) {
	o.BaseOptions.encode(e)
	e.Object("scale", o.Scale)
	opt(e, "spanGaps", o.SpanGaps)
}

type PolarAreaOptions struct {
	BaseOptions
	Scale RadialScale
	// StartAngle is in radians.
	StartAngle maybe.Maybe[float64]
}

func (o PolarAreaOptions) EncodeFields(e *ObjectEncoder) {
	o.BaseOptions.encode(e)
	e.Object("scale", o.Scale)
	opt(e, "startAngle", o.StartAngle)
}

// PieOptions serves both pie and doughnut charts.
type PieOptions struct {
	BaseOptions
	CutoutPercentage maybe.Maybe[float64]
	// Rotation and Circumference are in radians.
	Rotation      maybe.Maybe[float64]
	Circumference maybe.Maybe[float64]
}

func (o PieOptions) EncodeFields(e *ObjectEncoder) {
	o.BaseOptions.encode(e)
	opt(e, "cutoutPercentage", o.CutoutPercentage)
	opt(e, "rotation", o.Rotation)
	opt(e, "circumference", o.Circumference)
}
