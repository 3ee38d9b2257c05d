package chartjs

import (
	"fmt"
	"strconv"
)

// Token is a style value from a closed set. Literal is what the charting
// library expects in the document, usually the string itself.
type Token interface {
	Literal() any
}

func parseToken[T ~string](kind, s string, all []T) (T, error) {
	for _, v := range all {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownEnumValue, kind, s)
}

type ChartType string

const (
	TypeBar           ChartType = "bar"
	TypeHorizontalBar ChartType = "horizontalBar"
	TypeLine          ChartType = "line"
	TypeScatter       ChartType = "scatter"
	TypeRadar         ChartType = "radar"
	TypeBubble        ChartType = "bubble"
	TypePolarArea     ChartType = "polarArea"
	TypePie           ChartType = "pie"
	TypeDoughnut      ChartType = "doughnut"
)

var ChartTypes = []ChartType{
	TypeBar, TypeHorizontalBar, TypeLine, TypeScatter, TypeRadar,
	TypeBubble, TypePolarArea, TypePie, TypeDoughnut,
}

func ParseChartType(s string) (ChartType, error) {
	return parseToken("chart type", s, ChartTypes)
}

func (t ChartType) Literal() any { return string(t) }

type PointStyle string

const (
	PointStyleCircle      PointStyle = "circle"
	PointStyleCross       PointStyle = "cross"
	PointStyleCrossRot    PointStyle = "crossRot"
	PointStyleDash        PointStyle = "dash"
	PointStyleLine        PointStyle = "line"
	PointStyleRect        PointStyle = "rect"
	PointStyleRectRounded PointStyle = "rectRounded"
	PointStyleRectRot     PointStyle = "rectRot"
	PointStyleStar        PointStyle = "star"
	PointStyleTriangle    PointStyle = "triangle"
)

var pointStyles = []PointStyle{
	PointStyleCircle, PointStyleCross, PointStyleCrossRot, PointStyleDash, PointStyleLine,
	PointStyleRect, PointStyleRectRounded, PointStyleRectRot, PointStyleStar, PointStyleTriangle,
}

func ParsePointStyle(s string) (PointStyle, error) {
	return parseToken("point style", s, pointStyles)
}

func (p PointStyle) Literal() any { return string(p) }

// BorderCapStyle is the canvas lineCap.
type BorderCapStyle string

const (
	CapButt   BorderCapStyle = "butt"
	CapRound  BorderCapStyle = "round"
	CapSquare BorderCapStyle = "square"
)

func ParseBorderCapStyle(s string) (BorderCapStyle, error) {
	return parseToken("border cap style", s, []BorderCapStyle{CapButt, CapRound, CapSquare})
}

func (c BorderCapStyle) Literal() any { return string(c) }

// BorderJoinStyle is the canvas lineJoin.
type BorderJoinStyle string

const (
	JoinBevel BorderJoinStyle = "bevel"
	JoinRound BorderJoinStyle = "round"
	JoinMiter BorderJoinStyle = "miter"
)

func ParseBorderJoinStyle(s string) (BorderJoinStyle, error) {
	return parseToken("border join style", s, []BorderJoinStyle{JoinBevel, JoinRound, JoinMiter})
}

func (j BorderJoinStyle) Literal() any { return string(j) }

type Easing string

const (
	EaseLinear       Easing = "linear"
	EaseInQuad       Easing = "easeInQuad"
	EaseOutQuad      Easing = "easeOutQuad"
	EaseInOutQuad    Easing = "easeInOutQuad"
	EaseInCubic      Easing = "easeInCubic"
	EaseOutCubic     Easing = "easeOutCubic"
	EaseInOutCubic   Easing = "easeInOutCubic"
	EaseInQuart      Easing = "easeInQuart"
	EaseOutQuart     Easing = "easeOutQuart"
	EaseInOutQuart   Easing = "easeInOutQuart"
	EaseInQuint      Easing = "easeInQuint"
	EaseOutQuint     Easing = "easeOutQuint"
	EaseInOutQuint   Easing = "easeInOutQuint"
	EaseInSine       Easing = "easeInSine"
	EaseOutSine      Easing = "easeOutSine"
	EaseInOutSine    Easing = "easeInOutSine"
	EaseInExpo       Easing = "easeInExpo"
	EaseOutExpo      Easing = "easeOutExpo"
	EaseInOutExpo    Easing = "easeInOutExpo"
	EaseInCirc       Easing = "easeInCirc"
	EaseOutCirc      Easing = "easeOutCirc"
	EaseInOutCirc    Easing = "easeInOutCirc"
	EaseInElastic    Easing = "easeInElastic"
	EaseOutElastic   Easing = "easeOutElastic"
	EaseInOutElastic Easing = "easeInOutElastic"
	EaseInBack       Easing = "easeInBack"
	EaseOutBack      Easing = "easeOutBack"
	EaseInOutBack    Easing = "easeInOutBack"
	EaseInBounce     Easing = "easeInBounce"
	EaseOutBounce    Easing = "easeOutBounce"
	EaseInOutBounce  Easing = "easeInOutBounce"
)

var easings = []Easing{
	EaseLinear,
	EaseInQuad, EaseOutQuad, EaseInOutQuad,
	EaseInCubic, EaseOutCubic, EaseInOutCubic,
	EaseInQuart, EaseOutQuart, EaseInOutQuart,
	EaseInQuint, EaseOutQuint, EaseInOutQuint,
	EaseInSine, EaseOutSine, EaseInOutSine,
	EaseInExpo, EaseOutExpo, EaseInOutExpo,
	EaseInCirc, EaseOutCirc, EaseInOutCirc,
	EaseInElastic, EaseOutElastic, EaseInOutElastic,
	EaseInBack, EaseOutBack, EaseInOutBack,
	EaseInBounce, EaseOutBounce, EaseInOutBounce,
}

func ParseEasing(s string) (Easing, error) {
	return parseToken("easing", s, easings)
}

func (e Easing) Literal() any { return string(e) }

// SteppedLine is emitted as a JSON boolean for "false"/"true".
type SteppedLine string

const (
	SteppedNone   SteppedLine = "false"
	SteppedStart  SteppedLine = "true"
	SteppedBefore SteppedLine = "before"
	SteppedAfter  SteppedLine = "after"
)

func ParseSteppedLine(s string) (SteppedLine, error) {
	return parseToken("stepped line", s, []SteppedLine{SteppedNone, SteppedStart, SteppedBefore, SteppedAfter})
}

func (s SteppedLine) Literal() any {
	switch s {
	case SteppedNone:
		return false
	case SteppedStart:
		return true
	}
	return string(s)
}

// Fill is one of the named fill modes or a dataset index, absolute ("2") or
// relative ("-1", "+1").
type Fill string

const (
	FillNone   Fill = "false"
	FillOrigin Fill = "origin"
	FillStart  Fill = "start"
	FillEnd    Fill = "end"
	// FillTrue is the library's alias for FillOrigin.
	FillTrue Fill = "true"
)

// FillDataset fills towards the dataset at the given absolute index.
func FillDataset(index int) Fill {
	return Fill(strconv.Itoa(index))
}

// FillRelative fills towards a dataset relative to this one, e.g. -1 for the previous.
func FillRelative(offset int) Fill {
	if offset >= 0 {
		return Fill("+" + strconv.Itoa(offset))
	}
	return Fill(strconv.Itoa(offset))
}

func ParseFill(s string) (Fill, error) {
	if f, err := parseToken("fill", s, []Fill{FillNone, FillOrigin, FillStart, FillEnd, FillTrue}); err == nil {
		return f, nil
	}
	if _, err := strconv.Atoi(s); err == nil && s != "" {
		return Fill(s), nil
	}
	return "", fmt.Errorf("%w: fill %q", ErrUnknownEnumValue, s)
}

func (f Fill) Literal() any {
	switch f {
	case FillNone:
		return false
	case FillTrue:
		return true
	}
	if len(f) > 0 && f[0] != '+' && f[0] != '-' {
		if n, err := strconv.Atoi(string(f)); err == nil {
			return n
		}
	}
	return string(f)
}

// BorderSkipped is the bar edge drawn without a border.
type BorderSkipped string

const (
	SkipBottom BorderSkipped = "bottom"
	SkipLeft   BorderSkipped = "left"
	SkipTop    BorderSkipped = "top"
	SkipRight  BorderSkipped = "right"
)

func ParseBorderSkipped(s string) (BorderSkipped, error) {
	return parseToken("border skipped", s, []BorderSkipped{SkipBottom, SkipLeft, SkipTop, SkipRight})
}

func (b BorderSkipped) Literal() any { return string(b) }

// BorderAlign positions arc borders of pie and polar area segments.
type BorderAlign string

const (
	AlignCenter BorderAlign = "center"
	AlignInner  BorderAlign = "inner"
)

func ParseBorderAlign(s string) (BorderAlign, error) {
	return parseToken("border align", s, []BorderAlign{AlignCenter, AlignInner})
}

func (b BorderAlign) Literal() any { return string(b) }

type CubicInterpolationMode string

const (
	InterpolationDefault  CubicInterpolationMode = "default"
	InterpolationMonotone CubicInterpolationMode = "monotone"
)

func ParseCubicInterpolationMode(s string) (CubicInterpolationMode, error) {
	return parseToken("cubic interpolation mode", s, []CubicInterpolationMode{InterpolationDefault, InterpolationMonotone})
}

func (c CubicInterpolationMode) Literal() any { return string(c) }

type Position string

const (
	PositionTop       Position = "top"
	PositionLeft      Position = "left"
	PositionBottom    Position = "bottom"
	PositionRight     Position = "right"
	PositionChartArea Position = "chartArea"
)

func ParsePosition(s string) (Position, error) {
	return parseToken("position", s, []Position{PositionTop, PositionLeft, PositionBottom, PositionRight, PositionChartArea})
}

func (p Position) Literal() any { return string(p) }

// InteractionMode selects the elements hover and tooltips act on.
type InteractionMode string

const (
	ModePoint   InteractionMode = "point"
	ModeNearest InteractionMode = "nearest"
	ModeIndex   InteractionMode = "index"
	ModeDataset InteractionMode = "dataset"
	ModeX       InteractionMode = "x"
	ModeY       InteractionMode = "y"
)

func ParseInteractionMode(s string) (InteractionMode, error) {
	return parseToken("interaction mode", s, []InteractionMode{ModePoint, ModeNearest, ModeIndex, ModeDataset, ModeX, ModeY})
}

func (m InteractionMode) Literal() any { return string(m) }

type TooltipPosition string

const (
	TooltipAverage TooltipPosition = "average"
	TooltipNearest TooltipPosition = "nearest"
)

func ParseTooltipPosition(s string) (TooltipPosition, error) {
	return parseToken("tooltip position", s, []TooltipPosition{TooltipAverage, TooltipNearest})
}

func (t TooltipPosition) Literal() any { return string(t) }

type ScaleType string

const (
	ScaleCategory     ScaleType = "category"
	ScaleLinear       ScaleType = "linear"
	ScaleLogarithmic  ScaleType = "logarithmic"
	ScaleTime         ScaleType = "time"
	ScaleRadialLinear ScaleType = "radialLinear"
)

func ParseScaleType(s string) (ScaleType, error) {
	return parseToken("scale type", s, []ScaleType{ScaleCategory, ScaleLinear, ScaleLogarithmic, ScaleTime, ScaleRadialLinear})
}

func (s ScaleType) Literal() any { return string(s) }

type TimeUnit string

const (
	UnitMillisecond TimeUnit = "millisecond"
	UnitSecond      TimeUnit = "second"
	UnitMinute      TimeUnit = "minute"
	UnitHour        TimeUnit = "hour"
	UnitDay         TimeUnit = "day"
	UnitWeek        TimeUnit = "week"
	UnitMonth       TimeUnit = "month"
	UnitQuarter     TimeUnit = "quarter"
	UnitYear        TimeUnit = "year"
)

var timeUnits = []TimeUnit{
	UnitMillisecond, UnitSecond, UnitMinute, UnitHour, UnitDay,
	UnitWeek, UnitMonth, UnitQuarter, UnitYear,
}

func ParseTimeUnit(s string) (TimeUnit, error) {
	return parseToken("time unit", s, timeUnits)
}

func (u TimeUnit) Literal() any { return string(u) }

type FontStyle string

const (
	FontNormal  FontStyle = "normal"
	FontBold    FontStyle = "bold"
	FontItalic  FontStyle = "italic"
	FontOblique FontStyle = "oblique"
)

func ParseFontStyle(s string) (FontStyle, error) {
	return parseToken("font style", s, []FontStyle{FontNormal, FontBold, FontItalic, FontOblique})
}

func (f FontStyle) Literal() any { return string(f) }
