package chartjs

import "github.com/angas/chartjs-go/maybe"

// BaseOptions is shared by every family's options. All fields are optional;
// unset fields are left to the library's defaults.
type BaseOptions struct {
	Responsive                  maybe.Maybe[bool]
	ResponsiveAnimationDuration maybe.Maybe[float64]
	MaintainAspectRatio         maybe.Maybe[bool]
	AspectRatio                 maybe.Maybe[float64]
	DevicePixelRatio            maybe.Maybe[float64]
	Events                      []string
	Title                       Title
	Legend                      Legend
	Tooltips                    Tooltips
	Hover                       Hover
	Animation                   Animation
	Layout                      Layout
	Elements                    Elements
	// Plugins maps a plugin id to its options: a Node, a map or a literal.
	Plugins map[string]any
}

// SetPlugin sets the options of one plugin, e.g. SetPlugin("datalabels", false).
func (o *BaseOptions) SetPlugin(id string, options any) {
	if o.Plugins == nil {
		o.Plugins = make(map[string]any)
	}
	o.Plugins[id] = options
}

func (o BaseOptions) encode(e *ObjectEncoder) {
	opt(e, "responsive", o.Responsive)
	opt(e, "responsiveAnimationDuration", o.ResponsiveAnimationDuration)
	opt(e, "maintainAspectRatio", o.MaintainAspectRatio)
	opt(e, "aspectRatio", o.AspectRatio)
	opt(e, "devicePixelRatio", o.DevicePixelRatio)
	seq(e, "events", o.Events)
	e.Object("title", o.Title)
	e.Object("legend", o.Legend)
	e.Object("tooltips", o.Tooltips)
	e.Object("hover", o.Hover)
	e.Object("animation", o.Animation)
	e.Object("layout", o.Layout)
	e.Object("elements", o.Elements)
	e.Value("plugins", o.Plugins)
}

// Font is embedded wherever the library takes fontSize, fontFamily,
// fontColor and fontStyle keys.
type Font struct {
	FontSize   maybe.Maybe[float64]
	FontFamily string
	FontColor  Color
	FontStyle  FontStyle
}

// encode writes the font keys, prefixed as in tooltips' titleFontSize when
// prefix is not empty.
func (f Font) encode(e *ObjectEncoder, prefix string) {
	key := func(name string) string {
		if prefix == "" {
			return "font" + name
		}
		return prefix + "Font" + name
	}
	opt(e, key("Size"), f.FontSize)
	e.Value(key("Family"), f.FontFamily)
	e.Value(key("Color"), f.FontColor)
	e.Value(key("Style"), f.FontStyle)
}

type Title struct {
	Font
	Display    maybe.Maybe[bool]
	Position   Position
	FullWidth  maybe.Maybe[bool]
	Padding    maybe.Maybe[float64]
	LineHeight maybe.Maybe[float64]
	// Text holds one entry per line.
	Text []string
}

func (t Title) EncodeFields(e *ObjectEncoder) {
	opt(e, "display", t.Display)
	e.Value("position", t.Position)
	opt(e, "fullWidth", t.FullWidth)
	t.Font.encode(e, "")
	opt(e, "padding", t.Padding)
	opt(e, "lineHeight", t.LineHeight)
	switch len(t.Text) {
	case 0:
	case 1:
		e.Value("text", t.Text[0])
	default:
		seq(e, "text", t.Text)
	}
}

type Legend struct {
	Display   maybe.Maybe[bool]
	Position  Position
	FullWidth maybe.Maybe[bool]
	Reverse   maybe.Maybe[bool]
	Labels    LegendLabels
}

func (l Legend) EncodeFields(e *ObjectEncoder) {
	opt(e, "display", l.Display)
	e.Value("position", l.Position)
	opt(e, "fullWidth", l.FullWidth)
	opt(e, "reverse", l.Reverse)
	e.Object("labels", l.Labels)
}

type LegendLabels struct {
	Font
	BoxWidth      maybe.Maybe[float64]
	Padding       maybe.Maybe[float64]
	UsePointStyle maybe.Maybe[bool]
}

func (l LegendLabels) EncodeFields(e *ObjectEncoder) {
	opt(e, "boxWidth", l.BoxWidth)
	l.Font.encode(e, "")
	opt(e, "padding", l.Padding)
	opt(e, "usePointStyle", l.UsePointStyle)
}

type Tooltips struct {
	Enabled            maybe.Maybe[bool]
	Mode               InteractionMode
	Intersect          maybe.Maybe[bool]
	Position           TooltipPosition
	BackgroundColor    Color
	TitleFont          Font
	TitleSpacing       maybe.Maybe[float64]
	TitleMarginBottom  maybe.Maybe[float64]
	BodyFont           Font
	BodySpacing        maybe.Maybe[float64]
	FooterFont         Font
	FooterSpacing      maybe.Maybe[float64]
	FooterMarginTop    maybe.Maybe[float64]
	XPadding           maybe.Maybe[float64]
	YPadding           maybe.Maybe[float64]
	CaretPadding       maybe.Maybe[float64]
	CaretSize          maybe.Maybe[float64]
	CornerRadius       maybe.Maybe[float64]
	MultiKeyBackground Color
	DisplayColors      maybe.Maybe[bool]
	BorderColor        Color
	BorderWidth        maybe.Maybe[float64]
}

func (t Tooltips) EncodeFields(e *ObjectEncoder) {
	opt(e, "enabled", t.Enabled)
	e.Value("mode", t.Mode)
	opt(e, "intersect", t.Intersect)
	e.Value("position", t.Position)
	e.Value("backgroundColor", t.BackgroundColor)
	t.TitleFont.encode(e, "title")
	opt(e, "titleSpacing", t.TitleSpacing)
	opt(e, "titleMarginBottom", t.TitleMarginBottom)
	t.BodyFont.encode(e, "body")
	opt(e, "bodySpacing", t.BodySpacing)
	t.FooterFont.encode(e, "footer")
	opt(e, "footerSpacing", t.FooterSpacing)
	opt(e, "footerMarginTop", t.FooterMarginTop)
	opt(e, "xPadding", t.XPadding)
	opt(e, "yPadding", t.YPadding)
	opt(e, "caretPadding", t.CaretPadding)
	opt(e, "caretSize", t.CaretSize)
	opt(e, "cornerRadius", t.CornerRadius)
	e.Value("multiKeyBackground", t.MultiKeyBackground)
	opt(e, "displayColors", t.DisplayColors)
	e.Value("borderColor", t.BorderColor)
	opt(e, "borderWidth", t.BorderWidth)
}

type Hover struct {
	Mode              InteractionMode
	Intersect         maybe.Maybe[bool]
	Axis              string // "x", "y" or "xy"
	AnimationDuration maybe.Maybe[float64]
}

func (h Hover) EncodeFields(e *ObjectEncoder) {
	e.Value("mode", h.Mode)
	opt(e, "intersect", h.Intersect)
	e.Value("axis", h.Axis)
	opt(e, "animationDuration", h.AnimationDuration)
}

// Animation applies to every family; AnimateRotate and AnimateScale are only
// read by pie, doughnut and polar area charts.
type Animation struct {
	Duration      maybe.Maybe[float64]
	Easing        Easing
	AnimateRotate maybe.Maybe[bool]
	AnimateScale  maybe.Maybe[bool]
}

func (a Animation) EncodeFields(e *ObjectEncoder) {
	opt(e, "duration", a.Duration)
	e.Value("easing", a.Easing)
	opt(e, "animateRotate", a.AnimateRotate)
	opt(e, "animateScale", a.AnimateScale)
}

type Layout struct {
	Padding Padding
}

func (l Layout) EncodeFields(e *ObjectEncoder) {
	e.Object("padding", l.Padding)
}

type Padding struct {
	Left   maybe.Maybe[float64]
	Right  maybe.Maybe[float64]
	Top    maybe.Maybe[float64]
	Bottom maybe.Maybe[float64]
}

// PaddingAll sets the same padding on every side.
func PaddingAll(px float64) Padding {
	p := maybe.Some(px)
	return Padding{Left: p, Right: p, Top: p, Bottom: p}
}

func (p Padding) EncodeFields(e *ObjectEncoder) {
	opt(e, "left", p.Left)
	opt(e, "right", p.Right)
	opt(e, "top", p.Top)
	opt(e, "bottom", p.Bottom)
}
