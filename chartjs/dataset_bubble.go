package chartjs

// BubbleDataset holds {x,y,r} points. Its point styling lives on the
// dataset itself rather than under point* keys.
type BubbleDataset struct {
	DatasetBase
	SegmentStyle
	Data        []BubblePoint
	XAxisID     string
	YAxisID     string
	HitRadius   Attr[float64]
	HoverRadius Attr[float64]
	Radius      Attr[float64]
	Rotation    Attr[float64]
	PointStyle  Attr[PointStyle]
}

func NewBubbleDataset(label string, points ...BubblePoint) *BubbleDataset {
	return &BubbleDataset{
		DatasetBase: DatasetBase{Label: label},
		Data:        append([]BubblePoint(nil), points...),
	}
}

func (d *BubbleDataset) AddPoint(p BubblePoint) *BubbleDataset {
	d.Data = append(d.Data, p)
	return d
}

func (d *BubbleDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Data)
}

func (d *BubbleDataset) EncodeFields(e *ObjectEncoder) {
	if d == nil {
		return
	}
	seq(e, "data", d.Data)
	d.DatasetBase.encode(e)
	d.SegmentStyle.encode(e)
	e.Value("xAxisID", d.XAxisID)
	e.Value("yAxisID", d.YAxisID)
	each(e, "hitRadius", d.HitRadius)
	each(e, "hoverRadius", d.HoverRadius)
	each(e, "radius", d.Radius)
	each(e, "rotation", d.Rotation)
	each(e, "pointStyle", d.PointStyle)
}
