package chartjs

// LineDataset is a series of numbers drawn against category labels.
type LineDataset struct {
	DatasetBase
	LineStyle
	PointAttrs
	CartesianLine
	Data []Number
}

func NewLineDataset(label string, data ...float64) *LineDataset {
	return &LineDataset{
		DatasetBase: DatasetBase{Label: label},
		Data:        Numbers(data...),
	}
}

func (d *LineDataset) AddData(values ...float64) *LineDataset {
	d.Data = append(d.Data, Numbers(values...)...)
	return d
}

func (d *LineDataset) AddGap() *LineDataset {
	d.Data = append(d.Data, Gap())
	return d
}

func (d *LineDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Data)
}

func (d *LineDataset) EncodeFields(e *ObjectEncoder) {
	if d == nil {
		return
	}
	encodeNumbers(e, "data", d.Data)
	d.DatasetBase.encode(e)
	d.LineStyle.encode(e)
	d.PointAttrs.encode(e)
	d.CartesianLine.encode(e)
}

// ScatterDataset is a line dataset whose data are {x,y} points.
type ScatterDataset struct {
	DatasetBase
	LineStyle
	PointAttrs
	CartesianLine
	Data []XYPoint
}

func NewScatterDataset(label string, points ...XYPoint) *ScatterDataset {
	return &ScatterDataset{
		DatasetBase: DatasetBase{Label: label},
		Data:        append([]XYPoint(nil), points...),
	}
}

func (d *ScatterDataset) AddPoint(x, y float64) *ScatterDataset {
	d.Data = append(d.Data, XYPoint{X: x, Y: y})
	return d
}

func (d *ScatterDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Data)
}

func (d *ScatterDataset) EncodeFields(e *ObjectEncoder) {
	if d == nil {
		return
	}
	seq(e, "data", d.Data)
	d.DatasetBase.encode(e)
	d.LineStyle.encode(e)
	d.PointAttrs.encode(e)
	d.CartesianLine.encode(e)
}
