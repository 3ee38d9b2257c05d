package chartjs

// RadarDataset is drawn on a radial scale, one value per label.
type RadarDataset struct {
	DatasetBase
	LineStyle
	PointAttrs
	Data []Number
}

func NewRadarDataset(label string, data ...float64) *RadarDataset {
	return &RadarDataset{
		DatasetBase: DatasetBase{Label: label},
		Data:        Numbers(data...),
	}
}

func (d *RadarDataset) AddData(values ...float64) *RadarDataset {
	d.Data = append(d.Data, Numbers(values...)...)
	return d
}

func (d *RadarDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Data)
}

func (d *RadarDataset) EncodeFields(e *ObjectEncoder) {
	if d == nil {
		return
	}
	encodeNumbers(e, "data", d.Data)
	d.DatasetBase.encode(e)
	d.LineStyle.encode(e)
	d.PointAttrs.encode(e)
}
