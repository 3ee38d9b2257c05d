package chartjs

import "github.com/angas/chartjs-go/maybe"

// PolarAreaDataset holds one value per label, drawn as equal-angle segments.
type PolarAreaDataset struct {
	DatasetBase
	SegmentStyle
	Data        []Number
	BorderAlign Attr[BorderAlign]
}

func NewPolarAreaDataset(label string, data ...float64) *PolarAreaDataset {
	return &PolarAreaDataset{
		DatasetBase: DatasetBase{Label: label},
		Data:        Numbers(data...),
	}
}

func (d *PolarAreaDataset) AddData(values ...float64) *PolarAreaDataset {
	d.Data = append(d.Data, Numbers(values...)...)
	return d
}

func (d *PolarAreaDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Data)
}

func (d *PolarAreaDataset) EncodeFields(e *ObjectEncoder) {
	if d == nil {
		return
	}
	encodeNumbers(e, "data", d.Data)
	d.DatasetBase.encode(e)
	d.SegmentStyle.encode(e)
	each(e, "borderAlign", d.BorderAlign)
}

// PieDataset is used by pie and doughnut charts.
type PieDataset struct {
	DatasetBase
	SegmentStyle
	Data        []Number
	BorderAlign Attr[BorderAlign]
	// Weight is the relative thickness of this ring among several datasets.
	Weight maybe.Maybe[float64]
}

func NewPieDataset(label string, data ...float64) *PieDataset {
	return &PieDataset{
		DatasetBase: DatasetBase{Label: label},
		Data:        Numbers(data...),
	}
}

func (d *PieDataset) AddData(values ...float64) *PieDataset {
	d.Data = append(d.Data, Numbers(values...)...)
	return d
}

func (d *PieDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Data)
}

func (d *PieDataset) EncodeFields(e *ObjectEncoder) {
	if d == nil {
		return
	}
	encodeNumbers(e, "data", d.Data)
	d.DatasetBase.encode(e)
	d.SegmentStyle.encode(e)
	each(e, "borderAlign", d.BorderAlign)
	opt(e, "weight", d.Weight)
}
