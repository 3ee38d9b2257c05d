package chartjs

import "github.com/angas/chartjs-go/maybe"

// BarDataset is used by bar and horizontalBar charts.
type BarDataset struct {
	DatasetBase
	SegmentStyle
	Data               []Number
	XAxisID            string
	YAxisID            string
	Stack              string
	BorderSkipped      Attr[BorderSkipped]
	BarPercentage      maybe.Maybe[float64]
	CategoryPercentage maybe.Maybe[float64]
	BarThickness       maybe.Maybe[float64]
	MaxBarThickness    maybe.Maybe[float64]
	MinBarLength       maybe.Maybe[float64]
}

func NewBarDataset(label string, data ...float64) *BarDataset {
	return &BarDataset{
		DatasetBase: DatasetBase{Label: label},
		Data:        Numbers(data...),
	}
}

// AddData appends values; pair it with Append on per-point attributes.
func (d *BarDataset) AddData(values ...float64) *BarDataset {
	d.Data = append(d.Data, Numbers(values...)...)
	return d
}

func (d *BarDataset) AddGap() *BarDataset {
	d.Data = append(d.Data, Gap())
	return d
}

func (d *BarDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Data)
}

func (d *BarDataset) EncodeFields(e *ObjectEncoder) {
	if d == nil {
		return
	}
	encodeNumbers(e, "data", d.Data)
	d.DatasetBase.encode(e)
	d.SegmentStyle.encode(e)
	e.Value("xAxisID", d.XAxisID)
	e.Value("yAxisID", d.YAxisID)
	e.Value("stack", d.Stack)
	each(e, "borderSkipped", d.BorderSkipped)
	opt(e, "barPercentage", d.BarPercentage)
	opt(e, "categoryPercentage", d.CategoryPercentage)
	opt(e, "barThickness", d.BarThickness)
	opt(e, "maxBarThickness", d.MaxBarThickness)
	opt(e, "minBarLength", d.MinBarLength)
}
