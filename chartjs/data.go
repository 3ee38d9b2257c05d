package chartjs

// Data is the ordered set of datasets of one chart plus the shared category
// labels. Order is draw and legend order; duplicates are kept as they are.
type Data[D Dataset] struct {
	Labels   []string
	Datasets []D
}

func NewData[D Dataset](labels ...string) *Data[D] {
	return &Data[D]{Labels: append([]string(nil), labels...)}
}

func (d *Data[D]) AddLabels(labels ...string) *Data[D] {
	d.Labels = append(d.Labels, labels...)
	return d
}

func (d *Data[D]) AddDataset(ds D) *Data[D] {
	d.Datasets = append(d.Datasets, ds)
	return d
}

func (d *Data[D]) EncodeFields(e *ObjectEncoder) {
	if d == nil {
		return
	}
	seq(e, "labels", d.Labels)
	seq(e, "datasets", d.Datasets)
}
