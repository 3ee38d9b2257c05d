package chartjs

import (
	"fmt"
	"strconv"
)

// Diagnostic is a non-fatal finding about a chart that still encodes fine
// but is likely to render differently than intended.
type Diagnostic struct {
	Path    string
	Message string
}

func (d Diagnostic) String() string {
	return d.Path + ": " + d.Message
}

// Diagnostics looks for per-point attributes whose length differs from the
// dataset's point count, for datasets without points and for label counts
// that do not match. The library would clamp or fall back to defaults in
// those cases, so they are reported instead of rejected.
func (c *Chart[D, O]) Diagnostics() []Diagnostic {
	if c.Data == nil {
		return []Diagnostic{{Path: "data", Message: "no data container"}}
	}

	var diags []Diagnostic
	if len(c.Data.Datasets) == 0 {
		diags = append(diags, Diagnostic{Path: "data.datasets", Message: "no datasets"})
	}

	for i, ds := range c.Data.Datasets {
		path := "data.datasets[" + strconv.Itoa(i) + "]"
		n := ds.Len()
		if n == 0 {
			diags = append(diags, Diagnostic{Path: path, Message: "dataset has no data points"})
			continue
		}

		if len(c.Data.Labels) > 0 && len(c.Data.Labels) != n && c.kind.usesLabels() {
			diags = append(diags, Diagnostic{
				Path:    path + ".data",
				Message: fmt.Sprintf("%d data points but %d labels", n, len(c.Data.Labels)),
			})
		}

		st := &encodeState{onPerPoint: func(key string, l int) {
			if l != n {
				diags = append(diags, Diagnostic{
					Path:    path + "." + key,
					Message: fmt.Sprintf("%d values for %d data points", l, n),
				})
			}
		}}
		_, _ = marshal(ds, st) // encoding errors surface from Marshal, not here
	}

	return diags
}

// usesLabels is false for families whose points carry their own x value.
func (t ChartType) usesLabels() bool {
	return t != TypeScatter && t != TypeBubble
}
