package chartjs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostics(t *testing.T) {
	t.Run("clean chart", func(t *testing.T) {
		ds := NewBarDataset("a", 1, 2)
		ds.BackgroundColor = PerPoint(Red, Blue)
		c := NewBarChart().AddDataset(ds)
		c.Data.AddLabels("x", "y")
		assert.Empty(t, c.Diagnostics())
	})

	t.Run("length mismatch", func(t *testing.T) {
		ds := NewBarDataset("a", 1, 2, 3)
		ds.BackgroundColor = PerPoint(Red, Blue)
		ds.BorderWidth = Uniform(1.0)
		c := NewBarChart().AddDataset(ds)
		c.Data.AddLabels("x", "y")

		diags := c.Diagnostics()
		if assert.Len(t, diags, 2) {
			assert.Equal(t, "data.datasets[0].data", diags[0].Path)
			assert.Equal(t, "data.datasets[0].backgroundColor", diags[1].Path)
			assert.Equal(t, "2 values for 3 data points", diags[1].Message)
		}

		// still encodes
		_, err := Marshal(c)
		assert.NoError(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		c := NewLineChart()
		assert.Equal(t, []Diagnostic{{Path: "data.datasets", Message: "no datasets"}}, c.Diagnostics())

		c.AddDataset(NewLineDataset("none"))
		assert.Equal(t, "data.datasets[0]: dataset has no data points", c.Diagnostics()[0].String())

		c.Data = nil
		assert.Equal(t, "data", c.Diagnostics()[0].Path)
	})

	t.Run("scatter ignores labels", func(t *testing.T) {
		c := NewScatterChart().AddDataset(NewScatterDataset("s", XYPoint{1, 2}))
		c.Data.AddLabels("a", "b", "c")
		assert.Empty(t, c.Diagnostics())
	})
}

func TestAttr(t *testing.T) {
	a := Uniform(3.0)
	if v, ok := a.At(5); !ok || v != 3 {
		t.Errorf("At(5) on uniform expected (3, true), got (%v, %t)", v, ok)
	}

	a.Append(1, 2)
	if !a.IsPerPoint() {
		t.Fatalf("Append expected to switch to per point")
	}
	assert.Equal(t, []float64{1, 2}, a.Values(), "uniform value expected to be dropped")
	if _, ok := a.At(2); ok {
		t.Errorf("At(2) expected out of range")
	}

	src := []float64{4, 5}
	p := PerPoint(src...)
	src[0] = 9
	if v, _ := p.At(0); v != 4 {
		t.Errorf("PerPoint expected to copy its input, got %v", v)
	}

	p.Unset()
	if p.IsSet() {
		t.Errorf("Unset expected unset attribute")
	}
}
