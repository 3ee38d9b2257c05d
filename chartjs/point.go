package chartjs

import "github.com/angas/chartjs-go/maybe"

// XYPoint is a point on cartesian axes, used by scatter datasets.
type XYPoint struct {
	X float64
	Y float64
}

func (p XYPoint) EncodeFields(e *ObjectEncoder) {
	e.Value("x", p.X)
	e.Value("y", p.Y)
}

// BubblePoint is a point whose radius R is given in pixels, not scaled.
type BubblePoint struct {
	X float64
	Y float64
	R float64
}

func (p BubblePoint) EncodeFields(e *ObjectEncoder) {
	e.Value("x", p.X)
	e.Value("y", p.Y)
	e.Value("r", p.R)
}

// Number is a plain numeric data entry. None marks a gap, emitted as null so
// the entries stay aligned with the labels.
type Number = maybe.Maybe[float64]

// Numbers wraps plain numbers as data entries.
func Numbers(nums ...float64) []Number {
	vs := make([]Number, len(nums))
	for i, n := range nums {
		vs[i] = maybe.Some(n)
	}
	return vs
}

// Gap is a missing data entry.
func Gap() Number {
	return maybe.None[float64]()
}

func encodeNumbers(e *ObjectEncoder, key string, data []Number) {
	if len(data) == 0 {
		return
	}
	raw := make([]any, len(data))
	for i, v := range data {
		if n, ok := v.Get(); ok {
			raw[i] = n
		}
	}
	e.Value(key, raw)
}
