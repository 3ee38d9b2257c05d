package chartjs

type attrKind uint8

const (
	attrUnset attrKind = iota
	attrUniform
	attrPerPoint
)

// Attr is a styling attribute that is either one value applied to every
// point or a sequence aligned index for index with the dataset's data. The
// zero value is unset and is left out of the document.
type Attr[T any] struct {
	kind     attrKind
	uniform  T
	perPoint []T
}

// Uniform applies v to every point.
func Uniform[T any](v T) Attr[T] {
	return Attr[T]{kind: attrUniform, uniform: v}
}

// PerPoint assigns values[i] to point i. The slice is copied.
func PerPoint[T any](values ...T) Attr[T] {
	return Attr[T]{kind: attrPerPoint, perPoint: append([]T(nil), values...)}
}

// Append adds values to the per-point sequence, typically together with the
// data point they belong to. Alignment with the data is not checked here; see
// Chart.Diagnostics. Appending to a uniform attribute starts a new sequence;
// the uniform value is dropped.
func (a *Attr[T]) Append(values ...T) {
	if a.kind != attrPerPoint {
		a.kind = attrPerPoint
		a.perPoint = nil
	}
	a.perPoint = append(a.perPoint, values...)
}

func (a *Attr[T]) Unset() {
	*a = Attr[T]{}
}

func (a Attr[T]) IsSet() bool {
	return a.kind != attrUnset
}

func (a Attr[T]) IsPerPoint() bool {
	return a.kind == attrPerPoint
}

func (a Attr[T]) UniformValue() (T, bool) {
	return a.uniform, a.kind == attrUniform
}

// Values returns the per-point sequence, nil unless IsPerPoint.
func (a Attr[T]) Values() []T {
	if a.kind != attrPerPoint {
		return nil
	}
	return a.perPoint
}

// At resolves the value for point i: the uniform value, or the i-th element
// of the sequence when there is one.
func (a Attr[T]) At(i int) (T, bool) {
	switch a.kind {
	case attrUniform:
		return a.uniform, true
	case attrPerPoint:
		if i >= 0 && i < len(a.perPoint) {
			return a.perPoint[i], true
		}
	}
	var zero T
	return zero, false
}
