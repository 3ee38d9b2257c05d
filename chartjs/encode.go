package chartjs

import (
	"bytes"
	"encoding/json"
	"errors"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/angas/chartjs-go/maybe"
)

// Node is an entity that declares its own fields to the encoder. There is no
// struct tag or reflection involved: whatever EncodeFields hands over is
// considered, in that order, under exactly that key.
//
// A field is left out when it is unset or empty: "", an empty sequence, an empty
// mapping or a nested Node without fields. 0 and false are values and are
// written.
type Node interface {
	EncodeFields(e *ObjectEncoder)
}

type encodeState struct {
	err error
	// called for every per-point attribute, used by diagnostics
	onPerPoint func(path string, n int)
}

func (st *encodeState) fail(path string, v any, err error) {
	if st.err == nil {
		st.err = &UnsupportedValueError{Path: path, Value: v, Err: err}
	}
}

// ObjectEncoder collects the fields of one JSON object.
type ObjectEncoder struct {
	st   *encodeState
	path string
	buf  bytes.Buffer
	n    int
}

func newObjectEncoder(st *encodeState, path string) *ObjectEncoder {
	return &ObjectEncoder{st: st, path: path}
}

// Value adds key unless v is unset or empty. v may be a bool, any integer or
// float, string, Color, Token, Node, or any slice or string keyed map whose
// elements are one of those, nested to any depth. Anything else aborts the
// encoding with ErrUnsupportedValueType.
func (e *ObjectEncoder) Value(key string, v any) {
	if e.st.err != nil {
		return
	}
	var vb bytes.Buffer
	if e.st.writeValue(&vb, e.childPath(key), v, true) {
		e.field(key, vb.Bytes())
	}
}

// Object adds a nested Node, left out when it declares no fields.
func (e *ObjectEncoder) Object(key string, n Node) {
	e.Value(key, n)
}

func (e *ObjectEncoder) field(key string, raw []byte) {
	if e.n > 0 {
		e.buf.WriteByte(',')
	}
	writeString(&e.buf, key)
	e.buf.WriteByte(':')
	e.buf.Write(raw)
	e.n++
}

func (e *ObjectEncoder) childPath(key string) string {
	if e.path == "" {
		return key
	}
	return e.path + "." + key
}

// objectAlways adds a nested Node even when it has no fields; a nil Node
// becomes {}.
func (e *ObjectEncoder) objectAlways(key string, n Node) {
	if e.st.err != nil {
		return
	}
	sub := newObjectEncoder(e.st, e.childPath(key))
	if n != nil {
		n.EncodeFields(sub)
	}
	e.field(key, sub.bytes())
}

func (e *ObjectEncoder) bytes() []byte {
	var out bytes.Buffer
	out.WriteByte('{')
	out.Write(e.buf.Bytes())
	out.WriteByte('}')
	return out.Bytes()
}

// opt adds an optional scalar; None is left out, Some(0) is not.
func opt[T any](e *ObjectEncoder, key string, v maybe.Maybe[T]) {
	if val, ok := v.Get(); ok {
		e.Value(key, val)
	}
}

// seq adds a sequence, left out when empty. Element order is kept.
func seq[T any](e *ObjectEncoder, key string, items []T) {
	if e.st.err != nil || len(items) == 0 {
		return
	}
	var vb bytes.Buffer
	writeSeq(e.st, &vb, e.childPath(key), items)
	if e.st.err == nil {
		e.field(key, vb.Bytes())
	}
}

// each adds a per-point attribute as a scalar or as an array.
func each[T any](e *ObjectEncoder, key string, a Attr[T]) {
	switch a.kind {
	case attrUniform:
		e.Value(key, a.uniform)
	case attrPerPoint:
		if e.st.onPerPoint != nil {
			e.st.onPerPoint(e.childPath(key), len(a.perPoint))
		}
		seq(e, key, a.perPoint)
	}
}

func writeSeq[T any](st *encodeState, buf *bytes.Buffer, path string, items []T) {
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		st.writeValue(buf, path+"["+strconv.Itoa(i)+"]", item, false)
		if st.err != nil {
			return
		}
	}
	buf.WriteByte(']')
}

func writeMap[V any](st *encodeState, buf *bytes.Buffer, path string, m map[string]V, omitEmpty bool) bool {
	sub := newObjectEncoder(st, path)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		sub.Value(k, m[k])
	}
	if st.err != nil || (sub.n == 0 && omitEmpty) {
		return false
	}
	buf.Write(sub.bytes())
	return true
}

// writeValue reports whether anything was written. Inside sequences
// omitEmpty is false so that positions stay aligned.
func (st *encodeState) writeValue(buf *bytes.Buffer, path string, v any, omitEmpty bool) bool {
	if st.err != nil {
		return false
	}

	switch v := v.(type) {
	case nil:
		if omitEmpty {
			return false
		}
		buf.WriteString("null")
	case string:
		if v == "" && omitEmpty {
			return false
		}
		writeString(buf, v)
	case bool:
		buf.WriteString(strconv.FormatBool(v))
	case int:
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	case int8:
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	case int16:
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	case int32:
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	case int64:
		buf.WriteString(strconv.FormatInt(v, 10))
	case uint:
		buf.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint8:
		buf.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint16:
		buf.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint32:
		buf.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint64:
		buf.WriteString(strconv.FormatUint(v, 10))
	case float32:
		return st.writeFloat(buf, path, float64(v))
	case float64:
		return st.writeFloat(buf, path, v)
	case json.Number:
		// ParseFloat also takes NaN, Inf and hex floats, none of which is JSON
		f, err := v.Float64()
		if err == nil && (math.IsNaN(f) || math.IsInf(f, 0) || !json.Valid([]byte(v))) {
			err = errInvalidNumber
		}
		if err != nil {
			st.fail(path, v, err)
			return false
		}
		buf.WriteString(v.String())
	case Color:
		if v.IsZero() {
			if omitEmpty {
				return false
			}
			buf.WriteString("null")
			return true
		}
		writeString(buf, v.String())
	case Token:
		return st.writeValue(buf, path, v.Literal(), omitEmpty)
	case Node:
		sub := newObjectEncoder(st, path)
		v.EncodeFields(sub)
		if st.err != nil || (sub.n == 0 && omitEmpty) {
			return false
		}
		buf.Write(sub.bytes())
	case []any:
		return writeSliceOf(st, buf, path, v, omitEmpty)
	case []string:
		return writeSliceOf(st, buf, path, v, omitEmpty)
	case []float64:
		return writeSliceOf(st, buf, path, v, omitEmpty)
	case []int:
		return writeSliceOf(st, buf, path, v, omitEmpty)
	case []Color:
		return writeSliceOf(st, buf, path, v, omitEmpty)
	case []Node:
		return writeSliceOf(st, buf, path, v, omitEmpty)
	case map[string]any:
		return writeMap(st, buf, path, v, omitEmpty)
	case map[string]string:
		return writeMap(st, buf, path, v, omitEmpty)
	case map[string]Node:
		return writeMap(st, buf, path, v, omitEmpty)
	default:
		return st.writeComposite(buf, path, v, omitEmpty)
	}
	return true
}

var errInvalidNumber = errors.New("not a JSON number")

// writeComposite covers the slice and map shapes without a case of their own,
// e.g. []bool, map[string]float64 or []map[string]any. Their elements go
// through writeValue, so an element without a rule still fails.
func (st *encodeState) writeComposite(buf *bytes.Buffer, path string, v any, omitEmpty bool) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 && omitEmpty {
			return false
		}
		buf.WriteByte('[')
		for i := range rv.Len() {
			if i > 0 {
				buf.WriteByte(',')
			}
			st.writeValue(buf, path+"["+strconv.Itoa(i)+"]", rv.Index(i).Interface(), false)
			if st.err != nil {
				return false
			}
		}
		buf.WriteByte(']')
		return true

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		sub := newObjectEncoder(st, path)
		for _, k := range keys {
			sub.Value(k.String(), rv.MapIndex(k).Interface())
		}
		if st.err != nil || (sub.n == 0 && omitEmpty) {
			return false
		}
		buf.Write(sub.bytes())
		return true
	}

	st.fail(path, v, nil)
	return false
}

func writeSliceOf[T any](st *encodeState, buf *bytes.Buffer, path string, items []T, omitEmpty bool) bool {
	if len(items) == 0 && omitEmpty {
		return false
	}
	writeSeq(st, buf, path, items)
	return st.err == nil
}

func (st *encodeState) writeFloat(buf *bytes.Buffer, path string, f float64) bool {
	b, err := json.Marshal(f)
	if err != nil {
		st.fail(path, f, err)
		return false
	}
	buf.Write(b)
	return true
}

func writeString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s) // a string always marshals
	buf.Write(b)
}

// Marshal encodes n as a compact JSON object. On failure nothing is returned
// and the error wraps ErrUnsupportedValueType.
func Marshal(n Node) ([]byte, error) {
	return marshal(n, &encodeState{})
}

// MarshalIndent is Marshal followed by json.Indent.
func MarshalIndent(n Node, prefix, indent string) ([]byte, error) {
	b, err := Marshal(n)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func marshal(n Node, st *encodeState) ([]byte, error) {
	root := newObjectEncoder(st, "")
	if n != nil {
		n.EncodeFields(root)
	}
	if st.err != nil {
		return nil, st.err
	}
	return root.bytes(), nil
}
