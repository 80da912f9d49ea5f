package render

import (
	"encoding/hex"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mpack-format/go-mpack/ir"
)

type RenderState struct {
	depth, indent int

	Color func(ir.Kind, ColorAttr, string) string
}

// Render writes a human-readable text form of v: bracketed composites
// with one element per line, quoted text for printable raws and hex
// for binary ones.  The output is for inspection, not re-parsing.
func Render(v *ir.Value, w io.Writer, opts ...RenderOption) error {
	rs := &RenderState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(rs)
	}
	if err := render(v, w, rs); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func render(v *ir.Value, w io.Writer, rs *RenderState) error {
	switch v.Kind() {
	case ir.ArrayKind:
		return renderArray(v, w, rs)
	case ir.MapKind:
		return renderMap(v, w, rs)
	default:
		return writeString(w, rs.colored(v.Kind(), ValueColor, Scalar(v)))
	}
}

func renderArray(v *ir.Value, w io.Writer, rs *RenderState) error {
	vs, _ := v.Array()
	if len(vs) == 0 {
		return writeString(w, rs.colored(v.Kind(), SepColor, "[]"))
	}
	if err := writeString(w, rs.colored(v.Kind(), SepColor, "[")); err != nil {
		return err
	}
	rs.depth++
	for i, e := range vs {
		if err := writeNL(w, rs); err != nil {
			return err
		}
		if err := render(e, w, rs); err != nil {
			return err
		}
		if i < len(vs)-1 {
			if err := writeString(w, rs.colored(v.Kind(), SepColor, ",")); err != nil {
				return err
			}
		}
	}
	rs.depth--
	if err := writeNL(w, rs); err != nil {
		return err
	}
	return writeString(w, rs.colored(v.Kind(), SepColor, "]"))
}

func renderMap(v *ir.Value, w io.Writer, rs *RenderState) error {
	kvs, _ := v.Map()
	if len(kvs) == 0 {
		return writeString(w, rs.colored(v.Kind(), SepColor, "{}"))
	}
	if err := writeString(w, rs.colored(v.Kind(), SepColor, "{")); err != nil {
		return err
	}
	rs.depth++
	for i := range kvs {
		if err := writeNL(w, rs); err != nil {
			return err
		}
		kv := &kvs[i]
		if kv.Key.Kind().IsLeaf() {
			if err := writeString(w, rs.colored(kv.Key.Kind(), FieldColor, Scalar(kv.Key))); err != nil {
				return err
			}
		} else {
			// composite keys are legal on the wire
			if err := render(kv.Key, w, rs); err != nil {
				return err
			}
		}
		if err := writeString(w, rs.colored(v.Kind(), SepColor, ": ")); err != nil {
			return err
		}
		if err := render(kv.Val, w, rs); err != nil {
			return err
		}
		if i < len(kvs)-1 {
			if err := writeString(w, rs.colored(v.Kind(), SepColor, ",")); err != nil {
				return err
			}
		}
	}
	rs.depth--
	if err := writeNL(w, rs); err != nil {
		return err
	}
	return writeString(w, rs.colored(v.Kind(), SepColor, "}"))
}

// Scalar returns the text form of a leaf value.
func Scalar(v *ir.Value) string {
	switch v.Kind() {
	case ir.NilKind:
		return "null"
	case ir.BoolKind:
		b, _ := v.Bool()
		return strconv.FormatBool(b)
	case ir.Int8Kind, ir.Int16Kind, ir.Int32Kind, ir.Int64Kind:
		i, _ := v.Int()
		return strconv.FormatInt(i, 10)
	case ir.Uint8Kind, ir.Uint16Kind, ir.Uint32Kind, ir.Uint64Kind:
		u, _ := v.Uint()
		return strconv.FormatUint(u, 10)
	case ir.Float32Kind:
		f, _ := v.Float32()
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	case ir.Float64Kind:
		f, _ := v.Float64()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case ir.RawKind:
		d, _ := v.Bytes()
		if utf8.Valid(d) {
			return strconv.Quote(string(d))
		}
		return "0x" + hex.EncodeToString(d)
	}
	return "<" + v.Kind().String() + ">"
}

func (rs *RenderState) colored(k ir.Kind, attr ColorAttr, s string) string {
	if rs.Color == nil {
		return s
	}
	return rs.Color(k, attr, s)
}

func writeNL(w io.Writer, rs *RenderState) error {
	indentString := strings.Repeat(strings.Repeat(" ", rs.indent), rs.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
