package render

import (
	"bytes"
	"testing"

	"github.com/mpack-format/go-mpack/ir"
)

func renderString(t *testing.T, v *ir.Value, opts ...RenderOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Render(v, buf, opts...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf.String()
}

func TestScalar(t *testing.T) {
	cases := []struct {
		v    *ir.Value
		want string
	}{
		{ir.Null(), "null"},
		{ir.FromBool(true), "true"},
		{ir.FromInt(-42), "-42"},
		{ir.FromUint(300), "300"},
		{ir.FromFloat64(1.5), "1.5"},
		{ir.FromString("hi"), `"hi"`},
		{ir.FromRaw([]byte{0xff, 0x00}), "0xff00"},
	}
	for _, c := range cases {
		if got := Scalar(c.v); got != c.want {
			t.Errorf("Scalar(%s) = %q, want %q", c.v.Kind(), got, c.want)
		}
	}
}

func TestRenderComposite(t *testing.T) {
	v := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("name"), Val: ir.FromString("alice")},
		{Key: ir.FromString("tags"), Val: ir.FromSlice([]*ir.Value{
			ir.FromInt(1),
			ir.FromInt(2),
		})},
	})
	want := `{
  "name": "alice",
  "tags": [
    1,
    2
  ]
}
`
	if got := renderString(t, v); got != want {
		t.Errorf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := renderString(t, ir.FromSlice(nil)); got != "[]\n" {
		t.Errorf("empty array rendered %q", got)
	}
	if got := renderString(t, ir.FromKeyVals(nil)); got != "{}\n" {
		t.Errorf("empty map rendered %q", got)
	}
}

func TestRenderIndent(t *testing.T) {
	v := ir.FromSlice([]*ir.Value{ir.FromInt(1)})
	want := "[\n    1\n]\n"
	if got := renderString(t, v, Indent(4)); got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestRenderColorsCover(t *testing.T) {
	// every kind/attr pair resolves to some color function
	c := NewColors()
	for _, k := range ir.Kinds() {
		for _, attr := range []ColorAttr{FieldColor, ValueColor, SepColor} {
			if got := c.Color(k, attr, "x"); got == "" {
				t.Errorf("empty colorization for %s/%d", k, attr)
			}
		}
	}
}
