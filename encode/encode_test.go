package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mpack-format/go-mpack/ir"
)

func packInt(t *testing.T, v int64) []byte {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := NewEncoder(buf).PackInt(v); err != nil {
		t.Fatalf("PackInt(%d): %v", v, err)
	}
	return buf.Bytes()
}

func packUint(t *testing.T, v uint64) []byte {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := NewEncoder(buf).PackUint(v); err != nil {
		t.Fatalf("PackUint(%d): %v", v, err)
	}
	return buf.Bytes()
}

func TestSmallestFitInt(t *testing.T) {
	cases := []struct {
		v    int64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0xcc, 0x80}},
		{255, []byte{0xcc, 0xff}},
		{256, []byte{0xcd, 0x01, 0x00}},
		{65535, []byte{0xcd, 0xff, 0xff}},
		{65536, []byte{0xce, 0x00, 0x01, 0x00, 0x00}},
		{1 << 32, []byte{0xcf, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}},
		{-1, []byte{0xff}},
		{-32, []byte{0xe0}},
		{-33, []byte{0xd0, 0xdf}},
		{-128, []byte{0xd0, 0x80}},
		{-129, []byte{0xd1, 0xff, 0x7f}},
		{-32768, []byte{0xd1, 0x80, 0x00}},
		{-32769, []byte{0xd2, 0xff, 0xff, 0x7f, 0xff}},
		{-2147483648, []byte{0xd2, 0x80, 0x00, 0x00, 0x00}},
		{-2147483649, []byte{0xd3, 0xff, 0xff, 0xff, 0xff, 0x7f, 0xff, 0xff, 0xff}},
	}
	for _, c := range cases {
		if got := packInt(t, c.v); !bytes.Equal(got, c.want) {
			t.Errorf("PackInt(%d) = % x, want % x", c.v, got, c.want)
		}
	}
}

func TestSmallestFitUint(t *testing.T) {
	cases := []struct {
		v    uint64
		want []byte
	}{
		{127, []byte{0x7f}},
		{128, []byte{0xcc, 0x80}},
		{65535, []byte{0xcd, 0xff, 0xff}},
		{65536, []byte{0xce, 0x00, 0x01, 0x00, 0x00}},
		{4294967295, []byte{0xce, 0xff, 0xff, 0xff, 0xff}},
		{4294967296, []byte{0xcf, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}},
		{^uint64(0), []byte{0xcf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, c := range cases {
		if got := packUint(t, c.v); !bytes.Equal(got, c.want) {
			t.Errorf("PackUint(%d) = % x, want % x", c.v, got, c.want)
		}
	}
}

func TestFloatBits(t *testing.T) {
	d, err := Bytes(ir.FromFloat32(1.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []byte{0xca, 0x3f, 0x80, 0x00, 0x00}; !bytes.Equal(d, want) {
		t.Errorf("float32 1.0 = % x, want % x", d, want)
	}
	d, err = Bytes(ir.FromFloat64(1.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []byte{0xcb, 0x3f, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}; !bytes.Equal(d, want) {
		t.Errorf("float64 1.0 = % x, want % x", d, want)
	}
}

func TestRawHeaderTiers(t *testing.T) {
	cases := []struct {
		n    int
		want []byte
	}{
		{0, []byte{0xa0}},
		{31, []byte{0xbf}},
		{32, []byte{0xda, 0x00, 0x20}},
		{65535, []byte{0xda, 0xff, 0xff}},
		{65536, []byte{0xdb, 0x00, 0x01, 0x00, 0x00}},
	}
	for _, c := range cases {
		buf := bytes.NewBuffer(nil)
		if err := NewEncoder(buf).PackRawHeader(c.n); err != nil {
			t.Fatalf("PackRawHeader(%d): %v", c.n, err)
		}
		if got := buf.Bytes(); !bytes.Equal(got, c.want) {
			t.Errorf("PackRawHeader(%d) = % x, want % x", c.n, got, c.want)
		}
	}
	d, err := Bytes(ir.FromString("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []byte{0xa2, 'h', 'i'}; !bytes.Equal(d, want) {
		t.Errorf(`"hi" = % x, want % x`, d, want)
	}
}

func TestArrayMapHeaderTiers(t *testing.T) {
	cases := []struct {
		n         int
		wantArray []byte
		wantMap   []byte
	}{
		{0, []byte{0x90}, []byte{0x80}},
		{15, []byte{0x9f}, []byte{0x8f}},
		{16, []byte{0xdc, 0x00, 0x10}, []byte{0xde, 0x00, 0x10}},
		{65535, []byte{0xdc, 0xff, 0xff}, []byte{0xde, 0xff, 0xff}},
		{65536, []byte{0xdd, 0x00, 0x01, 0x00, 0x00}, []byte{0xdf, 0x00, 0x01, 0x00, 0x00}},
	}
	for _, c := range cases {
		buf := bytes.NewBuffer(nil)
		if err := NewEncoder(buf).PackArrayHeader(c.n); err != nil {
			t.Fatalf("PackArrayHeader(%d): %v", c.n, err)
		}
		if got := buf.Bytes(); !bytes.Equal(got, c.wantArray) {
			t.Errorf("PackArrayHeader(%d) = % x, want % x", c.n, got, c.wantArray)
		}
		buf.Reset()
		if err := NewEncoder(buf).PackMapHeader(c.n); err != nil {
			t.Fatalf("PackMapHeader(%d): %v", c.n, err)
		}
		if got := buf.Bytes(); !bytes.Equal(got, c.wantMap) {
			t.Errorf("PackMapHeader(%d) = % x, want % x", c.n, got, c.wantMap)
		}
	}
	if err := NewEncoder(bytes.NewBuffer(nil)).PackArrayHeader(-1); err == nil {
		t.Error("expected error for negative length")
	}
}

func TestEncodeTree(t *testing.T) {
	// [true, -1, "hi", [1, 2]]
	v := ir.FromSlice([]*ir.Value{
		ir.FromBool(true),
		ir.FromInt(-1),
		ir.FromString("hi"),
		ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromInt(2)}),
	})
	d, err := Bytes(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x94, 0xc3, 0xff, 0xa2, 0x68, 0x69, 0x92, 0x01, 0x02}
	if !bytes.Equal(d, want) {
		t.Errorf("encoded % x, want % x", d, want)
	}
}

func TestEncodeSequence(t *testing.T) {
	// the same elements packed back to back, without the outer header
	buf := bytes.NewBuffer(nil)
	e := NewEncoder(buf)
	if err := e.PackBool(true); err != nil {
		t.Fatal(err)
	}
	if err := e.PackInt(-1); err != nil {
		t.Fatal(err)
	}
	if err := e.PackString("hi"); err != nil {
		t.Fatal(err)
	}
	if err := e.PackArrayHeader(2); err != nil {
		t.Fatal(err)
	}
	if err := e.PackInt(1); err != nil {
		t.Fatal(err)
	}
	if err := e.PackInt(2); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xc3, 0xff, 0xa2, 0x68, 0x69, 0x92, 0x01, 0x02}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("encoded % x, want % x", buf.Bytes(), want)
	}
}

func TestEncodeMapOrder(t *testing.T) {
	v := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("b"), Val: ir.FromInt(2)},
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
	})
	d, err := Bytes(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x82, 0xa1, 'b', 0x02, 0xa1, 'a', 0x01}
	if !bytes.Equal(d, want) {
		t.Errorf("encoded % x, want % x", d, want)
	}
}

type failWriter struct {
	n int // writes to allow before failing
}

var errSink = errors.New("sink failed")

func (w *failWriter) Write(d []byte) (int, error) {
	if w.n <= 0 {
		return 0, errSink
	}
	w.n--
	return len(d), nil
}

func TestWriteFailurePropagates(t *testing.T) {
	v := ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromInt(2)})
	if err := Encode(v, &failWriter{n: 0}); !errors.Is(err, errSink) {
		t.Errorf("expected sink error, got %v", err)
	}
	if err := Encode(v, &failWriter{n: 2}); !errors.Is(err, errSink) {
		t.Errorf("expected sink error, got %v", err)
	}
}
