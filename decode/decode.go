package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/mpack-format/go-mpack/ir"
	"github.com/mpack-format/go-mpack/wire"
)

// Decoder parses MessagePack wire bytes from a source into ir values.
// One Decoder holds exclusive access to exactly one source; a stream
// of back-to-back values is read with repeated Decode calls.
type Decoder struct {
	r       io.Reader
	opts    *decodeOpts
	offset  int64
	scratch [8]byte
}

func NewDecoder(r io.Reader, opts ...DecodeOption) *Decoder {
	dOpts := &decodeOpts{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(dOpts)
	}
	return &Decoder{r: r, opts: dOpts}
}

// Offset returns the number of bytes consumed from the source.
func (d *Decoder) Offset() int64 {
	return d.offset
}

// frame is one composite under construction on the work stack.
type frame struct {
	isMap bool
	n     int
	keys  []*ir.Value
	vals  []*ir.Value
}

func (f *frame) add(v *ir.Value) {
	if f.isMap && len(f.keys) == len(f.vals) {
		f.keys = append(f.keys, v)
		return
	}
	f.vals = append(f.vals, v)
}

func (f *frame) done() bool {
	return len(f.vals) == f.n && (!f.isMap || len(f.keys) == f.n)
}

func (f *frame) finish() *ir.Value {
	if !f.isMap {
		return ir.FromSlice(f.vals)
	}
	kvs := make([]ir.KeyVal, f.n)
	for i := 0; i < f.n; i++ {
		kvs[i] = ir.KeyVal{Key: f.keys[i], Val: f.vals[i]}
	}
	return ir.FromKeyVals(kvs)
}

// Decode reads the next value from the source.  Composites are built
// bottom-up on an explicit work stack, each element fully decoded
// before the next begins, so nesting never consumes call stack.  Any
// failure aborts the whole call; partial trees are dropped.  A source
// exhausted before the first byte returns io.EOF.
func (d *Decoder) Decode() (*ir.Value, error) {
	var stack []*frame
	for {
		v, f, err := d.readValue(len(stack) == 0)
		if err != nil {
			return nil, err
		}
		if f != nil {
			if len(stack) >= d.opts.maxDepth {
				return nil, fmt.Errorf("%w: more than %d levels", ErrDepth, d.opts.maxDepth)
			}
			if f.n > 0 {
				stack = append(stack, f)
				continue
			}
			v = f.finish()
		}
		for {
			if len(stack) == 0 {
				return v, nil
			}
			top := stack[len(stack)-1]
			top.add(v)
			if !top.done() {
				break
			}
			stack = stack[:len(stack)-1]
			v = top.finish()
		}
	}
}

// readValue reads one leading byte and its payload.  It returns a
// complete value for leaves, and an open frame for composites.
func (d *Decoder) readValue(atTop bool) (*ir.Value, *frame, error) {
	b, err := d.readTag(atTop)
	if err != nil {
		return nil, nil, err
	}

	switch b {
	case wire.TagNil:
		return ir.Null(), nil, nil
	case wire.TagFalse:
		return ir.FromBool(false), nil, nil
	case wire.TagTrue:
		return ir.FromBool(true), nil, nil

	case wire.TagFloat32:
		u, err := d.readUint(4)
		if err != nil {
			return nil, nil, err
		}
		return ir.FromFloat32(math.Float32frombits(uint32(u))), nil, nil
	case wire.TagFloat64:
		u, err := d.readUint(8)
		if err != nil {
			return nil, nil, err
		}
		return ir.FromFloat64(math.Float64frombits(u)), nil, nil

	case wire.TagUint8:
		u, err := d.readUint(1)
		if err != nil {
			return nil, nil, err
		}
		return ir.FromUint8(uint8(u)), nil, nil
	case wire.TagUint16:
		u, err := d.readUint(2)
		if err != nil {
			return nil, nil, err
		}
		return ir.FromUint16(uint16(u)), nil, nil
	case wire.TagUint32:
		u, err := d.readUint(4)
		if err != nil {
			return nil, nil, err
		}
		return ir.FromUint32(uint32(u)), nil, nil
	case wire.TagUint64:
		u, err := d.readUint(8)
		if err != nil {
			return nil, nil, err
		}
		return ir.FromUint(u), nil, nil

	case wire.TagInt8:
		u, err := d.readUint(1)
		if err != nil {
			return nil, nil, err
		}
		return ir.FromInt8(int8(u)), nil, nil
	case wire.TagInt16:
		u, err := d.readUint(2)
		if err != nil {
			return nil, nil, err
		}
		return ir.FromInt16(int16(u)), nil, nil
	case wire.TagInt32:
		u, err := d.readUint(4)
		if err != nil {
			return nil, nil, err
		}
		return ir.FromInt32(int32(u)), nil, nil
	case wire.TagInt64:
		u, err := d.readUint(8)
		if err != nil {
			return nil, nil, err
		}
		return ir.FromInt(int64(u)), nil, nil

	case wire.TagRaw16, wire.TagRaw32:
		n, err := d.readLen(b == wire.TagRaw32)
		if err != nil {
			return nil, nil, err
		}
		raw, err := d.readRaw(n)
		if err != nil {
			return nil, nil, err
		}
		return ir.FromRaw(raw), nil, nil

	case wire.TagArray16, wire.TagArray32:
		n, err := d.readLen(b == wire.TagArray32)
		if err != nil {
			return nil, nil, err
		}
		return nil, newFrame(false, n), nil

	case wire.TagMap16, wire.TagMap32:
		n, err := d.readLen(b == wire.TagMap32)
		if err != nil {
			return nil, nil, err
		}
		return nil, newFrame(true, n), nil
	}

	switch {
	case wire.IsFixRaw(b):
		raw, err := d.readRaw(int(b &^ wire.FixRawTag))
		if err != nil {
			return nil, nil, err
		}
		return ir.FromRaw(raw), nil, nil
	case wire.IsNegativeFixnum(b):
		return ir.FromInt8(int8(b)), nil, nil
	case wire.IsFixArray(b):
		return nil, newFrame(false, int(b&^wire.FixArrayTag)), nil
	case wire.IsFixMap(b):
		return nil, newFrame(true, int(b&^wire.FixMapTag)), nil
	case wire.IsPositiveFixnum(b):
		return ir.FromInt8(int8(b)), nil, nil
	}

	return nil, nil, fmt.Errorf("%w 0x%02x at offset %d", ErrUnknownTag, b, d.offset-1)
}

// frameCap bounds speculative allocation for declared element counts;
// a lying header on a short stream fails before memory does.
const frameCap = 1 << 10

func newFrame(isMap bool, n int) *frame {
	f := &frame{isMap: isMap, n: n}
	c := min(n, frameCap)
	f.vals = make([]*ir.Value, 0, c)
	if isMap {
		f.keys = make([]*ir.Value, 0, c)
	}
	return f
}

// readTag reads the next leading byte.  At the top of a Decode call a
// clean end of the source is io.EOF, not a truncation.
func (d *Decoder) readTag(atTop bool) (byte, error) {
	n, err := io.ReadFull(d.r, d.scratch[:1])
	d.offset += int64(n)
	if err != nil {
		if atTop && err == io.EOF {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("%w at offset %d", ErrTruncated, d.offset)
	}
	return d.scratch[0], nil
}

// readUint reads a big-endian payload of 1, 2, 4, or 8 bytes.
func (d *Decoder) readUint(width int) (uint64, error) {
	if err := d.readFull(d.scratch[:width]); err != nil {
		return 0, err
	}
	switch width {
	case 1:
		return uint64(d.scratch[0]), nil
	case 2:
		return uint64(binary.BigEndian.Uint16(d.scratch[:2])), nil
	case 4:
		return uint64(binary.BigEndian.Uint32(d.scratch[:4])), nil
	default:
		return binary.BigEndian.Uint64(d.scratch[:8]), nil
	}
}

// readLen reads a 16- or 32-bit big-endian length field.
func (d *Decoder) readLen(wide bool) (int, error) {
	w := 2
	if wide {
		w = 4
	}
	u, err := d.readUint(w)
	if err != nil {
		return 0, err
	}
	// a raw32 length can exceed int on 32-bit platforms
	if u > math.MaxInt {
		return 0, fmt.Errorf("length %d at offset %d overflows int", u, d.offset)
	}
	return int(u), nil
}

// rawChunk bounds speculative allocation for declared raw lengths.
const rawChunk = 1 << 16

// readRaw reads exactly n payload bytes, growing in chunks so that a
// declared length longer than the source truncates cheaply.
func (d *Decoder) readRaw(n int) ([]byte, error) {
	if n <= rawChunk {
		raw := make([]byte, n)
		if err := d.readFull(raw); err != nil {
			return nil, err
		}
		return raw, nil
	}
	raw := make([]byte, 0, rawChunk)
	for len(raw) < n {
		c := min(n-len(raw), rawChunk)
		chunk := make([]byte, c)
		if err := d.readFull(chunk); err != nil {
			return nil, err
		}
		raw = append(raw, chunk...)
	}
	return raw, nil
}

func (d *Decoder) readFull(p []byte) error {
	n, err := io.ReadFull(d.r, p)
	d.offset += int64(n)
	if err != nil {
		return fmt.Errorf("%w at offset %d", ErrTruncated, d.offset)
	}
	return nil
}

// Parse decodes a single value from d.  Bytes after the value are an
// error; use a Decoder for streams of back-to-back values.
func Parse(d []byte, opts ...DecodeOption) (*ir.Value, error) {
	dec := NewDecoder(bytes.NewReader(d), opts...)
	v, err := dec.Decode()
	if err != nil {
		return nil, err
	}
	if int(dec.Offset()) != len(d) {
		return nil, fmt.Errorf("trailing data at offset %d", dec.Offset())
	}
	return v, nil
}
