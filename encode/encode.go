package encode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/mpack-format/go-mpack/ir"
	"github.com/mpack-format/go-mpack/wire"
)

// Encoder serializes values to a sink in MessagePack wire format.
// Scalars always take the narrowest form that round-trips exactly.
// An Encoder holds exclusive access to its writer; write failures
// propagate to the caller unretried.
type Encoder struct {
	w       io.Writer
	scratch [9]byte
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes one value tree.  Array elements and map pairs are
// written in the order the value holds them.
func (e *Encoder) Encode(v *ir.Value) error {
	switch v.Kind() {
	case ir.NilKind:
		return e.PackNil()
	case ir.BoolKind:
		b, _ := v.Bool()
		return e.PackBool(b)
	case ir.Int8Kind, ir.Int16Kind, ir.Int32Kind, ir.Int64Kind:
		i, _ := v.Int()
		return e.PackInt(i)
	case ir.Uint8Kind, ir.Uint16Kind, ir.Uint32Kind, ir.Uint64Kind:
		u, _ := v.Uint()
		return e.PackUint(u)
	case ir.Float32Kind:
		f, _ := v.Float32()
		return e.PackFloat32(f)
	case ir.Float64Kind:
		f, _ := v.Float64()
		return e.PackFloat64(f)
	case ir.RawKind:
		d, _ := v.Bytes()
		return e.PackRaw(d)
	case ir.ArrayKind:
		vs, _ := v.Array()
		if err := e.PackArrayHeader(len(vs)); err != nil {
			return err
		}
		return e.encodeElems(vs)
	case ir.MapKind:
		kvs, _ := v.Map()
		if err := e.PackMapHeader(len(kvs)); err != nil {
			return err
		}
		for i := range kvs {
			if err := e.Encode(kvs[i].Key); err != nil {
				return err
			}
			if err := e.Encode(kvs[i].Val); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("cannot encode kind %s", v.Kind())
}

// encodeElems writes a homogeneous run of already-headered elements.
func (e *Encoder) encodeElems(vs []*ir.Value) error {
	for _, v := range vs {
		if err := e.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) PackNil() error {
	return e.writeByte(wire.TagNil)
}

func (e *Encoder) PackBool(v bool) error {
	if v {
		return e.writeByte(wire.TagTrue)
	}
	return e.writeByte(wire.TagFalse)
}

// PackInt writes v in its narrowest form.  Non-negative values take
// the unsigned forms, negative values the fixnum or signed forms.
func (e *Encoder) PackInt(v int64) error {
	if v >= 0 {
		return e.PackUint(uint64(v))
	}
	switch {
	case v >= wire.MinNegFixnum:
		return e.writeByte(byte(v))
	case v >= math.MinInt8:
		e.scratch[0] = wire.TagInt8
		e.scratch[1] = byte(v)
		return e.write(2)
	case v >= math.MinInt16:
		e.scratch[0] = wire.TagInt16
		binary.BigEndian.PutUint16(e.scratch[1:], uint16(v))
		return e.write(3)
	case v >= math.MinInt32:
		e.scratch[0] = wire.TagInt32
		binary.BigEndian.PutUint32(e.scratch[1:], uint32(v))
		return e.write(5)
	default:
		e.scratch[0] = wire.TagInt64
		binary.BigEndian.PutUint64(e.scratch[1:], uint64(v))
		return e.write(9)
	}
}

func (e *Encoder) PackUint(v uint64) error {
	switch {
	case v <= wire.MaxFixnum:
		return e.writeByte(byte(v))
	case v <= math.MaxUint8:
		e.scratch[0] = wire.TagUint8
		e.scratch[1] = byte(v)
		return e.write(2)
	case v <= math.MaxUint16:
		e.scratch[0] = wire.TagUint16
		binary.BigEndian.PutUint16(e.scratch[1:], uint16(v))
		return e.write(3)
	case v <= math.MaxUint32:
		e.scratch[0] = wire.TagUint32
		binary.BigEndian.PutUint32(e.scratch[1:], uint32(v))
		return e.write(5)
	default:
		e.scratch[0] = wire.TagUint64
		binary.BigEndian.PutUint64(e.scratch[1:], v)
		return e.write(9)
	}
}

// PackFloat32 writes the exact bit pattern of v, never narrowed.
func (e *Encoder) PackFloat32(v float32) error {
	e.scratch[0] = wire.TagFloat32
	binary.BigEndian.PutUint32(e.scratch[1:], math.Float32bits(v))
	return e.write(5)
}

func (e *Encoder) PackFloat64(v float64) error {
	e.scratch[0] = wire.TagFloat64
	binary.BigEndian.PutUint64(e.scratch[1:], math.Float64bits(v))
	return e.write(9)
}

// PackRaw writes a raw header for len(d) followed by d, unpadded.
func (e *Encoder) PackRaw(d []byte) error {
	if err := e.PackRawHeader(len(d)); err != nil {
		return err
	}
	_, err := e.w.Write(d)
	return err
}

func (e *Encoder) PackString(s string) error {
	if err := e.PackRawHeader(len(s)); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, s)
	return err
}

func (e *Encoder) PackRawHeader(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("negative raw length %d", n)
	case n <= wire.MaxFixRaw:
		return e.writeByte(wire.FixRawTag | byte(n))
	case n <= wire.Max16:
		e.scratch[0] = wire.TagRaw16
		binary.BigEndian.PutUint16(e.scratch[1:], uint16(n))
		return e.write(3)
	case uint64(n) <= math.MaxUint32:
		e.scratch[0] = wire.TagRaw32
		binary.BigEndian.PutUint32(e.scratch[1:], uint32(n))
		return e.write(5)
	default:
		return fmt.Errorf("raw length %d exceeds wire format", n)
	}
}

func (e *Encoder) PackArrayHeader(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("negative array length %d", n)
	case n <= wire.MaxFixArray:
		return e.writeByte(wire.FixArrayTag | byte(n))
	case n <= wire.Max16:
		e.scratch[0] = wire.TagArray16
		binary.BigEndian.PutUint16(e.scratch[1:], uint16(n))
		return e.write(3)
	case uint64(n) <= math.MaxUint32:
		e.scratch[0] = wire.TagArray32
		binary.BigEndian.PutUint32(e.scratch[1:], uint32(n))
		return e.write(5)
	default:
		return fmt.Errorf("array length %d exceeds wire format", n)
	}
}

func (e *Encoder) PackMapHeader(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("negative map length %d", n)
	case n <= wire.MaxFixMap:
		return e.writeByte(wire.FixMapTag | byte(n))
	case n <= wire.Max16:
		e.scratch[0] = wire.TagMap16
		binary.BigEndian.PutUint16(e.scratch[1:], uint16(n))
		return e.write(3)
	case uint64(n) <= math.MaxUint32:
		e.scratch[0] = wire.TagMap32
		binary.BigEndian.PutUint32(e.scratch[1:], uint32(n))
		return e.write(5)
	default:
		return fmt.Errorf("map length %d exceeds wire format", n)
	}
}

func (e *Encoder) writeByte(b byte) error {
	e.scratch[0] = b
	return e.write(1)
}

func (e *Encoder) write(n int) error {
	_, err := e.w.Write(e.scratch[:n])
	return err
}

// Encode writes v to w in wire format.
func Encode(v *ir.Value, w io.Writer) error {
	return NewEncoder(w).Encode(v)
}

// Bytes returns the wire encoding of v.
func Bytes(v *ir.Value) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := NewEncoder(buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
