package gomap

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/mpack-format/go-mpack/ir"
)

// ToIR converts a native Go value tree to an ir value.  Map keys are
// sorted so the result is deterministic.  Strings become Raw values,
// as do []byte.
func ToIR(v any) (*ir.Value, error) {
	return toIR(v, "")
}

func toIR(v any, fieldPath string) (*ir.Value, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Value:
		return x, nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt8(x), nil
	case int16:
		return ir.FromInt16(x), nil
	case int32:
		return ir.FromInt32(x), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromUint(uint64(x)), nil
	case uint8:
		return ir.FromUint8(x), nil
	case uint16:
		return ir.FromUint16(x), nil
	case uint32:
		return ir.FromUint32(x), nil
	case uint64:
		return ir.FromUint(x), nil
	case float32:
		return ir.FromFloat32(x), nil
	case float64:
		return ir.FromFloat64(x), nil
	case string:
		return ir.FromString(x), nil
	case []byte:
		return ir.FromRaw(x), nil
	case []any:
		vs := make([]*ir.Value, len(x))
		for i, e := range x {
			ev, err := toIR(e, fieldPath+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			vs[i] = ev
		}
		return ir.FromSlice(vs), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]ir.KeyVal, len(keys))
		for i, key := range keys {
			kPath := key
			if fieldPath != "" {
				kPath = fieldPath + "." + key
			}
			kv, err := toIR(x[key], kPath)
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: ir.FromString(key), Val: kv}
		}
		return ir.FromKeyVals(kvs), nil
	}
	return nil, &MarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("unsupported Go type %T", v),
	}
}

// FromIR converts an ir value to a native Go value tree suitable for
// JSON or YAML marshalling.  Raw values become strings when they hold
// valid UTF-8 and []byte otherwise; map keys are rendered as strings,
// so key order and non-raw key kinds are not preserved.  Duplicate
// keys keep their first value.
func FromIR(v *ir.Value) (any, error) {
	switch v.Kind() {
	case ir.NilKind:
		return nil, nil
	case ir.BoolKind:
		b, _ := v.Bool()
		return b, nil
	case ir.Int8Kind, ir.Int16Kind, ir.Int32Kind, ir.Int64Kind:
		i, _ := v.Int()
		return i, nil
	case ir.Uint8Kind, ir.Uint16Kind, ir.Uint32Kind, ir.Uint64Kind:
		u, _ := v.Uint()
		return u, nil
	case ir.Float32Kind:
		f, _ := v.Float32()
		return f, nil
	case ir.Float64Kind:
		f, _ := v.Float64()
		return f, nil
	case ir.RawKind:
		d, _ := v.Bytes()
		if utf8.Valid(d) {
			return string(d), nil
		}
		return d, nil
	case ir.ArrayKind:
		vs, _ := v.Array()
		res := make([]any, len(vs))
		for i, e := range vs {
			ev, err := FromIR(e)
			if err != nil {
				return nil, err
			}
			res[i] = ev
		}
		return res, nil
	case ir.MapKind:
		kvs, _ := v.Map()
		res := make(map[string]any, len(kvs))
		for i := range kvs {
			key, err := keyString(kvs[i].Key)
			if err != nil {
				return nil, err
			}
			if _, ok := res[key]; ok {
				continue
			}
			ev, err := FromIR(kvs[i].Val)
			if err != nil {
				return nil, err
			}
			res[key] = ev
		}
		return res, nil
	}
	return nil, &UnmarshalError{Message: "unsupported kind " + v.Kind().String()}
}

// keyString renders a map key value as a string.
func keyString(k *ir.Value) (string, error) {
	switch k.Kind() {
	case ir.NilKind:
		return "null", nil
	case ir.BoolKind:
		b, _ := k.Bool()
		return strconv.FormatBool(b), nil
	case ir.Int8Kind, ir.Int16Kind, ir.Int32Kind, ir.Int64Kind:
		i, _ := k.Int()
		return strconv.FormatInt(i, 10), nil
	case ir.Uint8Kind, ir.Uint16Kind, ir.Uint32Kind, ir.Uint64Kind:
		u, _ := k.Uint()
		return strconv.FormatUint(u, 10), nil
	case ir.Float32Kind:
		f, _ := k.Float32()
		return strconv.FormatFloat(float64(f), 'g', -1, 32), nil
	case ir.Float64Kind:
		f, _ := k.Float64()
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case ir.RawKind:
		s, _ := k.Text()
		return s, nil
	}
	return "", &UnmarshalError{Message: "composite map key has no string form"}
}
