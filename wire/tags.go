package wire

// Tag bytes for the fixed-width and length-bearing forms.  Every
// multi-byte payload that follows a tag is big-endian.
const (
	TagNil   = 0xc0
	TagFalse = 0xc2
	TagTrue  = 0xc3

	TagFloat32 = 0xca
	TagFloat64 = 0xcb

	TagUint8  = 0xcc
	TagUint16 = 0xcd
	TagUint32 = 0xce
	TagUint64 = 0xcf

	TagInt8  = 0xd0
	TagInt16 = 0xd1
	TagInt32 = 0xd2
	TagInt64 = 0xd3

	TagRaw16 = 0xda
	TagRaw32 = 0xdb

	TagArray16 = 0xdc
	TagArray32 = 0xdd

	TagMap16 = 0xde
	TagMap32 = 0xdf
)

// Leading bytes of the embedded-value families.  The low bits of the
// tag byte carry the value or length directly.
const (
	FixMapTag    = 0x80 // 1000xxxx, low 4 bits = pair count
	FixArrayTag  = 0x90 // 1001xxxx, low 4 bits = element count
	FixRawTag    = 0xa0 // 101xxxxx, low 5 bits = byte length
	NegFixnumTag = 0xe0 // 111xxxxx, low 5 bits = sign-extended value
)

// Tier limits for smallest-fit encoding.
const (
	MaxFixnum    = 0x7f // largest positive fixnum
	MinNegFixnum = -32  // smallest negative fixnum
	MaxFixRaw    = 0x1f // largest fixraw length
	MaxFixArray  = 0x0f // largest fixarray count
	MaxFixMap    = 0x0f // largest fixmap pair count
	Max16        = 0xffff
)

func IsPositiveFixnum(b byte) bool { return b&0x80 == 0 }
func IsNegativeFixnum(b byte) bool { return b&0xe0 == NegFixnumTag }
func IsFixRaw(b byte) bool         { return b&0xe0 == FixRawTag }
func IsFixArray(b byte) bool       { return b&0xf0 == FixArrayTag }
func IsFixMap(b byte) bool         { return b&0xf0 == FixMapTag }

// Known reports whether b matches some form of the wire format.  The
// holes of the tag space (0xc1, 0xc4-0xc9, 0xd4-0xd9) are the only
// unassigned bytes.
func Known(b byte) bool {
	switch b {
	case 0xc1, 0xc4, 0xc5, 0xc6, 0xc7, 0xc8, 0xc9,
		0xd4, 0xd5, 0xd6, 0xd7, 0xd8, 0xd9:
		return false
	}
	return true
}

// TagName returns a short name for the form selected by the leading
// byte b, for diagnostics and annotated dumps.
func TagName(b byte) string {
	switch b {
	case TagNil:
		return "nil"
	case TagFalse:
		return "false"
	case TagTrue:
		return "true"
	case TagFloat32:
		return "float32"
	case TagFloat64:
		return "float64"
	case TagUint8:
		return "uint8"
	case TagUint16:
		return "uint16"
	case TagUint32:
		return "uint32"
	case TagUint64:
		return "uint64"
	case TagInt8:
		return "int8"
	case TagInt16:
		return "int16"
	case TagInt32:
		return "int32"
	case TagInt64:
		return "int64"
	case TagRaw16:
		return "raw16"
	case TagRaw32:
		return "raw32"
	case TagArray16:
		return "array16"
	case TagArray32:
		return "array32"
	case TagMap16:
		return "map16"
	case TagMap32:
		return "map32"
	}
	switch {
	case IsPositiveFixnum(b):
		return "fixnum"
	case IsFixMap(b):
		return "fixmap"
	case IsFixArray(b):
		return "fixarray"
	case IsFixRaw(b):
		return "fixraw"
	case IsNegativeFixnum(b):
		return "-fixnum"
	}
	return "<unknown tag>"
}
