package format

import (
	"errors"
	"fmt"
)

// Format selects a text projection of decoded values for the mp tool.
// The binary wire side has no Format; this type only names what mp
// reads and writes on the human-facing side.
type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// names carries the canonical spelling and file suffix per format.
// The spelling doubles as the long form accepted by the -I/-O flags.
var names = map[Format]struct {
	name   string
	suffix string
}{
	TextFormat: {"text", ".txt"},
	YAMLFormat: {"yaml", ".yaml"},
	JSONFormat: {"json", ".json"},
}

// ParseFormat accepts a canonical name or its first letter, the
// shorthand the mp flags use.
func ParseFormat(v string) (Format, error) {
	for f, n := range names {
		if v == n.name || v == n.name[:1] {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	n, ok := names[f]
	if !ok {
		return nil, fmt.Errorf("%w: Format(%d)", ErrBadFormat, int(f))
	}
	return []byte(n.name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsText() bool { return f == TextFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the conventional file extension, dot included, or ""
// for a Format outside the enum.
func (f Format) Suffix() string {
	return names[f].suffix
}

// AllFormats lists the projections in the order the tool prefers them
// when a flag leaves the choice open.
func AllFormats() []Format {
	return []Format{TextFormat, YAMLFormat, JSONFormat}
}
