package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/mpack-format/go-mpack/debug"
	"github.com/mpack-format/go-mpack/decode"
	"github.com/mpack-format/go-mpack/ir"
	"github.com/mpack-format/go-mpack/render"
	"github.com/mpack-format/go-mpack/wire"

	"github.com/scott-cotton/cli"
)

// hexPreview bounds per-value hex output unless -x is given.
const hexPreview = 16

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return dumpReader(cfg, cc.Out, cc.In)
	}
	for _, file := range args {
		if err := dumpFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(cfg *DumpConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := dumpReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func dumpReader(cfg *DumpConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	d := decode.NewDecoder(bytes.NewReader(in), cfg.decodeOpts()...)
	for {
		start := d.Offset()
		v, err := d.Decode()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error unpacking at offset %d: %w", d.Offset(), err)
		}
		end := d.Offset()
		if debug.Decode() {
			debug.Logf("dump: value [%d, %d) kind %s", start, end, v.Kind())
		}
		if err := dumpValue(cfg, w, v, in[start:end], start); err != nil {
			return err
		}
	}
}

func dumpValue(cfg *DumpConfig, w io.Writer, v *ir.Value, raw []byte, off int64) error {
	hex := fmt.Sprintf("% x", raw)
	if !cfg.Hex && len(raw) > hexPreview {
		hex = fmt.Sprintf("% x ...", raw[:hexPreview])
	}
	_, err := fmt.Fprintf(w, "@%08x %-9s %-5d %-24s %s\n",
		off, wire.TagName(raw[0]), len(raw), summary(v), hex)
	return err
}

func summary(v *ir.Value) string {
	switch v.Kind() {
	case ir.ArrayKind:
		return fmt.Sprintf("array[%d]", v.Len())
	case ir.MapKind:
		return fmt.Sprintf("map[%d]", v.Len())
	default:
		s := render.Scalar(v)
		if len(s) > 24 {
			s = s[:21] + "..."
		}
		return s
	}
}
