package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mpack-format/go-mpack/decode"
	"github.com/mpack-format/go-mpack/encode"
	"github.com/mpack-format/go-mpack/format"
	"github.com/mpack-format/go-mpack/gomap"
	"github.com/mpack-format/go-mpack/ir"
	"github.com/mpack-format/go-mpack/render"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// getObjFile reads every value packed in path, "-" meaning cc.In.
func getObjFile(cc *cli.Context, path string, opts ...decode.DecodeOption) ([]*ir.Value, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	return readValues(r, opts...)
}

func readValues(r io.Reader, opts ...decode.DecodeOption) ([]*ir.Value, error) {
	var (
		res []*ir.Value
		d   = decode.NewDecoder(r, opts...)
	)
	for {
		v, err := d.Decode()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
}

func writeValue(cfg *MainConfig, w io.Writer, v *ir.Value, rOpts []render.RenderOption) error {
	if cfg.Wire {
		return encode.Encode(v, w)
	}
	switch cfg.outFmt() {
	case format.JSONFormat:
		native, err := gomap.FromIR(v)
		if err != nil {
			return err
		}
		d, err := json.MarshalIndent(native, "", "  ")
		if err != nil {
			return err
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	case format.YAMLFormat:
		native, err := gomap.FromIR(v)
		if err != nil {
			return err
		}
		d, err := yaml.Marshal(native)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return render.Render(v, w, rOpts...)
	}
}

func writeValues(cfg *MainConfig, w io.Writer, vs []*ir.Value, rOpts []render.RenderOption) error {
	for i, v := range vs {
		if i > 0 && !cfg.Wire {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := writeValue(cfg, w, v, rOpts); err != nil {
			return fmt.Errorf("error writing value %d: %w", i, err)
		}
	}
	return nil
}
