package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mpack-format/go-mpack/encode"
	"github.com/mpack-format/go-mpack/format"
	"github.com/mpack-format/go-mpack/gomap"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func pack(cfg *PackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pack.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.inFmt() == format.TextFormat {
		return fmt.Errorf("%w: pack input must be json or yaml", cli.ErrUsage)
	}
	if len(args) == 0 {
		return packReader(cfg, cc.Out, cc.In)
	}
	for _, file := range args {
		if err := packFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func packFile(cfg *PackConfig, w io.Writer, file string) error {
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
	if err := packReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func packReader(cfg *PackConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	var natives []any
	if cfg.inFmt() == format.YAMLFormat {
		natives, err = yamlDocs(in)
	} else {
		natives, err = jsonDocs(in)
	}
	if err != nil {
		return err
	}
	enc := encode.NewEncoder(w)
	for i, native := range natives {
		v, err := gomap.ToIR(native)
		if err != nil {
			return fmt.Errorf("error mapping document %d: %w", i, err)
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error packing document %d: %w", i, err)
		}
	}
	return nil
}

func yamlDocs(in []byte) ([]any, error) {
	var res []any
	for i, doc := range bytes.Split(in, []byte("\n---\n")) {
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}
		var native any
		if err := yaml.Unmarshal(doc, &native); err != nil {
			return nil, fmt.Errorf("error decoding yaml document %d: %w", i, err)
		}
		res = append(res, native)
	}
	return res, nil
}

func jsonDocs(in []byte) ([]any, error) {
	var (
		res []any
		dec = json.NewDecoder(bytes.NewReader(in))
		i   = 0
	)
	dec.UseNumber()
	for {
		var native any
		err := dec.Decode(&native)
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error decoding json document %d: %w", i, err)
		}
		native, err = denumber(native)
		if err != nil {
			return nil, fmt.Errorf("error decoding json document %d: %w", i, err)
		}
		res = append(res, native)
		i++
	}
}

// denumber lowers json.Number values to int64, uint64, or float64 so
// that integral inputs keep their integral encodings.
func denumber(v any) (any, error) {
	switch x := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(x.String(), 10, 64); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(x.String(), 10, 64); err == nil {
			return u, nil
		}
		return x.Float64()
	case []any:
		for i := range x {
			e, err := denumber(x[i])
			if err != nil {
				return nil, err
			}
			x[i] = e
		}
		return x, nil
	case map[string]any:
		for k := range x {
			e, err := denumber(x[k])
			if err != nil {
				return nil, err
			}
			x[k] = e
		}
		return x, nil
	default:
		return v, nil
	}
}
