package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mpack-format/go-mpack/debug"
	"github.com/mpack-format/go-mpack/gomap"
	"github.com/mpack-format/go-mpack/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a file to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	mCfg := cfg.MainConfig
	targets, err := getObjFile(cc, args[1], mCfg.decodeOpts()...)
	if err != nil {
		return fmt.Errorf("error unpacking %s: %w", args[1], err)
	}
	results := make([]*ir.Value, 0, len(targets))
	for i, target := range targets {
		res, err := applyPatch(p, target)
		if err != nil {
			return fmt.Errorf("error patching value %d of %s: %w", i, args[1], err)
		}
		results = append(results, res)
	}
	return writeValues(mCfg, cc.Out, results, mCfg.renderOpts(cc.Out))
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (jsonpatch.Patch, error) {
	var (
		d   []byte
		err error
	)
	switch {
	case cfg.String:
		d = []byte(arg)
	case arg == "-":
		d, err = io.ReadAll(cc.In)
	default:
		d, err = os.ReadFile(arg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	p, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: error decoding patch: %v", cli.ErrUsage, err)
	}
	return p, nil
}

// applyPatch round-trips target through json, the patch's native
// representation, and maps the result back.
func applyPatch(p jsonpatch.Patch, target *ir.Value) (*ir.Value, error) {
	native, err := gomap.FromIR(target)
	if err != nil {
		return nil, err
	}
	doc, err := json.Marshal(native)
	if err != nil {
		return nil, err
	}
	patched, err := p.Apply(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch: %s -> %s", doc, patched)
	}
	var out any
	dec := json.NewDecoder(bytes.NewReader(patched))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	out, err = denumber(out)
	if err != nil {
		return nil, err
	}
	return gomap.ToIR(out)
}
