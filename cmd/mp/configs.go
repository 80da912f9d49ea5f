package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mpack-format/go-mpack/decode"
	"github.com/mpack-format/go-mpack/format"
	"github.com/mpack-format/go-mpack/render"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`
	Wire  bool `cli:"name=wire desc='output packed wire bytes instead of text'"`

	T bool `cli:"name=t aliases=text desc='output in text'"`
	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	MaxDepth int `cli:"name=maxDepth desc='max nesting depth when unpacking'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFmt() format.Format {
	fmat := format.JSONFormat
	switch {
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return fmat
}

func (cfg *MainConfig) outFmt() format.Format {
	fmat := format.TextFormat
	switch {
	case cfg.T:
		fmat = format.TextFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) decodeOpts() []decode.DecodeOption {
	if cfg.MaxDepth <= 0 {
		return nil
	}
	return []decode.DecodeOption{decode.MaxDepth(cfg.MaxDepth)}
}

func (cfg *MainConfig) renderOpts(w io.Writer) []render.RenderOption {
	var res []render.RenderOption
	if cfg.useColor(w) {
		res = append(res, render.RenderColors(render.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	// an explicit -color=false wins over tty detection
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	Indent int `cli:"name=indent desc='indentation width'"`
	View   *cli.Command
}

func (cfg *ViewConfig) renderOpts(w io.Writer) []render.RenderOption {
	res := cfg.MainConfig.renderOpts(w)
	if cfg.Indent > 0 {
		res = append(res, render.Indent(cfg.Indent))
	}
	return res
}

type PackConfig struct {
	*MainConfig

	Pack *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Hex  bool `cli:"name=x desc='include full hex of each value'"`
	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Loop      string `cli:"name=loop desc='command to produce objects to diff in a loop'"`
	LoopEvery time.Duration
	LoopLim   int `cli:"name=loopLim desc='max number of times to loop'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.LoopEvery = d
		return d, nil
	}
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg is a literal json string'"`

	Patch *cli.Command
}
