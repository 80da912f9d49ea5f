package main

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/mpack-format/go-mpack/debug"
	"github.com/mpack-format/go-mpack/ir"
	"github.com/mpack-format/go-mpack/render"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Loop == "" {
		if len(args) != 2 {
			return fmt.Errorf("%w: diff (without -loop) requires 2 args, got %v", cli.ErrUsage, args)
		}
		v1, err := getObjFile(cc, args[0], cfg.decodeOpts()...)
		if err != nil {
			return fmt.Errorf("error unpacking %s: %w", args[0], err)
		}
		v2, err := getObjFile(cc, args[1], cfg.decodeOpts()...)
		if err != nil {
			return fmt.Errorf("error unpacking %s: %w", args[1], err)
		}
		differs, err := diffInputs(cfg, cc, v1, v2, false)
		if err != nil {
			return err
		}
		if differs {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	return diffLoop(cfg, cc)
}

func diffLoop(cfg *DiffConfig, cc *cli.Context) error {
	i := 0
	last := []*ir.Value{ir.Null()}
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	diffCount := 0
	for {
		if i == cfg.LoopLim {
			break
		}
		cmd := exec.Command("sh", "-c", cfg.Loop)
		r, err := cmd.StdoutPipe()
		if err != nil {
			return fmt.Errorf("unable to create pipe for command %q: %w", cfg.Loop, err)
		}
		cmd.WaitDelay = cfg.LoopEvery
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("unable to start %q: %w", cfg.Loop, err)
		}
		next, err := readValues(r, cfg.decodeOpts()...)
		if err != nil {
			return fmt.Errorf("error unpacking command output: %w", err)
		}
		differs, err := diffInputs(cfg, cc, last, next, diffCount > 0)
		if err != nil {
			return err
		}
		if differs {
			diffCount++
		}
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("command %q exited with an error: %w", cfg.Loop, err)
		}
		last = next
		<-ticker.C
		i++
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b []*ir.Value, sep bool) (bool, error) {
	at, err := renderText(a)
	if err != nil {
		return false, err
	}
	bt, err := renderText(b)
	if err != nil {
		return false, err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(at, bt, true)
	if debug.Diff() {
		debug.Logf("diff: %d chunks over %d/%d rendered bytes", len(diffs), len(at), len(bt))
	}
	differs := false
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			differs = true
			break
		}
	}
	if !differs {
		return false, nil
	}
	w := cc.Out
	if sep {
		if _, err := w.Write([]byte("---\n")); err != nil {
			return false, fmt.Errorf("unable to write separator: %w", err)
		}
	}
	if cfg.Loop != "" {
		when := time.Now().Format(time.RFC3339Nano)
		if _, err := w.Write([]byte("# difference found at " + when + "\n")); err != nil {
			return false, err
		}
	}
	var out string
	if cfg.useColor(w) {
		out = dmp.DiffPrettyText(diffs)
	} else {
		out = diffText(diffs)
	}
	_, err = io.WriteString(w, out)
	return true, err
}

func renderText(vs []*ir.Value) (string, error) {
	var sb strings.Builder
	for i, v := range vs {
		if i > 0 {
			sb.WriteString("---\n")
		}
		if err := render.Render(v, &sb); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// diffText marks inserted and deleted runs for non-tty output.
func diffText(diffs []diffmatchpatch.Diff) string {
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+")
			sb.WriteString(d.Text)
			sb.WriteString("+}")
		case diffmatchpatch.DiffDelete:
			sb.WriteString("{-")
			sb.WriteString(d.Text)
			sb.WriteString("-}")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
