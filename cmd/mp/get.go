package main

import (
	"fmt"

	"github.com/mpack-format/go-mpack/gomap"
	"github.com/mpack-format/go-mpack/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an expression over \"doc\"", cli.ErrUsage)
	}
	query := args[0]
	if query == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	prg, err := expr.Compile(query, expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("%w: error compiling %q: %v", cli.ErrUsage, query, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := queryArg(cfg, cc, prg, arg); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, query, err)
		}
	}
	return nil
}

func queryArg(cfg *GetConfig, cc *cli.Context, prg *vm.Program, arg string) error {
	mCfg := cfg.MainConfig
	vs, err := getObjFile(cc, arg, mCfg.decodeOpts()...)
	if err != nil {
		return err
	}
	results := make([]*ir.Value, 0, len(vs))
	for i, v := range vs {
		native, err := gomap.FromIR(v)
		if err != nil {
			return fmt.Errorf("error mapping value %d: %w", i, err)
		}
		out, err := expr.Run(prg, map[string]any{"doc": native})
		if err != nil {
			return fmt.Errorf("error evaluating against value %d: %w", i, err)
		}
		res, err := gomap.ToIR(out)
		if err != nil {
			return fmt.Errorf("error mapping result %d: %w", i, err)
		}
		results = append(results, res)
	}
	return writeValues(mCfg, cc.Out, results, mCfg.renderOpts(cc.Out))
}
