package main

import (
	"fmt"

	"github.com/rson-format/go-rson/bridge"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires an expression argument", cli.ErrUsage)
	}
	program, err := expr.Compile(args[0])
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", args[0], err)
	}
	for _, arg := range argsOrStdin(args[1:]) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		v, err := decodeInput(cfg.MainConfig, d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		g, err := bridge.ToInterface(v)
		if err != nil {
			return err
		}
		// the document is bound to v; record fields are also in
		// scope directly
		env := map[string]any{"v": g}
		if m, ok := g.(map[string]any); ok {
			for k, mv := range m {
				env[k] = mv
			}
		}
		res, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("error evaluating on %s: %w", arg, err)
		}
		out, err := bridge.FromInterface(res, bridge.WithRegistry(cfg.registry()))
		if err != nil {
			return err
		}
		if err := renderOutput(cfg.MainConfig, cc.Out, out); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
