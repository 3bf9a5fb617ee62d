package main

import (
	"github.com/scott-cotton/cli"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args) {
		if err := pipeArg(cfg.MainConfig, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}
