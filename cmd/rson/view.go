package main

import (
	"github.com/rson-format/go-rson/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	cfg.Color = true
	f := format.RSONFormat
	cfg.OutFormat = &f
	for _, arg := range argsOrStdin(args) {
		if err := pipeArg(cfg.MainConfig, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}
