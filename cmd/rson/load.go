package main

import (
	"github.com/rson-format/go-rson/format"

	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	in := format.BinaryFormat
	cfg.InFormat = &in
	if cfg.OutFormat == nil {
		out := format.RSONFormat
		cfg.OutFormat = &out
	}
	for _, arg := range argsOrStdin(args) {
		if err := pipeArg(cfg.MainConfig, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}
