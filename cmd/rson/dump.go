package main

import (
	"github.com/rson-format/go-rson/format"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	f := format.BinaryFormat
	cfg.OutFormat = &f
	for _, arg := range argsOrStdin(args) {
		if err := pipeArg(cfg.MainConfig, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}
