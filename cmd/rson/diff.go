package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rson-format/go-rson/encode"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := canonicalArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := canonicalArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if useColor(cfg.MainConfig, cc.Out) {
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		printDiffs(cc.Out, diffs)
	}
	return cli.ExitCodeErr(1)
}

// canonicalArg reads and decodes an argument, then renders its
// canonical text, so the diff reflects value differences rather than
// input formatting.
func canonicalArg(cfg *MainConfig, arg string) (string, error) {
	d, err := readArg(arg)
	if err != nil {
		return "", err
	}
	v, err := decodeInput(cfg, d)
	if err != nil {
		return "", fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return encode.String(v, encode.WithRegistry(cfg.registry()))
}

func printDiffs(w io.Writer, diffs []diffmatchpatch.Diff) {
	for _, d := range diffs {
		var mark string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			mark = "+"
		case diffmatchpatch.DiffDelete:
			mark = "-"
		default:
			mark = " "
		}
		for _, line := range strings.Split(d.Text, "\n") {
			fmt.Fprintf(w, "%s%s\n", mark, line)
		}
	}
}

func useColor(cfg *MainConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
