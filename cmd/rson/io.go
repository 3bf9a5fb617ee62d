package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rson-format/go-rson/bridge"
	"github.com/rson-format/go-rson/encode"
	"github.com/rson-format/go-rson/format"
	"github.com/rson-format/go-rson/ir"
	"github.com/rson-format/go-rson/parse"
	"github.com/rson-format/go-rson/wire"

	"github.com/goccy/go-yaml"
)

// readArg reads a file argument, with "-" meaning stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	return d, nil
}

// argsOrStdin makes a bare command read stdin.
func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func decodeInput(cfg *MainConfig, d []byte) (*ir.Value, error) {
	switch cfg.inFormat() {
	case format.RSONFormat:
		return parse.Parse(d, cfg.parseOpts()...)
	case format.BinaryFormat:
		return wire.Decode(d, wire.WithRegistry(cfg.registry()))
	case format.JSONFormat:
		return bridge.FromJSON(d, bridge.WithRegistry(cfg.registry()))
	case format.YAMLFormat:
		var g any
		if err := yaml.Unmarshal(d, &g); err != nil {
			return nil, err
		}
		return bridge.FromInterface(g, bridge.WithRegistry(cfg.registry()))
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, cfg.inFormat())
	}
}

func renderOutput(cfg *MainConfig, w io.Writer, v *ir.Value) error {
	switch cfg.outFormat() {
	case format.RSONFormat:
		if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
			return err
		}
		_, err := w.Write([]byte("\n"))
		return err
	case format.BinaryFormat:
		d, err := wire.Bytes(v, wire.WithRegistry(cfg.registry()))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
		d, err := bridge.ToJSON(v, bridge.WithRegistry(cfg.registry()))
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case format.YAMLFormat:
		g, err := bridge.ToInterface(v)
		if err != nil {
			return err
		}
		d, err := yaml.Marshal(g)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, cfg.outFormat())
	}
}

// pipeArg decodes one argument and renders it to w.
func pipeArg(cfg *MainConfig, w io.Writer, arg string) error {
	d, err := readArg(arg)
	if err != nil {
		return err
	}
	v, err := decodeInput(cfg, d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if err := renderOutput(cfg, w, v); err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	return nil
}
