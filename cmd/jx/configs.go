package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jx/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Wire  bool `cli:"name=wire aliases=w desc='minimized output'"`
	Color bool `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Wire(cfg.Wire),
	}
	if cfg.Color {
		return append(res, encode.WithColors(encode.NewColors()))
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.WithColors(encode.NewColors()))
	}
	return res
}

// readArg reads a whole input, "-" meaning stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return d, nil
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Expr string
	Get  *cli.Command
}

func (cfg *GetConfig) exprOpt(cc *cli.Context, a string) (any, error) {
	cfg.Expr = a
	return a, nil
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type YAMLConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r aliases=reverse desc='convert JSON to YAML'"`

	YAML *cli.Command
}
