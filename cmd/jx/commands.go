package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jx").
		WithSynopsis("jx [opts] command [opts]").
		WithDescription("jx is a tool for working with JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jxMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			MinCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			YAMLCommand(cfg))
}

func jxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("Parse JSON documents and pretty-print them (stdin when no files).").
		WithRun(func(cc *cli.Context, args []string) error {
			return jxFmt(cfg, cc, args, false)
		})
	cfg.Fmt = cmd
	return cmd
}

func MinCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("min").
		WithAliases("m").
		WithSynopsis("min [files]").
		WithDescription("Parse JSON documents and print them minimized.").
		WithRun(func(cc *cli.Context, args []string) error {
			return jxFmt(cfg, cc, args, true)
		})
	cfg.Fmt = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "query").
		WithSynopsis("get -e <expr> [files]").
		WithDescription("Evaluate an expression against JSON documents.").
		WithOpts(&cli.Opt{
			Name:        "e",
			Description: "expression to evaluate",
			Type:        cli.NamedFuncOpt(cfg.exprOpt, "(expr)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return jxGet(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <a.json> <b.json>").
		WithDescription("Canonicalize two documents and show how their encodings differ.").
		WithRun(func(cc *cli.Context, args []string) error {
			return jxDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func YAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &YAMLConfig{MainConfig: mainCfg}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("yaml").
		WithAliases("y").
		WithSynopsis("yaml [-r] [files]").
		WithDescription("Convert YAML to JSON, or JSON to YAML with -r.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jxYAML(cfg, cc, args)
		})
	cfg.YAML = cmd
	return cmd
}
