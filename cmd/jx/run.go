package main

import (
	"fmt"

	"github.com/signadot/jx/debug"
	"github.com/signadot/jx/encode"
	"github.com/signadot/jx/parse"
	"github.com/signadot/jx/query"
	"github.com/signadot/jx/textdiff"
	"github.com/signadot/jx/yamlconv"

	"github.com/scott-cotton/cli"
)

func jxFmt(cfg *FmtConfig, cc *cli.Context, args []string, wire bool) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	encOpts := cfg.encOpts(cc.Out)
	if wire {
		encOpts = append(encOpts, encode.Wire(true))
	}
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		node, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		if err := encode.Encode(node, cc.Out, encOpts...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}

func jxGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: get requires -e <expr>", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	if debug.CLI() {
		debug.Logf("get %q over %d inputs\n", cfg.Expr, len(args))
	}
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		node, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		res, err := query.Eval(node, cfg.Expr)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}

func jxDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two arguments", cli.ErrUsage)
	}
	canon := make([]string, 2)
	for i, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		node, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		canon[i] = encode.ToString(node)
	}
	if canon[0] == canon[1] {
		return nil
	}
	fmt.Fprintln(cc.Out, textdiff.Pretty(canon[0], canon[1]))
	return cli.ExitCodeErr(1)
}

func jxYAML(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		if cfg.Reverse {
			node, err := parse.Parse(d)
			if err != nil {
				return fmt.Errorf("error parsing %s: %w", arg, err)
			}
			out, err := yamlconv.Encode(node)
			if err != nil {
				return err
			}
			if _, err := cc.Out.Write(out); err != nil {
				return err
			}
			continue
		}
		node, err := yamlconv.Parse(d)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
