package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/usda/usd"
)

func paths(cfg *PathsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Paths.Parse(cc, args)
	if err != nil {
		return err
	}
	args, err = parseEnvExtras(cfg.Env, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: paths takes at most one manifest, got %v", cli.ErrUsage, args)
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	stage, err := loadStage(cc, path, cfg.loadOpts(path, cfg.Env)...)
	if err != nil {
		return err
	}
	return stage.Walk(func(n *usd.Node) (bool, error) {
		if _, err := fmt.Fprintf(cc.Out, "%s\t%s\n", n.SdfPath(), n.Kind()); err != nil {
			return false, err
		}
		if !cfg.Props {
			return true, nil
		}
		for _, p := range n.Properties() {
			if _, err := fmt.Fprintf(cc.Out, "%s\t%s\n", p.SdfPath(), p.Type()); err != nil {
				return false, err
			}
		}
		return true, nil
	})
}
