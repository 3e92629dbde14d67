package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/usda/encode"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	args, err = parseEnvExtras(cfg.Env, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: build takes at most one manifest, got %v", cli.ErrUsage, args)
	}
	if cfg.ShowEnv {
		d, err := yaml.Marshal(cfg.Env)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	stage, err := loadStage(cc, path, cfg.loadOpts(path, cfg.Env, cfg.Patches...)...)
	if err != nil {
		return err
	}
	if err := encode.Encode(stage, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	if cfg.Out != "" && cfg.Out != "-" {
		theLog.Info("wrote stage", "file", cfg.Out, "nodes", len(stage.Children()))
	}
	return nil
}
