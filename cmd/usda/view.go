package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/usda/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	args, err = parseEnvExtras(cfg.Env, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeColors(encode.NewColors()))
	for i, file := range args {
		stage, err := loadStage(cc, file, cfg.loadOpts(file, cfg.Env)...)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode(stage, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
