package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "manifest format: json/j, yaml/y (default from the file extension)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "usda").
		WithSynopsis("usda [opts] command [opts]").
		WithDescription("usda builds usda scene description files from manifests.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return usdaMain(cfg, cc, args)
		}).
		WithSubs(
			BuildCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			PathsCommand(cfg))
}

func envOpt(env map[string]any) *cli.Opt {
	return &cli.Opt{
		Name:        "e",
		Description: "set an expression variable",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(env)), "(path=val)"),
	}
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, envOpt(cfg.Env), &cli.Opt{
		Name:        "p",
		Description: "apply a JSON patch file to the manifest",
		Type:        cli.NamedFuncOpt(cfg.patchOpt, "(filepath)"),
	})
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build [-e path=val]... [-p patch]... [manifest]").
		WithDescription(buildDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}

const buildDescription = `build renders a manifest as a usda document.

The manifest is read from the named file, or from standard input when no
file or '-' is given.  It is a YAML or JSON object:

  doc: Example
  upAxis: Y
  nodes:
  - kind: Xform
    name: root
    children:
    - kind: Mesh
      name: box
      properties:
      - {name: extent, type: float3, value: [[-1, -1, -1], [1, 1, 1]]}
      - {name: size, type: float, value: "$[size]"}

Patches given with '-p' are RFC 6902 JSON patches, in JSON or YAML, and
are applied in order before expressions are evaluated.

Strings of the form '$[expr]' are evaluated with variables set by
'-e path=val', where val is parsed as YAML.`

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, envOpt(cfg.Env))
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-e path=val]... [manifests]").
		WithDescription("view the usda rendering of manifests in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Env: map[string]any{}, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, envOpt(cfg.Env))
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] [-U n] a b").
		WithDescription("diff the usda renderings of two manifests").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PathsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathsConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, envOpt(cfg.Env))
	return cli.NewCommandAt(&cfg.Paths, "paths").
		WithAliases("p", "ls").
		WithSynopsis("paths [-props] [manifest]").
		WithDescription("list the scene paths a manifest defines").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return paths(cfg, cc, args)
		})
}
