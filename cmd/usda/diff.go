package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/usda/encode"
	"github.com/signadot/usda/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	args, err = parseEnvExtras(cfg.Env, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Context < 0 {
		return fmt.Errorf("%w: -U must not be negative", cli.ErrUsage)
	}
	var texts [2][]string
	for i, file := range args {
		stage, err := loadStage(cc, file, cfg.loadOpts(file, cfg.Env)...)
		if err != nil {
			return err
		}
		// colors would show up as differences
		texts[i], err = encode.Stage(stage, cfg.plainEncOpts()...)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	from, to := args[0], args[1]
	edits := libdiff.Lines(texts[0], texts[1])
	if cfg.Reverse {
		edits = libdiff.Reverse(edits)
		from, to = to, from
	}
	if !libdiff.Changed(edits) {
		return nil
	}
	text := libdiff.Unified(from, to, edits, cfg.Context)
	if err := writeDiff(cc.Out, text, cfg.colorDiff(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func (cfg *DiffConfig) plainEncOpts() []encode.EncodeOption {
	c := *cfg.MainConfig
	c.Color = false
	return c.encOpts(io.Discard)
}

func (cfg *DiffConfig) colorDiff(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	return isTerminal(w)
}

func writeDiff(w io.Writer, text string, colored bool) error {
	if !colored {
		_, err := io.WriteString(w, text)
		return err
	}
	var sb strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		switch {
		case line == "":
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			sb.WriteString(color.New(color.Bold).Sprint(line))
		case strings.HasPrefix(line, "@@"):
			sb.WriteString(color.CyanString(line))
		case strings.HasPrefix(line, "+"):
			sb.WriteString(color.GreenString(line))
		case strings.HasPrefix(line, "-"):
			sb.WriteString(color.RedString(line))
		default:
			sb.WriteString(line)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
