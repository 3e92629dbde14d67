package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/usda/encode"
	"github.com/signadot/usda/format"
	"github.com/signadot/usda/manifest"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	CRLF   bool `cli:"name=crlf desc='end lines with CRLF'"`
	Spaces int  `cli:"name=spaces desc='indent with n spaces instead of tabs'"`
	Strict bool `cli:"name=strict desc='reject unknown manifest fields and invalid names'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// stageName is the file name recorded in the stage built from the
// manifest at path.
func (cfg *MainConfig) stageName(path string) string {
	if cfg.Out != "" && cfg.Out != "-" {
		return filepath.Base(cfg.Out)
	}
	if path == "" || path == "-" {
		return "stage.usda"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".usda"
}

func (cfg *MainConfig) loadOpts(path string, env map[string]any, patches ...[]byte) []manifest.LoadOption {
	fmat := format.FromPath(path)
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []manifest.LoadOption{
		manifest.WithFormat(fmat),
		manifest.WithFilename(cfg.stageName(path)),
		manifest.WithEnv(env),
		manifest.WithPatches(patches...),
		manifest.Strict(cfg.Strict),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.CRLF {
		res = append(res, encode.LineEnding("\r\n"))
	}
	if cfg.Spaces > 0 {
		res = append(res, encode.Indent(strings.Repeat(" ", cfg.Spaces)))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	if isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type BuildConfig struct {
	*MainConfig
	Env     map[string]any
	Patches [][]byte

	ShowEnv bool `cli:"name=s aliases=show desc='show the expression environment'"`

	Build *cli.Command
}

func (cfg *BuildConfig) patchOpt(_ *cli.Context, a string) (any, error) {
	d, err := os.ReadFile(a)
	if err != nil {
		return nil, fmt.Errorf("could not read patch %q: %w", a, err)
	}
	cfg.Patches = append(cfg.Patches, d)
	return nil, nil
}

type ViewConfig struct {
	*MainConfig
	Env map[string]any

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Env     map[string]any
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Context int  `cli:"name=U aliases=unified desc='lines of context'"`

	Diff *cli.Command
}

type PathsConfig struct {
	*MainConfig
	Env   map[string]any
	Props bool `cli:"name=props desc='list properties too'"`

	Paths *cli.Command
}
