package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/usda/manifest"
	"github.com/signadot/usda/usd"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func loadStage(cc *cli.Context, path string, opts ...manifest.LoadOption) (*usd.Stage, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	stage, err := manifest.Load(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error building %s: %w", displayName(path), err)
	}
	return stage, nil
}

func displayName(path string) string {
	if path == "" {
		return "-"
	}
	return path
}
