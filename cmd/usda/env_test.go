package main

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	for _, a := range []string{"size=2", "box.name=cube", "box.scale=0.5", "tags=[a, b]"} {
		if err := envFunc(env, a); err != nil {
			t.Fatal(err)
		}
	}
	want := map[string]any{
		"size": uint64(2),
		"box":  map[string]any{"name": "cube", "scale": 0.5},
		"tags": []any{"a", "b"},
	}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := envFunc(env, "size.x=1"); err == nil {
		t.Errorf("expected an error setting through a scalar")
	}
	if err := envFunc(env, "nokey"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v, want ErrUsage", err)
	}
	if err := envFunc(env, "=1"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("empty path: got %v, want ErrUsage", err)
	}
}

func TestQuietAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{ReplaceAttr: quietAttrs}))
	log.Info("wrote stage", "file", "box.usda")
	log.Warn("careful")
	want := "msg=\"wrote stage\" file=box.usda\nlevel=WARN msg=careful\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseEnvExtras(t *testing.T) {
	env := map[string]any{}
	args, err := parseEnvExtras(env, []string{"scene.yaml", "--", "a=1", "b=x"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"scene.yaml"}, args); diff != "" {
		t.Errorf("args (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"a": uint64(1), "b": "x"}, env); diff != "" {
		t.Errorf("env (-want +got):\n%s", diff)
	}
}

func TestStageName(t *testing.T) {
	tests := []struct {
		out, in, want string
	}{
		{"", "", "stage.usda"},
		{"", "-", "stage.usda"},
		{"", "dir/scene.yaml", "scene.usda"},
		{"", "scene.json", "scene.usda"},
		{"out/box.usda", "scene.yaml", "box.usda"},
		{"-", "scene.yaml", "scene.usda"},
	}
	for _, tt := range tests {
		cfg := &MainConfig{Out: tt.out}
		if got := cfg.stageName(tt.in); got != tt.want {
			t.Errorf("stageName(%q) with -o %q: got %q, want %q", tt.in, tt.out, got, tt.want)
		}
	}
}
