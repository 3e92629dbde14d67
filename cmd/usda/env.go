package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// envFunc sets the expression variable named by the dotted path before
// '=' in a to the YAML value after it, creating intermediate maps.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok || key == "" {
		return fmt.Errorf("%w: expression variable %q must be path=value", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return fmt.Errorf("expression variable %s: %w", key, err)
	}
	path := strings.Split(key, ".")
	scope, err := envScope(env, path[:len(path)-1])
	if err != nil {
		return err
	}
	scope[path[len(path)-1]] = v
	return nil
}

// envScope returns the map addressed by path, creating missing levels.
func envScope(env map[string]any, path []string) (map[string]any, error) {
	scope := env
	for i, name := range path {
		next, present := scope[name]
		if !present || next == nil {
			m := map[string]any{}
			scope[name] = m
			scope = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expression variable %s is a %T, not a map", strings.Join(path[:i+1], "."), next)
		}
		scope = m
	}
	return scope, nil
}

// parseEnvExtras treats arguments after "--" as further path=val settings.
func parseEnvExtras(env map[string]any, args []string) ([]string, error) {
	delim := -1
	for i, arg := range args {
		if arg == "--" {
			delim = i
			break
		}
	}
	if delim == -1 {
		return args, nil
	}
	for _, arg := range args[delim+1:] {
		if err := envFunc(env, arg); err != nil {
			return nil, err
		}
	}
	return args[:delim], nil
}
