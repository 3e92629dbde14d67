package manifest

import "github.com/signadot/usda/format"

type loadConfig struct {
	format   format.Format
	filename string
	env      map[string]any
	patches  [][]byte
	strict   bool
}

type LoadOption func(*loadConfig)

// WithFormat sets the input format, YAML by default.
func WithFormat(f format.Format) LoadOption {
	return func(c *loadConfig) { c.format = f }
}

// WithFilename names the resulting stage.
func WithFilename(name string) LoadOption {
	return func(c *loadConfig) { c.filename = name }
}

// WithEnv provides the variables visible to $[...] expressions.
func WithEnv(env map[string]any) LoadOption {
	return func(c *loadConfig) { c.env = env }
}

// WithPatches adds RFC 6902 patches, in YAML or JSON, applied in order
// before decoding.
func WithPatches(patches ...[]byte) LoadOption {
	return func(c *loadConfig) { c.patches = append(c.patches, patches...) }
}

// Strict rejects unknown fields and node names that are not identifiers
// even after sanitizing. Names like "Material.001" are still accepted and
// sanitized.
func Strict(v bool) LoadOption {
	return func(c *loadConfig) { c.strict = v }
}
