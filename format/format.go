// Package format names the input formats a scene manifest may be written in.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

var (
	names = map[Format]string{
		YAMLFormat: "yaml",
		JSONFormat: "json",
	}
	aliases = map[string]Format{
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
	}
)

func ParseFormat(v string) (Format, error) {
	if f, ok := aliases[strings.ToLower(v)]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath guesses the format from a file extension, defaulting to YAML.
func FromPath(p string) Format {
	ext := strings.ToLower(filepath.Ext(p))
	for _, f := range AllFormats() {
		if ext == f.Suffix() {
			return f
		}
	}
	if f, err := ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return f
	}
	return YAMLFormat
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	name, ok := names[f]
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the usual file extension, including the dot.
func (f Format) Suffix() string {
	name, ok := names[f]
	if !ok {
		return ""
	}
	return "." + name
}

// AllFormats returns the formats in preference order.
func AllFormats() []Format {
	return []Format{YAMLFormat, JSONFormat}
}
