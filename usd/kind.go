package usd

import (
	"fmt"
	"strings"
)

// Kind is the schema type written after "def" in a node header.
type Kind string

const (
	Xform         Kind = "Xform"
	Mesh          Kind = "Mesh"
	Scope         Kind = "Scope"
	Shader        Kind = "Shader"
	Material      Kind = "Material"
	SkelRoot      Kind = "SkelRoot"
	Skeleton      Kind = "Skeleton"
	SkelAnimation Kind = "SkelAnimation"
)

func Kinds() []Kind {
	return []Kind{
		Xform,
		Mesh,
		Scope,
		Shader,
		Material,
		SkelRoot,
		Skeleton,
		SkelAnimation,
	}
}

func ParseKind(v string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == v {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown node kind %q", ErrInvalidIdentifier, v)
}

func (k Kind) String() string { return string(k) }

// Schema names an applied API schema, listed in the apiSchemas metadata.
type Schema string

const (
	SkelBindingAPI     Schema = "SkelBindingAPI"
	MaterialBindingAPI Schema = "MaterialBindingAPI"
)

var nameReplacer = strings.NewReplacer(".", "_", "-", "_", " ", "_")

// Sanitize makes name usable as a path segment by replacing '.', '-' and
// ' ' with '_'. It is idempotent.
func Sanitize(name string) string {
	return nameReplacer.Replace(name)
}

// ValidName reports whether name, once sanitized, is a non empty
// identifier made of letters, digits and underscores.
func ValidName(name string) error {
	s := Sanitize(name)
	if s == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidIdentifier)
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return fmt.Errorf("%w: %q starts with a digit", ErrInvalidIdentifier, name)
			}
		default:
			return fmt.Errorf("%w: %q contains %q", ErrInvalidIdentifier, name, r)
		}
	}
	return nil
}
