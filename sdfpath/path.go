// Package sdfpath provides slash separated scene paths such as
// "/root/box" or "/root/box.extent".
//
// A Path is a list of segments. Node paths append one segment per ancestor;
// property paths append ".name" to the last segment. Paths are plain values
// and are computed on demand by the objects that own them, so they always
// reflect the live tree shape.
package sdfpath

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadPath = errors.New("bad path")

type Path struct {
	segs []string
}

// New makes a path from its segments.
func New(segs ...string) Path {
	if len(segs) == 0 {
		return Path{}
	}
	return Path{segs: append([]string(nil), segs...)}
}

func (p Path) IsEmpty() bool { return len(p.segs) == 0 }

func (p Path) Segments() []string {
	return append([]string(nil), p.segs...)
}

// AppendChild returns p extended by a child segment.
func (p Path) AppendChild(name string) Path {
	segs := make([]string, len(p.segs), len(p.segs)+1)
	copy(segs, p.segs)
	return Path{segs: append(segs, name)}
}

// AppendProperty returns p with ".name" appended to its last segment. On an
// empty path the result has the single segment ".name".
func (p Path) AppendProperty(name string) Path {
	if len(p.segs) == 0 {
		return Path{segs: []string{"." + name}}
	}
	segs := p.Segments()
	segs[len(segs)-1] += "." + name
	return Path{segs: segs}
}

// Parent drops the last segment.
func (p Path) Parent() Path {
	if len(p.segs) <= 1 {
		return Path{}
	}
	return Path{segs: p.segs[:len(p.segs)-1 : len(p.segs)-1]}
}

// Name is the last segment, or "" for the empty path.
func (p Path) Name() string {
	if len(p.segs) == 0 {
		return ""
	}
	return p.segs[len(p.segs)-1]
}

// Split separates a property path into the path of its owner and the
// property name. ok is false if p does not denote a property.
func (p Path) Split() (owner Path, prop string, ok bool) {
	last := p.Name()
	i := strings.IndexByte(last, '.')
	if i == -1 {
		return p, "", false
	}
	segs := p.Segments()
	segs[len(segs)-1] = last[:i]
	if segs[len(segs)-1] == "" {
		segs = segs[:len(segs)-1]
	}
	return Path{segs: segs}, last[i+1:], true
}

func (p Path) String() string {
	return "/" + strings.Join(p.segs, "/")
}

func (p Path) Equal(o Path) bool {
	if len(p.segs) != len(o.segs) {
		return false
	}
	for i := range p.segs {
		if p.segs[i] != o.segs[i] {
			return false
		}
	}
	return true
}

// Parse reads a path in the form produced by String. Leading "/" is
// required and empty segments are rejected; "/" alone is the empty path.
func Parse(s string) (Path, error) {
	if !strings.HasPrefix(s, "/") {
		return Path{}, fmt.Errorf("%w: %q is not absolute", ErrBadPath, s)
	}
	s = s[1:]
	if s == "" {
		return Path{}, nil
	}
	segs := strings.Split(s, "/")
	for i, seg := range segs {
		if seg == "" {
			return Path{}, fmt.Errorf("%w: empty segment at %d in %q", ErrBadPath, i, "/"+s)
		}
		if strings.Count(seg, ".") > 0 && i != len(segs)-1 {
			return Path{}, fmt.Errorf("%w: property in non terminal segment %q", ErrBadPath, seg)
		}
	}
	return Path{segs: segs}, nil
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Path) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}
