package sdfpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		p    Path
		want string
	}{
		{"empty", Path{}, "/"},
		{"root", New("root"), "/root"},
		{"child", New("root").AppendChild("box"), "/root/box"},
		{"property", New("root").AppendChild("box").AppendProperty("extent"), "/root/box.extent"},
		{"connect", New("Mat", "PBR").AppendProperty("outputs:surface"), "/Mat/PBR.outputs:surface"},
		{"empty property", Path{}.AppendProperty("doc"), "/.doc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendDoesNotAlias(t *testing.T) {
	base := New("a", "b")
	x := base.AppendChild("x")
	y := base.AppendChild("y")
	if x.String() != "/a/b/x" || y.String() != "/a/b/y" {
		t.Errorf("got %s and %s", x, y)
	}
	prop := base.AppendProperty("p")
	if base.String() != "/a/b" {
		t.Errorf("AppendProperty modified receiver: %s", base)
	}
	if prop.String() != "/a/b.p" {
		t.Errorf("got %s", prop)
	}
	parent := base.Parent()
	if parent.AppendChild("z"); base.String() != "/a/b" {
		t.Errorf("Parent aliases receiver: %s", base)
	}
}

func TestParse(t *testing.T) {
	p, err := Parse("/root/box.extent")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"root", "box.extent"}, p.Segments()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	owner, prop, ok := p.Split()
	if !ok || prop != "extent" || owner.String() != "/root/box" {
		t.Errorf("Split() = %s, %q, %t", owner, prop, ok)
	}
	if !New("root").AppendChild("box").AppendProperty("extent").Equal(p) {
		t.Errorf("parsed path not equal to built path")
	}

	root, err := Parse("/")
	if err != nil || !root.IsEmpty() {
		t.Errorf("Parse(/) = %v, %v", root, err)
	}

	for _, bad := range []string{"", "root", "/a//b", "/a.b/c"} {
		if _, err := Parse(bad); !errors.Is(err, ErrBadPath) {
			t.Errorf("Parse(%q) = %v, want ErrBadPath", bad, err)
		}
	}
}

func TestSplitNode(t *testing.T) {
	p := New("root", "box")
	if _, _, ok := p.Split(); ok {
		t.Errorf("node path split as property")
	}
	if got := p.Parent().String(); got != "/root" {
		t.Errorf("Parent() = %s", got)
	}
	if got := p.Name(); got != "box" {
		t.Errorf("Name() = %s", got)
	}
}
