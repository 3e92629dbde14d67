package usd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/usda/sdfpath"
	"github.com/signadot/usda/value"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a.b-c d", "a_b_c_d"},
		{"Material.001", "Material_001"},
		{"Image Texture", "Image_Texture"},
		{"already_ok", "already_ok"},
		{"", ""},
	}
	for _, tt := range tests {
		got := Sanitize(tt.in)
		if got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if again := Sanitize(got); again != got {
			t.Errorf("Sanitize not idempotent on %q: %q", got, again)
		}
	}
}

func TestValidName(t *testing.T) {
	for _, ok := range []string{"root", "a.b-c d", "_x1"} {
		if err := ValidName(ok); err != nil {
			t.Errorf("ValidName(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "1abc", "a/b", "π"} {
		if err := ValidName(bad); !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("ValidName(%q) = %v, want ErrInvalidIdentifier", bad, err)
		}
	}
}

func TestSdfPath(t *testing.T) {
	stage := NewStage("x.usda")
	root := stage.AddChild(NewNode(Xform, "root"))
	box := root.AddChild(NewNode(Mesh, "my box"))
	ext, err := box.AddProperty("extent", value.FromVec3s(value.P3(-1, -1, -1), value.P3(1, 1, 1)), value.Float3)
	if err != nil {
		t.Fatal(err)
	}
	md, err := ext.AddMetadata("interpolation", value.FromString("vertex"), value.Token)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := stage.RootLayer().SetDoc("d")
	if err != nil {
		t.Fatal(err)
	}
	orphan := NewNode(Xform, "orphan")
	unnamed := NewNode(Scope, "")
	loose, err := NewProperty("loose", value.FromInt(1), value.Int)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		t    value.Target
		want string
	}{
		{"root", root, "/root"},
		{"child", box, "/root/my_box"},
		{"property", ext, "/root/my_box.extent"},
		{"property metadata", md, "/root/my_box.extent.interpolation"},
		{"document", stage.RootLayer(), "/"},
		{"document metadata", doc, "/.doc"},
		{"orphan", orphan, "/orphan"},
		{"unnamed orphan", unnamed, "/"},
		{"unattached property", loose, "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.SdfPath().String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
	if !unnamed.SdfPath().IsEmpty() {
		t.Errorf("unnamed orphan path should be empty")
	}
}

func TestPathFollowsTree(t *testing.T) {
	child := NewNode(Mesh, "c")
	if got := child.SdfPath().String(); got != "/c" {
		t.Errorf("before attach: %s", got)
	}
	parent := NewNode(Xform, "p")
	parent.AddChild(child)
	if got := child.SdfPath().String(); got != "/p/c" {
		t.Errorf("after attach: %s", got)
	}
	top := NewNode(Xform, "top")
	top.AddChild(parent)
	if got := child.SdfPath().String(); got != "/top/p/c" {
		t.Errorf("after grandparent attach: %s", got)
	}
	if child.Root() != top {
		t.Errorf("Root() = %s", child.Root().SdfPath())
	}
}

func TestAttachOnce(t *testing.T) {
	a := NewNode(Xform, "a")
	b := NewNode(Xform, "b")
	c := a.AddChild(NewNode(Mesh, "c"))

	expectPanic(t, ErrAlreadyAttached, func() { b.AddChild(c) })
	expectPanic(t, ErrCycle, func() { c.AddChild(a) })
	expectPanic(t, ErrCycle, func() { b.AddChild(b) })

	stage := NewStage("x.usda")
	stage.AddChild(b)
	expectPanic(t, ErrAlreadyAttached, func() { stage.AddChild(b) })
	expectPanic(t, ErrAlreadyAttached, func() { a.AddChild(b) })

	p, err := a.AddProperty("p", value.FromInt(1), value.Int)
	if err != nil {
		t.Fatal(err)
	}
	expectPanic(t, ErrAlreadyAttached, func() { b.AttachProperty(p) })
}

func expectPanic(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Errorf("got panic %v, want %v", r, want)
		}
	}()
	f()
}

func TestConstruction(t *testing.T) {
	n := NewNode(Mesh, "m")
	ref := NewNode(Material, "mat")
	tests := []struct {
		name string
		pn   string
		v    value.Value
		typ  value.DataType
		mods Modifiers
		want error
	}{
		{"ok", "p", value.FromVec3(value.P3(1, 2, 3)), value.Point3f, Mods(), nil},
		{"empty name", "", value.FromInt(1), value.Int, Mods(), ErrInvalidIdentifier},
		{"float3 as float2", "p", value.FromVec3(value.P3(1, 2, 3)), value.Float2, Mods(), ErrTypeMismatch},
		{"ref without modifier", "p", value.FromRef(ref), value.Token, Mods(), ErrTypeMismatch},
		{"literal with ref modifier", "p", value.FromString("x"), value.Token, Mods().WithRef(true), ErrTypeMismatch},
		{"ref", "p", value.FromRef(ref), value.Token, Mods().WithRef(true), nil},
		{"typed nil ref", "p", value.FromRef((*Node)(nil)), value.Token, Mods().WithRef(true), ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.AddProperty(tt.pn, tt.v, tt.typ, tt.mods)
			if tt.want == nil && err != nil {
				t.Errorf("unexpected error %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNodeString(t *testing.T) {
	root := NewNode(Xform, "root")
	box := root.AddChild(NewNode(Mesh, "box.1"))
	if got := fmt.Sprintf("%s", box); got != "/root/box_1" {
		t.Errorf("got %q", got)
	}
}

func TestGetProperty(t *testing.T) {
	n := NewNode(Mesh, "m")
	first, _ := n.AddProperty("dup", value.FromInt(1), value.Int)
	n.AddProperty("dup", value.FromInt(2), value.Int)
	if got := n.GetProperty("dup"); got != first {
		t.Errorf("GetProperty returned %v, want the first match", got)
	}
	if got := n.GetProperty("missing"); got != nil {
		t.Errorf("GetProperty(missing) = %v", got)
	}
	var names []string
	for _, p := range n.Properties() {
		names = append(names, p.Name())
	}
	if diff := cmp.Diff([]string{"dup", "dup"}, names); diff != "" {
		t.Errorf("insertion order (-want +got):\n%s", diff)
	}
}

func TestAddAPISchemas(t *testing.T) {
	n := NewNode(Mesh, "m")
	if _, err := n.AddMetadata("active", value.FromBool(true), value.Bool); err != nil {
		t.Fatal(err)
	}
	for _, s := range []Schema{SkelBindingAPI, MaterialBindingAPI, SkelBindingAPI} {
		if err := n.AddAPISchemas(s); err != nil {
			t.Fatal(err)
		}
	}
	if len(n.Metadata()) != 2 {
		t.Fatalf("got %d metadata, want 2", len(n.Metadata()))
	}
	m := n.GetMetadata("apiSchemas")
	if m == nil || !m.Modifiers().Prepend {
		t.Fatalf("apiSchemas metadata missing or not prepend: %v", m)
	}
	want := []string{"SkelBindingAPI", "MaterialBindingAPI", "SkelBindingAPI"}
	if diff := cmp.Diff(want, m.Value().Strings); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSetReferenceFile(t *testing.T) {
	n := NewNode(Mesh, "m")
	m, err := n.SetReferenceFile("box.usda", false)
	if err != nil {
		t.Fatal(err)
	}
	if m.Type() != value.Asset || m.Modifiers().Prepend {
		t.Errorf("got type %s prepend %t", m.Type(), m.Modifiers().Prepend)
	}
	m, err = n.SetReferenceFile("box.usda", true)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Modifiers().Prepend {
		t.Errorf("prepend not set")
	}
}

func TestFind(t *testing.T) {
	stage := NewStage("x.usda")
	root := stage.AddChild(NewNode(Xform, "root"))
	box := root.AddChild(NewNode(Mesh, "box"))
	shader := stage.AddChild(NewNode(Shader, "tex"))
	out, err := shader.AddProperty("outputs:rgb", value.Null(), value.Float3, Mods().WithEmptyValue())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		want value.Target
	}{
		{"/root", root},
		{"/root/box", box},
		{"/tex.outputs:rgb", out},
		{"/root/missing", nil},
		{"/root/box.missing", nil},
		{"/nope", nil},
	}
	for _, tt := range tests {
		p, err := sdfpath.Parse(tt.path)
		if err != nil {
			t.Fatal(err)
		}
		got, ok := stage.Find(p)
		if tt.want == nil {
			if ok {
				t.Errorf("Find(%s) = %v, want nothing", tt.path, got)
			}
			continue
		}
		if !ok || got != tt.want {
			t.Errorf("Find(%s) = %v, %t", tt.path, got, ok)
		}
	}
	if _, err := stage.FindString("/root/missing"); !errors.Is(err, sdfpath.ErrBadPath) {
		t.Errorf("FindString missing = %v", err)
	}
}

func TestWalk(t *testing.T) {
	stage := NewStage("x.usda")
	a := stage.AddChild(NewNode(Xform, "a"))
	a.AddChild(NewNode(Mesh, "b")).AddChild(NewNode(Mesh, "c"))
	a.AddChild(NewNode(Mesh, "d"))
	stage.AddChild(NewNode(Material, "e"))
	var got []string
	err := stage.Walk(func(n *Node) (bool, error) {
		got = append(got, n.SdfPath().String())
		return n.Name() != "b", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/a", "/a/b", "/a/d", "/e"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestModifiers(t *testing.T) {
	base := Mods()
	u := base.WithUniform()
	if base.Uniform {
		t.Errorf("WithUniform mutated its receiver")
	}
	if !u.Uniform {
		t.Errorf("WithUniform did not set Uniform")
	}
	if !Mods().WithRef(true).ShowRefTag() {
		t.Errorf("WithRef(true) should show the tag")
	}
	if Mods().WithRef(false).ShowRefTag() {
		t.Errorf("WithRef(false) should hide the tag")
	}
	if Mods().ShowRefTag() {
		t.Errorf("non reference should not show the tag")
	}
	m := mergeMods([]Modifiers{Mods().WithPrepend(), Mods().WithUniform()})
	if !m.Prepend || !m.Uniform || m.Reference {
		t.Errorf("mergeMods = %+v", m)
	}
}
