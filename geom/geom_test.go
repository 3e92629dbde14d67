package geom_test

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/usda/debug"
	"github.com/signadot/usda/encode"
	"github.com/signadot/usda/geom"
	"github.com/signadot/usda/usd"
	"github.com/signadot/usda/value"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestBox(t *testing.T) {
	stage := usd.NewStage("box.usda")
	root := stage.AddChild(geom.NewXform("root"))
	box := root.AddChild(geom.NewMesh("box"))
	must(geom.SetExtent(box, value.P3(-1, -1, -1), value.P3(1, 1, 1)))
	must(geom.SetFaceVertexIndices(box, geom.FaceIndices{0, 1, 3, 2}, geom.FaceIndices{2, 3, 5}))
	must(geom.SetPoints(box, []value.Point3{value.P3(-1, -1, -1), value.P3(1, -1, -1)}))
	must(geom.SetDisplayColor(box, []value.Point3{value.P3(0.5, 0.5, 0.5)}, geom.Constant))
	must(geom.SetTranslate(box, -1, 0, 0))
	must(geom.SetXformOpOrder(box, []geom.XformOp{geom.Translate, geom.RotateZ, geom.Scale}, true))

	got := must(encode.Node(root))
	want := []string{
		`def Xform "root"`,
		"{",
		`	def Mesh "box"`,
		"	{",
		"		float3[] extent = [(-1, -1, -1), (1, 1, 1)]",
		"		int[] faceVertexCounts = [4, 3]",
		"		int[] faceVertexIndices = [0, 1, 3, 2, 2, 3, 5]",
		"		point3f[] points = [(-1, -1, -1), (1, -1, -1)]",
		"		color3f[] primvars:displayColor = [(0.5, 0.5, 0.5)] (",
		`			interpolation = "constant"`,
		"		)",
		"		float3d xformOp:translate = (-1, 0, 0)",
		`		uniform token[] xformOpOrder = ["xformOp:translate", "xformOp:rotateZ", "xformOp:scale"]`,
		"	}",
		"}",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestXformOps(t *testing.T) {
	n := geom.NewXform("x")
	must(geom.SetRotateXYZ(n, 0, 90, 0))
	must(geom.SetRotateX(n, 45))
	must(geom.SetScale(n, 2, 2, 2))
	must(geom.SetTransform(n, value.Identity()))
	must(geom.SetXformOpOrder(n, nil, false))
	var got []string
	for _, p := range n.Properties() {
		got = append(got, must(encode.Property(p))...)
	}
	want := []string{
		"float3 xformOp:rotateXYZ = (0, 90, 0)",
		"float xformOp:rotateX = 45",
		"float3 xformOp:scale = (2, 2, 2)",
		"matrix4d xformOp:transform = ( (1, 0, 0, 0), (0, 1, 0, 0), (0, 0, 1, 0), (0, 0, 0, 1) )",
		"token[] xformOpOrder = []",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestBindings(t *testing.T) {
	stage := usd.NewStage("b.usda")
	mat := stage.AddChild(usd.NewNode(usd.Material, "Material.001"))
	sk := stage.AddChild(usd.NewNode(usd.Skeleton, "Armature"))
	mesh := stage.AddChild(geom.NewMesh("body"))
	must(geom.SetMaterial(mesh, mat))
	must(geom.SetSkeleton(mesh, sk))
	must(geom.SetSkelJointIndices(mesh, []int64{0, 1}, geom.Vertex, 1))
	must(geom.SetSkelJointWeights(mesh, []float64{1, 0.25}, geom.Unset, 0))
	must(geom.SetDoubleSided(mesh, true))

	got := must(encode.Node(mesh))
	want := []string{
		`def Mesh "body"`,
		"{",
		"	rel material:binding = </Material_001>",
		"	rel skel:skeleton = </Armature>",
		"	int[] primvars:skel:jointIndices = [0, 1] (",
		`		interpolation = "vertex"`,
		"		elementSize = 1",
		"	)",
		"	float[] primvars:skel:jointWeights = [1, 0.25]",
		"	bool doubleSided = true",
		"}",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSetColorDropsAlpha(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := debug.SetOutput(buf)
	defer debug.SetOutput(old)

	m := geom.NewMesh("m")
	p := must(geom.SetColor(m, []value.Point4{value.P4(1, 0.5, 0, 0.2)}, geom.FaceVarying))
	if p.Type() != value.Color3f {
		t.Errorf("type %s, want color3f", p.Type())
	}
	if diff := cmp.Diff([]value.Point3{value.P3(1, 0.5, 0)}, p.Value().Vec3s); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if debug.Geom() && !strings.Contains(buf.String(), "alpha") {
		t.Errorf("expected a debug line, got %q", buf.String())
	}
}

func TestUVAndNormals(t *testing.T) {
	m := geom.NewMesh("m")
	uv := must(geom.SetUV(m, []value.Point2{value.P2(0, 1)}, geom.FaceVarying))
	nm := must(geom.SetNormals(m, []value.Point3{value.P3(0, 0, 1)}, geom.Unset))
	if uv.Type() != value.TexCoord2f || nm.Type() != value.Normal3f {
		t.Errorf("got %s and %s", uv.Type(), nm.Type())
	}
	if len(nm.Metadata()) != 0 {
		t.Errorf("unset interpolation should add no metadata")
	}
	lines := must(encode.Property(uv))
	if lines[0] != "texCoord2f[] primvars:UVMap = [(0, 1)] (" {
		t.Errorf("got %q", lines[0])
	}
}

func Example() {
	stage := usd.NewStage("hello.usda")
	must(stage.RootLayer().SetDoc("Example"))
	root := stage.AddChild(geom.NewXform("root"))
	box := root.AddChild(geom.NewMesh("box"))
	must(geom.SetExtent(box, value.P3(-1, -1, -1), value.P3(1, 1, 1)))
	must(geom.SetTranslate(box, 0, 2, 0))
	if err := encode.Encode(stage, os.Stdout, encode.Indent("  ")); err != nil {
		fmt.Println(err)
	}
	// Output:
	// #usda 1.0
	// (
	//   doc = "Example"
	// )
	// def Xform "root"
	// {
	//   def Mesh "box"
	//   {
	//     float3[] extent = [(-1, -1, -1), (1, 1, 1)]
	//     float3d xformOp:translate = (0, 2, 0)
	//   }
	// }
}
