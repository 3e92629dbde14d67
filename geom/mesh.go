package geom

import (
	"github.com/signadot/usda/debug"
	"github.com/signadot/usda/usd"
	"github.com/signadot/usda/value"
)

type Interpolation string

const (
	Unset       Interpolation = ""
	Constant    Interpolation = "constant"
	FaceVarying Interpolation = "faceVarying"
	Vertex      Interpolation = "vertex"
	Uniform     Interpolation = "uniform"
)

// FaceIndices are the point indices of one face.
type FaceIndices []int64

func NewMesh(name string) *usd.Node {
	return usd.NewNode(usd.Mesh, name)
}

func SetExtent(n *usd.Node, min, max value.Point3) (*usd.Property, error) {
	return n.AddProperty("extent", value.FromVec3s(min, max), value.Float3)
}

// SetFaceVertexIndices adds faceVertexCounts and the flattened
// faceVertexIndices, in that order.
func SetFaceVertexIndices(n *usd.Node, faces ...FaceIndices) ([]*usd.Property, error) {
	counts := make([]int64, len(faces))
	var indices []int64
	for i, f := range faces {
		counts[i] = int64(len(f))
		indices = append(indices, f...)
	}
	cp, err := n.AddProperty("faceVertexCounts", value.FromInts(counts...), value.Int)
	if err != nil {
		return nil, err
	}
	ip, err := n.AddProperty("faceVertexIndices", value.FromInts(indices...), value.Int)
	if err != nil {
		return nil, err
	}
	return []*usd.Property{cp, ip}, nil
}

func SetPoints(n *usd.Node, points []value.Point3) (*usd.Property, error) {
	return n.AddProperty("points", value.FromVec3s(points...), value.Point3f)
}

func SetDisplayColor(n *usd.Node, colors []value.Point3, interp Interpolation) (*usd.Property, error) {
	return addPrimvar(n, "primvars:displayColor", value.FromVec3s(colors...), value.Color3f, interp, 0)
}

func SetNormals(n *usd.Node, normals []value.Point3, interp Interpolation) (*usd.Property, error) {
	return addPrimvar(n, "normals", value.FromVec3s(normals...), value.Normal3f, interp, 0)
}

func SetUV(n *usd.Node, uv []value.Point2, interp Interpolation) (*usd.Property, error) {
	return addPrimvar(n, "primvars:UVMap", value.FromVec2s(uv...), value.TexCoord2f, interp, 0)
}

func SetDoubleSided(n *usd.Node, v bool) (*usd.Property, error) {
	return n.AddProperty("doubleSided", value.FromBool(v), value.Bool)
}

// SetColor sets per vertex colors. Alpha is not representable and is
// dropped.
func SetColor(n *usd.Node, colors []value.Point4, interp Interpolation) (*usd.Property, error) {
	if debug.Geom() {
		debug.Logf("%s: SetColor drops alpha, writing color3f\n", n)
	}
	c3 := make([]value.Point3, len(colors))
	for i, c := range colors {
		c3[i] = c.XYZ()
	}
	return addPrimvar(n, "primvars:Color", value.FromVec3s(c3...), value.Color3f, interp, 0)
}

// SetMaterial binds a material node.
func SetMaterial(n *usd.Node, material *usd.Node) (*usd.Property, error) {
	return n.AddProperty("material:binding", value.FromRef(material), value.Token, usd.Mods().WithRef(true))
}

func SetSkeleton(n *usd.Node, skeleton *usd.Node) (*usd.Property, error) {
	return n.AddProperty("skel:skeleton", value.FromRef(skeleton), value.Token, usd.Mods().WithRef(true))
}

func SetSkelGeomBindTransform(n *usd.Node, m value.Matrix4) (*usd.Property, error) {
	return n.AddProperty("primvars:skel:geomBindTransform", value.FromMatrix(m), value.Matrix4d)
}

// SetSkelJointIndices adds joint indices; elementSize 0 leaves it unset.
func SetSkelJointIndices(n *usd.Node, indices []int64, interp Interpolation, elementSize int) (*usd.Property, error) {
	return addPrimvar(n, "primvars:skel:jointIndices", value.FromInts(indices...), value.Int, interp, elementSize)
}

func SetSkelJointWeights(n *usd.Node, weights []float64, interp Interpolation, elementSize int) (*usd.Property, error) {
	return addPrimvar(n, "primvars:skel:jointWeights", value.FromFloats(weights...), value.Float, interp, elementSize)
}

func addPrimvar(n *usd.Node, name string, v value.Value, t value.DataType, interp Interpolation, elementSize int) (*usd.Property, error) {
	p, err := n.AddProperty(name, v, t)
	if err != nil {
		return nil, err
	}
	if interp != Unset {
		if _, err := p.AddMetadata("interpolation", value.FromString(string(interp)), value.Token); err != nil {
			return nil, err
		}
	}
	if elementSize != 0 {
		if _, err := p.AddMetadata("elementSize", value.FromInt(int64(elementSize)), value.Int); err != nil {
			return nil, err
		}
	}
	return p, nil
}
