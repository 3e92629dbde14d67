// Package geom builds transform and mesh nodes.
//
// The functions here only add fixed properties to a *usd.Node; they work on
// any node, whatever its kind.
package geom

import (
	"github.com/signadot/usda/usd"
	"github.com/signadot/usda/value"
)

type XformOp string

const (
	Translate XformOp = "xformOp:translate"
	RotateX   XformOp = "xformOp:rotateX"
	RotateY   XformOp = "xformOp:rotateY"
	RotateZ   XformOp = "xformOp:rotateZ"
	RotateXYZ XformOp = "xformOp:rotateXYZ"
	Scale     XformOp = "xformOp:scale"
	Transform XformOp = "xformOp:transform"
)

func NewXform(name string) *usd.Node {
	return usd.NewNode(usd.Xform, name)
}

// SetRotateXYZ sets Euler angles in degrees.
func SetRotateXYZ(n *usd.Node, x, y, z float64) (*usd.Property, error) {
	return n.AddProperty(string(RotateXYZ), value.FromVec3(value.P3(x, y, z)), value.Float3)
}

func SetScale(n *usd.Node, x, y, z float64) (*usd.Property, error) {
	return n.AddProperty(string(Scale), value.FromVec3(value.P3(x, y, z)), value.Float3)
}

func SetTranslate(n *usd.Node, x, y, z float64) (*usd.Property, error) {
	return n.AddProperty(string(Translate), value.FromVec3(value.P3(x, y, z)), value.Float3d)
}

func SetRotateX(n *usd.Node, x float64) (*usd.Property, error) {
	return n.AddProperty(string(RotateX), value.FromFloat(x), value.Float)
}

func SetRotateY(n *usd.Node, y float64) (*usd.Property, error) {
	return n.AddProperty(string(RotateY), value.FromFloat(y), value.Float)
}

func SetRotateZ(n *usd.Node, z float64) (*usd.Property, error) {
	return n.AddProperty(string(RotateZ), value.FromFloat(z), value.Float)
}

func SetTransform(n *usd.Node, m value.Matrix4) (*usd.Property, error) {
	return n.AddProperty(string(Transform), value.FromMatrix(m), value.Matrix4d)
}

// SetXformOpOrder lists the ops in the order they apply.
func SetXformOpOrder(n *usd.Node, ops []XformOp, uniform bool) (*usd.Property, error) {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}
	mods := usd.Mods()
	if uniform {
		mods = mods.WithUniform()
	}
	return n.AddProperty("xformOpOrder", value.FromStrings(names...), value.Token, mods)
}
