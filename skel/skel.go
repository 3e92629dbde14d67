// Package skel builds skeleton nodes.
package skel

import (
	"github.com/signadot/usda/usd"
	"github.com/signadot/usda/value"
)

func NewSkelRoot(name string) *usd.Node  { return usd.NewNode(usd.SkelRoot, name) }
func NewSkeleton(name string) *usd.Node  { return usd.NewNode(usd.Skeleton, name) }
func NewAnimation(name string) *usd.Node { return usd.NewNode(usd.SkelAnimation, name) }

// SetJointNames sets the uniform joints token array. Names are joint paths
// such as "hip/knee".
func SetJointNames(n *usd.Node, joints ...string) (*usd.Property, error) {
	return n.AddProperty("joints", value.FromStrings(joints...), value.Token, usd.Mods().WithUniform())
}

func SetBindTransforms(n *usd.Node, ms ...value.Matrix4) (*usd.Property, error) {
	return n.AddProperty("bindTransforms", value.FromMatrices(ms...), value.Matrix4d, usd.Mods().WithUniform())
}

func SetRestTransforms(n *usd.Node, ms ...value.Matrix4) (*usd.Property, error) {
	return n.AddProperty("restTransforms", value.FromMatrices(ms...), value.Matrix4d, usd.Mods().WithUniform())
}
