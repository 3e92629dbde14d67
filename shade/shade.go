// Package shade builds materials and UsdPreviewSurface shader networks.
package shade

import (
	"strings"

	"github.com/signadot/usda/usd"
	"github.com/signadot/usda/value"
)

type WrapMode string

const Repeat WrapMode = "repeat"

const (
	UVTextureID       = "UsdUVTexture"
	PrimvarReaderID   = "UsdPrimvarReader_float2"
	PreviewSurfaceID  = "UsdPreviewSurface"
	outputsPrefix     = "outputs:"
	connectSuffix     = ".connect"
	defaultUVVarName  = "UVMap"
	defaultSurfaceOut = "surface"
)

func NewMaterial(name string) *usd.Node {
	return usd.NewNode(usd.Material, name)
}

// SetOutputSurface connects the material surface to a shader output.
func SetOutputSurface(material *usd.Node, out *usd.Property) (*usd.Property, error) {
	return connect(material, "outputs:surface", out, value.Token)
}

// NewImageShader returns a UsdUVTexture shader with an rgb-like float3
// output named outputName ("rgb" when empty) and, if alphaName is set, a
// float output for alpha.
func NewImageShader(name, outputName, alphaName string) *usd.Node {
	if outputName == "" {
		outputName = "rgb"
	}
	n := newShader(name, outputName, value.Float3)
	if alphaName != "" {
		mustAdd(AddOutput(n, alphaName, value.Float))
	}
	mustAdd(n.AddProperty("info:id", value.FromString(UVTextureID), value.Token, usd.Mods().WithUniform()))
	return n
}

func NewUVMapShader(name, outputName string) *usd.Node {
	if outputName == "" {
		outputName = "result"
	}
	n := newShader(name, outputName, value.Float2)
	mustAdd(n.AddProperty("info:id", value.FromString(PrimvarReaderID), value.Token, usd.Mods().WithUniform()))
	return n
}

func NewPBRShader(name, outputName string) *usd.Node {
	if outputName == "" {
		outputName = defaultSurfaceOut
	}
	n := newShader(name, outputName, value.Token)
	mustAdd(n.AddProperty("info:id", value.FromString(PreviewSurfaceID), value.Token, usd.Mods().WithUniform()))
	return n
}

func newShader(name, outputName string, t value.DataType) *usd.Node {
	n := usd.NewNode(usd.Shader, name)
	mustAdd(AddOutput(n, outputName, t))
	return n
}

// AddOutput declares a valueless shader output.
func AddOutput(n *usd.Node, name string, t value.DataType) (*usd.Property, error) {
	return n.AddProperty(outputsPrefix+name, value.Null(), t, usd.Mods().WithEmptyValue())
}

// Outputs returns the declared outputs of n in order.
func Outputs(n *usd.Node) []*usd.Property {
	var res []*usd.Property
	for _, p := range n.Properties() {
		if strings.HasPrefix(p.Name(), outputsPrefix) && !strings.HasSuffix(p.Name(), connectSuffix) {
			res = append(res, p)
		}
	}
	return res
}

func SetFile(n *usd.Node, file string) (*usd.Property, error) {
	return n.AddProperty("inputs:file", value.FromString(file), value.Asset)
}

func SetWrapS(n *usd.Node, mode WrapMode) (*usd.Property, error) {
	return n.AddProperty("inputs:wrapS", value.FromString(string(mode)), value.Token)
}

func SetWrapT(n *usd.Node, mode WrapMode) (*usd.Property, error) {
	return n.AddProperty("inputs:wrapT", value.FromString(string(mode)), value.Token)
}

// SetUVMapping connects texture coordinates to a UV reader output.
func SetUVMapping(n *usd.Node, mapping *usd.Property) (*usd.Property, error) {
	return connect(n, "inputs:st", mapping, value.Float2)
}

// SetVarName names the primvar read by a UV reader; empty means "UVMap".
func SetVarName(n *usd.Node, varName string) (*usd.Property, error) {
	if varName == "" {
		varName = defaultUVVarName
	}
	return n.AddProperty("inputs:varname", value.FromString(varName), value.Token)
}

func SetSpecular(n *usd.Node, v float64) (*usd.Property, error) {
	return n.AddProperty("inputs:specular", value.FromFloat(v), value.Float)
}

func ConnectSpecular(n *usd.Node, out *usd.Property) (*usd.Property, error) {
	return connect(n, "inputs:specular", out, value.Float)
}

func SetDiffuse(n *usd.Node, c value.Point3) (*usd.Property, error) {
	return n.AddProperty("inputs:diffuseColor", value.FromVec3(c), value.Color3f)
}

func ConnectDiffuse(n *usd.Node, out *usd.Property) (*usd.Property, error) {
	return connect(n, "inputs:diffuseColor", out, value.Color3f)
}

func SetNormal(n *usd.Node, v value.Point3) (*usd.Property, error) {
	return n.AddProperty("inputs:normal", value.FromVec3(v), value.Float3)
}

func ConnectNormal(n *usd.Node, out *usd.Property) (*usd.Property, error) {
	return connect(n, "inputs:normal", out, value.Float3)
}

func SetRoughness(n *usd.Node, v float64) (*usd.Property, error) {
	return n.AddProperty("inputs:roughness", value.FromFloat(v), value.Float)
}

func ConnectRoughness(n *usd.Node, out *usd.Property) (*usd.Property, error) {
	return connect(n, "inputs:roughness", out, value.Float)
}

func connect(n *usd.Node, input string, out *usd.Property, t value.DataType) (*usd.Property, error) {
	return n.AddProperty(input+connectSuffix, value.FromRef(out), t, usd.Mods().WithRef(false))
}

// mustAdd is for fixed declarations that cannot fail validation.
func mustAdd(p *usd.Property, err error) {
	if err != nil {
		panic(err)
	}
}
