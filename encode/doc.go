// Package encode renders scene trees to usda text.
//
// Rendering is line based: every function returns the ordered lines of its
// subject, without terminators, and nested content is indented one level
// per depth. The output of Stage joined by a line terminator is the full
// document.
//
// # Usage
//
//	stage := usd.NewStage("hello.usda")
//	root := stage.AddChild(usd.NewNode(usd.Xform, "root"))
//	_, err := root.AddProperty("xformOp:translate",
//	    value.FromVec3(value.P3(-1, 0, 0)), value.Float3d)
//	...
//	lines, err := encode.Stage(stage)
//	// #usda 1.0
//	// def Xform "root"
//	// {
//	//	float3d xformOp:translate = (-1, 0, 0)
//	// }
//
//	// Write with CRLF terminators and colors
//	err = encode.Encode(stage, w,
//	    encode.LineEnding("\r\n"),
//	    encode.EncodeColors(encode.NewColors()))
//
// # Declarations
//
// A declaration is written as
//
//	[rel ][prepend ][uniform ][type[[]] ]name[ = value]
//
// Metadata never carries a type. References carry "rel" and no type unless
// their tag is hidden, in which case the type is kept. A property with
// metadata opens a parenthesized block on its declaration line.
//
// # Errors
//
// Rendering fails with ErrNullValue when a literal value is absent, and
// with ErrUnsupportedType when a payload has no rendering rule. A failure
// anywhere aborts the whole call.
//
// # Related Packages
//
//   - github.com/signadot/usda/usd - the scene tree
//   - github.com/signadot/usda/value - value payloads
package encode
