// Package usd provides the in-memory scene description tree that the
// encode package renders as usda text.
//
// # Overview
//
// A Stage owns a root layer Document and an ordered list of top level
// Nodes. Each Node (a prim) has a Kind, a sanitized name, and ordered lists
// of Metadata, Properties and child Nodes. Properties may carry Metadata of
// their own. Insertion order is kept everywhere and is the order of the
// rendered output.
//
//	stage := usd.NewStage("hello.usda")
//	root := stage.AddChild(usd.NewNode(usd.Xform, "root"))
//	box := root.AddChild(usd.NewNode(usd.Mesh, "box"))
//	_, err := box.AddProperty("extent",
//	    value.FromVec3s(value.P3(-1, -1, -1), value.P3(1, 1, 1)), value.Float3)
//
// # Ownership
//
// A node is attached exactly once, with Node.AddChild or Stage.AddChild;
// attaching it a second time, or under one of its own descendants, panics
// with ErrAlreadyAttached or ErrCycle. Attributes are likewise attached to a
// single owner. Nothing is ever detached.
//
// # Paths
//
// Every node and attribute computes its path on demand by walking up its
// owners, so a path always reflects the tree as it is when asked:
//
//	box.SdfPath().String()                       // "/root/box"
//	box.GetProperty("extent").SdfPath().String() // "/root/box.extent"
//
// A node with no parent, attached to a stage or not, has the path "/name".
// An unattached attribute has the empty path "/".
//
// # Attributes
//
// Metadata and Property share the Attribute interface: a name, a
// value.DataType tag, a value.Value and Modifiers. Construction checks that
// the name is not empty (ErrInvalidIdentifier) and that the payload agrees
// with the tag (ErrTypeMismatch). Values that are absent are accepted and
// reported by the encoder unless the EmptyValue modifier is set.
//
// Reference attributes carry value.FromRef payloads pointing at nodes or
// properties and render as <path>.
//
// # Names
//
// NewNode replaces '.', '-' and ' ' in names with '_' and otherwise keeps
// them as given. ValidName offers a strict check for callers that prefer
// to reject bad names.
//
// # Thread Safety
//
// Trees are not safe for concurrent use. Build a tree, then render it.
package usd
