package usd

import (
	"fmt"

	"github.com/signadot/usda/sdfpath"
	"github.com/signadot/usda/value"
)

// Node is a prim: a named entity of some Kind holding ordered metadata,
// properties and children.
//
// A node is owned by exactly one parent node or stage. Ownership is given
// once, by AddChild, and the parent pointer is only ever read to compute
// paths.
type Node struct {
	kind       Kind
	name       string
	metadata   []*Metadata
	properties []*Property
	children   []*Node
	parent     *Node
	stage      *Stage

	// UserData is left to callers.
	UserData any
}

// NewNode creates an unattached node. The name is sanitized; an empty name
// is allowed and produces a header without a name.
func NewNode(kind Kind, name string) *Node {
	return &Node{kind: kind, name: Sanitize(name)}
}

func (n *Node) Kind() Kind              { return n.kind }
func (n *Node) Name() string            { return n.name }
func (n *Node) Parent() *Node           { return n.parent }
func (n *Node) Children() []*Node       { return n.children }
func (n *Node) Properties() []*Property { return n.properties }
func (n *Node) Metadata() []*Metadata   { return n.metadata }

// Stage returns the stage the node's subtree is attached to, if any.
func (n *Node) Stage() *Stage {
	return n.Root().stage
}

func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

func (n *Node) IsAttached() bool {
	return n.parent != nil || n.stage != nil
}

// String is the node's path.
func (n *Node) String() string { return n.SdfPath().String() }

// SdfPath walks the parent chain. A node without a parent is "/name", or
// the empty path if it has no name either.
func (n *Node) SdfPath() sdfpath.Path {
	if n.parent == nil {
		if n.name == "" {
			return sdfpath.Path{}
		}
		return sdfpath.New(n.name)
	}
	return n.parent.SdfPath().AppendChild(n.name)
}

// AddChild appends c to the children and returns c. It panics with
// ErrAlreadyAttached if c already has an owner and with ErrCycle if c is n
// or one of its ancestors.
func (n *Node) AddChild(c *Node) *Node {
	if c.IsAttached() {
		panic(fmt.Errorf("%w: %s", ErrAlreadyAttached, c.SdfPath()))
	}
	for a := n; a != nil; a = a.parent {
		if a == c {
			panic(fmt.Errorf("%w: %s under %s", ErrCycle, c.SdfPath(), n.SdfPath()))
		}
	}
	c.parent = n
	n.children = append(n.children, c)
	return c
}

func (n *Node) AddProperty(name string, v value.Value, t value.DataType, mods ...Modifiers) (*Property, error) {
	p, err := NewProperty(name, v, t, mods...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", n.SdfPath(), err)
	}
	return n.AttachProperty(p), nil
}

// AttachProperty appends p and returns it. It panics if p is already
// attached.
func (n *Node) AttachProperty(p *Property) *Property {
	attach(&p.attribute, n)
	n.properties = append(n.properties, p)
	return p
}

func (n *Node) AddMetadata(name string, v value.Value, t value.DataType, mods ...Modifiers) (*Metadata, error) {
	m, err := NewMetadata(name, v, t, mods...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", n.SdfPath(), err)
	}
	return n.AttachMetadata(m), nil
}

func (n *Node) AttachMetadata(m *Metadata) *Metadata {
	attach(&m.attribute, n)
	n.metadata = append(n.metadata, m)
	return m
}

// GetProperty returns the first property called name, or nil.
func (n *Node) GetProperty(name string) *Property {
	for _, p := range n.properties {
		if p.name == name {
			return p
		}
	}
	return nil
}

// GetMetadata returns the first metadata entry called name, or nil.
func (n *Node) GetMetadata(name string) *Metadata {
	for _, m := range n.metadata {
		if m.name == name {
			return m
		}
	}
	return nil
}

// GetChild returns the first child called name, or nil.
func (n *Node) GetChild(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

const apiSchemasName = "apiSchemas"

// AddAPISchemas appends schema to the node's single "prepend apiSchemas"
// token array, creating it on first use.
func (n *Node) AddAPISchemas(schema Schema) error {
	m := n.GetMetadata(apiSchemasName)
	if m == nil {
		var err error
		m, err = n.AddMetadata(apiSchemasName, value.FromStrings(), value.Token, Mods().WithPrepend())
		if err != nil {
			return err
		}
	}
	v := m.val
	v.Strings = append([]string(nil), v.Strings...)
	if err := v.AppendString(string(schema)); err != nil {
		return fmt.Errorf("%s: %w", m.SdfPath(), err)
	}
	return m.SetValue(v)
}

// SetReferenceFile adds a "references" asset metadata entry. With prepend
// it renders as "prepend references = @path@"; otherwise no list-edit
// keyword is written.
func (n *Node) SetReferenceFile(path string, prepend bool) (*Metadata, error) {
	mods := Mods()
	if prepend {
		mods = mods.WithPrepend()
	}
	return n.AddMetadata("references", value.FromString(path), value.Asset, mods)
}

// Walk visits n and its descendants in pre-order. Returning false from f
// skips the node's children.
func (n *Node) Walk(f func(*Node) (bool, error)) error {
	dive, err := f(n)
	if err != nil {
		return err
	}
	if !dive {
		return nil
	}
	for _, c := range n.children {
		if err := c.Walk(f); err != nil {
			return err
		}
	}
	return nil
}
