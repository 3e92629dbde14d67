package usd

import (
	"fmt"

	"github.com/signadot/usda/sdfpath"
	"github.com/signadot/usda/value"
)

// Version is written in the "#usda" header.
const Version = "1.0"

// Stage owns the root layer document and the ordered top level nodes.
type Stage struct {
	filename string
	doc      *Document
	children []*Node
}

func NewStage(filename string) *Stage {
	s := &Stage{filename: filename}
	s.doc = &Document{version: Version, stage: s}
	return s
}

func (s *Stage) Filename() string      { return s.filename }
func (s *Stage) RootLayer() *Document  { return s.doc }
func (s *Stage) Children() []*Node     { return s.children }
func (s *Stage) SdfPath() sdfpath.Path { return s.doc.SdfPath() }

// AddChild appends a top level node. Top level nodes keep a nil parent, so
// their path is "/name".
func (s *Stage) AddChild(n *Node) *Node {
	if n.IsAttached() {
		panic(fmt.Errorf("%w: %s", ErrAlreadyAttached, n.SdfPath()))
	}
	n.stage = s
	s.children = append(s.children, n)
	return n
}

// Find resolves a node or property path against the current tree. Among
// siblings with the same name the first one wins.
func (s *Stage) Find(p sdfpath.Path) (value.Target, bool) {
	owner, prop, isProp := p.Split()
	segs := owner.Segments()
	if len(segs) == 0 {
		return nil, false
	}
	var n *Node
	for _, c := range s.children {
		if c.name == segs[0] {
			n = c
			break
		}
	}
	for _, seg := range segs[1:] {
		if n == nil {
			break
		}
		n = n.GetChild(seg)
	}
	if n == nil {
		return nil, false
	}
	if !isProp {
		return n, true
	}
	if pp := n.GetProperty(prop); pp != nil {
		return pp, true
	}
	return nil, false
}

// FindString is Find on a textual path.
func (s *Stage) FindString(path string) (value.Target, error) {
	p, err := sdfpath.Parse(path)
	if err != nil {
		return nil, err
	}
	t, ok := s.Find(p)
	if !ok {
		return nil, fmt.Errorf("%w: nothing at %s", sdfpath.ErrBadPath, path)
	}
	return t, nil
}

// Walk visits all nodes of the stage in pre-order.
func (s *Stage) Walk(f func(*Node) (bool, error)) error {
	for _, c := range s.children {
		if err := c.Walk(f); err != nil {
			return err
		}
	}
	return nil
}

// Document is the root layer: the header version and document level
// metadata. It is not part of the node tree and its path is empty.
type Document struct {
	version  string
	stage    *Stage
	metadata []*Metadata
}

func (d *Document) Version() string       { return d.version }
func (d *Document) Stage() *Stage         { return d.stage }
func (d *Document) Metadata() []*Metadata { return d.metadata }
func (d *Document) SdfPath() sdfpath.Path { return sdfpath.Path{} }
func (d *Document) Filename() string      { return d.stage.filename }

func (d *Document) AddMetadata(name string, v value.Value, t value.DataType, mods ...Modifiers) (*Metadata, error) {
	m, err := NewMetadata(name, v, t, mods...)
	if err != nil {
		return nil, err
	}
	return d.AttachMetadata(m), nil
}

func (d *Document) AttachMetadata(m *Metadata) *Metadata {
	attach(&m.attribute, d)
	d.metadata = append(d.metadata, m)
	return m
}

func (d *Document) SetDoc(doc string) (*Metadata, error) {
	return d.AddMetadata("doc", value.FromString(doc), value.Token)
}

func (d *Document) SetUpAxis(axis string) (*Metadata, error) {
	return d.AddMetadata("upAxis", value.FromString(axis), value.Token)
}

func (d *Document) SetMetersPerUnit(v float64) (*Metadata, error) {
	return d.AddMetadata("metersPerUnit", value.FromFloat(v), value.Float)
}

// SetDefaultPrim names the node a referencing layer should pick up.
func (d *Document) SetDefaultPrim(n *Node) (*Metadata, error) {
	return d.AddMetadata("defaultPrim", value.FromString(n.name), value.Token)
}
