package usd

import (
	"fmt"

	"github.com/signadot/usda/sdfpath"
	"github.com/signadot/usda/value"
)

// Attribute is a named, typed and modifiable piece of data attached to a
// node, a property or a document: either a *Metadata or a *Property.
type Attribute interface {
	Name() string
	Type() value.DataType
	Value() value.Value
	Modifiers() Modifiers
	// Owner is the object the attribute is attached to, nil until attached.
	Owner() value.Target
	SdfPath() sdfpath.Path
}

type attribute struct {
	name  string
	typ   value.DataType
	val   value.Value
	mods  Modifiers
	owner value.Target
}

func newAttribute(name string, v value.Value, t value.DataType, mods []Modifiers) (attribute, error) {
	if name == "" {
		return attribute{}, fmt.Errorf("%w: empty attribute name", ErrInvalidIdentifier)
	}
	a := attribute{name: name, typ: t, mods: mergeMods(mods)}
	if err := a.check(v); err != nil {
		return attribute{}, err
	}
	a.val = v
	return a, nil
}

// mergeMods ors together all given modifiers.
func mergeMods(mods []Modifiers) Modifiers {
	var res Modifiers
	for _, m := range mods {
		res.Uniform = res.Uniform || m.Uniform
		res.Prepend = res.Prepend || m.Prepend
		res.EmptyValue = res.EmptyValue || m.EmptyValue
		res.Reference = res.Reference || m.Reference
		res.HideRefTag = res.HideRefTag || m.HideRefTag
	}
	return res
}

func (a *attribute) check(v value.Value) error {
	if a.mods.Reference && !v.IsNull() && !v.IsRef() {
		return fmt.Errorf("%w: %s is a reference but has a %s payload", ErrTypeMismatch, a.name, v.Kind)
	}
	if !a.mods.Reference && v.IsRef() {
		return fmt.Errorf("%w: %s has a reference payload but is not declared a reference", ErrTypeMismatch, a.name)
	}
	if err := value.Check(v, a.typ); err != nil {
		return fmt.Errorf("%s: %w", a.name, err)
	}
	return nil
}

func (a *attribute) Name() string            { return a.name }
func (a *attribute) Type() value.DataType    { return a.typ }
func (a *attribute) Value() value.Value      { return a.val }
func (a *attribute) Modifiers() Modifiers    { return a.mods }
func (a *attribute) Owner() value.Target     { return a.owner }
func (a *attribute) IsAttached() bool        { return a.owner != nil }
func (a *attribute) setOwner(o value.Target) { a.owner = o }

// SetValue replaces the value, subject to the same checks as construction.
func (a *attribute) SetValue(v value.Value) error {
	if err := a.check(v); err != nil {
		return err
	}
	a.val = v
	return nil
}

// SdfPath is the owner's path with ".name" appended, or the empty path
// while the attribute is unattached.
func (a *attribute) SdfPath() sdfpath.Path {
	if a.owner == nil {
		return sdfpath.Path{}
	}
	return a.owner.SdfPath().AppendProperty(a.name)
}

// Metadata is a single line "name = value" declaration. It is rendered
// without a type tag.
type Metadata struct {
	attribute
}

func NewMetadata(name string, v value.Value, t value.DataType, mods ...Modifiers) (*Metadata, error) {
	a, err := newAttribute(name, v, t, mods)
	if err != nil {
		return nil, err
	}
	return &Metadata{attribute: a}, nil
}

// Property is a typed declaration that may carry its own metadata.
type Property struct {
	attribute
	metadata []*Metadata
}

func NewProperty(name string, v value.Value, t value.DataType, mods ...Modifiers) (*Property, error) {
	a, err := newAttribute(name, v, t, mods)
	if err != nil {
		return nil, err
	}
	return &Property{attribute: a}, nil
}

func (p *Property) Metadata() []*Metadata { return p.metadata }

func (p *Property) AddMetadata(name string, v value.Value, t value.DataType, mods ...Modifiers) (*Metadata, error) {
	m, err := NewMetadata(name, v, t, mods...)
	if err != nil {
		return nil, err
	}
	return p.AttachMetadata(m), nil
}

// AttachMetadata appends m to the property's metadata. It panics if m is
// already attached elsewhere.
func (p *Property) AttachMetadata(m *Metadata) *Metadata {
	attach(&m.attribute, p)
	p.metadata = append(p.metadata, m)
	return m
}

func attach(a *attribute, owner value.Target) {
	if a.owner != nil {
		panic(fmt.Errorf("%w: %s is owned by %s", ErrAlreadyAttached, a.name, a.owner.SdfPath()))
	}
	a.setOwner(owner)
}
