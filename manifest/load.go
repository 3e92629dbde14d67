package manifest

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/signadot/usda/debug"
	"github.com/signadot/usda/format"
	"github.com/signadot/usda/sdfpath"
	"github.com/signadot/usda/usd"
	"github.com/signadot/usda/value"
)

// Load decodes a manifest and builds its stage.
func Load(data []byte, opts ...LoadOption) (*usd.Stage, error) {
	cfg := newConfig(opts)
	m, err := decode(data, cfg)
	if err != nil {
		return nil, err
	}
	return build(m, cfg)
}

// Decode applies patches and expressions to a manifest document and
// decodes the result without building a stage.
func Decode(data []byte, opts ...LoadOption) (*Manifest, error) {
	return decode(data, newConfig(opts))
}

// Build builds the stage a decoded manifest describes.
func Build(m *Manifest, opts ...LoadOption) (*usd.Stage, error) {
	return build(m, newConfig(opts))
}

func newConfig(opts []LoadOption) *loadConfig {
	cfg := &loadConfig{format: format.YAMLFormat, filename: "stage.usda"}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func decode(data []byte, cfg *loadConfig) (*Manifest, error) {
	doc := data
	if !cfg.format.IsJSON() {
		j, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrManifest, err)
		}
		doc = j
	}
	for i, p := range cfg.patches {
		pj, err := yaml.YAMLToJSON(p)
		if err != nil {
			return nil, fmt.Errorf("%w: patch %d: %w", ErrManifest, i, err)
		}
		ops, err := jsonpatch.DecodePatch(pj)
		if err != nil {
			return nil, fmt.Errorf("%w: patch %d: %w", ErrManifest, i, err)
		}
		doc, err = ops.Apply(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: applying patch %d: %w", ErrManifest, i, err)
		}
		if debug.Patch() {
			debug.Logf("patch %d gave %s\n", i, doc)
		}
	}
	var tree any
	if err := yaml.Unmarshal(doc, &tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	tree, err := ExpandAny(tree, cfg.env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	if debug.Manifest() {
		debug.LogAny(tree)
	}
	expanded, err := yaml.MarshalWithOptions(tree, yaml.JSON())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	var decOpts []yaml.DecodeOption
	if cfg.strict {
		decOpts = append(decOpts, yaml.DisallowUnknownField())
	}
	m := &Manifest{}
	if err := yaml.UnmarshalWithOptions(expanded, m, decOpts...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	return m, nil
}

// pendingRef stands in for a reference target until the whole tree exists.
type pendingRef struct {
	path sdfpath.Path
}

func (p pendingRef) SdfPath() sdfpath.Path { return p.path }

type settable interface {
	usd.Attribute
	SetValue(value.Value) error
}

type builder struct {
	cfg     *loadConfig
	stage   *usd.Stage
	pending []settable
}

func build(m *Manifest, cfg *loadConfig) (*usd.Stage, error) {
	b := &builder{cfg: cfg, stage: usd.NewStage(cfg.filename)}
	doc := b.stage.RootLayer()
	if m.Doc != "" {
		if _, err := doc.SetDoc(m.Doc); err != nil {
			return nil, err
		}
	}
	if m.UpAxis != "" {
		if _, err := doc.SetUpAxis(m.UpAxis); err != nil {
			return nil, err
		}
	}
	if m.MetersPerUnit != nil {
		if _, err := doc.SetMetersPerUnit(*m.MetersPerUnit); err != nil {
			return nil, err
		}
	}
	for i := range m.Nodes {
		n, err := b.node(&m.Nodes[i])
		if err != nil {
			return nil, err
		}
		b.stage.AddChild(n)
	}
	if m.DefaultPrim != "" {
		var prim *usd.Node
		for _, n := range b.stage.Children() {
			if n.Name() == usd.Sanitize(m.DefaultPrim) {
				prim = n
				break
			}
		}
		if prim == nil {
			return nil, fmt.Errorf("%w: default prim %q", ErrUnresolvedRef, m.DefaultPrim)
		}
		if _, err := doc.SetDefaultPrim(prim); err != nil {
			return nil, err
		}
	}
	for i := range m.Metadata {
		md, err := b.metadata(&m.Metadata[i])
		if err != nil {
			return nil, fmt.Errorf("document: %w", err)
		}
		doc.AttachMetadata(md)
	}
	if err := b.resolve(); err != nil {
		return nil, err
	}
	return b.stage, nil
}

func (b *builder) node(spec *Node) (*usd.Node, error) {
	kind, err := usd.ParseKind(spec.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: node %q: %w", ErrManifest, spec.Name, err)
	}
	if b.cfg.strict && spec.Name != "" {
		if err := usd.ValidName(spec.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrManifest, err)
		}
	}
	n := usd.NewNode(kind, spec.Name)
	if debug.Manifest() {
		debug.Logf("manifest node %s %q\n", kind, n.Name())
	}
	if spec.References != "" {
		if _, err := n.SetReferenceFile(spec.References, !spec.AppendReferences); err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.Name, err)
		}
	}
	for _, s := range spec.APISchemas {
		if err := n.AddAPISchemas(usd.Schema(s)); err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.Name, err)
		}
	}
	for i := range spec.Metadata {
		md, err := b.metadata(&spec.Metadata[i])
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.Name, err)
		}
		n.AttachMetadata(md)
	}
	for i := range spec.Properties {
		p, err := b.property(&spec.Properties[i])
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.Name, err)
		}
		n.AttachProperty(p)
	}
	for i := range spec.Children {
		c, err := b.node(&spec.Children[i])
		if err != nil {
			return nil, err
		}
		n.AddChild(c)
	}
	return n, nil
}

func (b *builder) property(spec *Attr) (*usd.Property, error) {
	t, v, mods, err := b.attrParts(spec)
	if err != nil {
		return nil, err
	}
	p, err := usd.NewProperty(spec.Name, v, t, mods)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", spec.Name, err)
	}
	if spec.Ref != nil {
		b.pending = append(b.pending, p)
	}
	for i := range spec.Metadata {
		md, err := b.metadata(&spec.Metadata[i])
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", spec.Name, err)
		}
		p.AttachMetadata(md)
	}
	return p, nil
}

func (b *builder) metadata(spec *Attr) (*usd.Metadata, error) {
	if len(spec.Metadata) != 0 {
		return nil, fmt.Errorf("%w: metadata %q cannot carry metadata", ErrManifest, spec.Name)
	}
	t, v, mods, err := b.attrParts(spec)
	if err != nil {
		return nil, err
	}
	md, err := usd.NewMetadata(spec.Name, v, t, mods)
	if err != nil {
		return nil, fmt.Errorf("metadata %q: %w", spec.Name, err)
	}
	if spec.Ref != nil {
		b.pending = append(b.pending, md)
	}
	return md, nil
}

func (b *builder) attrParts(spec *Attr) (value.DataType, value.Value, usd.Modifiers, error) {
	mods := usd.Mods()
	t, err := value.ParseDataType(spec.Type)
	if err != nil {
		return "", value.Value{}, mods, fmt.Errorf("%w: %q: %w", ErrManifest, spec.Name, err)
	}
	if spec.Uniform {
		mods = mods.WithUniform()
	}
	if spec.Prepend {
		mods = mods.WithPrepend()
	}
	if spec.Empty {
		mods = mods.WithEmptyValue()
	}
	if spec.Ref == nil {
		v, err := DecodeValue(spec.Value, t)
		if err != nil {
			return "", value.Value{}, mods, fmt.Errorf("%q: %w", spec.Name, err)
		}
		return t, v, mods, nil
	}
	if spec.Value != nil {
		return "", value.Value{}, mods, fmt.Errorf("%w: %q has both a value and a ref", ErrManifest, spec.Name)
	}
	v, err := refValue(spec.Ref)
	if err != nil {
		return "", value.Value{}, mods, fmt.Errorf("%q: %w", spec.Name, err)
	}
	return t, v, mods.WithRef(spec.Rel), nil
}

func refValue(ref any) (value.Value, error) {
	switch x := ref.(type) {
	case string:
		p, err := sdfpath.Parse(x)
		if err != nil {
			return value.Value{}, err
		}
		return value.FromRef(pendingRef{path: p}), nil
	case []any:
		ts := make([]value.Target, len(x))
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return value.Value{}, fmt.Errorf("%w: ref %d is %T, not a path", ErrManifest, i, e)
			}
			p, err := sdfpath.Parse(s)
			if err != nil {
				return value.Value{}, err
			}
			ts[i] = pendingRef{path: p}
		}
		return value.FromRefs(ts...), nil
	default:
		return value.Value{}, fmt.Errorf("%w: ref is %T, not a path or a list of paths", ErrManifest, ref)
	}
}

// resolve swaps every pendingRef for the node or property at its path.
func (b *builder) resolve() error {
	for _, a := range b.pending {
		v := a.Value()
		refs := make([]value.Target, len(v.Refs))
		for i, t := range v.Refs {
			p := t.SdfPath()
			found, ok := b.stage.Find(p)
			if !ok {
				return fmt.Errorf("%w: %s in %s", ErrUnresolvedRef, p, a.SdfPath())
			}
			refs[i] = found
		}
		v.Refs = refs
		if err := a.SetValue(v); err != nil {
			return err
		}
	}
	return nil
}
