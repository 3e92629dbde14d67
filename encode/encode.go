package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/usda/debug"
	"github.com/signadot/usda/usd"
	"github.com/signadot/usda/value"
)

type EncState struct {
	indent     string
	lineEnding string

	Color func(ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent:     "\t",
		lineEnding: "\n",
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode renders the stage's root layer and writes it to w, one line
// terminator after every line. Nothing is written if rendering fails.
func Encode(s *usd.Stage, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	lines, err := encodeDocument(s.RootLayer(), es)
	if err != nil {
		return err
	}
	var sb strings.Builder
	for _, ln := range lines {
		sb.WriteString(ln)
		sb.WriteString(es.lineEnding)
	}
	return writeString(w, sb.String())
}

// Stage returns the lines of the whole document: header, document
// metadata and every top level node.
func Stage(s *usd.Stage, opts ...EncodeOption) ([]string, error) {
	return encodeDocument(s.RootLayer(), newState(opts))
}

func Document(d *usd.Document, opts ...EncodeOption) ([]string, error) {
	return encodeDocument(d, newState(opts))
}

func Node(n *usd.Node, opts ...EncodeOption) ([]string, error) {
	return encodeNode(n, newState(opts))
}

func Property(p *usd.Property, opts ...EncodeOption) ([]string, error) {
	return encodeProperty(p, newState(opts))
}

// Metadata returns the single line of a metadata entry.
func Metadata(m *usd.Metadata, opts ...EncodeOption) ([]string, error) {
	ln, err := encodeMetadata(m, newState(opts))
	if err != nil {
		return nil, err
	}
	return []string{ln}, nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, attr ColorAttr, v string) string {
	if es.Color == nil || v == "" {
		return v
	}
	return es.Color(attr, v)
}

func indentLines(es *EncState, lines []string) []string {
	for i := range lines {
		lines[i] = es.indent + lines[i]
	}
	return lines
}

func encodeDocument(d *usd.Document, es *EncState) ([]string, error) {
	res := []string{applyColor(es, HeaderColor, "#usda "+d.Version())}
	md, err := encodeMetadataBlock(d.Metadata(), es)
	if err != nil {
		return nil, err
	}
	if len(md) != 0 {
		res = append(res, applyColor(es, SepColor, "("))
		res = append(res, md...)
		res = append(res, applyColor(es, SepColor, ")"))
	}
	for _, n := range d.Stage().Children() {
		lines, err := encodeNode(n, es)
		if err != nil {
			return nil, err
		}
		res = append(res, lines...)
	}
	return res, nil
}

// encodeMetadataBlock renders each entry indented one level.
func encodeMetadataBlock(mds []*usd.Metadata, es *EncState) ([]string, error) {
	res := make([]string, 0, len(mds))
	for _, m := range mds {
		ln, err := encodeMetadata(m, es)
		if err != nil {
			return nil, err
		}
		res = append(res, es.indent+ln)
	}
	return res, nil
}

func encodeNode(n *usd.Node, es *EncState) ([]string, error) {
	if debug.Encode() {
		debug.Logf("encode node %s\n", n)
	}
	header := applyColor(es, KeywordColor, "def") + " " + applyColor(es, KindColor, string(n.Kind()))
	if n.Name() != "" {
		header += " " + applyColor(es, NameColor, `"`+n.Name()+`"`)
	}
	res := []string{header}
	md, err := encodeMetadataBlock(n.Metadata(), es)
	if err != nil {
		return nil, err
	}
	if len(md) != 0 {
		res[0] += " " + applyColor(es, SepColor, "(")
		res = append(res, md...)
		res = append(res, applyColor(es, SepColor, ")"))
	}
	res = append(res, applyColor(es, SepColor, "{"))
	for _, p := range n.Properties() {
		lines, err := encodeProperty(p, es)
		if err != nil {
			return nil, err
		}
		res = append(res, indentLines(es, lines)...)
	}
	for _, c := range n.Children() {
		lines, err := encodeNode(c, es)
		if err != nil {
			return nil, err
		}
		res = append(res, indentLines(es, lines)...)
	}
	res = append(res, applyColor(es, SepColor, "}"))
	return res, nil
}

func encodeProperty(p *usd.Property, es *EncState) ([]string, error) {
	mods := p.Modifiers()
	v := p.Value()
	decl := prefixString(mods, es)
	if !mods.ShowRefTag() {
		typ := string(p.Type())
		if v.Array {
			typ += "[]"
		}
		decl += applyColor(es, TypeColor, typ) + " "
	}
	decl += applyColor(es, NameColor, p.Name())
	suffix, err := valueString(p, es)
	if err != nil {
		return nil, err
	}
	res := []string{decl + suffix}
	md, err := encodeMetadataBlock(p.Metadata(), es)
	if err != nil {
		return nil, err
	}
	if len(md) != 0 {
		res[0] += " " + applyColor(es, SepColor, "(")
		res = append(res, md...)
		res = append(res, applyColor(es, SepColor, ")"))
	}
	return res, nil
}

func encodeMetadata(m *usd.Metadata, es *EncState) (string, error) {
	suffix, err := valueString(m, es)
	if err != nil {
		return "", err
	}
	return prefixString(m.Modifiers(), es) + applyColor(es, NameColor, m.Name()) + suffix, nil
}

// prefixString renders the keywords preceding a declaration, each
// followed by a space.
func prefixString(mods usd.Modifiers, es *EncState) string {
	res := ""
	if mods.ShowRefTag() {
		res += applyColor(es, KeywordColor, "rel") + " "
	}
	if mods.Prepend {
		res += applyColor(es, KeywordColor, "prepend") + " "
	}
	if mods.Uniform {
		res += applyColor(es, KeywordColor, "uniform") + " "
	}
	return res
}

// valueString renders the " = value" suffix of an attribute, or "" for
// declarations without a value.
func valueString(a usd.Attribute, es *EncState) (string, error) {
	mods := a.Modifiers()
	if mods.EmptyValue {
		return "", nil
	}
	v := a.Value()
	if v.IsNull() {
		return "", fmt.Errorf("%w: the value of %s must not be null", ErrNullValue, a.SdfPath())
	}
	var elems []string
	var err error
	if mods.Reference || v.IsRef() {
		elems, err = refStrings(a, v, es)
	} else {
		elems, err = literalStrings(a, v, es)
	}
	if err != nil {
		return "", err
	}
	eq := " " + applyColor(es, SepColor, "=") + " "
	if !v.Array {
		return eq + elems[0], nil
	}
	sep := applyColor(es, SepColor, ", ")
	return eq + applyColor(es, SepColor, "[") + strings.Join(elems, sep) + applyColor(es, SepColor, "]"), nil
}

func refStrings(a usd.Attribute, v value.Value, es *EncState) ([]string, error) {
	if v.Kind != value.RefKind && v.Len() != 0 {
		return nil, fmt.Errorf("%w: reference %s holds a %s payload", ErrUnsupportedType, a.SdfPath(), v.Kind)
	}
	res := make([]string, len(v.Refs))
	for i, t := range v.Refs {
		if t == nil {
			return nil, fmt.Errorf("%w: the value of %s must not be null", ErrNullValue, a.SdfPath())
		}
		res[i] = applyColor(es, PathColor, "<"+t.SdfPath().String()+">")
	}
	return res, nil
}

func literalStrings(a usd.Attribute, v value.Value, es *EncState) ([]string, error) {
	t := a.Type()
	if t.Kind() == value.NoKind {
		return nil, fmt.Errorf("%w: cannot render type %q of %s", ErrUnsupportedType, t, a.SdfPath())
	}
	if v.Len() == 0 {
		if !v.Array {
			return nil, fmt.Errorf("%w: the value of %s must not be null", ErrNullValue, a.SdfPath())
		}
		return nil, nil
	}
	if !t.Accepts(v.Kind) {
		return nil, fmt.Errorf("%w: %s payload for %s %s", ErrUnsupportedType, v.Kind, t, a.SdfPath())
	}
	res := make([]string, 0, v.Len())
	switch v.Kind {
	case value.BoolKind:
		for _, b := range v.Bools {
			s := "false"
			if b {
				s = "true"
			}
			res = append(res, s)
		}
	case value.StringKind:
		for _, s := range v.Strings {
			if t == value.Asset {
				res = append(res, "@"+s+"@")
			} else {
				res = append(res, `"`+s+`"`)
			}
		}
	case value.IntKind:
		for _, i := range v.Ints {
			res = append(res, value.FormatInt(i))
		}
	case value.FloatKind:
		for _, f := range v.Floats {
			res = append(res, value.FormatFloat(f))
		}
	case value.Vec2Kind:
		for _, p := range v.Vec2s {
			res = append(res, tuple(p.X, p.Y))
		}
	case value.Vec3Kind:
		for _, p := range v.Vec3s {
			res = append(res, tuple(p.X, p.Y, p.Z))
		}
	case value.MatrixKind:
		for _, m := range v.Matrices {
			rows := m.Rows()
			parts := make([]string, len(rows))
			for i, r := range rows {
				parts[i] = tuple(r.X, r.Y, r.Z, r.W)
			}
			res = append(res, "( "+strings.Join(parts, ", ")+" )")
		}
	default:
		return nil, fmt.Errorf("%w: %s payload of %s", ErrUnsupportedType, v.Kind, a.SdfPath())
	}
	for i := range res {
		res[i] = applyColor(es, ValueColor, res[i])
	}
	return res, nil
}

func tuple(fs ...float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = value.FormatFloat(f)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
