package usd

// Modifiers are the orthogonal flags an attribute is declared with. The
// zero value is a plain literal declaration.
//
// The With methods have value receivers: they return a modified copy, so a
// Modifiers value can be shared between declarations.
type Modifiers struct {
	Uniform    bool
	Prepend    bool
	EmptyValue bool

	// Reference marks the value as a link to another object; it is
	// rendered as <path>.
	Reference bool
	// HideRefTag suppresses the "rel" keyword of a reference, which then
	// keeps its type tag.
	HideRefTag bool
}

func Mods() Modifiers { return Modifiers{} }

func (m Modifiers) WithUniform() Modifiers {
	m.Uniform = true
	return m
}

func (m Modifiers) WithPrepend() Modifiers {
	m.Prepend = true
	return m
}

func (m Modifiers) WithEmptyValue() Modifiers {
	m.EmptyValue = true
	return m
}

// WithRef makes the declaration a reference, emitted with the "rel" keyword
// iff showTag.
func (m Modifiers) WithRef(showTag bool) Modifiers {
	m.Reference = true
	m.HideRefTag = !showTag
	return m
}

func (m Modifiers) ShowRefTag() bool {
	return m.Reference && !m.HideRefTag
}
