package manifest

// Manifest is the declarative form of a stage.
type Manifest struct {
	Doc           string   `yaml:"doc,omitempty"`
	UpAxis        string   `yaml:"upAxis,omitempty"`
	MetersPerUnit *float64 `yaml:"metersPerUnit,omitempty"`
	// DefaultPrim names a top level node.
	DefaultPrim   string   `yaml:"defaultPrim,omitempty"`
	Metadata      []Attr   `yaml:"metadata,omitempty"`
	Nodes         []Node   `yaml:"nodes,omitempty"`
}

// Node describes a node and its subtree. References is an asset path,
// prepended unless AppendReferences is set.
type Node struct {
	Kind             string   `yaml:"kind"`
	Name             string   `yaml:"name,omitempty"`
	References       string   `yaml:"references,omitempty"`
	AppendReferences bool     `yaml:"appendReferences,omitempty"`
	APISchemas       []string `yaml:"apiSchemas,omitempty"`
	Metadata         []Attr   `yaml:"metadata,omitempty"`
	Properties       []Attr   `yaml:"properties,omitempty"`
	Children         []Node   `yaml:"children,omitempty"`
}

// Attr describes a property or a metadata entry. Exactly one of Value and
// Ref is used; Ref holds a path or a list of paths, and Rel renders it as a
// rel declaration.
type Attr struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Value    any    `yaml:"value,omitempty"`
	Ref      any    `yaml:"ref,omitempty"`
	Rel      bool   `yaml:"rel,omitempty"`
	Uniform  bool   `yaml:"uniform,omitempty"`
	Prepend  bool   `yaml:"prepend,omitempty"`
	Empty    bool   `yaml:"empty,omitempty"`
	Metadata []Attr `yaml:"metadata,omitempty"`
}
