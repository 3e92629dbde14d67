package value

import "fmt"

// DataType is the type tag written in front of a property declaration.
type DataType string

const (
	Bool       DataType = "bool"
	Token      DataType = "token"
	Asset      DataType = "asset"
	Int        DataType = "int"
	Float      DataType = "float"
	Float2     DataType = "float2"
	TexCoord2f DataType = "texCoord2f"
	Float3     DataType = "float3"
	Float3d    DataType = "float3d"
	Point3f    DataType = "point3f"
	Color3f    DataType = "color3f"
	Normal3f   DataType = "normal3f"
	Matrix4d   DataType = "matrix4d"
)

func DataTypes() []DataType {
	return []DataType{
		Bool,
		Token,
		Asset,
		Int,
		Float,
		Float2,
		TexCoord2f,
		Float3,
		Float3d,
		Point3f,
		Color3f,
		Normal3f,
		Matrix4d,
	}
}

func ParseDataType(v string) (DataType, error) {
	for _, t := range DataTypes() {
		if string(t) == v {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown data type %q", ErrTypeMismatch, v)
}

func (t DataType) String() string { return string(t) }

// Kind returns the payload kind a literal of type t carries.
func (t DataType) Kind() Kind {
	switch t {
	case Bool:
		return BoolKind
	case Token, Asset:
		return StringKind
	case Int:
		return IntKind
	case Float:
		return FloatKind
	case Float2, TexCoord2f:
		return Vec2Kind
	case Float3, Float3d, Point3f, Color3f, Normal3f:
		return Vec3Kind
	case Matrix4d:
		return MatrixKind
	default:
		return NoKind
	}
}

func (t DataType) IsFloat3Family() bool { return t.Kind() == Vec3Kind }
func (t DataType) IsFloat2Family() bool { return t.Kind() == Vec2Kind }

// Accepts reports whether a payload of kind k may be declared with type t.
// Float accepts integer payloads, which render as plain decimals.
func (t DataType) Accepts(k Kind) bool {
	tk := t.Kind()
	if tk == NoKind {
		return false
	}
	if k == tk {
		return true
	}
	return t == Float && k == IntKind
}

// Kind is the runtime shape of a Value payload.
type Kind int

const (
	NoKind Kind = iota
	BoolKind
	StringKind
	IntKind
	FloatKind
	Vec2Kind
	Vec3Kind
	MatrixKind
	RefKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NoKind:     "None",
		BoolKind:   "Bool",
		StringKind: "String",
		IntKind:    "Int",
		FloatKind:  "Float",
		Vec2Kind:   "Vec2",
		Vec3Kind:   "Vec3",
		MatrixKind: "Matrix",
		RefKind:    "Ref",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
