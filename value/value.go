package value

import (
	"fmt"
	"reflect"

	"github.com/signadot/usda/sdfpath"
)

// Target is anything a reference value can point at.
type Target interface {
	SdfPath() sdfpath.Path
}

// Value is a tagged union of the literal payloads an attribute may carry,
// or of references to other objects in the same tree.
//
// The payload lives in the slice matching Kind. A scalar is a one element
// slice with Array false; an array is any number of elements with Array
// true. Arrays are homogeneous and never nested. The zero Value is absent.
type Value struct {
	Kind  Kind
	Array bool

	Bools    []bool
	Strings  []string
	Ints     []int64
	Floats   []float64
	Vec2s    []Point2
	Vec3s    []Point3
	Matrices []Matrix4
	Refs     []Target
}

func Null() Value { return Value{} }

func FromBool(v bool) Value     { return Value{Kind: BoolKind, Bools: []bool{v}} }
func FromString(v string) Value { return Value{Kind: StringKind, Strings: []string{v}} }
func FromInt(v int64) Value     { return Value{Kind: IntKind, Ints: []int64{v}} }
func FromFloat(v float64) Value { return Value{Kind: FloatKind, Floats: []float64{v}} }
func FromVec2(v Point2) Value   { return Value{Kind: Vec2Kind, Vec2s: []Point2{v}} }
func FromVec3(v Point3) Value   { return Value{Kind: Vec3Kind, Vec3s: []Point3{v}} }
func FromMatrix(v Matrix4) Value {
	return Value{Kind: MatrixKind, Matrices: []Matrix4{v}}
}
func FromRef(t Target) Value { return Value{Kind: RefKind, Refs: []Target{t}} }

func FromBools(vs ...bool) Value {
	return Value{Kind: BoolKind, Array: true, Bools: vs}
}
func FromStrings(vs ...string) Value {
	return Value{Kind: StringKind, Array: true, Strings: vs}
}
func FromInts(vs ...int64) Value {
	return Value{Kind: IntKind, Array: true, Ints: vs}
}
func FromFloats(vs ...float64) Value {
	return Value{Kind: FloatKind, Array: true, Floats: vs}
}
func FromVec2s(vs ...Point2) Value {
	return Value{Kind: Vec2Kind, Array: true, Vec2s: vs}
}
func FromVec3s(vs ...Point3) Value {
	return Value{Kind: Vec3Kind, Array: true, Vec3s: vs}
}
func FromMatrices(vs ...Matrix4) Value {
	return Value{Kind: MatrixKind, Array: true, Matrices: vs}
}
func FromRefs(ts ...Target) Value {
	return Value{Kind: RefKind, Array: true, Refs: ts}
}

// Array builds an array value out of scalar values of a single kind.
// An empty argument list yields an empty array with no element kind.
func Array(vs ...Value) (Value, error) {
	res := Value{Array: true}
	for i := range vs {
		v := &vs[i]
		if v.Array {
			return Value{}, fmt.Errorf("%w: element %d is an array, arrays do not nest", ErrTypeMismatch, i)
		}
		if v.Kind == NoKind {
			return Value{}, fmt.Errorf("%w: element %d is absent", ErrTypeMismatch, i)
		}
		if i == 0 {
			res.Kind = v.Kind
		} else if v.Kind != res.Kind {
			return Value{}, fmt.Errorf("%w: element %d is %s, expected %s", ErrTypeMismatch, i, v.Kind, res.Kind)
		}
		res.Bools = append(res.Bools, v.Bools...)
		res.Strings = append(res.Strings, v.Strings...)
		res.Ints = append(res.Ints, v.Ints...)
		res.Floats = append(res.Floats, v.Floats...)
		res.Vec2s = append(res.Vec2s, v.Vec2s...)
		res.Vec3s = append(res.Vec3s, v.Vec3s...)
		res.Matrices = append(res.Matrices, v.Matrices...)
		res.Refs = append(res.Refs, v.Refs...)
	}
	return res, nil
}

// IsNull reports whether the value carries no payload at all. An empty
// array is not null.
func (v Value) IsNull() bool {
	return v.Kind == NoKind && !v.Array
}

func (v Value) IsRef() bool { return v.Kind == RefKind }

// Len is the number of elements in the payload.
func (v Value) Len() int {
	switch v.Kind {
	case BoolKind:
		return len(v.Bools)
	case StringKind:
		return len(v.Strings)
	case IntKind:
		return len(v.Ints)
	case FloatKind:
		return len(v.Floats)
	case Vec2Kind:
		return len(v.Vec2s)
	case Vec3Kind:
		return len(v.Vec3s)
	case MatrixKind:
		return len(v.Matrices)
	case RefKind:
		return len(v.Refs)
	default:
		return 0
	}
}

// AppendString appends to a string array. An empty array with no element
// kind becomes a string array.
func (v *Value) AppendString(s string) error {
	if !v.Array {
		return fmt.Errorf("%w: cannot append to a scalar %s", ErrTypeMismatch, v.Kind)
	}
	switch v.Kind {
	case NoKind:
		v.Kind = StringKind
	case StringKind:
	default:
		return fmt.Errorf("%w: cannot append a string to a %s array", ErrTypeMismatch, v.Kind)
	}
	v.Strings = append(v.Strings, s)
	return nil
}

// Check verifies that v may be declared with type t. Absent values and
// empty arrays pass; they are caught or rendered at encoding time.
// References are accepted for any type.
func Check(v Value, t DataType) error {
	if t.Kind() == NoKind {
		return fmt.Errorf("%w: unknown data type %q", ErrTypeMismatch, t)
	}
	if v.Kind == NoKind {
		if v.Len() != 0 {
			return fmt.Errorf("%w: payload without kind", ErrTypeMismatch)
		}
		return nil
	}
	if !v.Array && v.Len() != 1 {
		return fmt.Errorf("%w: scalar %s value has %d elements", ErrTypeMismatch, v.Kind, v.Len())
	}
	if v.Kind == RefKind {
		for i, r := range v.Refs {
			if isNilTarget(r) {
				return fmt.Errorf("%w: reference %d has no target", ErrTypeMismatch, i)
			}
		}
		return nil
	}
	if !t.Accepts(v.Kind) {
		return fmt.Errorf("%w: %s payload cannot be declared %s", ErrTypeMismatch, v.Kind, t)
	}
	return nil
}

// isNilTarget also catches an interface holding a typed nil pointer, which
// would panic when asked for its path.
func isNilTarget(t Target) bool {
	if t == nil {
		return true
	}
	rv := reflect.ValueOf(t)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
