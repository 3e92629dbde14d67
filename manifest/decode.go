package manifest

import (
	"errors"
	"fmt"
	"math"

	"github.com/signadot/usda/value"
)

// DecodeValue converts a decoded YAML or JSON value into a payload for the
// type t. A list is an array, except for tuple types where a flat list of
// numbers is a single tuple. A nil input yields an absent value.
func DecodeValue(v any, t value.DataType) (value.Value, error) {
	if v == nil {
		return value.Null(), nil
	}
	switch t.Kind() {
	case value.BoolKind:
		return decodeScalars(v, t, func(x any) (value.Value, error) {
			b, ok := x.(bool)
			if !ok {
				return value.Value{}, mismatch(x, t)
			}
			return value.FromBool(b), nil
		})
	case value.StringKind:
		return decodeScalars(v, t, func(x any) (value.Value, error) {
			s, ok := x.(string)
			if !ok {
				return value.Value{}, mismatch(x, t)
			}
			return value.FromString(s), nil
		})
	case value.IntKind:
		return decodeScalars(v, t, func(x any) (value.Value, error) {
			i, err := toInt(x)
			if err != nil {
				return value.Value{}, fmt.Errorf("%w: %w", mismatch(x, t), err)
			}
			return value.FromInt(i), nil
		})
	case value.FloatKind:
		return decodeScalars(v, t, func(x any) (value.Value, error) {
			f, ok := toFloat(x)
			if !ok {
				return value.Value{}, mismatch(x, t)
			}
			return value.FromFloat(f), nil
		})
	case value.Vec2Kind:
		return decodeTuples(v, t, 2, func(fs []float64) value.Value {
			return value.FromVec2(value.P2(fs[0], fs[1]))
		})
	case value.Vec3Kind:
		return decodeTuples(v, t, 3, func(fs []float64) value.Value {
			return value.FromVec3(value.P3(fs[0], fs[1], fs[2]))
		})
	case value.MatrixKind:
		return decodeMatrices(v, t)
	default:
		return value.Value{}, fmt.Errorf("%w: type %q has no literal form", value.ErrTypeMismatch, t)
	}
}

func mismatch(x any, t value.DataType) error {
	return fmt.Errorf("%w: %v (%T) is not a %s", value.ErrTypeMismatch, x, x, t)
}

func decodeScalars(v any, t value.DataType, one func(any) (value.Value, error)) (value.Value, error) {
	xs, ok := v.([]any)
	if !ok {
		return one(v)
	}
	elems := make([]value.Value, len(xs))
	for i, x := range xs {
		e, err := one(x)
		if err != nil {
			return value.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		elems[i] = e
	}
	return typedArray(elems, t)
}

// typedArray is value.Array, but an empty list still gets the kind of t.
func typedArray(elems []value.Value, t value.DataType) (value.Value, error) {
	res, err := value.Array(elems...)
	if err != nil {
		return value.Value{}, err
	}
	res.Kind = t.Kind()
	return res, nil
}

func decodeTuples(v any, t value.DataType, n int, mk func([]float64) value.Value) (value.Value, error) {
	xs, ok := v.([]any)
	if !ok {
		return value.Value{}, mismatch(v, t)
	}
	if len(xs) != 0 {
		if _, nested := xs[0].([]any); !nested {
			fs, err := toTuple(xs, n, t)
			if err != nil {
				return value.Value{}, err
			}
			return mk(fs), nil
		}
	}
	elems := make([]value.Value, len(xs))
	for i, x := range xs {
		fs, err := toTuple(x, n, t)
		if err != nil {
			return value.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		elems[i] = mk(fs)
	}
	return typedArray(elems, t)
}

func decodeMatrices(v any, t value.DataType) (value.Value, error) {
	xs, ok := v.([]any)
	if !ok {
		return value.Value{}, mismatch(v, t)
	}
	if len(xs) != 0 {
		if row, ok := xs[0].([]any); ok && len(row) != 0 {
			if _, nested := row[0].([]any); !nested {
				m, err := toMatrix(xs, t)
				if err != nil {
					return value.Value{}, err
				}
				return value.FromMatrix(m), nil
			}
		}
	}
	elems := make([]value.Value, len(xs))
	for i, x := range xs {
		m, err := toMatrix(x, t)
		if err != nil {
			return value.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		elems[i] = value.FromMatrix(m)
	}
	return typedArray(elems, t)
}

func toMatrix(v any, t value.DataType) (value.Matrix4, error) {
	rows, ok := v.([]any)
	if !ok || len(rows) != 4 {
		return value.Matrix4{}, fmt.Errorf("%w: a %s needs 4 rows, got %v", value.ErrTypeMismatch, t, v)
	}
	var ps [4]value.Point4
	for i, r := range rows {
		fs, err := toTuple(r, 4, t)
		if err != nil {
			return value.Matrix4{}, fmt.Errorf("row %d: %w", i, err)
		}
		ps[i] = value.P4(fs[0], fs[1], fs[2], fs[3])
	}
	return value.Matrix4{M0: ps[0], M1: ps[1], M2: ps[2], M3: ps[3]}, nil
}

func toTuple(v any, n int, t value.DataType) ([]float64, error) {
	xs, ok := v.([]any)
	if !ok || len(xs) != n {
		return nil, fmt.Errorf("%w: a %s needs %d numbers, got %v", value.ErrTypeMismatch, t, n, v)
	}
	res := make([]float64, n)
	for i, x := range xs {
		f, ok := toFloat(x)
		if !ok {
			return nil, mismatch(x, t)
		}
		res[i] = f
	}
	return res, nil
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

func toInt(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", x)
		}
		return int64(x), nil
	case float64:
		if x != math.Trunc(x) || x >= 1<<63 || x < -(1<<63) {
			return 0, fmt.Errorf("%v is not an integer", x)
		}
		return int64(x), nil
	default:
		return 0, errors.New("not a number")
	}
}
