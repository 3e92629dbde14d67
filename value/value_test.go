package value

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/usda/sdfpath"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-1, "-1"},
		{0.5, "0.5"},
		{0.1, "0.1"},
		{100, "100"},
		{-2.25, "-2.25"},
		{0.000001, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{1e21, "1e+21"},
		{123456789, "123456789"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestArray(t *testing.T) {
	v, err := Array(FromInt(1), FromInt(2), FromInt(3))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Array || v.Kind != IntKind {
		t.Errorf("got array=%t kind=%s", v.Array, v.Kind)
	}
	if diff := cmp.Diff([]int64{1, 2, 3}, v.Ints); diff != "" {
		t.Errorf("ints (-want +got):\n%s", diff)
	}

	if _, err := Array(FromInt(1), FromString("a")); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("mixed kinds: got %v, want ErrTypeMismatch", err)
	}
	if _, err := Array(FromInts(1, 2)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("nested array: got %v, want ErrTypeMismatch", err)
	}
	empty, err := Array()
	if err != nil {
		t.Fatal(err)
	}
	if empty.IsNull() || empty.Len() != 0 {
		t.Errorf("empty array should be non-null with no elements")
	}
}

func TestAppendString(t *testing.T) {
	v := FromStrings()
	for _, s := range []string{"SkelBindingAPI", "MaterialBindingAPI"} {
		if err := v.AppendString(s); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff([]string{"SkelBindingAPI", "MaterialBindingAPI"}, v.Strings); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	scalar := FromString("x")
	if err := scalar.AppendString("y"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("append to scalar: got %v", err)
	}
	ints := FromInts(1)
	if err := ints.AppendString("y"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("append to int array: got %v", err)
	}
}

type fakeTarget struct{}

func (fakeTarget) SdfPath() sdfpath.Path { return sdfpath.New("a") }

type ptrTarget struct{ name string }

func (p *ptrTarget) SdfPath() sdfpath.Path { return sdfpath.New(p.name) }

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		t    DataType
		ok   bool
	}{
		{"bool", FromBool(true), Bool, true},
		{"token", FromString("a"), Token, true},
		{"asset", FromString("a.usda"), Asset, true},
		{"int", FromInt(1), Int, true},
		{"float from int", FromInt(1), Float, true},
		{"int from float", FromFloat(1.5), Int, false},
		{"float3 as point3f", FromVec3(P3(1, 2, 3)), Point3f, true},
		{"float3 as color3f", FromVec3s(P3(1, 2, 3)), Color3f, true},
		{"float3 as float2", FromVec3(P3(1, 2, 3)), Float2, false},
		{"float2 as texcoord", FromVec2(P2(1, 2)), TexCoord2f, true},
		{"matrix", FromMatrix(Identity()), Matrix4d, true},
		{"matrix as float3", FromMatrix(Identity()), Float3, false},
		{"null", Null(), Float3, true},
		{"empty array", FromStrings(), Token, true},
		{"unknown tag", FromInt(1), DataType("double"), false},
		{"ref", FromRef(fakeTarget{}), Token, true},
		{"nil ref", FromRef(nil), Token, false},
		{"typed nil ref", FromRef((*ptrTarget)(nil)), Token, false},
		{"typed nil in array", FromRefs(fakeTarget{}, (*ptrTarget)(nil)), Token, false},
		{"pointer ref", FromRef(&ptrTarget{}), Token, true},
		{"bad scalar", Value{Kind: IntKind, Ints: []int64{1, 2}}, Int, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.v, tt.t)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrTypeMismatch) {
				t.Errorf("got %v, want ErrTypeMismatch", err)
			}
		})
	}
}

func TestMatrixMultiply(t *testing.T) {
	a := Matrix4{
		M0: P4(1, 2, 0, 0),
		M1: P4(0, 1, 0, 0),
		M2: P4(0, 0, 1, 0),
		M3: P4(0, 0, 0, 1),
	}
	b := Matrix4{
		M0: P4(1, 0, 0, 0),
		M1: P4(3, 1, 0, 0),
		M2: P4(0, 0, 1, 0),
		M3: P4(0, 0, 0, 1),
	}
	ab := a.Multiply(b)
	if want := P4(7, 2, 0, 0); ab.M0 != want {
		t.Errorf("a.Multiply(b).M0 = %v, want %v", ab.M0, want)
	}
	if want := P4(3, 1, 0, 0); ab.M1 != want {
		t.Errorf("a.Multiply(b).M1 = %v, want %v", ab.M1, want)
	}
	ba := b.Multiply(a)
	if want := P4(3, 7, 0, 0); ba.M1 != want {
		t.Errorf("b.Multiply(a).M1 = %v, want %v", ba.M1, want)
	}
	if got := a.Multiply(Identity()); got != a {
		t.Errorf("a.Multiply(I) = %v", got)
	}
	if got := Identity().Multiply(a); got != a {
		t.Errorf("I.Multiply(a) = %v", got)
	}
	if got := a.Transpose().Transpose(); got != a {
		t.Errorf("double transpose = %v", got)
	}
}
