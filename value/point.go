package value

type Point2 struct {
	X, Y float64
}

type Point3 struct {
	X, Y, Z float64
}

type Point4 struct {
	X, Y, Z, W float64
}

func P2(x, y float64) Point2       { return Point2{X: x, Y: y} }
func P3(x, y, z float64) Point3    { return Point3{X: x, Y: y, Z: z} }
func P4(x, y, z, w float64) Point4 { return Point4{X: x, Y: y, Z: z, W: w} }

func (p Point4) Dot(o Point4) float64 {
	return p.X*o.X + p.Y*o.Y + p.Z*o.Z + p.W*o.W
}

// XYZ drops the W component.
func (p Point4) XYZ() Point3 {
	return Point3{X: p.X, Y: p.Y, Z: p.Z}
}

// Matrix4 is a 4x4 matrix stored as four rows M0..M3, rendered in that order.
type Matrix4 struct {
	M0, M1, M2, M3 Point4
}

func Identity() Matrix4 {
	return Matrix4{
		M0: Point4{1, 0, 0, 0},
		M1: Point4{0, 1, 0, 0},
		M2: Point4{0, 0, 1, 0},
		M3: Point4{0, 0, 0, 1},
	}
}

func (m Matrix4) Rows() [4]Point4 {
	return [4]Point4{m.M0, m.M1, m.M2, m.M3}
}

func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		M0: Point4{m.M0.X, m.M1.X, m.M2.X, m.M3.X},
		M1: Point4{m.M0.Y, m.M1.Y, m.M2.Y, m.M3.Y},
		M2: Point4{m.M0.Z, m.M1.Z, m.M2.Z, m.M3.Z},
		M3: Point4{m.M0.W, m.M1.W, m.M2.W, m.M3.W},
	}
}

// Multiply returns m · prev, where m is the new transform and prev the
// transform it is applied after. Entry (i, j) of the result is the dot
// product of row i of m with row j of transpose(prev), that is column j of
// prev. Note the operand that is transposed is the argument, not the
// receiver: a.Multiply(b) != b.Multiply(a).
func (m Matrix4) Multiply(prev Matrix4) Matrix4 {
	t := prev.Transpose()
	row := func(r Point4) Point4 {
		return Point4{t.M0.Dot(r), t.M1.Dot(r), t.M2.Dot(r), t.M3.Dot(r)}
	}
	return Matrix4{
		M0: row(m.M0),
		M1: row(m.M1),
		M2: row(m.M2),
		M3: row(m.M3),
	}
}
