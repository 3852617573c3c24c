// Package geom provides the planar geometric primitives the fold patterns are
// built from:
// - Points in 3D space whose vertical (Y) axis is pinned to zero
// - Point arithmetic and vector operations in the X/Z plane
// - Planar affine transformations (rotation, translation, composition)
// - A tolerance-aware spatial index for vertex deduplication
package geom

import (
	"fmt"
	"math"
)

const (
	// VertexEpsilon is the distance below which two points are treated as the
	// same vertex.
	VertexEpsilon = 1e-3
	// PatternEpsilon is the tolerance used when comparing whole patterns.
	PatternEpsilon = 1e-4
)

// Point is a coordinate in 3D space. Fold patterns lie flat, so Y is always
// zero and X/Z are the two active coordinates.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Planar returns the point (x, 0, z).
func Planar(x, z float64) Point { return Point{X: x, Z: z} }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s, p.Z * s} }

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 { return math.Sqrt(Dot(p, p)) }

// Unit returns p scaled to unit length. The zero vector is returned as is.
func (p Point) Unit() Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return p.Scale(1 / l)
}

// RightNormal returns the unit vector perpendicular to p in the X/Z plane, on
// the right-hand side of p. For a counter-clockwise face edge this points
// out of the face.
func (p Point) RightNormal() Point { return Planar(p.Z, -p.X).Unit() }

// Angle returns the direction of p in the X/Z plane, in (-π, π].
func (p Point) Angle() float64 { return math.Atan2(p.Z, p.X) }

func (p Point) String() string { return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Z) }

func Dot(p, q Point) float64 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

// Cross returns the Y component of p × q, positive when q is counter-clockwise
// from p in the X/Z plane.
func Cross(p, q Point) float64 { return p.X*q.Z - p.Z*q.X }

func Dist(p, q Point) float64 { return p.Sub(q).Len() }

// Near reports whether p and q are within eps of each other.
func Near(p, q Point, eps float64) bool { return Dist(p, q) < eps }

// Lerp returns the point a fraction t of the way from p to q.
func Lerp(p, q Point, t float64) Point { return p.Add(q.Sub(p).Scale(t)) }

// Affine represents a planar affine transform over (X, Z) in row-major form:
// [ a b c ]
// [ d e f ]
// where (x', z') = (a*x + b*z + c, d*x + e*z + f). Y passes through untouched.
type Affine struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

func MakeAffine(a, b, c, d, e, f float64) Affine { return Affine{A: a, B: b, C: c, D: d, E: e, F: f} }

// Rotation returns a counter-clockwise rotation by theta radians about the
// origin.
func Rotation(theta float64) Affine {
	s, c := math.Sincos(theta)
	return MakeAffine(c, -s, 0, s, c, 0)
}

// Translation returns a transform shifting points by (dx, dz).
func Translation(dx, dz float64) Affine { return MakeAffine(1, 0, dx, 0, 1, dz) }

// MulPoint applies the affine transform to a point.
func (t Affine) MulPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Z + t.C,
		Y: p.Y,
		Z: t.D*p.X + t.E*p.Z + t.F,
	}
}

// Mul composes two affine transforms (applies u then t).
func (t Affine) Mul(u Affine) Affine {
	return MakeAffine(
		t.A*u.A+t.B*u.D,
		t.A*u.B+t.B*u.E,
		t.A*u.C+t.B*u.F+t.C,
		t.D*u.A+t.E*u.D,
		t.D*u.B+t.E*u.E,
		t.D*u.C+t.E*u.F+t.F,
	)
}

// Inv returns the inverse of the affine transform.
// Returns an error if the transform is not invertible (determinant is zero).
func (t Affine) Inv() (Affine, error) {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < 1e-10 {
		return Affine{}, fmt.Errorf("affine transform is not invertible (determinant ≈ 0)")
	}
	return MakeAffine(
		t.E/det, -t.B/det, (t.B*t.F-t.C*t.E)/det,
		-t.D/det, t.A/det, (t.C*t.D-t.A*t.F)/det,
	), nil
}

// RegularPolygon returns the n corners of a regular polygon with the given
// circumradius, centred on c, counter-clockwise, the first corner at angle
// phase.
func RegularPolygon(c Point, n int, radius, phase float64) []Point {
	pts := make([]Point, n)
	place := Translation(c.X, c.Z)
	for i := range pts {
		rot := Rotation(phase + float64(i)*2*math.Pi/float64(n))
		pts[i] = place.Mul(rot).MulPoint(Planar(radius, 0))
	}
	return pts
}
