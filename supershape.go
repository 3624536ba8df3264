package supershape

import (
	"fmt"
	"math"
)

// scale constants of the superformula, fixed to 1
const (
	scaleA = 1.0
	scaleB = 1.0
)

// Supercalc evaluates the superformula for shape parameters m, n1, n2, n3
// at angle phi (in radians) and returns the point in Cartesian coordinates.
//
// If the combined term of the formula is exactly 0, the origin is returned.
// Otherwise NaN or ±Inf in the inputs, or degenerate exponents such as
// n1 = 0, propagate to the result.
//
// Supercalc is pure and safe for concurrent use.
func Supercalc(m, n1, n2, n3, phi float64) (x, y float64) {
	r := term(m, n1, n2, n3, phi)
	if math.Abs(r) == 0 {
		return 0, 0
	}
	r = 1.0 / r
	return r * math.Cos(phi), r * math.Sin(phi)
}

// term is r(φ)^-1, i.e. the formula before radius inversion.
func term(m, n1, n2, n3, phi float64) float64 {
	t1 := math.Cos(m*phi/4.0) / scaleA
	t1 = math.Pow(math.Abs(t1), n2)
	t2 := math.Sin(m*phi/4.0) / scaleB
	t2 = math.Pow(math.Abs(t2), n3)
	return math.Pow(t1+t2, 1.0/n1)
}

// === Shape parameters ======================================================

// Params groups the shape parameters of a superformula curve.
type Params struct {
	M  float64 // symmetry order
	N1 float64 // overall exponent
	N2 float64 // exponent of the cosine term
	N3 float64 // exponent of the sine term
}

// Circle is the unit circle.
var Circle = Params{M: 4, N1: 2, N2: 2, N3: 2}

// Diamond is the square |x|+|y| = 1, standing on its tip.
var Diamond = Params{M: 4, N1: 1, N2: 1, N3: 1}

// Eval is Supercalc with the receiver's shape parameters.
func (p Params) Eval(phi float64) (x, y float64) {
	return Supercalc(p.M, p.N1, p.N2, p.N3, phi)
}

// Point returns the curve point at angle phi as a pair.
// Special values are not zapped.
func (p Params) Point(phi float64) Pair {
	return P(p.Eval(phi))
}

// Radius returns the distance of the curve point at angle phi from the
// origin. It is 0 where Eval returns the origin.
func (p Params) Radius(phi float64) float64 {
	r := term(p.M, p.N1, p.N2, p.N3, phi)
	if math.Abs(r) == 0 {
		return 0
	}
	return 1.0 / r
}

// Pretty Stringer for shape parameters.
func (p Params) String() string {
	return fmt.Sprintf("m=%g n1=%g n2=%g n3=%g", p.M, p.N1, p.N2, p.N3)
}
