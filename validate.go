package supershape

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'supershape'
func tracer() tracing.Trace {
	return tracing.Select("supershape")
}

var (
	// ErrNotFinite indicates a NaN or infinite parameter or angle.
	ErrNotFinite = errors.New("value is not finite")
	// ErrZeroExponent indicates n1 = 0, which makes the outer exponent 1/n1 infinite.
	ErrZeroExponent = errors.New("exponent n1 is zero")
)

// Validate rejects degenerate shape parameters: NaN or ±Inf values, and
// n1 = 0. Supercalc itself never calls Validate.
//
// Valid parameters may still produce special values at some angles, e.g.
// when large exponents overflow.
func (p Params) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{{"m", p.M}, {"n1", p.N1}, {"n2", p.N2}, {"n3", p.N3}} {
		if !isFinite(v.val) {
			tracer().Debugf("rejecting shape %s: %s is %g", p, v.name, v.val)
			return fmt.Errorf("shape parameter %s=%g: %w", v.name, v.val, ErrNotFinite)
		}
	}
	if p.N1 == 0 {
		tracer().Debugf("rejecting shape %s: n1 = 0", p)
		return fmt.Errorf("shape %s: %w", p, ErrZeroExponent)
	}
	return nil
}

// CheckAngle returns an error if phi is NaN or ±Inf.
func CheckAngle(phi float64) error {
	if !isFinite(phi) {
		tracer().Debugf("rejecting angle phi=%g", phi)
		return fmt.Errorf("angle phi=%g: %w", phi, ErrNotFinite)
	}
	return nil
}
