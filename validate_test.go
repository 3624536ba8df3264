package supershape

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelDebug)
	for _, s := range testShapes {
		assert.NoError(t, s.Validate(), "%s", s)
	}
	for _, tc := range []struct {
		shape Params
		err   error
	}{
		{Params{M: math.NaN(), N1: 1, N2: 1, N3: 1}, ErrNotFinite},
		{Params{M: 4, N1: math.Inf(1), N2: 1, N3: 1}, ErrNotFinite},
		{Params{M: 4, N1: 1, N2: 1, N3: math.Inf(-1)}, ErrNotFinite},
		{Params{M: 4, N1: 0, N2: 1, N3: 1}, ErrZeroExponent},
	} {
		assert.ErrorIs(t, tc.shape.Validate(), tc.err, "%s", tc.shape)
	}
}

func TestCheckAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.NoError(t, CheckAngle(-7.5))
	assert.ErrorIs(t, CheckAngle(math.NaN()), ErrNotFinite)
	assert.ErrorIs(t, CheckAngle(math.Inf(1)), ErrNotFinite)
}

func TestValidateDoesNotChangeEval(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	bad := Params{M: 4, N1: 0, N2: 1, N3: 1}
	assert.Error(t, bad.Validate())
	x, y := bad.Eval(0)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 0.0, y)
}
