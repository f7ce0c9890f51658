package reference

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/vkernel/kernel"
)

const tolerance = 1e-12

func TestOracleFixedScenario(t *testing.T) {
	x, f := kernel.Input()
	want := New(0).Compute(x, f)

	require.Equal(t, kernel.VLength, want.Len())
	assert.Equal(t, 5, want.Count)
	assert.InEpsilon(t, 4.605170185988091, want.Output[0], 1e-15)
	assert.InEpsilon(t, 4.524187090179798, want.Intermediate[0], 1e-15)
	assert.InEpsilon(t, 15.632155682414229, want.Sum, 1e-14)
	assert.InEpsilon(t, 13.360862334375119, want.Sum2, 1e-14)
}

func TestVariantsWithinTolerance(t *testing.T) {
	x, f := kernel.Input()
	want := New(0).Compute(x, f)
	for _, v := range kernel.Variants() {
		t.Run(v.Name, func(t *testing.T) {
			e := Measure(v.Compute(x, f), want)
			assert.Truef(t, e.Within(tolerance), "errors %+v", e)
			// math.Log and math.Exp are accurate to about one ulp.
			assert.Less(t, e.Output, 1e-15)
			assert.Less(t, e.Intermediate, 1e-15)
		})
	}
}

func TestOracleSpecialValues(t *testing.T) {
	r := New(64).Compute([]float64{0, 0.5}, []int{1, 1})
	assert.True(t, math.IsInf(r.Output[0], 1))
	assert.Equal(t, 10.0, r.Intermediate[0])
	assert.True(t, math.IsInf(r.Sum, 1))
	assert.Equal(t, 2, r.Count)
}

func TestRelErr(t *testing.T) {
	tests := []struct {
		got, want, err float64
	}{
		{1, 1, 0},
		{1.5, 1, 0.5},
		{math.NaN(), math.NaN(), 0},
		{math.NaN(), 1, math.Inf(1)},
		{math.Inf(1), math.Inf(1), 0},
		{math.Inf(-1), math.Inf(1), math.Inf(1)},
		{1e-16, 0, 0.1},
	}
	for _, tt := range tests {
		assert.InDeltaf(t, tt.err, RelErr(tt.got, tt.want), 1e-12, "RelErr(%v, %v)", tt.got, tt.want)
	}
}

func TestMeasure(t *testing.T) {
	want := kernel.Result{Output: []float64{1, 2}, Intermediate: []float64{4, 8}, Count: 1, Sum: 3, Sum2: 12}
	got := kernel.Result{Output: []float64{1, 2.2}, Intermediate: []float64{4, 8}, Count: 2, Sum: 3.3, Sum2: 12}

	e := Measure(got, want)
	assert.InDelta(t, 0.1, e.Output, 1e-12)
	assert.Zero(t, e.Intermediate)
	assert.InDelta(t, 0.1, e.Sum, 1e-12)
	assert.False(t, e.CountOK)
	assert.False(t, e.Within(1))
	assert.InDelta(t, 0.1, e.Max(), 1e-12)

	assert.Panics(t, func() { Measure(kernel.Result{Output: []float64{1}}, want) })
}
