package bench

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/vkernel/kernel"
)

func TestRunMatchesSingleIteration(t *testing.T) {
	x, f := kernel.Input()
	for _, v := range kernel.Variants() {
		t.Run(v.Name, func(t *testing.T) {
			want := v.Compute(x, f)

			got, timing, err := Run(v, x, f, DefaultIterations)
			require.NoError(t, err)
			assert.Equal(t, DefaultIterations, timing.Iterations)
			assert.GreaterOrEqual(t, timing.Milliseconds(), 0.0)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("timed result differs from single run (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunSingle(t *testing.T) {
	x, f := kernel.Input()
	got, timing, err := Run(kernel.Default(), x, f, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, timing.Iterations)
	assert.Equal(t, 5, got.Count)
}

func TestRunRejectsZeroIterations(t *testing.T) {
	x, f := kernel.Input()
	for _, n := range []int{0, -3} {
		_, _, err := Run(kernel.Default(), x, f, n)
		assert.ErrorIs(t, err, ErrIterations)
	}
}

func TestRunAccumulatesSink(t *testing.T) {
	x, f := kernel.Input()
	before := sink
	_, _, err := Run(kernel.Default(), x, f, 3)
	require.NoError(t, err)
	assert.NotEqual(t, before, sink)
}

func TestTimingMilliseconds(t *testing.T) {
	tm := Timing{Iterations: 4, Elapsed: 1500 * 1000} // 1.5ms in ns
	assert.InDelta(t, 1.5, tm.Milliseconds(), 1e-12)
	assert.Equal(t, tm.Elapsed/4, tm.PerIteration())
	assert.Zero(t, Timing{}.PerIteration())
}
