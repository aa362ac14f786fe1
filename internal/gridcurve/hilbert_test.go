package gridcurve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aceto-run/aceto/internal/gridcurve"
)

func TestD2XYRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16} {
		for d := 0; d < n*n; d++ {
			x, y := gridcurve.D2XY(n, d)
			got := gridcurve.XY2D(n, x, y)
			assert.Equalf(t, d, got, "n=%d d=%d -> (%d,%d) -> %d", n, d, x, y, got)
		}
	}
}

func TestCurveEndpoints(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16} {
		x, y := gridcurve.D2XY(n, 0)
		assert.Equal(t, [2]int{0, 0}, [2]int{x, y}, "d=0 must be (0,0)")

		x, y = gridcurve.D2XY(n, n*n-1)
		assert.Equal(t, [2]int{n - 1, 0}, [2]int{x, y}, "d=N^2-1 must be (N-1,0)")
	}
}
