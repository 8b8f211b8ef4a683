// Package polyfit provides ordinary least squares polynomial fitting and a
// zero-intercept linear regression, for fitting calibration sequences and
// distance-velocity relations.
package polyfit

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Poly is a polynomial with coefficients in ascending order: Coeffs[k] is
// the coefficient of x^k.
type Poly struct {
	Coeffs []float64
}

// Fit fits a polynomial of the given degree to the (x, y) points by ordinary
// least squares over a Vandermonde design matrix, solved by QR
// decomposition. A singular or badly conditioned design matrix is an error;
// the inputs are assumed clean enough that degeneracy means a caller bug.
func Fit(x, y []float64, degree int) (Poly, error) {
	if len(x) != len(y) {
		return Poly{}, fmt.Errorf("x has %d points but y has %d", len(x), len(y))
	}
	if degree < 0 {
		return Poly{}, fmt.Errorf("invalid polynomial degree %d", degree)
	}
	if len(x) < degree+1 {
		return Poly{}, fmt.Errorf("need at least %d points for a degree-%d fit, have %d", degree+1, degree, len(x))
	}

	a := mat.NewDense(len(x), degree+1, nil)
	for i, xi := range x {
		v := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, v)
			v *= xi
		}
	}

	b := mat.NewDense(len(y), 1, y)

	var qr mat.QR
	qr.Factorize(a)

	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, b); err != nil {
		return Poly{}, pfx.Err(fmt.Errorf("singular design matrix for degree-%d fit: %w", degree, err))
	}

	coeffs := make([]float64, degree+1)
	for j := range coeffs {
		coeffs[j] = sol.At(j, 0)
	}

	return Poly{Coeffs: coeffs}, nil
}

// Eval evaluates the polynomial at x using Horner's method.
func (p Poly) Eval(x float64) float64 {
	out := 0.0
	for j := len(p.Coeffs) - 1; j >= 0; j-- {
		out = out*x + p.Coeffs[j]
	}
	return out
}

// EvalAll evaluates the polynomial at every point of xs.
func (p Poly) EvalAll(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		out = append(out, p.Eval(x))
	}
	return out
}

// Sub returns the pointwise difference p - q as a new polynomial.
func (p Poly) Sub(q Poly) Poly {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}

	coeffs := make([]float64, n)
	for j := range coeffs {
		if j < len(p.Coeffs) {
			coeffs[j] += p.Coeffs[j]
		}
		if j < len(q.Coeffs) {
			coeffs[j] -= q.Coeffs[j]
		}
	}

	return Poly{Coeffs: coeffs}
}

// Grid returns n evenly spaced points covering [lo, hi], for dense
// evaluation of fitted curves.
func Grid(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}

	out := make([]float64, 0, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		out = append(out, lo+float64(i)*step)
	}
	return out
}

// OriginSlope fits the zero-intercept model y = slope*x and returns the
// slope with its standard error, sigma^2 = RSS/(n-1)/sum(x^2).
func OriginSlope(x, y []float64) (slope, stderr float64, err error) {
	if len(x) != len(y) {
		return 0, 0, fmt.Errorf("x has %d points but y has %d", len(x), len(y))
	}
	if len(x) < 2 {
		return 0, 0, fmt.Errorf("need at least 2 points, have %d", len(x))
	}

	var sumXX float64
	for _, xi := range x {
		sumXX += xi * xi
	}
	if sumXX == 0 {
		return 0, 0, fmt.Errorf("all x values are zero; slope is undefined")
	}

	_, slope = stat.LinearRegression(x, y, nil, true)

	var rss float64
	for i := range x {
		r := y[i] - slope*x[i]
		rss += r * r
	}

	stderr = math.Sqrt(rss / float64(len(x)-1) / sumXX)

	return slope, stderr, nil
}
