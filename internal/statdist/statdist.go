// Package statdist wraps the Beta/Normal inverse-CDF machinery the
// performance calculator needs to turn a player's 300-count into a
// normalized hit error. It plays the same role gonum.org/v1/gonum plays for
// other_examples/godesim's ODE state vectors, here applied to
// gonum.org/v1/gonum/stat/distuv's Beta and Normal distributions instead.
package statdist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// BetaQuantile returns the inverse CDF (quantile function) of Beta(alpha,
// beta) at p. It returns an error instead of a NaN/Inf/panic when alpha or
// beta are non-positive or the resulting quantile isn't finite, mirroring
// the Result-typed construction/inversion of the statrs crate this is
// grounded on.
func BetaQuantile(alpha, beta, p float64) (float64, error) {
	if !(alpha > 0) || !(beta > 0) {
		return 0, fmt.Errorf("statdist: invalid beta parameters alpha=%g beta=%g", alpha, beta)
	}

	dist := distuv.Beta{Alpha: alpha, Beta: beta}
	q := dist.Quantile(p)

	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, fmt.Errorf("statdist: beta quantile did not converge for alpha=%g beta=%g p=%g", alpha, beta, p)
	}

	return q, nil
}

// StandardNormalQuantile returns the inverse CDF of the standard normal
// distribution N(0, 1) at p.
func StandardNormalQuantile(p float64) (float64, error) {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	q := dist.Quantile(p)

	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, fmt.Errorf("statdist: normal quantile did not converge for p=%g", p)
	}

	return q, nil
}
