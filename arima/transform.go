package arima

import "math"

const (
	// maxPartial bounds every partial autocorrelation. tanh alone rounds to exactly one for
	// large inputs, which would allow a unit root.
	maxPartial = 0.99

	// startLimit bounds the scaled partials of starting values so atanh stays finite
	startLimit = 0.999
)

// constrainAR maps unconstrained values to the coefficients of a stationary AR polynomial
// 1 - phi_1 z - ... - phi_p z^p. Each value is squashed into a partial autocorrelation with
// a scaled tanh and the partials are expanded with the Durbin-Levinson recursion.
func constrainAR(x []float64) []float64 {
	phi := make([]float64, 0, len(x))
	for k, xk := range x {
		r := maxPartial * math.Tanh(xk)
		next := make([]float64, k+1)
		for j := 0; j < k; j++ {
			next[j] = phi[j] - r*phi[k-1-j]
		}
		next[k] = r
		phi = next
	}
	return phi
}

// unconstrainAR inverts constrainAR by stepping the recursion down. Partials beyond
// startLimit*maxPartial in magnitude are clipped, so a non-stationary input maps to a nearby
// stationary one.
func unconstrainAR(phi []float64) []float64 {
	p := len(phi)
	x := make([]float64, p)
	cur := make([]float64, p)
	copy(cur, phi)

	for k := p - 1; k >= 0; k-- {
		ratio := math.Max(-startLimit, math.Min(startLimit, cur[k]/maxPartial))
		x[k] = math.Atanh(ratio)
		r := maxPartial * ratio

		prev := make([]float64, k)
		denom := 1 - r*r
		for j := 0; j < k; j++ {
			prev[j] = (cur[j] + r*cur[k-1-j]) / denom
		}
		cur = prev
	}
	return x
}

// constrainMA maps unconstrained values to the coefficients of an invertible MA polynomial
// 1 + theta_1 z + ... + theta_q z^q
func constrainMA(x []float64) []float64 {
	theta := constrainAR(x)
	for i := range theta {
		theta[i] = -theta[i]
	}
	return theta
}

func unconstrainMA(theta []float64) []float64 {
	neg := make([]float64, len(theta))
	for i, v := range theta {
		neg[i] = -v
	}
	return unconstrainAR(neg)
}
