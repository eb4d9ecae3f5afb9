package sdtw

import "math"

// softMin returns the smoothed minimum of a, b, c at temperature gamma,
// together with the three softmax weights of -{a,b,c}/gamma. The weights
// are non-negative, sum to 1, and equal the partial derivatives of the
// returned value with respect to a, b and c.
//
// Stabilized in log-sum-exp form: with z = -{a,b,c}/gamma and zmax=max(z),
// value = -gamma*(zmax + log(sum exp(z-zmax))). A +Inf input (unreachable
// predecessor) yields exp(-Inf)=0 and drops out of both value and weights
// without producing NaN, as long as at least one input is finite.
func softMin(a, b, c, gamma float64) (value, wa, wb, wc float64) {
	za := -a / gamma
	zb := -b / gamma
	zc := -c / gamma

	zmax := za
	if zb > zmax {
		zmax = zb
	}
	if zc > zmax {
		zmax = zc
	}

	ea := math.Exp(za - zmax)
	eb := math.Exp(zb - zmax)
	ec := math.Exp(zc - zmax)
	sum := ea + eb + ec

	value = -gamma * (zmax + math.Log(sum))

	return value, ea / sum, eb / sum, ec / sum
}
