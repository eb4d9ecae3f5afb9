package sdtw

// Test-Bridge (White-Box) for the private soft-min kernel.
//
// Exposes the unexported softMin to the black-box sdtw_test package so the
// operator's value/weight contract can be verified directly, without
// widening the production API.

// SoftMinTestOnly is a thin pass-through to the private soft-min kernel.
func SoftMinTestOnly(a, b, c, gamma float64) (value, wa, wb, wc float64) {
	return softMin(a, b, c, gamma)
}
