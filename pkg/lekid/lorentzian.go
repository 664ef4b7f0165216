package lekid

// Lorentzian is the fitting kernel a γ² / (γ² + (x - x0)²).
func Lorentzian(x, x0, a, gam float64) float64 {
	g2 := gam * gam
	dx := x - x0
	return a * g2 / (g2 + dx*dx)
}

// LorentzianSlice evaluates Lorentzian at every element of xs and stores the
// result in dst, which is allocated when nil. It panics if dst is non-nil and
// its length differs from xs.
func LorentzianSlice(dst, xs []float64, x0, a, gam float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(xs))
	}
	if len(dst) != len(xs) {
		panic("lekid: slice length mismatch")
	}
	for i, x := range xs {
		dst[i] = Lorentzian(x, x0, a, gam)
	}
	return dst
}
