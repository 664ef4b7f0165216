package matrix

type DeviceMatrix interface {
	AddComplexElement(i, j int, real, imag float64) // 1-based indexing
	AddComplexRHS(i int, real, imag float64)
}
