package lekid

// NoOfSquares returns the number of squares of a meander, length/width.
// The length is expected to be at least the width.
func NoOfSquares(meanderLength, meanderWidth float64) float64 {
	return meanderLength / meanderWidth
}
