// Package special evaluates the modified Bessel functions of order zero.
//
// The polynomial approximations are Abramowitz & Stegun 9.8.1, 9.8.2, 9.8.5
// and 9.8.6. Their bounds are absolute: 1.9e-7 on sqrt(x)·exp(-x)·I0(x)
// (about 0.4 for x >= 3.75) and on sqrt(x)·exp(x)·K0(x), so the relative
// error reaches about 5e-7.
package special

import "math"

// Abramowitz & Stegun 9.8.1, |x| <= 3.75, t = (x/3.75)^2
var i0Small = [...]float64{
	1.0, 3.5156229, 3.0899424, 1.2067492, 0.2659732, 0.0360768, 0.0045813,
}

// Abramowitz & Stegun 9.8.2, x >= 3.75, t = 3.75/x
var i0Large = [...]float64{
	0.39894228, 0.01328592, 0.00225319, -0.00157565, 0.00916281,
	-0.02057706, 0.02635537, -0.01647633, 0.00392377,
}

// Abramowitz & Stegun 9.8.5, 0 < x <= 2, t = (x/2)^2
var k0Small = [...]float64{
	-0.57721566, 0.42278420, 0.23069756, 0.03488590, 0.00262698, 0.00010750, 0.0000074,
}

// Abramowitz & Stegun 9.8.6, x >= 2, t = 2/x
var k0Large = [...]float64{
	1.25331414, -0.07832358, 0.02189568, -0.01062446, 0.00587872, -0.00251540, 0.00053208,
}

const (
	i0Split = 3.75
	k0Split = 2.0
)

func poly(c []float64, t float64) float64 {
	sum := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		sum = sum*t + c[i]
	}
	return sum
}

// BesselI0 returns the modified Bessel function of the first kind of order zero.
func BesselI0(x float64) float64 {
	ax := math.Abs(x)
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 0):
		return math.Inf(1)
	case ax < i0Split:
		t := x / i0Split
		return poly(i0Small[:], t*t)
	}
	return math.Exp(ax) / math.Sqrt(ax) * poly(i0Large[:], i0Split/ax)
}

// BesselI0e returns exp(-|x|) * I0(x).
func BesselI0e(x float64) float64 {
	ax := math.Abs(x)
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 0):
		return 0
	case ax < i0Split:
		t := x / i0Split
		return math.Exp(-ax) * poly(i0Small[:], t*t)
	}
	return poly(i0Large[:], i0Split/ax) / math.Sqrt(ax)
}

// BesselK0 returns the modified Bessel function of the second kind of order
// zero. K0(0) is +Inf and K0 of a negative argument is NaN.
func BesselK0(x float64) float64 {
	switch {
	case math.IsNaN(x) || x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(1)
	case math.IsInf(x, 1):
		return 0
	case x <= k0Split:
		return k0SmallArg(x)
	}
	return math.Exp(-x) / math.Sqrt(x) * poly(k0Large[:], k0Split/x)
}

// BesselK0e returns exp(x) * K0(x).
func BesselK0e(x float64) float64 {
	switch {
	case math.IsNaN(x) || x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(1)
	case math.IsInf(x, 1):
		return 0
	case x <= k0Split:
		return math.Exp(x) * k0SmallArg(x)
	}
	return poly(k0Large[:], k0Split/x) / math.Sqrt(x)
}

func k0SmallArg(x float64) float64 {
	t := x / k0Split
	return -math.Log(t)*BesselI0(x) + poly(k0Small[:], t*t)
}
