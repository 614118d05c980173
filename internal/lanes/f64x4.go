// Package lanes provides a 4-wide float64 type used to run the same arithmetic
// on the four corners of a quad at once.
//
// F64x4 is a fixed-size array and every operation is a plain loop over it, so
// the compiler can unroll it and, where the target supports it, emit vector
// instructions. There is no unsafe, no assembly and no build tag: the same code
// runs on every architecture.
package lanes

// F64x4 holds one float64 per quad corner
type F64x4 [4]float64

// Splat returns an F64x4 with all lanes set to n
func Splat(n float64) F64x4 {
	return F64x4{n, n, n, n}
}

// Add performs lane-wise addition
func (v F64x4) Add(other F64x4) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs lane-wise subtraction
func (v F64x4) Sub(other F64x4) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs lane-wise multiplication
func (v F64x4) Mul(other F64x4) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// AddScalar adds n to every lane
func (v F64x4) AddScalar(n float64) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] + n
	}
	return result
}

// MulScalar multiplies every lane by n
func (v F64x4) MulScalar(n float64) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] * n
	}
	return result
}

// MinScalar returns min(v[i], n) for each lane.
// A NaN lane compares false and is replaced by n.
func (v F64x4) MinScalar(n float64) F64x4 {
	var result F64x4
	for i := range v {
		if v[i] < n {
			result[i] = v[i]
		} else {
			result[i] = n
		}
	}
	return result
}

// DivInto returns n / v[i] for each lane.
// Division by zero results in +Inf, -Inf, or NaN according to IEEE 754.
func (v F64x4) DivInto(n float64) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = n / v[i]
	}
	return result
}

// Floor keeps lanes strictly greater than floor and replaces the others,
// NaN included, by floor
func (v F64x4) Floor(floor float64) F64x4 {
	var result F64x4
	for i := range v {
		if v[i] > floor {
			result[i] = v[i]
		} else {
			result[i] = floor
		}
	}
	return result
}
