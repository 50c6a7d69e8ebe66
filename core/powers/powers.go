// Package powers computes small integer powers.
package powers

// Square returns x*x, wrapping on overflow.
func Square(x int64) int64 {
	return x * x
}

// Cube returns x*x*x, wrapping on overflow.
func Cube(x int64) int64 {
	return x * x * x
}
