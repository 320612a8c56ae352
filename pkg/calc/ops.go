// Package calc implements the calculation model of the calculator: the
// arithmetic operations, the Calculation value that pairs two operands with
// an operation, and the registry resolving operation names.
package calc

import "github.com/DrnchedNGold/IS601-Assignment-5/pkg/calc/errs"

// Add returns the sum of a and b.
func Add(a, b float64) float64 { return a + b }

// Subtract returns the difference of a and b.
func Subtract(a, b float64) float64 { return a - b }

// Multiply returns the product of a and b.
func Multiply(a, b float64) float64 { return a * b }

// Divide returns the quotient of a and b. It throws errs.DivisionByZero
// when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errs.DivisionByZero{}
	}
	return a / b, nil
}
