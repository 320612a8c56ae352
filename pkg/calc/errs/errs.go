// Package errs declares error types used by the calculator. All the types
// are comparable values with fixed message formats, so tests can match them
// by equality.
package errs

import "fmt"

// DivisionByZero is thrown when the divisor of a division is zero. Unlike
// the other errors in this package, it represents a well-formed calculation
// that failed at evaluation time.
type DivisionByZero struct{}

func (e DivisionByZero) Error() string {
	return "division by zero"
}

// UnknownOperation is thrown when an operation name does not match any
// registered operation.
type UnknownOperation struct {
	Name string
}

func (e UnknownOperation) Error() string {
	return fmt.Sprintf("unsupported operation '%s'", e.Name)
}

// ArityMismatch is thrown when a command does not carry exactly the number
// of operands its operation requires.
type ArityMismatch struct {
	Valid  int
	Actual int
}

func (e ArityMismatch) Error() string {
	return fmt.Sprintf("expected %d operands, got %d", e.Valid, e.Actual)
}

// BadOperand is thrown when an operand token cannot be parsed as a number.
type BadOperand struct {
	Token string
}

func (e BadOperand) Error() string {
	return fmt.Sprintf("'%s' is not a number", e.Token)
}
