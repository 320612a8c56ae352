package calc

import (
	"github.com/DrnchedNGold/IS601-Assignment-5/pkg/calc/errs"
)

// Op enumerates the supported operations.
type Op int

// Supported operations.
const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the command word of the operation, as accepted by Create.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	}
	panic("unreachable")
}

// Symbol returns the infix symbol of the operation.
func (op Op) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	panic("unreachable")
}

// Calculation pairs two operands with an operation. It is an immutable
// value; each Calculation is built for one command and consumed by one
// Execute call.
type Calculation struct {
	Op   Op
	A, B float64
}

// Execute evaluates the calculation. The only possible error is
// errs.DivisionByZero, from a division with a zero divisor.
func (c Calculation) Execute() (float64, error) {
	switch c.Op {
	case OpAdd:
		return Add(c.A, c.B), nil
	case OpSubtract:
		return Subtract(c.A, c.B), nil
	case OpMultiply:
		return Multiply(c.A, c.B), nil
	case OpDivide:
		return Divide(c.A, c.B)
	}
	panic("unreachable")
}

// The registry of operation names. It is built once and read-only
// afterwards; adding an operation means adding an entry here together with
// an Op constant and an Execute arm.
var ops = map[string]Op{
	"add":      OpAdd,
	"subtract": OpSubtract,
	"multiply": OpMultiply,
	"divide":   OpDivide,
}

// Create resolves name against the operation registry and builds a
// Calculation holding the two operands. Names are matched exactly; an
// unregistered name throws errs.UnknownOperation.
func Create(name string, a, b float64) (Calculation, error) {
	op, ok := ops[name]
	if !ok {
		return Calculation{}, errs.UnknownOperation{Name: name}
	}
	return Calculation{Op: op, A: a, B: b}, nil
}

// Evaluate is the programmatic entry point to a single calculation: it
// creates a Calculation for the named operation and executes it.
func Evaluate(name string, a, b float64) (float64, error) {
	c, err := Create(name, a, b)
	if err != nil {
		return 0, err
	}
	return c.Execute()
}
