// Package operation defines the arithmetic operations the calculator
// supports and the factory that resolves them by name.
package operation

import (
	"errors"
	"fmt"
	"math"

	"github.com/ternarybob/arbor"
)

var (
	// ErrDivisionByZero reports a division whose second operand is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotFinite reports an operand that is NaN or infinite.
	ErrNotFinite = errors.New("operand is not a finite number")

	// ErrUnknownOperation reports a name the factory does not recognize.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Operation is a single arithmetic strategy over two operands.
// Implementations are stateless values.
type Operation interface {
	// Name returns the canonical lowercase operation name.
	Name() string

	// Apply computes the result for the two operands.
	Apply(a, b float64) (float64, error)
}

type addition struct{}

func (addition) Name() string { return "add" }

func (addition) Apply(a, b float64) (float64, error) { return a + b, nil }

type subtraction struct{}

func (subtraction) Name() string { return "subtract" }

func (subtraction) Apply(a, b float64) (float64, error) { return a - b, nil }

type multiplication struct{}

func (multiplication) Name() string { return "multiply" }

func (multiplication) Apply(a, b float64) (float64, error) { return a * b, nil }

type division struct{}

func (division) Name() string { return "divide" }

func (division) Apply(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Calculate is the shared execution wrapper every caller goes through:
// it validates both operands are finite, applies the operation and logs
// the outcome. Variants only implement Apply.
func Calculate(log arbor.ILogger, op Operation, a, b float64) (float64, error) {
	for _, v := range [2]float64{a, b} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %v", ErrNotFinite, v)
		}
	}

	result, err := op.Apply(a, b)
	if err != nil {
		log.Warn().Err(err).Str("operation", op.Name()).Msg("operation failed")
		return 0, err
	}

	log.Debug().
		Str("operation", op.Name()).
		Msg(fmt.Sprintf("%s %v %v = %v", op.Name(), a, b, result))
	return result, nil
}
