package operation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/abacus/internal/logger"
)

func TestOperation_Addition(t *testing.T) {
	op, err := New("add")
	require.NoError(t, err)

	result, err := op.Apply(10, 5)
	require.NoError(t, err)
	assert.Equal(t, 15.0, result)
	assert.Equal(t, "add", op.Name())
}

func TestOperation_Subtraction(t *testing.T) {
	op, err := New("subtract")
	require.NoError(t, err)

	result, err := op.Apply(10, 5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestOperation_Multiplication(t *testing.T) {
	op, err := New("multiply")
	require.NoError(t, err)

	result, err := op.Apply(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12.0, result)
}

func TestOperation_Division(t *testing.T) {
	op, err := New("divide")
	require.NoError(t, err)

	result, err := op.Apply(10, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.5, result)
}

func TestOperation_DivisionByZero(t *testing.T) {
	op, err := New("divide")
	require.NoError(t, err)

	_, err = op.Apply(10, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestOperation_NegativeOperands(t *testing.T) {
	op, err := New("add")
	require.NoError(t, err)

	result, err := op.Apply(-10, 5)
	require.NoError(t, err)
	assert.Equal(t, -5.0, result)
}

func TestFactory_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"ADD", "Add", "aDd"} {
		op, err := New(name)
		require.NoError(t, err)
		assert.Equal(t, "add", op.Name())
	}
}

func TestFactory_AllNames(t *testing.T) {
	for _, name := range Names() {
		op, err := New(name)
		require.NoError(t, err)
		assert.Equal(t, name, op.Name())
	}
}

func TestFactory_Unknown(t *testing.T) {
	for _, name := range []string{"modulo", "ad", "", "add "} {
		_, err := New(name)
		assert.ErrorIs(t, err, ErrUnknownOperation, "name %q", name)
	}
}

func TestCalculate_Computes(t *testing.T) {
	log := logger.GetLogger()

	op, err := New("divide")
	require.NoError(t, err)

	result, err := Calculate(log, op, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.5, result)
}

func TestCalculate_PropagatesDivisionByZero(t *testing.T) {
	log := logger.GetLogger()

	op, err := New("divide")
	require.NoError(t, err)

	_, err = Calculate(log, op, 1, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestCalculate_RejectsNonFinite(t *testing.T) {
	log := logger.GetLogger()

	op, err := New("add")
	require.NoError(t, err)

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Calculate(log, op, v, 1)
		assert.ErrorIs(t, err, ErrNotFinite)

		_, err = Calculate(log, op, 1, v)
		assert.ErrorIs(t, err, ErrNotFinite)
	}
}
