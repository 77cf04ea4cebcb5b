// Package calculator wires the operation factory, history manager and
// observers behind a single Compute entry point.
package calculator

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/abacus/pkg/history"
	"github.com/ternarybob/abacus/pkg/operation"
)

// Calculator executes named operations and records the results.
// A process is expected to hold at most one logical instance; nothing
// enforces that. Construct it once in main and pass it down.
type Calculator struct {
	log       arbor.ILogger
	history   *history.Manager
	observers []Observer
}

// New creates a calculator over the given history manager.
func New(log arbor.ILogger, hist *history.Manager) *Calculator {
	return &Calculator{
		log:     log,
		history: hist,
	}
}

// Register adds an observer. Observers are notified synchronously in
// registration order after every recorded calculation.
func (c *Calculator) Register(o Observer) {
	c.observers = append(c.observers, o)
}

// Compute resolves name through the operation factory, executes the
// operation and records the result in history. Failed executions
// record nothing: the returned error is operation.ErrUnknownOperation,
// operation.ErrDivisionByZero or operation.ErrNotFinite.
func (c *Calculator) Compute(name string, a, b float64) (history.Calculation, error) {
	op, err := operation.New(name)
	if err != nil {
		return history.Calculation{}, err
	}

	result, err := operation.Calculate(c.log, op, a, b)
	if err != nil {
		return history.Calculation{}, err
	}

	calc := history.Calculation{
		Operation: op.Name(),
		Operand1:  a,
		Operand2:  b,
		Result:    result,
	}
	c.history.Append(calc)
	c.notify(calc)
	return calc, nil
}

// notify runs each observer in order. A panicking observer is logged
// and skipped so the remaining observers still run.
func (c *Calculator) notify(calc history.Calculation) {
	for _, o := range c.observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.log.Error().
						Str("panic", fmt.Sprint(r)).
						Msg("observer panicked during notify")
				}
			}()
			o.Notify(calc)
		}()
	}
}

// Undo removes the most recent calculation from history.
func (c *Calculator) Undo() (history.Calculation, error) {
	return c.history.Undo()
}

// Redo restores the most recently undone calculation.
func (c *Calculator) Redo() (history.Calculation, error) {
	return c.history.Redo()
}

// Clear empties the history and the redo buffer.
func (c *Calculator) Clear() {
	c.history.Clear()
}

// Save writes the history to path as CSV.
func (c *Calculator) Save(path string) error {
	return c.history.Save(path)
}

// Load replaces the history with the contents of path.
func (c *Calculator) Load(path string) error {
	return c.history.Load(path)
}

// History returns a copy of the recorded calculations in order.
func (c *Calculator) History() []history.Calculation {
	return c.history.List()
}
