// Package history stores completed calculations in order and supports
// undo/redo plus CSV persistence.
package history

import "fmt"

// Calculation records one completed arithmetic operation. Fields are
// fixed at creation and never change after the record is appended.
type Calculation struct {
	Operation string
	Operand1  float64
	Operand2  float64
	Result    float64
}

// String renders the calculation as "<op> <a> <b> = <result>".
func (c Calculation) String() string {
	return fmt.Sprintf("%s %v %v = %v", c.Operation, c.Operand1, c.Operand2, c.Result)
}
