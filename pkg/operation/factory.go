package operation

import (
	"fmt"
	"strings"
)

// New resolves an operation by name. Lookup is case-insensitive and
// exact; any name outside the four supported operations reports
// ErrUnknownOperation as a normal error value.
func New(name string) (Operation, error) {
	switch strings.ToLower(name) {
	case "add":
		return addition{}, nil
	case "subtract":
		return subtraction{}, nil
	case "multiply":
		return multiplication{}, nil
	case "divide":
		return division{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
}

// Names returns the supported operation names in a stable order.
func Names() []string {
	return []string{"add", "subtract", "multiply", "divide"}
}
