// Package repl implements the interactive command loop.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/abacus/internal/config"
	"github.com/ternarybob/abacus/pkg/calculator"
	"github.com/ternarybob/abacus/pkg/operation"
)

// State represents the command loop state.
type State int

const (
	// StateRunning means the loop is reading and executing commands.
	StateRunning State = iota
	// StateTerminated means the loop has stopped.
	StateTerminated
)

// String returns the string representation of a loop state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// REPL reads commands from in and writes responses to out. Every error
// a command can produce is reported to the user and leaves the loop
// running; only "exit" or end of input terminates it.
type REPL struct {
	calc      *calculator.Calculator
	cfg       *config.Config
	log       arbor.ILogger
	in        io.Reader
	out       io.Writer
	state     State
	sessionID string
}

// New creates a command loop over the given calculator.
func New(calc *calculator.Calculator, cfg *config.Config, log arbor.ILogger, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		calc:      calc,
		cfg:       cfg,
		log:       log,
		in:        in,
		out:       out,
		sessionID: uuid.NewString(),
	}
}

// State returns the current loop state.
func (r *REPL) State() State {
	return r.state
}

// Run processes commands until "exit" or end of input.
func (r *REPL) Run() error {
	r.state = StateRunning
	r.log.Info().Str("session_id", r.sessionID).Msg("session started")

	fmt.Fprintln(r.out, "Welcome to abacus! Type 'help' for available commands.")

	scanner := bufio.NewScanner(r.in)
	for r.state == StateRunning {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			break
		}
		r.handle(strings.TrimSpace(scanner.Text()))
	}

	r.state = StateTerminated
	r.log.Info().Str("session_id", r.sessionID).Msg("session ended")
	return scanner.Err()
}

func (r *REPL) handle(line string) {
	if line == "" {
		return
	}

	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	r.log.Debug().
		Str("session_id", r.sessionID).
		Str("command", cmd).
		Msg("dispatching command")

	switch cmd {
	case "help":
		r.printHelp()
	case "exit", "quit":
		fmt.Fprintln(r.out, "Exiting calculator...")
		r.state = StateTerminated
	case "history", "list":
		r.printHistory()
	case "clear":
		r.calc.Clear()
		fmt.Fprintln(r.out, "History cleared.")
	case "undo":
		c, err := r.calc.Undo()
		if err != nil {
			fmt.Fprintln(r.out, "Nothing to undo.")
			return
		}
		fmt.Fprintf(r.out, "Undone: %s\n", c)
	case "redo":
		c, err := r.calc.Redo()
		if err != nil {
			fmt.Fprintln(r.out, "Nothing to redo.")
			return
		}
		fmt.Fprintf(r.out, "Redone: %s\n", c)
	case "save":
		r.save(args)
	case "load":
		r.load(args)
	default:
		if _, err := operation.New(cmd); err != nil {
			fmt.Fprintf(r.out, "Unknown command %q. Type 'help' for available commands.\n", cmd)
			return
		}
		r.compute(cmd, args)
	}
}

func (r *REPL) compute(name string, args []string) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "Usage: %s <num1> <num2>\n", name)
		return
	}

	operands := make([]float64, 2)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(r.out, "Invalid operand %q: please enter a number.\n", arg)
			return
		}
		operands[i] = v
	}

	calc, err := r.calc.Compute(name, operands[0], operands[1])
	switch {
	case errors.Is(err, operation.ErrDivisionByZero):
		fmt.Fprintln(r.out, "Division by zero is not allowed.")
	case err != nil:
		fmt.Fprintf(r.out, "Error: %v\n", err)
	default:
		fmt.Fprintf(r.out, "Result: %v\n", calc.Result)
	}
}

func (r *REPL) printHistory() {
	entries := r.calc.History()
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "No calculations in history.")
		return
	}

	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Operation\tOperand1\tOperand2\tResult")
	for _, c := range entries {
		fmt.Fprintf(w, "%s\t%v\t%v\t%v\n", c.Operation, c.Operand1, c.Operand2, c.Result)
	}
	w.Flush()
}

// save falls back to the configured output filename when no argument
// is given. Relative paths resolve against the history directory.
func (r *REPL) save(args []string) {
	name := r.cfg.History.OutputFile
	if len(args) > 0 {
		name = args[0]
	}

	path := r.cfg.ResolveHistoryPath(name)
	if err := r.calc.Save(path); err != nil {
		r.log.Warn().Err(err).Str("session_id", r.sessionID).Msg("save failed")
		fmt.Fprintf(r.out, "Failed to save history: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "History saved to %s.\n", path)
}

func (r *REPL) load(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "Usage: load <filename>")
		return
	}

	path := r.cfg.ResolveHistoryPath(args[0])
	err := r.calc.Load(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintf(r.out, "File %s not found.\n", path)
	case err != nil:
		r.log.Warn().Err(err).Str("session_id", r.sessionID).Msg("load failed")
		fmt.Fprintf(r.out, "Failed to load history: %v\n", err)
	default:
		fmt.Fprintf(r.out, "History loaded from %s.\n", path)
	}
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, `
Available commands:
  add <num1> <num2>       Add two numbers
  subtract <num1> <num2>  Subtract the second number from the first
  multiply <num1> <num2>  Multiply two numbers
  divide <num1> <num2>    Divide the first number by the second
  history, list           Show the calculation history
  clear                   Clear the calculation history
  undo                    Undo the last calculation
  redo                    Redo the last undone calculation
  save [filename]         Save history to a CSV file
  load <filename>         Load history from a CSV file
  help                    Show this help
  exit                    Exit the calculator`)
}
