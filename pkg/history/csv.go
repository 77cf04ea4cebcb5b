package history

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ternarybob/abacus/pkg/operation"
)

var csvHeader = []string{"Operation", "Operand1", "Operand2", "Result"}

// Save writes the history to path as CSV, one row per calculation in
// history order, with a header row.
func (m *Manager) Save(path string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write history header: %w", err)
	}
	for _, c := range m.entries {
		row := []string{
			c.Operation,
			formatFloat(c.Operand1),
			formatFloat(c.Operand2),
			formatFloat(c.Result),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write history row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}

// Load replaces the history with the rows parsed from path. A single
// malformed row fails the whole load; the in-memory history is only
// replaced after every row has parsed. Undo/redo state is reset.
func (m *Manager) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read history file: %w", err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(csvHeader)
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("parse history file %s: %w", path, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("history file %s is empty: missing header row", path)
	}
	for i, want := range csvHeader {
		if records[0][i] != want {
			return fmt.Errorf("history file %s has unexpected header %q, want %q",
				path, records[0][i], want)
		}
	}

	loaded := make([]Calculation, 0, len(records)-1)
	for n, row := range records[1:] {
		c, err := parseRow(row)
		if err != nil {
			return fmt.Errorf("history file %s row %d: %w", path, n+1, err)
		}
		loaded = append(loaded, c)
	}

	m.entries = loaded
	m.redo = nil
	return nil
}

// parseRow reconstructs a Calculation, resolving the operation name
// through the factory so unknown operations are rejected.
func parseRow(row []string) (Calculation, error) {
	op, err := operation.New(row[0])
	if err != nil {
		return Calculation{}, err
	}

	vals := make([]float64, 3)
	for i, field := range row[1:] {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Calculation{}, fmt.Errorf("invalid number %q in column %s", field, csvHeader[i+1])
		}
		vals[i] = v
	}

	return Calculation{
		Operation: op.Name(),
		Operand1:  vals[0],
		Operand2:  vals[1],
		Result:    vals[2],
	}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
