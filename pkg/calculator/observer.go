package calculator

import (
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/abacus/pkg/history"
)

// Observer is notified after each calculation is appended to history.
type Observer interface {
	Notify(calc history.Calculation)
}

// LogObserver emits a log line for every recorded calculation.
type LogObserver struct {
	log arbor.ILogger
}

// NewLogObserver creates an observer logging through log.
func NewLogObserver(log arbor.ILogger) *LogObserver {
	return &LogObserver{log: log}
}

// Notify logs the recorded calculation.
func (o *LogObserver) Notify(calc history.Calculation) {
	o.log.Info().
		Str("operation", calc.Operation).
		Msg("recorded: " + calc.String())
}
