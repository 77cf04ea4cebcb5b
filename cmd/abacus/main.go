// Package main provides the abacus interactive calculator CLI.
//
// abacus is a terminal read-eval-print calculator that records every
// completed operation in an undoable history and persists it as CSV.
//
// Usage:
//
//	abacus [--config <path>]  - Start the interactive calculator
//	abacus --version          - Print the version and exit
//	abacus help               - Show usage
package main

import (
	"fmt"
	"os"

	"github.com/ternarybob/abacus/internal/config"
	"github.com/ternarybob/abacus/internal/logger"
	"github.com/ternarybob/abacus/internal/repl"
	"github.com/ternarybob/abacus/pkg/calculator"
	"github.com/ternarybob/abacus/pkg/history"
)

const version = "0.1.0"

func main() {
	configPath := config.DefaultConfigPath()

	for i := 1; i < len(os.Args); i++ {
		switch arg := os.Args[i]; arg {
		case "--config":
			i++
			if i >= len(os.Args) {
				fmt.Fprintln(os.Stderr, "error: --config requires a path")
				os.Exit(1)
			}
			configPath = os.Args[i]
		case "--version", "-v":
			fmt.Printf("abacus %s\n", version)
			return
		case "help", "-h", "--help":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown argument: %s\n", arg)
			printUsage()
			os.Exit(1)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log := logger.SetupLogger(cfg)
	defer logger.Stop()
	log.Info().Str("version", version).Msg("abacus starting")

	calc := calculator.New(log, history.NewManager(cfg.History.MaxEntries))
	calc.Register(calculator.NewLogObserver(log))

	if err := repl.New(calc, cfg, log, os.Stdin, os.Stdout).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`abacus - Interactive calculator with history, undo/redo and CSV persistence

Usage:
  abacus [--config <path>]  Start the interactive calculator
  abacus --version          Print the version and exit
  abacus help               Show this help

Interactive commands:
  add|subtract|multiply|divide <num1> <num2>
  history | list | clear | undo | redo
  save [filename] | load <filename>
  help | exit

Configuration is read from the config file (default: ` + config.DefaultConfigPath() + `)
and may be overridden with ABACUS_* environment variables.`)
}
