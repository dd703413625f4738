package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"stringcal/internal/logging"
	"stringcal/internal/patch"
	"stringcal/internal/tui"
)

func main() {
	target := flag.String("target", filepath.Join("src", "main.rs"), "Rust source file holding the UNSCALED_RELATIVE_X_POSITIONS block")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "text", "log format (text, json)")
	flag.Parse()

	logger, err := logging.New(logging.Options{Level: *logLevel, Format: *logFormat})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if flag.NArg() > 0 {
		*target = flag.Arg(0)
	}

	m := tui.New(patch.Patcher{Target: *target})
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if err != nil {
		logger.Error("calibration ui failed", "error", err)
		os.Exit(1)
	}

	// The alt screen has closed; replay the session for the console.
	fm := final.(tui.Model)
	for _, line := range fm.Log() {
		fmt.Println(line)
	}
	if !fm.Done() {
		return
	}

	if block := fm.Block(); block != "" {
		fmt.Printf("\n--- New UNSCALED_RELATIVE_X_POSITIONS for %s ---\n", *target)
		fmt.Println(block)
		fmt.Println("-----------------------------------------------------------")
	}
	if err := fm.PatchErr(); err != nil {
		logger.Error("patch failed", "target", *target, "error", err)
		return
	}
	if n := fm.Matches(); n > 1 {
		logger.Warn("multiple matching blocks, replaced the first", "target", *target, "matches", n)
	}
	fmt.Printf("%s updated successfully.\n", *target)
}
