//go:build !cli

package main

import (
	"NumCrypt/internal/cli"
	"NumCrypt/internal/ui"
)

// run is the GUI+CLI entry point.
// It first checks for CLI subcommands, and if none are found, launches the GUI.
func run() {
	// Check for CLI mode first (encrypt/decrypt subcommands)
	if cli.Execute(version) {
		return
	}

	// Launch the graphical user interface: home, encrypt, and decrypt
	// screens, with results shown in a modal dialog.
	ui.NewApp(version).Run()
}
