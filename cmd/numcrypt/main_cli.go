//go:build cli

package main

import (
	"fmt"
	"os"

	"NumCrypt/internal/cli"
)

// run is the CLI-only entry point.
// This build excludes all GUI dependencies (Fyne, OpenGL, etc.) and can run
// on headless systems without graphics hardware.
func run() {
	if !cli.Execute(version) {
		fmt.Fprintf(os.Stderr, "NumCrypt %s (CLI-only build)\n", version)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: NumCrypt <command> [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  encrypt    Encrypt a 6-digit number")
		fmt.Fprintln(os.Stderr, "  decrypt    Decrypt an encrypted 6-digit number")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Run 'NumCrypt <command> --help' for more information.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "The GUI is not available in this build. Use the default build for GUI support.")
		os.Exit(1)
	}
}
