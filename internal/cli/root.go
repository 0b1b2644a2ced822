package cli

import (
	"os"

	"NumCrypt/internal/log"

	"github.com/spf13/cobra"
)

// Version is set by main.go
var Version = "dev"

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "NumCrypt",
	Short: "6-digit number encryption tool",
	Long: `NumCrypt transforms a 6-digit number with a fixed, reversible
digit-substitution scheme and recovers the original:
  - each digit is shifted by +7 modulo 10
  - digit positions (1,3), (2,4), and (5,6) are exchanged

This is a reversible substitution for casual obscurity, not a
cryptographic cipher: there is no key and no security property.`,
	Version: Version,
}

var verbose bool

// Execute runs the CLI application.
// Returns true if CLI mode was activated, false if GUI should run instead.
func Execute(version string) bool {
	Version = version
	rootCmd.Version = version

	// Check if we're in CLI mode (have subcommands)
	if len(os.Args) < 2 {
		return false
	}

	// Check if first arg is a known subcommand
	if !isSubcommand(os.Args[1]) {
		return false
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	return true
}

// isSubcommand reports whether arg activates CLI mode. Anything else makes
// Execute return false so the GUI build falls through to the window.
func isSubcommand(arg string) bool {
	switch arg {
	case "encrypt", "decrypt", "help", "--help", "-h", "version", "--version", "-v":
		return true
	}
	return false
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging to stderr")
	cobra.OnInitialize(func() {
		if verbose {
			log.EnableDebugLogging()
		}
	})
}
