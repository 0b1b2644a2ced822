// Package cli provides command-line interface functionality for NumCrypt.
package cli

import (
	"fmt"

	"NumCrypt/internal/crypto"
	errs "NumCrypt/internal/errors"
	"NumCrypt/internal/log"

	"github.com/spf13/cobra"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt [number]",
	Short: "Encrypt a 6-digit number",
	Long: `Encrypt a 6-digit number with the digit-substitution scheme.

The number can be given as an argument, piped via --stdin, or entered
interactively (hidden while typing). The encrypted number is printed
on stdout.

Examples:
  # Encrypt a number given on the command line (visible in shell history)
  NumCrypt encrypt 123456

  # Encrypt interactively (prompts, input hidden)
  NumCrypt encrypt

  # Read the number from stdin (for scripts)
  echo "123456" | NumCrypt encrypt --stdin

  # Only the result on stdout, nothing else
  NumCrypt encrypt 123456 --quiet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEncrypt,
}

// Encrypt flags
var (
	encStdin bool
	encQuiet bool
)

func init() {
	rootCmd.AddCommand(encryptCmd)

	encryptCmd.Flags().BoolVarP(&encStdin, "stdin", "N", false, "Read the number from stdin")
	encryptCmd.Flags().BoolVarP(&encQuiet, "quiet", "q", false, "Suppress informational output")

	// Silence Cobra's default error/usage printing - we handle it ourselves
	encryptCmd.SilenceErrors = true
	encryptCmd.SilenceUsage = true
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	number, err := resolveNumber(args, encStdin, "Number to encrypt: ")
	if err != nil {
		return err
	}

	log.Debug("running transform", log.String("mode", "encrypt"))

	result, err := crypto.Encrypt(number)
	if err != nil {
		return describeInvalidInput(err)
	}

	if !encQuiet {
		fmt.Fprintln(cmd.ErrOrStderr(), "Encrypted:")
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// resolveNumber picks the input number from the argument, stdin, or an
// interactive prompt, in that order of preference.
func resolveNumber(args []string, fromStdin bool, prompt string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if fromStdin {
		return ReadNumberFromStdin()
	}
	return ReadNumberInteractive(prompt)
}

// describeInvalidInput turns the structural validation error into the uniform
// user-facing message; the structural detail goes to the debug log only.
func describeInvalidInput(err error) error {
	if !errs.IsInvalidInput(err) {
		return err
	}
	log.Debug("input rejected", log.Err(err))
	return fmt.Errorf("please enter a 6-digit number")
}
