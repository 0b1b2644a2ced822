package cli

import (
	"fmt"

	"NumCrypt/internal/crypto"
	"NumCrypt/internal/log"

	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt [number]",
	Short: "Decrypt an encrypted 6-digit number",
	Long: `Decrypt a previously encrypted 6-digit number back to the original.

Any 6-digit number is accepted, whether or not it came from 'encrypt'.
The original number is printed on stdout.

Examples:
  # Decrypt a number given on the command line
  NumCrypt decrypt 018932

  # Decrypt interactively (prompts, input hidden)
  NumCrypt decrypt

  # Read the number from stdin (for scripts)
  echo "018932" | NumCrypt decrypt --stdin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecrypt,
}

// Decrypt flags
var (
	decStdin bool
	decQuiet bool
)

func init() {
	rootCmd.AddCommand(decryptCmd)

	decryptCmd.Flags().BoolVarP(&decStdin, "stdin", "N", false, "Read the number from stdin")
	decryptCmd.Flags().BoolVarP(&decQuiet, "quiet", "q", false, "Suppress informational output")

	decryptCmd.SilenceErrors = true
	decryptCmd.SilenceUsage = true
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	number, err := resolveNumber(args, decStdin, "Number to decrypt: ")
	if err != nil {
		return err
	}

	log.Debug("running transform", log.String("mode", "decrypt"))

	result, err := crypto.Decrypt(number)
	if err != nil {
		return describeInvalidInput(err)
	}

	if !decQuiet {
		fmt.Fprintln(cmd.ErrOrStderr(), "Decrypted:")
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
