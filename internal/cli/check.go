package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/runeword/internal/word"
)

// CheckResult is the payload of a successful check command.
type CheckResult struct {
	Word  string `json:"word"`
	Power int    `json:"power"`
}

// Text renders the word and its power on one line.
func (r CheckResult) Text() string {
	return fmt.Sprintf("%s\t%d\n", r.Word, r.Power)
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <word>",
		Short: "Check a runic word and print its power",
		Long: `Check that every rune in <word> exists and that no earlier rune
excludes a later one, then print the word's total power.

Exit codes:
  0 - Word is valid
  1 - Word is empty, uses an unknown rune, or combines excluded runes
  2 - Command error (unreadable catalog, etc.)

Examples:
  runeword check Ber-Ohm-Lo
  runeword check Lem-Shael --symmetric
  runeword check Jah-Zod --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runCheck(opts *RootOptions, runicWord string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	cat, err := opts.loadCatalog()
	if err != nil {
		return reportCatalogError(formatter, err)
	}

	opts.logger().Debug("check", "word", runicWord)

	power, err := word.Check(cat, runicWord, opts.wordOptions()...)
	if err != nil {
		return reportUsageError(formatter, err)
	}

	return formatter.Success(CheckResult{Word: runicWord, Power: power})
}
