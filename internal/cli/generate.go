package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/runeword/internal/word"
)

// GenerateResult is the payload of a successful generate command.
type GenerateResult struct {
	Length any         `json:"length"`
	Words  []word.Word `json:"words"`
}

// Text renders one word per line, aligned with its power.
func (r GenerateResult) Text() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for _, wd := range r.Words {
		fmt.Fprintf(w, "%s\t%d\n", wd.Name, wd.Power)
	}
	w.Flush()
	return b.String()
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <length>",
		Short: "Forge runic words of a given length",
		Long: `Forge up to --max-words runic words of exactly <length> runes.

Words are built greedily from the strongest unused rune, so each word
is at least as strong as the next and no rune appears twice.

The argument is read as a YAML scalar, so "x" or "null" are reported
as non-numbers rather than rejected by the flag parser. Use "--" before
negative values.

Exit codes:
  0 - At least one word was forged
  1 - Invalid length, or no word could be forged
  2 - Command error (unreadable catalog, etc.)

Examples:
  runeword generate 3
  runeword generate 17 --symmetric
  runeword generate 2 --max-words 3 --format json
  runeword generate -- -1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runGenerate(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	cat, err := opts.loadCatalog()
	if err != nil {
		return reportCatalogError(formatter, err)
	}

	length := parseScalar(arg)
	opts.logger().Debug("generate", "length", length, "catalog_size", cat.Len())

	words, err := word.GenerateValue(cat, length, opts.wordOptions()...)
	if err != nil {
		return reportUsageError(formatter, err)
	}

	formatter.VerboseLog("forged %d word(s)", len(words))
	return formatter.Success(GenerateResult{Length: length, Words: words})
}

// parseScalar decodes a command-line argument as a YAML scalar. Input that
// is not valid YAML is passed through as the raw string.
func parseScalar(arg string) any {
	var v any
	if err := yaml.Unmarshal([]byte(arg), &v); err != nil {
		return arg
	}
	return v
}

// reportUsageError prints a word usage error and maps it to ExitFailure.
// Errors that are not usage errors are treated as command errors.
func reportUsageError(f *OutputFormatter, err error) error {
	if !word.IsUsageError(err) {
		f.Error("E001", err.Error(), nil)
		return reportedExit(ExitCommandError, "command failed", err)
	}
	f.Error(string(word.Code(err)), err.Error(), nil)
	return reportedExit(ExitFailure, err.Error(), nil)
}
