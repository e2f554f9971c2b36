package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/runeword/internal/catalog"
)

// CatalogOptions holds flags for the catalog command.
type CatalogOptions struct {
	*RootOptions
	Sort string // "catalog" | "power"
}

// CatalogListing is the payload of the catalog command.
type CatalogListing struct {
	Source string         `json:"source"`
	Runes  []catalog.Rune `json:"runes"`
}

// Text renders the runes as an aligned table.
func (l CatalogListing) Text() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPOWER\tCANNOT LINK WITH")
	for _, r := range l.Runes {
		excl := r.CannotLinkWith
		if excl == "" {
			excl = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", r.Name, r.Power, excl)
	}
	w.Flush()
	return b.String()
}

// IntegrityReport is the payload of the catalog validate command.
type IntegrityReport struct {
	Source string          `json:"source"`
	Valid  bool            `json:"valid"`
	Issues []catalog.Issue `json:"issues"`
}

// Text renders one issue per line followed by a summary.
func (r IntegrityReport) Text() string {
	var b strings.Builder
	for _, issue := range r.Issues {
		fmt.Fprintf(&b, "%s %s\n", issue.Severity, issue.Error())
	}
	if r.Valid {
		fmt.Fprintf(&b, "✓ %s is consistent\n", r.Source)
	} else {
		fmt.Fprintf(&b, "✗ %s has integrity errors\n", r.Source)
	}
	return b.String()
}

// NewCatalogCommand creates the catalog command and its validate subcommand.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the runes in the active catalog",
		Long: `List the runes in the active catalog (--catalog, or the built-in table).

Examples:
  runeword catalog
  runeword catalog --sort power
  runeword catalog --catalog ./runes.cue --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Sort, "sort", "catalog", "row order (catalog|power)")
	cmd.AddCommand(NewCatalogValidateCommand(rootOpts))

	return cmd
}

func runCatalogList(opts *CatalogOptions, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	var runes []catalog.Rune
	cat, err := opts.loadCatalog()
	if err != nil {
		return reportCatalogError(formatter, err)
	}

	switch opts.Sort {
	case "catalog":
		runes = cat.Runes()
	case "power":
		runes = cat.ByPower()
	default:
		msg := fmt.Sprintf("invalid sort %q: must be one of [catalog power]", opts.Sort)
		formatter.Error("E001", msg, nil)
		return reportedExit(ExitCommandError, msg, nil)
	}

	return formatter.Success(CatalogListing{Source: opts.source(), Runes: runes})
}

// NewCatalogValidateCommand creates the catalog validate command.
func NewCatalogValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a catalog's exclusion references",
		Long: `Validate a rune catalog file (or the active catalog when no file is given).

Reports exclusions that name a missing rune, runes that exclude
themselves, and one-way exclusions (warnings only).

Exit codes:
  0 - No integrity errors (warnings allowed)
  1 - One or more integrity errors
  2 - Command error (unreadable or malformed catalog)

Examples:
  runeword catalog validate
  runeword catalog validate ./runes.cue
  runeword catalog validate ./runes.yaml --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := *rootOpts
			if len(args) == 1 {
				opts.Catalog = args[0]
			}
			return runCatalogValidate(&opts, cmd)
		},
	}
	return cmd
}

func runCatalogValidate(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	cat, err := opts.loadCatalog()
	if err != nil {
		return reportCatalogError(formatter, err)
	}

	issues := cat.Integrity()
	if issues == nil {
		issues = []catalog.Issue{}
	}
	for _, issue := range issues {
		opts.logger().Debug("integrity issue", "rune", issue.Rune, "code", issue.Code, "severity", issue.Severity)
	}

	report := IntegrityReport{
		Source: opts.source(),
		Valid:  !catalog.HasErrors(issues),
		Issues: issues,
	}
	if !report.Valid {
		formatter.Failure(report)
		return reportedExit(ExitFailure, "catalog has integrity errors", nil)
	}
	return formatter.Success(report)
}

// source names the active catalog for output.
func (o *RootOptions) source() string {
	if o.Catalog == "" {
		return "built-in"
	}
	return o.Catalog
}

// reportCatalogError prints a catalog load failure as a command error.
func reportCatalogError(f *OutputFormatter, err error) error {
	code := catalog.ErrCodeGeneric
	var loadErr *catalog.LoadError
	if errors.As(err, &loadErr) {
		code = loadErr.Code
	}
	f.Error(code, err.Error(), nil)
	return reportedExit(ExitCommandError, "failed to load catalog", err)
}
