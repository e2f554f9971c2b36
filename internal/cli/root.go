package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/runeword/internal/catalog"
	"github.com/roach88/runeword/internal/word"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "json" | "text"
	Catalog   string // catalog file; empty means the built-in table
	MaxWords  int
	Symmetric bool

	// IDGen allows overriding the request ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDGen IDGenerator

	// Logger is installed by the root command. Nil discards logs.
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the runeword CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "runeword",
		Short: "runeword - forge and check runic words",
		Long: `Forge runic words from a rune catalog and check words against it.

A runic word is a hyphen-joined list of rune names, e.g. Ber-Ohm-Lo.
Its power is the sum of its runes' powers.

Defaults can be set in the environment:
  RUNEWORD_CATALOG    catalog file (.cue, .yaml)
  RUNEWORD_FORMAT     text | json
  RUNEWORD_MAX_WORDS  words per generate call (default 10)
  RUNEWORD_SYMMETRIC  true to enforce exclusions both ways
  RUNEWORD_VERBOSE    true for debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return NewExitError(ExitCommandError, err.Error())
			}
			opts.apply(cfg, cmd)

			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Catalog, "catalog", "", "rune catalog file (.cue, .yaml); built-in table if empty")
	cmd.PersistentFlags().IntVar(&opts.MaxWords, "max-words", word.DefaultMaxWords, "maximum number of words to generate")
	cmd.PersistentFlags().BoolVar(&opts.Symmetric, "symmetric", false, "enforce exclusions in both directions")

	// Add subcommands
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// apply copies env config into every option whose flag was not set
// explicitly on the command line.
func (o *RootOptions) apply(cfg Config, cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("format") && cfg.Format != "" {
		o.Format = cfg.Format
	}
	if !flags.Changed("catalog") {
		o.Catalog = cfg.Catalog
	}
	if !flags.Changed("max-words") {
		o.MaxWords = cfg.MaxWords
	}
	if !flags.Changed("symmetric") {
		o.Symmetric = cfg.Symmetric
	}
	if !flags.Changed("verbose") {
		o.Verbose = cfg.Verbose
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newLogger configures logging based on the verbose flag.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// loadCatalog returns the configured catalog, or the built-in table.
func (o *RootOptions) loadCatalog() (*catalog.Catalog, error) {
	if o.Catalog == "" {
		return catalog.Default(), nil
	}
	o.logger().Debug("loading catalog", "path", o.Catalog)
	return catalog.LoadFile(o.Catalog)
}

// wordOptions translates global flags into generator/validator options.
func (o *RootOptions) wordOptions() []word.Option {
	opts := []word.Option{word.WithLogger(o.logger())}
	if o.MaxWords > 0 {
		opts = append(opts, word.WithMaxWords(o.MaxWords))
	}
	if o.Symmetric {
		opts = append(opts, word.WithLinkRule(word.Symmetric))
	}
	return opts
}

// newFormatter builds the output formatter for one command invocation.
func (o *RootOptions) newFormatter(cmd *cobra.Command) *OutputFormatter {
	gen := o.IDGen
	if gen == nil {
		gen = UUIDv7Generator{}
	}
	requestID := gen.Generate()
	o.logger().Debug("request", "command", cmd.Name(), "request_id", requestID)

	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
		TraceID:   requestID,
	}
}

// Execute runs the root command with args and returns the process exit
// code. Errors not already written by a command are printed to errOut.
func Execute(args []string, out, errOut io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	// Flag and argument errors from cobra carry no exit code.
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return ExitCommandError
	}
	if !exitErr.Reported {
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	return exitErr.Code
}
