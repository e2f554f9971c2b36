package catalog

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue/token"
)

var (
	// ErrUnknownRune indicates a name that is not in the catalog.
	ErrUnknownRune = errors.New("catalog: unknown rune")
	// ErrEmptyName indicates a rune without a name.
	ErrEmptyName = errors.New("catalog: rune name must not be empty")
	// ErrDelimiterInName indicates a rune name containing the word delimiter.
	ErrDelimiterInName = errors.New("catalog: rune name must not contain " + `"` + Delimiter + `"`)
	// ErrDuplicateName indicates two runes sharing a name.
	ErrDuplicateName = errors.New("catalog: duplicate rune name")
	// ErrNonPositivePower indicates a rune whose power is zero or negative.
	ErrNonPositivePower = errors.New("catalog: rune power must be positive")
	// ErrEmptyCatalog indicates a catalog with no runes.
	ErrEmptyCatalog = errors.New("catalog: at least one rune is required")
)

// Load error codes, aligned with the CLI error codes.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed
	ErrCodeParseFailed = "E008" // YAML parse failed
	ErrCodeBadFormat   = "E009" // Unsupported file extension
	ErrCodeInvalid     = "E010" // Decoded runes rejected by New
)

// LoadError represents an error that occurred while loading a catalog file.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
	Err     error
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
