package word

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes usage errors.
type ErrorCode string

const (
	// ErrCodeLengthNotNumber indicates a length that is not an integer.
	ErrCodeLengthNotNumber ErrorCode = "LENGTH_NOT_NUMBER"

	// ErrCodeLengthNotPositive indicates a length of zero or less.
	ErrCodeLengthNotPositive ErrorCode = "LENGTH_NOT_POSITIVE"

	// ErrCodeLengthTooLarge indicates a length above the catalog size.
	ErrCodeLengthTooLarge ErrorCode = "LENGTH_TOO_LARGE"

	// ErrCodeNoWords indicates the generator could not complete a single word.
	ErrCodeNoWords ErrorCode = "NO_WORDS"

	// ErrCodeWordNotString indicates a word that is missing or not a string.
	ErrCodeWordNotString ErrorCode = "WORD_NOT_STRING"

	// ErrCodeWordEmpty indicates an empty word.
	ErrCodeWordEmpty ErrorCode = "WORD_EMPTY"

	// ErrCodeWordFormat indicates a word that splits into nothing.
	ErrCodeWordFormat ErrorCode = "WORD_FORMAT"

	// ErrCodeUnknownRune indicates a name not present in the catalog.
	ErrCodeUnknownRune ErrorCode = "UNKNOWN_RUNE"

	// ErrCodeIllegalCombination indicates two runes that exclude each other.
	ErrCodeIllegalCombination ErrorCode = "ILLEGAL_COMBINATION"
)

// UsageError is returned by Generate and Check for bad input.
//
// Error() returns Message unchanged; existing callers match on the exact
// text, so messages must not be reworded.
type UsageError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is the human-readable description.
	Message string

	// Rune is the offending rune name (UNKNOWN_RUNE only).
	Rune string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Message
}

// IsUsageError returns true if err is (or wraps) a *UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// Code returns the ErrorCode of a usage error, or "" for any other error.
func Code(err error) ErrorCode {
	var ue *UsageError
	if errors.As(err, &ue) {
		return ue.Code
	}
	return ""
}

func errLengthNotNumber() *UsageError {
	return &UsageError{Code: ErrCodeLengthNotNumber, Message: "length has to be number"}
}

func errLengthNotPositive() *UsageError {
	return &UsageError{Code: ErrCodeLengthNotPositive, Message: "length has to greater than 0"}
}

func errLengthTooLarge(size int) *UsageError {
	return &UsageError{Code: ErrCodeLengthTooLarge, Message: fmt.Sprintf("length has to be smaller than %d", size)}
}

func errNoWords(length int) *UsageError {
	return &UsageError{Code: ErrCodeNoWords, Message: fmt.Sprintf("Could not create any Runic Words with a length of %d", length)}
}

func errWordNotString() *UsageError {
	return &UsageError{Code: ErrCodeWordNotString, Message: "runicWord has to be a string in Runic Word Format"}
}

func errWordEmpty() *UsageError {
	return &UsageError{Code: ErrCodeWordEmpty, Message: "runicWord cannot be an empty string"}
}

func errWordFormat() *UsageError {
	return &UsageError{Code: ErrCodeWordFormat, Message: "runicWord has to be in Runic Word Format"}
}

func errUnknownRune(name string) *UsageError {
	return &UsageError{
		Code:    ErrCodeUnknownRune,
		Message: "runicWord has to contain only Runes from the list. Cannot use " + name,
		Rune:    name,
	}
}

func errIllegalCombination() *UsageError {
	return &UsageError{Code: ErrCodeIllegalCombination, Message: "This runicWord has an illegal combination of Runes"}
}
