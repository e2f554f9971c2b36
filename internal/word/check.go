package word

import (
	"strings"

	"github.com/roach88/runeword/internal/catalog"
)

// Check validates word against cat and returns its power.
//
// Every name is checked in order from the first: it must exist in the
// catalog and the link rule must admit it against the names before it.
// Repeated names are allowed as long as no exclusion forbids them.
//
// Errors (all *UsageError):
//   - "": "runicWord cannot be an empty string"
//   - unknown name X: "runicWord has to contain only Runes from the list. Cannot use X"
//   - excluded pair: "This runicWord has an illegal combination of Runes"
func Check(cat *catalog.Catalog, word string, opts ...Option) (int, error) {
	o := newOptions(opts)

	if word == "" {
		return 0, errWordEmpty()
	}

	names := strings.Split(word, catalog.Delimiter)
	if len(names) == 0 {
		return 0, errWordFormat()
	}

	accepted := make([]catalog.Rune, 0, len(names))
	for _, name := range names {
		r, ok := cat.Lookup(name)
		if !ok {
			return 0, errUnknownRune(name)
		}
		if !o.rule.Admits(accepted, r) {
			o.logger.Debug("illegal combination", "rune", r.Name, "after", Join(accepted))
			return 0, errIllegalCombination()
		}
		accepted = append(accepted, r)
	}

	power, err := Power(cat, word)
	if err != nil {
		return 0, err
	}
	return power, nil
}

// CheckValue is Check for untyped input. nil and non-string values fail
// with "runicWord has to be a string in Runic Word Format".
func CheckValue(cat *catalog.Catalog, v any, opts ...Option) (int, error) {
	word, ok := v.(string)
	if !ok {
		return 0, errWordNotString()
	}
	return Check(cat, word, opts...)
}
