package word

import (
	"fmt"

	"github.com/roach88/runeword/internal/catalog"
)

// LinkRule decides which exclusions block a candidate rune.
type LinkRule int

const (
	// Forward rejects a candidate only when a selected rune excludes it.
	// This is the default.
	Forward LinkRule = iota

	// Symmetric also rejects a candidate that itself excludes a selected rune.
	Symmetric
)

// String returns the rule name used in flags and config.
func (r LinkRule) String() string {
	switch r {
	case Forward:
		return "forward"
	case Symmetric:
		return "symmetric"
	default:
		return fmt.Sprintf("LinkRule(%d)", int(r))
	}
}

// CanLink reports whether candidate may join selected under the Forward
// rule: no rune in selected names candidate as its CannotLinkWith.
//
// The candidate's own CannotLinkWith is not consulted.
func CanLink(selected []catalog.Rune, candidate catalog.Rune) bool {
	for _, r := range selected {
		if r.Excludes(candidate) {
			return false
		}
	}
	return true
}

// Admits reports whether candidate may join selected under rule r.
func (r LinkRule) Admits(selected []catalog.Rune, candidate catalog.Rune) bool {
	if !CanLink(selected, candidate) {
		return false
	}
	if r != Symmetric {
		return true
	}
	for _, s := range selected {
		if candidate.Excludes(s) {
			return false
		}
	}
	return true
}
