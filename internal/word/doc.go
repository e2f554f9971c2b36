// Package word builds and validates runic words.
//
// A runic word is an ordered, hyphen-joined list of rune names drawn from a
// catalog.Catalog, e.g. "Ber-Ohm-Lo". Its power is the sum of its runes'
// powers.
//
// Two entry points:
//   - Generate greedily forges up to 10 words of a given length
//   - Check validates a caller-supplied word and returns its power
//
// GenerateValue and CheckValue accept untyped input (decoded YAML or JSON)
// and report type mismatches with the fixed messages listed on UsageError.
//
// EXCLUSION RULE:
//
// Each rune may name one rune it cannot link with. The default rule is
// one-directional: a candidate is rejected only if a rune already in the
// word names it. Symmetric is available as an explicit opt-in.
//
// Everything here is a pure function of its inputs and the catalog.
package word
