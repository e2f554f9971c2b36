// Package catalog holds the rune catalog: the fixed, ordered table of runes
// that runic words are built from.
//
// A Catalog is immutable once built. Accessors return copies, so a single
// catalog can be shared by any number of goroutines without locking.
//
// Catalogs come from three places:
//   - Default(): the built-in 33-rune reference table
//   - LoadCUE: a .cue file unified with an embedded schema
//   - LoadYAML: a .yaml file decoded with strict field checking
//
// Key constraints:
//   - Names are unique, non-empty, and never contain the word delimiter "-"
//   - Power is a positive integer
//   - CannotLinkWith is a one-directional pointer; it is NOT required to
//     resolve (see Integrity)
package catalog
