package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Catalog is an immutable, ordered set of runes, unique by name.
//
// Thread-safety: a Catalog is never mutated after New returns and is safe
// for concurrent use.
type Catalog struct {
	runes []Rune
	index map[string]int
}

// New builds a catalog from runes, preserving their order.
//
// Names and exclusion targets are NFC-normalized. New rejects empty names,
// names containing Delimiter, duplicate names and non-positive power.
// Exclusion targets that name no rune in the catalog are accepted; use
// Integrity to report them.
func New(runes []Rune) (*Catalog, error) {
	if len(runes) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		runes: make([]Rune, len(runes)),
		index: make(map[string]int, len(runes)),
	}
	for i, r := range runes {
		r.Name = norm.NFC.String(r.Name)
		r.CannotLinkWith = norm.NFC.String(r.CannotLinkWith)

		switch {
		case r.Name == "":
			return nil, fmt.Errorf("rune %d: %w", i, ErrEmptyName)
		case strings.Contains(r.Name, Delimiter):
			return nil, fmt.Errorf("rune %q: %w", r.Name, ErrDelimiterInName)
		case r.Power <= 0:
			return nil, fmt.Errorf("rune %q (power %d): %w", r.Name, r.Power, ErrNonPositivePower)
		}
		if _, dup := c.index[r.Name]; dup {
			return nil, fmt.Errorf("rune %q: %w", r.Name, ErrDuplicateName)
		}

		c.runes[i] = r
		c.index[r.Name] = i
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for static tables.
func MustNew(runes []Rune) *Catalog {
	c, err := New(runes)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of runes.
func (c *Catalog) Len() int {
	return len(c.runes)
}

// Runes returns a copy of the runes in catalog order.
func (c *Catalog) Runes() []Rune {
	out := make([]Rune, len(c.runes))
	copy(out, c.runes)
	return out
}

// ByPower returns a copy of the runes sorted by descending power.
// Runes of equal power keep their catalog order.
func (c *Catalog) ByPower() []Rune {
	out := c.Runes()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Power > out[j].Power
	})
	return out
}

// Lookup returns the rune with the given name.
func (c *Catalog) Lookup(name string) (Rune, bool) {
	i, ok := c.index[norm.NFC.String(name)]
	if !ok {
		return Rune{}, false
	}
	return c.runes[i], true
}

// Get is like Lookup but returns ErrUnknownRune for a missing name.
func (c *Catalog) Get(name string) (Rune, error) {
	r, ok := c.Lookup(name)
	if !ok {
		return Rune{}, fmt.Errorf("%w: %q", ErrUnknownRune, name)
	}
	return r, nil
}

// Contains reports whether name is in the catalog.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}
