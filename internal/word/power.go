package word

import (
	"fmt"
	"strings"

	"github.com/roach88/runeword/internal/catalog"
)

// Power returns the sum of the powers of the runes named in word.
//
// Power does not check exclusions. An unknown name returns an error
// wrapping catalog.ErrUnknownRune; callers that need the user-facing
// message should go through Check.
func Power(cat *catalog.Catalog, word string) (int, error) {
	total := 0
	for _, name := range strings.Split(word, catalog.Delimiter) {
		r, err := cat.Get(name)
		if err != nil {
			return 0, fmt.Errorf("power of %q: %w", word, err)
		}
		total += r.Power
	}
	return total, nil
}

// Join renders runes in runic word format.
func Join(runes []catalog.Rune) string {
	names := make([]string, len(runes))
	for i, r := range runes {
		names[i] = r.Name
	}
	return strings.Join(names, catalog.Delimiter)
}

func sumPower(runes []catalog.Rune) int {
	total := 0
	for _, r := range runes {
		total += r.Power
	}
	return total
}
