package word

import (
	"log/slog"

	"github.com/roach88/runeword/internal/catalog"
)

// Word is one generated runic word.
type Word struct {
	Name  string `json:"word" yaml:"word"`
	Power int    `json:"power" yaml:"power"`
}

// Forge greedily builds up to MaxWords words of exactly length runes.
//
// Runes are visited by descending power (ties in catalog order). Each word
// starts from the strongest unused rune and admits every following unused
// rune the link rule allows until it is full. Once a word is complete its
// runes are spent. The first word that cannot be completed ends the run and
// is discarded, as is any attempt once fewer than length runes remain.
//
// Words come out in construction order, which tends toward descending power
// but is not sorted. The result is nil when no word can be completed or
// length is not positive.
func Forge(cat *catalog.Catalog, length int, opts ...Option) []Word {
	o := newOptions(opts)
	if length <= 0 {
		return nil
	}

	pool := cat.ByPower()
	used := make([]bool, len(pool))
	remaining := len(pool)

	var words []Word
	selected := make([]catalog.Rune, 0, length)
	picked := make([]int, 0, length)

	for len(words) < o.maxWords && remaining >= length {
		selected = selected[:0]
		picked = picked[:0]

		for i, r := range pool {
			if len(selected) == length {
				break
			}
			if used[i] {
				continue
			}
			if !o.rule.Admits(selected, r) {
				o.logger.Debug("rune rejected", slog.String("rune", r.Name), slog.String("word", Join(selected)))
				continue
			}
			selected = append(selected, r)
			picked = append(picked, i)
		}

		if len(selected) < length {
			o.logger.Debug("word abandoned",
				slog.String("partial", Join(selected)),
				slog.Int("length", length),
				slog.Int("remaining", remaining))
			break
		}

		words = append(words, Word{Name: Join(selected), Power: sumPower(selected)})
		for _, i := range picked {
			used[i] = true
		}
		remaining -= length
	}

	return words
}
