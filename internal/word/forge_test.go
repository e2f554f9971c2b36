package word

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/runeword/internal/catalog"
	"github.com/roach88/runeword/internal/testutil"
)

func names(words []Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Name
	}
	return out
}

func TestForgeDefaultLengthOne(t *testing.T) {
	words := Forge(catalog.Default(), 1)

	assert.Equal(t, []string{"Eld", "Lum", "Eth", "Sur", "Cham", "El", "Ko", "Lem", "Ral", "Vex"}, names(words))
	assert.Equal(t, Word{Name: "Eld", Power: 33}, words[0])
}

func TestForgeDefaultLengthTwo(t *testing.T) {
	words := Forge(catalog.Default(), 2)

	assert.Equal(t, []Word{
		{Name: "Eld-Lum", Power: 65},
		{Name: "Eth-Sur", Power: 61},
		{Name: "Cham-El", Power: 57},
		{Name: "Ko-Lem", Power: 53},
		{Name: "Ral-Vex", Power: 49},
		{Name: "Gul-Ith", Power: 45},
		{Name: "Mal-Io", Power: 41},
		{Name: "Zod-Ort", Power: 37},
		{Name: "Shael-Um", Power: 33},
		{Name: "Pul-Fal", Power: 29},
	}, words)
}

func TestForgeDefaultWordCounts(t *testing.T) {
	// Word count per length for the reference table.
	want := map[int]int{
		1: 10, 2: 10, 3: 10, 4: 8, 5: 6, 6: 5, 7: 4, 8: 4, 9: 3,
		10: 3, 11: 2, 12: 2, 13: 2, 14: 2, 15: 2, 16: 2, 17: 1, 18: 1,
		19: 0, 25: 0, 33: 0,
	}
	for length, count := range want {
		assert.Len(t, Forge(catalog.Default(), length), count, "length %d", length)
	}
}

func TestForgeLongestWord(t *testing.T) {
	words := Forge(catalog.Default(), 18)
	require.Len(t, words, 1)
	assert.Equal(t, Word{Name: "Eld-Lum-Eth-Cham-El-Ko-Lem-Ral-Vex-Ith-Io-Zod-Shael-Fal-Thul-Hel-Nef-Ber", Power: 382}, words[0])
}

func TestForgeProperties(t *testing.T) {
	cat := catalog.Default()

	for length := 1; length <= cat.Len(); length++ {
		words := Forge(cat, length)
		assert.LessOrEqual(t, len(words), DefaultMaxWords)

		spent := make(map[string]bool)
		for _, w := range words {
			parts := strings.Split(w.Name, catalog.Delimiter)
			require.Len(t, parts, length, "word %s", w.Name)

			runes := make([]catalog.Rune, 0, length)
			for _, p := range parts {
				assert.False(t, spent[p], "rune %s reused across words", p)
				spent[p] = true

				r, ok := cat.Lookup(p)
				require.True(t, ok)
				for _, prev := range runes {
					assert.False(t, prev.Excludes(r), "%s excludes %s in %s", prev.Name, r.Name, w.Name)
				}
				runes = append(runes, r)
			}

			power, err := Power(cat, w.Name)
			require.NoError(t, err)
			assert.Equal(t, power, w.Power)

			checked, err := Check(cat, w.Name)
			require.NoError(t, err, "round trip of %s", w.Name)
			assert.Equal(t, w.Power, checked)
		}
	}
}

func TestForgeIdempotent(t *testing.T) {
	cat := catalog.Default()
	before := cat.Runes()

	first := Forge(cat, 4)
	second := Forge(cat, 4)

	assert.Equal(t, first, second)
	assert.Equal(t, before, cat.Runes(), "catalog unchanged")
}

func TestForgeNonPositiveLength(t *testing.T) {
	assert.Nil(t, Forge(catalog.Default(), 0))
	assert.Nil(t, Forge(catalog.Default(), -2))
}

func TestForgeLengthAboveCatalog(t *testing.T) {
	assert.Nil(t, Forge(testutil.ChainCatalog(), 6))
}

func TestForgeChainCatalog(t *testing.T) {
	cat := testutil.ChainCatalog()

	assert.Equal(t, []Word{{Name: "A-C", Power: 8}, {Name: "B-D", Power: 6}}, Forge(cat, 2))
	assert.Equal(t, []Word{{Name: "A-C-D", Power: 10}}, Forge(cat, 3))
	assert.Empty(t, Forge(cat, 5), "A excludes B, so five runes never fit")
}

func TestForgeSymmetricRule(t *testing.T) {
	cat := testutil.ChainCatalog()

	words := Forge(cat, 3, WithLinkRule(Symmetric))
	assert.Equal(t, []Word{{Name: "A-C-E", Power: 9}}, words)
}

func TestForgeCycleCatalog(t *testing.T) {
	cat := testutil.CycleCatalog()

	assert.Equal(t, []Word{{Name: "X-Z", Power: 4}}, Forge(cat, 2))
	assert.Empty(t, Forge(cat, 3))
	assert.Equal(t, []string{"X", "Y", "Z"}, names(Forge(cat, 1)))
}

func TestForgeTiesKeepCatalogOrder(t *testing.T) {
	words := Forge(testutil.TiedCatalog(), 2)
	assert.Equal(t, []Word{{Name: "Q-S", Power: 14}, {Name: "P-R", Power: 4}}, words)
}

func TestForgeMaxWords(t *testing.T) {
	words := Forge(catalog.Default(), 1, WithMaxWords(3))
	assert.Equal(t, []string{"Eld", "Lum", "Eth"}, names(words))

	words = Forge(catalog.Default(), 1, WithMaxWords(40))
	assert.Len(t, words, 33)

	words = Forge(catalog.Default(), 1, WithMaxWords(0))
	assert.Len(t, words, DefaultMaxWords, "non-positive max is ignored")
}

func TestForgeLogsAbandonedWord(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Forge(testutil.CycleCatalog(), 3, WithLogger(logger))

	out := buf.String()
	assert.Contains(t, out, "rune rejected")
	assert.Contains(t, out, "word abandoned")
	assert.Contains(t, out, "partial=X-Z")
}

func TestForgeGolden(t *testing.T) {
	tests := []struct {
		name   string
		length int
		opts   []Option
	}{
		{"generate_length_3", 3, nil},
		{"generate_length_17", 17, nil},
		{"generate_length_17_symmetric", 17, []Option{WithLinkRule(Symmetric)}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := Forge(catalog.Default(), tt.length, tt.opts...)
			data, err := json.MarshalIndent(words, "", "  ")
			require.NoError(t, err)
			g.Assert(t, tt.name, append(data, '\n'))
		})
	}
}
