package word

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/runeword/internal/catalog"
	"github.com/roach88/runeword/internal/testutil"
)

func mustRunes(t *testing.T, cat *catalog.Catalog, names ...string) []catalog.Rune {
	t.Helper()
	out := make([]catalog.Rune, len(names))
	for i, n := range names {
		r, err := cat.Get(n)
		if err != nil {
			t.Fatalf("lookup %s: %v", n, err)
		}
		out[i] = r
	}
	return out
}

func TestCanLink(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name      string
		selected  []string
		candidate string
		want      bool
	}{
		{"empty selection admits anything", nil, "Ort", true},
		{"selected rune excludes candidate", []string{"Ber", "El"}, "Ort", false},
		{"unrelated runes", []string{"Ber", "Ohm"}, "Lo", true},
		{"candidate excluding selected is not checked", []string{"Lem"}, "Shael", true},
		{"selected excluding candidate", []string{"Shael"}, "Lem", false},
		{"misspelled target matches nothing", []string{"Sol"}, "Thul", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := mustRunes(t, cat, tt.selected...)
			candidate := mustRunes(t, cat, tt.candidate)[0]
			assert.Equal(t, tt.want, CanLink(selected, candidate))
		})
	}
}

func TestLinkRuleAdmits(t *testing.T) {
	cat := testutil.ChainCatalog()
	a := mustRunes(t, cat, "A")
	d := mustRunes(t, cat, "D")[0]

	assert.True(t, Forward.Admits(a, d), "forward ignores D→A")
	assert.False(t, Symmetric.Admits(a, d), "symmetric honours D→A")

	b := mustRunes(t, cat, "B")[0]
	assert.False(t, Forward.Admits(a, b))
	assert.False(t, Symmetric.Admits(a, b))
}

func TestLinkRuleString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "symmetric", Symmetric.String())
	assert.Equal(t, "LinkRule(7)", LinkRule(7).String())
}
