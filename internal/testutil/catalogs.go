package testutil

import "github.com/roach88/runeword/internal/catalog"

// ChainCatalog returns a five-rune catalog with one-way exclusions
// A→B and B→C, plus D→A pointing back up the chain.
//
//	A(5)→B  B(4)→C  C(3)  D(2)→A  E(1)
func ChainCatalog() *catalog.Catalog {
	return catalog.MustNew([]catalog.Rune{
		{Name: "A", Power: 5, CannotLinkWith: "B"},
		{Name: "B", Power: 4, CannotLinkWith: "C"},
		{Name: "C", Power: 3},
		{Name: "D", Power: 2, CannotLinkWith: "A"},
		{Name: "E", Power: 1},
	})
}

// CycleCatalog returns three runes that exclude each other in a ring, so
// no word can hold all three.
//
//	X(3)→Y  Y(2)→Z  Z(1)→X
func CycleCatalog() *catalog.Catalog {
	return catalog.MustNew([]catalog.Rune{
		{Name: "X", Power: 3, CannotLinkWith: "Y"},
		{Name: "Y", Power: 2, CannotLinkWith: "Z"},
		{Name: "Z", Power: 1, CannotLinkWith: "X"},
	})
}

// TiedCatalog returns runes with equal powers to exercise stable ordering.
func TiedCatalog() *catalog.Catalog {
	return catalog.MustNew([]catalog.Rune{
		{Name: "P", Power: 2},
		{Name: "Q", Power: 7},
		{Name: "R", Power: 2},
		{Name: "S", Power: 7},
	})
}
