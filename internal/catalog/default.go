package catalog

// defaultRunes is the reference rune table.
//
// Two exclusion targets match no rune: Lem's "Shall" and Sol's "Thu".
// They are kept as published; Integrity reports both.
var defaultRunes = []Rune{
	{Name: "El", Power: 28, CannotLinkWith: "Ort"},
	{Name: "Eld", Power: 33, CannotLinkWith: "Sur"},
	{Name: "Tir", Power: 9, CannotLinkWith: "Eth"},
	{Name: "Nef", Power: 7, CannotLinkWith: "Ist"},
	{Name: "Eth", Power: 31, CannotLinkWith: "Tir"},
	{Name: "Ith", Power: 22, CannotLinkWith: "Pul"},
	{Name: "Tal", Power: 8, CannotLinkWith: "Io"},
	{Name: "Ral", Power: 25, CannotLinkWith: "Um"},
	{Name: "Ort", Power: 18, CannotLinkWith: "El"},
	{Name: "Thul", Power: 13, CannotLinkWith: "Sol"},
	{Name: "Amn", Power: 6, CannotLinkWith: "Fal"},
	{Name: "Sol", Power: 10, CannotLinkWith: "Thu"},
	{Name: "Shael", Power: 17, CannotLinkWith: "Lem"},
	{Name: "Dol", Power: 11, CannotLinkWith: "Hel"},
	{Name: "Hel", Power: 12, CannotLinkWith: "Dol"},
	{Name: "Io", Power: 20, CannotLinkWith: "Tal"},
	{Name: "Lum", Power: 32, CannotLinkWith: "Gul"},
	{Name: "Ko", Power: 27, CannotLinkWith: "Mal"},
	{Name: "Fal", Power: 14, CannotLinkWith: "Amn"},
	{Name: "Lem", Power: 26, CannotLinkWith: "Shall"},
	{Name: "Pul", Power: 15, CannotLinkWith: "Ith"},
	{Name: "Um", Power: 16, CannotLinkWith: "Ral"},
	{Name: "Mal", Power: 21, CannotLinkWith: "Ko"},
	{Name: "Ist", Power: 4, CannotLinkWith: "Nef"},
	{Name: "Gul", Power: 23, CannotLinkWith: "Lum"},
	{Name: "Vex", Power: 24, CannotLinkWith: "Ohm"},
	{Name: "Ohm", Power: 1, CannotLinkWith: "Vex"},
	{Name: "Lo", Power: 2, CannotLinkWith: "Cham"},
	{Name: "Sur", Power: 30, CannotLinkWith: "Eld"},
	{Name: "Ber", Power: 3},
	{Name: "Jah", Power: 5, CannotLinkWith: "Zod"},
	{Name: "Cham", Power: 29, CannotLinkWith: "Lo"},
	{Name: "Zod", Power: 19, CannotLinkWith: "Jah"},
}

var defaultCatalog = MustNew(defaultRunes)

// Default returns the built-in 33-rune catalog.
func Default() *Catalog {
	return defaultCatalog
}
