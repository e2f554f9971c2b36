package catalog

// Delimiter joins rune names into a runic word.
const Delimiter = "-"

// Rune is a single catalog entry.
type Rune struct {
	// Name identifies the rune (e.g. "Ber").
	Name string `json:"name" yaml:"name"`

	// Power is the rune's weight. Always positive.
	Power int `json:"power" yaml:"power"`

	// CannotLinkWith names the rune this one excludes, or "" for none.
	// The exclusion only points one way: El excluding Ort says nothing
	// about Ort excluding El.
	CannotLinkWith string `json:"cannot_link_with,omitempty" yaml:"cannot_link_with,omitempty"`
}

// Excludes reports whether r forbids other from joining a word that
// already holds r.
func (r Rune) Excludes(other Rune) bool {
	return r.CannotLinkWith != "" && r.CannotLinkWith == other.Name
}
