package catalog

import "fmt"

// Integrity issue codes (E200-E299).
const (
	ErrDanglingExclusion = "E201" // cannot_link_with names no rune in the catalog
	ErrSelfExclusion     = "E202" // rune excludes itself and can never appear in a word
	WarnOneWayExclusion  = "W203" // partner does not exclude back
)

// Severity of an integrity issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single integrity finding.
type Issue struct {
	Rune     string   `json:"rune"`
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	return fmt.Sprintf("[%s] %s: %s", i.Code, i.Rune, i.Message)
}

// Integrity checks that exclusion references are consistent.
// Returns all issues found, in catalog order (does not fail-fast).
//
// The reference table currently reports two dangling targets, "Shall" (Lem)
// and "Thu" (Sol), plus the one-way exclusions they leave behind.
func (c *Catalog) Integrity() []Issue {
	var issues []Issue
	for _, r := range c.runes {
		if r.CannotLinkWith == "" {
			continue
		}
		if r.CannotLinkWith == r.Name {
			issues = append(issues, Issue{
				Rune:     r.Name,
				Code:     ErrSelfExclusion,
				Severity: SeverityError,
				Message:  "rune excludes itself",
			})
			continue
		}
		partner, ok := c.Lookup(r.CannotLinkWith)
		if !ok {
			issues = append(issues, Issue{
				Rune:     r.Name,
				Code:     ErrDanglingExclusion,
				Severity: SeverityError,
				Message:  fmt.Sprintf("cannot_link_with %q does not name a rune in the catalog", r.CannotLinkWith),
			})
			continue
		}
		if !partner.Excludes(r) {
			issues = append(issues, Issue{
				Rune:     r.Name,
				Code:     WarnOneWayExclusion,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("excludes %q but %q does not exclude %q", partner.Name, partner.Name, r.Name),
			})
		}
	}
	return issues
}

// HasErrors reports whether any issue has error severity.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
