package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a runic word test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Catalog is an optional path to a .cue or .yaml catalog file,
	// relative to the scenario file. Empty means the built-in catalog.
	Catalog string `yaml:"catalog,omitempty"`

	// Rule selects the exclusion rule: "forward" (default) or "symmetric".
	Rule string `yaml:"rule,omitempty"`

	// MaxWords overrides the generator's word cap when positive.
	MaxWords int `yaml:"max_words,omitempty"`

	// Steps run in order. Each is a generate or a check.
	Steps []Step `yaml:"steps"`

	// Assertions validate the complete trace.
	// Supported types: round_trip, disjoint_words, outcome_count
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is a single generate or check call.
//
// Inputs are kept as raw YAML nodes so that an explicit null is
// distinguishable from an absent key.
type Step struct {
	// Generate is the requested word length.
	Generate yaml.Node `yaml:"generate,omitempty"`

	// Check is the runic word to validate.
	Check yaml.Node `yaml:"check,omitempty"`

	// Expect specifies the expected outcome.
	// If nil, the step is recorded but not validated.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// Op returns "generate", "check", or "" if neither key is present.
func (s Step) Op() string {
	switch {
	case present(s.Generate) && !present(s.Check):
		return OpGenerate
	case present(s.Check) && !present(s.Generate):
		return OpCheck
	default:
		return ""
	}
}

// Input decodes the step's raw input into a plain Go value.
func (s Step) Input() (any, error) {
	node := s.Generate
	if s.Op() == OpCheck {
		node = s.Check
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func present(n yaml.Node) bool {
	return n.Kind != 0
}

// Step operations.
const (
	OpGenerate = "generate"
	OpCheck    = "check"
)

// ExpectClause specifies the expected outcome of a step.
// Only the fields that are set are compared.
type ExpectClause struct {
	// Error is the exact expected error message.
	Error string `yaml:"error,omitempty"`

	// Code is the expected word.ErrorCode.
	Code string `yaml:"code,omitempty"`

	// Words is the exact expected list of generated words.
	Words []string `yaml:"words,omitempty"`

	// Count is the expected number of generated words.
	Count *int `yaml:"count,omitempty"`

	// Power is the expected power returned by a check.
	Power *int `yaml:"power,omitempty"`
}

// wantsError reports whether the clause expects a failure.
func (e *ExpectClause) wantsError() bool {
	return e.Error != "" || e.Code != ""
}

// Assertion validates the complete trace.
type Assertion struct {
	// Type specifies the assertion type:
	// - "round_trip": every generated word checks back to its power
	// - "disjoint_words": no rune appears in two words of one generate step
	// - "outcome_count": exactly Count steps ended with Outcome
	Type string `yaml:"type"`

	// Outcome is "ok" or "error" (used by outcome_count).
	Outcome string `yaml:"outcome,omitempty"`

	// Count is the expected number of steps (used by outcome_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertRoundTrip     = "round_trip"
	AssertDisjointWords = "disjoint_words"
	AssertOutcomeCount  = "outcome_count"
)

// LoadScenario reads and parses a scenario YAML file.
// A relative catalog path is resolved against the scenario file's directory.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if scenario.Catalog != "" && !filepath.IsAbs(scenario.Catalog) {
		scenario.Catalog = filepath.Join(filepath.Dir(path), scenario.Catalog)
	}
	if scenario.Catalog != "" {
		if _, err := os.Stat(scenario.Catalog); os.IsNotExist(err) {
			return nil, fmt.Errorf("invalid scenario: catalog file not found: %s", scenario.Catalog)
		}
	}
	return scenario, nil
}

// ParseScenario parses scenario YAML without touching the filesystem.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch s.Rule {
	case "", "forward", "symmetric":
	default:
		return fmt.Errorf("rule must be forward or symmetric, got %q", s.Rule)
	}

	if s.MaxWords < 0 {
		return fmt.Errorf("max_words must be non-negative")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if step.Op() == "" {
			return fmt.Errorf("steps[%d]: exactly one of generate or check is required", i)
		}
		if step.Expect != nil && step.Expect.wantsError() && (step.Expect.Power != nil || step.Expect.Count != nil || len(step.Expect.Words) > 0) {
			return fmt.Errorf("steps[%d].expect: error and success fields are mutually exclusive", i)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertRoundTrip, AssertDisjointWords:
	case AssertOutcomeCount:
		if a.Outcome != OutcomeOK && a.Outcome != OutcomeError {
			return fmt.Errorf("assertions[%d]: outcome must be ok or error for outcome_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for outcome_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
