package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/runeword/internal/catalog"
	"github.com/roach88/runeword/internal/word"
)

// Run executes a scenario and returns the result.
//
// The catalog is loaded fresh for every run. opts are applied after the
// scenario's own rule and max_words settings (use them for logging).
//
// Execution flow:
// 1. Load catalog (scenario file or built-in)
// 2. Execute steps, recording one trace event each
// 3. Compare each step against its expect clause
// 4. Evaluate assertions over the full trace
//
// Returns an error only when the scenario cannot run at all (bad catalog,
// undecodable input). Expectation failures are reported on the Result.
func Run(scenario *Scenario, opts ...word.Option) (*Result, error) {
	cat, err := loadCatalog(scenario.Catalog)
	if err != nil {
		return nil, err
	}

	wordOpts := scenarioOptions(scenario)
	wordOpts = append(wordOpts, opts...)

	result := NewResult()
	for i, step := range scenario.Steps {
		input, err := step.Input()
		if err != nil {
			return nil, fmt.Errorf("steps[%d]: failed to decode input: %w", i, err)
		}

		event := execute(cat, step.Op(), input, wordOpts)
		result.AddTrace(event)

		if step.Expect != nil {
			for _, msg := range compareExpect(step.Expect, event) {
				result.AddError(fmt.Sprintf("steps[%d] %s %v: %s", i, event.Op, input, msg))
			}
		}
	}

	for _, msg := range EvaluateAssertions(cat, result.Trace, scenario.Assertions, wordOpts) {
		result.AddError(msg)
	}

	return result, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

func scenarioOptions(s *Scenario) []word.Option {
	var opts []word.Option
	if s.Rule == "symmetric" {
		opts = append(opts, word.WithLinkRule(word.Symmetric))
	}
	if s.MaxWords > 0 {
		opts = append(opts, word.WithMaxWords(s.MaxWords))
	}
	return opts
}

// execute runs a single step and converts its outcome into a trace event.
func execute(cat *catalog.Catalog, op string, input any, opts []word.Option) TraceEvent {
	event := TraceEvent{Op: op, Input: input, Outcome: OutcomeOK}

	var err error
	switch op {
	case OpGenerate:
		event.Words, err = word.GenerateValue(cat, input, opts...)
	case OpCheck:
		var power int
		power, err = word.CheckValue(cat, input, opts...)
		if err == nil {
			event.Power = &power
		}
	}

	if err != nil {
		event.Outcome = OutcomeError
		event.Code = string(word.Code(err))
		event.Error = err.Error()
	}
	return event
}

// compareExpect returns one message per mismatch between expect and event.
func compareExpect(expect *ExpectClause, event TraceEvent) []string {
	var msgs []string

	if expect.wantsError() {
		if event.Outcome != OutcomeError {
			return []string{fmt.Sprintf("expected error, got %s", describe(event))}
		}
		if expect.Error != "" && expect.Error != event.Error {
			msgs = append(msgs, fmt.Sprintf("expected error %q, got %q", expect.Error, event.Error))
		}
		if expect.Code != "" && expect.Code != event.Code {
			msgs = append(msgs, fmt.Sprintf("expected code %s, got %s", expect.Code, event.Code))
		}
		return msgs
	}

	if event.Outcome != OutcomeOK {
		return []string{fmt.Sprintf("expected success, got error %q", event.Error)}
	}
	if expect.Count != nil && *expect.Count != len(event.Words) {
		msgs = append(msgs, fmt.Sprintf("expected %d words, got %d", *expect.Count, len(event.Words)))
	}
	if len(expect.Words) > 0 {
		got := wordNames(event.Words)
		if !slices.Equal(expect.Words, got) {
			msgs = append(msgs, fmt.Sprintf("expected words %v, got %v", expect.Words, got))
		}
	}
	if expect.Power != nil {
		if event.Power == nil {
			msgs = append(msgs, fmt.Sprintf("expected power %d, got none", *expect.Power))
		} else if *expect.Power != *event.Power {
			msgs = append(msgs, fmt.Sprintf("expected power %d, got %d", *expect.Power, *event.Power))
		}
	}
	return msgs
}

func describe(event TraceEvent) string {
	if event.Power != nil {
		return fmt.Sprintf("power %d", *event.Power)
	}
	return fmt.Sprintf("words [%s]", strings.Join(wordNames(event.Words), " "))
}

func wordNames(words []word.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Name
	}
	return out
}
