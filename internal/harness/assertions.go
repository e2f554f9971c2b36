package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/runeword/internal/catalog"
	"github.com/roach88/runeword/internal/word"
)

// EvaluateAssertions checks every assertion against the trace.
// Returns one message per failure; empty when all hold.
func EvaluateAssertions(cat *catalog.Catalog, trace []TraceEvent, assertions []Assertion, opts []word.Option) []string {
	var errs []string
	for i, a := range assertions {
		var err error
		switch a.Type {
		case AssertRoundTrip:
			err = assertRoundTrip(cat, trace, opts)
		case AssertDisjointWords:
			err = assertDisjointWords(trace)
		case AssertOutcomeCount:
			err = assertOutcomeCount(trace, a)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("assertions[%d] %s: %v", i, a.Type, err))
		}
	}
	return errs
}

// assertRoundTrip feeds every generated word back through word.Check.
func assertRoundTrip(cat *catalog.Catalog, trace []TraceEvent, opts []word.Option) error {
	for _, event := range trace {
		for _, w := range event.Words {
			power, err := word.Check(cat, w.Name, opts...)
			if err != nil {
				return fmt.Errorf("seq %d: %s rejected: %v", event.Seq, w.Name, err)
			}
			if power != w.Power {
				return fmt.Errorf("seq %d: %s has power %d, check returned %d", event.Seq, w.Name, w.Power, power)
			}
		}
	}
	return nil
}

// assertDisjointWords checks that a generate step never spends a rune twice.
func assertDisjointWords(trace []TraceEvent) error {
	for _, event := range trace {
		seen := make(map[string]string)
		for _, w := range event.Words {
			for _, name := range strings.Split(w.Name, catalog.Delimiter) {
				if prev, dup := seen[name]; dup {
					return fmt.Errorf("seq %d: rune %s used in %s and %s", event.Seq, name, prev, w.Name)
				}
				seen[name] = w.Name
			}
		}
	}
	return nil
}

func assertOutcomeCount(trace []TraceEvent, a Assertion) error {
	count := 0
	for _, event := range trace {
		if event.Outcome == a.Outcome {
			count++
		}
	}
	if count != a.Count {
		return fmt.Errorf("expected %d %s step(s), got %d", a.Count, a.Outcome, count)
	}
	return nil
}
