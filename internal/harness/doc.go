// Package harness runs runic word scenarios.
//
// A scenario is a YAML file listing generate and check steps, each with an
// optional expect clause, followed by assertions over the whole trace:
//
//	name: reference-catalog
//	description: Words from the built-in table
//	steps:
//	  - generate: 3
//	    expect:
//	      count: 10
//	  - check: Ber-Ohm-Lo
//	    expect:
//	      power: 6
//	assertions:
//	  - type: round_trip
//
// Step inputs are passed to word.GenerateValue and word.CheckValue
// untouched, so `generate: x` and `generate: null` exercise the same type
// errors a dynamically typed caller would hit.
//
// Every run produces a deterministic trace that can be pinned with a golden
// file (see RunWithGolden and Snapshot).
package harness
