package word

import (
	"math"

	"github.com/roach88/runeword/internal/catalog"
)

// Generate validates length and forges words from cat.
//
// Errors (all *UsageError):
//   - length <= 0: "length has to greater than 0"
//   - length > cat.Len(): "length has to be smaller than N"
//   - no word completed: "Could not create any Runic Words with a length of L"
func Generate(cat *catalog.Catalog, length int, opts ...Option) ([]Word, error) {
	if length <= 0 {
		return nil, errLengthNotPositive()
	}
	if length > cat.Len() {
		return nil, errLengthTooLarge(cat.Len())
	}

	words := Forge(cat, length, opts...)
	if len(words) == 0 {
		return nil, errNoWords(length)
	}
	return words, nil
}

// GenerateValue is Generate for untyped input such as decoded YAML or JSON.
// nil, strings, booleans and non-integral numbers fail with
// "length has to be number".
func GenerateValue(cat *catalog.Catalog, v any, opts ...Option) ([]Word, error) {
	length, ok := asLength(v)
	if !ok {
		return nil, errLengthNotNumber()
	}
	return Generate(cat, length, opts...)
}

func asLength(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return clampInt64(n), true
	case uint:
		return clampUint64(uint64(n)), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return clampUint64(uint64(n)), true
	case uint64:
		return clampUint64(n), true
	case float32:
		return asIntegralFloat(float64(n))
	case float64:
		return asIntegralFloat(n)
	default:
		return 0, false
	}
}

// asIntegralFloat accepts whole numbers only; a fractional length has no
// meaningful word size.
func asIntegralFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32, true
	case f < math.MinInt32:
		return math.MinInt32, true
	}
	return int(f), true
}

// Out-of-range lengths only need to stay out of range after conversion.
func clampInt64(n int64) int {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	}
	return int(n)
}

func clampUint64(n uint64) int {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}
