package engine

import (
	"github.com/antzucaro/matchr"
	"github.com/otterbloom/suggestengine/lang"
)

// WeightedDistance lowercases a and b and classifies their characters
// with res (each string is taken whole as one word: no normalization,
// splitting or stemming is applied) and runs them through
// the engine's own class-weighted Distance — the same algorithm
// wordMatch and TextMatch use internally. Exposed for the CLI's
// debug-distance command and for tests that want to compare it
// against ReferenceDamerau on the same inputs.
func WeightedDistance(res lang.Resource, a, b string) float64 {
	ctx := getContext()
	defer putContext(ctx)
	ta := newRawText(a)
	classifyPlain(&ta, res)
	tb := newRawText(b)
	classifyPlain(&tb, res)
	return Distance(ctx, ta.chars, ta.classes, tb.chars, tb.classes)
}

func classifyPlain(t *Text, res lang.Resource) {
	lowerText(t)
	setCharClasses(t, res)
}

// ReferenceDamerau is the classic (unrestricted, unweighted) Damerau-
// Levenshtein distance, used only as a cross-check in tests and by the
// CLI's debug-distance command — never by the matching pipeline
// itself, which always uses the class-weighted Distance in distance.go.
func ReferenceDamerau(a, b string) int {
	return matchr.DamerauLevenshtein(a, b)
}

// ReferenceJaroWinkler is a second, independent similarity measure
// available for manual diffing against the engine's own scores; it is
// not wired into any scoring path.
func ReferenceJaroWinkler(a, b string) float64 {
	return matchr.JaroWinkler(a, b, false)
}
