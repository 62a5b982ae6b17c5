// Package lang defines the language resource contract used by the
// tokenizer: stemming, part-of-speech tagging, per-character classes,
// and the optional Unicode compose/reduce tables. It ships one
// concrete resource, English, so the engine is runnable without a
// host supplying pre-tagged input.
package lang

import "unicode"

// CharClass is the closed set of character classes a pattern can test
// against. Vowel and Consonant are language-dependent; the rest are not.
type CharClass int

const (
	ClassAny CharClass = iota
	ClassControl
	ClassWhitespace
	ClassPunctuation
	ClassNotAlpha
	ClassNotAlphaNum
	ClassConsonant
	ClassVowel
)

// POS is a part-of-speech tag. POSNone means untagged/unknown.
type POS int

const (
	POSNone POS = iota
	POSNoun
	POSVerb
	POSAdjective
	POSAdverb
	POSPronoun
	POSNumeral
	POSPreposition
	POSConjunction
	POSParticle
	POSArticle
)

// Primary reports whether pos is NOT one of the function-word tags.
func (p POS) Primary() bool {
	switch p {
	case POSPreposition, POSConjunction, POSParticle, POSArticle:
		return false
	default:
		return true
	}
}

// Tri is a three-valued logic result: a pattern match can be known
// true, known false, or unknown (language-dependent class, no language set).
type Tri int

const (
	TriFalse Tri = iota
	TriTrue
	TriUnknown
)

// Resource is a read-only bundle of language-specific lookups.
type Resource interface {
	// Name identifies the resource, e.g. "en".
	Name() string
	// Stem returns the length of word's lexical root prefix. Must be
	// <= len(word); callers fall back to len(word) on violation.
	Stem(word []rune) int
	// PartOfSpeech returns the tag for an already-lowercased word, or
	// POSNone if the word isn't in the function-word table.
	PartOfSpeech(word []rune) POS
	// ClassOf returns ClassVowel, ClassConsonant, or ClassAny (meaning
	// "no language-specific class applies") for a single rune.
	ClassOf(r rune) CharClass
	// Compose maps two-code-point NFD sequences (keyed by the two
	// runes concatenated into a string) to a single composed rune.
	Compose() map[string]rune
	// Reduce maps an accented/ligature code point to its ASCII
	// replacement, which may be more than one rune (e.g. "ß" -> "ss").
	Reduce() map[rune]string
}

// MatchClass evaluates a single class against a rune. Control,
// Whitespace, Punctuation, NotAlpha and NotAlphaNum are always
// decidable. Consonant/Vowel require res; without one they are unknown.
func MatchClass(c CharClass, r rune, res Resource) Tri {
	switch c {
	case ClassAny:
		return TriTrue
	case ClassControl:
		return triOf(unicode.IsControl(r))
	case ClassWhitespace:
		return triOf(unicode.IsSpace(r))
	case ClassPunctuation:
		return triOf(unicode.IsPunct(r) || unicode.IsSymbol(r))
	case ClassNotAlpha:
		return triOf(!unicode.IsLetter(r))
	case ClassNotAlphaNum:
		return triOf(!unicode.IsLetter(r) && !unicode.IsDigit(r))
	case ClassConsonant:
		if res == nil {
			return TriUnknown
		}
		return triOf(res.ClassOf(r) == ClassConsonant)
	case ClassVowel:
		if res == nil {
			return TriUnknown
		}
		return triOf(res.ClassOf(r) == ClassVowel)
	default:
		return TriFalse
	}
}

func triOf(b bool) Tri {
	if b {
		return TriTrue
	}
	return TriFalse
}

// Pattern is a set of classes. It matches if any member matches true;
// it is unknown only when no member returns true and at least one is
// unknown.
type Pattern struct {
	Classes []CharClass
}

// NewPattern builds a pattern set from one or more classes.
func NewPattern(classes ...CharClass) Pattern {
	return Pattern{Classes: classes}
}

// Match aggregates per-class results per the tri-state rule.
func (p Pattern) Match(r rune, res Resource) Tri {
	sawUnknown := false
	for _, c := range p.Classes {
		switch MatchClass(c, r, res) {
		case TriTrue:
			return TriTrue
		case TriUnknown:
			sawUnknown = true
		}
	}
	if sawUnknown {
		return TriUnknown
	}
	return TriFalse
}
