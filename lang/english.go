package lang

import "strings"

// english is the default Resource: a small hand-built function-word
// table, a Porter-derived stemmer, and an ASCII vowel/consonant table.
// It exists so the scenarios in the root package's tests are runnable
// without a host supplying pre-tagged input.
type english struct{}

// English is the default language resource.
var English Resource = english{}

func (english) Name() string { return "en" }

func (english) Stem(word []rune) int {
	return stemLength(toLowerRunes(word))
}

func toLowerRunes(word []rune) []rune {
	out := make([]rune, len(word))
	for i, r := range word {
		if r >= 'A' && r <= 'Z' {
			r += 32
		}
		out[i] = r
	}
	return out
}

var articles = map[string]bool{"a": true, "an": true, "the": true}

var prepositions = map[string]bool{
	"in": true, "on": true, "at": true, "by": true, "for": true, "with": true,
	"about": true, "against": true, "between": true, "into": true, "through": true,
	"during": true, "before": true, "after": true, "above": true, "below": true,
	"to": true, "from": true, "up": true, "down": true, "of": true, "off": true,
	"over": true, "under": true, "near": true,
}

var conjunctions = map[string]bool{
	"and": true, "but": true, "or": true, "nor": true, "so": true, "yet": true,
	"because": true, "although": true, "while": true, "if": true,
}

var particles = map[string]bool{
	"not": true, "to": true, "n't": true,
}

var pronouns = map[string]bool{
	"i": true, "you": true, "he": true, "she": true, "it": true, "we": true,
	"they": true, "me": true, "him": true, "her": true, "us": true, "them": true,
	"this": true, "that": true, "these": true, "those": true,
}

func (english) PartOfSpeech(word []rune) POS {
	w := strings.ToLower(string(word))
	switch {
	case articles[w]:
		return POSArticle
	case prepositions[w]:
		return POSPreposition
	case conjunctions[w]:
		return POSConjunction
	case particles[w]:
		return POSParticle
	case pronouns[w]:
		return POSPronoun
	default:
		return POSNone
	}
}

func (english) ClassOf(r rune) CharClass {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return ClassVowel
	}
	if r >= 'a' && r <= 'z' {
		return ClassConsonant
	}
	if r >= 'A' && r <= 'Z' {
		return ClassConsonant
	}
	return ClassAny
}

// compose collapses the handful of NFD two-rune sequences this engine
// cares about into a single precomposed rune.
var composeTable = map[string]rune{
	"é": 'é', "è": 'è', "á": 'á', "ó": 'ó',
	"ú": 'ú', "ñ": 'ñ', "ç": 'ç',
}

func (english) Compose() map[string]rune { return composeTable }

// reduce maps accented/ligature code points to their ASCII
// replacement. One-to-many is allowed ("ß" -> "ss").
var reduceTable = map[rune]string{
	'é': "e", 'è': "e", 'ê': "e", 'ë': "e",
	'á': "a", 'à': "a", 'â': "a", 'ä': "a",
	'ó': "o", 'ò': "o", 'ô': "o", 'ö': "o",
	'ú': "u", 'ù': "u", 'û': "u", 'ü': "u",
	'ñ': "n", 'ç': "c",
	'ß': "ss", 'œ': "oe", 'æ': "ae",
}

func (english) Reduce() map[rune]string { return reduceTable }
