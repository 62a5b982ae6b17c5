package engine

import (
	"unicode"

	"github.com/otterbloom/suggestengine/lang"
)

// newRawText builds a single-word Text from a raw string: source and
// chars start identical, classes default to Any, and the one word
// spans the whole string with fin=true.
func newRawText(s string) Text {
	runes := runesFromUTF8(s)
	src := make([]rune, len(runes))
	chs := make([]rune, len(runes))
	copy(src, runes)
	copy(chs, runes)
	classes := make([]lang.CharClass, len(runes))
	t := Text{source: src, chars: chs, classes: classes}
	if len(runes) > 0 {
		t.words = []Word{{offset: 0, lo: 0, hi: len(runes), fin: true}}
	}
	return t
}

// compose collapses two-rune NFD sequences the resource recognizes
// into a single composed rune. Runs before reduce; compose (shrinking)
// and reduce (growing) are the only stages that change array length.
func compose(t *Text, res lang.Resource) {
	if res == nil || len(t.chars) < 2 {
		return
	}
	table := res.Compose()
	if len(table) == 0 {
		return
	}
	out := make([]rune, 0, len(t.chars))
	for i := 0; i < len(t.chars); i++ {
		if i+1 < len(t.chars) {
			if composed, ok := table[string([]rune{t.chars[i], t.chars[i+1]})]; ok {
				out = append(out, composed)
				i++
				continue
			}
		}
		out = append(out, t.chars[i])
	}
	if len(out) == len(t.chars) {
		return
	}
	shrinkTextTo(t, out)
}

// shrinkTextTo replaces chars/source/classes with newChars, remapping
// existing word slices by clamping to the new, shorter length. Used
// only by compose, which always runs before any split.
func shrinkTextTo(t *Text, newChars []rune) {
	t.chars = newChars
	t.source = append([]rune(nil), newChars...)
	t.classes = make([]lang.CharClass, len(newChars))
	for i := range t.words {
		if t.words[i].hi > len(newChars) {
			t.words[i].hi = len(newChars)
		}
		if t.words[i].lo > t.words[i].hi {
			t.words[i].lo = t.words[i].hi
		}
	}
}

// reduce maps accented/ligature code points to their ASCII
// replacement, NUL-padding source so it stays aligned with chars when
// the replacement is longer than one rune.
func reduce(t *Text, res lang.Resource) {
	if res == nil || len(t.chars) == 0 {
		return
	}
	table := res.Reduce()
	if len(table) == 0 {
		return
	}
	needsWork := false
	for _, r := range t.chars {
		if _, ok := table[r]; ok {
			needsWork = true
			break
		}
	}
	if !needsWork {
		return
	}

	newSource := make([]rune, 0, len(t.chars))
	newChars := make([]rune, 0, len(t.chars))
	newClasses := make([]lang.CharClass, 0, len(t.chars))
	offsetMap := make([]int, len(t.chars)+1)

	for i, r := range t.chars {
		offsetMap[i] = len(newChars)
		if rep, ok := table[r]; ok {
			repRunes := []rune(rep)
			newSource = append(newSource, t.source[i])
			newChars = append(newChars, repRunes[0])
			newClasses = append(newClasses, t.classes[i])
			for k := 1; k < len(repRunes); k++ {
				newSource = append(newSource, 0)
				newChars = append(newChars, repRunes[k])
				newClasses = append(newClasses, t.classes[i])
			}
		} else {
			newSource = append(newSource, t.source[i])
			newChars = append(newChars, r)
			newClasses = append(newClasses, t.classes[i])
		}
	}
	offsetMap[len(t.chars)] = len(newChars)

	for i := range t.words {
		t.words[i].lo = offsetMap[t.words[i].lo]
		t.words[i].hi = offsetMap[t.words[i].hi]
	}
	t.source = newSource
	t.chars = newChars
	t.classes = newClasses
}

// split emits contiguous sub-spans of each current word whose
// characters do not match pattern, dropping runs that do.
func split(t *Text, res lang.Resource) {
	var out []Word
	for _, w := range t.words {
		var spans [][2]int
		spanStart := -1
		for i := w.lo; i < w.hi; i++ {
			if splitPattern.Match(t.chars[i], res) == lang.TriTrue {
				if spanStart >= 0 {
					spans = append(spans, [2]int{spanStart, i})
					spanStart = -1
				}
				continue
			}
			if spanStart < 0 {
				spanStart = i
			}
		}
		if spanStart >= 0 {
			spans = append(spans, [2]int{spanStart, w.hi})
		}
		if len(spans) == 0 {
			continue
		}
		for i, sp := range spans {
			fin := true
			if i == len(spans)-1 && sp[1] == w.hi {
				fin = w.fin
			}
			out = append(out, Word{offset: len(out), lo: sp[0], hi: sp[1], fin: fin})
		}
	}
	t.words = out
}

// strip trims leading and trailing characters matching pattern from
// each word. A non-empty right-side trim finalizes the word: its
// right boundary is now certain.
func strip(t *Text, res lang.Resource) {
	for i := range t.words {
		w := &t.words[i]
		for w.lo < w.hi && stripPattern.Match(t.chars[w.lo], res) == lang.TriTrue {
			w.lo++
		}
		trimmedRight := false
		for w.lo < w.hi && stripPattern.Match(t.chars[w.hi-1], res) == lang.TriTrue {
			w.hi--
			trimmedRight = true
		}
		if trimmedRight {
			w.fin = true
		}
	}
}

// lowerText lowercases chars[] in place if any uppercase exists.
// source[] is left untouched since highlighting reconstructs the
// original text from it.
func lowerText(t *Text) {
	hasUpper := false
	for _, r := range t.chars {
		if unicode.IsUpper(r) {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return
	}
	for i, r := range t.chars {
		t.chars[i] = unicode.ToLower(r)
	}
}

func setStem(t *Text, res lang.Resource) {
	for i := range t.words {
		w := &t.words[i]
		n := w.len()
		if n == 0 {
			w.stem = 0
			continue
		}
		var s int
		if res != nil {
			s = res.Stem(t.chars[w.lo:w.hi])
		} else {
			s = n
		}
		if s < 0 || s > n {
			s = n
		}
		w.stem = s
	}
}

func setPOS(t *Text, res lang.Resource) {
	if res == nil {
		return
	}
	for i := range t.words {
		w := &t.words[i]
		w.pos = res.PartOfSpeech(t.chars[w.lo:w.hi])
	}
}

func classify(r rune, res lang.Resource) lang.CharClass {
	switch {
	case unicode.IsControl(r):
		return lang.ClassControl
	case unicode.IsSpace(r):
		return lang.ClassWhitespace
	case unicode.IsPunct(r), unicode.IsSymbol(r):
		return lang.ClassPunctuation
	}
	if res != nil {
		if c := res.ClassOf(r); c == lang.ClassVowel || c == lang.ClassConsonant {
			return c
		}
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return lang.ClassAny
	}
	return lang.ClassNotAlpha
}

func setCharClasses(t *Text, res lang.Resource) {
	for i, r := range t.chars {
		t.classes[i] = classify(r, res)
	}
}

// tokenize runs the full normalize/split/strip/lower/tag pipeline. The
// query flag un-finalizes the last word after strip, per the Query
// profile in spec.md 4.1.
func tokenize(s string, res lang.Resource, query bool) Text {
	t := newRawText(s)
	compose(&t, res)
	reduce(&t, res)
	split(&t, res)
	strip(&t, res)
	lowerText(&t)
	if query && len(t.words) > 0 {
		t.words[len(t.words)-1].fin = false
	}
	setPOS(&t, res)
	setCharClasses(&t, res)
	setStem(&t, res)
	return t
}

// NewRecordText tokenizes a title using the Record profile.
func NewRecordText(s string, res lang.Resource) Text { return tokenize(s, res, false) }

// NewQueryText tokenizes a live query using the Query profile: the
// last word is left unfinalized so it can still match as a prefix.
func NewQueryText(s string, res lang.Resource) Text { return tokenize(s, res, true) }
