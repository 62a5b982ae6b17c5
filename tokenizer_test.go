package engine

import (
	"testing"

	"github.com/otterbloom/suggestengine/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTokenizeIsIdempotent(t *testing.T) {
	once := NewRecordText("The Metal Detector!", lang.English)
	twice := NewRecordText(string(once.chars), lang.English)
	assert.Equal(t, once.chars, twice.chars)
	assert.Equal(t, len(once.words), len(twice.words))
	for i := range once.words {
		assert.Equal(t, once.words[i].len(), twice.words[i].len())
	}
}

func TestTextArraysStayAligned(t *testing.T) {
	for _, s := range []string{"brown plush bear", "wi-fi router", "straße", "thesaurus"} {
		txt := NewRecordText(s, lang.English)
		require.Equal(t, len(txt.source), len(txt.chars))
		require.Equal(t, len(txt.chars), len(txt.classes))
		for _, w := range txt.words {
			assert.GreaterOrEqual(t, w.lo, 0)
			assert.LessOrEqual(t, w.hi, len(txt.chars))
			assert.LessOrEqual(t, w.lo, w.hi)
			assert.LessOrEqual(t, w.stem, w.len())
		}
	}
}

func TestWordSlicesAreMonotonicAndNonOverlapping(t *testing.T) {
	txt := NewRecordText("the quick brown fox jumps", lang.English)
	prevHi := -1
	for _, w := range txt.words {
		assert.GreaterOrEqual(t, w.lo, prevHi)
		prevHi = w.hi
	}
}

func TestQueryProfileUnfinalizesLastWord(t *testing.T) {
	txt := NewQueryText("metal detect", lang.English)
	require.NotEmpty(t, txt.words)
	last := txt.words[len(txt.words)-1]
	assert.False(t, last.fin)
	if len(txt.words) > 1 {
		assert.True(t, txt.words[0].fin)
	}
}

func TestLowercasesChars(t *testing.T) {
	txt := NewRecordText("BROWN Plush BEAR", lang.English)
	assert.Equal(t, "brown plush bear", string(joinWordsBySpace(txt)))
}

func TestStripRemovesPunctuationNotLetters(t *testing.T) {
	txt := NewRecordText("wi-fi!", lang.English)
	require.Len(t, txt.words, 2)
	assert.Equal(t, "wi", string(txt.chars[txt.words[0].lo:txt.words[0].hi]))
	assert.Equal(t, "fi", string(txt.chars[txt.words[1].lo:txt.words[1].hi]))
}

func TestSplitOnWhitespaceAndPunctuation(t *testing.T) {
	txt := NewRecordText("yellow, metal: mailbox.", lang.English)
	require.Len(t, txt.words, 3)
}

func TestStemNeverExceedsWordLength(t *testing.T) {
	for _, w := range []string{"a", "an", "running", "detectors", "xyz"} {
		txt := NewRecordText(w, lang.English)
		require.Len(t, txt.words, 1)
		assert.LessOrEqual(t, txt.words[0].stem, txt.words[0].len())
	}
}

func joinWordsBySpace(t Text) []rune {
	var out []rune
	for i, w := range t.words {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, t.chars[w.lo:w.hi]...)
	}
	return out
}
