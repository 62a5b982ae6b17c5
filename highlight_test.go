package engine

import (
	"testing"

	"github.com/otterbloom/suggestengine/lang"
	"github.com/stretchr/testify/assert"
)

func TestHighlightNoMatchesIsVerbatim(t *testing.T) {
	rec := &Record{title: NewRecordText("brown plush bear", lang.English)}
	got := Highlight(rec, nil, "<", ">")
	assert.Equal(t, "brown plush bear", got)
}

func TestHighlightWrapsMatchedSpan(t *testing.T) {
	rec := &Record{title: NewRecordText("the metal detector", lang.English)}
	w := rec.title.words[1] // "metal"
	matches := []WordMatch{{
		query:  MatchSide{ix: 0, ln: 5, lo: 0, hi: 5},
		record: MatchSide{ix: 1, ln: w.len(), lo: 0, hi: w.len()},
	}}
	got := Highlight(rec, matches, "<", ">")
	assert.Equal(t, "the <metal> detector", got)
}

func TestHighlightDropsNULPadding(t *testing.T) {
	rec := &Record{title: NewRecordText("straße", lang.English)}
	got := Highlight(rec, nil, "<", ">")
	assert.NotContains(t, got, "\x00")
	assert.Equal(t, "straße", got)
}

func TestHighlightMultipleWordsInOrder(t *testing.T) {
	rec := &Record{title: NewRecordText("yellow metal mailbox", lang.English)}
	w1, w2 := rec.title.words[1], rec.title.words[2]
	matches := []WordMatch{
		{query: MatchSide{ix: 0, ln: w1.len(), lo: 0, hi: w1.len()}, record: MatchSide{ix: 1, ln: w1.len(), lo: 0, hi: w1.len()}},
		{query: MatchSide{ix: 1, ln: 4, lo: 0, hi: 4}, record: MatchSide{ix: 2, ln: w2.len(), lo: 0, hi: 4}},
	}
	got := Highlight(rec, matches, "<", ">")
	assert.Equal(t, "yellow <metal> <mail>box", got)
}
