package engine

import (
	"testing"

	"github.com/otterbloom/suggestengine/lang"
	"github.com/stretchr/testify/assert"
)

func TestAppendTrigramsFoo(t *testing.T) {
	got := appendTrigrams(nil, []rune("foo"))
	want := []Trigram{
		{'f', 0, 0},
		{'f', 'o', 0},
		{'f', 'o', 'o'},
	}
	assert.Equal(t, want, got)
}

func TestAppendTrigramsEmitsOnePerChar(t *testing.T) {
	got := appendTrigrams(nil, []rune("mailbox"))
	assert.Len(t, got, len("mailbox"))
}

func TestTrigramIndexNarrowsCandidates(t *testing.T) {
	store := NewStore(lang.English)
	require := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	require(store.AddRecord("10", 0, "brown plush bear"))
	require(store.AddRecord("20", 0, "the metal detector"))
	require(store.AddRecord("30", 0, "yellow metal mailbox"))

	ctx := getContext()
	defer putContext(ctx)
	q := NewQueryText("metal", lang.English)
	ok := store.index.prepare(ctx, &q, store.limit)
	assert.True(t, ok)
	assert.True(t, store.index.matches(ctx, &store.records[1]))
	assert.True(t, store.index.matches(ctx, &store.records[2]))
	assert.False(t, store.index.matches(ctx, &store.records[0]))
}

func TestTrigramIndexEmptyQueryHasNoGrams(t *testing.T) {
	store := NewStore(lang.English)
	_ = store.AddRecord("10", 0, "brown plush bear")
	ctx := getContext()
	defer putContext(ctx)
	q := NewQueryText("", lang.English)
	ok := store.index.prepare(ctx, &q, store.limit)
	assert.False(t, ok, "an empty query carries no grams; caller must fall back to a full scan")
}

func TestTrigramIndexPruningKeepsHighestCounts(t *testing.T) {
	idx := newTrigramIndex()
	// Build many records that each share a handful of grams with the
	// query so prepare's periodic pruning kicks in, and verify the
	// single record sharing the most grams always survives.
	ctx := getContext()
	defer putContext(ctx)
	for i := 0; i < 40; i++ {
		rec := Record{id: recID(i), ix: i, title: NewRecordText("alpha zzzz zzzz", lang.English)}
		idx.add(&rec)
	}
	best := Record{id: "best", ix: 999, title: NewRecordText("alpha bravo charlie delta", lang.English)}
	idx.add(&best)

	q := NewQueryText("alpha bravo charlie delta", lang.English)
	ok := idx.prepare(ctx, &q, 3)
	assert.True(t, ok)
	assert.True(t, idx.matches(ctx, &best), "the record sharing every query gram must survive pruning")
}

func recID(i int) string {
	b := []byte{'r'}
	return string(b) + string(rune('0'+i%10)) + string(rune('a'+i%26))
}
