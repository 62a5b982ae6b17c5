package engine

import "sort"

// Trigram is a 3-character window; words shorter than 3 runes pad the
// unfilled trailing positions with NUL so short prefixes still index.
type Trigram [3]rune

// appendTrigrams appends all grams of word to dst and returns the
// result: len(word) grams total, starting with the left-anchored
// unigram and bigram windows before full trigrams, matching the
// "foo" -> ['f',0,0], ['f','o',0], ['f','o','o'] walkthrough.
func appendTrigrams(dst []Trigram, word []rune) []Trigram {
	for i := 0; i < len(word); i++ {
		lo := i - 2
		if lo < 0 {
			lo = 0
		}
		var g Trigram
		idx := 0
		for p := lo; p <= i; p++ {
			g[idx] = word[p]
			idx++
		}
		dst = append(dst, g)
	}
	return dst
}

// TrigramIndex narrows a store's full record set to a bounded
// candidate list for a query, via a gram -> record-id-set map. The map
// is a plain Go map: grams are not kept in sorted order.
type TrigramIndex struct {
	grams map[Trigram]map[string]bool
}

func newTrigramIndex() TrigramIndex {
	return TrigramIndex{grams: make(map[Trigram]map[string]bool)}
}

// add indexes every gram of every word of rec's title under rec.id.
func (idx *TrigramIndex) add(rec *Record) {
	if idx.grams == nil {
		idx.grams = make(map[Trigram]map[string]bool)
	}
	var scratch []Trigram
	for _, w := range rec.title.words {
		scratch = appendTrigrams(scratch[:0], rec.title.chars[w.lo:w.hi])
		for _, g := range scratch {
			set := idx.grams[g]
			if set == nil {
				set = make(map[string]bool)
				idx.grams[g] = set
			}
			set[rec.id] = true
		}
	}
}

type gramCount struct {
	id    string
	count int
}

// prepare builds the bounded candidate set for query into ctx's
// trigram.indexed, keeping it under control via periodic pruning so a
// pathological query with many distinct grams can't blow up the
// counter map. It returns false when the query carried no grams at
// all (an empty query), signalling the caller to fall back to a full
// scan instead of trusting an empty "indexed" set.
func (idx *TrigramIndex) prepare(ctx *Context, query *Text, size int) bool {
	counts := ctx.trigram.counts
	clear(counts)
	clear(ctx.trigram.indexed)

	var scratch []Trigram
	seen := make(map[Trigram]bool)
	hadGrams := false
	first := true
	for _, w := range query.words {
		scratch = appendTrigrams(scratch[:0], query.chars[w.lo:w.hi])
		for _, g := range scratch {
			if seen[g] {
				continue
			}
			seen[g] = true
			hadGrams = true
			for id := range idx.grams[g] {
				counts[id]++
			}
			if !first && len(counts) > 3*size {
				pruneCounts(counts, 2*size)
			}
			first = false
		}
	}
	if !hadGrams {
		return false
	}

	ranked := rankedCounts(counts)
	if size > 0 && len(ranked) > size {
		ranked = ranked[:size]
	}
	for _, gc := range ranked {
		ctx.trigram.indexed[gc.id] = true
	}
	return true
}

// matches reports whether rec survived the last prepare call.
func (idx *TrigramIndex) matches(ctx *Context, rec *Record) bool {
	return ctx.trigram.indexed[rec.id]
}

func rankedCounts(counts map[string]int) []gramCount {
	out := make([]gramCount, 0, len(counts))
	for id, c := range counts {
		out = append(out, gramCount{id: id, count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].id < out[j].id
	})
	return out
}

func pruneCounts(counts map[string]int, keep int) {
	if len(counts) <= keep {
		return
	}
	ranked := rankedCounts(counts)
	if len(ranked) > keep {
		ranked = ranked[:keep]
	}
	clear(counts)
	for _, gc := range ranked {
		counts[gc.id] = gc.count
	}
}
