package engine

import (
	"math"

	"github.com/otterbloom/suggestengine/lang"
)

// wordView is a read-only window into one word of a Text: the chars
// and classes the matcher needs, plus its stem boundary and whether
// it is finalized (fully typed, not an in-progress prefix).
type wordView struct {
	chars   []rune
	classes []lang.CharClass
	stem    int
	fin     bool
}

func viewOf(t *Text, w Word) wordView {
	return wordView{
		chars:   t.chars[w.lo:w.hi],
		classes: t.classes[w.lo:w.hi],
		stem:    w.stem,
		fin:     w.fin,
	}
}

// MatchSide is one half of a WordMatch: a prefix slice (0, hi) into
// the referenced word, plus which word (by index) it came from and
// whether that word is primary.
type MatchSide struct {
	ix      int
	ln      int
	lo, hi  int
	primary bool
}

// WordMatch pairs a query-word alignment with a record-word alignment
// found by wordMatch, along with the fractional typo cost and fin:
// true when the query word is finalized or the match covers the whole
// record word.
type WordMatch struct {
	query  MatchSide
	record MatchSide
	typos  float64
	fin    bool
}

const (
	lengthRatioThreshold  = 0.26
	jaccardDistThreshold  = 0.51
	relDistThreshold      = 0.21
)

// wordMatch runs the three-filter funnel (length ratio, Jaccard,
// weighted DL prefix sweep) between a query word and a record word.
// qIx/rIx are each word's index in its parent Text's word list.
func wordMatch(ctx *Context, q wordView, qIx int, rV wordView, rIx int) (WordMatch, bool) {
	qlenFull := len(q.chars)
	rlenFull := len(rV.chars)
	if qlenFull == 0 || rlenFull == 0 {
		return WordMatch{}, false
	}

	// Filter 1: length ratio.
	rlenCmp := rlenFull
	if !q.fin {
		rlenCmp = minInt(qlenFull, rlenFull)
	}
	if qlenFull <= 1 || rlenCmp <= 1 {
		if qlenFull != rlenCmp {
			return WordMatch{}, false
		}
	} else {
		mn, mx := minInt(qlenFull, rlenCmp), maxInt(qlenFull, rlenCmp)
		if 1-float64(mn)/float64(mx) >= lengthRatioThreshold {
			return WordMatch{}, false
		}
	}

	// Filter 2: Jaccard.
	rSliceEnd := rlenFull
	if !q.fin {
		rSliceEnd = minInt(qlenFull+1, rlenFull)
	}
	if JaccardDistance(ctx, rV.chars[:rSliceEnd], q.chars) >= jaccardDistThreshold {
		return WordMatch{}, false
	}

	// Filter 3: weighted DL prefix sweep. Distance fills the whole
	// matrix once; every prefix-length pair is then just a cell read.
	Distance(ctx, q.chars, q.classes, rV.chars, rV.classes)

	left := q.stem
	if q.fin {
		left = maxInt(q.stem, rV.stem)
	}
	left--
	right := maxInt(qlenFull, rlenFull) + 1

	bestDist := math.Inf(1)
	bestQL, bestRL := -1, -1

outer:
	for rl := right; rl >= left; rl-- {
		if rl < 0 || rl > rlenFull {
			continue
		}
		for ql := right; ql >= left; ql-- {
			if ql < 0 || ql > qlenFull {
				continue
			}
			if rl == left && ql == left {
				continue
			}
			if q.fin && rl < rV.stem {
				continue
			}
			if ql < q.stem {
				continue
			}
			if absInt(rl-ql) > 1 {
				continue
			}
			dist := ctx.dl.at(ql+1, rl+1)
			denom := float64(maxInt(ql, maxInt(rl, 1)))
			rel := dist / denom
			if rel > relDistThreshold {
				continue
			}
			if dist < bestDist {
				bestDist = dist
				bestQL, bestRL = ql, rl
			}
			if dist <= 0 {
				continue outer
			}
		}
	}

	if bestQL < 0 {
		return WordMatch{}, false
	}

	m := WordMatch{
		query:  MatchSide{ix: qIx, ln: qlenFull, lo: 0, hi: bestQL},
		record: MatchSide{ix: rIx, ln: rlenFull, lo: 0, hi: bestRL},
		typos:  bestDist,
		fin:    q.fin || bestRL == rlenFull,
	}
	return m, true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
