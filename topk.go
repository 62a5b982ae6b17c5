package engine

import "sort"

// Hit is one accepted search result: the matched record, its word
// matches in query order, and the computed ranking score.
type Hit struct {
	Record  *Record
	Matches []WordMatch
	Score   Score
	seq     int
}

// TopK is a buffered limit-sort selector: it keeps at most 2*limit
// candidates, sorting and truncating to limit whenever the buffer
// fills, and once more at end-of-stream. The sort is stable so
// equal-score hits retain insertion order.
type TopK struct {
	limit int
	buf   []Hit
	seq   int
}

// NewTopK builds a selector for limit results. limit <= 0 yields no
// results (a zero limit reserves no capacity, per spec.md 6).
func NewTopK(limit int) *TopK {
	return &TopK{limit: limit}
}

// relevant applies the pre-buffer relevance filter from spec.md 4.8.
func relevant(matches []WordMatch, queryEmpty bool, queryWordCount int) bool {
	if queryEmpty {
		return true
	}
	if len(matches) == 0 {
		return false
	}
	if len(matches) == 1 && queryWordCount > 1 {
		m := matches[0]
		if !m.fin && 2*m.query.ln < m.record.ln {
			return false
		}
	}
	return true
}

// Push offers a candidate record's matches. queryEmpty and
// queryWordCount drive the relevance filter; rejected candidates
// never enter the buffer.
func (t *TopK) Push(rec *Record, matches []WordMatch, queryEmpty bool, queryWordCount int) {
	if t.limit <= 0 {
		return
	}
	if !relevant(matches, queryEmpty, queryWordCount) {
		return
	}
	t.buf = append(t.buf, Hit{
		Record:  rec,
		Matches: matches,
		Score:   ComputeScore(matches, rec),
		seq:     t.seq,
	})
	t.seq++
	if len(t.buf) >= 2*t.limit {
		t.sortAndTruncate()
	}
}

func (t *TopK) less(i, j int) bool {
	a, b := t.buf[i], t.buf[j]
	if a.Score.Better(b.Score) {
		return true
	}
	if b.Score.Better(a.Score) {
		return false
	}
	return a.seq < b.seq
}

func (t *TopK) sortAndTruncate() {
	sort.SliceStable(t.buf, t.less)
	if len(t.buf) > t.limit {
		t.buf = t.buf[:t.limit]
	}
}

// Finish performs the final sort/truncate and returns the results,
// best first.
func (t *TopK) Finish() []Hit {
	t.sortAndTruncate()
	return t.buf
}
