package engine

// joinWords builds a wordView spanning w1 and w2's character ranges
// concatenated back to back, using one of ctx's pair scratch slots so
// no allocation is needed per query word. slot selects pair[0] or
// pair[1] so the query-side pair and record-side pair can coexist.
func joinWords(ctx *Context, slot int, t *Text, w1, w2 Word) wordView {
	p := &ctx.pair[slot]
	p.chars = append(p.chars[:0], t.chars[w1.lo:w1.hi]...)
	p.chars = append(p.chars, t.chars[w2.lo:w2.hi]...)
	p.classes = append(p.classes[:0], t.classes[w1.lo:w1.hi]...)
	p.classes = append(p.classes, t.classes[w2.lo:w2.hi]...)
	return wordView{
		chars:   p.chars,
		classes: p.classes,
		stem:    w1.len() + w2.stem,
		fin:     w2.fin,
	}
}

func computeFin(sourceFin bool, hi, fullLen int) bool {
	return sourceFin || hi == fullLen
}

// splitRecordSide takes a join match of q against (r1 ⊕ r2) and, if
// the match genuinely crosses into r2, splits it into two WordMatch
// entries: one per underlying record word, both sharing q's alignment.
func splitRecordSide(m WordMatch, qWord Word, qIx int, r1, r2 Word, rIx1 int) (WordMatch, WordMatch, bool) {
	w1len := r1.len()
	k := m.record.hi
	if k <= w1len {
		return WordMatch{}, WordMatch{}, false
	}
	total := m.typos
	second := total / 2
	first := total - second

	qSide := MatchSide{ix: qIx, ln: qWord.len(), lo: 0, hi: m.query.hi, primary: qWord.primary()}
	m1 := WordMatch{
		query:  qSide,
		record: MatchSide{ix: rIx1, ln: w1len, lo: 0, hi: w1len, primary: r1.primary()},
		typos:  first,
		fin:    computeFin(qWord.fin, w1len, w1len),
	}
	secondHi := k - w1len
	m2 := WordMatch{
		query:  qSide,
		record: MatchSide{ix: rIx1 + 1, ln: r2.len(), lo: 0, hi: secondHi, primary: r2.primary()},
		typos:  second,
		fin:    computeFin(qWord.fin, secondHi, r2.len()),
	}
	return m1, m2, true
}

// splitQuerySide is splitRecordSide's mirror: a join match of
// (q1 ⊕ q2) against r is split into two entries sharing r's alignment.
func splitQuerySide(m WordMatch, rWord Word, rIx int, q1, q2 Word, qIx1 int) (WordMatch, WordMatch, bool) {
	w1len := q1.len()
	k := m.query.hi
	if k <= w1len {
		return WordMatch{}, WordMatch{}, false
	}
	total := m.typos
	second := total / 2
	first := total - second

	rSide := MatchSide{ix: rIx, ln: rWord.len(), lo: 0, hi: m.record.hi, primary: rWord.primary()}
	m1 := WordMatch{
		query:  MatchSide{ix: qIx1, ln: w1len, lo: 0, hi: w1len, primary: q1.primary()},
		record: rSide,
		typos:  first,
		fin:    computeFin(q1.fin, m.record.hi, rWord.len()),
	}
	secondHi := k - w1len
	m2 := WordMatch{
		query:  MatchSide{ix: qIx1 + 1, ln: q2.len(), lo: 0, hi: secondHi, primary: q2.primary()},
		record: rSide,
		typos:  second,
		fin:    computeFin(q2.fin, m.record.hi, rWord.len()),
	}
	return m1, m2, true
}

// TextMatch aligns query's words against record's words greedily in
// query order, trying join-splits before a plain word match at every
// record word, preferring a primary record word over the first match
// seen, and consuming each word index at most once.
func TextMatch(ctx *Context, query, record *Text) []WordMatch {
	qWords := query.words
	rWords := record.words
	qConsumed := make([]bool, len(qWords))
	rConsumed := make([]bool, len(rWords))
	var out []WordMatch

	for qi := range qWords {
		if qConsumed[qi] {
			continue
		}
		qView := viewOf(query, qWords[qi])
		qView.stem = qWords[qi].stem

		var qPair *wordView
		if qi+1 < len(qWords) && !qConsumed[qi+1] {
			v := joinWords(ctx, 0, query, qWords[qi], qWords[qi+1])
			qPair = &v
		}

		matched := false
		var best WordMatch
		bestRj := -1
		haveBest := false
		var chosen WordMatch
		chosenRj := -1
		haveChosen := false

	scan:
		for rj := range rWords {
			if rConsumed[rj] {
				continue
			}
			rView := viewOf(record, rWords[rj])

			if rj+1 < len(rWords) && !rConsumed[rj+1] {
				rPair := joinWords(ctx, 1, record, rWords[rj], rWords[rj+1])
				if m, ok := wordMatch(ctx, qView, qi, rPair, rj); ok && m.fin {
					if m1, m2, split := splitRecordSide(m, qWords[qi], qi, rWords[rj], rWords[rj+1], rj); split {
						out = append(out, m1, m2)
						qConsumed[qi] = true
						rConsumed[rj] = true
						rConsumed[rj+1] = true
						matched = true
						break scan
					}
				}
			}

			if qPair != nil {
				if m, ok := wordMatch(ctx, *qPair, qi, rView, rj); ok && m.fin {
					if m1, m2, split := splitQuerySide(m, rWords[rj], rj, qWords[qi], qWords[qi+1], qi); split {
						out = append(out, m1, m2)
						qConsumed[qi] = true
						qConsumed[qi+1] = true
						rConsumed[rj] = true
						matched = true
						break scan
					}
				}
			}

			if m, ok := wordMatch(ctx, qView, qi, rView, rj); ok {
				m.query.primary = qWords[qi].primary()
				m.record.primary = rWords[rj].primary()
				if !haveBest {
					best, bestRj, haveBest = m, rj, true
				}
				if rWords[rj].primary() {
					chosen, chosenRj, haveChosen = m, rj, true
					break scan
				}
			}
		}

		if matched {
			continue
		}
		if haveChosen {
			out = append(out, chosen)
			qConsumed[qi] = true
			rConsumed[chosenRj] = true
		} else if haveBest {
			out = append(out, best)
			qConsumed[qi] = true
			rConsumed[bestRj] = true
		}
	}

	return out
}
