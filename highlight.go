package engine

import (
	"sort"
	"strings"
)

type insertion struct {
	pos  int
	text string
}

// Highlight renders rec's original source with left/right delimiters
// wrapped around each matched record word's matched span, then drops
// any NUL padding introduced by Unicode reduction. A hit with no
// matches is a no-op save for the NUL strip.
func Highlight(rec *Record, matches []WordMatch, left, right string) string {
	src := rec.title.source
	if len(matches) == 0 {
		return stripNUL(src)
	}

	inserts := make([]insertion, 0, 2*len(matches))
	for _, m := range matches {
		w := rec.title.words[m.record.ix]
		lo := w.lo + m.record.lo
		hi := w.lo + m.record.hi
		inserts = append(inserts, insertion{pos: lo, text: left}, insertion{pos: hi, text: right})
	}
	sort.SliceStable(inserts, func(i, j int) bool { return inserts[i].pos < inserts[j].pos })

	var sb strings.Builder
	sb.Grow(len(src) + 2*len(matches)*(len(left)+len(right)))
	var buf [4]byte
	idx := 0
	for i := 0; i < len(src); i++ {
		for idx < len(inserts) && inserts[idx].pos == i {
			sb.WriteString(inserts[idx].text)
			idx++
		}
		if src[i] == 0 {
			continue
		}
		sb.Write(buf[:encodeRune(buf[:], src[i])])
	}
	for idx < len(inserts) && inserts[idx].pos == len(src) {
		sb.WriteString(inserts[idx].text)
		idx++
	}
	return sb.String()
}

func stripNUL(src []rune) string {
	var sb strings.Builder
	sb.Grow(len(src))
	var buf [4]byte
	for _, r := range src {
		if r == 0 {
			continue
		}
		sb.Write(buf[:encodeRune(buf[:], r)])
	}
	return sb.String()
}
