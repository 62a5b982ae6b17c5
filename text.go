package engine

import "github.com/otterbloom/suggestengine/lang"

// Text holds three parallel arrays of equal length plus the word
// shapes that slice into them. source is the code points after
// compose-normalization, NUL-padded wherever reduce expanded one code
// point into several so every array stays aligned; chars is the
// normalized lowercase form used for matching; classes is the
// per-position character class.
type Text struct {
	source  []rune
	chars   []rune
	classes []lang.CharClass
	words   []Word
}

// Word is a shape referencing a slice of its parent Text's arrays.
// slice is (lo, hi) into source/chars/classes. stem is the length of
// the word's lexical root prefix, always <= hi-lo. fin is false only
// for the last word of an in-progress query.
type Word struct {
	offset int
	lo, hi int
	stem   int
	pos    lang.POS
	fin    bool
}

func (w Word) len() int { return w.hi - w.lo }

// primary reports whether the word's tag is not a function-word tag.
func (w Word) primary() bool { return w.pos.Primary() }

// Record is one catalogue entry. ix is its insertion index; id is the
// caller-facing identifier, unique within a Store; rating is a
// non-negative tiebreak.
type Record struct {
	id     string
	ix     int
	rating int
	title  Text
}

// ID returns the record's caller-facing identifier.
func (r *Record) ID() string { return r.id }

// Store holds a catalogue of records plus the index and settings used
// to search it.
type Store struct {
	records []Record
	lang    lang.Resource
	limit   int
	left    string
	right   string
	index   TrigramIndex

	byID map[string]int
}
