package engine

import (
	"fmt"

	"github.com/otterbloom/suggestengine/lang"
)

const defaultLimit = 10

// NewStore builds an empty catalogue using res for tokenization. The
// default limit is 10 and the default highlight delimiters are
// {{ / }}, matching the host ABI's create_store default.
func NewStore(res lang.Resource) *Store {
	return &Store{
		lang:  res,
		limit: defaultLimit,
		left:  "{{",
		right: "}}",
		index: newTrigramIndex(),
		byID:  make(map[string]int),
	}
}

// AddRecord tokenizes title with the Record profile and appends it.
// id must be unique within the store.
func (s *Store) AddRecord(id string, rating int, title string) error {
	if _, exists := s.byID[id]; exists {
		return fmt.Errorf("suggestengine: duplicate record id %q", id)
	}
	rec := Record{
		id:     id,
		ix:     len(s.records),
		rating: rating,
		title:  NewRecordText(title, s.lang),
	}
	s.records = append(s.records, rec)
	s.byID[id] = rec.ix
	s.index.add(&s.records[len(s.records)-1])
	return nil
}

// SetLimit changes the number of results a search returns.
func (s *Store) SetLimit(limit int) { s.limit = limit }

// HighlightWith changes the delimiter pair used by Search's highlight
// output.
func (s *Store) HighlightWith(left, right string) { s.left, s.right = left, right }

// Len reports the number of records in the store.
func (s *Store) Len() int { return len(s.records) }

// Search tokenizes query with the Query profile, narrows to trigram
// candidates, word-matches each surviving record, scores, and returns
// the top-K hits, best first. It acquires and releases its own
// per-search Context from the shared pool.
func (s *Store) Search(query string) []Hit {
	ctx := getContext()
	defer putContext(ctx)
	return s.SearchWithContext(ctx, query)
}

// SearchWithContext is Search with an externally supplied Context, for
// a caller that already holds one.
func (s *Store) SearchWithContext(ctx *Context, query string) []Hit {
	qText := NewQueryText(query, s.lang)
	queryEmpty := len(qText.words) == 0

	topk := NewTopK(s.limit)
	hadGrams := false
	if !queryEmpty {
		hadGrams = s.index.prepare(ctx, &qText, s.limit)
	}

	for i := range s.records {
		rec := &s.records[i]
		if !queryEmpty && hadGrams && !s.index.matches(ctx, rec) {
			continue
		}
		matches := TextMatch(ctx, &qText, &rec.title)
		topk.Push(rec, matches, queryEmpty, len(qText.words))
	}
	return topk.Finish()
}

// HighlightHit renders hit's record title with the store's current
// delimiter pair.
func (s *Store) HighlightHit(hit Hit) string {
	return Highlight(hit.Record, hit.Matches, s.left, s.right)
}
