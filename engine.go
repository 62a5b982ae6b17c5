package engine

import (
	"sync"

	"github.com/otterbloom/suggestengine/lang"
)

// SearchResult is a single ranked hit from the map-based convenience
// API: a document id, its original text, and a relevance score
// (higher is better) collapsed from the engine's multi-key Score.
type SearchResult struct {
	ID    string
	Text  string
	Score float32
}

// SearchEngine is a convenience facade over Store for callers that
// just have a map[id]title and want ranked results without building a
// Store themselves. It builds (and rebuilds, on data changes) a Store
// under the hood and reuses it across calls. Concurrent Search calls
// are serialized by an internal mutex.
type SearchEngine struct {
	mu    sync.Mutex
	lang  lang.Resource
	store *Store
	keys  map[string]string // last-seen id->title, to detect changes cheaply
}

// NewSearchEngine creates a search engine using the default English
// language resource.
func NewSearchEngine() *SearchEngine {
	return &SearchEngine{lang: lang.English}
}

// Search ranks data's entries against query and returns up to
// maxResults hits, best first. Rebuilds its internal Store whenever
// data's id set or any title changed since the previous call.
func (se *SearchEngine) Search(data map[string]string, query string, maxResults int) []SearchResult {
	if maxResults <= 0 || len(data) == 0 || len(NewQueryText(query, se.lang).words) == 0 {
		return nil
	}
	se.mu.Lock()
	defer se.mu.Unlock()
	se.sync(data)
	se.store.SetLimit(maxResults)
	hits := se.store.Search(query)
	return toSearchResults(hits)
}

// QuickSearch is a one-shot convenience wrapper: it builds a fresh
// Store from data, searches once, and discards it. Prefer a
// SearchEngine (or a Store directly) for repeated searches over the
// same catalogue.
func QuickSearch(data map[string]string, query string, maxResults int) []SearchResult {
	if maxResults <= 0 || len(data) == 0 || len(NewQueryText(query, lang.English).words) == 0 {
		return nil
	}
	store := buildStore(data)
	store.SetLimit(maxResults)
	return toSearchResults(store.Search(query))
}

func (se *SearchEngine) sync(data map[string]string) {
	if se.store != nil && sameKeys(se.keys, data) {
		return
	}
	se.store = buildStore(data)
	se.keys = make(map[string]string, len(data))
	for k, v := range data {
		se.keys[k] = v
	}
}

func sameKeys(prev, data map[string]string) bool {
	if len(prev) != len(data) {
		return false
	}
	for k, v := range data {
		if prev[k] != v {
			return false
		}
	}
	return true
}

func buildStore(data map[string]string) *Store {
	store := NewStore(lang.English)
	for id, title := range data {
		_ = store.AddRecord(id, 0, title)
	}
	return store
}

func toSearchResults(hits []Hit) []SearchResult {
	if len(hits) == 0 {
		return nil
	}
	out := make([]SearchResult, len(hits))
	for i, h := range hits {
		out[i] = SearchResult{
			ID:    h.Record.id,
			Text:  stripNUL(h.Record.title.source),
			Score: float32(h.Score.chars - h.Score.tails),
		}
	}
	return out
}
