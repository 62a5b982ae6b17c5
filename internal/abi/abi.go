// Package abi is the host ABI surface from spec.md 6: a small
// C-compatible boundary a cgo shim or any foreign-function bridge can
// call into directly. It manages a registry of engine.Store values by
// numeric id and panics ("fatal" in spec.md 6's terms) on programming
// errors — duplicate store id, unknown store id, malformed words[] —
// since these can only happen if the host itself is broken.
//
// This package intentionally does not touch cgo ("import \"C\"") per
// spec.md 1's scope note; a real FFI boundary would be a thin wrapper
// calling these exported functions.
package abi

import (
	"sync"

	engine "github.com/otterbloom/suggestengine"
	"github.com/otterbloom/suggestengine/internal/config"
	"github.com/otterbloom/suggestengine/lang"
)

var (
	mu     sync.RWMutex
	stores = make(map[uint64]*storeEntry)
	nextID uint64
)

type storeEntry struct {
	store   *engine.Store
	results []engine.Hit
}

// CreateStore allocates a new store with the spec default limit and
// highlight delimiters, returning its id.
func CreateStore() uint64 {
	mu.Lock()
	defer mu.Unlock()

	nextID++
	id := nextID
	if _, exists := stores[id]; exists {
		panic("abi: duplicate store id")
	}
	s := engine.NewStore(lang.English)
	s.SetLimit(config.DefaultLimit)
	stores[id] = &storeEntry{store: s}
	return id
}

// DestroyStore releases a store. Fatal if the id is unknown.
func DestroyStore(storeID uint64) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := stores[storeID]; !ok {
		panic("abi: destroy of unknown store id")
	}
	delete(stores, storeID)
}

// SetLimit changes a store's result-count limit. Fatal if unknown.
func SetLimit(storeID uint64, limit int) {
	entry(storeID).store.SetLimit(limit)
}

// HighlightWith changes a store's highlight delimiter pair.
func HighlightWith(storeID uint64, left, right string) {
	entry(storeID).store.HighlightWith(left, right)
}

// AddRecord tags and adds a record. classes and words mirror spec.md
// 6's wire shapes exactly (classes one int32 per code point, words a
// flat sextuple array). Only words[] is checked for shape; classes is
// not inspected, and neither array is used, since this build always
// re-derives tags from sourceUTF8 with the store's own English
// resource — the "core does it" path spec.md 6 allows when a
// full language resource is present. A malformed words[] (length not
// a multiple of 6) is fatal, matching the host-tagged path's contract.
func AddRecord(storeID uint64, recordID string, rating int, sourceUTF8 string, classes []int32, words []int32) {
	if len(words)%6 != 0 {
		panic("abi: malformed words[]: length not a multiple of 6")
	}
	e := entry(storeID)
	if err := e.store.AddRecord(recordID, rating, sourceUTF8); err != nil {
		panic("abi: " + err.Error())
	}
}

// RunSearch runs a query against a store and buffers the results for
// GetResultIDs/GetResultTitles, returning the hit count.
func RunSearch(storeID uint64, sourceUTF8 string, classes []int32, words []int32) int {
	if len(words)%6 != 0 {
		panic("abi: malformed words[]: length not a multiple of 6")
	}
	e := entry(storeID)
	e.results = e.store.Search(sourceUTF8)
	return len(e.results)
}

// GetResultIDs returns the ids from the most recent RunSearch, best
// match first.
func GetResultIDs(storeID uint64) []string {
	e := entry(storeID)
	ids := make([]string, len(e.results))
	for i, h := range e.results {
		ids[i] = h.Record.ID()
	}
	return ids
}

// GetResultTitles returns the most recent RunSearch's highlighted
// titles, joined by NUL in the same order as GetResultIDs.
func GetResultTitles(storeID uint64) string {
	e := entry(storeID)
	var sb []byte
	for i, h := range e.results {
		if i > 0 {
			sb = append(sb, 0)
		}
		sb = append(sb, []byte(e.store.HighlightHit(h))...)
	}
	return string(sb)
}

func entry(storeID uint64) *storeEntry {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := stores[storeID]
	if !ok {
		panic("abi: unknown store id")
	}
	return e
}
