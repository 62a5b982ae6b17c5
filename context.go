package engine

import (
	"sync"

	"github.com/otterbloom/suggestengine/lang"
)

// Context holds the per-thread scratch buffers the matching pipeline
// reuses across calls: the weighted-DL matrix, the Jaccard comparison
// sets, and the trigram counter/candidate scratch. All of it grows
// monotonically and is reset, never freed, between searches so the
// hot path stays allocation-free after warmup.
type Context struct {
	dl      dlScratch
	jaccard jaccardScratch
	trigram trigramScratch
	pair    [2]pairScratch
}

// pairScratch holds the concatenated chars/classes buffers used to
// build a join-split candidate (two adjacent words treated as one) in
// the text matcher, without allocating per query word.
type pairScratch struct {
	chars   []rune
	classes []lang.CharClass
}

// dlScratch is the growable, reused weighted-DL distance matrix plus
// its last-occurrence tracking. capRows/capCols are the allocated
// dimensions, which only ever grow (1.5x) and are never shrunk between
// calls.
type dlScratch struct {
	cells           []float64 // flat, row-major, size capRows*capCols
	capRows, capCols int
	lastSeen        map[rune]int
}

func (d *dlScratch) at(i, j int) float64    { return d.cells[i*d.capCols+j] }
func (d *dlScratch) set(i, j int, v float64) { d.cells[i*d.capCols+j] = v }

// ensure grows the matrix to hold at least rows x cols cells,
// reallocating at 1.5x the requested size when it must grow at all.
func (d *dlScratch) ensure(rows, cols int) {
	if rows <= d.capRows && cols <= d.capCols {
		return
	}
	newRows := d.capRows
	if rows > newRows {
		newRows = rows + rows/2 + 1
	}
	newCols := d.capCols
	if cols > newCols {
		newCols = cols + cols/2 + 1
	}
	d.cells = make([]float64, newRows*newCols)
	d.capRows, d.capCols = newRows, newCols
}

// jaccardScratch holds reusable sorted-rune scratch slices for the
// character-set Jaccard pre-filter, avoiding per-call allocation.
type jaccardScratch struct {
	a, b []rune
}

// trigramScratch holds the per-query gram counter and the resulting
// candidate id set used by TrigramIndex.prepare/matches.
type trigramScratch struct {
	counts  map[string]int
	indexed map[string]bool
}

// newContext allocates a Context with its scratch structures ready to
// use; contextPool.Get returns one of these (or a reset one).
func newContext() *Context {
	return &Context{
		dl:      dlScratch{lastSeen: make(map[rune]int)},
		trigram: trigramScratch{counts: make(map[string]int), indexed: make(map[string]bool)},
	}
}

// reset clears scratch contents for reuse without shrinking any
// underlying capacity.
func (ctx *Context) reset() {
	clear(ctx.dl.lastSeen)
	ctx.jaccard.a = ctx.jaccard.a[:0]
	ctx.jaccard.b = ctx.jaccard.b[:0]
	clear(ctx.trigram.counts)
	clear(ctx.trigram.indexed)
	ctx.pair[0].chars = ctx.pair[0].chars[:0]
	ctx.pair[0].classes = ctx.pair[0].classes[:0]
	ctx.pair[1].chars = ctx.pair[1].chars[:0]
	ctx.pair[1].classes = ctx.pair[1].classes[:0]
}

// contextPool reuses Context values across searches so repeated calls
// on the hot path don't reallocate the distance matrix or scratch maps.
var contextPool = sync.Pool{
	New: func() interface{} { return newContext() },
}

func getContext() *Context {
	return contextPool.Get().(*Context)
}

func putContext(ctx *Context) {
	ctx.reset()
	contextPool.Put(ctx)
}
