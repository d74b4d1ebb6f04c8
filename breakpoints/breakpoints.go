// Package breakpoints maps bifurcation ids back to the original-coordinate
// span of the k-mer that earned them, so that a caller working in the
// caller's own genomic coordinates can locate a bifurcation without
// re-deriving it from the bifurcation index's iterator keys.
package breakpoints

import (
	"github.com/biogo/store/llrb"
	"github.com/grailbio/synteny/dnaseq"
)

// Breakpoint records a bifurcation id and the original-coordinate half-open
// span [Start, End) of the k-mer that produced it.
type Breakpoint struct {
	ID    int32
	Start int
	End   int
}

type key struct {
	start int
	bp    *Breakpoint
}

// Compare implements llrb.Comparable.
func (k key) Compare(c2 llrb.Comparable) int {
	return k.start - c2.(key).start
}

// Index is an ordered index from original-coordinate position to the
// Breakpoint whose span covers it, alongside a side table from id to
// Breakpoint.
type Index struct {
	byStart llrb.Tree
	byID    map[int32]*Breakpoint
}

// New constructs an empty Index.
func New() *Index {
	return &Index{byID: make(map[int32]*Breakpoint)}
}

// Add records a breakpoint for the bifurcation id assigned to the length-k
// k-mer starting at it, translating it into seq's original coordinates via
// SpellOriginal.
func (idx *Index) Add(seq *dnaseq.Sequence, it dnaseq.StrandIterator, k int, id int32) {
	end := it
	end.Jump(k)
	var scratch []byte
	start, stop := seq.SpellOriginal(it, end, &scratch)
	bp := &Breakpoint{ID: id, Start: start, End: stop}
	idx.byStart.Insert(key{start: start, bp: bp})
	idx.byID[id] = bp
}

// At returns the Breakpoint whose span covers pos, or nil if none does.
func (idx *Index) At(pos int) *Breakpoint {
	c := idx.byStart.Floor(key{start: pos})
	if c == nil {
		return nil
	}
	bp := c.(key).bp
	if pos >= bp.End {
		return nil
	}
	return bp
}

// ByID returns the Breakpoint recorded for id, or nil if none was added.
func (idx *Index) ByID(id int32) *Breakpoint {
	return idx.byID[id]
}

// Len returns the number of breakpoints recorded.
func (idx *Index) Len() int {
	return len(idx.byID)
}
