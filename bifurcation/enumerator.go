package bifurcation

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/synteny/dnaseq"
)

// ProgressMod is the window count between progress log lines. Callers such
// as the CLI's Opts.ProgressMod may override it before calling
// EnumerateBifurcations.
var ProgressMod int64 = 1_000_000

// EnumerateBifurcations scans seq with window length k and writes every
// discovered bifurcation into idx. It returns the total number of assigned
// ids.
//
// idx is cleared first. k must be >= 2 and seq must hold at least k live
// cells on both strands; violations panic.
func EnumerateBifurcations(seq *dnaseq.Sequence, idx Index, k int) int {
	idx.Clear()

	m := make(map[string]*metadata)
	var nextID int32

	seedBoundary := func(it dnaseq.StrandIterator) {
		key := dnaseq.KMerContent(it, k)
		if _, exists := m[key]; !exists {
			m[key] = &metadata{id: nextID}
		}
		nextID++
	}

	posBegin := seq.PositiveBegin()
	negBegin := seq.NegativeBegin()
	posBoundary := seq.PositiveRightEnd()
	retreatN(&posBoundary, k)
	negBoundary := seq.NegativeRightEnd()
	retreatN(&negBoundary, k)

	// 1. Seed the four boundary k-mers as bifurcations by fiat. The id
	// counter advances for all four even when boundary contents coincide
	// (short or palindromic input); the first seed of a given content wins
	// and later coincident boundaries reuse its entry.
	seedBoundary(posBegin)
	seedBoundary(negBegin)
	seedBoundary(posBoundary)
	seedBoundary(negBoundary)

	var windows int64
	logProgress := func() {
		windows++
		if windows%ProgressMod == 0 {
			log.Printf("bifurcation: scanned %d windows, %d ids assigned", windows, nextID)
		}
	}

	// 2. Interior scan, positive strand: from ++positive_begin up to
	// --positive_right_end (i.e. up to the k-retreated boundary iterator).
	posIt := posBegin
	posIt.Advance()
	for !posIt.Equal(posBoundary) {
		nextID = scanInterior(m, posIt, k, true, nextID)
		logProgress()
		posIt.Advance()
	}

	// 3. Interior scan, negative strand: same range, but records are only
	// updated, never created.
	negIt := negBegin
	negIt.Advance()
	for !negIt.Equal(negBoundary) {
		nextID = scanInterior(m, negIt, k, false, nextID)
		logProgress()
		negIt.Advance()
	}

	// 4. Emission: re-slide both strands fully, writing every window whose
	// metadata has an assigned id into idx.
	emit(m, idx, k, seq.PositiveBegin())
	emit(m, idx, k, seq.NegativeBegin())

	return int(nextID)
}

// scanInterior processes the window starting at it: looking it up in m
// (creating an empty record when insert is true and the key is absent),
// and — when the record exists and is still unassigned — applying the
// forward/backward update rule, assigning a fresh id on any transition.
// It returns the (possibly incremented) next id to assign.
func scanInterior(m map[string]*metadata, it dnaseq.StrandIterator, k int, insert bool, nextID int32) int32 {
	key := dnaseq.KMerContent(it, k)
	entry, exists := m[key]
	if !exists {
		if insert {
			m[key] = newMetadata()
		}
		return nextID
	}
	if entry.id != NoID {
		return nextID
	}

	after := it
	after.Jump(k)
	var afterChar byte = noChar
	if after.Valid() {
		afterChar = after.Deref()
	}

	before := it
	before.Retreat()
	var beforeChar byte = noChar
	if before.Valid() {
		beforeChar = before.Deref()
	}

	transition := entry.updateForward(afterChar)
	if entry.updateBackward(beforeChar) {
		transition = true
	}
	if transition {
		entry.id = nextID
		nextID++
	}
	return nextID
}

// emit re-slides a length-k window across an entire strand (begin through
// past-the-end) and writes every window whose metadata has an assigned id
// into idx.
func emit(m map[string]*metadata, idx Index, k int, begin dnaseq.StrandIterator) {
	w := dnaseq.NewWindow(begin, k)
	for w.Valid() {
		key := dnaseq.KMerContent(w.Begin(), k)
		if entry, exists := m[key]; exists && entry.id != NoID {
			idx.AddPoint(w.Begin(), k, entry.id)
		}
		w.Move()
	}
}

// retreatN moves it backward k times, used to locate the start of the last
// k-mer ending at a strand's past-the-end iterator.
func retreatN(it *dnaseq.StrandIterator, k int) {
	for i := 0; i < k; i++ {
		it.Retreat()
	}
}
