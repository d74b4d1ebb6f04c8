package dnaseq

const (
	// HashBase and HashMod are part of the external contract: a replacement
	// implementation must produce identical rolling-hash values on identical
	// inputs so that deterministic tie-breaking matches.
	HashBase = 57
	HashMod  = 2038076783
)

// modPow returns base^exp mod HashMod.
func modPow(base int64, exp int) int64 {
	result := int64(1)
	base %= HashMod
	for i := 0; i < exp; i++ {
		result = (result * base) % HashMod
	}
	return result
}

// CalcKMerHash independently computes the rolling hash of the length-k
// window starting at it, without mutating it. Tests cross-check
// Window.Value() against it after any sequence of Move() calls.
func CalcKMerHash(it StrandIterator, k int) int64 {
	val := int64(0)
	for i := 0; i < k; i++ {
		if !it.Valid() {
			panic("dnaseq: sequence shorter than k")
		}
		val = (val*HashBase + int64(it.Deref())) % HashMod
		if i < k-1 {
			it.Advance()
		}
	}
	return val
}

// KMerEqualTo reports whether the length-k windows starting at it1 and it2
// have identical content, scanning k translated bytes in lockstep. Required
// for hash-map use: distinct k-mers may share a hash value, and map
// correctness depends on equality, not hash uniqueness.
func KMerEqualTo(it1, it2 StrandIterator, k int) bool {
	for i := 0; i < k; i++ {
		if it1.Deref() != it2.Deref() {
			return false
		}
		if i < k-1 {
			it1.Advance()
			it2.Advance()
		}
	}
	return true
}

// KMerContent materializes the k translated bytes starting at it into a
// string, suitable as a Go map key with built-in content-based equality.
func KMerContent(it StrandIterator, k int) string {
	buf := make([]byte, k)
	for i := 0; i < k; i++ {
		buf[i] = it.Deref()
		if i < k-1 {
			it.Advance()
		}
	}
	return string(buf)
}

// Window is a sliding k-mer window carrying a polynomial rolling hash over
// strand iterators.
type Window struct {
	begin   StrandIterator
	end     StrandIterator
	value   int64
	highPow int64
	k       int
	valid   bool
}

// NewWindow builds a window of length k starting at begin. It panics if k<2
// or the strand does not have at least k live cells from begin.
func NewWindow(begin StrandIterator, k int) *Window {
	if k < 2 {
		panic("dnaseq: k must be >= 2")
	}
	w := &Window{begin: begin, k: k, highPow: modPow(HashBase, k-1)}
	it := begin
	val := int64(0)
	for i := 0; i < k; i++ {
		if !it.Valid() {
			panic("dnaseq: sequence shorter than k")
		}
		val = (val*HashBase + int64(it.Deref())) % HashMod
		w.end = it
		if i < k-1 {
			it.Advance()
		}
	}
	w.value = val
	w.valid = true
	return w
}

// Value returns the current window's rolling hash.
func (w *Window) Value() int64 {
	return w.value
}

// Valid reports whether the window still has a full k cells in view; it
// becomes false once Move has slid the window's end past the strand's
// past-the-end position.
func (w *Window) Valid() bool {
	return w.valid
}

// Begin returns a copy of the window's starting iterator.
func (w *Window) Begin() StrandIterator {
	return w.begin
}

// Move advances the window by one cell, updating Value incrementally
// instead of recomputing from scratch.
func (w *Window) Move() {
	sub := (int64(w.begin.Deref()) * w.highPow) % HashMod
	if w.value >= sub {
		w.value -= sub
	} else {
		w.value = HashMod - (sub - w.value)
	}
	w.value = (w.value * HashBase) % HashMod
	w.begin.Advance()
	w.end.Advance()
	if w.end.Valid() {
		w.value = (w.value + int64(w.end.Deref())) % HashMod
	} else {
		w.valid = false
	}
}
