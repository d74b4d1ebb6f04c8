package dnaseq

import (
	"github.com/grailbio/synteny/biosimd"
)

// StrandIterator is a position on one strand of a Sequence: a Cursor paired
// with the reading strategy (positive or negative) that translates the
// bytes it dereferences. It borrows its owning Sequence only to consult the
// deletion count for Jump; it must not outlive that Sequence.
type StrandIterator struct {
	seq *Sequence
	cur Cursor
	str strand
}

// Deref returns the translated base at the iterator's position: the raw
// byte for the positive strand, its complement for the negative strand.
func (it StrandIterator) Deref() byte {
	return it.str.translate(it.cur.Deref())
}

// Position returns the iterator's position in the shared buffer.
func (it StrandIterator) Position() int {
	return it.cur.Position()
}

// Valid reports whether the iterator refers to a live cell.
func (it StrandIterator) Valid() bool {
	return it.cur.Valid()
}

// Advance moves the iterator one step forward along its strand.
func (it *StrandIterator) Advance() {
	it.cur.Advance()
}

// Retreat moves the iterator one step backward along its strand.
func (it *StrandIterator) Retreat() {
	it.cur.Retreat()
}

// Invert returns the strand iterator at the same cursor position but with
// the opposite strategy: the cursor is preserved, only the reading strategy
// (and with it the traversal direction and translation) swaps. Inverting
// twice yields back the original iterator.
func (it StrandIterator) Invert() StrandIterator {
	newStr := it.str.invert()
	return StrandIterator{
		seq: it.seq,
		cur: Cursor{buf: it.cur.buf, pos: it.cur.pos, dir: newStr.cursorDirection()},
		str: newStr,
	}
}

// Equal reports whether two strand iterators refer to the same cursor
// position, regardless of strand.
func (it StrandIterator) Equal(other StrandIterator) bool {
	return it.cur.Equal(&other.cur)
}

// Jump advances the iterator as if by k successive Advance calls. When the
// owning Sequence has no outstanding deletions this is O(1) arithmetic,
// saturating at past-the-end; otherwise it falls back to k ordinary moves.
func (it *StrandIterator) Jump(k int) {
	if it.seq.deletions == 0 {
		n := len(it.cur.buf)
		if it.str == positive {
			it.cur.pos += k
			if it.cur.pos > n {
				it.cur.pos = n
			}
		} else {
			it.cur.pos -= k
			if it.cur.pos < -1 {
				it.cur.pos = -1
			}
		}
		return
	}
	for i := 0; i < k; i++ {
		it.Advance()
	}
}

// Sequence is a strand-aware DNA string: a mutable current buffer that may
// accumulate logical deletions, and an immutable original buffer preserving
// the pre-edit content for reporting coordinates back to callers.
type Sequence struct {
	cur       []byte
	orig      []byte
	deletions int
}

// New builds a Sequence over a copy of buf. buf must contain only
// A, C, G, T, N; the deletion sentinel must not appear in caller input.
func New(buf []byte) *Sequence {
	if biosimd.IsNonACGTNPresent(buf) {
		panic("dnaseq: input contains a byte outside {A,C,G,T,N}")
	}
	cur := make([]byte, len(buf))
	orig := make([]byte, len(buf))
	copy(cur, buf)
	copy(orig, buf)
	return &Sequence{cur: cur, orig: orig}
}

// Size returns the length of the current buffer, including any deleted
// cells.
func (s *Sequence) Size() int {
	return len(s.cur)
}

// RawChar returns the unmodified byte at position p in the current buffer.
func (s *Sequence) RawChar(p int) byte {
	return s.cur[p]
}

// SpellRaw copies the entire current buffer into out.
func (s *Sequence) SpellRaw(out *[]byte) {
	*out = append((*out)[:0], s.cur...)
}

// PositiveByIndex returns a positive-strand iterator at buffer position p.
func (s *Sequence) PositiveByIndex(p int) StrandIterator {
	return StrandIterator{seq: s, cur: NewCursor(s.cur, p, Forward), str: positive}
}

// NegativeByIndex returns a negative-strand iterator at buffer position p.
func (s *Sequence) NegativeByIndex(p int) StrandIterator {
	return StrandIterator{seq: s, cur: NewCursor(s.cur, p, Reverse), str: negative}
}

// PositiveBegin returns the positive-strand iterator at the first live
// cell.
func (s *Sequence) PositiveBegin() StrandIterator {
	if len(s.cur) == 0 {
		return s.PositiveRightEnd()
	}
	return s.PositiveByIndex(0)
}

// PositiveRightEnd returns the canonical positive-strand past-the-end
// iterator.
func (s *Sequence) PositiveRightEnd() StrandIterator {
	return StrandIterator{seq: s, cur: RightEnd(s.cur), str: positive}
}

// NegativeBegin returns the negative-strand iterator at the last live cell.
func (s *Sequence) NegativeBegin() StrandIterator {
	if len(s.cur) == 0 {
		return s.NegativeRightEnd()
	}
	return s.NegativeByIndex(len(s.cur) - 1)
}

// NegativeRightEnd returns the canonical negative-strand past-the-end
// iterator (the "left end" of the raw buffer).
func (s *Sequence) NegativeRightEnd() StrandIterator {
	return StrandIterator{seq: s, cur: LeftEnd(s.cur), str: negative}
}

// CopyN overwrites count cells starting at dst.Position(), writing
// dst's-strand-translated bytes read forward from src. Both iterators
// advance count times along their own strand.
func (s *Sequence) CopyN(src StrandIterator, count int, dst StrandIterator) {
	for i := 0; i < count; i++ {
		if !dst.Valid() || !src.Valid() {
			panic("dnaseq: copy_n past-the-end")
		}
		s.cur[dst.Position()] = dst.str.translate(src.Deref())
		src.Advance()
		dst.Advance()
	}
}

// EraseN writes the deletion sentinel into count cells starting at
// dst.Position(), advancing along dst's strand (so for the negative strand
// the affected raw positions walk backward). Increments the sequence's
// deletion count by count.
func (s *Sequence) EraseN(dst StrandIterator, count int) {
	for i := 0; i < count; i++ {
		if !dst.Valid() {
			panic("dnaseq: erase_n past-the-end")
		}
		s.cur[dst.Position()] = deletedByte
		dst.Advance()
	}
	s.deletions += count
}

// SpellOriginal copies the original-buffer content underlying the half-open
// strand range [it1, it2) into out, preserving it1's strand orientation,
// and returns (min_original_pos, max_original_pos+1).
func (s *Sequence) SpellOriginal(it1, it2 StrandIterator, out *[]byte) (int, int) {
	last := it2
	last.Retreat()
	lo, hi := it1.Position(), last.Position()
	if lo > hi {
		lo, hi = hi, lo
	}
	hi++
	*out = append((*out)[:0], s.orig[lo:hi]...)
	if it1.str == negative {
		biosimd.ReverseComp8InplaceNoValidate(*out)
	}
	return lo, hi
}
