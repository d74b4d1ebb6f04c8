package dnaseq

import (
	"reflect"
	"testing"

	"github.com/grailbio/synteny/biosimd"
	"github.com/grailbio/testutil/expect"
)

func TestWindowMatchesCalcKMerHash(t *testing.T) {
	seq := New([]byte("ACGTACGT"))
	const k = 4
	w := NewWindow(seq.PositiveBegin(), k)
	pos := 0
	for w.Valid() {
		expect.EQ(t, w.Value(), CalcKMerHash(seq.PositiveByIndex(pos), k))
		w.Move()
		pos++
	}
}

func TestWindowBecomesInvalidAtStrandEnd(t *testing.T) {
	seq := New([]byte("ACGTA"))
	w := NewWindow(seq.PositiveBegin(), 3)
	expect.True(t, w.Valid())
	w.Move() // window now at CGT
	expect.True(t, w.Valid())
	w.Move() // window now at GTA
	expect.True(t, w.Valid())
	w.Move() // no further full window exists
	expect.False(t, w.Valid())
}

func TestStrandKMerMultisetSymmetry(t *testing.T) {
	input := []byte("ACGTTGCAACGTNGTA")
	const k = 4
	count := func(begin StrandIterator) map[string]int {
		got := map[string]int{}
		w := NewWindow(begin, k)
		for w.Valid() {
			got[KMerContent(w.Begin(), k)]++
			w.Move()
		}
		return got
	}
	rc := append([]byte(nil), input...)
	biosimd.ReverseComp8InplaceNoValidate(rc)

	// A negative-strand scan of the reverse complement reads the same k-mer
	// multiset as a positive-strand scan of the input.
	pos := count(New(input).PositiveBegin())
	neg := count(New(rc).NegativeBegin())
	expect.True(t, reflect.DeepEqual(pos, neg))
}

func TestKMerEqualToAcrossStrandsPalindrome(t *testing.T) {
	seq := New([]byte("ACGT"))
	pos := seq.PositiveByIndex(0) // ACG
	neg := seq.NegativeByIndex(3) // walking backward from T, complemented: A,C,G
	expect.True(t, KMerEqualTo(pos, neg, 3))
	expect.EQ(t, KMerContent(pos, 3), KMerContent(neg, 3))
}

func TestKMerContentDistinguishesBranch(t *testing.T) {
	seq := New([]byte("ACGTACGA"))
	first := seq.PositiveByIndex(0)
	second := seq.PositiveByIndex(4)
	expect.EQ(t, KMerContent(first, 3), KMerContent(second, 3))
	expect.False(t, KMerEqualTo(seq.PositiveByIndex(1), seq.PositiveByIndex(5), 3))
}
