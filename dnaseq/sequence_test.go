package dnaseq

import (
	"testing"

	"github.com/grailbio/synteny/biosimd"
	"github.com/grailbio/testutil/expect"
)

func TestPositiveNegativeByIndex(t *testing.T) {
	seq := New([]byte("ACGTACGT"))
	for p := 0; p < seq.Size(); p++ {
		expect.EQ(t, seq.PositiveByIndex(p).Deref(), seq.RawChar(p))
		expect.EQ(t, seq.NegativeByIndex(p).Deref(), complement(seq.RawChar(p)))
	}
}

func TestInvertInvolution(t *testing.T) {
	seq := New([]byte("ACGTACGT"))
	it := seq.PositiveByIndex(3)
	expect.True(t, it.Invert().Invert().Equal(it))
	expect.EQ(t, it.Invert().Invert().Deref(), it.Deref())

	neg := seq.NegativeByIndex(5)
	expect.True(t, neg.Invert().Invert().Equal(neg))
}

func TestNegativeStrandMatchesReverseComplement(t *testing.T) {
	input := []byte("ACGTTGCANNACGT")
	seq := New(input)
	var got []byte
	for it := seq.NegativeBegin(); it.Valid(); it.Advance() {
		got = append(got, it.Deref())
	}
	want := append([]byte(nil), input...)
	biosimd.ReverseComp8InplaceNoValidate(want)
	expect.EQ(t, string(got), string(want))
}

func TestSpellRawRoundTrip(t *testing.T) {
	input := []byte("ACGTACGT")
	seq := New(input)
	var out []byte
	seq.SpellRaw(&out)
	expect.EQ(t, string(out), string(input))
}

func TestSpellOriginalSurvivesDeletion(t *testing.T) {
	seq := New([]byte("AACCGGTT"))
	seq.EraseN(seq.PositiveByIndex(2), 2)

	var raw []byte
	seq.SpellRaw(&raw)
	expect.EQ(t, string(raw), "AA--GGTT")

	var visible []byte
	for it := seq.PositiveBegin(); it.Valid(); it.Advance() {
		visible = append(visible, it.Deref())
	}
	expect.EQ(t, string(visible), "AAGGTT")

	var out []byte
	lo, hi := seq.SpellOriginal(seq.PositiveBegin(), seq.PositiveRightEnd(), &out)
	expect.EQ(t, string(out), "AACCGGTT")
	expect.EQ(t, lo, 0)
	expect.EQ(t, hi, 8)
}

func TestSpellOriginalNegativeStrand(t *testing.T) {
	seq := New([]byte("ACGT"))
	var out []byte
	seq.SpellOriginal(seq.NegativeBegin(), seq.NegativeRightEnd(), &out)
	expect.EQ(t, string(out), "ACGT")
}

func TestCopyN(t *testing.T) {
	seq := New([]byte("ACGTACGT"))
	src := seq.PositiveByIndex(0)
	dst := seq.PositiveByIndex(4)
	seq.CopyN(src, 4, dst)
	var out []byte
	seq.SpellRaw(&out)
	expect.EQ(t, string(out), "ACGTACGT")
}

func TestJumpNoDeletions(t *testing.T) {
	seq := New([]byte("ACGTACGT"))
	it := seq.PositiveBegin()
	it.Jump(3)
	expect.EQ(t, it.Position(), 3)
	expect.EQ(t, it.Deref(), byte('T'))

	neg := seq.NegativeBegin()
	neg.Jump(3)
	expect.EQ(t, neg.Position(), 4)
}

func TestJumpWithDeletions(t *testing.T) {
	seq := New([]byte("AACCGGTT"))
	seq.EraseN(seq.PositiveByIndex(2), 2)
	it := seq.PositiveBegin()
	it.Jump(3)
	// visible sequence is A A G G T T; jumping 3 from index 0 lands on the
	// 4th visible cell, position 5 ('G').
	expect.EQ(t, it.Deref(), byte('G'))
}

func TestNegativeBeginSnapsPastTrailingDeletion(t *testing.T) {
	seq := New([]byte("ACGT"))
	seq.EraseN(seq.PositiveByIndex(3), 1)
	neg := seq.NegativeBegin()
	expect.EQ(t, neg.Position(), 2)
	expect.EQ(t, neg.Deref(), complement(byte('G')))
}
