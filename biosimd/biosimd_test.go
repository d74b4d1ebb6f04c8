package biosimd

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestCleanASCIISeqInplace(t *testing.T) {
	seq := []byte("acgtACGTnNxyz-")
	CleanASCIISeqInplace(seq)
	expect.EQ(t, string(seq), "ACGTACGTNNNNNN")
}

func TestIsNonACGTNPresent(t *testing.T) {
	expect.False(t, IsNonACGTNPresent([]byte("ACGTNACGTN")))
	expect.True(t, IsNonACGTNPresent([]byte("ACGTX")))
	expect.True(t, IsNonACGTNPresent([]byte("ACGT-")))
}

func TestReverseComp8InplaceNoValidate(t *testing.T) {
	seq := []byte("ACGTN-")
	ReverseComp8InplaceNoValidate(seq)
	expect.EQ(t, string(seq), "-NACGT")

	seq = []byte("ACGT")
	ReverseComp8InplaceNoValidate(seq)
	expect.EQ(t, string(seq), "ACGT")

	seq = []byte("AACCGGTT")
	ReverseComp8InplaceNoValidate(seq)
	expect.EQ(t, string(seq), "AACCGGTT")

	seq = []byte("A")
	ReverseComp8InplaceNoValidate(seq)
	expect.EQ(t, string(seq), "T")
}
