package bifurcation

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestUpdateForwardFirstObservationNoTransition(t *testing.T) {
	m := newMetadata()
	expect.False(t, m.updateForward('T'))
	expect.EQ(t, m.seenForward, byte('T'))
}

func TestUpdateForwardRepeatedObservationNoTransition(t *testing.T) {
	m := newMetadata()
	m.updateForward('T')
	expect.False(t, m.updateForward('T'))
}

func TestUpdateForwardSecondDistinctObservationTransitions(t *testing.T) {
	m := newMetadata()
	m.updateForward('T')
	expect.True(t, m.updateForward('A'))
}

func TestUpdateIgnoresNoChar(t *testing.T) {
	m := newMetadata()
	expect.False(t, m.updateForward(noChar))
	expect.EQ(t, m.seenForward, noChar)
}

func TestUpdateNoOpOnceAssigned(t *testing.T) {
	m := newMetadata()
	m.id = 7
	expect.False(t, m.updateForward('T'))
	expect.False(t, m.updateBackward('A'))
	expect.EQ(t, m.seenForward, noChar)
}
