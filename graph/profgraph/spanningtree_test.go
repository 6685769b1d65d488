package profgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseST_ChordCountMatchesCyclomaticComplexity(t *testing.T) {
	g, err := Import(buildDiamond())
	require.NoError(t, err)
	g.AssignEdgeVals()
	g.closeExitToEntry()
	g.ChooseST()

	chords := 0
	for _, e := range g.Edges {
		if e.IsChord {
			chords++
		}
	}
	assert.Equal(t, len(g.Edges)-len(g.Nodes)+1, chords)
}

func TestChooseST_ClosureEdgeNeverAChord(t *testing.T) {
	g, err := Import(buildSimpleLoop())
	require.NoError(t, err)
	g.AssignEdgeVals()
	g.closeExitToEntry()
	g.ChooseST()

	for _, e := range g.Edges {
		if e.IsClosure {
			assert.False(t, e.IsChord, "the exit->entry closure edge is always kept in the spanning tree")
		}
	}
}
