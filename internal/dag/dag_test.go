package dag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	assert := require.New(t)

	// A ──► B ──► C
	// └───────────┘
	const (
		A Node = iota
		B
		C
		nbNodes
	)
	d := New(int(nbNodes))
	a := d.AddNode(A)
	b := d.AddNode(B)
	d.AddEdges(b, []int{a})
	c := d.AddNode(C)
	d.AddEdges(c, []int{a, b})

	levels := d.Levels()
	assert.Len(levels, 3)
	assert.Equal([]int{a}, levels[0].Nodes)
	assert.Equal([]int{b}, levels[1].Nodes)
	assert.Equal([]int{c}, levels[2].Nodes)
}

func TestLevelsIndependentNodes(t *testing.T) {
	assert := require.New(t)

	// nodes with no dependencies at all (the shape of the quotient
	// builder's gate-family contributions) all land in a single level.
	const nbFamilies = 7
	d := New(nbFamilies)
	ids := make([]int, nbFamilies)
	for i := 0; i < nbFamilies; i++ {
		ids[i] = d.AddNode(Node(i))
	}

	levels := d.Levels()
	assert.Len(levels, 1)
	assert.ElementsMatch(ids, levels[0].Nodes)
}
