// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/lvclique/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200 // number of concurrent adds
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	require.Len(t, nbs, num, "expected %d unique neighbors", num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentAddRemoveVertex mixes AddEdge and RemoveVertex calls
// to verify no races or panics occur and symmetry survives.
func TestConcurrentAddRemoveVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge("Base", fmt.Sprintf("V%d", id))
		}(i)

		go func(id int) {
			defer wg.Done()
			_ = g.RemoveVertex(fmt.Sprintf("V%d", id))
		}(i)
	}
	wg.Wait()

	// Whatever interleaving happened, adjacency must still be symmetric.
	for _, e := range g.Edges() {
		require.True(t, g.HasEdge(e.To, e.From), "asymmetric edge %v", e)
	}
}

// TestConcurrentNeighborsAndClone validates concurrent reads
// (NeighborIDs) and clones do not race with each other.
func TestConcurrentNeighborsAndClone(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge("A", fmt.Sprintf("N%02d", i)))
	}

	const readers = 50
	const cloners = 20
	var wg sync.WaitGroup
	wg.Add(readers + cloners)

	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			nbs, err := g.NeighborIDs("A")
			require.NoError(t, err)
			require.Len(t, nbs, 50)
		}()
	}

	for i := 0; i < cloners; i++ {
		go func() {
			defer wg.Done()
			c := g.Clone()
			require.Equal(t, 50, c.EdgeCount())
		}()
	}

	wg.Wait()
}
