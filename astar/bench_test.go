package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkFindPath_Default measures one search on the default open 5×7 grid.
func BenchmarkFindPath_Default(b *testing.B) {
	p := newPathfinder(b, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.FindPath(2, 6)
	}
}

// BenchmarkFindPath_Random measures a search across a 200×200 grid with
// roughly 25% interior obstacles.
// Complexity: O(V log V).
func BenchmarkFindPath_Random(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	o, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	for y := 1; y < n-1; y++ {
		for x := 0; x < n; x++ {
			if rng.Intn(4) == 0 {
				_ = o.Set(x, y, true)
			}
		}
	}
	p := newPathfinder(b, nil, astar.WithDimensions(n, n))
	if err := p.SetOccupancyGrid(o); err != nil {
		b.Fatalf("setup SetOccupancyGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.FindPath(n/2, n-1)
	}
}
