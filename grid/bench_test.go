package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsu/grid"
)

// benchTerrain returns an M×M map with roughly 60% land, seeded for
// reproducibility.
func benchTerrain(m int) [][]int {
	r := rand.New(rand.NewSource(42))
	rows := make([][]int, m)
	for y := 0; y < m; y++ {
		rows[y] = make([]int, m)
		for x := 0; x < m; x++ {
			if r.Intn(100) < 60 {
				rows[y][x] = 1
			}
		}
	}

	return rows
}

// BenchmarkNew measures construction plus the full merge sweep on a 200×200
// map under both connectivities.
func BenchmarkNew(b *testing.B) {
	const M = 200
	terrain := benchTerrain(M)

	for _, tc := range []struct {
		name string
		conn grid.Connectivity
	}{
		{"Conn4", grid.Conn4},
		{"Conn8", grid.Conn8},
	} {
		b.Run(tc.name, func(b *testing.B) {
			opts := grid.DefaultOptions()
			opts.Conn = tc.conn

			b.ReportAllocs()
			b.SetBytes(int64(M * M))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = grid.New(terrain, opts)
			}
		})
	}
}

// BenchmarkSameIsland measures steady-state pair queries against a prebuilt
// 200×200 map.
func BenchmarkSameIsland(b *testing.B) {
	const M = 200
	g, err := grid.New(benchTerrain(M), grid.DefaultOptions())
	if err != nil {
		b.Fatalf("New error: %v", err)
	}

	r := rand.New(rand.NewSource(7))
	queries := make([][4]int, 4096)
	for k := range queries {
		queries[k] = [4]int{r.Intn(M), r.Intn(M), r.Intn(M), r.Intn(M)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := queries[i%len(queries)]
		_, _ = g.SameIsland(q[0], q[1], q[2], q[3])
	}
}

// BenchmarkIslands measures a full island enumeration on a prebuilt map.
func BenchmarkIslands(b *testing.B) {
	const M = 200
	g, err := grid.New(benchTerrain(M), grid.DefaultOptions())
	if err != nil {
		b.Fatalf("New error: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(M * M))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Islands()
	}
}
