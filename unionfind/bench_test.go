package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsu/unionfind"
)

// BenchmarkUnion_Policies measures a full merge workload, construction plus
// U random unions over [0, N], once per policy. Unions mutate the structure,
// so each iteration rebuilds from scratch on a pre-generated pair list.
func BenchmarkUnion_Policies(b *testing.B) {
	const (
		N = 100000
		U = 150000
	)

	rnd := rand.New(rand.NewSource(42))
	pairs := make([][2]int, U)
	for k := range pairs {
		pairs[k] = [2]int{rnd.Intn(N + 1), rnd.Intn(N + 1)}
	}

	for _, tc := range []struct {
		name   string
		policy unionfind.Policy
	}{
		{"ByRank", unionfind.ByRank},
		{"BySize", unionfind.BySize},
	} {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(N + 1 + U))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ds, _ := unionfind.New(N, unionfind.WithPolicy(tc.policy))
				for _, p := range pairs {
					_ = ds.Union(p[0], p[1])
				}
			}
		})
	}
}

// BenchmarkFind_SteadyState measures compressed lookups: rank union keeps
// trees shallow and a warm-up pass flattens them fully, so the loop hits the
// one-hop fast path.
func BenchmarkFind_SteadyState(b *testing.B) {
	const N = 100000
	ds, _ := unionfind.New(N)
	for i := 0; i < N; i++ {
		_ = ds.UnionByRank(i, i+1)
	}
	for i := 0; i <= N; i++ {
		_, _ = ds.Find(i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ds.Find(i % (N + 1))
	}
}

// BenchmarkConnected_Random measures pair queries against a prebuilt random
// partition of [0, N].
func BenchmarkConnected_Random(b *testing.B) {
	const (
		N = 50000
		U = 30000
		Q = 4096
	)

	rnd := rand.New(rand.NewSource(42))
	ds, _ := unionfind.New(N, unionfind.WithPolicy(unionfind.BySize))
	for k := 0; k < U; k++ {
		_ = ds.Union(rnd.Intn(N+1), rnd.Intn(N+1))
	}
	queries := make([][2]int, Q)
	for k := range queries {
		queries[k] = [2]int{rnd.Intn(N + 1), rnd.Intn(N + 1)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := queries[i%Q]
		_, _ = ds.Connected(q[0], q[1])
	}
}
