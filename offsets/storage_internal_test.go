package offsets

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the sum tree and sizing rules of s.
func checkInvariants(t *testing.T, s *Storage) {
	t.Helper()
	require.Greater(t, s.size, s.count)
	require.Zero(t, s.size&(s.size-1), "size %d is not a power of two", s.size)
	require.Len(t, s.aggregate, s.size)
	for i := s.count; i < s.size; i++ {
		require.Zero(t, s.storage[i], "padding at %d", i)
	}
	for i := 1; i < s.size; i++ {
		require.Equal(t, addSaturating(s.node(2*i), s.node(2*i+1)), s.aggregate[i], "node %d", i)
	}
	measured := 0
	for i := 0; i < s.count; i++ {
		if s.hasValue[i] {
			measured++
		}
	}
	require.Equal(t, measured, s.valueCount)
}

func TestStorage_RandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	s := NewStorage(5, 3)
	for step := 0; step < 2000; step++ {
		switch op := rng.IntN(6); {
		case op == 0:
			s.Add(rng.Float64() * 20)
		case op == 1:
			s.Insert(rng.IntN(s.count+1), rng.Float64()*20)
		case op == 2:
			s.InsertRange(rng.IntN(s.count+1), rng.Float64()*20, rng.IntN(5))
		case op == 3 && s.count > 0:
			s.Update(rng.IntN(s.count), rng.Float64()*20)
		case op == 4 && s.count > 0:
			s.Set(rng.IntN(s.count), rng.Float64()*20)
		case op == 5 && s.count > 0:
			i := rng.IntN(s.count)
			s.RemoveRange(i, rng.IntN(s.count-i+1))
		}
		checkInvariants(t, s)
	}
}

func TestAddSaturating(t *testing.T) {
	const maxInt = int64(^uint64(0) >> 1)
	require.Equal(t, int64(5), addSaturating(2, 3))
	require.Equal(t, maxInt, addSaturating(maxInt, 1))
	require.Equal(t, maxInt, addSaturating(1, maxInt))
	require.Equal(t, int64(-1), addSaturating(2, -3))
}
