package offsets_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/chartlayout/offsets"
)

const delta = 1e-9

func TestNewStorage_Size(t *testing.T) {
	cases := []struct {
		capacity int
		size     int
	}{
		{-4, 2}, {0, 2}, {1, 2}, {2, 4}, {3, 4}, {7, 8}, {8, 16}, {100, 128},
	}
	for _, tc := range cases {
		s := offsets.NewStorage(tc.capacity, 1)
		assert.Equal(t, tc.size, s.Size(), "capacity %d", tc.capacity)
		assert.Equal(t, max(tc.capacity, 0), s.Count())
		assert.Greater(t, s.Size(), s.Count())
	}
}

func TestNewStorage_Options(t *testing.T) {
	s := offsets.NewStorage(0, 0, offsets.WithMinSize(1000), offsets.WithPrecision(10))
	assert.Equal(t, 1024, s.Size())
	assert.Equal(t, int64(10), s.Precision())

	s = offsets.NewStorage(0, 0, offsets.WithMinSize(1024), offsets.WithPrecision(-1))
	assert.Equal(t, 2048, s.Size(), "1024 entries must fit without extension")
	assert.Equal(t, offsets.DefaultPrecision, s.Precision())
}

func TestOffsetFromIndex_Default(t *testing.T) {
	s := offsets.NewStorage(5, 10)
	for i := 0; i < 5; i++ {
		assert.InDelta(t, float64(10*(i+1)), s.OffsetFromIndex(i), delta)
	}
	assert.InDelta(t, 50.0, s.Total(), delta)
}

func TestOffsetFromIndex_Clamps(t *testing.T) {
	s := buildStorage(t, 10, 20, 30)
	assert.InDelta(t, 10.0, s.OffsetFromIndex(-3), delta)
	assert.InDelta(t, 60.0, s.OffsetFromIndex(3), delta)
	assert.InDelta(t, 60.0, s.OffsetFromIndex(100), delta)

	empty := offsets.NewStorage(0, 0)
	assert.Zero(t, empty.OffsetFromIndex(0))
	assert.Zero(t, empty.Total())
}

func TestOffsetFromIndex_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	s := offsets.NewStorage(0, 0)
	var weights []float64
	for i := 0; i < 300; i++ {
		w := float64(rng.IntN(50000)) / 1000
		s.Add(0)
		s.Update(i, w)
		weights = append(weights, w)
	}
	for i := 0; i < 100; i++ {
		k := rng.IntN(len(weights))
		w := float64(rng.IntN(50000)) / 1000
		s.Update(k, w)
		weights[k] = w
	}

	var sum float64
	for i, w := range weights {
		sum += w
		require.InDelta(t, sum, s.OffsetFromIndex(i), 1e-6, "index %d", i)
	}
	assert.InDelta(t, sum, s.Total(), 1e-6)
}

func TestIndexFromOffset(t *testing.T) {
	s := buildStorage(t, 10, 20, 30, 40)
	cases := []struct {
		offset float64
		want   int
	}{
		{-5, 0}, {0, 0}, {5, 0}, {10, 0}, {10.001, 1}, {30, 1},
		{30.5, 2}, {60, 2}, {99, 3}, {100, 3}, {150, 3}, {math.Inf(1), 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, s.IndexFromOffset(tc.offset), "offset %v", tc.offset)
	}
	assert.Equal(t, -1, offsets.NewStorage(0, 0).IndexFromOffset(5))
}

func TestIndexFromOffset_ZeroWeightsTieBreak(t *testing.T) {
	s := buildStorage(t, 5, 0, 0, 5, 0)
	assert.Equal(t, 0, s.IndexFromOffset(5))
	assert.Equal(t, 3, s.IndexFromOffset(5.5))
	assert.Equal(t, 3, s.IndexFromOffset(10))
}

func TestIndexFromOffset_Inverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 1))
	s := offsets.NewStorage(0, 0)
	for i := 0; i < 513; i++ {
		s.Add(0.001 + float64(rng.IntN(40000))/1000)
	}
	for i := 0; i < s.Count(); i++ {
		require.Equal(t, i, s.IndexFromOffset(s.OffsetFromIndex(i)), "index %d", i)
	}
}

func TestIndexFromOffset_InverseLargeOffsets(t *testing.T) {
	s := offsets.NewStorage(2_000_000, 24.013)
	check := func(i int) {
		require.Equal(t, i, s.IndexFromOffset(s.OffsetFromIndex(i)), "index %d offset %v", i, s.OffsetFromIndex(i))
	}
	for i := 1_390_000; i < 1_410_000; i++ {
		check(i)
	}
	for i := 0; i < s.Count(); i += 997 {
		check(i)
	}
	check(s.Count() - 1)
}

func TestInsertRemoveSymmetry(t *testing.T) {
	s := buildStorage(t, 1, 2, 3, 4, 5, 6, 7)
	before := offsetsOf(s)

	for k := 0; k <= s.Count(); k++ {
		s.Insert(k, 42)
		require.Equal(t, 8, s.Count())
		require.InDelta(t, 42.0, s.At(k), delta)
		s.RemoveAt(k)
		require.Equal(t, before, offsetsOf(s), "insert/remove at %d", k)
	}
}

func TestInsertRange(t *testing.T) {
	s := buildStorage(t, 1, 2, 3)
	s.InsertRange(1, 10, 3)
	assert.Equal(t, []float64{1, 10, 10, 10, 2, 3}, valuesOf(s))
	assert.InDelta(t, 36.0, s.Total(), delta)
	assert.False(t, s.HasValue(1), "inserted entries are unmeasured")
	assert.True(t, s.HasValue(4), "measured flag shifts with its entry")

	s.InsertRange(0, 5, 0)
	assert.Equal(t, 6, s.Count())
}

func TestRemoveRange(t *testing.T) {
	s := buildStorage(t, 1, 2, 3, 4, 5)
	s.RemoveRange(1, 3)
	assert.Equal(t, []float64{1, 5}, valuesOf(s))
	assert.Equal(t, 2, s.ValueCount())
	assert.InDelta(t, 6.0, s.Total(), delta)
	assert.Equal(t, 1, s.IndexFromOffset(6))

	s.RemoveRange(0, 2)
	assert.Zero(t, s.Count())
	assert.Zero(t, s.Total())
}

func TestCapacityGrowth(t *testing.T) {
	s := offsets.NewStorage(3, 1)
	require.Equal(t, 4, s.Size())
	before := offsetsOf(s)

	for i := 0; i < 10; i++ {
		s.Add(2)
	}
	assert.Equal(t, 13, s.Count())
	assert.Equal(t, 16, s.Size())
	assert.Equal(t, before, offsetsOf(s)[:3])
	assert.InDelta(t, 23.0, s.Total(), delta)
}

func TestSet(t *testing.T) {
	s := offsets.NewStorage(6, 1)
	s.Set(2, 4)
	assert.InDelta(t, 2.0, s.OffsetFromIndex(1), delta)
	assert.InDelta(t, 6.0, s.OffsetFromIndex(2), delta)
	assert.InDelta(t, 9.0, s.Total(), delta)
	assert.False(t, s.HasValue(2), "Set does not mark measured")

	s.Set(2, 4)
	assert.InDelta(t, 9.0, s.Total(), delta)
}

func TestUpdateAndAverage(t *testing.T) {
	s := offsets.NewStorage(4, 10)
	assert.Zero(t, s.Average())

	s.Update(0, 20)
	s.Update(3, 30)
	s.Update(3, 40)
	assert.Equal(t, 2, s.ValueCount())
	assert.InDelta(t, 30.0, s.Average(), delta)
	assert.True(t, s.HasValue(3))
	assert.False(t, s.HasValue(1))
}

func TestInfinity(t *testing.T) {
	s := buildStorage(t, 1, 2, 3)
	s.Update(1, math.Inf(1))

	assert.InDelta(t, 1.0, s.OffsetFromIndex(0), delta)
	assert.True(t, math.IsInf(s.OffsetFromIndex(1), 1))
	assert.True(t, math.IsInf(s.OffsetFromIndex(2), 1))
	assert.True(t, math.IsInf(s.Total(), 1))
	assert.True(t, math.IsInf(s.At(1), 1))
	assert.Equal(t, 1, s.IndexFromOffset(1e9))
	assert.Equal(t, 0, s.IndexFromOffset(0.5))
}

func TestPrecision(t *testing.T) {
	s := offsets.NewStorage(1, 0)
	s.Set(0, 1.1)
	assert.Equal(t, 1.1, s.At(0))
	s.Set(0, 1.0001)
	assert.Equal(t, 1.001, s.At(0), "values finer than the precision round up")

	coarse := offsets.NewStorage(1, 0, offsets.WithPrecision(10))
	coarse.Set(0, 1.23)
	assert.InDelta(t, 1.3, coarse.At(0), delta)
}

func TestClear(t *testing.T) {
	s := buildStorage(t, 1, 2, 3)
	size := s.Size()
	s.Clear()
	assert.Zero(t, s.Count())
	assert.Zero(t, s.ValueCount())
	assert.Zero(t, s.Total())
	assert.Equal(t, size, s.Size())

	s.Add(7)
	assert.InDelta(t, 7.0, s.Total(), delta)
}

func TestAll(t *testing.T) {
	s := buildStorage(t, 1, 2, 3)
	var got []float64
	for i, v := range s.All() {
		got = append(got, v)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []float64{1, 2}, got)
}

// buildStorage returns a storage whose weights are measured values.
func buildStorage(t *testing.T, weights ...float64) *offsets.Storage {
	t.Helper()
	s := offsets.NewStorage(len(weights), 0)
	for i, w := range weights {
		s.Update(i, w)
	}
	require.Equal(t, len(weights), s.ValueCount())
	return s
}

func offsetsOf(s *offsets.Storage) []float64 {
	out := make([]float64, s.Count())
	for i := range out {
		out[i] = s.OffsetFromIndex(i)
	}
	return out
}

func valuesOf(s *offsets.Storage) []float64 {
	var out []float64
	for _, v := range s.All() {
		out = append(out, v)
	}
	return out
}
