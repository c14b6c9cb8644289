package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-chicken-run/internal/defs"
)

func TestPRNGIsDeterministicForSeed(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestIntRangeIsInclusive(t *testing.T) {
	p := NewPRNGService(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := p.IntRange(1, 5)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 5)
	assert.Equal(t, 3, p.IntRange(3, 3))
	assert.Equal(t, 3, p.IntRange(3, 1))
}

func TestFloatRange(t *testing.T) {
	p := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := p.FloatRange(2, 4)
		require.GreaterOrEqual(t, v, 2.0)
		require.Less(t, v, 4.0)
	}
	assert.Equal(t, 2.0, p.FloatRange(2, 2))
}

func TestChance(t *testing.T) {
	p := NewPRNGService(1)
	for i := 0; i < 100; i++ {
		assert.False(t, p.Chance(0))
		assert.True(t, p.Chance(1))
	}
}

func TestChooseWeighted(t *testing.T) {
	p := NewPRNGService(99)
	assert.Equal(t, "", p.ChooseWeighted(nil))

	only := []defs.SpawnEntry{{EnemyID: "a", Weight: 0}, {EnemyID: "b", Weight: 3}}
	for i := 0; i < 100; i++ {
		require.Equal(t, "b", p.ChooseWeighted(only))
	}

	even := []defs.SpawnEntry{{EnemyID: "knight", Weight: 1}, {EnemyID: "pirate", Weight: 1}}
	counts := map[string]int{}
	const draws = 10000
	for i := 0; i < draws; i++ {
		counts[p.ChooseWeighted(even)]++
	}
	assert.InDelta(t, draws/2, counts["knight"], draws*0.05)
	assert.InDelta(t, draws/2, counts["pirate"], draws*0.05)

	zero := []defs.SpawnEntry{{EnemyID: "x", Weight: 0}}
	assert.Equal(t, "x", p.ChooseWeighted(zero))
}

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMockClock(start)
	assert.Equal(t, start, c.Now())

	c.Advance(1500 * time.Millisecond)
	assert.Equal(t, start.Add(1500*time.Millisecond), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())

	var _ Clock = c
	var _ Clock = SystemClock{}
}
