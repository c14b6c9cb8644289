package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-chicken-run/internal/component"
	"go-chicken-run/internal/event"
)

func TestWaveScheduling(t *testing.T) {
	r := newRig(t)

	r.waves.Update(epoch.Add(2999 * time.Millisecond))
	assert.Equal(t, 0, r.events.count(event.WaveSpawned))

	at := epoch.Add(3 * time.Second)
	r.waves.Update(at)
	assert.Equal(t, 1, r.events.count(event.WaveSpawned))
	assert.Equal(t, at, r.waves.LastWave())

	r.waves.Update(at.Add(time.Second))
	assert.Equal(t, 1, r.events.count(event.WaveSpawned))

	r.waves.Update(at.Add(3 * time.Second))
	assert.Equal(t, 2, r.events.count(event.WaveSpawned))
}

func TestSpawnWaveCountsAndEdges(t *testing.T) {
	r := newRig(t)
	w, h := float64(r.settings.WindowWidth), float64(r.settings.WindowHeight)
	archetypes := map[string]int{}

	for i := 0; i < 200; i++ {
		r.world.Enemies = r.world.Enemies[:0]
		n := r.waves.SpawnWave(epoch)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, r.settings.Waves.MaxEnemies)
		require.Len(t, r.world.Enemies, n)

		for _, e := range r.world.Enemies {
			archetypes[e.Archetype]++
			switch {
			case e.Position.Y == 0 && e.Direction == component.Down:
				assert.True(t, e.Position.X >= 1 && e.Position.X <= w-1)
			case e.Position.Y == h && e.Direction == component.Up:
				assert.True(t, e.Position.X >= 1 && e.Position.X <= w-1)
			case e.Position.X == 0 && e.Direction == component.Right:
				assert.True(t, e.Position.Y >= 1 && e.Position.Y <= h-1)
			case e.Position.X == w && e.Direction == component.Left:
				assert.True(t, e.Position.Y >= 1 && e.Position.Y <= h-1)
			default:
				t.Fatalf("enemy spawned off the edges: %+v facing %v", e.Position, e.Direction)
			}

			switch e.Archetype {
			case "knight":
				assert.Equal(t, 20, e.Damage)
				assert.True(t, e.Speed >= 1 && e.Speed <= 3)
				assert.IsType(t, component.Straight{}, e.Behavior)
			case "pirate":
				assert.Equal(t, 0, e.Damage)
				assert.True(t, e.Speed >= 2 && e.Speed <= 4)
				assert.IsType(t, &component.Erratic{}, e.Behavior)
			default:
				t.Fatalf("unexpected archetype %q", e.Archetype)
			}
		}
	}
	total := archetypes["knight"] + archetypes["pirate"]
	assert.InDelta(t, 0.5, float64(archetypes["knight"])/float64(total), 0.08)
}

func TestEdgeSpawnsSurviveFirstMove(t *testing.T) {
	r := newRig(t)
	w, h := float64(r.settings.WindowWidth), float64(r.settings.WindowHeight)
	r.addEnemy(500, h, component.Up, 1, 20)
	r.addEnemy(w, 400, component.Left, 1, 20)
	r.addEnemy(500, 0, component.Down, 1, 20)
	r.addEnemy(0, 400, component.Right, 1, 20)

	assert.Equal(t, 0, r.movement.Update(epoch))
	assert.Equal(t, 4, r.world.EnemyCount())
}

func TestOffScreenEnemiesDespawn(t *testing.T) {
	r := newRig(t)
	gone := r.addEnemy(500, -24, component.Up, 2, 20)
	stays := r.addEnemy(500, 400, component.Up, 2, 20)

	assert.Equal(t, 1, r.movement.Update(epoch))
	assert.Equal(t, []*component.Enemy{stays}, r.world.Enemies)
	assert.Equal(t, component.Vec2{X: 500, Y: -26}, gone.Position)
	assert.Equal(t, component.Vec2{X: 500, Y: 398}, stays.Position)
}
