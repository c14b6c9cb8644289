// internal/event/types.go
package event

import "go-chicken-run/internal/types"

const (
	EnemyKilled  EventType = "EnemyKilled"  // EnemyKilledData
	PlayerHit    EventType = "PlayerHit"    // PlayerHitData
	BorderHit    EventType = "BorderHit"    // PlayerHitData
	PlayerDied   EventType = "PlayerDied"   // nil
	ItemSpawned  EventType = "ItemSpawned"  // nil
	ItemPickedUp EventType = "ItemPickedUp" // nil
	ItemExpired  EventType = "ItemExpired"  // nil
	WaveSpawned  EventType = "WaveSpawned"  // WaveSpawnedData
)

type EnemyKilledData struct {
	EnemyID   types.EntityID
	Archetype string
}

type PlayerHitData struct {
	Damage int
	Health int
}

type WaveSpawnedData struct {
	Count int
}
