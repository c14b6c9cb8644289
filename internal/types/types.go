package types

// EntityID identifies a live entity in the world. Zero is never assigned.
type EntityID uint64
