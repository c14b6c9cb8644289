package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, ClampInt(-5, 0, 100))
	assert.Equal(t, 100, ClampInt(120, 0, 100))
	assert.Equal(t, 42, ClampInt(42, 0, 100))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 975))
	assert.Equal(t, 975.0, Clamp(980, 0, 975))
	assert.Equal(t, 12.5, Clamp(12.5, 0, 975))
}

func TestFloorMod(t *testing.T) {
	assert.InDelta(t, 0.1, FloorMod(4.1, 4), 1e-9)
	assert.InDelta(t, 3.5, FloorMod(-0.5, 4), 1e-9)
	assert.Equal(t, 0.0, FloorMod(4, 4))
}
