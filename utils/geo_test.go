package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// Paris to London
	d := HaversineKm(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 343.5, d, 2.0)

	assert.Zero(t, HaversineKm(-4.32, 15.31, -4.32, 15.31))

	// symmetric
	assert.InDelta(t,
		HaversineKm(-4.32, 15.31, -4.40, 15.20),
		HaversineKm(-4.40, 15.20, -4.32, 15.31),
		1e-9)
}
