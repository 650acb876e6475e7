package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionFromCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     string
	}{
		{"mid Pacific", 0, -150, "Pacific Ocean"},
		{"mid Atlantic", 20, -40, "Atlantic Ocean"},
		{"Indian Ocean", -20, 80, "Indian Ocean"},
		{"Arctic", 75, 30, "Arctic Ocean"},
		{"Antarctic", -75, 0, "Antarctic"},
		{"northern Canada", 65, -100, "North America"},
		{"Amazon basin", -15, -60, "Atlantic Ocean"}, // ocean boxes win first
		{"eastern Europe", 55, 30, "Europe"},
		{"north Africa", 33, 30, "Africa"},
		{"Asia", 35, 100, "Asia"},
		{"Australia", -25, 150, "Australia"},
		{"Bering Sea gap", 62, -170, "Open Ocean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RegionFromCoordinates(tt.lat, tt.lon))
		})
	}
}

func TestRegionOceansTakePrecedence(t *testing.T) {
	// The Pacific box covers the west coast of the Americas; a point
	// inside both resolves to the ocean.
	assert.Equal(t, "Pacific Ocean", RegionFromCoordinates(35, -120))
}

func TestRegionBoundaryIsExclusive(t *testing.T) {
	// Exactly on a box edge matches nothing from that box.
	assert.Equal(t, "Open Ocean", RegionFromCoordinates(-60, -150))
}
