package music

import (
	"testing"

	"github.com/orbitalworks/stationsong-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestScaleForKnownMoods(t *testing.T) {
	assert.Equal(t, Scale{60, 62, 64, 67, 69, 72, 74, 76}, ScaleFor(models.ScalePeaceful))
	assert.Equal(t, Scale{60, 62, 63, 67, 69, 70, 72, 75}, ScaleFor(models.ScaleMysterious))
	assert.Equal(t, Scale{60, 64, 67, 71, 74, 77, 81, 84}, ScaleFor(models.ScaleCosmic))
	assert.Equal(t, Scale{60, 65, 67, 72, 74, 79, 81, 86}, ScaleFor(models.ScaleEthereal))
}

func TestScaleForUnknownMoodFallsBackToPeaceful(t *testing.T) {
	assert.Equal(t, ScaleFor(models.ScalePeaceful), ScaleFor(models.ScaleType("dubstep")))
}

func TestScaleForRegion(t *testing.T) {
	tests := []struct {
		region string
		want   models.ScaleType
	}{
		{"Pacific Ocean", models.ScalePeaceful},
		{"Atlantic Ocean", models.ScalePeaceful},
		{"Australia", models.ScalePeaceful},
		{"Indian Ocean", models.ScaleEthereal},
		{"South America", models.ScaleEthereal},
		{"Asia", models.ScaleEthereal},
		{"Arctic Ocean", models.ScaleMysterious},
		{"Antarctic", models.ScaleMysterious},
		{"North America", models.ScaleCosmic},
		{"Europe", models.ScaleCosmic},
		{"Africa", models.ScaleCosmic},
		{"Open Ocean", models.ScalePeaceful},
		{"", models.ScalePeaceful},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScaleForRegion(tt.region), "region %q", tt.region)
	}
}
