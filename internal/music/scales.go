package music

import "github.com/orbitalworks/stationsong-api/internal/models"

// Scale is a fixed ordered set of 8 MIDI pitches defining a mood's
// harmonic palette, centered around C4 (60) before octave shifting.
type Scale [8]int

// Scales for each mood.
var scales = map[models.ScaleType]Scale{
	models.ScalePeaceful:   {60, 62, 64, 67, 69, 72, 74, 76}, // C major pentatonic + extensions
	models.ScaleMysterious: {60, 62, 63, 67, 69, 70, 72, 75}, // C minor with augmented notes
	models.ScaleCosmic:     {60, 64, 67, 71, 74, 77, 81, 84}, // C major 7th extensions
	models.ScaleEthereal:   {60, 65, 67, 72, 74, 79, 81, 86}, // Perfect 4ths and 5ths
}

// ScaleFor returns the pitch set for a mood. Unknown moods fall back to
// the peaceful scale, mirroring the region lookup default.
func ScaleFor(scaleType models.ScaleType) Scale {
	if s, ok := scales[scaleType]; ok {
		return s
	}
	return scales[models.ScalePeaceful]
}

// Region to mood lookup. Regions not listed (including the Open Ocean
// catch-all) default to peaceful.
var regionScales = map[string]models.ScaleType{
	"Pacific Ocean":  models.ScalePeaceful,
	"Atlantic Ocean": models.ScalePeaceful,
	"Indian Ocean":   models.ScaleEthereal,
	"Arctic Ocean":   models.ScaleMysterious,
	"Antarctic":      models.ScaleMysterious,
	"North America":  models.ScaleCosmic,
	"South America":  models.ScaleEthereal,
	"Europe":         models.ScaleCosmic,
	"Africa":         models.ScaleCosmic,
	"Asia":           models.ScaleEthereal,
	"Australia":      models.ScalePeaceful,
}

// ScaleForRegion maps an Earth region to its musical mood.
func ScaleForRegion(region string) models.ScaleType {
	if st, ok := regionScales[region]; ok {
		return st
	}
	return models.ScalePeaceful
}
