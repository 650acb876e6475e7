package music

import (
	"fmt"

	"github.com/orbitalworks/stationsong-api/internal/models"
)

// Description clause thresholds.
const (
	textureClauseThreshold = 0.7
	brightClauseThreshold  = 0.8
	darkClauseThreshold    = 0.4
)

var descriptionTemplates = map[models.ScaleType]string{
	models.ScalePeaceful:   "A serene ambient piece reflecting the tranquil passage over %s",
	models.ScaleMysterious: "Enigmatic tones echoing the mysteries glimpsed above %s",
	models.ScaleCosmic:     "Expansive harmonies capturing the cosmic dance over %s",
	models.ScaleEthereal:   "Floating melodies inspired by the ethereal beauty of %s from space",
}

// Describe produces a one-sentence caption of the composition, driven
// entirely by the parameter set. Pure and total.
func Describe(params models.MusicalParameters) string {
	tmpl, ok := descriptionTemplates[params.ScaleType]
	if !ok {
		tmpl = "Ambient space music inspired by %s"
	}
	desc := fmt.Sprintf(tmpl, params.Region)

	if params.HarmonyComplexity > textureClauseThreshold {
		desc += ", with shimmering cosmic textures"
	}

	// Exactly one brightness clause, or none in the middle band.
	if params.Brightness > brightClauseThreshold {
		desc += " and uplifting harmonies"
	} else if params.Brightness < darkClauseThreshold {
		desc += " with contemplative, minor undertones"
	}

	return desc + "."
}
