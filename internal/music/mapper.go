package music

import (
	"math"

	"github.com/orbitalworks/stationsong-api/internal/models"
)

// Neutral defaults substituted for missing (zero-valued) telemetry
// fields. Temperature's neutral value is 0, so it needs no check.
const (
	defaultAltitudeKm      = 408
	defaultVelocityKmh     = 27600
	defaultCosmicIntensity = 1.0
	defaultSolarEfficiency = 90
)

// TempoBPM is fixed for this release: ambient pieces are all 60 BPM.
const TempoBPM = 60

// lerp maps v from [lo,hi] to [outLo,outHi], clamping v to the domain
// first so out-of-range telemetry never produces out-of-range
// parameters.
func lerp(v, lo, hi, outLo, outHi float64) float64 {
	if v <= lo {
		return outLo
	}
	if v >= hi {
		return outHi
	}
	return outLo + (v-lo)/(hi-lo)*(outHi-outLo)
}

// MapTelemetry derives the musical parameter set from a telemetry
// snapshot and region label. It is deterministic and total: identical
// inputs always yield identical parameters, and no input can fail.
func MapTelemetry(telemetry models.TelemetryRecord, region string) models.MusicalParameters {
	altitude := telemetry.AltitudeKm
	if altitude == 0 {
		altitude = defaultAltitudeKm
	}
	velocity := telemetry.VelocityKmh
	if velocity == 0 {
		velocity = defaultVelocityKmh
	}
	cosmicRays := telemetry.CosmicRayIntensity
	if cosmicRays == 0 {
		cosmicRays = defaultCosmicIntensity
	}
	solarEfficiency := telemetry.SolarPanelEfficiency
	if solarEfficiency == 0 {
		solarEfficiency = defaultSolarEfficiency
	}
	temperature := telemetry.TemperatureCelsius

	return models.MusicalParameters{
		// Region picks the harmonic mood
		ScaleType: ScaleForRegion(region),
		// Higher orbit, higher pitch
		BaseOctave: int(math.Round(lerp(altitude, 400, 430, 3, 5))),
		// Faster orbit, denser melody
		NoteDensity: lerp(velocity, 27400, 27800, 0.3, 0.8),
		// Hull temperature drives dynamics
		Volume: int(math.Round(lerp(temperature, -160, 130, 40, 100))),
		// Cosmic rays drive harmonic complexity
		HarmonyComplexity: lerp(cosmicRays, 0.1, 2.5, 0.2, 0.9),
		// Solar efficiency drives major/minor tendency
		Brightness: lerp(solarEfficiency, 80, 100, 0.3, 1.0),
		Region:     region,
		Tempo:      TempoBPM,
	}
}
