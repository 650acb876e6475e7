package models

// TelemetryRecord is a single immutable snapshot of station telemetry,
// produced once per generation request. Zero-valued fields are treated
// as missing and replaced with documented neutral defaults by the
// parameter mapper (altitude 408, velocity 27600, temperature 0,
// cosmic ray intensity 1.0, solar efficiency 90).
type TelemetryRecord struct {
	AltitudeKm           float64 `json:"altitude_km"`
	VelocityKmh          float64 `json:"velocity_kmh"`
	TemperatureCelsius   float64 `json:"temperature_celsius"`
	CosmicRayIntensity   float64 `json:"cosmic_ray_intensity"`
	SolarPanelEfficiency float64 `json:"solar_panel_efficiency"`
	Timestamp            int64   `json:"timestamp"`
}

// Location is the station's current ground position with its coarse
// Earth region label.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
	Region    string  `json:"region"`
}

// CrewMember is one person currently in space.
type CrewMember struct {
	Name  string `json:"name"`
	Craft string `json:"craft"`
}

// Crew describes the people currently aboard.
type Crew struct {
	Count   int          `json:"count"`
	Members []CrewMember `json:"members"`
}

// Snapshot bundles everything one generation request observes.
type Snapshot struct {
	Location  Location        `json:"location"`
	Crew      Crew            `json:"crew"`
	Telemetry TelemetryRecord `json:"telemetry"`
}
