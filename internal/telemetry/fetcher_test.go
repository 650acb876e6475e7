package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchLocationSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/iss-now.json", r.URL.Path)
		w.Write([]byte(`{
			"message": "success",
			"timestamp": 1717171717,
			"iss_position": {"latitude": "-20.0000", "longitude": "80.0000"}
		}`))
	}))
	defer server.Close()

	loc := NewClient(server.URL).FetchLocation(context.Background())

	assert.Equal(t, -20.0, loc.Latitude)
	assert.Equal(t, 80.0, loc.Longitude)
	assert.Equal(t, int64(1717171717), loc.Timestamp)
	assert.Equal(t, "Indian Ocean", loc.Region)
}

func TestFetchLocationHTTPErrorFallsBackToMock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	loc := NewClient(server.URL).FetchLocation(context.Background())

	assert.Equal(t, "Pacific Ocean", loc.Region)
	assert.GreaterOrEqual(t, loc.Latitude, -51.6)
	assert.LessOrEqual(t, loc.Latitude, 51.6)
	assert.NotZero(t, loc.Timestamp)
}

func TestFetchLocationNonSuccessMessageFallsBackToMock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "error"}`))
	}))
	defer server.Close()

	loc := NewClient(server.URL).FetchLocation(context.Background())
	assert.Equal(t, "Pacific Ocean", loc.Region)
}

func TestFetchLocationBadCoordinatesFallBackToMock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"message": "success",
			"iss_position": {"latitude": "not-a-number", "longitude": "80.0"}
		}`))
	}))
	defer server.Close()

	loc := NewClient(server.URL).FetchLocation(context.Background())
	assert.Equal(t, "Pacific Ocean", loc.Region)
}

func TestFetchLocationUnreachableHostFallsBackToMock(t *testing.T) {
	loc := NewClient("http://127.0.0.1:0").FetchLocation(context.Background())
	assert.Equal(t, "Pacific Ocean", loc.Region)
}

func TestFetchCrewSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/astros.json", r.URL.Path)
		w.Write([]byte(`{
			"message": "success",
			"number": 2,
			"people": [
				{"name": "Alpha", "craft": "ISS"},
				{"name": "Beta", "craft": "ISS"}
			]
		}`))
	}))
	defer server.Close()

	crew := NewClient(server.URL).FetchCrew(context.Background())

	assert.Equal(t, 2, crew.Count)
	require.Len(t, crew.Members, 2)
	assert.Equal(t, "Alpha", crew.Members[0].Name)
	assert.Equal(t, "ISS", crew.Members[0].Craft)
}

func TestFetchCrewFailureFallsBackToMock(t *testing.T) {
	crew := NewClient("http://127.0.0.1:0").FetchCrew(context.Background())

	assert.Equal(t, 7, crew.Count)
	require.Len(t, crew.Members, 1)
	assert.Equal(t, "Mock Astronaut", crew.Members[0].Name)
}

func TestTelemetryWithinDocumentedRanges(t *testing.T) {
	client := NewClient("http://127.0.0.1:0")

	for i := 0; i < 50; i++ {
		rec := client.Telemetry()
		assert.GreaterOrEqual(t, rec.AltitudeKm, 408.0)
		assert.LessOrEqual(t, rec.AltitudeKm, 420.0)
		assert.GreaterOrEqual(t, rec.VelocityKmh, 27500.0)
		assert.LessOrEqual(t, rec.VelocityKmh, 27700.0)
		assert.GreaterOrEqual(t, rec.SolarPanelEfficiency, 85.0)
		assert.LessOrEqual(t, rec.SolarPanelEfficiency, 95.0)
		assert.GreaterOrEqual(t, rec.CosmicRayIntensity, 0.1)
		assert.LessOrEqual(t, rec.CosmicRayIntensity, 2.5)
		assert.GreaterOrEqual(t, rec.TemperatureCelsius, -157.0)
		assert.LessOrEqual(t, rec.TemperatureCelsius, 121.0)
		assert.NotZero(t, rec.Timestamp)
	}
}

func TestSnapshotNeverFails(t *testing.T) {
	snap := NewClient("http://127.0.0.1:0").Snapshot(context.Background())

	assert.NotEmpty(t, snap.Location.Region)
	assert.NotZero(t, snap.Crew.Count)
	assert.NotZero(t, snap.Telemetry.AltitudeKm)
}
