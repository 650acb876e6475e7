package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/orbitalworks/stationsong-api/internal/logger"
	"github.com/orbitalworks/stationsong-api/internal/models"
)

const (
	fetchTimeout = 10 * time.Second

	issNowPath = "/iss-now.json"
	astrosPath = "/astros.json"

	messageSuccess = "success"
)

// Client fetches station position and crew data from the open-notify
// APIs. Every fetch recovers locally: failures and timeouts substitute
// documented mock values instead of propagating an error, so callers
// never see an upstream outage.
type Client struct {
	baseURL    string
	httpClient *http.Client
	rng        *rand.Rand
}

// NewClient creates a telemetry client against baseURL
// (e.g. http://api.open-notify.org).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: fetchTimeout},
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// issNowResponse mirrors the open-notify iss-now.json payload.
// Coordinates arrive as strings.
type issNowResponse struct {
	Message     string `json:"message"`
	Timestamp   int64  `json:"timestamp"`
	ISSPosition struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"iss_position"`
}

// astrosResponse mirrors the open-notify astros.json payload.
type astrosResponse struct {
	Message string              `json:"message"`
	Number  int                 `json:"number"`
	People  []models.CrewMember `json:"people"`
}

// FetchLocation returns the station's current ground position with its
// region label, or mock data if the API is unreachable.
func (c *Client) FetchLocation(ctx context.Context) models.Location {
	var resp issNowResponse
	if err := c.getJSON(ctx, issNowPath, &resp); err != nil {
		logger.Warn("ISS location fetch failed, using mock data", logger.Fields{"error": err.Error()})
		return c.mockLocation()
	}
	if resp.Message != messageSuccess {
		logger.Warn("ISS location fetch returned non-success, using mock data", logger.Fields{"message": resp.Message})
		return c.mockLocation()
	}

	lat, latErr := strconv.ParseFloat(resp.ISSPosition.Latitude, 64)
	lon, lonErr := strconv.ParseFloat(resp.ISSPosition.Longitude, 64)
	if latErr != nil || lonErr != nil {
		logger.Warn("ISS location fetch returned bad coordinates, using mock data", logger.Fields{
			"latitude":  resp.ISSPosition.Latitude,
			"longitude": resp.ISSPosition.Longitude,
		})
		return c.mockLocation()
	}

	return models.Location{
		Latitude:  lat,
		Longitude: lon,
		Timestamp: resp.Timestamp,
		Region:    RegionFromCoordinates(lat, lon),
	}
}

// FetchCrew returns who is currently in space, or mock data if the API
// is unreachable.
func (c *Client) FetchCrew(ctx context.Context) models.Crew {
	var resp astrosResponse
	if err := c.getJSON(ctx, astrosPath, &resp); err != nil {
		logger.Warn("Crew fetch failed, using mock data", logger.Fields{"error": err.Error()})
		return mockCrew()
	}
	if resp.Message != messageSuccess {
		logger.Warn("Crew fetch returned non-success, using mock data", logger.Fields{"message": resp.Message})
		return mockCrew()
	}

	return models.Crew{
		Count:   resp.Number,
		Members: resp.People,
	}
}

// Telemetry returns a synthetic telemetry record drawn from the
// documented operating ranges. There is no public live feed for these
// values, so the synthetic source is the documented one.
func (c *Client) Telemetry() models.TelemetryRecord {
	return models.TelemetryRecord{
		AltitudeKm:           roundTo(c.uniform(408, 420), 2),
		VelocityKmh:          roundTo(c.uniform(27500, 27700), 2),
		SolarPanelEfficiency: roundTo(c.uniform(85, 95), 1),
		CosmicRayIntensity:   roundTo(c.uniform(0.1, 2.5), 2),
		TemperatureCelsius:   roundTo(c.uniform(-157, 121), 1),
		Timestamp:            time.Now().Unix(),
	}
}

// Snapshot bundles location, crew and telemetry for one request.
func (c *Client) Snapshot(ctx context.Context) models.Snapshot {
	return models.Snapshot{
		Location:  c.FetchLocation(ctx),
		Crew:      c.FetchCrew(ctx),
		Telemetry: c.Telemetry(),
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// mockLocation is the fallback position: somewhere on the station's
// ground track, labeled Pacific Ocean.
func (c *Client) mockLocation() models.Location {
	return models.Location{
		Latitude:  roundTo(c.uniform(-51.6, 51.6), 4),
		Longitude: roundTo(c.uniform(-180, 180), 4),
		Timestamp: time.Now().Unix(),
		Region:    "Pacific Ocean",
	}
}

func mockCrew() models.Crew {
	return models.Crew{
		Count: 7,
		Members: []models.CrewMember{
			{Name: "Mock Astronaut", Craft: "ISS"},
		},
	}
}

func (c *Client) uniform(lo, hi float64) float64 {
	return lo + c.rng.Float64()*(hi-lo)
}

func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
