package telemetry

// RegionOpenOcean is the catch-all for coordinates matching no box.
const RegionOpenOcean = "Open Ocean"

// regionBox matches a named Earth region by a lat/lon bounding box.
// Boxes overlap; the first match wins, so order matters (oceans before
// continents, matching the original region tables).
type regionBox struct {
	name           string
	latMin, latMax float64
	lonMin, lonMax float64
}

var regionBoxes = []regionBox{
	{"Pacific Ocean", -60, 60, -180, -80},
	{"Atlantic Ocean", -60, 60, -80, 20},
	{"Indian Ocean", -60, 30, 20, 147},
	{"Arctic Ocean", 66, 90, -180, 180},
	{"Antarctic", -90, -60, -180, 180},
	{"North America", 15, 72, -168, -52},
	{"South America", -56, 15, -82, -34},
	{"Europe", 35, 72, -10, 40},
	{"Africa", -35, 37, -18, 52},
	{"Asia", -10, 82, 26, 180},
	{"Australia", -44, -10, 113, 154},
}

// RegionFromCoordinates maps a ground position to a coarse Earth
// region label.
func RegionFromCoordinates(lat, lon float64) string {
	for _, box := range regionBoxes {
		if lat > box.latMin && lat < box.latMax && lon > box.lonMin && lon < box.lonMax {
			return box.name
		}
	}
	return RegionOpenOcean
}
