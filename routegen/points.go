package routegen

import (
	"math"
	"math/rand"

	"github.com/abdarwish23/navigation-route-api/models"
)

// metersPerDegreeLat is the equirectangular scale used to project candidate
// offsets onto coordinates.
const metersPerDegreeLat = 111111.0

// sectorBiasDeg is the half-width of the angular band around each sector
// azimuth that attracts candidate bearings.
const sectorBiasDeg = 30.0

// PointAtBearing projects a point at distance meters along a compass bearing
// (degrees clockwise from north) from the site. The projection is
// deterministic: identical inputs always produce the identical coordinate.
func PointAtBearing(site models.LatLng, bearing, distance float64) models.LatLng {
	rad := bearing * math.Pi / 180
	dx := distance * math.Sin(rad)
	dy := distance * math.Cos(rad)

	return models.LatLng{
		Lat: site.Lat + dy/metersPerDegreeLat,
		Lng: site.Lng + dx/(metersPerDegreeLat*math.Cos(site.Lat*math.Pi/180)),
	}
}

// applySectorBias pulls a bearing toward the first sector azimuth within 30
// degrees circular distance, redrawing it uniformly inside that sector's
// band. Bearings outside every band pass through unchanged, keeping
// coverage elsewhere uniform.
func applySectorBias(angle float64, azimuths []float64, rng *rand.Rand) float64 {
	for _, azimuth := range azimuths {
		d := math.Abs(angle - azimuth)
		if math.Min(d, 360-d) < sectorBiasDeg {
			angle = azimuth + (rng.Float64()*2-1)*sectorBiasDeg
			break
		}
	}
	return math.Mod(angle+360, 360)
}

// drawBearing produces one sector-biased candidate bearing in [0, 360).
func drawBearing(rng *rand.Rand, azimuths []float64) float64 {
	return applySectorBias(rng.Float64()*360, azimuths, rng)
}
