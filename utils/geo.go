package utils

import (
	"math"

	"github.com/abdarwish23/navigation-route-api/models"
)

const earthRadiusMeters = 6371000.0

// CalculateDistance returns the great-circle distance in meters between two
// coordinates using the haversine formula.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// CalculateBearing returns the initial compass bearing in degrees (0-360,
// clockwise from north) from the first coordinate to the second.
func CalculateBearing(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) -
		math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(dLon)

	bearing := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(bearing+360, 360)
}

// ProjectOntoSegment returns the point on the segment from a to b that is
// closest to p. The projection uses an equirectangular approximation around
// the segment, which is accurate at road-snapping scales.
func ProjectOntoSegment(p, a, b models.LatLng) models.LatLng {
	cosLat := math.Cos(a.Lat * math.Pi / 180)

	ax, ay := a.Lng*cosLat, a.Lat
	bx, by := b.Lng*cosLat, b.Lat
	px, py := p.Lng*cosLat, p.Lat

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a
	}

	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return models.LatLng{
		Lat: a.Lat + t*(b.Lat-a.Lat),
		Lng: a.Lng + t*(b.Lng-a.Lng),
	}
}
