package routegen

import (
	"math"

	"github.com/abdarwish23/navigation-route-api/models"
	"github.com/abdarwish23/navigation-route-api/utils"
)

// DefaultSegmentLength is the cumulative distance in meters at which a
// route segment closes.
const DefaultSegmentLength = 500.0

// SplitRouteIntoSegments walks the route accumulating great-circle distance
// and closes a segment once it reaches segmentLength, or at the final
// coordinate. Consecutive segments share their boundary point, so
// concatenating all segment coordinates (dropping the duplicated junction)
// reconstructs the route exactly.
//
// A segment's bearing is the bearing of the step that closes it. The
// instruction classifies that bearing against the previous segment's
// closing bearing; the first segment is always "Start route".
func SplitRouteIntoSegments(route []models.LatLng, segmentLength float64) []models.Segment {
	if len(route) < 2 {
		return nil
	}

	var segments []models.Segment
	current := []models.LatLng{route[0]}
	length := 0.0
	prevBearing := 0.0

	for i := 1; i < len(route); i++ {
		prev := route[i-1]
		point := route[i]
		length += utils.CalculateDistance(prev.Lat, prev.Lng, point.Lat, point.Lng)
		current = append(current, point)

		if length >= segmentLength || i == len(route)-1 {
			bearing := utils.CalculateBearing(prev.Lat, prev.Lng, point.Lat, point.Lng)

			instruction := "Start route"
			if len(segments) > 0 {
				instruction = GetTurnInstruction(prevBearing, bearing)
			}

			segments = append(segments, models.Segment{
				Coordinates: current,
				Length:      length,
				Instruction: instruction,
			})

			prevBearing = bearing
			current = []models.LatLng{point}
			length = 0
		}
	}
	return segments
}

// GetTurnInstruction classifies the signed change between two compass
// bearings into a navigation instruction. The 240 degree boundary belongs
// to "Turn left"; sharp left covers the open interval (200, 240).
func GetTurnInstruction(prevBearing, currentBearing float64) string {
	angle := math.Mod(currentBearing-prevBearing+360, 360)
	switch {
	case angle < 20:
		return "Continue straight"
	case angle < 60:
		return "Turn slight right"
	case angle < 120:
		return "Turn right"
	case angle < 160:
		return "Turn sharp right"
	case angle <= 200:
		return "Make a U-turn"
	case angle < 240:
		return "Turn sharp left"
	case angle < 300:
		return "Turn left"
	case angle < 340:
		return "Turn slight left"
	default:
		return "Continue straight"
	}
}
