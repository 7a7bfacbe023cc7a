package routegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdarwish23/navigation-route-api/models"
	"github.com/abdarwish23/navigation-route-api/utils"
)

func TestGetTurnInstruction(t *testing.T) {
	cases := []struct {
		prev, current float64
		want          string
	}{
		{0, 10, "Continue straight"},
		{0, 19.9, "Continue straight"},
		{0, 20, "Turn slight right"},
		{0, 45, "Turn slight right"},
		{0, 90, "Turn right"},
		{0, 140, "Turn sharp right"},
		{0, 180, "Make a U-turn"},
		{0, 200, "Make a U-turn"},
		{0, 220, "Turn sharp left"},
		{0, 240, "Turn left"},
		{0, 270, "Turn left"},
		{0, 320, "Turn slight left"},
		{0, 350, "Continue straight"},
		{350, 10, "Turn slight right"},
		{350, 9.9, "Continue straight"},
		{90, 180, "Turn right"},
		{270, 90, "Make a U-turn"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, GetTurnInstruction(tc.prev, tc.current),
			"prev=%v current=%v", tc.prev, tc.current)
	}
}

// straightRoute builds a route heading due north with the given step length.
func straightRoute(steps int, stepMeters float64) []models.LatLng {
	route := make([]models.LatLng, 0, steps+1)
	for i := 0; i <= steps; i++ {
		route = append(route, models.LatLng{
			Lat: 35.0 + float64(i)*stepMeters/111111.0,
			Lng: 139.0,
		})
	}
	return route
}

func TestSplitRouteIntoSegmentsStraight(t *testing.T) {
	route := straightRoute(20, 100) // 2000 m due north

	segments := SplitRouteIntoSegments(route, 500)
	require.Len(t, segments, 4)

	assert.Equal(t, "Start route", segments[0].Instruction)
	for _, seg := range segments[1:] {
		assert.Equal(t, "Continue straight", seg.Instruction)
	}
	for _, seg := range segments {
		assert.InDelta(t, 500, seg.Length, 5)
	}
}

func TestSplitRouteIntoSegmentsRightTurn(t *testing.T) {
	// 600 m due east, then 600 m due south, 100 m steps.
	lat, lng := 35.0, 139.0
	latStep := 100.0 / 111111.0
	lngStep := 100.0 / (111111.0 * 0.81915204) // cos(35 deg)

	var route []models.LatLng
	for i := 0; i <= 6; i++ {
		route = append(route, models.LatLng{Lat: lat, Lng: lng + float64(i)*lngStep})
	}
	for i := 1; i <= 6; i++ {
		route = append(route, models.LatLng{Lat: lat - float64(i)*latStep, Lng: lng + 6*lngStep})
	}

	segments := SplitRouteIntoSegments(route, 500)
	require.Len(t, segments, 3)

	assert.Equal(t, "Start route", segments[0].Instruction)
	assert.Equal(t, "Turn right", segments[1].Instruction)
	assert.Equal(t, "Continue straight", segments[2].Instruction)
}

func TestSplitRouteIntoSegmentsReconstruction(t *testing.T) {
	route := []models.LatLng{
		{Lat: 35.0000, Lng: 139.0000},
		{Lat: 35.0020, Lng: 139.0005},
		{Lat: 35.0031, Lng: 139.0030},
		{Lat: 35.0060, Lng: 139.0028},
		{Lat: 35.0085, Lng: 139.0051},
		{Lat: 35.0090, Lng: 139.0090},
		{Lat: 35.0120, Lng: 139.0095},
	}

	segments := SplitRouteIntoSegments(route, 500)
	require.NotEmpty(t, segments)

	// Consecutive segments share the junction point; dropping the duplicate
	// reassembles the original route.
	var rebuilt []models.LatLng
	for i, seg := range segments {
		require.GreaterOrEqual(t, len(seg.Coordinates), 2)
		if i == 0 {
			rebuilt = append(rebuilt, seg.Coordinates...)
		} else {
			assert.Equal(t, rebuilt[len(rebuilt)-1], seg.Coordinates[0])
			rebuilt = append(rebuilt, seg.Coordinates[1:]...)
		}
	}
	assert.Equal(t, route, rebuilt)

	// Segment lengths sum to the route length.
	total := 0.0
	for i := 1; i < len(route); i++ {
		total += utils.CalculateDistance(route[i-1].Lat, route[i-1].Lng, route[i].Lat, route[i].Lng)
	}
	sum := 0.0
	for _, seg := range segments {
		sum += seg.Length
	}
	assert.InDelta(t, total, sum, 1e-6)
}

func TestSplitRouteIntoSegmentsShortRoute(t *testing.T) {
	route := []models.LatLng{
		{Lat: 35.0, Lng: 139.0},
		{Lat: 35.001, Lng: 139.0},
	}

	segments := SplitRouteIntoSegments(route, 500)
	require.Len(t, segments, 1)
	assert.Equal(t, "Start route", segments[0].Instruction)
	assert.Equal(t, route, segments[0].Coordinates)
}

func TestSplitRouteIntoSegmentsTooFewPoints(t *testing.T) {
	assert.Nil(t, SplitRouteIntoSegments(nil, 500))
	assert.Nil(t, SplitRouteIntoSegments([]models.LatLng{{Lat: 35, Lng: 139}}, 500))
}
