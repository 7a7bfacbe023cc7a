package routegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdarwish23/navigation-route-api/models"
	"github.com/abdarwish23/navigation-route-api/roadnet"
)

// mixedNetwork is a small network with a drivable component containing the
// site, a footpath to the south, and a disconnected residential island to
// the north.
func mixedNetwork() *roadnet.Graph {
	g := roadnet.NewGraph()

	// site component
	g.AddNode(1, 35.00, 139.000)
	g.AddNode(2, 35.00, 139.002)
	g.AddEdge(1, 2, "residential")

	// footpath, not drivable
	g.AddNode(3, 34.99, 139.000)
	g.AddNode(4, 34.99, 139.002)
	g.AddEdge(3, 4, "footway")

	// drivable island, unreachable from the site
	g.AddNode(5, 35.02, 139.000)
	g.AddNode(6, 35.02, 139.002)
	g.AddEdge(5, 6, "residential")

	return g
}

func TestValidateCandidateSnapsOntoDrivableEdge(t *testing.T) {
	net := mixedNetwork()

	// ~30 m north of the middle of the site edge
	candidate := models.LatLng{Lat: 35.00027, Lng: 139.001}
	snapped, ok := validateCandidate(net, 1, candidate)
	require.True(t, ok)

	assert.InDelta(t, 35.00, snapped.Lat, 1e-5)
	assert.InDelta(t, 139.001, snapped.Lng, 1e-4)
}

func TestValidateCandidateRejectsFootway(t *testing.T) {
	net := mixedNetwork()

	candidate := models.LatLng{Lat: 34.9901, Lng: 139.001}
	_, ok := validateCandidate(net, 1, candidate)
	assert.False(t, ok)
}

func TestValidateCandidateRejectsUnreachableIsland(t *testing.T) {
	net := mixedNetwork()

	candidate := models.LatLng{Lat: 35.0201, Lng: 139.001}
	_, ok := validateCandidate(net, 1, candidate)
	assert.False(t, ok)
}

func TestValidateCandidateMultiValueClass(t *testing.T) {
	build := func(class string) *roadnet.Graph {
		g := roadnet.NewGraph()
		g.AddNode(1, 35.00, 139.000)
		g.AddNode(2, 35.00, 139.002)
		g.AddEdge(1, 2, class)
		return g
	}
	candidate := models.LatLng{Lat: 35.0001, Lng: 139.001}

	// The first classification decides.
	_, ok := validateCandidate(build("residential;service"), 1, candidate)
	assert.True(t, ok)

	_, ok = validateCandidate(build("service;residential"), 1, candidate)
	assert.False(t, ok)
}

func TestSnapCandidateStopsAtFirstValid(t *testing.T) {
	net := mixedNetwork()

	calls := 0
	candidates := []models.LatLng{
		{Lat: 34.9901, Lng: 139.001}, // footpath, rejected
		{Lat: 35.0001, Lng: 139.001}, // drivable, accepted
		{Lat: 35.0001, Lng: 139.001},
	}
	point, ok := snapCandidate(net, 1, func() models.LatLng {
		c := candidates[calls]
		calls++
		return c
	}, snapAttemptBudget)

	require.True(t, ok)
	assert.Equal(t, 2, calls)
	assert.InDelta(t, 35.00, point.Lat, 1e-5)
}

func TestSnapCandidateExhaustsBudget(t *testing.T) {
	net := mixedNetwork()

	calls := 0
	_, ok := snapCandidate(net, 1, func() models.LatLng {
		calls++
		return models.LatLng{Lat: 34.9901, Lng: 139.001}
	}, snapAttemptBudget)

	assert.False(t, ok)
	assert.Equal(t, snapAttemptBudget, calls)
}
