package routegen

import (
	"math"
	"strings"

	"github.com/abdarwish23/navigation-route-api/models"
	"github.com/abdarwish23/navigation-route-api/roadnet"
	"github.com/abdarwish23/navigation-route-api/utils"
)

// snapAttemptBudget bounds candidate generation inside one snap call.
const snapAttemptBudget = 10

// drivableClasses are the highway classifications a candidate may snap to.
var drivableClasses = map[string]bool{
	"motorway":     true,
	"trunk":        true,
	"primary":      true,
	"secondary":    true,
	"tertiary":     true,
	"unclassified": true,
	"residential":  true,
}

// snapCandidate draws up to maxAttempts candidates from generate and returns
// the first one that validates against the road network. Exhausting the
// budget yields no point, never an error; the caller's retry accounting
// handles it.
func snapCandidate(net RoadNetwork, siteNode int64, generate func() models.LatLng, maxAttempts int) (models.LatLng, bool) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if point, ok := validateCandidate(net, siteNode, generate()); ok {
			return point, true
		}
	}
	return models.LatLng{}, false
}

// validateCandidate performs a single snap-and-reachability check: the
// candidate must sit near a drivable edge, and the node nearest its
// projection onto that edge must be reachable from the site node.
func validateCandidate(net RoadNetwork, siteNode int64, candidate models.LatLng) (models.LatLng, bool) {
	edge, ok := net.NearestEdge(candidate.Lat, candidate.Lng)
	if !ok {
		return models.LatLng{}, false
	}

	class := edge.Class
	if i := strings.IndexByte(class, ';'); i >= 0 {
		// ways carrying several classifications: the first wins
		class = class[:i]
	}
	if !drivableClasses[strings.TrimSpace(class)] {
		return models.LatLng{}, false
	}

	snapped := projectOntoEdge(net, candidate, edge)
	node, ok := net.NearestNode(snapped.Lat, snapped.Lng)
	if !ok {
		return models.LatLng{}, false
	}
	if _, ok := net.ShortestPath(siteNode, node); !ok {
		return models.LatLng{}, false
	}
	return snapped, true
}

// projectOntoEdge returns the closest point to the candidate on the edge's
// geometry, or the midpoint of the edge's endpoints when no geometry is
// recorded.
func projectOntoEdge(net RoadNetwork, candidate models.LatLng, edge roadnet.Edge) models.LatLng {
	if len(edge.Geometry) >= 2 {
		best := edge.Geometry[0]
		bestDist := math.Inf(1)
		for i := 0; i+1 < len(edge.Geometry); i++ {
			proj := utils.ProjectOntoSegment(candidate, edge.Geometry[i], edge.Geometry[i+1])
			if d := utils.CalculateDistance(candidate.Lat, candidate.Lng, proj.Lat, proj.Lng); d < bestDist {
				best, bestDist = proj, d
			}
		}
		return best
	}

	a, okA := net.NodeLatLng(edge.From)
	b, okB := net.NodeLatLng(edge.To)
	if !okA || !okB {
		return candidate
	}
	return models.LatLng{Lat: (a.Lat + b.Lat) / 2, Lng: (a.Lng + b.Lng) / 2}
}
