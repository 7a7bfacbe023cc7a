package routegen

import (
	"log"

	"github.com/abdarwish23/navigation-route-api/models"
)

// assembleRoute builds the closed waypoint tour (site, each point in
// generation order, site again) and stitches consecutive waypoints with
// shortest paths. A waypoint pair with no connecting path is logged and
// skipped; the returned gap count tells the caller how many pairs were
// dropped. The concatenated node coordinates form the route handed to the
// segmenter.
func assembleRoute(net RoadNetwork, siteNode int64, points []models.LatLng) ([]models.LatLng, int) {
	tour := make([]int64, 0, len(points)+2)
	tour = append(tour, siteNode)
	for _, p := range points {
		node, ok := net.NearestNode(p.Lat, p.Lng)
		if !ok {
			continue
		}
		tour = append(tour, node)
	}
	tour = append(tour, siteNode) // close the loop

	var route []models.LatLng
	gaps := 0
	for i := 0; i+1 < len(tour); i++ {
		path, ok := net.ShortestPath(tour[i], tour[i+1])
		if !ok {
			log.Printf("RouteAssembler: warning: no path between %d and %d, skipping segment", tour[i], tour[i+1])
			gaps++
			continue
		}
		for _, id := range path {
			if pos, ok := net.NodeLatLng(id); ok {
				route = append(route, pos)
			}
		}
	}
	return route, gaps
}
