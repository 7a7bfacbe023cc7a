package routegen

import (
	"log"

	"github.com/abdarwish23/navigation-route-api/models"
	"github.com/abdarwish23/navigation-route-api/utils"
)

// ringRetryCeiling is the number of consecutive rejections after which a
// ring is abandoned. It resets on every accepted point and is independent
// per ring.
const ringRetryCeiling = 20

// fallbackPointCount is how many points the degraded-mode scan tries to
// collect when ripple sampling comes up empty.
const fallbackPointCount = 30

// sampleRipplePoints generates validated points in concentric rings around
// the site, inner to outer. Ring i of n uses radius maxDistance*(i+1)/n and
// targets basePoints*(i+1) points. Each accepted point must be connected by
// road to the previously accepted point in its ring. Rings may legitimately
// under-deliver; the returned points preserve generation order.
func (s *Synthesizer) sampleRipplePoints(net RoadNetwork, siteNode int64, site models.LatLng, azimuths []float64, numCircles, basePoints int, maxDistance float64) []models.LatLng {
	var all []models.LatLng
	for ring := 0; ring < numCircles; ring++ {
		radius := maxDistance * float64(ring+1) / float64(numCircles)
		target := basePoints * (ring + 1)

		points := make([]models.LatLng, 0, target)
		retries := 0
		for len(points) < target && retries < ringRetryCeiling {
			angle := drawBearing(s.rng, azimuths)
			point, ok := snapCandidate(net, siteNode, func() models.LatLng {
				return PointAtBearing(site, angle, radius)
			}, snapAttemptBudget)

			if ok && (len(points) == 0 || pathExists(net, points[len(points)-1], point)) {
				points = append(points, point)
				retries = 0
			} else {
				retries++
			}
		}

		if len(points) < target {
			log.Printf("RippleSampler: warning: ring %d under-delivered %d of %d points", ring+1, len(points), target)
		} else {
			log.Printf("RippleSampler: ring %d generated %d of %d points", ring+1, len(points), target)
		}
		all = append(all, points...)
	}
	return all
}

// pathExists reports whether the road network connects the nearest nodes of
// two coordinates.
func pathExists(net RoadNetwork, a, b models.LatLng) bool {
	na, ok := net.NearestNode(a.Lat, a.Lng)
	if !ok {
		return false
	}
	nb, ok := net.NearestNode(b.Lat, b.Lng)
	if !ok {
		return false
	}
	_, ok = net.ShortestPath(na, nb)
	return ok
}

// findAnyReachablePoints scans every node in the network for coordinates
// within maxDistance of the site that are reachable from the site node.
// This is the degraded mode for areas where ripple sampling found nothing;
// it applies no sector bias.
func findAnyReachablePoints(net RoadNetwork, siteNode int64, site models.LatLng, maxDistance float64, desired int) []models.LatLng {
	var points []models.LatLng
	for _, id := range net.Nodes() {
		if len(points) >= desired {
			break
		}
		pos, ok := net.NodeLatLng(id)
		if !ok {
			continue
		}
		if utils.CalculateDistance(site.Lat, site.Lng, pos.Lat, pos.Lng) > maxDistance {
			continue
		}
		if _, ok := net.ShortestPath(siteNode, id); !ok {
			continue
		}
		points = append(points, pos)
	}
	log.Printf("FallbackPointFinder: found %d reachable points on the road network", len(points))
	return points
}
