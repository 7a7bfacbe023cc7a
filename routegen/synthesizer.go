package routegen

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/abdarwish23/navigation-route-api/models"
)

// Errors surfaced to callers. Individual candidate failures during sampling
// are retried or logged, never returned.
var (
	// ErrNoSectors and ErrTooManySectors reject invalid input before any
	// road network is fetched.
	ErrNoSectors      = errors.New("at least one azimuth must be provided")
	ErrTooManySectors = errors.New("a maximum of 6 sectors (azimuths) are supported")

	// ErrNoAccess is the terminal failure: neither ripple sampling nor the
	// fallback scan found a reachable drivable point within range.
	ErrNoAccess = errors.New("no valid points could be generated: the site might be in an area with very limited road access")

	// ErrRoadNetwork wraps failures to fetch or build the road network.
	ErrRoadNetwork = errors.New("failed to retrieve road network")
)

// Synthesizer generates closed-loop drive-test routes around cell sites.
// Create one per request: the random source is not safe for concurrent use.
type Synthesizer struct {
	graphs GraphProvider
	rng    *rand.Rand
}

// NewSynthesizer returns a Synthesizer drawing randomness from rng. Pass a
// seeded source for reproducible sampling; a nil rng gets a time-seeded one.
func NewSynthesizer(graphs GraphProvider, rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{graphs: graphs, rng: rng}
}

// Result is the outcome of one route synthesis. Everything in it lives for
// the duration of the request only.
type Result struct {
	Route       []models.LatLng // concatenated shortest-path coordinates
	Network     RoadNetwork     // graph handle for plotting
	Points      []models.LatLng // accepted points in generation order
	SegmentGaps int             // waypoint pairs skipped for lack of a path
}

// SynthesizeRoute runs the full pipeline: fetch the road network, sample
// ripple points biased toward the sector azimuths, fall back to a full
// network scan if sampling finds nothing, and stitch the accepted points
// into a closed route starting and ending at the site's nearest node.
func (s *Synthesizer) SynthesizeRoute(lat, lon float64, azimuths []float64, numCircles, basePoints int, maxDistance float64) (*Result, error) {
	if len(azimuths) == 0 {
		return nil, ErrNoSectors
	}
	if len(azimuths) > 6 {
		return nil, ErrTooManySectors
	}

	// Sector coverage scales with sector count.
	if basePoints < 2*len(azimuths) {
		basePoints = 2 * len(azimuths)
	}

	net, err := s.graphs.GraphForArea(lat, lon, maxDistance)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRoadNetwork, err)
	}

	site := models.LatLng{Lat: lat, Lng: lon}
	siteNode, ok := net.NearestNode(lat, lon)
	if !ok {
		return nil, ErrNoAccess
	}

	points := s.sampleRipplePoints(net, siteNode, site, azimuths, numCircles, basePoints, maxDistance)
	if len(points) == 0 {
		log.Printf("Synthesizer: warning: ripple sampling produced no points, scanning network for any reachable points")
		points = findAnyReachablePoints(net, siteNode, site, maxDistance, fallbackPointCount)
	}
	if len(points) == 0 {
		return nil, ErrNoAccess
	}

	route, gaps := assembleRoute(net, siteNode, points)
	return &Result{
		Route:       route,
		Network:     net,
		Points:      points,
		SegmentGaps: gaps,
	}, nil
}
