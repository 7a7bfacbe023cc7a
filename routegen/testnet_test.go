package routegen

import (
	"math"

	"github.com/abdarwish23/navigation-route-api/models"
	"github.com/abdarwish23/navigation-route-api/roadnet"
)

// gridNetwork builds a rectangular street grid centered on (lat, lng) with
// the given spacing in meters. Every edge carries the same classification.
func gridNetwork(lat, lng float64, rows, cols int, spacing float64, class string) *roadnet.Graph {
	g := roadnet.NewGraph()
	latStep := spacing / 111111.0
	lngStep := spacing / (111111.0 * math.Cos(lat*math.Pi/180))
	id := func(r, c int) int64 { return int64(r*cols + c + 1) }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddNode(id(r, c),
				lat+(float64(r)-float64(rows-1)/2)*latStep,
				lng+(float64(c)-float64(cols-1)/2)*lngStep)
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				g.AddEdge(id(r, c), id(r, c+1), class)
			}
			if r+1 < rows {
				g.AddEdge(id(r, c), id(r+1, c), class)
			}
		}
	}
	return g
}

// deadNetwork fails every lookup and counts nearest-edge calls, for
// verifying retry budgets.
type deadNetwork struct {
	nearestEdgeCalls int
}

func (d *deadNetwork) NearestNode(lat, lng float64) (int64, bool) { return 1, true }

func (d *deadNetwork) NearestEdge(lat, lng float64) (roadnet.Edge, bool) {
	d.nearestEdgeCalls++
	return roadnet.Edge{}, false
}

func (d *deadNetwork) NodeLatLng(id int64) (models.LatLng, bool) { return models.LatLng{}, false }
func (d *deadNetwork) ShortestPath(from, to int64) ([]int64, bool) {
	return nil, false
}
func (d *deadNetwork) Nodes() []int64        { return nil }
func (d *deadNetwork) Edges() []roadnet.Edge { return nil }

// staticProvider serves a pre-built network for every area.
type staticProvider struct {
	net    RoadNetwork
	called int
}

func (p *staticProvider) GraphForArea(lat, lon, radius float64) (RoadNetwork, error) {
	p.called++
	return p.net, nil
}
