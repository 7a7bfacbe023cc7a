package routegen

import (
	"github.com/abdarwish23/navigation-route-api/models"
	"github.com/abdarwish23/navigation-route-api/roadnet"
)

// RoadNetwork is the read-only road graph capability the route pipeline
// consumes. *roadnet.Graph satisfies it in production; tests substitute
// small synthetic networks.
type RoadNetwork interface {
	NearestNode(lat, lng float64) (int64, bool)
	NearestEdge(lat, lng float64) (roadnet.Edge, bool)
	NodeLatLng(id int64) (models.LatLng, bool)
	ShortestPath(from, to int64) ([]int64, bool)
	Nodes() []int64
	Edges() []roadnet.Edge
}

// GraphProvider builds a road network for the area around a point. Radius
// is in meters.
type GraphProvider interface {
	GraphForArea(lat, lon, radius float64) (RoadNetwork, error)
}

// GraphProviderFunc adapts a function to the GraphProvider interface.
type GraphProviderFunc func(lat, lon, radius float64) (RoadNetwork, error)

func (f GraphProviderFunc) GraphForArea(lat, lon, radius float64) (RoadNetwork, error) {
	return f(lat, lon, radius)
}
