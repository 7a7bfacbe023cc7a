package roadnet

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/abdarwish23/navigation-route-api/models"
	"github.com/abdarwish23/navigation-route-api/utils"
)

// Edge references one drivable way segment between two graph nodes.
type Edge struct {
	From     int64
	To       int64
	Class    string          // highway classification of the way
	Geometry []models.LatLng // polyline between the endpoints
	Length   float64         // meters
}

// Graph is an in-memory road network for a bounded area. It is built once
// by a loader and is read-only afterwards, so concurrent queries from
// multiple requests need no locking.
type Graph struct {
	g     *simple.WeightedUndirectedGraph
	nodes map[int64]models.LatLng
	edges []Edge
}

func NewGraph() *Graph {
	return &Graph{
		g:     simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
		nodes: make(map[int64]models.LatLng),
	}
}

// AddNode registers a node with its coordinates. Re-adding an existing node
// is a no-op.
func (gr *Graph) AddNode(id int64, lat, lng float64) {
	if _, ok := gr.nodes[id]; ok {
		return
	}
	gr.nodes[id] = models.LatLng{Lat: lat, Lng: lng}
	gr.g.AddNode(simple.Node(id))
}

// AddEdge connects two registered nodes with a way segment of the given
// classification. The edge weight is the great-circle length of the segment.
func (gr *Graph) AddEdge(from, to int64, class string) {
	if from == to {
		return
	}
	a, okA := gr.nodes[from]
	b, okB := gr.nodes[to]
	if !okA || !okB {
		return
	}
	length := utils.CalculateDistance(a.Lat, a.Lng, b.Lat, b.Lng)
	gr.edges = append(gr.edges, Edge{
		From:     from,
		To:       to,
		Class:    class,
		Geometry: []models.LatLng{a, b},
		Length:   length,
	})
	gr.g.SetWeightedEdge(gr.g.NewWeightedEdge(simple.Node(from), simple.Node(to), length))
}

func (gr *Graph) NodeCount() int { return len(gr.nodes) }
func (gr *Graph) EdgeCount() int { return len(gr.edges) }

// Nodes returns all node IDs in ascending order.
func (gr *Graph) Nodes() []int64 {
	ids := make([]int64, 0, len(gr.nodes))
	for id := range gr.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Edges returns every way segment in the network.
func (gr *Graph) Edges() []Edge {
	return gr.edges
}

// NodeLatLng returns the coordinates of a node.
func (gr *Graph) NodeLatLng(id int64) (models.LatLng, bool) {
	pos, ok := gr.nodes[id]
	return pos, ok
}

// NearestNode returns the node closest to the given coordinate.
func (gr *Graph) NearestNode(lat, lng float64) (int64, bool) {
	best := int64(0)
	bestDist := math.Inf(1)
	found := false
	for id, pos := range gr.nodes {
		d := utils.CalculateDistance(lat, lng, pos.Lat, pos.Lng)
		if d < bestDist || (d == bestDist && id < best) {
			best, bestDist, found = id, d, true
		}
	}
	return best, found
}

// NearestEdge returns the way segment closest to the given coordinate.
func (gr *Graph) NearestEdge(lat, lng float64) (Edge, bool) {
	p := models.LatLng{Lat: lat, Lng: lng}
	var best Edge
	bestDist := math.Inf(1)
	found := false
	for _, e := range gr.edges {
		for i := 0; i+1 < len(e.Geometry); i++ {
			proj := utils.ProjectOntoSegment(p, e.Geometry[i], e.Geometry[i+1])
			d := utils.CalculateDistance(lat, lng, proj.Lat, proj.Lng)
			if d < bestDist {
				best, bestDist, found = e, d, true
			}
		}
	}
	return best, found
}

// ShortestPath returns the length-weighted shortest path between two nodes
// as an ordered node ID sequence. The second return is false when no path
// exists.
func (gr *Graph) ShortestPath(from, to int64) ([]int64, bool) {
	s := gr.g.Node(from)
	t := gr.g.Node(to)
	if s == nil || t == nil {
		return nil, false
	}
	if from == to {
		return []int64{from}, true
	}

	heuristic := func(x, y graph.Node) float64 {
		a := gr.nodes[x.ID()]
		b := gr.nodes[y.ID()]
		return utils.CalculateDistance(a.Lat, a.Lng, b.Lat, b.Lng)
	}

	shortest, _ := path.AStar(s, t, gr.g, heuristic)
	nodes, weight := shortest.To(to)
	if math.IsInf(weight, 1) || len(nodes) == 0 {
		return nil, false
	}

	ids := make([]int64, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID())
	}
	return ids, true
}
