package roadnet

import (
	"database/sql"
	"fmt"
	"log"
	"math"
)

// GraphFromPostgres loads a pre-imported road network from the road_nodes
// and road_edges tables for the bounding box covering radius meters around
// the given point. Deployments that cannot reach the Overpass API import
// their networks once and serve them from Postgres instead.
func GraphFromPostgres(db *sql.DB, lat, lon, radius float64) (*Graph, error) {
	if db == nil {
		return nil, fmt.Errorf("road network database is not initialized")
	}

	dLat := radius / 111111.0
	dLon := radius / (111111.0 * math.Cos(lat*math.Pi/180))

	g := NewGraph()

	rows, err := db.Query(`
		SELECT id, lat, lon
		FROM road_nodes
		WHERE lat BETWEEN $1 AND $2
		  AND lon BETWEEN $3 AND $4`,
		lat-dLat, lat+dLat, lon-dLon, lon+dLon)
	if err != nil {
		return nil, fmt.Errorf("querying road_nodes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var nodeLat, nodeLon float64
		if err := rows.Scan(&id, &nodeLat, &nodeLon); err != nil {
			return nil, fmt.Errorf("scanning road node: %w", err)
		}
		g.AddNode(id, nodeLat, nodeLon)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading road_nodes: %w", err)
	}

	edgeRows, err := db.Query(`
		SELECT e.source, e.target, e.highway
		FROM road_edges e
		JOIN road_nodes a ON a.id = e.source
		JOIN road_nodes b ON b.id = e.target
		WHERE a.lat BETWEEN $1 AND $2
		  AND a.lon BETWEEN $3 AND $4`,
		lat-dLat, lat+dLat, lon-dLon, lon+dLon)
	if err != nil {
		return nil, fmt.Errorf("querying road_edges: %w", err)
	}
	defer edgeRows.Close()

	for edgeRows.Next() {
		var source, target int64
		var highway sql.NullString
		if err := edgeRows.Scan(&source, &target, &highway); err != nil {
			return nil, fmt.Errorf("scanning road edge: %w", err)
		}
		g.AddEdge(source, target, highway.String)
	}
	if err := edgeRows.Err(); err != nil {
		return nil, fmt.Errorf("reading road_edges: %w", err)
	}

	log.Printf("GraphFromPostgres: built graph with %d nodes and %d edges for (%f, %f) r=%.0fm",
		g.NodeCount(), g.EdgeCount(), lat, lon, radius)
	return g, nil
}
