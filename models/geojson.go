package models

import "fmt"

// FeatureCollection is a GeoJSON FeatureCollection. Properties is a
// non-standard extension carrying request-level metadata such as the base64
// plot or the KML download link.
type FeatureCollection struct {
	Type       string                 `json:"type"`
	Features   []Feature              `json:"features"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// Feature is a single GeoJSON feature.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// Geometry holds a GeoJSON geometry. Coordinates is [lon, lat] for Point
// and [[lon, lat], ...] for LineString.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

func lineCoordinates(coords []LatLng) [][]float64 {
	line := make([][]float64, 0, len(coords))
	for _, c := range coords {
		line = append(line, []float64{c.Lng, c.Lat})
	}
	return line
}

// NewRouteFeatureCollection converts a synthesized route into a GeoJSON
// FeatureCollection: the complete route, one feature per segment, and the
// cell site itself.
func NewRouteFeatureCollection(route []LatLng, azimuths []float64, lat, lon float64, segments []Segment) *FeatureCollection {
	var totalDistance float64
	for _, s := range segments {
		totalDistance += s.Length
	}

	features := make([]Feature, 0, len(segments)+2)
	features = append(features, Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "LineString",
			Coordinates: lineCoordinates(route),
		},
		Properties: map[string]interface{}{
			"name":           "Complete Navigation Route",
			"total_distance": totalDistance,
			"num_segments":   len(segments),
		},
	})

	for i, segment := range segments {
		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "LineString",
				Coordinates: lineCoordinates(segment.Coordinates),
			},
			Properties: map[string]interface{}{
				"name":        fmt.Sprintf("Segment %d", i+1),
				"length":      segment.Length,
				"instruction": segment.Instruction,
			},
		})
	}

	features = append(features, Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: []float64{lon, lat},
		},
		Properties: map[string]interface{}{
			"name":     "Cell Site",
			"azimuths": azimuths,
		},
	})

	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
