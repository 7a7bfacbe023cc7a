package models

// RouteRequest is the JSON body for the route synthesis endpoints.
type RouteRequest struct {
	Lat                 float64   `json:"lat" validate:"gte=-90,lte=90"`
	Lon                 float64   `json:"lon" validate:"gte=-180,lte=180"`
	Azimuths            []float64 `json:"azimuths" validate:"required,min=1,max=6,dive,gte=0,lte=360"`
	NumCircles          int       `json:"num_circles" validate:"omitempty,gte=1,lte=12"`
	PointsPerCircleBase int       `json:"points_per_circle_base" validate:"omitempty,gte=1,lte=64"`
	MaxDistance         float64   `json:"max_distance" validate:"omitempty,gte=100,lte=10000"`
}

// ApplyDefaults fills unset tuning parameters with the standard values.
func (r *RouteRequest) ApplyDefaults() {
	if r.NumCircles == 0 {
		r.NumCircles = 4
	}
	if r.PointsPerCircleBase == 0 {
		r.PointsPerCircleBase = 8
	}
	if r.MaxDistance == 0 {
		r.MaxDistance = 1500
	}
}

// Segment is a distance-bounded slice of the route with a navigation
// instruction.
type Segment struct {
	Coordinates []LatLng `json:"coordinates"`
	Length      float64  `json:"length"`
	Instruction string   `json:"instruction"`
}

// RouteResponse is returned by the endpoints that persist artifacts.
type RouteResponse struct {
	RequestID string             `json:"request_id"`
	GeoJSON   *FeatureCollection `json:"geojson"`
}
