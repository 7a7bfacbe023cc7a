package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/abdarwish23/navigation-route-api/config"
	"github.com/abdarwish23/navigation-route-api/models"
	"github.com/abdarwish23/navigation-route-api/roadnet"
	"github.com/abdarwish23/navigation-route-api/routegen"
)

var validate = validator.New()

// graphProvider builds or reuses a road network for a request. Package
// variable so tests can substitute a synthetic network.
var graphProvider routegen.GraphProvider = routegen.GraphProviderFunc(loadGraphForArea)

func loadGraphForArea(lat, lon, radius float64) (routegen.RoadNetwork, error) {
	key := config.GraphCacheKey(lat, lon, radius)
	if cached, ok := config.CachedGraph(key); ok {
		if g, ok := cached.(routegen.RoadNetwork); ok {
			log.Printf("RouteHandler: reusing cached road network for %s", key)
			return g, nil
		}
	}

	var (
		g   *roadnet.Graph
		err error
	)
	if config.RoadSource() == "postgres" {
		g, err = roadnet.GraphFromPostgres(config.DB, lat, lon, radius)
	} else {
		g, err = roadnet.NewOverpassClient(config.OverpassURL()).GraphForArea(lat, lon, radius)
	}
	if err != nil {
		return nil, err
	}
	config.CacheGraph(key, g)
	return g, nil
}

func decodeRouteRequest(w http.ResponseWriter, r *http.Request) (*models.RouteRequest, bool) {
	var req models.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("RouteHandler: error decoding request body: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	req.ApplyDefaults()
	if err := validate.Struct(&req); err != nil {
		log.Printf("RouteHandler: invalid request: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

// synthesize runs the route pipeline for a decoded request and builds the
// GeoJSON view of the result. The synthesizer is created per call; its
// random source must not be shared across request goroutines.
func synthesize(req *models.RouteRequest) (*routegen.Result, []models.Segment, *models.FeatureCollection, error) {
	synth := routegen.NewSynthesizer(graphProvider, nil)
	result, err := synth.SynthesizeRoute(req.Lat, req.Lon, req.Azimuths,
		req.NumCircles, req.PointsPerCircleBase, req.MaxDistance)
	if err != nil {
		return nil, nil, nil, err
	}

	segments := routegen.SplitRouteIntoSegments(result.Route, routegen.DefaultSegmentLength)
	geojson := models.NewRouteFeatureCollection(result.Route, req.Azimuths, req.Lat, req.Lon, segments)
	if result.SegmentGaps > 0 {
		ensureProperties(geojson)["segment_gaps"] = result.SegmentGaps
	}
	return result, segments, geojson, nil
}

func ensureProperties(fc *models.FeatureCollection) map[string]interface{} {
	if fc.Properties == nil {
		fc.Properties = make(map[string]interface{})
	}
	return fc.Properties
}

func writeSynthesisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, routegen.ErrNoSectors), errors.Is(err, routegen.ErrTooManySectors):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, routegen.ErrNoAccess):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, routegen.ErrRoadNetwork):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, "Failed to generate route: "+err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("RouteHandler: error encoding response: %v", err)
	}
}

// GenerateRouteGeoJSON handles POST /route/geojson: synthesize a route and
// return the GeoJSON document directly.
func GenerateRouteGeoJSON(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRouteRequest(w, r)
	if !ok {
		return
	}
	_, _, geojson, err := synthesize(req)
	if err != nil {
		writeSynthesisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, geojson)
}

// GenerateRoute handles POST /route: synthesize a route, persist the
// GeoJSON in the background, and return it with a request ID.
func GenerateRoute(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRouteRequest(w, r)
	if !ok {
		return
	}
	_, _, geojson, err := synthesize(req)
	if err != nil {
		writeSynthesisError(w, err)
		return
	}

	requestID := uuid.New().String()
	go saveGeoJSON(requestID+"_navigation_route.geojson", geojson)

	writeJSON(w, http.StatusOK, models.RouteResponse{RequestID: requestID, GeoJSON: geojson})
}

// GenerateRouteWithPlot handles POST /route/plot: as GenerateRoute, plus a
// base64 PNG plot of the network, points and route in properties.plot.
func GenerateRouteWithPlot(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRouteRequest(w, r)
	if !ok {
		return
	}
	result, _, geojson, err := synthesize(req)
	if err != nil {
		writeSynthesisError(w, err)
		return
	}

	site := models.LatLng{Lat: req.Lat, Lng: req.Lon}
	png, err := renderRoutePlot(result.Network, site, req.Azimuths, result.Points, result.Route)
	if err != nil {
		log.Printf("GenerateRouteWithPlot: error rendering plot: %v", err)
		http.Error(w, "Failed to render route plot: "+err.Error(), http.StatusInternalServerError)
		return
	}
	ensureProperties(geojson)["plot"] = base64.StdEncoding.EncodeToString(png)

	requestID := uuid.New().String()
	go saveGeoJSON(requestID+"_navigation_route_with_plot.geojson", geojson)
	go saveBytes(requestID+"_route_plot.png", png)

	writeJSON(w, http.StatusOK, models.RouteResponse{RequestID: requestID, GeoJSON: geojson})
}

// GenerateRouteWithPlotAndKML handles POST /route/kml: as
// GenerateRouteWithPlot, plus a KML artifact with a download link in
// properties.kml_download. The KML is written synchronously because the
// response links to it.
func GenerateRouteWithPlotAndKML(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRouteRequest(w, r)
	if !ok {
		return
	}
	result, segments, geojson, err := synthesize(req)
	if err != nil {
		writeSynthesisError(w, err)
		return
	}

	site := models.LatLng{Lat: req.Lat, Lng: req.Lon}
	png, err := renderRoutePlot(result.Network, site, req.Azimuths, result.Points, result.Route)
	if err != nil {
		log.Printf("GenerateRouteWithPlotAndKML: error rendering plot: %v", err)
		http.Error(w, "Failed to render route plot: "+err.Error(), http.StatusInternalServerError)
		return
	}

	requestID := uuid.New().String()
	kmlBytes, err := models.NewRouteKML(result.Route, req.Azimuths, req.Lat, req.Lon, segments).Marshal()
	if err != nil {
		log.Printf("GenerateRouteWithPlotAndKML: error encoding KML: %v", err)
		http.Error(w, "Failed to generate KML: "+err.Error(), http.StatusInternalServerError)
		return
	}
	kmlFilename := requestID + "_navigation_route.kml"
	if err := saveBytes(kmlFilename, kmlBytes); err != nil {
		http.Error(w, "Failed to save KML: "+err.Error(), http.StatusInternalServerError)
		return
	}

	props := ensureProperties(geojson)
	props["plot"] = base64.StdEncoding.EncodeToString(png)
	props["kml_download"] = "/api/v1/files/" + kmlFilename

	go saveGeoJSON(requestID+"_navigation_route_with_plot_and_kml.geojson", geojson)
	go saveBytes(requestID+"_route_plot_with_kml.png", png)

	writeJSON(w, http.StatusOK, models.RouteResponse{RequestID: requestID, GeoJSON: geojson})
}
