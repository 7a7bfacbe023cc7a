package roadnet

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultOverpassURL = "https://overpass-api.de/api/interpreter"

// OverpassClient fetches road networks from an Overpass API endpoint.
type OverpassClient struct {
	URL    string
	Client *http.Client
}

func NewOverpassClient(endpoint string) *OverpassClient {
	if endpoint == "" {
		endpoint = DefaultOverpassURL
	}
	return &OverpassClient{
		URL:    endpoint,
		Client: &http.Client{Timeout: 90 * time.Second},
	}
}

type overpassElement struct {
	Type  string            `json:"type"`
	ID    int64             `json:"id"`
	Lat   float64           `json:"lat"`
	Lon   float64           `json:"lon"`
	Nodes []int64           `json:"nodes"`
	Tags  map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// GraphForArea fetches every highway-tagged way within radius meters of the
// given point and builds the road network graph. Drivability filtering is
// left to the consumer; the graph keeps each way's classification on its
// edges.
func (c *OverpassClient) GraphForArea(lat, lon, radius float64) (*Graph, error) {
	query := fmt.Sprintf(`[out:json][timeout:60];way(around:%.0f,%.8f,%.8f)["highway"];(._;>;);out body;`,
		radius, lat, lon)

	resp, err := c.Client.PostForm(c.URL, url.Values{"data": {query}})
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode)
	}

	var parsed overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding overpass response: %w", err)
	}

	g := NewGraph()
	for _, el := range parsed.Elements {
		if el.Type == "node" {
			g.AddNode(el.ID, el.Lat, el.Lon)
		}
	}
	for _, el := range parsed.Elements {
		if el.Type != "way" {
			continue
		}
		class := strings.TrimSpace(el.Tags["highway"])
		for i := 0; i+1 < len(el.Nodes); i++ {
			g.AddEdge(el.Nodes[i], el.Nodes[i+1], class)
		}
	}

	log.Printf("OverpassClient: built graph with %d nodes and %d edges for (%f, %f) r=%.0fm",
		g.NodeCount(), g.EdgeCount(), lat, lon, radius)
	return g, nil
}
